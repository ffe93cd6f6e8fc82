package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/neuroweather/neuroweather/internal/cache"
	"github.com/neuroweather/neuroweather/internal/weather"
)

const (
	dailyVariables = "weather_code,temperature_2m_max,temperature_2m_min," +
		"rain_sum,snowfall_sum,wind_speed_10m_max"
	hourlyVariables = "temperature_2m,precipitation_probability,rain," +
		"snowfall,weather_code,wind_speed_10m"

	dateLayout   = "2006-01-02"
	hourlyLayout = "2006-01-02T15:04"
)

// Client reads forecast and archive data from Open-Meteo, with retries, a
// circuit breaker per endpoint, and a TTL response cache in front. It
// implements weather.Archive and weather.Forecaster.
type Client struct {
	forecastURL string
	archiveURL  string
	httpCfg     HTTPClientConfig
	forecastCB  *gobreaker.CircuitBreaker
	archiveCB   *gobreaker.CircuitBreaker
	store       cache.Cache
	ttl         time.Duration
}

// NewClient creates a Client. store may be nil to disable caching.
func NewClient(client *http.Client, store cache.Cache, ttl time.Duration) *Client {
	newCB := func(name string) *gobreaker.CircuitBreaker {
		return gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        name,
			MaxRequests: 5,
			Interval:    1 * time.Minute,
			Timeout:     2 * time.Minute,
		})
	}

	return &Client{
		forecastURL: "https://api.open-meteo.com/v1/forecast",
		archiveURL:  "https://archive-api.open-meteo.com/v1/archive",
		httpCfg: HTTPClientConfig{
			Client: client,
			Backoff: BackoffConfig{
				MaxRetries:      3,
				InitialInterval: 500 * time.Millisecond,
				MaxInterval:     5 * time.Second,
			},
		},
		forecastCB: newCB("openmeteo-forecast"),
		archiveCB:  newCB("openmeteo-archive"),
		store:      store,
		ttl:        ttl,
	}
}

// Daily fetches daily archive records between start and end (inclusive).
func (c *Client) Daily(ctx context.Context, lat, lon float64, start, end time.Time) ([]weather.DailyRecord, error) {
	values := url.Values{}
	values.Set("latitude", fmt.Sprintf("%f", lat))
	values.Set("longitude", fmt.Sprintf("%f", lon))
	values.Set("start_date", start.Format(dateLayout))
	values.Set("end_date", end.Format(dateLayout))
	values.Set("daily", dailyVariables)
	values.Set("timezone", "UTC")

	body, err := c.fetch(ctx, c.archiveURL+"?"+values.Encode(), c.archiveCB)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Daily struct {
			Time        []string   `json:"time"`
			WeatherCode []*float64 `json:"weather_code"`
			TempMax     []*float64 `json:"temperature_2m_max"`
			TempMin     []*float64 `json:"temperature_2m_min"`
			RainSum     []*float64 `json:"rain_sum"`
			SnowfallSum []*float64 `json:"snowfall_sum"`
			WindMax     []*float64 `json:"wind_speed_10m_max"`
		} `json:"daily"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, err
	}

	records := make([]weather.DailyRecord, 0, len(payload.Daily.Time))
	for i, stamp := range payload.Daily.Time {
		date, err := time.Parse(dateLayout, stamp)
		if err != nil {
			continue
		}
		records = append(records, weather.DailyRecord{
			Date:        date,
			WeatherCode: at(payload.Daily.WeatherCode, i),
			TempMax:     at(payload.Daily.TempMax, i),
			TempMin:     at(payload.Daily.TempMin, i),
			RainSum:     at(payload.Daily.RainSum, i),
			SnowfallSum: at(payload.Daily.SnowfallSum, i),
			WindMax:     at(payload.Daily.WindMax, i),
		})
	}

	return records, nil
}

// Hourly fetches the hourly forecast for the next days days.
func (c *Client) Hourly(ctx context.Context, lat, lon float64, days int) ([]weather.HourlyRecord, error) {
	values := url.Values{}
	values.Set("latitude", fmt.Sprintf("%f", lat))
	values.Set("longitude", fmt.Sprintf("%f", lon))
	values.Set("hourly", hourlyVariables)
	values.Set("forecast_days", fmt.Sprintf("%d", days))
	values.Set("timezone", "UTC")

	body, err := c.fetch(ctx, c.forecastURL+"?"+values.Encode(), c.forecastCB)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Hourly struct {
			Time        []string   `json:"time"`
			Temperature []*float64 `json:"temperature_2m"`
			PrecipProb  []*float64 `json:"precipitation_probability"`
			Rain        []*float64 `json:"rain"`
			Snowfall    []*float64 `json:"snowfall"`
			WeatherCode []*float64 `json:"weather_code"`
			WindSpeed   []*float64 `json:"wind_speed_10m"`
		} `json:"hourly"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, err
	}

	records := make([]weather.HourlyRecord, 0, len(payload.Hourly.Time))
	for i, stamp := range payload.Hourly.Time {
		ts, err := parseHourly(stamp)
		if err != nil {
			continue
		}
		records = append(records, weather.HourlyRecord{
			Time:        ts,
			Temperature: at(payload.Hourly.Temperature, i),
			PrecipProb:  at(payload.Hourly.PrecipProb, i),
			Rain:        at(payload.Hourly.Rain, i),
			Snowfall:    at(payload.Hourly.Snowfall, i),
			WeatherCode: at(payload.Hourly.WeatherCode, i),
			WindSpeed:   at(payload.Hourly.WindSpeed, i),
		})
	}

	return records, nil
}

// fetch serves the URL from cache when possible, otherwise performs the
// request and stores the body. Cache failures are logged, never fatal.
func (c *Client) fetch(ctx context.Context, u string, cb *gobreaker.CircuitBreaker) ([]byte, error) {
	if c.store != nil {
		if body, ok := c.store.Get(u); ok {
			return body, nil
		}
	}

	body, err := doRequestWithResilience(ctx, c.httpCfg, cb, u)
	if err != nil {
		return nil, err
	}

	if c.store != nil {
		if err := c.store.Set(u, body, c.ttl); err != nil {
			log.Printf("failed to cache open-meteo response: %v", err)
		}
	}

	return body, nil
}

func parseHourly(stamp string) (time.Time, error) {
	if strings.Contains(stamp, ":") {
		return time.Parse(hourlyLayout, stamp)
	}
	return time.Parse(dateLayout, stamp)
}

// at indexes a column slice defensively; Open-Meteo columns can be shorter
// than the time axis when an endpoint omits a variable.
func at(vals []*float64, i int) *float64 {
	if i < len(vals) {
		return vals[i]
	}
	return nil
}
