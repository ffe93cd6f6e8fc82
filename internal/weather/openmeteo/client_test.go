package openmeteo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/neuroweather/neuroweather/internal/cache"
)

const archivePayload = `{
	"daily": {
		"time": ["2024-03-01", "2024-03-02"],
		"weather_code": [63, null],
		"temperature_2m_max": [8.4, 9.1],
		"temperature_2m_min": [2.1, null],
		"rain_sum": [5.0, 0.0],
		"snowfall_sum": [0.0, 0.0],
		"wind_speed_10m_max": [31.0, 12.5]
	}
}`

func TestDailyParsesArchiveResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("daily"); got != dailyVariables {
			t.Errorf("unexpected daily variables: %s", got)
		}
		w.Write([]byte(archivePayload))
	}))
	defer server.Close()

	client := NewClient(server.Client(), nil, 0)
	client.archiveURL = server.URL

	rows, err := client.Daily(context.Background(), 52.23, 21.01,
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 records, got %d", len(rows))
	}

	first := rows[0]
	if first.Date.Format("2006-01-02") != "2024-03-01" {
		t.Fatalf("unexpected date: %v", first.Date)
	}
	if first.RainSum == nil || *first.RainSum != 5.0 {
		t.Fatalf("unexpected rain sum: %v", first.RainSum)
	}

	// JSON nulls must arrive as missing values, not zeros.
	second := rows[1]
	if second.WeatherCode != nil {
		t.Fatalf("expected nil weather code, got %v", *second.WeatherCode)
	}
	if second.TempMin != nil {
		t.Fatalf("expected nil min temperature, got %v", *second.TempMin)
	}
}

func TestHourlyParsesForecastResponse(t *testing.T) {
	payload := `{
		"hourly": {
			"time": ["2024-06-01T00:00", "2024-06-01T01:00"],
			"temperature_2m": [12.5, 13.0],
			"precipitation_probability": [10, null],
			"wind_speed_10m": [5.5, 6.0]
		}
	}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("forecast_days"); got != "16" {
			t.Errorf("unexpected forecast_days: %s", got)
		}
		w.Write([]byte(payload))
	}))
	defer server.Close()

	client := NewClient(server.Client(), nil, 0)
	client.forecastURL = server.URL

	hours, err := client.Hourly(context.Background(), 52.23, 21.01, 16)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hours) != 2 {
		t.Fatalf("expected 2 records, got %d", len(hours))
	}
	if hours[0].Temperature == nil || *hours[0].Temperature != 12.5 {
		t.Fatalf("unexpected temperature: %v", hours[0].Temperature)
	}
	if hours[1].PrecipProb != nil {
		t.Fatalf("expected nil precipitation probability")
	}
}

func TestFetchUsesCache(t *testing.T) {
	hits := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte(archivePayload))
	}))
	defer server.Close()

	client := NewClient(server.Client(), cache.NewMemory(), time.Hour)
	client.archiveURL = server.URL

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		if _, err := client.Daily(context.Background(), 52.23, 21.01, start, end); err != nil {
			t.Fatalf("unexpected error on call %d: %v", i, err)
		}
	}

	if hits != 1 {
		t.Fatalf("expected a single upstream request, got %d", hits)
	}
}
