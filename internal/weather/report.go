package weather

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

// Context produces the standard point-in-time report for a date: a single
// archive day for past dates, otherwise the matching day extracted from the
// 16-day hourly forecast.
func (s *Service) Context(ctx context.Context, lat, lon float64, queryDate time.Time) string {
	today := s.today()
	day := dateOnly(queryDate)

	if day.Before(today) {
		return s.historicalReport(ctx, lat, lon, day)
	}
	return s.forecastReport(ctx, lat, lon, day)
}

func (s *Service) historicalReport(ctx context.Context, lat, lon float64, day time.Time) string {
	rows, err := s.archive.Daily(ctx, lat, lon, day, day)
	if err != nil || len(rows) == 0 {
		return "No data available for this date."
	}

	row := rows[0]
	condition := WMODescription(int(row.coerceOrZero(ColWeatherCode)))

	return fmt.Sprintf(
		"Historical Report (%s):\n"+
			"Condition: %s\n"+
			"Temp Range: %s°C to %s°C\n"+
			"Precipitation: %s mm\n"+
			"Max Wind: %s km/h",
		day.Format(dateLayout),
		condition,
		fmtOptional(row.TempMin),
		fmtOptional(row.TempMax),
		fmtOrZero(row.RainSum),
		fmtOrZero(row.WindMax),
	)
}

func (s *Service) forecastReport(ctx context.Context, lat, lon float64, day time.Time) string {
	hours, err := s.forecast.Hourly(ctx, lat, lon, ForecastHorizonDays)
	if err != nil || len(hours) == 0 {
		return "Forecast API error."
	}

	var (
		tempMin, tempMax   float64
		precipMax, windMax float64
		haveTemp           bool
		found              bool
	)

	for _, h := range hours {
		if !dateOnly(h.Time).Equal(day) {
			continue
		}
		found = true

		if h.Temperature != nil {
			if !haveTemp || *h.Temperature < tempMin {
				tempMin = *h.Temperature
			}
			if !haveTemp || *h.Temperature > tempMax {
				tempMax = *h.Temperature
			}
			haveTemp = true
		}
		if h.PrecipProb != nil && *h.PrecipProb > precipMax {
			precipMax = *h.PrecipProb
		}
		if h.WindSpeed != nil && *h.WindSpeed > windMax {
			windMax = *h.WindSpeed
		}
	}

	if !found {
		return fmt.Sprintf("Date %s is out of forecast range (max %d days).",
			day.Format(dateLayout), ForecastHorizonDays)
	}

	return fmt.Sprintf(
		"Forecast (%s):\n"+
			"Temp Range: %.1f°C to %.1f°C\n"+
			"Precipitation Probability: %.0f%%\n"+
			"Max Wind: %.1f km/h",
		day.Format(dateLayout), tempMin, tempMax, precipMax, windMax,
	)
}

// fmtOptional renders a value or "?" when the archive has a gap.
func fmtOptional(v *float64) string {
	if v == nil {
		return "?"
	}
	return strconv.FormatFloat(*v, 'f', 1, 64)
}

// fmtOrZero renders a value, treating a gap as zero.
func fmtOrZero(v *float64) string {
	if v == nil {
		return "0.0"
	}
	return strconv.FormatFloat(*v, 'f', 1, 64)
}
