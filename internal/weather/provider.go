package weather

import (
	"context"
	"time"
)

// Archive abstracts the historical daily-data source (the Open-Meteo archive
// API in production, fakes in tests).
type Archive interface {
	Daily(ctx context.Context, lat, lon float64, start, end time.Time) ([]DailyRecord, error)
}

// Forecaster abstracts the hourly forecast source, limited to the upstream
// 16-day horizon.
type Forecaster interface {
	Hourly(ctx context.Context, lat, lon float64, days int) ([]HourlyRecord, error)
}
