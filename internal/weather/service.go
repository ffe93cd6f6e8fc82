package weather

import (
	"time"
)

const (
	// eventLookbackDays is the fixed event-search window (2 years).
	eventLookbackDays = 730

	// archive queries reach back to the start of reliable reanalysis data.
	archiveStartYear = 1960
)

// ForecastHorizonDays is the upstream forecast limit.
const ForecastHorizonDays = 16

// Service answers event, record and point-in-time queries over Open-Meteo
// data and renders them as context strings for the response generator.
// All failures come back as descriptive strings, never as errors.
type Service struct {
	archive  Archive
	forecast Forecaster

	// now is injectable for tests.
	now func() time.Time
}

// NewService creates a Service reading from the given data sources.
func NewService(archive Archive, forecast Forecaster) *Service {
	return &Service{
		archive:  archive,
		forecast: forecast,
		now:      time.Now,
	}
}

// today returns the current date truncated to midnight UTC.
func (s *Service) today() time.Time {
	return dateOnly(s.now())
}

func dateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

const dateLayout = "2006-01-02"
