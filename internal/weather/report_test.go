package weather

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func hourlyDay(date string, temps []float64) []HourlyRecord {
	base := day(date)
	hours := make([]HourlyRecord, 0, len(temps))
	for i, temp := range temps {
		t := temp
		hours = append(hours, HourlyRecord{
			Time:        base.Add(time.Duration(i) * time.Hour),
			Temperature: &t,
			PrecipProb:  fptr(float64(10 * i)),
			WindSpeed:   fptr(float64(5 + i)),
		})
	}
	return hours
}

func TestHistoricalReportPastDate(t *testing.T) {
	archive := &fakeArchive{rows: []DailyRecord{{
		Date:        day("2023-11-05"),
		WeatherCode: fptr(63),
		TempMax:     fptr(8.4),
		TempMin:     fptr(2.1),
		RainSum:     fptr(6.7),
		WindMax:     fptr(31.0),
	}}}
	svc := newTestService(archive, nil, day("2024-06-01"))

	got := svc.Context(context.Background(), 52.23, 21.01, day("2023-11-05"))
	for _, want := range []string{"Historical Report (2023-11-05)", "Moderate rain", "2.1°C to 8.4°C", "6.7 mm", "31.0 km/h"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in report, got: %s", want, got)
		}
	}
}

func TestHistoricalReportMissingFields(t *testing.T) {
	archive := &fakeArchive{rows: []DailyRecord{{Date: day("2023-11-05")}}}
	svc := newTestService(archive, nil, day("2024-06-01"))

	got := svc.Context(context.Background(), 0, 0, day("2023-11-05"))
	if !strings.Contains(got, "?°C to ?°C") {
		t.Fatalf("missing temperatures should render as ?, got: %s", got)
	}
	if !strings.Contains(got, "0.0 mm") {
		t.Fatalf("missing precipitation should render as zero, got: %s", got)
	}
}

func TestHistoricalReportNoData(t *testing.T) {
	svc := newTestService(&fakeArchive{}, nil, day("2024-06-01"))

	got := svc.Context(context.Background(), 0, 0, day("2023-11-05"))
	if got != "No data available for this date." {
		t.Fatalf("unexpected message: %s", got)
	}
}

func TestForecastReportAggregatesDay(t *testing.T) {
	forecaster := &fakeForecaster{hours: hourlyDay("2024-06-03", []float64{12.5, 17.0, 21.5, 19.0})}
	svc := newTestService(nil, forecaster, day("2024-06-01"))

	got := svc.Context(context.Background(), 52.23, 21.01, day("2024-06-03"))
	for _, want := range []string{"Forecast (2024-06-03)", "12.5°C to 21.5°C", "Precipitation Probability: 30%", "Max Wind: 8.0 km/h"} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in forecast, got: %s", want, got)
		}
	}
}

func TestForecastReportOutOfRange(t *testing.T) {
	forecaster := &fakeForecaster{hours: hourlyDay("2024-06-03", []float64{12.5})}
	svc := newTestService(nil, forecaster, day("2024-06-01"))

	got := svc.Context(context.Background(), 0, 0, day("2024-06-25"))
	want := "Date 2024-06-25 is out of forecast range (max 16 days)."
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestForecastReportAPIError(t *testing.T) {
	svc := newTestService(nil, &fakeForecaster{err: errors.New("boom")}, day("2024-06-01"))

	got := svc.Context(context.Background(), 0, 0, day("2024-06-03"))
	if got != "Forecast API error." {
		t.Fatalf("unexpected message: %s", got)
	}
}

func TestContextIdempotent(t *testing.T) {
	forecaster := &fakeForecaster{hours: hourlyDay("2024-06-03", []float64{12.5, 17.0})}
	svc := newTestService(nil, forecaster, day("2024-06-01"))

	first := svc.Context(context.Background(), 52.23, 21.01, day("2024-06-03"))
	second := svc.Context(context.Background(), 52.23, 21.01, day("2024-06-03"))
	if first != second {
		t.Fatalf("identical queries over an unchanged series must match:\n%s\n%s", first, second)
	}
}
