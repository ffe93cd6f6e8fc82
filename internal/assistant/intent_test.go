package assistant

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDecodeIntentFullPayload(t *testing.T) {
	raw := json.RawMessage(`{
		"is_weather_related": true,
		"city": "Warsaw",
		"date": "2024-06-05",
		"history_search": "rain",
		"record_search": null
	}`)

	intent := DecodeIntent(raw)
	if !intent.WeatherRelated {
		t.Fatalf("expected weather-related intent")
	}
	if intent.City != "Warsaw" || intent.Date != "2024-06-05" {
		t.Fatalf("unexpected fields: %+v", intent)
	}
	if intent.HistorySearch != "rain" || intent.RecordSearch != "" {
		t.Fatalf("unexpected search fields: %+v", intent)
	}
}

func TestDecodeIntentWrongTypedFieldIsAbsent(t *testing.T) {
	raw := json.RawMessage(`{"is_weather_related": true, "city": 42}`)

	intent := DecodeIntent(raw)
	if !intent.WeatherRelated {
		t.Fatalf("valid fields must survive a wrong-typed sibling")
	}
	if intent.City != "" {
		t.Fatalf("wrong-typed city must read as absent, got %q", intent.City)
	}
}

func TestDecodeIntentInvalidJSON(t *testing.T) {
	intent := DecodeIntent(json.RawMessage(`not json at all`))
	if intent.WeatherRelated {
		t.Fatalf("invalid JSON must decode as not weather-related")
	}
}

func TestSessionPartialUpdateRules(t *testing.T) {
	s := &Session{}

	// A date alone must not touch the location.
	s.Update("", 0, 0, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
	if s.HasCity {
		t.Fatalf("location must not be set without a city")
	}
	if !s.HasDate {
		t.Fatalf("date should be stored")
	}

	// A location alone must not touch the date.
	s.Update("Warsaw", 52.23, 21.01, time.Time{})
	if s.LastCity != "Warsaw" || !s.HasCity {
		t.Fatalf("location should be stored: %+v", s)
	}
	if s.LastDate.Format("2006-01-02") != "2024-06-01" {
		t.Fatalf("date must be unchanged: %v", s.LastDate)
	}
}
