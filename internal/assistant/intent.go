package assistant

import (
	"encoding/json"
	"errors"
)

// Intent is the structured interpretation of a user query produced by the
// NLU collaborator. Empty strings mean the field was absent.
type Intent struct {
	WeatherRelated bool
	City           string
	Date           string
	HistorySearch  string
	RecordSearch   string
}

// DecodeIntent turns raw NLU output into a typed Intent at the pipeline
// boundary. Missing or wrong-typed fields are treated as absent; invalid
// JSON yields a not-weather-related intent rather than an error.
func DecodeIntent(raw json.RawMessage) Intent {
	var payload struct {
		WeatherRelated bool    `json:"is_weather_related"`
		City           *string `json:"city"`
		Date           *string `json:"date"`
		HistorySearch  *string `json:"history_search"`
		RecordSearch   *string `json:"record_search"`
	}

	if err := json.Unmarshal(raw, &payload); err != nil {
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &typeErr) {
			return Intent{}
		}
		// A wrong-typed field decodes as its zero value and reads as absent;
		// the rest of the payload is still usable.
	}

	return Intent{
		WeatherRelated: payload.WeatherRelated,
		City:           strVal(payload.City),
		Date:           strVal(payload.Date),
		HistorySearch:  strVal(payload.HistorySearch),
		RecordSearch:   strVal(payload.RecordSearch),
	}
}

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
