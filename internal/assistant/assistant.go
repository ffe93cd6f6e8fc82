package assistant

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/neuroweather/neuroweather/internal/location"
)

// IntentParser is the NLU collaborator turning free text into raw intent JSON.
type IntentParser interface {
	ParseIntent(ctx context.Context, userText string, today time.Time) (json.RawMessage, error)
}

// Responder is the response-generation collaborator.
type Responder interface {
	Respond(ctx context.Context, contextData, userText string) (string, error)
}

// Resolver maps a free-text place name to a gazetteer entry.
type Resolver interface {
	Resolve(query string) (location.Match, bool)
}

// WeatherService produces context strings for the three retrieval modes.
type WeatherService interface {
	FindEvent(ctx context.Context, lat, lon float64, eventType string) string
	FindRecord(ctx context.Context, lat, lon float64, recordType string) string
	Context(ctx context.Context, lat, lon float64, date time.Time) string
}

// Fixed user-facing messages for the degraded paths.
const (
	msgNotWeather      = "This query does not appear to be weather-related."
	msgNoCity          = "I could not identify the city. Please specify the location."
	msgGenerationError = "Error generating response."
)

// Assistant is the query pipeline: intent, context resolution with session
// fallback, routing, and response generation. Single-threaded per instance.
type Assistant struct {
	nlu       IntentParser
	responder Responder
	resolver  Resolver
	weather   WeatherService
	session   *Session

	// now is injectable for tests.
	now func() time.Time
}

// New creates an Assistant with a fresh conversation session.
func New(nlu IntentParser, responder Responder, resolver Resolver, weather WeatherService) *Assistant {
	return &Assistant{
		nlu:       nlu,
		responder: responder,
		resolver:  resolver,
		weather:   weather,
		session:   &Session{},
		now:       time.Now,
	}
}

// Answer runs the full pipeline for one user query and always returns a
// user-facing string; every failure path degrades to a fixed message.
func (a *Assistant) Answer(ctx context.Context, userText string) string {
	intent := a.parseIntent(ctx, userText)
	if !intent.WeatherRelated {
		return msgNotWeather
	}

	city, lat, lon, queryDate, ok := a.resolveContext(intent)
	if !ok {
		return msgNoCity
	}

	a.session.Update(city, lat, lon, queryDate)

	contextData := a.route(ctx, intent, lat, lon, queryDate)

	answer, err := a.responder.Respond(ctx, fmt.Sprintf("(City: %s): %s", city, contextData), userText)
	if err != nil {
		log.Printf("response generation failed: %v", err)
		return msgGenerationError
	}
	if strings.TrimSpace(answer) == "" {
		return msgGenerationError
	}
	return answer
}

// parseIntent invokes the NLU collaborator; any failure degrades to a
// not-weather-related intent instead of propagating.
func (a *Assistant) parseIntent(ctx context.Context, userText string) Intent {
	raw, err := a.nlu.ParseIntent(ctx, userText, a.now())
	if err != nil {
		log.Printf("intent parsing failed: %v", err)
		return Intent{}
	}
	return DecodeIntent(raw)
}

// resolveContext resolves city and date, substituting session state when the
// current query omits them. The returned context is fully populated when ok.
func (a *Assistant) resolveContext(intent Intent) (city string, lat, lon float64, queryDate time.Time, ok bool) {
	if intent.City != "" {
		if m, found := a.resolver.Resolve(intent.City); found {
			city, lat, lon = m.City, m.Lat, m.Lon
		} else {
			log.Printf("city %q not found in gazetteer", intent.City)
		}
	}
	if city == "" && a.session.HasCity {
		city, lat, lon = a.session.LastCity, a.session.LastLat, a.session.LastLon
	}
	if city == "" {
		return "", 0, 0, time.Time{}, false
	}

	if intent.Date != "" {
		d, err := time.Parse("2006-01-02", intent.Date)
		if err != nil {
			log.Printf("invalid date from NLU: %q", intent.Date)
		} else {
			queryDate = d
		}
	}
	if queryDate.IsZero() {
		if a.session.HasDate {
			queryDate = a.session.LastDate
		} else {
			n := a.now().UTC()
			queryDate = time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, time.UTC)
		}
	}

	return city, lat, lon, queryDate, true
}

// route dispatches in strict priority order: record search first, then
// historical event search, then the standard point-in-time report.
func (a *Assistant) route(ctx context.Context, intent Intent, lat, lon float64, date time.Time) string {
	if intent.RecordSearch != "" {
		log.Printf("executing record search: %s", intent.RecordSearch)
		return a.weather.FindRecord(ctx, lat, lon, intent.RecordSearch)
	}
	if intent.HistorySearch != "" {
		log.Printf("executing historical event search: %s", intent.HistorySearch)
		return a.weather.FindEvent(ctx, lat, lon, intent.HistorySearch)
	}
	log.Printf("executing standard report: %s", date.Format("2006-01-02"))
	return a.weather.Context(ctx, lat, lon, date)
}
