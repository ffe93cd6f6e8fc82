package assistant

import "time"

// Session holds the resolved location and date of the previous query so a
// follow-up question can omit them ("and tomorrow?"). One instance per
// conversation; the pipeline is its only writer, so no locking is needed.
// State lives for the process lifetime and is never cleared.
type Session struct {
	LastCity string
	LastLat  float64
	LastLon  float64
	HasCity  bool

	LastDate time.Time
	HasDate  bool
}

// Update records a newly resolved context. The location is stored only when
// a city and its coordinates arrive together; the date only when non-zero.
func (s *Session) Update(city string, lat, lon float64, date time.Time) {
	if city != "" {
		s.LastCity = city
		s.LastLat = lat
		s.LastLon = lon
		s.HasCity = true
	}
	if !date.IsZero() {
		s.LastDate = date
		s.HasDate = true
	}
}
