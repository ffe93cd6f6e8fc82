package location

import (
	"log"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/kelvins/geocoder"
)

// Match is a resolved place: the canonical city name and its coordinates.
type Match struct {
	City string
	Lat  float64
	Lon  float64
}

// Resolver matches free-text place names against the static gazetteer using
// a normalized edit-distance ratio. An optional Google geocoding fallback
// kicks in only when an API key was configured.
type Resolver struct {
	names       []string
	threshold   int
	useGeocoder bool
}

// NewResolver creates a Resolver accepting matches scoring at least
// threshold (0-100). geocoderKey may be empty to disable the fallback.
func NewResolver(threshold int, geocoderKey string) *Resolver {
	names := make([]string, 0, len(cityCoordinates))
	for name := range cityCoordinates {
		names = append(names, name)
	}
	// Sorted so equal-score ties resolve deterministically.
	sort.Strings(names)

	if geocoderKey != "" {
		geocoder.ApiKey = geocoderKey
	}

	return &Resolver{
		names:       names,
		threshold:   threshold,
		useGeocoder: geocoderKey != "",
	}
}

// Resolve matches query against the gazetteer and returns the best entry if
// its similarity score reaches the threshold. Empty input never matches.
func (r *Resolver) Resolve(query string) (Match, bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Match{}, false
	}

	bestName := ""
	bestScore := -1
	for _, name := range r.names {
		score := similarity(query, name)
		if score > bestScore {
			bestScore = score
			bestName = name
		}
	}

	if bestScore >= r.threshold {
		coords := cityCoordinates[bestName]
		return Match{City: bestName, Lat: coords[0], Lon: coords[1]}, true
	}

	if r.useGeocoder {
		return r.geocode(query)
	}

	return Match{}, false
}

// similarity computes a 0-100 edit-distance ratio, case-insensitive.
func similarity(a, b string) int {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}
	if longest == 0 {
		return 100
	}

	dist := levenshtein.ComputeDistance(a, b)
	return (longest - dist) * 100 / longest
}

func (r *Resolver) geocode(query string) (Match, bool) {
	loc, err := geocoder.Geocoding(geocoder.Address{City: query})
	if err != nil {
		log.Printf("geocoder fallback failed for %q: %v", query, err)
		return Match{}, false
	}

	return Match{
		City: query,
		Lat:  loc.Latitude,
		Lon:  loc.Longitude,
	}, true
}
