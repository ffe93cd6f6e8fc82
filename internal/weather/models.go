package weather

import (
	"time"
)

// Column identifies a numeric field of a daily archive record. The names
// match the Open-Meteo daily variable names.
type Column string

const (
	ColWeatherCode Column = "weather_code"
	ColTempMax     Column = "temperature_2m_max"
	ColTempMin     Column = "temperature_2m_min"
	ColRainSum     Column = "rain_sum"
	ColSnowfallSum Column = "snowfall_sum"
	ColWindMax     Column = "wind_speed_10m_max"
)

// DailyRecord is a single day of archive data. Nil pointers mark values the
// upstream API did not report for that day.
type DailyRecord struct {
	Date        time.Time
	WeatherCode *float64
	TempMax     *float64
	TempMin     *float64
	RainSum     *float64
	SnowfallSum *float64
	WindMax     *float64
}

func (r DailyRecord) value(col Column) *float64 {
	switch col {
	case ColWeatherCode:
		return r.WeatherCode
	case ColTempMax:
		return r.TempMax
	case ColTempMin:
		return r.TempMin
	case ColRainSum:
		return r.RainSum
	case ColSnowfallSum:
		return r.SnowfallSum
	case ColWindMax:
		return r.WindMax
	default:
		return nil
	}
}

// coerceOrZero reads a column treating missing data as zero. Event search
// relies on this: a gap in the archive reads as "no rain", which can inflate
// false negatives, but it is the documented behavior.
func (r DailyRecord) coerceOrZero(col Column) float64 {
	if v := r.value(col); v != nil {
		return *v
	}
	return 0
}

// coerceOrOmit reads a column and reports whether a value is present.
// Record search uses this so missing data never wins an extremum.
func (r DailyRecord) coerceOrOmit(col Column) (float64, bool) {
	if v := r.value(col); v != nil {
		return *v, true
	}
	return 0, false
}

// HourlyRecord is a single hour of forecast data.
type HourlyRecord struct {
	Time        time.Time
	Temperature *float64
	PrecipProb  *float64
	Rain        *float64
	Snowfall    *float64
	WeatherCode *float64
	WindSpeed   *float64
}
