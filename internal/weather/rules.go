package weather

// Operator is a comparison applied by the event search.
type Operator string

const (
	OpGreater Operator = ">"
	OpLess    Operator = "<"
	OpIn      Operator = "in"
)

// EventKey names a searchable historical weather event.
type EventKey string

const (
	EventSnow  EventKey = "snow"
	EventRain  EventKey = "rain"
	EventWind  EventKey = "wind"
	EventHeat  EventKey = "heat"
	EventFrost EventKey = "frost"
	EventHail  EventKey = "hail"
)

// EventRule describes how to detect one event type in the daily archive.
// Threshold applies to OpGreater/OpLess; Codes applies to OpIn.
type EventRule struct {
	Col       Column
	Op        Operator
	Threshold float64
	Codes     []int
	Desc      string
	Unit      string
}

func (r EventRule) matches(v float64) bool {
	switch r.Op {
	case OpGreater:
		return v > r.Threshold
	case OpLess:
		return v < r.Threshold
	case OpIn:
		for _, c := range r.Codes {
			if int(v) == c {
				return true
			}
		}
	}
	return false
}

var eventRules = map[EventKey]EventRule{
	EventSnow:  {Col: ColSnowfallSum, Op: OpGreater, Threshold: 0.0, Desc: "snowfall", Unit: "cm"},
	EventRain:  {Col: ColRainSum, Op: OpGreater, Threshold: 1.0, Desc: "noticeable rain", Unit: "mm"},
	EventWind:  {Col: ColWindMax, Op: OpGreater, Threshold: 50.0, Desc: "strong wind", Unit: "km/h"},
	EventHeat:  {Col: ColTempMax, Op: OpGreater, Threshold: 30.0, Desc: "heatwave", Unit: "°C"},
	EventFrost: {Col: ColTempMin, Op: OpLess, Threshold: -10.0, Desc: "severe frost", Unit: "°C"},
	EventHail:  {Col: ColWeatherCode, Op: OpIn, Codes: []int{96, 99}, Desc: "hail / hail storm", Unit: "(WMO Code)"},
}

// EventRuleFor looks up the rule for a raw event key from the NLU layer.
func EventRuleFor(key string) (EventRule, bool) {
	rule, ok := eventRules[EventKey(key)]
	return rule, ok
}

// Aggregation selects the extremum direction for a record search.
type Aggregation string

const (
	AggMin Aggregation = "min"
	AggMax Aggregation = "max"
)

// RecordKey names an all-time record query.
type RecordKey string

const (
	RecordMinTemp RecordKey = "min_temp"
	RecordMaxTemp RecordKey = "max_temp"
	RecordMaxWind RecordKey = "max_wind"
	RecordMaxSnow RecordKey = "max_snow"
	RecordMaxRain RecordKey = "max_rain"
)

// RecordRule describes one all-time record search over the daily archive.
type RecordRule struct {
	Col    Column
	Method Aggregation
	Desc   string
	Unit   string
}

var recordRules = map[RecordKey]RecordRule{
	RecordMinTemp: {Col: ColTempMin, Method: AggMin, Desc: "Lowest temperature", Unit: "°C"},
	RecordMaxTemp: {Col: ColTempMax, Method: AggMax, Desc: "Highest temperature", Unit: "°C"},
	RecordMaxWind: {Col: ColWindMax, Method: AggMax, Desc: "Strongest wind", Unit: "km/h"},
	RecordMaxSnow: {Col: ColSnowfallSum, Method: AggMax, Desc: "Heaviest snowfall", Unit: "cm"},
	RecordMaxRain: {Col: ColRainSum, Method: AggMax, Desc: "Heaviest rainfall", Unit: "mm"},
}

// RecordRuleFor looks up the rule for a raw record key from the NLU layer.
func RecordRuleFor(key string) (RecordRule, bool) {
	rule, ok := recordRules[RecordKey(key)]
	return rule, ok
}

// wmoCodes maps WMO weather codes to human-readable labels.
var wmoCodes = map[int]string{
	0:  "Clear sky",
	1:  "Mainly clear",
	2:  "Partly cloudy",
	3:  "Overcast",
	45: "Fog",
	48: "Depositing rime fog",
	51: "Light drizzle",
	53: "Moderate drizzle",
	55: "Dense drizzle",
	61: "Slight rain",
	63: "Moderate rain",
	65: "Heavy rain",
	71: "Slight snow fall",
	73: "Moderate snow fall",
	75: "Heavy snow fall",
	77: "Snow grains",
	80: "Slight rain showers",
	85: "Slight snow showers",
	95: "Thunderstorm",
	96: "Thunderstorm with slight hail",
	99: "Thunderstorm with heavy hail",
}

// WMODescription translates a WMO weather code to its label.
func WMODescription(code int) string {
	if desc, ok := wmoCodes[code]; ok {
		return desc
	}
	return "Unknown"
}
