package location

// cityCoordinates is the static gazetteer of supported cities, keyed by
// canonical name with [latitude, longitude] values. Loaded once, read-only.
var cityCoordinates = map[string][2]float64{
	"Warsaw":         {52.23, 21.01},
	"Krakow":         {50.06, 19.94},
	"Lodz":           {51.77, 19.46},
	"Wroclaw":        {51.11, 17.04},
	"Poznan":         {52.41, 16.93},
	"Gdansk":         {54.35, 18.65},
	"Szczecin":       {53.43, 14.55},
	"Katowice":       {50.26, 19.02},
	"Lublin":         {51.25, 22.57},
	"Bialystok":      {53.13, 23.16},
	"Zakopane":       {49.30, 19.95},
	"London":         {51.51, -0.13},
	"Paris":          {48.85, 2.35},
	"Berlin":         {52.52, 13.41},
	"Madrid":         {40.42, -3.70},
	"Barcelona":      {41.39, 2.17},
	"Rome":           {41.90, 12.50},
	"Milan":          {45.46, 9.19},
	"Vienna":         {48.21, 16.37},
	"Prague":         {50.09, 14.42},
	"Budapest":       {47.50, 19.04},
	"Amsterdam":      {52.37, 4.90},
	"Brussels":       {50.85, 4.35},
	"Zurich":         {47.37, 8.54},
	"Copenhagen":     {55.68, 12.57},
	"Stockholm":      {59.33, 18.07},
	"Oslo":           {59.91, 10.75},
	"Helsinki":       {60.17, 24.94},
	"Dublin":         {53.35, -6.26},
	"Lisbon":         {38.72, -9.14},
	"Athens":         {37.98, 23.73},
	"Istanbul":       {41.01, 28.97},
	"Moscow":         {55.75, 37.62},
	"Kyiv":           {50.45, 30.52},
	"New York":       {40.71, -74.01},
	"Los Angeles":    {34.05, -118.24},
	"Chicago":        {41.88, -87.63},
	"Toronto":        {43.65, -79.38},
	"Mexico City":    {19.43, -99.13},
	"Rio de Janeiro": {-22.91, -43.17},
	"Buenos Aires":   {-34.60, -58.38},
	"Cairo":          {30.04, 31.24},
	"Cape Town":      {-33.92, 18.42},
	"Dubai":          {25.20, 55.27},
	"Mumbai":         {19.08, 72.88},
	"Singapore":      {1.35, 103.82},
	"Hong Kong":      {22.32, 114.17},
	"Beijing":        {39.90, 116.41},
	"Tokyo":          {35.69, 139.69},
	"Seoul":          {37.57, 126.98},
	"Sydney":         {-33.87, 151.21},
	"Auckland":       {-36.85, 174.76},
}
