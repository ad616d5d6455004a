package weather

const (
	RainExpected   = "Rain expected"
	NoRainExpected = "No rain expected"

	ForecastClear        = "Clear sky"
	ForecastPartlyCloudy = "Partly cloudy"
	ForecastCloudy       = "Cloudy"
	ForecastRainy        = "Rainy"
)

// Rain reports whether a WMO weather code means precipitation.
func Rain(code float64) string {
	if code >= 51 {
		return RainExpected
	}
	return NoRainExpected
}

// Forecast buckets a WMO weather code. The comparisons cascade, so the
// order of the checks is the classification.
func Forecast(code float64) string {
	switch {
	case code == 0:
		return ForecastClear
	case code < 3:
		return ForecastPartlyCloudy
	case code < 50:
		return ForecastCloudy
	default:
		return ForecastRainy
	}
}
