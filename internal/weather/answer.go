package weather

import (
	"fmt"

	"github.com/jimezsa/askmcp/internal/models"
	"github.com/jimezsa/askmcp/internal/query"
)

var rules = []query.Rule[models.WeatherReport]{
	{
		When: query.Any("temperature", "temp"),
		Then: func(r models.WeatherReport) string {
			return fmt.Sprintf("🌡 Temperature in %s: %s", r.Location, r.Temperature)
		},
	},
	{
		When: query.Any("rain"),
		Then: func(r models.WeatherReport) string {
			return fmt.Sprintf("🌧 Rain status in %s: %s", r.Location, r.Rain)
		},
	},
	{
		When: query.Any("wind"),
		Then: func(r models.WeatherReport) string {
			return fmt.Sprintf("🌬 Wind speed in %s: %s", r.Location, r.Wind)
		},
	},
	{
		When: query.Any("forecast"),
		Then: func(r models.WeatherReport) string {
			return fmt.Sprintf("📢 Forecast for %s: %s", r.Location, r.Forecast)
		},
	},
}

// Answer replies to question using report. Only the first matching topic
// is answered; anything else gets the full summary.
func Answer(report models.WeatherReport, question string) string {
	return query.FirstMatch(rules, query.New(question), report, Summary)
}

func Summary(r models.WeatherReport) string {
	return fmt.Sprintf(`
📍 Location: %s
🕒 Time: %s
🌡 Temperature: %s
📢 Forecast: %s
🌧 Rain: %s
🌬 Wind: %s
`, r.Location, r.Time, r.Temperature, r.Forecast, r.Rain, r.Wind)
}

// NotAvailable is the reply when no report could be built for city.
func NotAvailable(city string) string {
	return fmt.Sprintf("❌ Weather data not available for \"%s\".", city)
}
