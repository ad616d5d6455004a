package models

// WeatherReport is the answer-ready view of current conditions for a place.
type WeatherReport struct {
	Location    string `json:"location"`
	Temperature string `json:"temperature"`
	Wind        string `json:"wind"`
	Rain        string `json:"rain"`
	Forecast    string `json:"forecast"`
	Time        string `json:"time"`
}

type GeocodingResponse struct {
	Results []GeocodingResult `json:"results"`
}

type GeocodingResult struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Admin1    string  `json:"admin1"`
}

type ForecastResponse struct {
	CurrentWeather *CurrentWeather `json:"current_weather"`
}

type CurrentWeather struct {
	Temperature float64 `json:"temperature"`
	WindSpeed   float64 `json:"windspeed"`
	WeatherCode float64 `json:"weathercode"`
	Time        string  `json:"time"`
}
