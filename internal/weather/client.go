package weather

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/jimezsa/askmcp/internal/models"
	"github.com/jimezsa/askmcp/internal/network"
)

var ErrNotFound = errors.New("weather data not found")

const (
	DefaultGeocodingURL = "https://geocoding-api.open-meteo.com/v1/search"
	DefaultForecastURL  = "https://api.open-meteo.com/v1/forecast"
)

type Client struct {
	doer         network.Doer
	geocodingURL string
	forecastURL  string
}

func NewClient(doer network.Doer, geocodingURL, forecastURL string) *Client {
	if geocodingURL == "" {
		geocodingURL = DefaultGeocodingURL
	}
	if forecastURL == "" {
		forecastURL = DefaultForecastURL
	}
	return &Client{
		doer:         doer,
		geocodingURL: geocodingURL,
		forecastURL:  forecastURL,
	}
}

// Lookup geocodes city and reads its current weather.
// It returns ErrNotFound when either upstream has nothing for the city.
func (c *Client) Lookup(ctx context.Context, city string) (models.WeatherReport, error) {
	place, err := c.geocode(ctx, city)
	if err != nil {
		return models.WeatherReport{}, err
	}

	current, err := c.current(ctx, place.Latitude, place.Longitude)
	if err != nil {
		return models.WeatherReport{}, err
	}

	return models.WeatherReport{
		Location:    location(place),
		Temperature: models.FormatNumber(current.Temperature) + "°C",
		Wind:        models.FormatNumber(current.WindSpeed) + " km/h",
		Rain:        Rain(current.WeatherCode),
		Forecast:    Forecast(current.WeatherCode),
		Time:        current.Time,
	}, nil
}

func (c *Client) geocode(ctx context.Context, city string) (models.GeocodingResult, error) {
	params := url.Values{}
	params.Set("name", city)
	params.Set("count", "1")

	var resp models.GeocodingResponse
	if err := network.GetJSON(ctx, c.doer, withQuery(c.geocodingURL, params), &resp); err != nil {
		return models.GeocodingResult{}, fmt.Errorf("geocode %q: %w", city, err)
	}
	if len(resp.Results) == 0 {
		return models.GeocodingResult{}, fmt.Errorf("geocode %q: %w", city, ErrNotFound)
	}
	return resp.Results[0], nil
}

func (c *Client) current(ctx context.Context, latitude, longitude float64) (models.CurrentWeather, error) {
	params := url.Values{}
	params.Set("latitude", models.FormatNumber(latitude))
	params.Set("longitude", models.FormatNumber(longitude))
	params.Set("current_weather", "true")

	var resp models.ForecastResponse
	if err := network.GetJSON(ctx, c.doer, withQuery(c.forecastURL, params), &resp); err != nil {
		return models.CurrentWeather{}, fmt.Errorf("forecast: %w", err)
	}
	if resp.CurrentWeather == nil {
		return models.CurrentWeather{}, fmt.Errorf("forecast: %w", ErrNotFound)
	}
	return *resp.CurrentWeather, nil
}

func location(place models.GeocodingResult) string {
	parts := []string{place.Name}
	if strings.TrimSpace(place.Admin1) != "" {
		parts = append(parts, place.Admin1)
	}
	parts = append(parts, place.Country)
	return strings.Join(parts, ", ")
}

func withQuery(base string, params url.Values) string {
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + params.Encode()
}
