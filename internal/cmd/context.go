package cmd

import (
	"io"

	"github.com/jimezsa/askmcp/internal/adapters"
	"github.com/jimezsa/askmcp/internal/careers"
	"github.com/jimezsa/askmcp/internal/config"
	"github.com/jimezsa/askmcp/internal/network"
	"github.com/jimezsa/askmcp/internal/ui"
	"github.com/jimezsa/askmcp/internal/weather"
	"github.com/rs/zerolog"
)

type Context struct {
	In         io.Reader
	Out        io.Writer
	Err        io.Writer
	UI         *ui.UI
	Config     config.Config
	ConfigDir  string
	Logger     zerolog.Logger
	Verbose    bool
	JSONOutput bool
	Version    string
	ColorMode  ui.ColorMode

	// Doer replaces the upstream HTTP client when set.
	Doer network.Doer
}

func (c *Context) doer() (network.Doer, error) {
	if c.Doer != nil {
		return c.Doer, nil
	}
	userAgent := c.Config.UserAgent
	if userAgent == "" {
		userAgent = "askmcp/" + c.Version
	}
	return network.NewClient(c.Config.TimeoutSeconds, userAgent)
}

func (c *Context) careersClient() (*careers.Client, error) {
	doer, err := c.doer()
	if err != nil {
		return nil, err
	}
	return careers.NewClient(doer, c.Config.ApplicationsURL, c.Config.SchedulesURL), nil
}

func (c *Context) services() (map[string]adapters.Service, error) {
	doer, err := c.doer()
	if err != nil {
		return nil, err
	}
	return adapters.Registry(adapters.Deps{
		Weather: weather.NewClient(doer, c.Config.GeocodingURL, c.Config.ForecastURL),
		Careers: careers.NewClient(doer, c.Config.ApplicationsURL, c.Config.SchedulesURL),
		Logger:  c.Logger,
	})
}
