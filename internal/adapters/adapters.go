package adapters

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jimezsa/askmcp/internal/careers"
	"github.com/jimezsa/askmcp/internal/tool"
	"github.com/jimezsa/askmcp/internal/weather"
	"github.com/rs/zerolog"
)

const (
	Weather      = "weather"
	Applications = "applications"
	Schedules    = "schedules"
)

// Service is an adapter plus the identity it announces when served.
type Service struct {
	*tool.Adapter
	Info tool.Info
}

type Deps struct {
	Weather *weather.Client
	Careers *careers.Client
	Logger  zerolog.Logger
	Now     func() time.Time
}

var (
	cityField     = tool.Field{Name: "city", Description: "City to look up, e.g. Paris."}
	questionField = tool.Field{Name: "question", Description: "Free-text question."}
)

// Registry builds every adapter, keyed by its short name.
func Registry(deps Deps) (map[string]Service, error) {
	if deps.Now == nil {
		deps.Now = time.Now
	}

	specs := []struct {
		key         string
		name        string
		description string
		fields      []tool.Field
		handler     tool.Handler
		info        tool.Info
	}{
		{
			key:         Weather,
			name:        "askWeather",
			description: "Current weather for a city: temperature, rain, wind, forecast or a full summary.",
			fields:      []tool.Field{cityField, questionField},
			handler:     weatherHandler(deps.Weather),
			info:        tool.Info{Name: "Live Weather MCP", Version: "1.2.0"},
		},
		{
			key:         Applications,
			name:        "askJobApplications",
			description: "Answer questions about job applications: today, by name, by role, counts, latest.",
			fields:      []tool.Field{questionField},
			handler:     applicationsHandler(deps.Careers, deps.Now),
			info:        tool.Info{Name: "Job Applications MCP", Version: "1.0.0"},
		},
		{
			key:         Schedules,
			name:        "askSchedules",
			description: "Answer questions about interview schedules: today, by name, by role, online/offline, counts.",
			fields:      []tool.Field{questionField},
			handler:     schedulesHandler(deps.Careers, deps.Now),
			info:        tool.Info{Name: "Interview Schedule MCP", Version: "1.0.0"},
		},
	}

	services := make(map[string]Service, len(specs))
	for _, spec := range specs {
		adapter, err := tool.New(spec.name, spec.description, tool.StringSchema(spec.fields...), spec.handler, deps.Logger)
		if err != nil {
			return nil, err
		}
		services[spec.key] = Service{Adapter: adapter, Info: spec.info}
	}
	return services, nil
}

// Lookup finds a service by short name or operation name, case-insensitively.
func Lookup(services map[string]Service, name string) (Service, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if svc, ok := services[name]; ok {
		return svc, nil
	}
	for _, svc := range services {
		if strings.ToLower(svc.Name) == name {
			return svc, nil
		}
	}
	return Service{}, fmt.Errorf("unknown tool: %s (want one of %s)", name, strings.Join(Names(services), ", "))
}

func Names(services map[string]Service) []string {
	names := make([]string, 0, len(services))
	for name := range services {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func weatherHandler(client *weather.Client) tool.Handler {
	return func(ctx context.Context, args tool.Args) (string, error) {
		city := args[cityField.Name]
		report, err := client.Lookup(ctx, city)
		if err != nil {
			logger := zerolog.Ctx(ctx)
			if errors.Is(err, weather.ErrNotFound) {
				logger.Info().Str("city", city).Err(err).Msg("no weather data")
			} else {
				logger.Error().Str("city", city).Err(err).Msg("weather fetch failed")
			}
			return weather.NotAvailable(city), nil
		}
		return weather.Answer(report, args[questionField.Name]), nil
	}
}

func applicationsHandler(client *careers.Client, now func() time.Time) tool.Handler {
	return func(ctx context.Context, args tool.Args) (string, error) {
		apps, err := client.Applications(ctx)
		if err != nil {
			return "", err
		}
		return careers.AnswerApplications(apps, args[questionField.Name], now()), nil
	}
}

func schedulesHandler(client *careers.Client, now func() time.Time) tool.Handler {
	return func(ctx context.Context, args tool.Args) (string, error) {
		schedules, err := client.Schedules(ctx)
		if err != nil {
			return "", err
		}
		return careers.AnswerSchedules(schedules, args[questionField.Name], now()), nil
	}
}
