package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jimezsa/askmcp/internal/careers"
	"github.com/jimezsa/askmcp/internal/network"
	"github.com/jimezsa/askmcp/internal/weather"
	"github.com/yosuke-furukawa/json5/encoding/json5"
)

const (
	DirName        = "askmcp"
	ConfigFileName = "config.json"
	EnvPrefix      = "ASKMCP_"
)


// Config holds the upstream endpoints the adapters call.
type Config struct {
	GeocodingURL    string `json:"geocoding_url"`
	ForecastURL     string `json:"forecast_url"`
	ApplicationsURL string `json:"applications_url"`
	SchedulesURL    string `json:"schedules_url"`
	TimeoutSeconds  int    `json:"timeout_seconds"`
	UserAgent       string `json:"user_agent,omitempty"`
}

func DefaultConfig() Config {
	return Config{
		GeocodingURL:    weather.DefaultGeocodingURL,
		ForecastURL:     weather.DefaultForecastURL,
		ApplicationsURL: careers.DefaultApplicationsURL,
		SchedulesURL:    careers.DefaultSchedulesURL,
		TimeoutSeconds:  network.DefaultTimeoutSeconds,
	}
}

func ConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, DirName), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ConfigFileName), nil
}

// Load reads the config file, if any, then applies environment overrides.
func Load() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return applyEnv(DefaultConfig()), err
	}
	return LoadFile(path)
}

// LoadFile is Load for an explicit path. A missing or blank file yields
// the defaults.
func LoadFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return applyEnv(cfg), nil
		}
		return cfg, err
	}

	if len(strings.TrimSpace(string(data))) > 0 {
		if err := json5.Unmarshal(data, &cfg); err != nil {
			return cfg, err
		}
	}

	return applyEnv(cfg), nil
}

// Init writes the default config.json if it doesn't already exist.
func Init() ([]string, error) {
	var created []string

	dir, err := ConfigDir()
	if err != nil {
		return created, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return created, err
	}

	configPath := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		if err := writeConfig(configPath, DefaultConfig()); err != nil {
			return created, err
		}
		created = append(created, configPath)
	}

	return created, nil
}

func writeConfig(path string, cfg Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

func applyEnv(cfg Config) Config {
	cfg.GeocodingURL = envString(EnvPrefix+"GEOCODING_URL", cfg.GeocodingURL)
	cfg.ForecastURL = envString(EnvPrefix+"FORECAST_URL", cfg.ForecastURL)
	cfg.ApplicationsURL = envString(EnvPrefix+"APPLICATIONS_URL", cfg.ApplicationsURL)
	cfg.SchedulesURL = envString(EnvPrefix+"SCHEDULES_URL", cfg.SchedulesURL)
	cfg.TimeoutSeconds = envInt(EnvPrefix+"TIMEOUT_SECONDS", cfg.TimeoutSeconds)
	cfg.UserAgent = envString(EnvPrefix+"USER_AGENT", cfg.UserAgent)
	return cfg
}

func envString(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func envInt(key string, fallback int) int {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
