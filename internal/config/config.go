package config

import (
	"coldchain-dashboard/internal/view"
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config is the process configuration. TIME_LAYOUT has no tag default because
// go-env splits tag options on commas; empty selects view.DefaultTimeLayout.
type Config struct {
	DeliveryAPIURL     string        `env:"DELIVERY_API_URL,default=http://localhost:5000"`
	DeliveryAPITimeout time.Duration `env:"DELIVERY_API_TIMEOUT,default=10s"`
	Host               string        `env:"HOST"`
	Port               string        `env:"PORT,default=8080"`
	LogLevel           string        `env:"LOG_LEVEL,default=info"`
	ClockInterval      time.Duration `env:"CLOCK_INTERVAL,default=1s"`
	DisplayTimezone    string        `env:"DISPLAY_TIMEZONE,default=Local"`
	TimeLayout         string        `env:"TIME_LAYOUT"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT,default=10s"`
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	// A missing .env is fine: plain environment variables are enough.
	_ = godotenv.Load()

	es, err := env.EnvironToEnvSet(os.Environ())
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	return FromEnvSet(es)
}

func FromEnvSet(es env.EnvSet) (Config, error) {
	var cfg Config
	if err := env.Unmarshal(es, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	u, err := url.Parse(c.DeliveryAPIURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: DELIVERY_API_URL %q must be an absolute http(s) URL", ErrInvalidConfig, c.DeliveryAPIURL)
	}
	if c.DeliveryAPITimeout <= 0 {
		return fmt.Errorf("%w: DELIVERY_API_TIMEOUT must be positive", ErrInvalidConfig)
	}
	if c.ClockInterval <= 0 {
		return fmt.Errorf("%w: CLOCK_INTERVAL must be positive", ErrInvalidConfig)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: SHUTDOWN_TIMEOUT must be positive", ErrInvalidConfig)
	}
	if _, err := c.TimeFormatter(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Addr is the listen address of the dashboard server.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func (c Config) TimeFormatter() (view.TimeFormatter, error) {
	return view.NewTimeFormatter(c.TimeLayout, c.DisplayTimezone)
}
