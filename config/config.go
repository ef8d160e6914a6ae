package config

import (
	"fmt"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

var dotEnvOnce sync.Once

// loadDotEnv pulls a local .env file into the environment for ENV=LOCAL runs.
// Deployed functions get their environment from the Netlify site settings.
func loadDotEnv() {
	dotEnvOnce.Do(func() {
		if os.Getenv("ENV") == "LOCAL" {
			_ = godotenv.Load()
		}
	})
}

// Square holds the credentials and location used for server-side Square
// calls. Both values are required; a missing variable is a configuration
// error, never a silent fallback.
type Square struct {
	AccessToken string `envconfig:"SQUARE_ACCESS_TOKEN" required:"true"`
	LocationId  string `envconfig:"SQUARE_LOCATION_ID" required:"true"`
}

// OAuth holds the application credentials for the authorization-code
// exchange.
type OAuth struct {
	AppId     string `envconfig:"SQUARE_APP_ID" required:"true"`
	AppSecret string `envconfig:"SQUARE_APP_SECRET" required:"true"`
}

// App holds the per-function behavior knobs.
type App struct {
	FallbackPolicy string `envconfig:"FALLBACK_POLICY" default:"on-empty"`
}

// requireAll rejects empty values: envconfig's required tag only catches
// variables that are entirely unset, and a blank variable in the Netlify site
// settings must fail just as loudly.
func requireAll(vars map[string]string) error {
	for name, value := range vars {
		if value == "" {
			return fmt.Errorf("invalid or incomplete Square environment variables: %s is not set", name)
		}
	}
	return nil
}

func LoadSquare() (*Square, error) {
	loadDotEnv()
	var cfg Square
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("invalid or incomplete Square environment variables:\n>>> %w", err)
	}
	if err := requireAll(map[string]string{
		"SQUARE_ACCESS_TOKEN": cfg.AccessToken,
		"SQUARE_LOCATION_ID":  cfg.LocationId,
	}); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func LoadOAuth() (*OAuth, error) {
	loadDotEnv()
	var cfg OAuth
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("invalid or incomplete Square OAuth environment variables:\n>>> %w", err)
	}
	if err := requireAll(map[string]string{
		"SQUARE_APP_ID":     cfg.AppId,
		"SQUARE_APP_SECRET": cfg.AppSecret,
	}); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func LoadApp() *App {
	loadDotEnv()
	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		// Only default-valued fields, so this cannot fail on a missing
		// variable; keep the defaults on the off chance it does.
		return &App{FallbackPolicy: "on-empty"}
	}
	if cfg.FallbackPolicy == "" {
		// envconfig only applies the default when the variable is unset, not
		// when it is blank.
		cfg.FallbackPolicy = "on-empty"
	}
	return &cfg
}
