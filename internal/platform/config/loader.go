package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	platformerrors "github.com/GuillemIscla/live-bootcamp-project/internal/platform/errors"
)

// Environment variable names recognised by the loader. Secrets are supplied
// this way only; the yaml file never carries them.
const (
	EnvConfigPath  = "AUTH_CONFIG_PATH"
	EnvJWTSecret   = "JWT_SECRET"
	EnvDatabaseDSN = "DATABASE_DSN"
	EnvRedisAddr   = "REDIS_ADDR"
)

const defaultConfigPath = "config.yaml"

// Loader reads configuration from a yaml file plus environment overrides.
type Loader struct {
	useDotEnv bool
	path      string
}

// NewLoader creates a loader with dotenv support enabled.
func NewLoader() *Loader {
	return &Loader{useDotEnv: true}
}

// WithDotEnv toggles loading variables from a .env file before reading config.
func (l *Loader) WithDotEnv(enabled bool) *Loader {
	l.useDotEnv = enabled
	return l
}

// WithPath overrides the config file location (useful for tests).
func (l *Loader) WithPath(path string) *Loader {
	if path != "" {
		l.path = path
	}
	return l
}

// Result captures the loaded configuration and its origin path.
type Result struct {
	Config *Config
	Path   string
}

// Load reads the yaml file, applies env overrides and defaults, and
// validates the result.
func (l *Loader) Load() (*Result, error) {
	if l.useDotEnv {
		// Missing .env is fine, the process env still applies.
		_ = godotenv.Load()
	}

	path := l.path
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	if path == "" {
		path = defaultConfigPath
	}

	cfg := &Config{}
	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, platformerrors.Wrap(
				platformerrors.KindConfig, "load", "parse config file", err)
		}
	case os.IsNotExist(err):
		// No file at all is tolerated, env plus defaults may be enough.
	default:
		return nil, platformerrors.Wrap(
			platformerrors.KindConfig, "load", "read config file", err)
	}

	if secret := os.Getenv(EnvJWTSecret); secret != "" {
		cfg.Auth.JWTSecret = secret
	}
	if dsn := os.Getenv(EnvDatabaseDSN); dsn != "" {
		cfg.Stores.Users.DSN = dsn
	}
	if addr := os.Getenv(EnvRedisAddr); addr != "" {
		cfg.Stores.BannedTokens.Redis.Addr = addr
		cfg.Stores.TwoFACodes.Redis.Addr = addr
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return &Result{Config: cfg, Path: path}, nil
}

func validate(cfg *Config) error {
	if cfg.Auth.JWTSecret == "" {
		return platformerrors.New(platformerrors.KindConfig, "validate",
			fmt.Sprintf("%s must be set and not empty", EnvJWTSecret))
	}
	if cfg.Stores.Users.Driver == "sqlite" && cfg.Stores.Users.DSN == "" {
		return platformerrors.New(platformerrors.KindConfig, "validate",
			"sqlite user store requires a DSN")
	}
	if cfg.Stores.BannedTokens.Driver == "redis" && cfg.Stores.BannedTokens.Redis.Addr == "" {
		return platformerrors.New(platformerrors.KindConfig, "validate",
			"redis banned token store requires an address")
	}
	if cfg.Stores.TwoFACodes.Driver == "redis" && cfg.Stores.TwoFACodes.Redis.Addr == "" {
		return platformerrors.New(platformerrors.KindConfig, "validate",
			"redis 2FA code store requires an address")
	}
	return nil
}
