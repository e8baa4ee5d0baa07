package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
	Auth   AuthConfig   `yaml:"auth"`
	Stores StoresConfig `yaml:"stores"`
}

type ServerConfig struct {
	HTTPAddress string `yaml:"http_address"`
	GRPCAddress string `yaml:"grpc_address"`
}

type LogConfig struct {
	Level  string `yaml:"log_level"`
	Format string `yaml:"log_format"`
	Output string `yaml:"log_output"`
}

// AuthConfig groups everything the token service and hasher need. The JWT
// secret is only ever read from the environment, never from the yaml file.
type AuthConfig struct {
	JWTSecret    string        `yaml:"-"`
	TokenTTL     time.Duration `yaml:"token_ttl"`
	TwoFATTL     time.Duration `yaml:"two_fa_ttl"`
	CookieName   string        `yaml:"cookie_name"`
	CookieDomain string        `yaml:"cookie_domain"`
	Argon2       Argon2Config  `yaml:"argon2"`
}

// UnmarshalYAML accepts "10m" style durations for the TTL fields.
func (a *AuthConfig) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		TokenTTL     string       `yaml:"token_ttl"`
		TwoFATTL     string       `yaml:"two_fa_ttl"`
		CookieName   string       `yaml:"cookie_name"`
		CookieDomain string       `yaml:"cookie_domain"`
		Argon2       Argon2Config `yaml:"argon2"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}

	if raw.TokenTTL != "" {
		d, err := time.ParseDuration(raw.TokenTTL)
		if err != nil {
			return fmt.Errorf("parse token_ttl: %w", err)
		}
		a.TokenTTL = d
	}
	if raw.TwoFATTL != "" {
		d, err := time.ParseDuration(raw.TwoFATTL)
		if err != nil {
			return fmt.Errorf("parse two_fa_ttl: %w", err)
		}
		a.TwoFATTL = d
	}
	a.CookieName = raw.CookieName
	a.CookieDomain = raw.CookieDomain
	a.Argon2 = raw.Argon2
	return nil
}

// Argon2Config carries the argon2id cost parameters.
type Argon2Config struct {
	Time    uint32 `yaml:"time"`
	Memory  uint32 `yaml:"memory"`
	Threads uint8  `yaml:"threads"`
}

type StoresConfig struct {
	Users        UserStoreConfig     `yaml:"users"`
	BannedTokens KeyValueStoreConfig `yaml:"banned_tokens"`
	TwoFACodes   KeyValueStoreConfig `yaml:"two_fa_codes"`
}

type UserStoreConfig struct {
	Driver string `yaml:"driver"` // "memory" or "sqlite"
	DSN    string `yaml:"dsn"`
}

type KeyValueStoreConfig struct {
	Driver string      `yaml:"driver"` // "memory" or "redis"
	Redis  RedisConfig `yaml:"redis,omitempty"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Username string `yaml:"username,omitempty"`
	Password string `yaml:"password,omitempty"`
	DB       int    `yaml:"db,omitempty"`
	Prefix   string `yaml:"prefix,omitempty"`
}
