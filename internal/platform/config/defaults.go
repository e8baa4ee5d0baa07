package config

import "time"

const (
	defaultHTTPAddress = ":3000"
	defaultGRPCAddress = ":50051"
	defaultCookieName  = "jwt"
	defaultTokenTTL    = 10 * time.Minute
	defaultTwoFATTL    = 10 * time.Minute
)

// Argon2id cost defaults, sized for an interactive login path.
const (
	defaultArgonTime    = 3
	defaultArgonMemory  = 64 * 1024 // KiB
	defaultArgonThreads = 4
)

// applyDefaults fills gaps the config file left open.
func applyDefaults(cfg *Config) {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.GRPCAddress == "" {
		cfg.Server.GRPCAddress = defaultGRPCAddress
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Auth.TokenTTL <= 0 {
		cfg.Auth.TokenTTL = defaultTokenTTL
	}
	if cfg.Auth.TwoFATTL <= 0 {
		cfg.Auth.TwoFATTL = defaultTwoFATTL
	}
	if cfg.Auth.CookieName == "" {
		cfg.Auth.CookieName = defaultCookieName
	}
	if cfg.Auth.Argon2.Time == 0 {
		cfg.Auth.Argon2.Time = defaultArgonTime
	}
	if cfg.Auth.Argon2.Memory == 0 {
		cfg.Auth.Argon2.Memory = defaultArgonMemory
	}
	if cfg.Auth.Argon2.Threads == 0 {
		cfg.Auth.Argon2.Threads = defaultArgonThreads
	}
	if cfg.Stores.Users.Driver == "" {
		cfg.Stores.Users.Driver = "memory"
	}
	if cfg.Stores.BannedTokens.Driver == "" {
		cfg.Stores.BannedTokens.Driver = "memory"
	}
	if cfg.Stores.TwoFACodes.Driver == "" {
		cfg.Stores.TwoFACodes.Driver = "memory"
	}
}
