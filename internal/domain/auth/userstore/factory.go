package userstore

import "fmt"

// New creates a credential store based on the provided configuration.
func New(cfg Config, deps Dependencies) (Store, error) {
	if deps.Hasher == nil {
		return nil, fmt.Errorf("user store requires a password hasher")
	}

	driver := cfg.Driver
	if driver == "" {
		driver = DriverMemory
	}

	switch driver {
	case DriverMemory:
		return NewMemory(deps.Hasher), nil
	case DriverSQLite:
		if deps.DB == nil {
			return nil, fmt.Errorf("sqlite driver requires database handle")
		}
		return NewSQLite(deps.DB, deps.Hasher)
	default:
		return nil, fmt.Errorf("unsupported user store driver: %s", driver)
	}
}
