package config

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.SessionSecret) < 32 {
		return fmt.Errorf("auth.session_secret must be at least 32 characters (got %d)", len(c.Auth.SessionSecret))
	}
	if c.Auth.SessionTTL <= 0 {
		return fmt.Errorf("auth.session_ttl must be > 0 (got %v)", c.Auth.SessionTTL)
	}
	if c.Auth.CookieName == "" {
		return fmt.Errorf("auth.cookie_name must not be empty")
	}
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.bcrypt_cost must be in [%d, %d] (got %d)", bcrypt.MinCost, bcrypt.MaxCost, c.Auth.BcryptCost)
	}

	if err := c.Session.validate(); err != nil {
		return fmt.Errorf("session: %w", err)
	}

	if c.RateLimit.AuthPerMinute <= 0 {
		return fmt.Errorf("rate_limit.auth_per_minute must be > 0 (got %d)", c.RateLimit.AuthPerMinute)
	}
	if c.RateLimit.AuthBurst <= 0 {
		return fmt.Errorf("rate_limit.auth_burst must be > 0 (got %d)", c.RateLimit.AuthBurst)
	}

	return nil
}

func (s *SessionConfig) validate() error {
	switch s.Store {
	case SessionStorePostgres:
		return nil
	case SessionStoreRedis:
		if s.RedisAddr == "" {
			return fmt.Errorf("redis_addr is required when store is %q", SessionStoreRedis)
		}
		return nil
	default:
		return fmt.Errorf("store must be %q or %q (got %q)", SessionStorePostgres, SessionStoreRedis, s.Store)
	}
}
