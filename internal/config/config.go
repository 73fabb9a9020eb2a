package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Session   SessionConfig   `yaml:"session"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Log       LogConfig       `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// AuthConfig holds session-token and password settings.
type AuthConfig struct {
	SessionSecret string        `yaml:"session_secret" env:"AUTH_SESSION_SECRET" env-required:"true"`
	Issuer        string        `yaml:"issuer"         env:"AUTH_ISSUER"         env-default:"learning-log"`
	SessionTTL    time.Duration `yaml:"session_ttl"    env:"AUTH_SESSION_TTL"    env-default:"336h"`
	CookieName    string        `yaml:"cookie_name"    env:"AUTH_COOKIE_NAME"    env-default:"ll_session"`
	BcryptCost    int           `yaml:"bcrypt_cost"    env:"AUTH_BCRYPT_COST"    env-default:"12"`

	// CookieInsecure drops the Secure attribute for plain-HTTP development.
	// It is inverted so that an unset value stays secure.
	CookieInsecure bool `yaml:"cookie_insecure" env:"AUTH_COOKIE_INSECURE"`
}

// Session store backends.
const (
	SessionStorePostgres = "postgres"
	SessionStoreRedis    = "redis"
)

// SessionConfig selects where sessions are stored.
type SessionConfig struct {
	Store         string `yaml:"store"          env:"SESSION_STORE"          env-default:"postgres"`
	RedisAddr     string `yaml:"redis_addr"     env:"SESSION_REDIS_ADDR"`
	RedisPassword string `yaml:"redis_password" env:"SESSION_REDIS_PASSWORD"`
	RedisDB       int    `yaml:"redis_db"       env:"SESSION_REDIS_DB"       env-default:"0"`
}

// RateLimitConfig limits login and registration attempts per client IP.
type RateLimitConfig struct {
	AuthPerMinute int `yaml:"auth_per_minute" env:"RATE_LIMIT_AUTH_PER_MINUTE" env-default:"10"`
	AuthBurst     int `yaml:"auth_burst"      env:"RATE_LIMIT_AUTH_BURST"      env-default:"5"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// SecureCookie reports whether the session cookie carries the Secure attribute.
func (a AuthConfig) SecureCookie() bool { return !a.CookieInsecure }
