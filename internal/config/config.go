package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Airport store backends.
const (
	StoreMemory   = "memory"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
)

// Config is read once from the environment at startup.
type Config struct {
	AppEnv string
	Port   string

	FlightsPath  string
	AirportsPath string

	// AirportStore selects where coordinates are resolved from.
	AirportStore string
	AirportDBDSN string

	// Redis is used for the summary cache when RedisHost is set.
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	CacheTTL time.Duration

	RateLimitRPS   float64
	RateLimitBurst int

	CORSAllowedOrigins []string
}

// RedisAddr returns host:port, or "" when Redis is not configured.
func (c *Config) RedisAddr() string {
	if c.RedisHost == "" {
		return ""
	}
	return c.RedisHost + ":" + c.RedisPort
}

// Load reads the process environment.
func Load() (*Config, error) {
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from an arbitrary variable source.
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}

	cfg := &Config{
		AppEnv:        get("APP_ENV", "development"),
		Port:          get("PORT", "8080"),
		FlightsPath:   get("FLIGHTS_CSV", "./dataset/flights_tiny.csv"),
		AirportsPath:  get("AIRPORTS_CSV", "./dataset/airports_codes.csv"),
		AirportStore:  strings.ToLower(get("AIRPORT_STORE", StoreMemory)),
		AirportDBDSN:  get("AIRPORT_DB_DSN", ""),
		RedisHost:     get("REDIS_HOST", ""),
		RedisPort:     get("REDIS_PORT", "6379"),
		RedisPassword: get("REDIS_PASSWORD", ""),
	}

	var err error
	if cfg.RedisDB, err = strconv.Atoi(get("REDIS_DB", "0")); err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	ttl, err := strconv.Atoi(get("CACHE_TTL_SECONDS", "600"))
	if err != nil || ttl < 0 {
		return nil, fmt.Errorf("invalid CACHE_TTL_SECONDS %q", get("CACHE_TTL_SECONDS", ""))
	}
	cfg.CacheTTL = time.Duration(ttl) * time.Second

	if cfg.RateLimitRPS, err = strconv.ParseFloat(get("RATE_LIMIT_RPS", "10"), 64); err != nil || cfg.RateLimitRPS <= 0 {
		return nil, fmt.Errorf("invalid RATE_LIMIT_RPS %q", get("RATE_LIMIT_RPS", ""))
	}
	if cfg.RateLimitBurst, err = strconv.Atoi(get("RATE_LIMIT_BURST", "20")); err != nil || cfg.RateLimitBurst <= 0 {
		return nil, fmt.Errorf("invalid RATE_LIMIT_BURST %q", get("RATE_LIMIT_BURST", ""))
	}

	for _, o := range strings.Split(get("CORS_ALLOWED_ORIGINS", "https://*,http://localhost:8080"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
		}
	}

	switch cfg.AirportStore {
	case StoreMemory:
	case StoreSQLite:
		if cfg.AirportDBDSN == "" {
			cfg.AirportDBDSN = "file::memory:?cache=shared"
		}
	case StorePostgres:
		if cfg.AirportDBDSN == "" {
			return nil, fmt.Errorf("AIRPORT_DB_DSN is required for the postgres airport store")
		}
	default:
		return nil, fmt.Errorf("unknown AIRPORT_STORE %q", cfg.AirportStore)
	}

	return cfg, nil
}
