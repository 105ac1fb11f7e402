package config

import "time"

// Redis is optional: an empty address disables the scorecard cache and the
// transcript queue.
type Redis struct {
	Address            string        `env:"REDIS_ADDRESS"`
	Username           string        `env:"REDIS_USERNAME"`
	Password           string        `env:"REDIS_PASSWORD" json:"-"`
	DatabaseNumber     int           `env:"REDIS_DB" envDefault:"0"`
	PoolSize           int           `env:"REDIS_POOL_SIZE" envDefault:"10"`
	MinIdleConnections int           `env:"REDIS_MIN_IDLE_CONNS" envDefault:"1"`
	MaxIdleConnections int           `env:"REDIS_MAX_IDLE_CONNS" envDefault:"5"`
	ScorecardTTL       time.Duration `env:"SCORECARD_CACHE_TTL" envDefault:"5m"`
}

func (r Redis) Enabled() bool {
	return r.Address != ""
}
