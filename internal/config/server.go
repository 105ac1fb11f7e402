package config

import "time"

type Server struct {
	ListenAddress       string        `env:"HTTP_LISTEN_ADDRESS" envDefault:":8080"`
	ProbeListenAddress  string        `env:"PROBE_LISTEN_ADDRESS" envDefault:":8091"`
	MetricListenAddress string        `env:"METRIC_LISTEN_ADDRESS" envDefault:":8092"`
	ShutdownTimeout     time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"5s"`
	LogFieldMaxLen      int           `env:"LOG_FIELD_MAX_LEN" envDefault:"2048"`

	// AdminToken guards the feedback listing endpoint. Empty disables it.
	AdminToken string `env:"ADMIN_TOKEN" json:"-"`

	Version string `env:"APP_VERSION" envDefault:"dev"`
}
