package config

import "time"

type Worker struct {
	LeaderboardWarmInterval time.Duration `env:"LEADERBOARD_WARM_INTERVAL" envDefault:"25s"`
}
