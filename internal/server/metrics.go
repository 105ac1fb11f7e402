package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// chatReplies counts relay outcomes; "fallback" means the canned reply was
// served instead of an upstream answer.
var chatReplies = promauto.NewCounterVec( //nolint:gochecknoglobals
	prometheus.CounterOpts{
		Name: "chat_replies_total",
		Help: "Chat relay replies by outcome.",
	},
	[]string{"outcome"},
)

const (
	chatOutcomeOK       = "ok"
	chatOutcomeFallback = "fallback"
)
