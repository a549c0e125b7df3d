package telegrambot

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// commandsTotal counts handled commands by name.
	commandsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bot_commands_total",
		Help: "Total number of handled bot commands",
	}, []string{"command"})

	// pollsCreatedTotal counts recommendation polls posted.
	pollsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bot_polls_created_total",
		Help: "Total number of recommendation polls posted",
	})

	// chartsSentTotal counts vote-tally charts sent back to chats.
	chartsSentTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bot_charts_sent_total",
		Help: "Total number of vote-tally charts sent",
	})

	// pollRoutingMissesTotal counts vote events that arrived for unknown polls.
	pollRoutingMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bot_poll_routing_misses_total",
		Help: "Total number of vote events dropped for unknown poll ids",
	})

	// handlerPanicsTotal counts panics recovered during update handling.
	handlerPanicsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bot_handler_panics_total",
		Help: "Total number of panics recovered while handling updates",
	})
)
