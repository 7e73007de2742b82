package coordinator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/crossgov/crossgov-core/poll"
)

var (
	pollsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "crossgov",
		Subsystem: "polls",
		Name:      "created_total",
		Help:      "Number of poll mirrors created from parent commands.",
	})
	votesCast = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "crossgov",
		Subsystem: "polls",
		Name:      "votes_cast_total",
		Help:      "Number of ballots recorded.",
	})
	pollsClosed = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "crossgov",
		Subsystem: "polls",
		Name:      "closed_total",
		Help:      "Number of polls closed and settled back to the parent chain.",
	})
)

func recordMetrics(event poll.Event) {
	switch event.(type) {
	case poll.PollCreated:
		pollsCreated.Inc()
	case poll.VoteCast:
		votesCast.Inc()
	case poll.PollClosed:
		pollsClosed.Inc()
	}
}
