package metrics

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"
	"github.com/rs/zerolog/log"
)

// DefaultPushTimeout bounds a push when no timeout is configured.
const DefaultPushTimeout = time.Second

// Recorder collects counters for a single invocation.
// Each process is short-lived, so values reach Prometheus through a Pushgateway.
type Recorder struct {
	registry *prometheus.Registry

	// Queries counts filter invocations by outcome (ok, invalid_pattern, error).
	Queries *prometheus.CounterVec
	// RecordsScanned counts dataset records run through the matcher.
	RecordsScanned prometheus.Counter
	// RecordsMatched counts records emitted as items.
	RecordsMatched prometheus.Counter
}

// NewRecorder registers the counters on a private registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)
	return &Recorder{
		registry: reg,
		Queries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "emojifilter_queries_total",
				Help: "Total number of filter invocations.",
			},
			[]string{"status"},
		),
		RecordsScanned: factory.NewCounter(prometheus.CounterOpts{
			Name: "emojifilter_records_scanned_total",
			Help: "Total number of emoji records checked against the query.",
		}),
		RecordsMatched: factory.NewCounter(prometheus.CounterOpts{
			Name: "emojifilter_records_matched_total",
			Help: "Total number of emoji records emitted as items.",
		}),
	}
}

// Push sends the counters to the Pushgateway at url. An empty url is a no-op.
func (r *Recorder) Push(ctx context.Context, url, job string) error {
	if url == "" {
		log.Debug().Msg("Pushgateway URL not configured, metrics will not be pushed.")
		return nil
	}
	if job == "" {
		job = "emoji_filter"
	}
	if err := push.New(url, job).Gatherer(r.registry).PushContext(ctx); err != nil {
		return fmt.Errorf("pushing metrics to %s: %w", url, err)
	}
	log.Debug().Str("url", url).Str("job", job).Msg("Pushed metrics")
	return nil
}
