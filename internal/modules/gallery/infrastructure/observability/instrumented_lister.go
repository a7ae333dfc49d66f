package observability

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/saransh1220/gallery-backend/internal/modules/gallery/domain"
)

// InstrumentedLister records upstream call counts, latency and listed
// resources around another ResourceLister.
type InstrumentedLister struct {
	next      domain.ResourceLister
	provider  string
	requests  *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	resources *prometheus.CounterVec
}

func NewInstrumentedLister(next domain.ResourceLister, provider string, reg prometheus.Registerer) *InstrumentedLister {
	factory := promauto.With(reg)
	return &InstrumentedLister{
		next:     next,
		provider: provider,
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gallery_upstream_requests_total",
			Help: "Upstream listing calls by provider, resource kind and outcome.",
		}, []string{"provider", "kind", "outcome"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "gallery_upstream_request_duration_seconds",
			Help:    "Duration of upstream listing calls in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"provider", "kind"}),
		resources: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "gallery_upstream_resources_total",
			Help: "Resources returned by upstream listing calls.",
		}, []string{"provider", "kind"}),
	}
}

func (l *InstrumentedLister) ListResources(ctx context.Context, kind domain.ResourceKind, maxResults int, withContext bool) ([]domain.RawRecord, error) {
	start := time.Now()
	records, err := l.next.ListResources(ctx, kind, maxResults, withContext)
	l.duration.WithLabelValues(l.provider, string(kind)).Observe(time.Since(start).Seconds())

	if err != nil {
		l.requests.WithLabelValues(l.provider, string(kind), "error").Inc()
		return nil, err
	}
	l.requests.WithLabelValues(l.provider, string(kind), "success").Inc()
	l.resources.WithLabelValues(l.provider, string(kind)).Add(float64(len(records)))
	return records, nil
}
