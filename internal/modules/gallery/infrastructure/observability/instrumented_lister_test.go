package observability

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/saransh1220/gallery-backend/internal/modules/gallery/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listerFunc func(context.Context, domain.ResourceKind, int, bool) ([]domain.RawRecord, error)

func (f listerFunc) ListResources(ctx context.Context, kind domain.ResourceKind, maxResults int, withContext bool) ([]domain.RawRecord, error) {
	return f(ctx, kind, maxResults, withContext)
}

func TestInstrumentedLister_RecordsOutcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	fail := false
	next := listerFunc(func(_ context.Context, kind domain.ResourceKind, maxResults int, withContext bool) ([]domain.RawRecord, error) {
		assert.Equal(t, 500, maxResults)
		assert.True(t, withContext)
		if fail {
			return nil, errors.New("boom")
		}
		return []domain.RawRecord{{AssetID: "1"}, {AssetID: "2"}}, nil
	})

	l := NewInstrumentedLister(next, "cloudinary", reg)

	records, err := l.ListResources(context.Background(), domain.KindImage, 500, true)
	require.NoError(t, err)
	assert.Len(t, records, 2)

	fail = true
	_, err = l.ListResources(context.Background(), domain.KindVideo, 500, true)
	require.EqualError(t, err, "boom")

	assert.Equal(t, 1.0, testutil.ToFloat64(l.requests.WithLabelValues("cloudinary", "image", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(l.requests.WithLabelValues("cloudinary", "video", "error")))
	assert.Equal(t, 2.0, testutil.ToFloat64(l.resources.WithLabelValues("cloudinary", "image")))
	assert.Equal(t, 2, testutil.CollectAndCount(l.duration))
}

func TestInstrumentedLister_SeparateRegistries(t *testing.T) {
	next := listerFunc(func(context.Context, domain.ResourceKind, int, bool) ([]domain.RawRecord, error) { return nil, nil })

	assert.NotPanics(t, func() {
		NewInstrumentedLister(next, "s3", prometheus.NewRegistry())
		NewInstrumentedLister(next, "s3", prometheus.NewRegistry())
	})
}
