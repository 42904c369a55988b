package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/mental-detox/internal/domain"
)

type fakeSnapshot struct {
	loaded  bool
	records []domain.Record
}

func (f fakeSnapshot) Loaded() bool                 { return f.loaded }
func (f fakeSnapshot) Records() []domain.Record     { return f.records }
func (f fakeSnapshot) Index() *domain.CategoryIndex { return domain.NewCategoryIndex(f.records) }
func (f fakeSnapshot) LoadError() error             { return nil }

func TestNewDataset_RegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()

	d, err := NewDataset(reg)
	require.NoError(t, err)
	require.NotNil(t, d)

	_, err = NewDataset(reg)
	require.Error(t, err, "registering twice must fail")
}

func TestDataset_ObserveSnapshot(t *testing.T) {
	d, err := NewDataset(prometheus.NewRegistry())
	require.NoError(t, err)

	d.ObserveSnapshot(fakeSnapshot{
		loaded:  true,
		records: []domain.Record{{Issue: "Anxiety"}, {Issue: "anxiety"}, {Issue: "Stress"}},
	}, 4)

	assert.InDelta(t, 1, testutil.ToFloat64(d.loaded), 0)
	assert.InDelta(t, 3, testutil.ToFloat64(d.records), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(d.categories), 0)
	assert.InDelta(t, 4, testutil.ToFloat64(d.skipped), 0)

	d.ObserveSnapshot(fakeSnapshot{}, 0)

	assert.InDelta(t, 0, testutil.ToFloat64(d.loaded), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(d.records), 0)
}

func TestDataset_ObserveSample(t *testing.T) {
	d, err := NewDataset(prometheus.NewRegistry())
	require.NoError(t, err)

	d.ObserveSample(OutcomeHit)
	d.ObserveSample(OutcomeHit)
	d.ObserveSample(OutcomeNotFound)

	assert.InDelta(t, 2, testutil.ToFloat64(d.samples.WithLabelValues(OutcomeHit)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(d.samples.WithLabelValues(OutcomeNotFound)), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(d.samples.WithLabelValues(OutcomeInvalid)), 0)
}

func TestDataset_NilIsNoop(t *testing.T) {
	var d *Dataset

	assert.NotPanics(t, func() {
		d.ObserveSnapshot(fakeSnapshot{loaded: true}, 1)
		d.ObserveSample(OutcomeHit)
	})
}
