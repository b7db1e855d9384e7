package metrics_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/desdiag/diagnosability"
	"github.com/katalvlaran/desdiag/metrics"
)

func TestRecordBuild(t *testing.T) {
	r := metrics.NewRegistry()
	r.RecordBuild(false, nil, 2*time.Millisecond)
	r.RecordBuild(false, nil, time.Millisecond)
	r.RecordBuild(true, errors.New("boom"), time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.BuildsTotal.WithLabelValues("single", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.BuildsTotal.WithLabelValues("multi", "error")))
}

func TestRecordCheck(t *testing.T) {
	r := metrics.NewRegistry()
	r.RecordCheck(true, false, time.Millisecond, diagnosability.Stats{ObserverNodes: 12, CompositeNodes: 40})
	r.RecordCheck(true, true, time.Millisecond, diagnosability.Stats{ObserverNodes: 8, CompositeNodes: 20})

	assert.Equal(t, 1.0, testutil.ToFloat64(r.ChecksTotal.WithLabelValues("multi", "not_diagnosable")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.ChecksTotal.WithLabelValues("multi", "diagnosable")))

	var m dto.Metric
	require.NoError(t, r.ObserverNodes.Write(&m))
	assert.Equal(t, uint64(2), m.GetHistogram().GetSampleCount())
	assert.Equal(t, 20.0, m.GetHistogram().GetSampleSum())
}

func TestWriteText(t *testing.T) {
	r := metrics.NewRegistry()
	r.RecordGenerate(3)
	r.RecordBuild(false, nil, time.Millisecond)

	var buf bytes.Buffer
	require.NoError(t, r.WriteText(&buf))
	out := buf.String()
	assert.Contains(t, out, "desdiag_generate_attempts_count 1")
	assert.Contains(t, out, `desdiag_builds_total{mode="single",status="ok"} 1`)

	families, err := r.Gatherer().Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestRegistriesIndependent(t *testing.T) {
	a, b := metrics.NewRegistry(), metrics.NewRegistry()
	a.RecordGenerate(1)
	assert.Equal(t, 1, testutil.CollectAndCount(a.GenerateAttempts))

	var m dto.Metric
	require.NoError(t, b.GenerateAttempts.Write(&m))
	assert.Zero(t, m.GetHistogram().GetSampleCount())
}
