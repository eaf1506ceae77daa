package kmeans

import (
	"context"
	"testing"

	"github.com/hupe1980/fedskew/distance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFit(t *testing.T) {
	ctx := context.Background()
	// 2 clusters: (0,0) and (10,10)
	vecs := []float32{
		0, 0, 0, 1, 1, 0, // near 0,0
		10, 10, 10, 11, 11, 10, // near 10,10
	}
	dim := 2
	k := 2

	res, err := Fit(ctx, vecs, dim, k, distance.MetricL2, 100, 42)
	require.NoError(t, err)
	assert.Len(t, res.Assignments, 6)
	assert.Len(t, res.Centroids, k*dim)

	// The first three points end up together, and apart from the last three.
	assert.Equal(t, res.Assignments[0], res.Assignments[1])
	assert.Equal(t, res.Assignments[0], res.Assignments[2])
	assert.Equal(t, res.Assignments[3], res.Assignments[4])
	assert.Equal(t, res.Assignments[3], res.Assignments[5])
	assert.NotEqual(t, res.Assignments[0], res.Assignments[3])

	assert.Equal(t, 2, res.NonEmptyClusters(k))
}

func TestFit_Deterministic(t *testing.T) {
	ctx := context.Background()
	vecs := make([]float32, 50*3)
	for i := range vecs {
		vecs[i] = float32(i%17) * 0.5
	}

	a, err := Fit(ctx, vecs, 3, 4, distance.MetricL2, 100, 7)
	require.NoError(t, err)
	b, err := Fit(ctx, vecs, 3, 4, distance.MetricL2, 100, 7)
	require.NoError(t, err)

	assert.Equal(t, a.Assignments, b.Assignments)
	assert.Equal(t, a.Centroids, b.Centroids)
}

func TestFit_TooFewVectors(t *testing.T) {
	_, err := Fit(context.Background(), []float32{0, 0}, 2, 2, distance.MetricL2, 10, 42)
	assert.ErrorIs(t, err, ErrTooFewVectors)
}

func TestFit_InvalidArgs(t *testing.T) {
	ctx := context.Background()

	_, err := Fit(ctx, []float32{0, 0}, 0, 1, distance.MetricL2, 10, 42)
	assert.Error(t, err)

	_, err = Fit(ctx, []float32{0, 0}, 2, 0, distance.MetricL2, 10, 42)
	assert.Error(t, err)

	_, err = Fit(ctx, []float32{0, 0}, 2, 1, distance.Metric(999), 10, 42)
	assert.Error(t, err)
}

func TestFit_Cancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // Cancel immediately

	// Large enough to require iteration
	vecs := make([]float32, 1000*2)
	for i := range vecs {
		vecs[i] = float32(i)
	}

	_, err := Fit(ctx, vecs, 2, 10, distance.MetricL2, 1000, 42)
	assert.ErrorIs(t, err, context.Canceled)
}
