package silhouette

import (
	"testing"

	"github.com/hupe1980/fedskew/distance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore_WellSeparated(t *testing.T) {
	vecs := []float32{
		0, 0, 0, 1, 1, 0,
		10, 10, 10, 11, 11, 10,
	}
	assignments := []int{0, 0, 0, 1, 1, 1}

	score, err := Score(vecs, 2, 2, assignments, distance.MetricL2)
	require.NoError(t, err)
	assert.Greater(t, score, 0.9)
	assert.LessOrEqual(t, score, 1.0)
}

func TestScore_BadPartitionScoresLower(t *testing.T) {
	vecs := []float32{
		0, 0, 0, 1, 1, 0,
		10, 10, 10, 11, 11, 10,
	}
	good := []int{0, 0, 0, 1, 1, 1}
	bad := []int{0, 1, 0, 1, 0, 1} // mixes the two blobs

	goodScore, err := Score(vecs, 2, 2, good, distance.MetricL2)
	require.NoError(t, err)
	badScore, err := Score(vecs, 2, 2, bad, distance.MetricL2)
	require.NoError(t, err)

	assert.Greater(t, goodScore, badScore)
}

func TestScore_SingleCluster(t *testing.T) {
	vecs := []float32{0, 0, 1, 1, 2, 2}
	assignments := []int{0, 0, 0}

	_, err := Score(vecs, 2, 2, assignments, distance.MetricL2)
	assert.ErrorIs(t, err, ErrDegenerate)
}

func TestScore_Singleton(t *testing.T) {
	vecs := []float32{0, 0, 0, 1, 10, 10}
	assignments := []int{0, 0, 1} // cluster 1 is a singleton

	score, err := Score(vecs, 2, 2, assignments, distance.MetricL2)
	require.NoError(t, err)
	// Only the two non-singleton points contribute; both are well placed.
	assert.Greater(t, score, 0.0)
}

func TestScore_Errors(t *testing.T) {
	_, err := Score([]float32{0, 0}, 2, 1, []int{0, 0}, distance.MetricL2)
	assert.Error(t, err) // assignment length mismatch

	_, err = Score([]float32{0, 0}, 2, 1, []int{0}, distance.Metric(999))
	assert.Error(t, err) // invalid metric
}
