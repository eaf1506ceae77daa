// Package silhouette computes the mean silhouette coefficient of a
// clustering, the quality score used to pick the cluster count.
package silhouette

import (
	"errors"

	"github.com/hupe1980/fedskew/distance"
)

// ErrDegenerate is returned when the partition has fewer than 2 non-empty
// clusters; the silhouette coefficient is undefined there.
var ErrDegenerate = errors.New("silhouette: need at least 2 non-empty clusters")

// Score returns the mean silhouette coefficient in [-1, 1] of the given
// assignment over n = len(vectors)/dim vectors. Higher means better
// separation. Points in singleton clusters score 0, following the common
// reference behavior.
func Score(vectors []float32, dim, k int, assignments []int, metric distance.Metric) (float64, error) {
	distFunc, err := distance.Provider(metric)
	if err != nil {
		return 0, err
	}

	n := len(vectors) / dim
	if len(assignments) != n {
		return 0, errors.New("silhouette: assignments length does not match vector count")
	}

	sizes := make([]int, k)
	for _, c := range assignments {
		sizes[c]++
	}
	nonEmpty := 0
	for _, s := range sizes {
		if s > 0 {
			nonEmpty++
		}
	}
	if nonEmpty < 2 {
		return 0, ErrDegenerate
	}

	// Accumulated per-point mean distance to each cluster, computed from one
	// pass over all pairs.
	dists := make([]float64, n*k)
	for i := 0; i < n; i++ {
		vi := vectors[i*dim : (i+1)*dim]
		for j := i + 1; j < n; j++ {
			d := float64(distFunc(vi, vectors[j*dim:(j+1)*dim]))
			dists[i*k+assignments[j]] += d
			dists[j*k+assignments[i]] += d
		}
	}

	var total float64
	for i := 0; i < n; i++ {
		own := assignments[i]
		if sizes[own] == 1 {
			continue // singleton scores 0
		}

		a := dists[i*k+own] / float64(sizes[own]-1)

		b := -1.0
		for c := 0; c < k; c++ {
			if c == own || sizes[c] == 0 {
				continue
			}
			mean := dists[i*k+c] / float64(sizes[c])
			if b < 0 || mean < b {
				b = mean
			}
		}

		max := a
		if b > max {
			max = b
		}
		if max > 0 {
			total += (b - a) / max
		}
	}

	return total / float64(n), nil
}
