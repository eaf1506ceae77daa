// Package kmeans implements seed-deterministic Lloyd's clustering over flat
// float32 vectors. Identical (vectors, k, seed) inputs always produce
// identical assignments.
package kmeans

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/hupe1980/fedskew/distance"
)

// ErrTooFewVectors is returned when there are fewer vectors than clusters.
var ErrTooFewVectors = errors.New("kmeans: fewer vectors than clusters")

// Result holds the output of a clustering run.
type Result struct {
	// Assignments maps each vector index to a cluster id in [0, k).
	Assignments []int

	// Centroids is the flattened centroid matrix (k * dim).
	Centroids []float32
}

// Fit clusters n = len(vectors)/dim vectors into k groups using Lloyd's
// algorithm. Centroids are initialized from a seeded permutation of the data
// points, so the run is fully deterministic for a fixed seed.
func Fit(ctx context.Context, vectors []float32, dim, k int, metric distance.Metric, maxIter int, seed int64) (*Result, error) {
	if dim <= 0 {
		return nil, fmt.Errorf("kmeans: dim must be positive, got %d", dim)
	}
	if k < 1 {
		return nil, fmt.Errorf("kmeans: k must be >= 1, got %d", k)
	}
	n := len(vectors) / dim
	if n < k {
		return nil, fmt.Errorf("%w: %d vectors, k=%d", ErrTooFewVectors, n, k)
	}

	distFunc, err := distance.Provider(metric)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(seed))

	centroids := make([]float32, k*dim)
	perm := rng.Perm(n)
	for i := 0; i < k; i++ {
		copy(centroids[i*dim:(i+1)*dim], vectors[perm[i]*dim:(perm[i]+1)*dim])
	}

	assignments := make([]int, n)
	for i := range assignments {
		assignments[i] = -1
	}
	counts := make([]int, k)
	sums := make([]float32, k*dim)

	for iter := 0; iter < maxIter; iter++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		changed := false

		// Assignment step
		for i := 0; i < n; i++ {
			vec := vectors[i*dim : (i+1)*dim]
			best := -1
			minDist := float32(math.MaxFloat32)

			for j := 0; j < k; j++ {
				d := distFunc(vec, centroids[j*dim:(j+1)*dim])
				if d < minDist {
					minDist = d
					best = j
				}
			}

			if assignments[i] != best {
				assignments[i] = best
				changed = true
			}
		}

		if !changed {
			break
		}

		// Update step
		for i := range sums {
			sums[i] = 0
		}
		for i := range counts {
			counts[i] = 0
		}
		for i := 0; i < n; i++ {
			c := assignments[i]
			vec := vectors[i*dim : (i+1)*dim]
			for d := 0; d < dim; d++ {
				sums[c*dim+d] += vec[d]
			}
			counts[c]++
		}

		for j := 0; j < k; j++ {
			if counts[j] > 0 {
				scale := 1.0 / float32(counts[j])
				for d := 0; d < dim; d++ {
					centroids[j*dim+d] = sums[j*dim+d] * scale
				}
			} else {
				// Reseed an empty cluster from the rng so the run stays
				// deterministic for a fixed seed.
				idx := rng.Intn(n)
				copy(centroids[j*dim:(j+1)*dim], vectors[idx*dim:(idx+1)*dim])
			}
		}
	}

	return &Result{
		Assignments: assignments,
		Centroids:   centroids,
	}, nil
}

// NonEmptyClusters returns how many clusters hold at least one vector.
func (r *Result) NonEmptyClusters(k int) int {
	seen := make([]bool, k)
	count := 0
	for _, c := range r.Assignments {
		if !seen[c] {
			seen[c] = true
			count++
		}
	}
	return count
}
