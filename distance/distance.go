// Package distance provides the distance functions used to compare feature
// vectors during clustering.
package distance

import "fmt"

// SquaredL2 calculates the squared L2 (Euclidean) distance between two vectors.
// Assumes vectors are the same length (caller's responsibility).
func SquaredL2(a, b []float32) float32 {
	var sum float32
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// Manhattan calculates the L1 (city block) distance between two vectors.
// Assumes vectors are the same length (caller's responsibility).
func Manhattan(a, b []float32) float32 {
	var sum float32
	for i := range a {
		d := a[i] - b[i]
		if d < 0 {
			d = -d
		}
		sum += d
	}
	return sum
}

// Metric represents the distance metric used for vector comparison.
type Metric int

const (
	MetricL2 Metric = iota
	MetricManhattan
)

func (m Metric) String() string {
	switch m {
	case MetricL2:
		return "L2"
	case MetricManhattan:
		return "Manhattan"
	default:
		return fmt.Sprintf("Unknown(%d)", m)
	}
}

// Func is a function type for distance calculation.
type Func func(a, b []float32) float32

// Provider returns the distance function for the given metric.
func Provider(m Metric) (Func, error) {
	switch m {
	case MetricL2:
		return SquaredL2, nil
	case MetricManhattan:
		return Manhattan, nil
	default:
		return nil, fmt.Errorf("unsupported metric: %v", m)
	}
}
