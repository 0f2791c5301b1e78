package cluster

import "errors"

// Sentinel errors returned by KMeans.
var (
	// ErrNoPoints indicates that an empty point set was supplied.
	ErrNoPoints = errors.New("cluster: no points to cluster")

	// ErrBadClusterCount indicates k < 1 or k > len(points).
	ErrBadClusterCount = errors.New("cluster: cluster count out of range")

	// ErrDimensionMismatch indicates that not all points share one dimension,
	// or that a point has dimension zero.
	ErrDimensionMismatch = errors.New("cluster: inconsistent point dimensions")

	// ErrBadIterations indicates MaxIterations < 1.
	ErrBadIterations = errors.New("cluster: MaxIterations must be positive")
)

// defaultSeed is the fixed seed substituted when Options.Seed == 0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultSeed int64 = 1

// DefaultMaxIterations bounds Lloyd iterations when the caller does not care.
// Matches the budget commonly used for small instance sets.
const DefaultMaxIterations = 1000

// Options configures a KMeans run.
//
// Seed          – RNG seed for centroid initialization; 0 selects a fixed
//
//	default so the zero value stays deterministic.
//
// MaxIterations – hard cap on Lloyd iterations; must be ≥ 1.
type Options struct {
	Seed          int64
	MaxIterations int
}

// DefaultOptions returns the canonical deterministic configuration.
func DefaultOptions() Options {
	return Options{
		Seed:          0,
		MaxIterations: DefaultMaxIterations,
	}
}

// Result holds the outcome of a KMeans run.
type Result struct {
	// Membership[i] is the group index (0..k-1) assigned to points[i].
	Membership []int

	// Centroids holds the k final group centroids, each of the input dimension.
	Centroids [][]float64
}
