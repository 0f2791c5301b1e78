// Package cluster — deterministic Lloyd k-means with k-means++ seeding.
//
// Rationale (succinct):
//  1. Seeding: k-means++ picks well-spread initial centroids, which keeps
//     the small, elongated clusters typical of generated knapsack instances
//     from collapsing into one group.
//  2. Determinism: all randomness flows through one seeded source; ties are
//     broken by the lowest index. Same seed ⇒ identical Result.
//  3. Degenerate groups: when a group loses all members during a Lloyd
//     step, its centroid is re-seeded with the point farthest from its own
//     centroid, so every group stays non-empty.

package cluster

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// KMeans partitions points into k groups and returns the assignment and
// final centroids.
//
// Contracts:
//   - len(points) ≥ 1; all points share one non-zero dimension.
//   - 1 ≤ k ≤ len(points).
//   - opts.MaxIterations ≥ 1.
//
// Errors: ErrNoPoints, ErrBadClusterCount, ErrDimensionMismatch,
// ErrBadIterations.
//
// Complexity: O(opts.MaxIterations · n · k · d) time, O(n + k·d) space.
func KMeans(points [][]float64, k int, opts Options) (Result, error) {
	var n = len(points)
	if n == 0 {
		return Result{}, ErrNoPoints
	}
	if k < 1 || k > n {
		return Result{}, ErrBadClusterCount
	}
	if opts.MaxIterations < 1 {
		return Result{}, ErrBadIterations
	}

	var dim = len(points[0])
	if dim == 0 {
		return Result{}, ErrDimensionMismatch
	}
	var i int
	for i = 1; i < n; i++ {
		if len(points[i]) != dim {
			return Result{}, ErrDimensionMismatch
		}
	}

	var rng = rngFromSeed(opts.Seed)

	// Stage 1 — k-means++ seeding.
	var centroids = seedCentroids(points, k, rng)

	// Stage 2 — Lloyd iterations until assignments stabilize or the budget runs out.
	var (
		membership = make([]int, n)
		counts     = make([]int, k)
		iter       int
		changed    bool
	)
	for i = range membership {
		membership[i] = -1
	}
	for iter = 0; iter < opts.MaxIterations; iter++ {
		changed = assign(points, centroids, membership)
		if !changed && iter > 0 {
			break
		}
		recenter(points, membership, centroids, counts)
		repairEmpty(points, membership, centroids, counts)
	}

	return Result{Membership: membership, Centroids: centroids}, nil
}

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultSeed; otherwise use the provided seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	var s = seed
	if s == 0 {
		s = defaultSeed
	}

	return rand.New(rand.NewSource(s))
}

// seedCentroids implements k-means++ initialization: the first centroid is a
// uniformly random point, each further centroid is drawn with probability
// proportional to the squared distance to the nearest centroid chosen so far.
// Copies are taken so later recentering never aliases input points.
func seedCentroids(points [][]float64, k int, rng *rand.Rand) [][]float64 {
	var (
		n         = len(points)
		dim       = len(points[0])
		centroids = make([][]float64, 0, k)
		d2        = make([]float64, n)
		i         int
	)

	var first = make([]float64, dim)
	copy(first, points[rng.Intn(n)])
	centroids = append(centroids, first)

	var (
		total  float64
		target float64
		next   int
		d      float64
	)
	for len(centroids) < k {
		total = 0
		for i = 0; i < n; i++ {
			d = nearestDistance(points[i], centroids)
			d2[i] = d * d
			total += d2[i]
		}

		// All remaining points coincide with chosen centroids: fall back to
		// the first not-yet-centroid index to keep the count exact.
		if total == 0 {
			next = duplicateFallback(points, centroids)
		} else {
			target = rng.Float64() * total
			next = n - 1
			for i = 0; i < n; i++ {
				target -= d2[i]
				if target <= 0 {
					next = i
					break
				}
			}
		}

		var c = make([]float64, dim)
		copy(c, points[next])
		centroids = append(centroids, c)
	}

	return centroids
}

// nearestDistance returns the L2 distance from p to its closest centroid.
func nearestDistance(p []float64, centroids [][]float64) float64 {
	var (
		best = math.Inf(1)
		d    float64
		j    int
	)
	for j = 0; j < len(centroids); j++ {
		d = floats.Distance(p, centroids[j], 2)
		if d < best {
			best = d
		}
	}

	return best
}

// duplicateFallback returns the lowest point index that is not already an
// exact copy of a chosen centroid, or 0 when every point is.
func duplicateFallback(points [][]float64, centroids [][]float64) int {
	var (
		i, j  int
		taken bool
	)
	for i = 0; i < len(points); i++ {
		taken = false
		for j = 0; j < len(centroids); j++ {
			if floats.Equal(points[i], centroids[j]) {
				taken = true
				break
			}
		}
		if !taken {
			return i
		}
	}

	return 0
}

// assign rebinds every point to its nearest centroid (ties: lowest group
// index) and reports whether any assignment changed.
func assign(points [][]float64, centroids [][]float64, membership []int) bool {
	var (
		changed bool
		i, j    int
		best    int
		bestD   float64
		d       float64
	)
	for i = 0; i < len(points); i++ {
		best, bestD = 0, math.Inf(1)
		for j = 0; j < len(centroids); j++ {
			d = floats.Distance(points[i], centroids[j], 2)
			if d < bestD {
				best, bestD = j, d
			}
		}
		if membership[i] != best {
			membership[i] = best
			changed = true
		}
	}

	return changed
}

// recenter recomputes every centroid as the mean of its members.
// Groups that lost all members keep their previous centroid; repairEmpty
// deals with them right after.
func recenter(points [][]float64, membership []int, centroids [][]float64, counts []int) {
	var (
		dim  = len(points[0])
		i, j int
	)
	for j = 0; j < len(centroids); j++ {
		counts[j] = 0
	}

	var sums = make([][]float64, len(centroids))
	for j = range sums {
		sums[j] = make([]float64, dim)
	}
	for i = 0; i < len(points); i++ {
		j = membership[i]
		floats.Add(sums[j], points[i])
		counts[j]++
	}
	for j = 0; j < len(centroids); j++ {
		if counts[j] == 0 {
			continue
		}
		floats.Scale(1/float64(counts[j]), sums[j])
		copy(centroids[j], sums[j])
	}
}

// repairEmpty re-seeds every empty group with the point farthest from its
// current centroid (ties: lowest point index), then moves that point into
// the repaired group so no group stays empty.
func repairEmpty(points [][]float64, membership []int, centroids [][]float64, counts []int) {
	var (
		i, j    int
		farIdx  int
		farDist float64
		d       float64
	)
	for j = 0; j < len(centroids); j++ {
		if counts[j] > 0 {
			continue
		}

		farIdx, farDist = 0, -1
		for i = 0; i < len(points); i++ {
			// Only steal from groups that can afford to lose a member.
			if counts[membership[i]] <= 1 {
				continue
			}
			d = floats.Distance(points[i], centroids[membership[i]], 2)
			if d > farDist {
				farIdx, farDist = i, d
			}
		}
		if farDist < 0 {
			continue
		}

		counts[membership[farIdx]]--
		membership[farIdx] = j
		counts[j] = 1
		copy(centroids[j], points[farIdx])
	}
}
