// Package knapsack — clustered random instance generation.
//
// Instances are sampled as nb_clusters groups of similar items: each group
// draws a weight centroid and a profit centroid uniformly from the
// configured ranges, then samples its items from normal distributions
// around those centroids. The resulting weight/profit values cluster the
// way the compression layer expects real instances to.
//
// Determinism: all randomness flows through one seeded source, so a fixed
// seed reproduces instances byte for byte.

package knapsack

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// defaultGenSeed is substituted when GeneratorOptions.Seed == 0, keeping
// the zero value reproducible.
const defaultGenSeed uint64 = 1

// GeneratorOptions parameterizes the multi-cluster sampler. The defaults
// mirror the canonical generator configuration.
type GeneratorOptions struct {
	// Seed kickstarts the RNG; 0 selects a fixed default seed.
	Seed uint64

	// NbItems is the number of items to produce (≥ 1).
	NbItems int

	// NbClusters is the number of groups of similar items (1..NbItems).
	NbClusters int

	// Capacity of the knapsack (≥ 0).
	Capacity int64

	// Weight range and per-cluster standard deviation.
	MinWeight, MaxWeight, WeightStdDev int64

	// Profit range and per-cluster standard deviation.
	MinProfit, MaxProfit, ProfitStdDev int64
}

// DefaultGeneratorOptions returns the canonical sampler configuration.
func DefaultGeneratorOptions() GeneratorOptions {
	return GeneratorOptions{
		Seed:         0,
		NbItems:      10,
		NbClusters:   3,
		Capacity:     5000,
		MinWeight:    1000,
		MaxWeight:    10000,
		WeightStdDev: 100,
		MinProfit:    1000,
		MaxProfit:    10000,
		ProfitStdDev: 100,
	}
}

// validate checks the sampler configuration.
func (o GeneratorOptions) validate() error {
	if o.NbItems < 1 {
		return ErrBadItemCount
	}
	if o.NbClusters < 1 || o.NbClusters > o.NbItems {
		return ErrBadClusterCount
	}
	if o.Capacity < 0 {
		return ErrNegativeCapacity
	}
	if o.MinWeight < 1 || o.MaxWeight < o.MinWeight || o.WeightStdDev < 0 {
		return ErrBadRange
	}
	if o.MinProfit < 0 || o.MaxProfit < o.MinProfit || o.ProfitStdDev < 0 {
		return ErrBadRange
	}

	return nil
}

// Generate samples a clustered instance.
//
// When MinWeight < WeightStdDev both ends of the weight range are shifted
// up by the difference, keeping sampled weights clear of zero.
// Sampled weights are additionally clamped to ≥ 1 and
// profits to ≥ 0 so every generated instance passes Validate.
//
// Complexity: O(NbItems).
func Generate(opts GeneratorOptions) (*Instance, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}

	if opts.MinWeight < opts.WeightStdDev {
		opts.MaxWeight += opts.WeightStdDev - opts.MinWeight
		opts.MinWeight = opts.WeightStdDev
	}

	var seed = opts.Seed
	if seed == 0 {
		seed = defaultGenSeed
	}
	var src = rand.NewSource(seed)

	// Spread the remainder one item per cluster from the first.
	var (
		perCluster = make([]int, opts.NbClusters)
		i          int
	)
	for i = 0; i < opts.NbClusters; i++ {
		perCluster[i] = opts.NbItems / opts.NbClusters
	}
	for i = 0; i < opts.NbItems%opts.NbClusters; i++ {
		perCluster[i]++
	}

	var inst = Instance{
		NbItems:  opts.NbItems,
		Capacity: opts.Capacity,
		Weight:   sampleClustered(src, perCluster, opts.MinWeight, opts.MaxWeight, opts.WeightStdDev, 1),
		Profit:   sampleClustered(src, perCluster, opts.MinProfit, opts.MaxProfit, opts.ProfitStdDev, 0),
	}
	if err := inst.Validate(); err != nil {
		return nil, err
	}

	return &inst, nil
}

// sampleClustered draws one value sequence: per cluster, a centroid
// uniform in [minVal, maxVal], then per item a rounded normal sample
// around the centroid, floored at the given minimum.
func sampleClustered(src rand.Source, perCluster []int, minVal, maxVal, stdDev, floor int64) []int64 {
	var (
		rng  = rand.New(src)
		data = make([]int64, 0)
		c, j int
	)
	for c = 0; c < len(perCluster); c++ {
		var centroid = minVal + int64(rng.Uint64n(uint64(maxVal-minVal+1)))
		var dist = distuv.Normal{
			Mu:    float64(centroid),
			Sigma: float64(stdDev),
			Src:   src,
		}

		for j = 0; j < perCluster[c]; j++ {
			var v = int64(math.Round(dist.Rand()))
			if v < floor {
				v = floor
			}
			data = append(data, v)
		}
	}

	return data
}
