// Package knapsack — clustering-based state-space compression.
//
// The compression layer builds a coarser "meta-problem" over a smaller
// weight alphabet: items are clustered on their feature vectors and every
// item's weight is replaced by the minimum true weight of its cluster.
// The substitution is conservative: the meta-problem never believes an
// item heavier than it truly is, so every combination feasible in the true
// problem stays feasible in the meta-problem. Solving the meta-problem is
// therefore a relaxation: cheaper (far fewer distinct capacities) and
// never below the true optimum.
//
// Two state canonicalization strategies sit behind the one interface:
// Passthrough returns states unchanged; Reachability snaps capacities up
// to the least value the meta-problem can itself reach at that depth,
// which keeps capacity-max merging sound when operating on the
// meta-problem.

package knapsack

import (
	"fmt"
	"math"

	"github.com/vcoppe/knapsack/cluster"
	"github.com/vcoppe/knapsack/dd"
)

// Strategy selects how Compress canonicalizes states.
type Strategy int

const (
	// Passthrough leaves states untouched (lightweight fallback).
	Passthrough Strategy = iota

	// Reachability snaps capacities onto the meta-problem's exact
	// reachable-capacity index (the canonical, soundness-preserving
	// strategy).
	Reachability
)

// FeatureSet selects the per-item feature vectors handed to the clustering.
type FeatureSet int

const (
	// WeightAndProfit clusters items on (weight, profit) jointly.
	WeightAndProfit FeatureSet = iota

	// WeightOnly clusters items on weight alone.
	WeightOnly
)

// CompressionOptions configures NewCompression.
//
// MetaItems     – requested number of weight clusters; capped at the item
//
//	count when larger (degenerate clustering guard). Must be ≥ 1.
//
// Strategy      – state canonicalization strategy (default Reachability).
// Features      – clustering feature vectors (default WeightAndProfit).
// Seed          – clustering seed; 0 selects the fixed default seed.
// MaxIterations – clustering iteration cap; 0 selects the default.
type CompressionOptions struct {
	MetaItems     int
	Strategy      Strategy
	Features      FeatureSet
	Seed          int64
	MaxIterations int
}

// DefaultCompressionOptions returns the canonical configuration for n meta
// items: reachability snapping, joint weight/profit features, fixed seed,
// default iteration cap.
func DefaultCompressionOptions(metaItems int) CompressionOptions {
	return CompressionOptions{
		MetaItems:     metaItems,
		Strategy:      Reachability,
		Features:      WeightAndProfit,
		Seed:          0,
		MaxIterations: 0,
	}
}

// Compression maps the problem onto its meta-problem. Built once before
// search; immutable and safe for unsynchronized concurrent reads afterwards.
type Compression struct {
	problem  *Problem
	meta     *Problem
	strategy Strategy
	index    *reachableIndex // nil unless strategy == Reachability
}

var _ dd.Compression[State] = (*Compression)(nil)

// NewCompression clusters the items of pb and assembles the meta-problem.
//
// Contracts:
//   - pb non-nil; opts.MetaItems ≥ 1 (larger than the item count is capped).
//
// Errors: ErrNilProblem, ErrBadMetaItems, ErrBadStrategy, ErrBadFeatureSet,
// plus clustering errors (wrapped sentinels from package cluster).
//
// Complexity: clustering O(iters · n · k); reachability index O(n · C) with
// C the count of distinct reachable meta-capacities.
func NewCompression(pb *Problem, opts CompressionOptions) (*Compression, error) {
	if pb == nil {
		return nil, ErrNilProblem
	}
	if opts.MetaItems < 1 {
		return nil, ErrBadMetaItems
	}
	if opts.Strategy != Passthrough && opts.Strategy != Reachability {
		return nil, ErrBadStrategy
	}
	if opts.Features != WeightAndProfit && opts.Features != WeightOnly {
		return nil, ErrBadFeatureSet
	}

	var (
		inst = pb.inst
		k    = opts.MetaItems
	)
	if k > inst.NbItems {
		k = inst.NbItems
	}

	var membership, err = clusterItems(inst, k, opts)
	if err != nil {
		return nil, err
	}

	var metaInst = inst.clone()
	metaInst.Weight = metaWeights(inst, membership, k)

	var c = &Compression{
		problem:  pb,
		meta:     newProblemWithOrder(metaInst, pb.order),
		strategy: opts.Strategy,
	}
	if opts.Strategy == Reachability {
		c.index = newReachableIndex(c.meta)
	}

	return c, nil
}

// GetCompressedProblem returns the meta-problem for cheaper diagram
// construction.
func (c *Compression) GetCompressedProblem() dd.Problem[State] { return c.meta }

// MetaProblem returns the meta-problem as a *Problem, so callers can build
// the rest of the solver bundle (relaxation, bounds) against the surrogate
// the diagrams actually compile.
func (c *Compression) MetaProblem() *Problem { return c.meta }

// MetaInstance returns the meta-problem's instance (original item count and
// profits, surrogate weights).
func (c *Compression) MetaInstance() *Instance { return c.meta.inst }

// Compress canonicalizes a state onto the meta-problem: identity under
// Passthrough, reachable-capacity snapping under Reachability.
func (c *Compression) Compress(s State) State {
	if c.strategy == Reachability {
		return c.index.snap(s)
	}

	return s
}

// Decompress is the identity: item identity, count and 0/1 semantics never
// change, so a meta-problem decision vector is directly a decision vector
// of the original problem.
func (c *Compression) Decompress(solution []dd.Decision) []dd.Decision {
	return append([]dd.Decision(nil), solution...)
}

// clusterItems runs the deterministic clustering over the configured
// feature vectors and returns the per-item cluster membership.
func clusterItems(inst *Instance, k int, opts CompressionOptions) ([]int, error) {
	var (
		points = make([][]float64, inst.NbItems)
		i      int
	)
	for i = 0; i < inst.NbItems; i++ {
		if opts.Features == WeightOnly {
			points[i] = []float64{float64(inst.Weight[i])}
		} else {
			points[i] = []float64{float64(inst.Weight[i]), float64(inst.Profit[i])}
		}
	}

	var copts = cluster.DefaultOptions()
	copts.Seed = opts.Seed
	if opts.MaxIterations > 0 {
		copts.MaxIterations = opts.MaxIterations
	}

	var res, err = cluster.KMeans(points, k, copts)
	if err != nil {
		return nil, fmt.Errorf("knapsack: cluster items: %w", err)
	}

	return res.Membership, nil
}

// metaWeights assigns every item the minimum true weight of its cluster.
func metaWeights(inst *Instance, membership []int, k int) []int64 {
	var (
		minByCluster = make([]int64, k)
		i            int
	)
	for i = 0; i < k; i++ {
		minByCluster[i] = math.MaxInt64
	}
	for i = 0; i < inst.NbItems; i++ {
		if inst.Weight[i] < minByCluster[membership[i]] {
			minByCluster[membership[i]] = inst.Weight[i]
		}
	}

	var weights = make([]int64, inst.NbItems)
	for i = 0; i < inst.NbItems; i++ {
		weights[i] = minByCluster[membership[i]]
	}

	return weights
}
