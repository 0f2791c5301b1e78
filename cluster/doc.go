// Package cluster provides deterministic k-means clustering over dense
// feature vectors.
//
// The package exists to back the knapsack state-space compression layer,
// which groups items with similar weight (and optionally profit) profiles
// and replaces each group's weights with a single conservative surrogate.
// Any caller that needs a reproducible partition of small vector sets can
// use it directly.
//
// Guarantees:
//   - Determinism: a fixed Options.Seed yields an identical partition on
//     every run and platform. Seed 0 selects a fixed default seed, so the
//     zero value of Options is already reproducible.
//   - Total assignment: every point belongs to exactly one of the k groups;
//     no group is ever left empty (degenerate groups are re-seeded from the
//     point farthest from its centroid).
//   - Bounded work: Lloyd iterations stop after Options.MaxIterations even
//     when assignments have not stabilized.
//
// Complexity: O(iterations · n · k · d) time, O(n + k·d) extra space, for
// n points of dimension d.
//
// Errors (sentinel): ErrNoPoints, ErrBadClusterCount, ErrDimensionMismatch,
// ErrBadIterations.
package cluster
