package knapsack_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcoppe/knapsack/knapsack"
)

// TestGenerate_Deterministic: identical seed and parameters produce
// byte-identical instance output.
func TestGenerate_Deterministic(t *testing.T) {
	var opts = knapsack.DefaultGeneratorOptions()
	opts.Seed = 42
	opts.NbItems = 25
	opts.NbClusters = 4

	var a, err = knapsack.Generate(opts)
	require.NoError(t, err)
	var b *knapsack.Instance
	b, err = knapsack.Generate(opts)
	require.NoError(t, err)

	assert.Equal(t, a, b)

	var bufA, bufB bytes.Buffer
	require.NoError(t, a.WriteJSON(&bufA))
	require.NoError(t, b.WriteJSON(&bufB))
	assert.Equal(t, bufA.Bytes(), bufB.Bytes())
}

// TestGenerate_SeedsDiffer: different seeds produce different instances.
func TestGenerate_SeedsDiffer(t *testing.T) {
	var opts = knapsack.DefaultGeneratorOptions()
	opts.Seed = 1

	var a, err = knapsack.Generate(opts)
	require.NoError(t, err)

	opts.Seed = 2
	var b *knapsack.Instance
	b, err = knapsack.Generate(opts)
	require.NoError(t, err)

	assert.NotEqual(t, a.Weight, b.Weight)
}

// TestGenerate_ZeroSeedIsFixedDefault: seed 0 selects a fixed default, so
// the zero configuration stays reproducible.
func TestGenerate_ZeroSeedIsFixedDefault(t *testing.T) {
	var opts = knapsack.DefaultGeneratorOptions()

	var a, err = knapsack.Generate(opts)
	require.NoError(t, err)
	var b *knapsack.Instance
	b, err = knapsack.Generate(opts)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

// TestGenerate_ShapeAndValidity: the sampled instance has the requested
// shape and passes Validate.
func TestGenerate_ShapeAndValidity(t *testing.T) {
	var opts = knapsack.DefaultGeneratorOptions()
	opts.Seed = 3
	opts.NbItems = 17
	opts.NbClusters = 5
	opts.Capacity = 12345

	var inst, err = knapsack.Generate(opts)
	require.NoError(t, err)

	assert.Equal(t, 17, inst.NbItems)
	assert.Equal(t, int64(12345), inst.Capacity)
	assert.Len(t, inst.Weight, 17)
	assert.Len(t, inst.Profit, 17)
	assert.NoError(t, inst.Validate())
}

// TestGenerate_Validation rejects inconsistent sampler configurations.
func TestGenerate_Validation(t *testing.T) {
	var opts = knapsack.DefaultGeneratorOptions()
	opts.NbItems = 0
	var _, err = knapsack.Generate(opts)
	assert.ErrorIs(t, err, knapsack.ErrBadItemCount)

	opts = knapsack.DefaultGeneratorOptions()
	opts.NbClusters = opts.NbItems + 1
	_, err = knapsack.Generate(opts)
	assert.ErrorIs(t, err, knapsack.ErrBadClusterCount)

	opts = knapsack.DefaultGeneratorOptions()
	opts.Capacity = -1
	_, err = knapsack.Generate(opts)
	assert.ErrorIs(t, err, knapsack.ErrNegativeCapacity)

	opts = knapsack.DefaultGeneratorOptions()
	opts.MaxWeight = opts.MinWeight - 1
	_, err = knapsack.Generate(opts)
	assert.ErrorIs(t, err, knapsack.ErrBadRange)

	opts = knapsack.DefaultGeneratorOptions()
	opts.MinProfit = -5
	_, err = knapsack.Generate(opts)
	assert.ErrorIs(t, err, knapsack.ErrBadRange)
}

// TestGenerate_UnevenClusters spreads the remainder one item per cluster.
func TestGenerate_UnevenClusters(t *testing.T) {
	var opts = knapsack.DefaultGeneratorOptions()
	opts.Seed = 9
	opts.NbItems = 11
	opts.NbClusters = 3

	var inst, err = knapsack.Generate(opts)
	require.NoError(t, err)
	assert.Len(t, inst.Weight, 11)
}
