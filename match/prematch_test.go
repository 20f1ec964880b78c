package match_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/pointmatch/match"
)

// TestMatch_NegativeZeroDuplicates verifies that -0 and +0 coordinates
// count as exact duplicates: their distance is zero.
func TestMatch_NegativeZeroDuplicates(t *testing.T) {
	a := mat.NewDense(1, 3, []float64{math.Copysign(0, -1), 0, 0})
	b := mat.NewDense(1, 3, []float64{0, 0, 0})

	res, err := match.Match(a, b, match.WithThreshold(0))
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 0}}, res.Pairs, "-0 and +0 are the same coordinate")
}

// TestMatch_ZeroThresholdKeepsDuplicatesOnly verifies that with a zero cap
// only bit-identical coordinates survive, pre-matching on or off.
func TestMatch_ZeroThresholdKeepsDuplicatesOnly(t *testing.T) {
	a := tiled(1, 2, 3)
	b := tiled(2, 4, 5)

	for _, opts := range [][]match.Option{
		{match.WithThreshold(0)},
		{match.WithThreshold(0), match.WithoutPreMatch()},
	} {
		res, err := match.Match(a, b, opts...)
		require.NoError(t, err)
		assert.Equal(t, [][2]int{{1, 0}}, res.Pairs)
		assert.Equal(t, []int{0, 2}, res.MissingA)
		assert.Equal(t, []int{1, 2}, res.MissingB)
	}
}

// TestMatch_ManyDuplicatesLowestIndexFirst verifies the deterministic
// pairing of repeated coordinates on both sides.
func TestMatch_ManyDuplicatesLowestIndexFirst(t *testing.T) {
	a := tiled(9, 5, 9)
	b := tiled(9, 9, 9, 5)

	res, err := match.Match(a, b)
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{0, 0}, {1, 3}, {2, 1}}, res.Pairs)
	assert.Empty(t, res.MissingA)
	assert.Equal(t, []int{2}, res.MissingB)
}
