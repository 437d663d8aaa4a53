package huffman

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildLengthsEmptyInput(t *testing.T) {
	var count [256]uint64
	lengths := buildLengths(count)
	for _, l := range lengths {
		require.Equal(t, uint8(0), l)
	}
}

func TestBuildLengthsSingleSymbol(t *testing.T) {
	var count [256]uint64
	count['x'] = 42
	lengths := buildLengths(count)
	require.Equal(t, uint8(1), lengths['x'])
	for s, l := range lengths {
		if s != 'x' {
			require.Equal(t, uint8(0), l, "symbol %d", s)
		}
	}
}

func TestBuildLengthsTwoSymbols(t *testing.T) {
	var count [256]uint64
	count['a'] = 1
	count['b'] = 1
	lengths := buildLengths(count)
	require.Equal(t, uint8(1), lengths['a'])
	require.Equal(t, uint8(1), lengths['b'])
}

func TestBuildLengthsSatisfiesKraft(t *testing.T) {
	var count [256]uint64
	// A skewed, Fibonacci-like distribution forces a range of depths.
	freqs := []uint64{1, 1, 2, 3, 5, 8, 13, 21, 34, 55}
	for i, f := range freqs {
		count[i] = f
	}
	lengths := buildLengths(count)
	var sum float64
	for _, l := range lengths {
		if l > 0 {
			sum += 1.0 / float64(uint64(1)<<l)
		}
	}
	require.InDelta(t, 1.0, sum, 1e-9)
}

func TestBuildLengths256DistinctSymbols(t *testing.T) {
	var count [256]uint64
	for i := range count {
		count[i] = 1
	}
	lengths := buildLengths(count)
	for _, l := range lengths {
		require.Equal(t, uint8(8), l)
	}
}
