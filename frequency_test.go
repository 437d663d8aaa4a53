package huffman

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCountFrequencies(t *testing.T) {
	src := NewByteSliceSource([]byte("aabbbc"))
	count, err := countFrequencies(src)
	require.NoError(t, err)
	require.Equal(t, uint64(2), count['a'])
	require.Equal(t, uint64(3), count['b'])
	require.Equal(t, uint64(1), count['c'])
	require.Equal(t, uint64(0), count['d'])
}

func TestCountFrequenciesEmpty(t *testing.T) {
	count, err := countFrequencies(NewByteSliceSource(nil))
	require.NoError(t, err)
	for _, c := range count {
		require.Equal(t, uint64(0), c)
	}
}
