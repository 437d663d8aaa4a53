package huffman

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeWithStats(t *testing.T) {
	data := []byte("abababab")
	var dst bytes.Buffer
	stats, err := EncodeWithStats(NewByteSliceSource(data), NewWriterSink(&dst))
	require.NoError(t, err)
	require.Equal(t, len(data), stats.OriginalSize)
	require.Equal(t, 2, stats.SymbolCount)
	require.Equal(t, dst.Len(), stats.CompressedSize)
}

func TestEncodeWithStatsEmptyInput(t *testing.T) {
	var dst bytes.Buffer
	stats, err := EncodeWithStats(NewByteSliceSource(nil), NewWriterSink(&dst))
	require.NoError(t, err)
	require.Equal(t, 0, stats.OriginalSize)
	require.Equal(t, 0, stats.SymbolCount)
	require.Equal(t, 257, stats.CompressedSize)
}
