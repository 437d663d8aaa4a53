package huffman

// Stats reports the outcome of an EncodeWithStats call, for front ends
// that want to print a compression ratio without re-deriving it from raw
// byte counts.
type Stats struct {
	OriginalSize   int
	CompressedSize int
	SymbolCount    int // number of distinct byte values present in the input
}

// countingSink wraps a ByteSink and counts bytes written to it.
type countingSink struct {
	inner ByteSink
	n     int
}

func (s *countingSink) WriteByte(b byte) error {
	if err := s.inner.WriteByte(b); err != nil {
		return err
	}
	s.n++
	return nil
}

// EncodeWithStats behaves exactly like Encode but also returns summary
// statistics about the run. It does not change the wire format.
func EncodeWithStats(src ByteSource, dst ByteSink) (Stats, error) {
	return encode(src, dst)
}
