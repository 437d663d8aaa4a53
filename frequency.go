package huffman

// countFrequencies reads src to exhaustion exactly once and returns a
// 256-entry occurrence histogram indexed by byte value.
func countFrequencies(src ByteSource) ([256]uint64, error) {
	var count [256]uint64
	for {
		b, err := src.ReadByte()
		if err == errSourceEOF {
			return count, nil
		}
		if err != nil {
			return count, err
		}
		count[b]++
	}
}
