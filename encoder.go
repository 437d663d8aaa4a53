package huffman

// Encode reads src twice, once to build a frequency histogram and once to
// stream the body, and writes a self-describing canonical Huffman stream
// to dst. src must support Rewind.
//
// The written stream is exactly 257 bytes plus the packed body: 256
// length-table bytes in symbol-index order, one ignore-bits byte, then the
// MSB-first packed codewords.
func Encode(src ByteSource, dst ByteSink) error {
	_, err := encode(src, dst)
	return err
}

// encode is the shared implementation behind Encode and EncodeWithStats.
func encode(src ByteSource, dst ByteSink) (Stats, error) {
	count, err := countFrequencies(src)
	if err != nil {
		return Stats{}, err
	}
	lengths := buildLengths(count)
	codes, _, err := canonicalize(lengths)
	if err != nil {
		return Stats{}, err
	}

	counted := &countingSink{inner: dst}
	for _, l := range lengths {
		if err := counted.WriteByte(byte(l)); err != nil {
			return Stats{}, err
		}
	}

	var msgBits, originalSize uint64
	var symbolCount int
	for symbol, l := range lengths {
		msgBits += count[symbol] * uint64(l)
		originalSize += count[symbol]
		if count[symbol] > 0 {
			symbolCount++
		}
	}
	ignoreBits := byte((8 - msgBits%8) % 8)
	if err := counted.WriteByte(ignoreBits); err != nil {
		return Stats{}, err
	}

	if err := src.Rewind(); err != nil {
		return Stats{}, err
	}
	w := newBitWriter(counted)
	for {
		b, err := src.ReadByte()
		if err == errSourceEOF {
			break
		}
		if err != nil {
			return Stats{}, err
		}
		c := codes[b]
		if err := w.push(c.value, uint(c.length)); err != nil {
			return Stats{}, err
		}
	}
	if _, err := w.flush(); err != nil {
		return Stats{}, err
	}

	return Stats{
		OriginalSize:   int(originalSize),
		CompressedSize: counted.n,
		SymbolCount:    symbolCount,
	}, nil
}
