package huffman

// decodeTables holds everything derived from a stream's header that the
// decode loop needs: the permutation and its inverse, and the per-length
// anchors and dispatch table used to resolve a codeword to a symbol.
type decodeTables struct {
	perm      [256]int
	invPerm   [256]int
	maxLength int

	smallestChar     [256]int
	smallestCode     [256]uint64
	nextSmallestCode [256]uint64
	start            [256]int // 256 means "no code begins here"
}

const noCode = 256

func buildDecodeTables(lengths [256]uint8) (*decodeTables, error) {
	codes, perm, err := canonicalize(lengths)
	if err != nil {
		return nil, err
	}

	t := &decodeTables{perm: perm}
	for i, s := range perm {
		t.invPerm[s] = i
	}

	prevLen := uint8(0)
	for i, s := range perm {
		curLen := lengths[s]
		if curLen == 0 {
			continue
		}
		if i == 0 || lengths[perm[i-1]] != curLen {
			t.smallestChar[curLen] = s
			t.smallestCode[curLen] = codes[s].value
			if prevLen > 0 {
				t.nextSmallestCode[prevLen] = codes[s].value << (codeWidth - 1 - uint(curLen))
			}
		}
		if int(curLen) > t.maxLength {
			t.maxLength = int(curLen)
		}
		prevLen = curLen
	}
	if t.maxLength > 0 {
		t.nextSmallestCode[t.maxLength] = uint64(1) << 63
	}

	for i := range t.start {
		t.start[i] = noCode
	}
	for symbol, l := range lengths {
		if l == 0 {
			continue
		}
		v := codes[symbol].value
		if l >= 8 {
			fb := int(v >> (l - 8))
			if t.start[fb] > int(l) {
				t.start[fb] = int(l)
			}
		} else {
			fb := int(v << (8 - l))
			span := 1 << (8 - l)
			for i := 0; i < span; i++ {
				idx := fb | i
				if t.start[idx] > int(l) {
					t.start[idx] = int(l)
				}
			}
		}
	}
	return t, nil
}

// Decode reads a canonical Huffman stream produced by Encode from src and
// writes the original bytes to dst. src is consumed strictly forward.
func Decode(src ByteSource, dst ByteSink) error {
	var lengths [256]uint8
	for i := range lengths {
		b, err := src.ReadByte()
		if err == errSourceEOF {
			return ErrCorruptHeader
		}
		if err != nil {
			return err
		}
		lengths[i] = b
	}
	ignoreByte, err := src.ReadByte()
	if err == errSourceEOF {
		return ErrCorruptHeader
	}
	if err != nil {
		return err
	}
	if ignoreByte >= 8 {
		return ErrCorruptHeader
	}
	ignoreBits := uint(ignoreByte)

	tables, err := buildDecodeTables(lengths)
	if err != nil {
		return err
	}
	if tables.maxLength == 0 {
		return nil // empty input: no body bits, nothing to emit
	}

	r := newBitReader(src)
	if err := r.refill(); err != nil {
		return err
	}
	for !r.eof || r.length > ignoreBits {
		d9 := int(r.peek9())
		length := tables.start[d9]
		if length >= noCode {
			return ErrCorruptMessage
		}
		if length > 8 {
			for r.value >= tables.nextSmallestCode[length] {
				length++
			}
		}
		offset := (r.value >> (codeWidth - 1 - uint(length))) - tables.smallestCode[length]
		idx := tables.invPerm[tables.smallestChar[length]] + int(offset)
		if idx < 0 || idx >= 256 {
			return ErrCorruptMessage
		}
		symbol := tables.perm[idx]
		if err := dst.WriteByte(byte(symbol)); err != nil {
			return err
		}
		r.consume(uint(length))
		if err := r.refill(); err != nil {
			return err
		}
	}
	return nil
}
