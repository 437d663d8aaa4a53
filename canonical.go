package huffman

import "sort"

// code is a canonical codeword: value right-justified in its low-order
// length bits, higher bits zero.
type code struct {
	value  uint64
	length uint8
}

// canonicalize assigns canonical codeword values to a length-per-symbol
// table and validates that the length multiset forms a complete prefix
// code (Kraft equality, with the single-symbol exception). It returns the
// populated code table and the permutation P of symbol indices sorted by
// (length ascending, symbol ascending) under which the codes were
// assigned; callers needing an inverse permutation derive it themselves.
//
// This is run identically by the encoder and the decoder so both compute
// the same code table from the same length table.
func canonicalize(lengths [256]uint8) (codes [256]code, perm [256]int, err error) {
	for i := range perm {
		perm[i] = i
	}
	sort.Slice(perm[:], func(i, j int) bool {
		li, lj := lengths[perm[i]], lengths[perm[j]]
		if li != lj {
			return li < lj
		}
		return perm[i] < perm[j]
	})

	codes[perm[0]] = code{value: 0, length: lengths[perm[0]]}
	for i := 1; i < 256; i++ {
		cur := lengths[perm[i]]
		prev := lengths[perm[i-1]]
		var v uint64
		if prev == 0 {
			v = 0
		} else {
			v = (codes[perm[i-1]].value + 1) << (cur - prev)
		}
		codes[perm[i]] = code{value: v, length: cur}
		if cur > 0 && v>>cur != 0 {
			return codes, perm, ErrCorruptHeader
		}
	}

	usedCount := 0
	for _, l := range lengths {
		if l > 0 {
			usedCount++
		}
	}
	last := codes[perm[255]]
	if usedCount > 1 {
		if last.value != (uint64(1)<<last.length)-1 {
			return codes, perm, ErrCorruptHeader
		}
	} else if usedCount == 1 {
		if last.length > 1 {
			return codes, perm, ErrCorruptHeader
		}
	}
	return codes, perm, nil
}
