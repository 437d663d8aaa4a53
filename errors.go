package huffman

import "errors"

var (
	// ErrCorruptHeader is returned when the 256-byte length table and
	// ignore-bits byte at the front of a stream cannot describe a valid
	// canonical Huffman code, or when the stream is too short to hold one.
	ErrCorruptHeader = errors.New("huffman: corrupt header")
	// ErrCorruptMessage is returned when the body of a stream contains a
	// bit sequence that cannot be resolved to a symbol under the header's
	// canonical code.
	ErrCorruptMessage = errors.New("huffman: corrupt message")
)
