/*
Package huffman implements a byte-oriented canonical Huffman codec over the
full 256-symbol alphabet of an 8-bit byte.

Encode performs two passes over a rewindable source: the first builds a
frequency histogram and derives a canonical code from it, the second streams
the body as packed codewords. The compressed stream is self-describing: a
256-byte length table followed by one padding-count byte precedes the body,
so Decode needs no side channel to reconstruct the code.

For example, to compress a byte slice into a buffer:

	var dst bytes.Buffer
	err := huffman.Encode(huffman.NewByteSliceSource(src), huffman.NewWriterSink(&dst))

and to reverse it:

	var dst bytes.Buffer
	err := huffman.Decode(huffman.NewByteSliceSource(compressed), huffman.NewWriterSink(&dst))

This package does not perform file I/O, argument parsing, or checksumming;
see cmd/huffman for a command-line front end.
*/
package huffman
