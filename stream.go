package huffman

import (
	"bytes"
	"errors"
	"io"
)

// errSourceEOF is the internal signal a ByteSource.ReadByte returns at
// end of stream. It is never returned from Encode or Decode directly.
var errSourceEOF = errors.New("huffman: end of source")

// ByteSource is an ordered sequence of bytes that the encoder can rewind
// to the beginning. Decode only ever reads forward.
type ByteSource interface {
	// ReadByte returns the next byte, or errSourceEOF when exhausted.
	ReadByte() (byte, error)
	// Rewind repositions the source at its first byte.
	Rewind() error
}

// ByteSink is an ordered sequence of bytes that the codec writes to.
type ByteSink interface {
	WriteByte(b byte) error
}

// readerSource adapts an io.Reader to ByteSource. Rewind requires the
// underlying reader to also implement io.Seeker; NewByteSliceSource and
// NewReaderSource below are the common constructors callers want.
type readerSource struct {
	r       io.Reader
	seeker  io.Seeker
	scratch [1]byte
}

// NewReaderSource adapts r into a ByteSource. If r also implements
// io.Seeker, Rewind seeks back to the start; otherwise Rewind fails, which
// is only a problem for Encode (Decode never rewinds).
func NewReaderSource(r io.Reader) ByteSource {
	s := &readerSource{r: r}
	if sk, ok := r.(io.Seeker); ok {
		s.seeker = sk
	}
	return s
}

func (s *readerSource) ReadByte() (byte, error) {
	n, err := s.r.Read(s.scratch[:])
	if n == 1 {
		return s.scratch[0], nil
	}
	if err == io.EOF || err == nil {
		return 0, errSourceEOF
	}
	return 0, err
}

func (s *readerSource) Rewind() error {
	if s.seeker == nil {
		return errors.New("huffman: source does not support rewind")
	}
	_, err := s.seeker.Seek(0, io.SeekStart)
	return err
}

// NewByteSliceSource adapts a byte slice into a rewindable ByteSource.
// This is the usual choice for Encode, since the encoder always needs a
// second pass over the same bytes.
func NewByteSliceSource(data []byte) ByteSource {
	return NewReaderSource(bytes.NewReader(data))
}

// writerSink adapts an io.Writer to ByteSink.
type writerSink struct {
	w       io.Writer
	scratch [1]byte
}

// NewWriterSink adapts w into a ByteSink.
func NewWriterSink(w io.Writer) ByteSink {
	return &writerSink{w: w}
}

func (s *writerSink) WriteByte(b byte) error {
	s.scratch[0] = b
	_, err := s.w.Write(s.scratch[:])
	return err
}
