// Package chunkio provides byte-at-a-time reading and writing on top of large
// fixed-size chunks, so that per-byte access never costs a system call.
package chunkio

import (
	"io"
)

// DefaultBufferSize is big enough to read most inputs in a handful of calls.
const DefaultBufferSize = 1 << 20 // 1 MiB.

// Reader serves single bytes out of a chunk filled by one Read call at a time.
// It is forward-only and can be consumed once.
type Reader struct {
	r   io.Reader
	buf []byte
	pos int
	end int
	eof bool
	err error

	refills   int
	bytesRead int64
}

// NewReader returns a Reader pulling up to size bytes per refill from r. A
// non-positive size selects DefaultBufferSize.
func NewReader(r io.Reader, size int) *Reader {
	if size <= 0 {
		size = DefaultBufferSize
	}
	return &Reader{
		r:   r,
		buf: make([]byte, size),
	}
}

// NextByte returns the next byte of the stream. ok is false once the stream is
// exhausted.
//
// A Read that yields no bytes ends the stream, whatever error came with it.
// A failed read and a clean EOF look the same here. Err tells them apart
// afterwards.
func (r *Reader) NextByte() (c byte, ok bool) {
	if r.pos == r.end {
		if !r.refill() {
			return 0, false
		}
	}
	c = r.buf[r.pos]
	r.pos++
	return c, true
}

func (r *Reader) refill() bool {
	if r.eof {
		return false
	}

	n, err := r.r.Read(r.buf)
	if err != nil && err != io.EOF && r.err == nil {
		r.err = err
	}
	if n <= 0 {
		r.eof = true
		return false
	}

	r.pos, r.end = 0, n
	r.refills++
	r.bytesRead += int64(n)
	return true
}

// Err returns the first non-EOF error the underlying reader reported, if any.
func (r *Reader) Err() error {
	return r.err
}

// Refills reports how many reads returned data.
func (r *Reader) Refills() int {
	return r.refills
}

// BytesRead reports the total number of bytes pulled from the underlying reader.
func (r *Reader) BytesRead() int64 {
	return r.bytesRead
}
