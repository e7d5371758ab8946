package chunkio

import (
	"io"
)

// Writer collects output in a fixed-size chunk and hands it to the underlying
// writer only when the chunk is full or on Flush/Close.
//
// Errors are sticky: once a write to the underlying writer fails, every later
// call is a no-op and Flush/Close keep returning that error.
type Writer struct {
	w   io.Writer
	buf []byte
	n   int
	err error

	flushes int
}

// NewWriter returns a Writer buffering up to size bytes in front of w. A
// non-positive size selects DefaultBufferSize.
func NewWriter(w io.Writer, size int) *Writer {
	if size <= 0 {
		size = DefaultBufferSize
	}
	return &Writer{
		w:   w,
		buf: make([]byte, size),
	}
}

// PutByte appends a single byte.
func (w *Writer) PutByte(c byte) {
	if w.err != nil {
		return
	}
	if w.n == len(w.buf) {
		if w.Flush() != nil {
			return
		}
	}
	w.buf[w.n] = c
	w.n++
}

// PutBytes appends p. When p does not fit in the remaining space, exactly the
// bytes that fit are copied, the chunk is flushed and copying continues.
func (w *Writer) PutBytes(p []byte) {
	for len(p) > 0 && w.err == nil {
		if w.n == len(w.buf) {
			if w.Flush() != nil {
				return
			}
		}
		c := copy(w.buf[w.n:], p)
		w.n += c
		p = p[c:]
	}
}

// PutString is PutBytes for strings, without the conversion.
func (w *Writer) PutString(s string) {
	for len(s) > 0 && w.err == nil {
		if w.n == len(w.buf) {
			if w.Flush() != nil {
				return
			}
		}
		c := copy(w.buf[w.n:], s)
		w.n += c
		s = s[c:]
	}
}

// Write implements io.Writer so the sink can sit under encoders such as
// encoding/csv.
func (w *Writer) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	w.PutBytes(p)
	if w.err != nil {
		// Bytes before the failed flush are lost with it; report nothing written.
		return 0, w.err
	}
	return len(p), nil
}

// Flush writes the buffered chunk to the underlying writer.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	if w.n == 0 {
		return nil
	}

	n, err := w.w.Write(w.buf[:w.n])
	if n < w.n && err == nil {
		err = io.ErrShortWrite
	}
	if err != nil {
		w.err = err
		return err
	}

	w.n = 0
	w.flushes++
	return nil
}

// Close flushes whatever is buffered. The underlying writer is left open.
func (w *Writer) Close() error {
	return w.Flush()
}

// Buffered returns the number of bytes waiting in the chunk.
func (w *Writer) Buffered() int {
	return w.n
}

// Flushes reports how many chunks reached the underlying writer.
func (w *Writer) Flushes() int {
	return w.flushes
}

// Err returns the sticky write error, if any.
func (w *Writer) Err() error {
	return w.err
}
