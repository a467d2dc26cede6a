// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package streamx

import (
	"fmt"

	"github.com/valyala/bytebufferpool"
)

// Write implements io.Writer: it validates the write capability and
// delegates raw bytes to the resource. A partial accept with a nil error is
// retried for the remainder; a zero accept with a nil error becomes
// ErrShortWrite to avoid spinning. Semantic errors from the resource
// (ErrWouldBlock, ErrMore) propagate with the partial count; the write path
// performs no retry waiting of its own.
func (s *Stream) Write(p []byte) (int, error) {
	if !s.writable {
		return 0, ErrClosedForWriting
	}
	written := 0
	for written < len(p) {
		n, err := s.res.WriteChunk(p[written:])
		if n > 0 {
			written += n
			s.pos += int64(n)
		}
		if err != nil {
			return written, err
		}
		if n == 0 {
			return written, ErrShortWrite
		}
	}
	return written, nil
}

// WriteString implements io.StringWriter.
func (s *Stream) WriteString(str string) (int, error) {
	return s.Write([]byte(str))
}

// WriteByte implements io.ByteWriter.
func (s *Stream) WriteByte(b byte) error {
	_, err := s.Write([]byte{b})
	return err
}

// Print formats its operands like fmt.Fprint and writes them to the stream.
func (s *Stream) Print(args ...any) (int, error) {
	return fmt.Fprint(s, args...)
}

// Printf formats like fmt.Fprintf and writes the result to the stream.
func (s *Stream) Printf(format string, args ...any) (int, error) {
	return fmt.Fprintf(s, format, args...)
}

// ReadFrom implements io.ReaderFrom: it copies r into the stream until EOF,
// staging through a pooled buffer.
func (s *Stream) ReadFrom(r Reader) (int64, error) {
	if !s.writable {
		return 0, ErrClosedForWriting
	}
	bb := bytebufferpool.Get()
	defer bytebufferpool.Put(bb)
	if cap(bb.B) < 32*1024 {
		bb.B = make([]byte, 32*1024)
	}
	buf := bb.B[:cap(bb.B)]

	var written int64
	for {
		nr, er := r.Read(buf)
		if nr > 0 {
			nw, ew := s.Write(buf[:nr])
			written += int64(nw)
			if ew != nil {
				return written, ew
			}
		}
		if er != nil {
			if er == EOF {
				return written, nil
			}
			return written, er
		}
		if nr == 0 {
			return written, nil
		}
	}
}
