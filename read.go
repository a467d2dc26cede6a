// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package streamx

import (
	"unicode/utf8"

	"github.com/valyala/bytebufferpool"
)

// readAppend is the bounded read assembler: it appends up to n raw bytes to
// dst, or all remaining bytes when n < 0.
//
// The push-back buffer drains first; then chunks are pulled via fetch. A
// chunk that would overshoot n is split at the boundary: the prefix is
// consumed, the suffix pushed back for the next call. Position accounting
// nets out so Tell advances exactly by the bytes delivered.
//
// Returns (dst, io.EOF) only when zero bytes were produced and the stream is
// confirmed at end-of-stream; a partial result at end-of-stream is returned
// with a nil error.
func (s *Stream) readAppend(dst []byte, n int, op Op) ([]byte, error) {
	if !s.readable {
		return dst, ErrClosedForReading
	}
	s.invalidateUnread()
	if n == 0 {
		return dst, nil
	}

	produced := 0
	if len(s.pushback) > 0 {
		buf := s.take()
		if n >= 0 && len(buf) > n {
			s.prepend(buf[n:])
			buf = buf[:n]
		}
		dst = append(dst, buf...)
		produced += len(buf)
		if n >= 0 && produced == n {
			return dst, nil
		}
	}

	for {
		chunk, err := s.fetch(op)
		if err != nil {
			if err == EOF && produced > 0 {
				return dst, nil
			}
			return dst, err
		}
		s.pos += int64(len(chunk))
		if n >= 0 {
			if remain := n - produced; len(chunk) > remain {
				s.prepend(chunk[remain:])
				chunk = chunk[:remain]
			}
		}
		dst = append(dst, chunk...)
		produced += len(chunk)
		if n >= 0 && produced == n {
			return dst, nil
		}
	}
}

// Read implements io.Reader over the bounded read assembler. This face is
// raw: bytes land in p exactly as the resource produced them, because a
// normalizing encoder could overflow the caller's buffer. Use ReadN or
// ReadAll for encoding-normalized results.
func (s *Stream) Read(p []byte) (int, error) {
	if !s.readable {
		return 0, ErrClosedForReading
	}
	if len(p) == 0 {
		return 0, nil
	}
	out, err := s.readAppend(p[:0], len(p), OpFetch)
	return len(out), err
}

// ReadN returns up to n bytes normalized to the external encoding. A
// negative n requests the remainder of the stream. At confirmed
// end-of-stream with nothing produced it returns (nil, io.EOF), the
// "no data" sentinel.
//
// If the resource fails mid-read, bytes already produced are pushed back
// before the error returns, so a retry observes them again.
func (s *Stream) ReadN(n int) ([]byte, error) {
	if n < 0 {
		return s.ReadAll()
	}
	out, err := s.readAppend(make([]byte, 0, n), n, OpFetch)
	if err != nil {
		if err != EOF {
			s.prepend(out)
		}
		return nil, err
	}
	return s.normalize(out)
}

// ReadAll reads the remainder of the stream and returns it normalized to the
// external encoding. At confirmed end-of-stream with nothing produced it
// returns (nil, io.EOF). As with ReadN, a resource failure pushes the
// already-produced bytes back before the error returns.
func (s *Stream) ReadAll() ([]byte, error) {
	bb := bytebufferpool.Get()
	defer bytebufferpool.Put(bb)
	var err error
	bb.B, err = s.readAppend(bb.B[:0], -1, OpFetch)
	if err != nil {
		if err != EOF {
			s.prepend(bb.B)
		}
		return nil, err
	}
	return s.normalize(bb.B)
}

// ReadByte implements io.ByteReader. It returns io.EOF at end-of-stream,
// keeping the stdlib scanner contract so the stream composes with standard
// consumers.
func (s *Stream) ReadByte() (byte, error) {
	var one [1]byte
	out, err := s.readAppend(one[:0], 1, OpFetch)
	if err != nil {
		return 0, err
	}
	s.lastByte = int(out[0])
	return out[0], nil
}

// ReadRune implements io.RuneReader, decoding one UTF-8 codepoint from the
// raw stream. Invalid leading bytes decode as utf8.RuneError with size 1.
func (s *Stream) ReadRune() (rune, int, error) {
	var buf [utf8.UTFMax]byte
	n := 0
	for n < utf8.UTFMax {
		_, err := s.readAppend(buf[n:n], 1, OpFetch)
		if err != nil {
			if err == EOF && n > 0 {
				break
			}
			if n > 0 {
				s.prepend(buf[:n])
			}
			return 0, 0, err
		}
		n++
		if utf8.FullRune(buf[:n]) {
			break
		}
	}
	r, size := utf8.DecodeRune(buf[:n])
	if size < n {
		// trailing bytes of a malformed sequence belong to the next read
		s.prepend(buf[size:n])
		n = size
	}
	copy(s.lastRuneBuf[:], buf[:n])
	s.lastRuneLen = n
	return r, size, nil
}

// ReadChar returns the next character as a string in the external encoding.
// It fails with ErrUnexpectedEOS when the stream is already at its end: a
// single-unit read must succeed.
func (s *Stream) ReadChar() (string, error) {
	r, _, err := s.ReadRune()
	if err != nil {
		if err == EOF {
			return "", ErrUnexpectedEOS
		}
		return "", err
	}
	out, err := s.normalize(utf8.AppendRune(nil, r))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// WriteTo implements io.WriterTo: it drains the stream into w, push-back
// first, then chunk by chunk until end-of-stream. Bytes a failing writer did
// not accept are pushed back, so a retried WriteTo loses nothing.
func (s *Stream) WriteTo(w Writer) (int64, error) {
	if !s.readable {
		return 0, ErrClosedForReading
	}
	s.invalidateUnread()
	var written int64
	for {
		var chunk []byte
		if len(s.pushback) > 0 {
			chunk = s.take()
		} else {
			c, err := s.fetch(OpFetch)
			if err == EOF {
				return written, nil
			}
			if err != nil {
				return written, err
			}
			s.pos += int64(len(c))
			chunk = c
		}
		nw, ew := w.Write(chunk)
		if nw > 0 {
			written += int64(nw)
		}
		if ew != nil {
			if nw < len(chunk) {
				s.prepend(chunk[nw:])
			}
			return written, ew
		}
		if nw != len(chunk) {
			return written, ErrShortWrite
		}
	}
}
