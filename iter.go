// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package streamx

import (
	"errors"
	"iter"
)

// The iteration engine produces lazy, finite sequences over the stream. All
// producers share the bounded read assembler, start from the current
// position (no rewind is implied), stop silently at end-of-stream, and yield
// one final (zero, err) pair on a genuine failure. Re-invoking a producer
// starts a fresh pass from wherever the previous one stopped.
//
// Each producer has a callback twin (EachChunk, EachByte, ...) with
// identical behavior: the callback returns false to stop early, and the Each
// form returns the terminal error, nil at a clean end-of-stream.

// Chunks yields normalized chunks as the resource produces them: the
// push-back segment first, then one element per primitive read.
func (s *Stream) Chunks() iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		for {
			chunk, err := s.nextChunk()
			if err == EOF {
				return
			}
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(chunk, nil) {
				return
			}
		}
	}
}

// nextChunk returns the next consumed, normalized chunk: the push-back
// buffer when non-empty, otherwise one fetched chunk.
func (s *Stream) nextChunk() ([]byte, error) {
	if !s.readable {
		return nil, ErrClosedForReading
	}
	s.invalidateUnread()
	if len(s.pushback) > 0 {
		return s.normalize(s.take())
	}
	chunk, err := s.fetch(OpFetch)
	if err != nil {
		return nil, err
	}
	s.pos += int64(len(chunk))
	return s.normalize(chunk)
}

// Bytes yields the raw bytes of the stream one at a time.
func (s *Stream) Bytes() iter.Seq2[byte, error] {
	return func(yield func(byte, error) bool) {
		for {
			b, err := s.ReadByte()
			if err == EOF {
				return
			}
			if err != nil {
				yield(0, err)
				return
			}
			if !yield(b, nil) {
				return
			}
		}
	}
}

// Codepoints yields the stream's UTF-8 codepoints.
func (s *Stream) Codepoints() iter.Seq2[rune, error] {
	return func(yield func(rune, error) bool) {
		for {
			r, _, err := s.ReadRune()
			if err == EOF {
				return
			}
			if err != nil {
				yield(0, err)
				return
			}
			if !yield(r, nil) {
				return
			}
		}
	}
}

// Chars yields one character at a time as a string in the external encoding.
func (s *Stream) Chars() iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		for {
			c, err := s.ReadChar()
			if errors.Is(err, ErrUnexpectedEOS) {
				return
			}
			if err != nil {
				yield("", err)
				return
			}
			if !yield(c, nil) {
				return
			}
		}
	}
}

// Lines yields separator-delimited lines. A trailing fragment with no
// separator before end-of-stream is yielded together with ErrUnexpectedEOS,
// matching ReadLine; a clean end stops the sequence silently.
func (s *Stream) Lines(sep []byte) iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		for {
			line, err := s.ReadLine(sep)
			if err != nil {
				if errors.Is(err, ErrUnexpectedEOS) && len(line) == 0 {
					return
				}
				yield(line, err)
				return
			}
			if !yield(line, nil) {
				return
			}
			if sep == nil {
				return
			}
		}
	}
}

// EachChunk iterates chunks with a callback.
func (s *Stream) EachChunk(fn func(chunk []byte) bool) error {
	for chunk, err := range s.Chunks() {
		if err != nil {
			return err
		}
		if !fn(chunk) {
			return nil
		}
	}
	return nil
}

// EachByte iterates bytes with a callback.
func (s *Stream) EachByte(fn func(b byte) bool) error {
	for b, err := range s.Bytes() {
		if err != nil {
			return err
		}
		if !fn(b) {
			return nil
		}
	}
	return nil
}

// EachCodepoint iterates codepoints with a callback.
func (s *Stream) EachCodepoint(fn func(r rune) bool) error {
	for r, err := range s.Codepoints() {
		if err != nil {
			return err
		}
		if !fn(r) {
			return nil
		}
	}
	return nil
}

// EachChar iterates characters with a callback.
func (s *Stream) EachChar(fn func(c string) bool) error {
	for c, err := range s.Chars() {
		if err != nil {
			return err
		}
		if !fn(c) {
			return nil
		}
	}
	return nil
}

// EachLine iterates lines with a callback. A trailing unterminated fragment
// is delivered to fn before ErrUnexpectedEOS is returned.
func (s *Stream) EachLine(sep []byte, fn func(line []byte) bool) error {
	for line, err := range s.Lines(sep) {
		if err != nil {
			if len(line) > 0 {
				fn(line)
			}
			return err
		}
		if !fn(line) {
			return nil
		}
	}
	return nil
}
