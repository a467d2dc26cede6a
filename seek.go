// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package streamx

// Seek implements io.Seeker by delegating to the resource. It
// unconditionally discards the push-back buffer, clears end-of-stream, and
// adopts the resource's reported offset as the new position. A read
// immediately after Seek therefore never observes bytes pushed back before
// it.
func (s *Stream) Seek(offset int64, whence int) (int64, error) {
	if s.closed {
		return 0, ErrClosed
	}
	pos, err := s.res.Seek(offset, whence)
	if err != nil {
		return s.pos, err
	}
	// discard without position bookkeeping: the buffered bytes are invalid
	s.pushback = nil
	s.eof = false
	s.pos = pos
	s.invalidateUnread()
	return pos, nil
}

// Rewind seeks to the absolute start and resets the line counter.
func (s *Stream) Rewind() error {
	if _, err := s.Seek(0, SeekStart); err != nil {
		return err
	}
	s.lineno = 0
	return nil
}

// ReadAt implements io.ReaderAt: it saves the current position, seeks to
// off, performs a bounded read, and seeks back. The externally observed
// position is unchanged even though the resource transiently moves.
//
// Per the io.ReaderAt contract, n < len(p) comes with a non-nil error
// (io.EOF when the stream ended first).
func (s *Stream) ReadAt(p []byte, off int64) (int, error) {
	if !s.readable {
		return 0, ErrClosedForReading
	}
	saved := s.pos
	if _, err := s.Seek(off, SeekStart); err != nil {
		return 0, err
	}
	out, rerr := s.readAppend(p[:0], len(p), OpReadAt)
	n := len(out)
	if _, serr := s.Seek(saved, SeekStart); serr != nil {
		return n, serr
	}
	if rerr != nil && rerr != EOF {
		return n, rerr
	}
	if n < len(p) {
		return n, EOF
	}
	return n, nil
}

// WriteAt implements io.WriterAt with the same save-seek-restore shape as
// ReadAt: Tell after WriteAt reports the position observed before the call.
func (s *Stream) WriteAt(p []byte, off int64) (int, error) {
	if !s.writable {
		return 0, ErrClosedForWriting
	}
	saved := s.pos
	if _, err := s.Seek(off, SeekStart); err != nil {
		return 0, err
	}
	n, werr := s.Write(p)
	if _, serr := s.Seek(saved, SeekStart); serr != nil && werr == nil {
		werr = serr
	}
	return n, werr
}
