// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package streamx

// The push-back buffer holds at most one contiguous raw-byte segment,
// logically positioned immediately before the next chunk the resource would
// yield. prepend retracts the position, take advances it again, so Tell
// always reports bytes logically consumed regardless of buffering.

// prepend inserts p at the front of the push-back buffer, creating it if
// absent. Retracts pos by len(p) and clears eof: buffered data means the
// stream is not at its end.
func (s *Stream) prepend(p []byte) {
	if len(p) == 0 {
		return
	}
	if len(s.pushback) == 0 {
		s.pushback = append([]byte(nil), p...)
	} else {
		buf := make([]byte, 0, len(p)+len(s.pushback))
		buf = append(buf, p...)
		buf = append(buf, s.pushback...)
		s.pushback = buf
	}
	s.pos -= int64(len(p))
	s.eof = false
}

// take returns and clears the push-back buffer, advancing pos by its length.
func (s *Stream) take() []byte {
	b := s.pushback
	s.pushback = nil
	s.pos += int64(len(b))
	return b
}

// Unread pushes p back onto the stream. The bytes become the next bytes any
// read produces, in the same order, exactly once; Tell retracts by len(p)
// until they are consumed again.
//
// Position is pure arithmetic over consumed bytes, not an offset into the
// resource: pushing back more bytes than were ever read retracts Tell below
// zero until the surplus is consumed.
func (s *Stream) Unread(p []byte) error {
	if !s.readable {
		return ErrClosedForReading
	}
	s.invalidateUnread()
	s.prepend(p)
	return nil
}

// UnreadByte implements io.ByteScanner: it pushes back the byte most
// recently returned by ReadByte. It fails with ErrInvalidUnread if the
// previous operation was not a successful ReadByte.
func (s *Stream) UnreadByte() error {
	if !s.readable {
		return ErrClosedForReading
	}
	if s.lastByte < 0 {
		return ErrInvalidUnread
	}
	b := byte(s.lastByte)
	s.invalidateUnread()
	s.prepend([]byte{b})
	return nil
}

// UnreadRune implements io.RuneScanner: it pushes back the exact bytes that
// produced the rune most recently returned by ReadRune.
func (s *Stream) UnreadRune() error {
	if !s.readable {
		return ErrClosedForReading
	}
	if s.lastRuneLen == 0 {
		return ErrInvalidUnread
	}
	raw := s.lastRuneBuf[:s.lastRuneLen]
	s.invalidateUnread()
	s.prepend(raw)
	return nil
}

// Buffered reports how many pushed-back bytes are waiting in front of the
// resource.
func (s *Stream) Buffered() int { return len(s.pushback) }
