// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package streamx

import (
	"bytes"

	"github.com/valyala/bytebufferpool"
)

// DefaultLineSeparator is the separator conventionally passed to the
// line-oriented APIs.
var DefaultLineSeparator = []byte("\n")

// ReadLine reads one separator-delimited line, separator included, and
// increments the line counter. A nil sep requests the remainder of the
// stream as one line.
//
// If the stream ends before sep is produced, ReadLine returns the partial
// fragment (nil when empty) together with ErrUnexpectedEOS: a valid line
// must contain at least the separator when one is requested. The fragment is
// returned rather than dropped so no data is lost.
func (s *Stream) ReadLine(sep []byte) ([]byte, error) {
	if !s.readable {
		return nil, ErrClosedForReading
	}
	if sep == nil {
		out, err := s.ReadAll()
		if err != nil {
			if err == EOF {
				return nil, ErrUnexpectedEOS
			}
			return nil, err
		}
		s.lineno++
		return out, nil
	}

	bb := bytebufferpool.Get()
	defer bytebufferpool.Put(bb)
	var one [1]byte
	for {
		out, err := s.readAppend(one[:0], 1, OpFetch)
		if err != nil {
			if err == EOF {
				if len(bb.B) == 0 {
					return nil, ErrUnexpectedEOS
				}
				frag, nerr := s.normalize(bb.B)
				if nerr != nil {
					return nil, nerr
				}
				return frag, ErrUnexpectedEOS
			}
			// a failing resource must not swallow the partial line
			s.prepend(bb.B)
			return nil, err
		}
		bb.B = append(bb.B, out[0])
		if bytes.HasSuffix(bb.B, sep) {
			s.lineno++
			return s.normalize(bb.B)
		}
	}
}
