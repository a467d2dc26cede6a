// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package streamx

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

// lookupEncoding resolves a text-encoding identifier ("utf-8", "shift_jis",
// "windows-1252", ...) against the WHATWG/IANA index. There is no implicit
// process-wide default: a stream normalizes only when an encoding was named
// at construction.
func lookupEncoding(name string) (encoding.Encoding, error) {
	return htmlindex.Get(name)
}

// normalize converts assembled raw bytes into the external encoding at the
// point they are handed to a consumer. Buffered state (push-back, length
// accounting) always stays raw, so splitting a chunk can never strand a
// partial multi-byte sequence inside the buffer.
//
// The result is always a fresh slice: callers stage through pooled buffers
// that must not escape.
func (s *Stream) normalize(b []byte) ([]byte, error) {
	if s.xenc == nil {
		return append([]byte(nil), b...), nil
	}
	return s.xenc.NewEncoder().Bytes(b)
}
