// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package streamx_test

import (
	"bytes"
	"errors"
	"testing"
	"unicode/utf8"

	"code.hybscloud.com/streamx"
)

func TestReadAllThenShortRead(t *testing.T) {
	// resource yields "ab", then an empty-but-present chunk (short read)
	s := mustStream(t, &scriptedResource{steps: []step{
		{chunk: []byte("ab")},
		{chunk: []byte{}},
	}})
	got, err := s.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(got) != "ab" {
		t.Fatalf("ReadAll = %q, want %q", got, "ab")
	}
	if _, err := s.ReadAll(); !errors.Is(err, streamx.EOF) {
		t.Fatalf("second ReadAll = %v, want EOF sentinel", err)
	}
	if !s.EOF() {
		t.Fatal("EOF() = false after short read")
	}
}

func TestReadNSplitsChunkAtBoundary(t *testing.T) {
	s := mustStream(t, &scriptedResource{steps: []step{
		{chunk: []byte("abcdef")},
	}})
	got, err := s.ReadN(4)
	if err != nil {
		t.Fatalf("ReadN(4): %v", err)
	}
	if string(got) != "abcd" {
		t.Fatalf("ReadN(4) = %q, want %q", got, "abcd")
	}
	if s.Tell() != 4 {
		t.Fatalf("Tell() = %d, want 4", s.Tell())
	}
	if s.Buffered() != 2 {
		t.Fatalf("Buffered() = %d, want 2", s.Buffered())
	}
	rest, err := s.ReadN(10)
	if err != nil {
		t.Fatalf("ReadN(10): %v", err)
	}
	if string(rest) != "ef" {
		t.Fatalf("ReadN(10) = %q, want %q", rest, "ef")
	}
	if s.Tell() != 6 {
		t.Fatalf("Tell() = %d, want 6", s.Tell())
	}
}

func TestReadNAcrossChunks(t *testing.T) {
	s := mustStream(t, &scriptedResource{steps: []step{
		{chunk: []byte("ab")},
		{chunk: []byte("cd")},
		{chunk: []byte("ef")},
	}})
	got, err := s.ReadN(5)
	if err != nil {
		t.Fatalf("ReadN(5): %v", err)
	}
	if string(got) != "abcde" {
		t.Fatalf("ReadN(5) = %q, want %q", got, "abcde")
	}
	rest, err := s.ReadN(5)
	if err != nil {
		t.Fatalf("ReadN(5) tail: %v", err)
	}
	if string(rest) != "f" {
		t.Fatalf("tail = %q, want %q", rest, "f")
	}
}

func TestReadNZero(t *testing.T) {
	s := mustStream(t, &scriptedResource{steps: []step{{chunk: []byte("ab")}}})
	got, err := s.ReadN(0)
	if err != nil {
		t.Fatalf("ReadN(0): %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("ReadN(0) = %q, want empty", got)
	}
	if s.Tell() != 0 {
		t.Fatalf("Tell moved on zero-length read: %d", s.Tell())
	}
}

func TestReadNNegativeMeansAll(t *testing.T) {
	s := mustStream(t, &scriptedResource{steps: []step{
		{chunk: []byte("ab")},
		{chunk: []byte("cd")},
	}})
	got, err := s.ReadN(-1)
	if err != nil {
		t.Fatalf("ReadN(-1): %v", err)
	}
	if string(got) != "abcd" {
		t.Fatalf("ReadN(-1) = %q, want %q", got, "abcd")
	}
}

func TestReadNRecoversDataOnResourceError(t *testing.T) {
	wantErr := errors.New("device gone")
	s := mustStream(t, &scriptedResource{steps: []step{
		{chunk: []byte("ab")},
		{err: wantErr},
	}})
	if _, err := s.ReadN(10); !errors.Is(err, wantErr) {
		t.Fatalf("ReadN = %v, want %v", err, wantErr)
	}
	// the bytes produced before the failure went back in front of the
	// resource: position is restored and a retry observes them
	if s.Tell() != 0 {
		t.Fatalf("Tell after failed read = %d, want 0", s.Tell())
	}
	if s.Buffered() != 2 {
		t.Fatalf("Buffered() = %d, want 2", s.Buffered())
	}
	got, err := s.ReadN(10)
	if err != nil || string(got) != "ab" {
		t.Fatalf("retry = %q %v, want %q", got, err, "ab")
	}
	if s.Tell() != 2 {
		t.Fatalf("Tell after retry = %d, want 2", s.Tell())
	}
}

func TestReadAllRecoversDataOnResourceError(t *testing.T) {
	wantErr := errors.New("device gone")
	s := mustStream(t, &scriptedResource{steps: []step{
		{chunk: []byte("ab")},
		{err: wantErr},
	}})
	if _, err := s.ReadAll(); !errors.Is(err, wantErr) {
		t.Fatalf("ReadAll = %v, want %v", err, wantErr)
	}
	if s.Tell() != 0 || s.Buffered() != 2 {
		t.Fatalf("tell=%d buffered=%d after failed read, want 0 and 2", s.Tell(), s.Buffered())
	}
	got, err := s.ReadAll()
	if err != nil || string(got) != "ab" {
		t.Fatalf("retry = %q %v, want %q", got, err, "ab")
	}
}

func TestReadRuneRecoversPartialSequenceOnResourceError(t *testing.T) {
	wantErr := errors.New("device gone")
	s := mustStream(t, &scriptedResource{steps: []step{
		{chunk: []byte{0xC3}},
		{err: wantErr},
	}})
	if _, _, err := s.ReadRune(); !errors.Is(err, wantErr) {
		t.Fatalf("ReadRune = %v, want %v", err, wantErr)
	}
	if s.Tell() != 0 || s.Buffered() != 1 {
		t.Fatalf("tell=%d buffered=%d after failed read, want 0 and 1", s.Tell(), s.Buffered())
	}
	// retry finds the stranded lead byte; with the stream ended it decodes
	// as a RuneError of size 1
	r, size, err := s.ReadRune()
	if err != nil || r != utf8.RuneError || size != 1 {
		t.Fatalf("retry = %q size %d %v, want RuneError size 1", r, size, err)
	}
}

func TestReadPastEndDoesNotRepollResource(t *testing.T) {
	// after the short read confirms end-of-stream, the trailing would-block
	// step must never be reached
	s := mustStream(t, &scriptedResource{steps: []step{
		{chunk: []byte("ab")},
		{chunk: []byte{}},
		{err: streamx.ErrWouldBlock},
	}}, streamx.WithRetryPolicy(streamx.ReturnPolicy{}))
	got, err := s.ReadAll()
	if err != nil || string(got) != "ab" {
		t.Fatalf("ReadAll = %q %v", got, err)
	}
	if _, err := s.ReadN(1); !errors.Is(err, streamx.EOF) {
		t.Fatalf("read past end = %v, want EOF", err)
	}
}

func TestReadIOFace(t *testing.T) {
	s := mustStream(t, &scriptedResource{steps: []step{
		{chunk: []byte("abcdef")},
	}})
	p := make([]byte, 3)
	n, err := s.Read(p)
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if n != 3 || string(p[:3]) != "abc" {
		t.Fatalf("Read = %d %q, want 3 %q", n, p[:n], "abc")
	}
	n, err = s.Read(p)
	if err != nil || n != 3 || string(p[:3]) != "def" {
		t.Fatalf("second Read = %d %q %v", n, p[:n], err)
	}
	n, err = s.Read(p)
	if n != 0 || !errors.Is(err, streamx.EOF) {
		t.Fatalf("Read at end = %d %v, want 0 EOF", n, err)
	}
	// zero-length destination makes no progress and no error
	n, err = s.Read(nil)
	if n != 0 || err != nil {
		t.Fatalf("Read(nil) = %d %v", n, err)
	}
}

func TestReadByteAndRune(t *testing.T) {
	// "é" (0xC3 0xA9) split across chunk boundary
	s := mustStream(t, &scriptedResource{steps: []step{
		{chunk: []byte{'a', 0xC3}},
		{chunk: []byte{0xA9}},
	}})
	b, err := s.ReadByte()
	if err != nil || b != 'a' {
		t.Fatalf("ReadByte = %q %v, want 'a'", b, err)
	}
	r, size, err := s.ReadRune()
	if err != nil {
		t.Fatalf("ReadRune: %v", err)
	}
	if r != 'é' || size != 2 {
		t.Fatalf("ReadRune = %q size %d, want 'é' size 2", r, size)
	}
	if _, err := s.ReadByte(); !errors.Is(err, streamx.EOF) {
		t.Fatalf("ReadByte at end = %v, want EOF", err)
	}
}

func TestReadRuneInvalidByte(t *testing.T) {
	s := mustStream(t, &scriptedResource{steps: []step{
		{chunk: []byte{0xFF, 'x'}},
	}})
	r, size, err := s.ReadRune()
	if err != nil {
		t.Fatalf("ReadRune: %v", err)
	}
	if r != utf8.RuneError || size != 1 {
		t.Fatalf("ReadRune = %q size %d, want RuneError size 1", r, size)
	}
	// the byte after the malformed one is not lost
	b, err := s.ReadByte()
	if err != nil || b != 'x' {
		t.Fatalf("ReadByte = %q %v, want 'x'", b, err)
	}
}

func TestReadCharMustSucceed(t *testing.T) {
	s := mustStream(t, &scriptedResource{steps: []step{{chunk: []byte("a")}}})
	c, err := s.ReadChar()
	if err != nil || c != "a" {
		t.Fatalf("ReadChar = %q %v", c, err)
	}
	if _, err := s.ReadChar(); !errors.Is(err, streamx.ErrUnexpectedEOS) {
		t.Fatalf("ReadChar at end = %v, want ErrUnexpectedEOS", err)
	}
}

func TestWriteTo(t *testing.T) {
	s := mustStream(t, &scriptedResource{steps: []step{
		{chunk: []byte("cd")},
		{chunk: []byte("ef")},
	}})
	if err := s.Unread([]byte("ab")); err != nil {
		t.Fatalf("Unread: %v", err)
	}
	var dst bytes.Buffer
	n, err := s.WriteTo(&dst)
	if err != nil {
		t.Fatalf("WriteTo: %v", err)
	}
	if n != 6 || dst.String() != "abcdef" {
		t.Fatalf("WriteTo = %d %q, want 6 %q", n, dst.String(), "abcdef")
	}
}

// failAfterWriter accepts limit bytes, then fails.
type failAfterWriter struct {
	limit int
	data  []byte
	err   error
}

func (w *failAfterWriter) Write(p []byte) (int, error) {
	if len(p) <= w.limit {
		w.limit -= len(p)
		w.data = append(w.data, p...)
		return len(p), nil
	}
	n := w.limit
	w.limit = 0
	w.data = append(w.data, p[:n]...)
	return n, w.err
}

func TestWriteToKeepsUnwrittenBytes(t *testing.T) {
	wantErr := errors.New("sink full")
	s := mustStream(t, &scriptedResource{steps: []step{
		{chunk: []byte("abcdef")},
	}})
	w := &failAfterWriter{limit: 4, err: wantErr}
	n, err := s.WriteTo(w)
	if !errors.Is(err, wantErr) {
		t.Fatalf("WriteTo = %v, want %v", err, wantErr)
	}
	if n != 4 {
		t.Fatalf("WriteTo wrote %d, want 4", n)
	}
	// the two unaccepted bytes are readable again
	rest, err := s.ReadN(2)
	if err != nil || string(rest) != "ef" {
		t.Fatalf("rest = %q %v, want %q", rest, err, "ef")
	}
}
