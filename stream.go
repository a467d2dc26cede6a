// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package streamx

import (
	"io"
	"io/fs"

	"golang.org/x/text/encoding"
)

// Stream adapts a Resource into a buffered, feature-rich stream.
//
// State invariants:
//   - pos always equals "bytes logically consumed from the start of the
//     stream": reading N bytes advances it by N, pushing back M bytes
//     retracts it by M.
//   - eof becomes true only after a short read or io.EOF from the resource,
//     and never while the push-back buffer is non-empty.
//   - the push-back buffer holds at most one contiguous segment, logically
//     positioned before any not-yet-fetched resource data.
//   - any Seek discards the push-back buffer and clears eof.
type Stream struct {
	res    Resource
	handle any
	retry  RetryPolicy
	xenc   encoding.Encoding // nil: identity (no normalization)

	encName  string
	pushback []byte
	pos      int64
	lineno   int

	eof      bool
	closed   bool
	readable bool
	writable bool

	// last successful unit read, for ByteScanner/RuneScanner unread
	lastByte    int
	lastRuneBuf [4]byte
	lastRuneLen int

	// compat flags: retained state, no buffering effect
	sync        bool
	binmode     bool
	autoclose   bool
	closeOnExec bool
}

var (
	_ io.ReadWriteCloser = (*Stream)(nil)
	_ io.Seeker          = (*Stream)(nil)
	_ io.ReaderAt        = (*Stream)(nil)
	_ io.WriterAt        = (*Stream)(nil)
	_ io.ByteScanner     = (*Stream)(nil)
	_ io.RuneScanner     = (*Stream)(nil)
	_ io.ReaderFrom      = (*Stream)(nil)
	_ io.WriterTo        = (*Stream)(nil)
	_ io.StringWriter    = (*Stream)(nil)
)

// Option configures a Stream at construction.
type Option func(*Stream)

// WithEncoding sets the external text encoding by name. Any identifier
// recognized by the WHATWG/IANA index is accepted ("utf-8", "shift_jis",
// "windows-1252", ...). Bytes handed to consumers by the string-producing
// APIs (ReadN, ReadAll, ReadLine, Chars, Chunks) are normalized to this
// encoding; internal buffering always stays raw.
func WithEncoding(name string) Option {
	return func(s *Stream) { s.encName = name }
}

// WithRetryPolicy replaces the default BackoffPolicy consulted by the fetch
// engine on ErrWouldBlock.
func WithRetryPolicy(p RetryPolicy) Option {
	return func(s *Stream) { s.retry = p }
}

// WithBackoff keeps the default retry-forever behavior but with a custom
// backoff shape.
func WithBackoff(b Backoff) Option {
	return func(s *Stream) { s.retry = &BackoffPolicy{Backoff: b} }
}

// WithReadOnly disables the write capability from construction.
func WithReadOnly() Option {
	return func(s *Stream) { s.writable = false }
}

// WithWriteOnly disables the read capability from construction.
func WithWriteOnly() Option {
	return func(s *Stream) { s.readable = false }
}

// New constructs a Stream over res and opens it: the handle is acquired,
// position, line number and end-of-stream state are reset, and the push-back
// buffer is empty. The zero configuration is a blocking, read-write,
// identity-encoding stream.
func New(res Resource, opts ...Option) (*Stream, error) {
	s := &Stream{
		res:       res,
		retry:     &BackoffPolicy{},
		readable:  true,
		writable:  true,
		autoclose: true,
		lastByte:  -1,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.encName != "" {
		enc, err := lookupEncoding(s.encName)
		if err != nil {
			return nil, err
		}
		s.xenc = enc
	}
	h, err := res.Open()
	if err != nil {
		return nil, err
	}
	s.handle = h
	return s, nil
}

// Handle returns the opaque token the resource produced at Open, or nil
// after Close.
func (s *Stream) Handle() any { return s.handle }

// Tell returns the current logical position: bytes consumed from the start
// of the stream, push-back already accounted for.
func (s *Stream) Tell() int64 { return s.pos }

// LineNumber returns the count of delimited-read operations performed.
func (s *Stream) LineNumber() int { return s.lineno }

// SetLineNumber overrides the line counter.
func (s *Stream) SetLineNumber(n int) { s.lineno = n }

// EOF reports whether the stream is confirmed at end-of-stream with no
// buffered push-back data remaining.
func (s *Stream) EOF() bool { return s.eof && len(s.pushback) == 0 }

// Closed reports whether the stream has been fully closed.
func (s *Stream) Closed() bool { return s.closed }

// Readable reports whether the read capability is enabled.
func (s *Stream) Readable() bool { return s.readable }

// Writable reports whether the write capability is enabled.
func (s *Stream) Writable() bool { return s.writable }

// Encoding returns the configured external encoding name, or "" for
// identity.
func (s *Stream) Encoding() string { return s.encName }

// Close fully closes the stream: the primitive close runs, the handle is
// discarded, both capabilities are disabled, and the closed flag is set.
// A second Close is a no-op returning nil.
func (s *Stream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.readable = false
	s.writable = false
	s.handle = nil
	s.pushback = nil
	s.invalidateUnread()
	return s.res.Close()
}

// CloseRead disables the read capability. If the write side is already
// disabled, the stream is fully closed. Closing an already-closed read side
// is a no-op.
func (s *Stream) CloseRead() error {
	if s.closed || !s.readable {
		return nil
	}
	if !s.writable {
		return s.Close()
	}
	s.readable = false
	s.pushback = nil
	s.invalidateUnread()
	return nil
}

// CloseWrite disables the write capability, symmetric to CloseRead.
func (s *Stream) CloseWrite() error {
	if s.closed || !s.writable {
		return nil
	}
	if !s.readable {
		return s.Close()
	}
	s.writable = false
	return nil
}

// Reopen re-establishes the stream for resources that support it (see
// Reopener). The default is ErrNotImplemented: re-opening after close is not
// part of the core contract.
func (s *Stream) Reopen() error {
	r, ok := s.res.(Reopener)
	if !ok {
		return ErrNotImplemented
	}
	h, err := r.Reopen()
	if err != nil {
		return err
	}
	s.handle = h
	s.closed = false
	s.readable = true
	s.writable = true
	s.pos = 0
	s.lineno = 0
	s.eof = false
	s.pushback = nil
	s.invalidateUnread()
	return nil
}

// Stat is not defined by this layer.
func (s *Stream) Stat() (fs.FileInfo, error) { return nil, ErrNotImplemented }

// Ioctl (device control) is not defined by this layer.
func (s *Stream) Ioctl(cmd int, arg any) error { return ErrNotImplemented }

// Fcntl (descriptor control) is not defined by this layer.
func (s *Stream) Fcntl(cmd int, arg any) error { return ErrNotImplemented }

// IsTTY reports whether the resource says it is backed by a terminal.
func (s *Stream) IsTTY() bool {
	if t, ok := s.res.(TTYIndicator); ok {
		return t.IsTTY()
	}
	return false
}

// SetSync and the flag accessors below retain state for interface
// compatibility; streamx performs no write buffering, so they change no
// behavior.

func (s *Stream) SetSync(v bool) { s.sync = v }

func (s *Stream) Sync() bool { return s.sync }

// Binmode marks the stream as binary-mode. Flag only.
func (s *Stream) Binmode() { s.binmode = true }

func (s *Stream) IsBinmode() bool { return s.binmode }

func (s *Stream) SetAutoclose(v bool) { s.autoclose = v }

func (s *Stream) Autoclose() bool { return s.autoclose }

func (s *Stream) SetCloseOnExec(v bool) { s.closeOnExec = v }

func (s *Stream) CloseOnExec() bool { return s.closeOnExec }

func (s *Stream) invalidateUnread() {
	s.lastByte = -1
	s.lastRuneLen = 0
}
