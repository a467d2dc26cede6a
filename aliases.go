// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package streamx

import (
	"io"
)

// streamx re-exports (aliases) the io interfaces the Stream satisfies or
// consumes, so that users can stay in the "streamx" namespace while reading
// documentation and navigating types. The contracts mirror the standard io
// expectations.

// Reader is an alias of io.Reader. Stream implements it over the bounded
// read assembler.
type Reader = io.Reader

// Writer is an alias of io.Writer. Stream implements it over the primitive
// write operation; WriteTo and ReadFrom accept any Writer/Reader.
type Writer = io.Writer

// Closer is an alias of io.Closer.
type Closer = io.Closer

// Seeker is an alias of io.Seeker. The Resource contract's Seek has the same
// shape, so any io.Seeker-backed resource maps directly.
type Seeker = io.Seeker

// ReaderAt is an alias of io.ReaderAt. Stream implements it by transiently
// seeking and restoring the prior position.
type ReaderAt = io.ReaderAt

// WriterAt is an alias of io.WriterAt, with the same transient-seek
// implementation note as ReaderAt.
type WriterAt = io.WriterAt

// ReaderFrom is an alias of io.ReaderFrom.
type ReaderFrom = io.ReaderFrom

// WriterTo is an alias of io.WriterTo.
type WriterTo = io.WriterTo

// ByteReader is an alias of io.ByteReader.
type ByteReader = io.ByteReader

// ByteScanner is an alias of io.ByteScanner: a ByteReader that can "unread"
// the last byte read.
type ByteScanner = io.ByteScanner

// RuneReader is an alias of io.RuneReader.
type RuneReader = io.RuneReader

// RuneScanner is an alias of io.RuneScanner: a RuneReader that can "unread"
// the last rune read.
type RuneScanner = io.RuneScanner

// StringWriter is an alias of io.StringWriter.
type StringWriter = io.StringWriter

// Seek whence values, re-exported for resource implementations.
// Resource-defined extensions (values above SeekEnd) pass through the
// Stream's Seek unchanged.
const (
	SeekStart   = io.SeekStart
	SeekCurrent = io.SeekCurrent
	SeekEnd     = io.SeekEnd
)

// Common sentinel errors re-exported for convenience.
//
// Note: streamx also defines semantic non-failure errors (ErrWouldBlock,
// ErrMore) used by the primitive contract; those are not part of the
// standard io set.
var (
	// EOF is returned when no more input is available. Resources return it
	// from ReadChunk to signal a graceful end of stream.
	EOF = io.EOF

	// ErrShortWrite means a write accepted fewer bytes than requested and
	// returned no explicit error.
	ErrShortWrite = io.ErrShortWrite
)
