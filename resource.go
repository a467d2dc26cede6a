// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package streamx

// Resource is the primitive contract a concrete byte source/sink implements:
// sockets, pipes, pseudo-terminals, in-memory buffers. The Stream consumes
// it; a resource needs no knowledge of buffering, push-back, or iteration.
type Resource interface {
	// Open is called once, when the Stream is constructed. It returns an
	// opaque handle (may be nil) that the Stream retains until Close.
	Open() (handle any, err error)

	// ReadChunk returns the next available chunk of raw bytes.
	//
	// Result semantics:
	//   - (chunk, nil) with len(chunk) > 0: ordinary progress.
	//   - (chunk, ErrMore): progress, and more completions will follow.
	//   - (nil, ErrWouldBlock): nothing ready yet; the stream has not ended.
	//   - (nil, io.EOF): the stream ended.
	//   - (empty, nil): a short read; the Stream treats it as end-of-stream.
	//
	// The returned slice is transient: the Stream copies whatever it needs
	// to retain before the next ReadChunk call.
	ReadChunk() ([]byte, error)

	// WriteChunk delegates raw bytes to the resource and returns the number
	// of bytes accepted. A partial count with a nil error makes the Stream
	// retry the remainder.
	WriteChunk(p []byte) (int, error)

	// Seek repositions the resource and returns the new absolute offset.
	// whence is one of SeekStart, SeekCurrent, SeekEnd, or a resource-defined
	// extension; unsupported values should return an error.
	Seek(offset int64, whence int) (int64, error)

	// Close releases resource-held state. Called at most once by the Stream.
	Close() error
}

// Reopener is implemented by resources that support reopening after close.
// The core does not define reopen semantics; Stream.Reopen delegates here
// and returns ErrNotImplemented for resources that don't implement it.
type Reopener interface {
	Reopen() (handle any, err error)
}

// TTYIndicator is implemented by resources backed by a terminal device.
// Stream.IsTTY delegates here and reports false otherwise.
type TTYIndicator interface {
	IsTTY() bool
}
