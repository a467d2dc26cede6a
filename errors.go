// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package streamx

import "errors"

// streamx keeps the iox semantic errors for the primitive contract and adds
// the stream-level failure taxonomy on top.
//
// Mental model for the semantic pair:
//   - ErrWouldBlock: no chunk is ready; retry later.
//   - ErrMore: progress happened and more completions will follow.
//
// Both are expected control flow, not failures. The fetch engine absorbs
// them; they reach callers only when the configured RetryPolicy elects to
// return instead of retry.

// ErrWouldBlock means the resource has no data ready yet.
// Linux analogy: EAGAIN/EWOULDBLOCK. Returned by Resource.ReadChunk when
// nothing is available but the stream has not ended.
var ErrWouldBlock = errors.New("streamx: would block")

// ErrMore means the resource delivered a completion and more will follow
// (multi-shot style). A chunk accompanied by ErrMore is ordinary progress.
var ErrMore = errors.New("streamx: expect more")

// ErrClosedForReading is returned when a read-side operation is attempted
// while the read capability is disabled (after CloseRead or Close, or on a
// write-only stream). Never retried.
var ErrClosedForReading = errors.New("streamx: closed for reading")

// ErrClosedForWriting is returned when a write-side operation is attempted
// while the write capability is disabled. Never retried.
var ErrClosedForWriting = errors.New("streamx: closed for writing")

// ErrClosed is returned by whole-stream operations (Seek, Rewind) after the
// stream has been fully closed.
var ErrClosed = errors.New("streamx: closed stream")

// ErrUnexpectedEOS is returned when a delimited read cannot produce its
// separator before the stream ends. The partial fragment read so far, if
// any, is returned alongside so no data is lost.
var ErrUnexpectedEOS = errors.New("streamx: unexpected end of stream")

// ErrNotImplemented is returned by operations this layer defines no
// semantics for: Stat, Ioctl, Fcntl, and Reopen on resources that do not
// support reopening.
var ErrNotImplemented = errors.New("streamx: not implemented")

// ErrInvalidUnread is returned by UnreadByte/UnreadRune when the previous
// operation was not a matching successful read.
var ErrInvalidUnread = errors.New("streamx: no unit to unread")
