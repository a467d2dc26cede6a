// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package streamx

// Package streamx adapts resources that expose only a primitive chunk
// contract (open, read-next-chunk, write-chunk, seek, close) into a rich,
// buffered stream API: bounded and unbounded reads, push-back, byte /
// character / codepoint / line iteration, positional read/write, and
// text-encoding normalization. The resource never sees any of that
// machinery; it only has to distinguish "no data yet" from "stream ended".
//
// Extended result semantics (shared with the iox family):
//   - ErrWouldBlock: the resource has no chunk ready right now. The fetch
//     engine consults the stream's RetryPolicy: the default BackoffPolicy
//     waits and retries, so callers normally never see this error.
//   - ErrMore: the resource delivered a chunk and more completions will
//     follow (multi-shot style). The chunk is consumed as ordinary progress.
//
// A zero-length chunk with a nil error is a short read and marks
// end-of-stream; it is distinct from ErrWouldBlock, which keeps the fetch
// engine polling.
//
// Streams are not safe for concurrent use: the push-back buffer and the
// position counters are mutated without synchronization. Serialize access
// externally when sharing a stream across goroutines.
