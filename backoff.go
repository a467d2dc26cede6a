// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package streamx

import (
	"time"
)

const (
	// DefaultBackoffBase is the base duration for the fetch retry wait
	// (500µs). It matches the expected scale of local readiness latencies.
	DefaultBackoffBase = 500 * time.Microsecond

	// DefaultBackoffMax is the default ceiling for one wait (100ms).
	DefaultBackoffMax = 100 * time.Millisecond
)

// Backoff implements a linear capped back-off with jitter, used by the fetch
// engine to wait between ReadChunk attempts when the resource reports
// ErrWouldBlock.
//
// Zero-value is ready to use: a freshly declared Backoff{} uses
// DefaultBackoffBase (500µs) and DefaultBackoffMax (100ms).
//
// Each wait grows the duration linearly: attempt n sleeps
// min(base × n, max) ± 12.5% jitter. Jitter prevents synchronized polling
// against a shared resource.
type Backoff struct {
	attempt int           // completed waits
	base    time.Duration // linear scaling factor
	max     time.Duration // ceiling
	fastSrc uint64        // PRNG state for jitter
}

// Wait sleeps for the current backoff duration and advances the attempt
// counter.
func (b *Backoff) Wait() {
	time.Sleep(b.Next())
}

// Next returns the jittered duration for the current attempt and advances
// the attempt counter. Callers that wait on their own timer (e.g. alongside
// a context) use Next instead of Wait.
func (b *Backoff) Next() time.Duration {
	if b.attempt == 0 {
		if b.base <= 0 {
			b.base = DefaultBackoffBase
		}
		if b.max <= 0 {
			b.max = DefaultBackoffMax
		}
		if b.fastSrc == 0 {
			b.fastSrc = uint64(time.Now().UnixNano()) | 1
		}
	}
	b.attempt++

	d := time.Duration(b.attempt) * b.base
	if d > b.max {
		d = b.max
	}
	return b.applyJitter(d)
}

func (b *Backoff) applyJitter(d time.Duration) time.Duration {
	b.fastSrc ^= b.fastSrc << 13
	b.fastSrc ^= b.fastSrc >> 7
	b.fastSrc ^= b.fastSrc << 17
	r := int64(b.fastSrc>>32) % 256
	factor := int64(d) * (r - 128) / 1024
	return d + time.Duration(factor)
}

// SetBase configures the initial duration and linear scaling factor.
func (b *Backoff) SetBase(d time.Duration) { b.base = d }

// SetMax configures the maximum allowed sleep duration.
func (b *Backoff) SetMax(d time.Duration) { b.max = d }

// Reset restores the backoff to its first attempt.
func (b *Backoff) Reset() { b.attempt = 0 }

// Attempt returns the number of completed waits since the last Reset.
func (b *Backoff) Attempt() int { return b.attempt }

// Duration returns the duration the next wait would use, without jitter.
// For a zero-value Backoff, returns DefaultBackoffBase.
func (b *Backoff) Duration() time.Duration {
	base := b.base
	if base <= 0 {
		base = DefaultBackoffBase
	}
	d := time.Duration(b.attempt+1) * base
	max := b.max
	if max <= 0 {
		max = DefaultBackoffMax
	}
	if d > max {
		return max
	}
	return d
}
