// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package streamx

import (
	"context"
	"runtime"
	"time"
)

// Op identifies which engine observed a would-block signal.
//
// This is intentionally coarse-grained: it lets a RetryPolicy distinguish
// ordinary buffered reads from positional reads that hold a transient seek.
type Op uint8

const (
	OpFetch Op = iota
	OpReadAt
)

func (op Op) String() string {
	switch op {
	case OpFetch:
		return "Fetch"
	case OpReadAt:
		return "ReadAt"
	default:
		return "Op(unknown)"
	}
}

// PolicyAction tells the fetch engine whether it should return to the caller
// or attempt the operation again.
type PolicyAction uint8

const (
	// PolicyReturn means: return ErrWouldBlock to the caller immediately.
	PolicyReturn PolicyAction = iota

	// PolicyRetry means: do not return; retry after Yield.
	PolicyRetry
)

// RetryPolicy customizes how the fetch engine reacts when the resource
// reports ErrWouldBlock.
//
// Contract expectations:
//   - OnWouldBlock is called once per would-block signal.
//   - If PolicyRetry is returned, the engine calls Yield(op) and retries.
//   - If Yield(op) does not actually wait for readiness, the engine may spin.
type RetryPolicy interface {
	Yield(op Op)
	OnWouldBlock(op Op) PolicyAction
}

// ProgressResetter is implemented by retry policies that want to observe
// delivered data. The fetch engine calls OnProgress once per delivered
// chunk; the backoff-based policies restart their wait progression so the
// next would-block stretch begins at the base duration again.
type ProgressResetter interface {
	OnProgress(op Op)
}

// PolicyFunc is a convenience implementation for callers that want to inject
// behavior without defining a struct type.
//
// Default behaviors when fields are nil:
//   - YieldFunc: calls runtime.Gosched() to yield the processor
//   - WouldBlockFunc: returns PolicyReturn (caller handles ErrWouldBlock)
type PolicyFunc struct {
	YieldFunc      func(op Op)
	WouldBlockFunc func(op Op) PolicyAction
}

func (p PolicyFunc) Yield(op Op) {
	if p.YieldFunc != nil {
		p.YieldFunc(op)
		return
	}
	runtime.Gosched()
}

func (p PolicyFunc) OnWouldBlock(op Op) PolicyAction {
	if p.WouldBlockFunc != nil {
		return p.WouldBlockFunc(op)
	}
	return PolicyReturn
}

// ReturnPolicy is the simplest policy: never waits and never retries.
// ErrWouldBlock surfaces to the caller untouched, preserving fully
// non-blocking semantics.
type ReturnPolicy struct{}

func (ReturnPolicy) Yield(Op) {}

func (ReturnPolicy) OnWouldBlock(Op) PolicyAction { return PolicyReturn }

// BackoffPolicy retries indefinitely, waiting with a linear capped Backoff
// between attempts. It is the default policy of a new Stream: reads block
// until the resource produces data or ends.
//
// Zero-value is ready to use.
type BackoffPolicy struct {
	Backoff Backoff
}

func (p *BackoffPolicy) Yield(Op) { p.Backoff.Wait() }

func (p *BackoffPolicy) OnWouldBlock(Op) PolicyAction { return PolicyRetry }

func (p *BackoffPolicy) OnProgress(Op) { p.Backoff.Reset() }

// DeadlinePolicy retries with backoff until an absolute deadline passes,
// then surfaces ErrWouldBlock. Bounded waiting as an explicit opt-in.
type DeadlinePolicy struct {
	Deadline time.Time
	Backoff  Backoff
}

func (p *DeadlinePolicy) Yield(Op) { p.Backoff.Wait() }

func (p *DeadlinePolicy) OnWouldBlock(Op) PolicyAction {
	if !time.Now().Before(p.Deadline) {
		return PolicyReturn
	}
	return PolicyRetry
}

func (p *DeadlinePolicy) OnProgress(Op) { p.Backoff.Reset() }

// ContextPolicy retries with backoff until ctx is done, then surfaces
// ErrWouldBlock. The wait itself is interrupted by cancellation, so a
// blocked read returns promptly when the context ends.
type ContextPolicy struct {
	Ctx     context.Context
	Backoff Backoff
}

func (p *ContextPolicy) Yield(Op) {
	t := time.NewTimer(p.Backoff.Next())
	defer t.Stop()
	select {
	case <-p.Ctx.Done():
	case <-t.C:
	}
}

func (p *ContextPolicy) OnWouldBlock(Op) PolicyAction {
	if p.Ctx.Err() != nil {
		return PolicyReturn
	}
	return PolicyRetry
}

func (p *ContextPolicy) OnProgress(Op) { p.Backoff.Reset() }
