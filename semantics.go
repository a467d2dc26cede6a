// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package streamx

import (
	"errors"
	"io"
)

// Outcome classifies an operation result against streamx's taxonomy.
//
// OutcomeOK:         success, usable data was produced.
// OutcomeWouldBlock: no progress is possible right now; retry later.
// OutcomeMore:       progress happened and more completions are expected.
// OutcomeEnd:        the stream ended (io.EOF or ErrUnexpectedEOS).
// OutcomeClosed:     a capability violation (closed stream or side).
// OutcomeFailure:    any other error.
type Outcome uint8

const (
	OutcomeFailure Outcome = iota
	OutcomeOK
	OutcomeWouldBlock
	OutcomeMore
	OutcomeEnd
	OutcomeClosed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeOK:
		return "OK"
	case OutcomeWouldBlock:
		return "WouldBlock"
	case OutcomeMore:
		return "More"
	case OutcomeEnd:
		return "End"
	case OutcomeClosed:
		return "Closed"
	default:
		return "Failure"
	}
}

// IsWouldBlock reports whether err carries the would-block semantic.
// It returns true for ErrWouldBlock and wrappers (via errors.Is).
func IsWouldBlock(err error) bool { return errors.Is(err, ErrWouldBlock) }

// IsMore reports whether err carries the multi-shot (more completions)
// semantic. It returns true for ErrMore and wrappers (via errors.Is).
func IsMore(err error) bool { return errors.Is(err, ErrMore) }

// IsSemantic reports whether err represents a semantic signal of the
// primitive contract: ErrWouldBlock or ErrMore (including wrapped forms).
func IsSemantic(err error) bool { return IsWouldBlock(err) || IsMore(err) }

// IsNonFailure reports whether err should be treated as a non-failure in
// stream control flow: nil, ErrWouldBlock, or ErrMore.
func IsNonFailure(err error) bool { return err == nil || IsSemantic(err) }

// IsClosed reports whether err is a capability violation: ErrClosed,
// ErrClosedForReading, or ErrClosedForWriting (including wrapped forms).
func IsClosed(err error) bool {
	return errors.Is(err, ErrClosed) ||
		errors.Is(err, ErrClosedForReading) ||
		errors.Is(err, ErrClosedForWriting)
}

// IsEnd reports whether err marks the end of the stream: io.EOF or
// ErrUnexpectedEOS (including wrapped forms).
func IsEnd(err error) bool {
	return errors.Is(err, io.EOF) || errors.Is(err, ErrUnexpectedEOS)
}

// Classify maps err to an Outcome. Use when a compact switch is preferred.
func Classify(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeOK
	case IsWouldBlock(err):
		return OutcomeWouldBlock
	case IsMore(err):
		return OutcomeMore
	case IsEnd(err):
		return OutcomeEnd
	case IsClosed(err):
		return OutcomeClosed
	default:
		return OutcomeFailure
	}
}
