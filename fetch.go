// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package streamx

// fetch produces the next chunk of raw bytes from the resource, consulting
// the retry policy while nothing is ready.
//
//   - ErrWouldBlock: ask the policy; PolicyRetry yields and re-polls,
//     PolicyReturn surfaces ErrWouldBlock to the caller.
//   - ErrMore with a non-empty chunk: progress, delivered like a nil error.
//     With an empty chunk the engine re-polls immediately: the completion
//     carried no payload but the operation remains active.
//   - io.EOF, or an empty chunk with nil error (short read): end-of-stream.
//   - anything else propagates unchanged.
//
// A stream already confirmed at end-of-stream short-circuits: the resource
// is not polled again until a Seek or push-back clears the flag.
//
// Each delivered chunk is reported to the retry policy (see
// ProgressResetter), so a backoff restarts from its base after progress.
//
// fetch does not touch pos; consumption accounting belongs to the caller,
// which decides how much of the chunk is consumed versus pushed back.
func (s *Stream) fetch(op Op) ([]byte, error) {
	if !s.readable {
		return nil, ErrClosedForReading
	}
	if s.eof {
		return nil, EOF
	}
	for {
		chunk, err := s.res.ReadChunk()
		switch {
		case err == nil:
			if len(chunk) == 0 {
				// short read
				s.eof = true
				return nil, EOF
			}
			s.notifyProgress(op)
			return chunk, nil
		case IsMore(err):
			if len(chunk) == 0 {
				continue
			}
			s.notifyProgress(op)
			return chunk, nil
		case err == EOF:
			s.eof = true
			return nil, EOF
		case IsWouldBlock(err):
			if s.retry.OnWouldBlock(op) != PolicyRetry {
				return nil, err
			}
			s.retry.Yield(op)
		default:
			return nil, err
		}
	}
}

func (s *Stream) notifyProgress(op Op) {
	if r, ok := s.retry.(ProgressResetter); ok {
		r.OnProgress(op)
	}
}
