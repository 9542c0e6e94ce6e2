package live

import "sync/atomic"

// Sequence hands out increasing request tokens so a loader can drop any
// response that is not for the most recent request.
type Sequence struct {
	latest atomic.Uint64
}

// Next issues a token for a new request and makes it the current one.
func (s *Sequence) Next() uint64 {
	return s.latest.Add(1)
}

// IsCurrent reports whether token belongs to the most recent request.
func (s *Sequence) IsCurrent(token uint64) bool {
	return s.latest.Load() == token
}
