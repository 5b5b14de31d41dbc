package msort

import "sync/atomic"

// Stats counts how the engine scheduled work during Sort calls. Attach
// one via WithStats to observe the worker-limit degrade policy; all
// counters are safe for concurrent use and accumulate across calls.
type Stats struct {
	dispatched atomic.Int64
	fallbacks  atomic.Int64
}

// Dispatched returns how many halves were handed to a worker goroutine.
func (s *Stats) Dispatched() int64 {
	return s.dispatched.Load()
}

// SequentialFallbacks returns how many halves ran sequentially in the
// calling goroutine because the worker pool had no free token.
func (s *Stats) SequentialFallbacks() int64 {
	return s.fallbacks.Load()
}

func (s *Stats) addDispatch() {
	if s != nil {
		s.dispatched.Add(1)
	}
}

func (s *Stats) addFallback() {
	if s != nil {
		s.fallbacks.Add(1)
	}
}
