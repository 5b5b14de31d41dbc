package msort

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"golang.org/x/sync/errgroup"
)

// MaxFanOutDepth is the hard ceiling on the parallel depth budget. A
// budget of d allows up to 2^d concurrent leaf computations, so without
// a ceiling a careless caller could request an absurd number of
// goroutines. Depths beyond the ceiling are clamped, never rejected:
// extra depth changes only scheduling, never the result.
const MaxFanOutDepth = 16

// ErrNilKeyFunc is returned when a Sorter is constructed, or Merge is
// called, without a key function.
var ErrNilKeyFunc = errors.New("msort: nil key function")

// Option configures a Sorter.
type Option func(*config)

type config struct {
	maxDepth int
	workers  chan struct{} // token pool; nil means depth-bounded only
	stats    *Stats
}

// WithMaxDepth sets the parallel depth budget. Negative values are
// treated as zero (fully sequential, not an error); values above
// MaxFanOutDepth are clamped.
func WithMaxDepth(d int) Option {
	return func(c *config) {
		if d < 0 {
			d = 0
		}
		if d > MaxFanOutDepth {
			d = MaxFanOutDepth
		}
		c.maxDepth = d
	}
}

// WithWorkerLimit bounds the number of concurrently dispatched workers
// to n via a token pool. When no token is free, the half runs
// sequentially in the calling goroutine instead of being dispatched.
// That degrade is deliberate and observable through WithStats; it is
// never silent. n <= 0 removes the limit.
func WithWorkerLimit(n int) Option {
	return func(c *config) {
		if n <= 0 {
			c.workers = nil
			return
		}
		c.workers = make(chan struct{}, n)
	}
}

// WithStats attaches counters recording how work was scheduled.
func WithStats(s *Stats) Option {
	return func(c *config) {
		c.stats = s
	}
}

// Sorter sorts slices of T ascending by a fixed key function.
//
// A Sorter is immutable after construction and safe for concurrent use:
// every Sort call works on its own private keyed copy of the input.
type Sorter[T any] struct {
	keyFn KeyFunc[T]
	cfg   config
}

// New creates a Sorter. The default depth budget is RecommendedDepth().
func New[T any](keyFn KeyFunc[T], opts ...Option) (*Sorter[T], error) {
	if keyFn == nil {
		return nil, ErrNilKeyFunc
	}
	cfg := config{maxDepth: RecommendedDepth()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Sorter[T]{keyFn: keyFn, cfg: cfg}, nil
}

// Sort returns a new slice holding the elements of items sorted
// ascending by key. The input is never modified. The result is stable:
// elements with equal keys keep their relative input order, whatever
// depth budget is in effect.
//
// Sort fails, returning no output, if any element's key cannot be
// extracted or if ctx is cancelled while subtrees are outstanding.
func (s *Sorter[T]) Sort(ctx context.Context, items []T) ([]T, error) {
	ks, err := extractKeys(items, s.keyFn)
	if err != nil {
		return nil, err
	}

	slog.Debug("parallel sort dispatching",
		"elements", len(items),
		"max_depth", s.cfg.maxDepth,
	)

	sorted, err := s.sortKeyed(ctx, ks, s.cfg.maxDepth)
	if err != nil {
		return nil, err
	}
	return unkey(sorted), nil
}

// sortKeyed is the recursive engine. Each call owns items exclusively;
// halves are disjoint subslices of it, and results are fresh slices.
func (s *Sorter[T]) sortKeyed(ctx context.Context, items []keyed[T], depth int) ([]keyed[T], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Recursion floor: trivial size or exhausted budget.
	if len(items) <= 1 || depth <= 0 {
		return sortSequential(items), nil
	}

	mid := len(items) / 2
	var left, right []keyed[T]

	g, gctx := errgroup.WithContext(ctx)
	s.runHalf(gctx, g, items[:mid], depth-1, &left)
	s.runHalf(gctx, g, items[mid:], depth-1, &right)

	// The only synchronization point: a two-way barrier on the halves.
	// A failure in either subtree surfaces here and no merge is produced.
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("sort subtree at depth %d: %w", depth, err)
	}

	return mergeKeyed(left, right), nil
}

// runHalf dispatches one half as an independent worker when a token is
// available, and otherwise finishes it sequentially in the caller. With
// no worker limit configured, dispatch always succeeds and concurrency
// is bounded by the depth budget alone.
func (s *Sorter[T]) runHalf(ctx context.Context, g *errgroup.Group, half []keyed[T], depth int, dst *[]keyed[T]) {
	if s.cfg.workers != nil {
		select {
		case s.cfg.workers <- struct{}{}:
		default:
			// Pool exhausted: documented degrade to sequential.
			s.cfg.stats.addFallback()
			*dst = sortSequential(half)
			return
		}
	}

	s.cfg.stats.addDispatch()
	g.Go(func() error {
		if s.cfg.workers != nil {
			defer func() { <-s.cfg.workers }()
		}
		res, err := s.sortKeyed(ctx, half, depth)
		if err != nil {
			return err
		}
		*dst = res
		return nil
	})
}

// sortSequential is the stable sequential baseline used at the
// recursion floor. It clones its input so subtree results never alias
// the shared working copy.
func sortSequential[T any](items []keyed[T]) []keyed[T] {
	out := slices.Clone(items)
	slices.SortStableFunc(out, func(a, b keyed[T]) int {
		return a.key.Compare(b.key)
	})
	return out
}

// Sort is a convenience wrapper: one-shot parallel sort of items by
// keyFn with the given depth budget.
func Sort[T any](ctx context.Context, items []T, keyFn KeyFunc[T], maxDepth int) ([]T, error) {
	s, err := New(keyFn, WithMaxDepth(maxDepth))
	if err != nil {
		return nil, err
	}
	return s.Sort(ctx, items)
}

// SortBaseline runs the sequential stable baseline end to end. It is
// the reference path benchmarks compare the parallel engine against and
// shares the engine's key semantics, including fail-fast extraction.
func SortBaseline[T any](items []T, keyFn KeyFunc[T]) ([]T, error) {
	if keyFn == nil {
		return nil, ErrNilKeyFunc
	}
	ks, err := extractKeys(items, keyFn)
	if err != nil {
		return nil, err
	}
	return unkey(sortSequential(ks)), nil
}
