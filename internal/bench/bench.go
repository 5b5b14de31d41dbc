// Package bench runs the parallel merge-sort engine and the sequential
// baseline over the same deck and reports wall-clock timings for both.
// The sort itself is pure, so both paths see identical input and their
// outputs are required to agree before a report is produced.
package bench

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/roach88/riffle/internal/deck"
	"github.com/roach88/riffle/internal/msort"
)

// Report is the outcome of one benchmark run.
type Report struct {
	RunID             string        `json:"run_id"`
	Cards             int           `json:"cards"`
	Depth             int           `json:"depth"`
	RecommendedDepth  int           `json:"recommended_depth"`
	ParallelElapsed   time.Duration `json:"parallel_elapsed_ns"`
	SequentialElapsed time.Duration `json:"sequential_elapsed_ns"`

	// Sorted is the parallel path's output, kept for rendering.
	// Excluded from JSON: a four-million-line payload is not a report.
	Sorted []deck.Card `json:"-"`
}

// WriteSummary writes the human-readable timing summary. Card counts
// get grouped digits (4,000,014) since the default deck is millions of
// cards.
func (r *Report) WriteSummary(w io.Writer) {
	p := message.NewPrinter(language.English)
	p.Fprintf(w, "Deck of %d cards (run %s)\n", r.Cards, r.RunID)
	p.Fprintf(w, "Depth %d (recommended %d)\n", r.Depth, r.RecommendedDepth)
	p.Fprintf(w, "Parallel sort took %.4fs\n", r.ParallelElapsed.Seconds())
	p.Fprintf(w, "Sequential sort took %.4fs\n", r.SequentialElapsed.Seconds())
}

// Runner executes benchmark runs with a fixed configuration.
type Runner struct {
	Ordering deck.Ordering
	Depth    int
	Workers  int   // optional worker-limit token pool; 0 = unbounded
	IDs      RunIDGenerator
	Stats    *msort.Stats // optional scheduling counters
}

// Run sorts cards twice - once through the parallel engine, once
// through the sequential baseline - timing each path. The input is
// never mutated, so both paths observe the same deck.
//
// Any failure (malformed key, cancellation, output disagreement) aborts
// the run with no report: a partially sorted deck is never presented.
func (r *Runner) Run(ctx context.Context, cards []deck.Card) (*Report, error) {
	ids := r.IDs
	if ids == nil {
		ids = UUIDv7Generator{}
	}

	opts := []msort.Option{msort.WithMaxDepth(r.Depth)}
	if r.Workers > 0 {
		opts = append(opts, msort.WithWorkerLimit(r.Workers))
	}
	if r.Stats != nil {
		opts = append(opts, msort.WithStats(r.Stats))
	}
	sorter, err := msort.New(r.Ordering.KeyFor, opts...)
	if err != nil {
		return nil, err
	}

	slog.Info("benchmark starting", "cards", len(cards), "depth", r.Depth)

	startPar := time.Now()
	parallel, err := sorter.Sort(ctx, cards)
	if err != nil {
		return nil, fmt.Errorf("parallel sort: %w", err)
	}
	parElapsed := time.Since(startPar)

	startSeq := time.Now()
	sequential, err := msort.SortBaseline(cards, r.Ordering.KeyFor)
	if err != nil {
		return nil, fmt.Errorf("sequential sort: %w", err)
	}
	seqElapsed := time.Since(startSeq)

	// Depth invariance: parallelism may only change performance, never
	// the output. A disagreement is a bug worth failing loudly over.
	if !slices.Equal(parallel, sequential) {
		return nil, fmt.Errorf("parallel and sequential outputs disagree over %d cards", len(cards))
	}

	slog.Info("benchmark finished",
		"parallel_elapsed", parElapsed,
		"sequential_elapsed", seqElapsed,
	)

	return &Report{
		RunID:             ids.Generate(),
		Cards:             len(cards),
		Depth:             r.Depth,
		RecommendedDepth:  msort.RecommendedDepth(),
		ParallelElapsed:   parElapsed,
		SequentialElapsed: seqElapsed,
		Sorted:            parallel,
	}, nil
}
