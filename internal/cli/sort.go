package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/riffle/internal/bench"
	"github.com/roach88/riffle/internal/deck"
	"github.com/roach88/riffle/internal/msort"
	"github.com/roach88/riffle/internal/render"
)

// SortOptions holds flags for the sort command.
type SortOptions struct {
	*RootOptions
	Cards        int
	Decks        int
	Depth        int
	Interactive  bool
	Seed         uint64
	OrderingPath string
	Show         int
	Workers      int
}

// NewSortCommand creates the sort command.
func NewSortCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SortOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "sort",
		Short: "Shuffle a deck, sort it in parallel, and benchmark against the baseline",
		Long: `Build a shuffled multi-pack deck, sort it with the depth-bounded parallel
merge sort and with the sequential baseline, and report wall-clock
timings for both.

Examples:
  riffle sort
  riffle sort --cards 1000000 --depth 3 --seed 7
  riffle sort --interactive --ordering aces-high.yaml`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSort(opts, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Cards, "cards", 4_000_000, "approximate deck size in cards")
	cmd.Flags().IntVar(&opts.Decks, "decks", 0, "number of 54-card packs (overrides --cards when > 0)")
	cmd.Flags().IntVar(&opts.Depth, "depth", -1, "parallel depth budget (negative: use recommended)")
	cmd.Flags().BoolVar(&opts.Interactive, "interactive", false, "prompt for the depth budget on stdin")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "shuffle seed (0: derive from current time)")
	cmd.Flags().StringVar(&opts.OrderingPath, "ordering", "", "YAML file with suit/rank priority tables")
	cmd.Flags().IntVar(&opts.Show, "show", -1, "collapsed deck lines to print (-1: all, 0: none)")
	cmd.Flags().IntVar(&opts.Workers, "workers", 0, "worker pool limit (0: bounded by depth only)")

	return cmd
}

func runSort(opts *SortOptions, cmd *cobra.Command) error {
	setupLogging(opts.Verbose)
	out := cmd.OutOrStdout()

	ordering := deck.DefaultOrdering()
	if opts.OrderingPath != "" {
		var err error
		ordering, err = deck.LoadOrdering(opts.OrderingPath)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to load ordering", err)
		}
		slog.Info("custom ordering loaded", "path", opts.OrderingPath)
	}

	packs := opts.Decks
	if packs <= 0 {
		packs = deck.DecksFor(opts.Cards)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed))
	cards := deck.NewShuffled(packs, rng)
	slog.Info("deck built", "packs", packs, "cards", len(cards), "seed", seed)

	recommended := msort.RecommendedDepth()
	depth := opts.Depth
	if opts.Interactive {
		depth = promptDepth(cmd.InOrStdin(), out, recommended)
	} else if depth < 0 {
		depth = recommended
	}

	// Cancel the whole run on Ctrl-C; there is no mid-flight partial
	// result to salvage.
	parentCtx := cmd.Context()
	if parentCtx == nil {
		parentCtx = context.Background()
	}
	ctx, cancel := context.WithCancel(parentCtx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case sig := <-sigChan:
			slog.Info("received signal, aborting run", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	runner := &bench.Runner{
		Ordering: ordering,
		Depth:    depth,
		Workers:  opts.Workers,
		IDs:      bench.UUIDv7Generator{},
	}
	report, err := runner.Run(ctx, cards)
	if err != nil {
		return WrapExitError(ExitFailure, "benchmark run failed", err)
	}

	if opts.Format == "json" {
		formatter := &OutputFormatter{Format: opts.Format, Writer: out}
		return formatter.Success(report)
	}

	report.WriteSummary(out)
	if opts.Show != 0 {
		render.WriteDeck(out, "Sorted deck", report.Sorted, opts.Show)
	}
	return nil
}

// promptDepth asks the operator for a depth budget. Non-numeric or
// negative input falls back to the recommended value rather than
// erroring: zero fan-out is already a valid answer, so there is nothing
// stricter to enforce.
func promptDepth(in io.Reader, out io.Writer, recommended int) int {
	fmt.Fprintf(out, "Parallel depth (recommended <= %d): ", recommended)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return recommended
	}
	d, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || d < 0 {
		return recommended
	}
	return d
}
