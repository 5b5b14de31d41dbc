package msort

import (
	"context"
	"errors"
	"fmt"
	"math/bits"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// record carries an identity alongside its sort value so stability is
// observable: equal values must keep ascending ids.
type record struct {
	value int
	id    int
}

func recordKey(r record) (Key, error) {
	return Key{Primary: r.value}, nil
}

func randomRecords(rng *rand.Rand, n, distinct int) []record {
	out := make([]record, n)
	for i := range out {
		out[i] = record{value: rng.IntN(distinct), id: i}
	}
	return out
}

// depthsFor enumerates every budget the properties must hold at:
// 0 through ceil(log2(n))+2.
func depthsFor(n int) []int {
	top := 2
	if n > 1 {
		top = bits.Len(uint(n-1)) + 2
	}
	var ds []int
	for d := 0; d <= top; d++ {
		ds = append(ds, d)
	}
	return ds
}

func TestSort_PermutationOrderingStability(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	input := randomRecords(rng, 1000, 20)

	for _, depth := range depthsFor(len(input)) {
		t.Run(fmt.Sprintf("depth=%d", depth), func(t *testing.T) {
			got, err := Sort(context.Background(), input, recordKey, depth)
			require.NoError(t, err)
			require.Len(t, got, len(input))

			// Permutation: same multiset of ids, none dropped or duplicated.
			seen := make(map[int]bool, len(got))
			for _, r := range got {
				assert.False(t, seen[r.id], "id %d duplicated", r.id)
				seen[r.id] = true
			}

			for i := 1; i < len(got); i++ {
				// Ordering: ascending by value.
				assert.LessOrEqual(t, got[i-1].value, got[i].value)
				// Stability: within a run of equal values, ids ascend.
				if got[i-1].value == got[i].value {
					assert.Less(t, got[i-1].id, got[i].id,
						"equal-key elements reordered at index %d", i)
				}
			}
		})
	}
}

func TestSort_DepthInvariance(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	input := randomRecords(rng, 500, 10)

	reference, err := Sort(context.Background(), input, recordKey, 0)
	require.NoError(t, err)

	for _, depth := range depthsFor(len(input))[1:] {
		got, err := Sort(context.Background(), input, recordKey, depth)
		require.NoError(t, err)
		assert.Equal(t, reference, got, "depth %d changed the output", depth)
	}
}

func TestSort_InputNotMutated(t *testing.T) {
	input := []record{{3, 0}, {1, 1}, {2, 2}}
	before := slices.Clone(input)

	_, err := Sort(context.Background(), input, recordKey, 2)
	require.NoError(t, err)
	assert.Equal(t, before, input)
}

func TestSort_BaseCases(t *testing.T) {
	for _, depth := range []int{0, 1, 4} {
		got, err := Sort(context.Background(), []record{{42, 0}}, recordKey, depth)
		require.NoError(t, err)
		assert.Equal(t, []record{{42, 0}}, got)

		got, err = Sort(context.Background(), []record{}, recordKey, depth)
		require.NoError(t, err)
		assert.Empty(t, got)
	}
}

func TestSort_NegativeDepthIsSequential(t *testing.T) {
	input := []record{{2, 0}, {1, 1}}
	got, err := Sort(context.Background(), input, recordKey, -5)
	require.NoError(t, err)
	assert.Equal(t, []record{{1, 1}, {2, 0}}, got)
}

func TestSort_MalformedKeyFailsWhole(t *testing.T) {
	errBad := errors.New("unmapped category")
	key := func(r record) (Key, error) {
		if r.value == 13 {
			return Key{}, errBad
		}
		return Key{Primary: r.value}, nil
	}

	input := []record{{1, 0}, {13, 1}, {2, 2}}
	got, err := Sort(context.Background(), input, key, 2)
	assert.Nil(t, got, "no partial output on key failure")
	assert.ErrorIs(t, err, errBad)
}

func TestSort_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rng := rand.New(rand.NewPCG(1, 2))
	_, err := Sort(ctx, randomRecords(rng, 100, 10), recordKey, 3)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNew_NilKeyFunc(t *testing.T) {
	_, err := New[record](nil)
	assert.ErrorIs(t, err, ErrNilKeyFunc)
}

func TestSort_WorkerLimitFallback(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 1))
	input := randomRecords(rng, 2000, 50)

	var stats Stats
	s, err := New(recordKey,
		WithMaxDepth(4),
		WithWorkerLimit(1),
		WithStats(&stats),
	)
	require.NoError(t, err)

	got, err := s.Sort(context.Background(), input)
	require.NoError(t, err)

	want, err := SortBaseline(input, recordKey)
	require.NoError(t, err)
	assert.Equal(t, want, got, "degraded scheduling must not change the output")

	// With a single token and 2 halves per level, some halves must have
	// run sequentially in the caller, and that degrade is counted.
	assert.Positive(t, stats.SequentialFallbacks())
	assert.Positive(t, stats.Dispatched())
}

func TestSortBaseline_MatchesEngine(t *testing.T) {
	rng := rand.New(rand.NewPCG(2, 4))
	input := randomRecords(rng, 300, 7)

	seq, err := SortBaseline(input, recordKey)
	require.NoError(t, err)
	par, err := Sort(context.Background(), input, recordKey, 3)
	require.NoError(t, err)
	assert.Equal(t, seq, par)
}

func TestWithMaxDepth_Clamped(t *testing.T) {
	var cfg config
	WithMaxDepth(-3)(&cfg)
	assert.Equal(t, 0, cfg.maxDepth)

	WithMaxDepth(MaxFanOutDepth + 10)(&cfg)
	assert.Equal(t, MaxFanOutDepth, cfg.maxDepth)
}

func BenchmarkSort(b *testing.B) {
	rng := rand.New(rand.NewPCG(5, 8))
	input := randomRecords(rng, 100_000, 54)

	for _, depth := range []int{0, 1, 2, RecommendedDepth()} {
		b.Run(fmt.Sprintf("depth=%d", depth), func(b *testing.B) {
			for b.Loop() {
				if _, err := Sort(context.Background(), input, recordKey, depth); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
