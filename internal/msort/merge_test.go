package msort

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intKey(i int) (Key, error) {
	return Key{Primary: i}, nil
}

func TestMerge_Interleaved(t *testing.T) {
	got, err := Merge([]int{1, 3, 5}, []int{2, 2, 4}, intKey)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 2, 3, 4, 5}, got)
}

func TestMerge_EmptyLeft(t *testing.T) {
	got, err := Merge(nil, []int{1, 2}, intKey)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got)
}

func TestMerge_EmptyRight(t *testing.T) {
	got, err := Merge([]int{1, 2}, nil, intKey)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got)
}

func TestMerge_BothEmpty(t *testing.T) {
	got, err := Merge[int](nil, nil, intKey)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMerge_TieFavorsLeft(t *testing.T) {
	type tagged struct {
		v    int
		side string
	}
	key := func(x tagged) (Key, error) { return Key{Primary: x.v}, nil }

	got, err := Merge(
		[]tagged{{1, "left"}},
		[]tagged{{1, "right"}},
		key,
	)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "left", got[0].side, "left element must precede equal right element")
	assert.Equal(t, "right", got[1].side)
}

func TestMerge_NilKeyFunc(t *testing.T) {
	_, err := Merge[int]([]int{1}, []int{2}, nil)
	assert.ErrorIs(t, err, ErrNilKeyFunc)
}

func TestKeyCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Key
		want int
	}{
		{"primary wins", Key{0, 9}, Key{1, 0}, -1},
		{"secondary breaks tie", Key{1, 2}, Key{1, 3}, -1},
		{"equal", Key{2, 2}, Key{2, 2}, 0},
		{"greater primary", Key{3, 0}, Key{2, 9}, 1},
		{"greater secondary", Key{2, 5}, Key{2, 4}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Compare(tt.b))
			assert.Equal(t, tt.want < 0, tt.a.Less(tt.b))
		})
	}
}
