package msort

import "fmt"

// Key is the derived ordering tuple for an element. Comparison is
// lexicographic: Primary first, Secondary breaks ties.
type Key struct {
	Primary   int
	Secondary int
}

// Compare returns -1, 0, or +1 as k orders before, equal to, or after o.
func (k Key) Compare(o Key) int {
	switch {
	case k.Primary < o.Primary:
		return -1
	case k.Primary > o.Primary:
		return 1
	case k.Secondary < o.Secondary:
		return -1
	case k.Secondary > o.Secondary:
		return 1
	default:
		return 0
	}
}

// Less reports whether k orders strictly before o.
func (k Key) Less(o Key) bool {
	return k.Compare(o) < 0
}

// KeyFunc derives the ordering Key for an element. It must be
// deterministic and side-effect free. Returning an error marks the
// element's key as malformed and fails the enclosing sort before any
// work is dispatched.
type KeyFunc[T any] func(T) (Key, error)

// keyed pairs an element with its extracted key so the engine never
// re-invokes the key function during comparisons.
type keyed[T any] struct {
	elem T
	key  Key
}

// extractKeys derives keys for every element up front. A single failure
// aborts the whole extraction: a corrupted key would silently misplace
// its element with no detectable symptom later.
func extractKeys[T any](items []T, keyFn KeyFunc[T]) ([]keyed[T], error) {
	out := make([]keyed[T], len(items))
	for i, it := range items {
		k, err := keyFn(it)
		if err != nil {
			return nil, fmt.Errorf("extract key for element %d: %w", i, err)
		}
		out[i] = keyed[T]{elem: it, key: k}
	}
	return out, nil
}
