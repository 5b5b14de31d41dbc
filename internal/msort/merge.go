package msort

import "fmt"

// Merge combines two sequences, each already sorted ascending by keyFn,
// into one sorted sequence. The merge is stable: when keys tie, the
// element from left wins, so left-origin elements keep their position
// ahead of equal right-origin elements.
//
// Either input may be empty. Merge allocates the output; neither input
// is modified.
func Merge[T any](left, right []T, keyFn KeyFunc[T]) ([]T, error) {
	if keyFn == nil {
		return nil, ErrNilKeyFunc
	}
	lk, err := extractKeys(left, keyFn)
	if err != nil {
		return nil, fmt.Errorf("merge left input: %w", err)
	}
	rk, err := extractKeys(right, keyFn)
	if err != nil {
		return nil, fmt.Errorf("merge right input: %w", err)
	}
	return unkey(mergeKeyed(lk, rk)), nil
}

// mergeKeyed is the engine-internal merge over pre-keyed runs. Ties favor
// left (<=), which is what makes the overall sort stable.
func mergeKeyed[T any](left, right []keyed[T]) []keyed[T] {
	if len(left) == 0 {
		return right
	}
	if len(right) == 0 {
		return left
	}

	out := make([]keyed[T], 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if left[i].key.Compare(right[j].key) <= 0 {
			out = append(out, left[i])
			i++
		} else {
			out = append(out, right[j])
			j++
		}
	}
	// One side is exhausted; the other's remainder is already in order.
	out = append(out, left[i:]...)
	out = append(out, right[j:]...)
	return out
}

// unkey strips extracted keys, preserving order.
func unkey[T any](items []keyed[T]) []T {
	out := make([]T, len(items))
	for i, kv := range items {
		out[i] = kv.elem
	}
	return out
}
