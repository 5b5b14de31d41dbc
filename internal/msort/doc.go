// Package msort implements a depth-bounded parallel merge sort.
//
// The sort is stable and never mutates its input: Sort returns a newly
// constructed slice ordered ascending by a caller-supplied key function.
//
// ARCHITECTURE:
//
// Split / dispatch / merge:
// Each recursion level splits its slice at the midpoint and dispatches both
// halves as independent goroutines joined by an errgroup. The halves own
// disjoint ranges of a private working copy, so there is no shared mutable
// state between siblings; results come back by value and are combined with
// a stable two-way merge (ties favor the left half).
//
// Depth budget:
// Parallel fan-out consumes one unit of depth per level. When the budget
// reaches zero - or a subproblem shrinks to a single element - the subtree
// is finished by a sequential stable sort in the calling goroutine. A
// budget of d therefore bounds live workers to at most 2^d leaves, and d
// itself is clamped to MaxFanOutDepth. RecommendedDepth suggests
// floor(log2(P)) for P available processors, so the leaf count tracks the
// core count.
//
// Failure model:
// Key extraction happens once, up front, before any dispatch; a key error
// fails the whole sort immediately. Errors (and context cancellation)
// observed inside a subtree propagate through the errgroup join - no
// partial or merged-but-corrupted output is ever returned. The computation
// is pure, so callers may retry wholesale.
package msort
