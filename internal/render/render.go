// Package render formats sorted decks for display. Consecutive
// identical cards are run-length collapsed to a single "card (xN)"
// line, which is why the sort feeding this package must be stable:
// equal cards have to survive adjacent, in a deterministic order.
package render

import (
	"fmt"
	"io"

	"github.com/roach88/riffle/internal/deck"
)

// WriteDeck writes cards to w under a title, collapsing runs of
// identical cards. maxLines limits the number of collapsed lines
// printed (further lines are elided with a trailing marker); a negative
// maxLines prints everything.
func WriteDeck(w io.Writer, title string, cards []deck.Card, maxLines int) {
	fmt.Fprintf(w, "-- %s --\n", title)
	if len(cards) == 0 {
		fmt.Fprintln(w, "no cards to show")
		return
	}

	lines := 0
	emit := func(c deck.Card, count int) bool {
		if maxLines >= 0 && lines >= maxLines {
			fmt.Fprintln(w, "...")
			return false
		}
		if count > 1 {
			fmt.Fprintf(w, "%s (x%d)\n", c, count)
		} else {
			fmt.Fprintln(w, c)
		}
		lines++
		return true
	}

	prev := cards[0]
	count := 1
	for _, c := range cards[1:] {
		if c == prev {
			count++
			continue
		}
		if !emit(prev, count) {
			return
		}
		prev = c
		count = 1
	}
	emit(prev, count)
}
