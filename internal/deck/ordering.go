package deck

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/roach88/riffle/internal/msort"
)

// Ordering errors. Key derivation wraps these so callers can branch with
// errors.Is.
var (
	ErrUnknownSuit = errors.New("deck: unknown suit")
	ErrUnknownRank = errors.New("deck: unknown rank")
)

// Ordering maps suits and ranks to their sort priorities. It is
// immutable after construction: NewOrdering copies its inputs, and
// KeyFor is a pure function of (card, ordering).
type Ordering struct {
	suits map[Suit]int
	ranks map[Rank]int
}

// NewOrdering builds an Ordering from explicit priority tables. Both
// tables must be non-empty.
func NewOrdering(suits map[Suit]int, ranks map[Rank]int) (Ordering, error) {
	if len(suits) == 0 {
		return Ordering{}, errors.New("deck: ordering needs at least one suit")
	}
	if len(ranks) == 0 {
		return Ordering{}, errors.New("deck: ordering needs at least one rank")
	}

	o := Ordering{
		suits: make(map[Suit]int, len(suits)),
		ranks: make(map[Rank]int, len(ranks)),
	}
	for s, p := range suits {
		o.suits[s] = p
	}
	for r, p := range ranks {
		o.ranks[r] = p
	}
	return o, nil
}

// DefaultOrdering returns the standard priorities: hearts, clubs,
// spades, diamonds, then jokers; aces low (A=1) up to kings (K=13).
func DefaultOrdering() Ordering {
	o, err := NewOrdering(
		map[Suit]int{
			Hearts:   0,
			Clubs:    1,
			Spades:   2,
			Diamonds: 3,
			Joker:    4,
		},
		map[Rank]int{
			"A": 1, "2": 2, "3": 3, "4": 4, "5": 5, "6": 6, "7": 7,
			"8": 8, "9": 9, "10": 10, "J": 11, "Q": 12, "K": 13,
		},
	)
	if err != nil {
		panic(err) // static tables, cannot fail
	}
	return o
}

// KeyFor derives the (suit priority, rank priority) sort key for a
// card. A suit or rank absent from the tables is a malformed key and
// returns an error; there is no partial recovery, since a guessed
// priority would silently misplace the card.
//
// Jokers order among themselves by their copy number rather than the
// rank table.
func (o Ordering) KeyFor(c Card) (msort.Key, error) {
	sp, ok := o.suits[c.Suit]
	if !ok {
		return msort.Key{}, fmt.Errorf("%w: %q", ErrUnknownSuit, c.Suit)
	}

	if c.Suit == Joker {
		n, err := strconv.Atoi(string(c.Rank))
		if err != nil {
			return msort.Key{}, fmt.Errorf("%w: joker copy %q", ErrUnknownRank, c.Rank)
		}
		return msort.Key{Primary: sp, Secondary: n}, nil
	}

	rp, ok := o.ranks[c.Rank]
	if !ok {
		return msort.Key{}, fmt.Errorf("%w: %q", ErrUnknownRank, c.Rank)
	}
	return msort.Key{Primary: sp, Secondary: rp}, nil
}
