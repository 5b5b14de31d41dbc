// Package deck models playing cards and the ordering configuration that
// maps them onto msort keys. The suit/rank priority tables are injected
// immutable configuration, not package globals: an Ordering is built once
// (defaults or YAML) and every key derivation goes through it.
package deck

import "fmt"

// Suit is a card suit. The recognized suits are determined entirely by
// the Ordering in use; the constants below cover the standard pack.
type Suit string

// Rank is a card rank ("2".."10", "J", "Q", "K", "A"). Jokers carry
// their copy number ("1", "2") as the rank.
type Rank string

const (
	Hearts   Suit = "hearts"
	Clubs    Suit = "clubs"
	Spades   Suit = "spades"
	Diamonds Suit = "diamonds"
	Joker    Suit = "joker"
)

// StandardSuits are the four suits of a 52-card pack, in default
// priority order.
var StandardSuits = []Suit{Hearts, Clubs, Spades, Diamonds}

// StandardRanks are the thirteen ranks of a suit.
var StandardRanks = []Rank{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}

// Card is one playing card. Cards are plain values: comparable,
// copyable, and safe to move across worker boundaries.
type Card struct {
	Suit Suit
	Rank Rank
}

func (c Card) String() string {
	if c.Suit == Joker {
		return fmt.Sprintf("Joker %s", c.Rank)
	}
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}
