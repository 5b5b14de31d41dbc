package deck

import "math/rand/v2"

// CardsPerPack is the size of one pack: 52 standard cards plus 2 jokers.
const CardsPerPack = 52 + 2

// DecksFor returns how many packs are needed to reach approximately n
// cards, at least one.
func DecksFor(n int) int {
	packs := n / CardsPerPack
	if packs < 1 {
		return 1
	}
	return packs
}

// NewShuffled builds numDecks packs (each 52 cards plus 2 jokers) and
// shuffles them with rng. A fixed seed gives a reproducible deck, which
// is what makes benchmark runs comparable.
func NewShuffled(numDecks int, rng *rand.Rand) []Card {
	if numDecks < 1 {
		numDecks = 1
	}

	cards := make([]Card, 0, numDecks*CardsPerPack)
	for range numDecks {
		for _, r := range StandardRanks {
			for _, s := range StandardSuits {
				cards = append(cards, Card{Suit: s, Rank: r})
			}
		}
		cards = append(cards, Card{Suit: Joker, Rank: "1"}, Card{Suit: Joker, Rank: "2"})
	}

	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})
	return cards
}
