package domain

import "fmt"

// BuildDeck expands specs into one card per copy, in spec order, then pads
// with Filler until the deck holds at least minSize cards.
func BuildDeck(specs []CardSpec, minSize int) Deck {
	total := 0
	for _, s := range specs {
		total += max(s.Count, 0)
	}

	deck := make(Deck, 0, max(total, minSize))
	for _, s := range specs {
		for range s.Count {
			deck = append(deck, Card{Cost: s.Cost, Cores: s.Cores})
		}
	}
	for len(deck) < minSize {
		deck = append(deck, Filler)
	}
	return deck
}

// Shuffle returns a uniformly random permutation of deck.
// The input is left untouched.
func Shuffle(deck Deck, rng RNG) Deck {
	out := make(Deck, len(deck))
	copy(out, deck)

	// Fisher-Yates, last index first.
	for i := len(out) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// ValidateSpecs checks the bounds the card editor enforces.
func ValidateSpecs(specs []CardSpec) error {
	for i, s := range specs {
		switch {
		case s.Cost < 1:
			return fmt.Errorf("%w: card %d (%s) cost %d must be at least 1", ErrInvalidCard, i, s.ID, s.Cost)
		case s.Cores < 0:
			return fmt.Errorf("%w: card %d (%s) cores %d must not be negative", ErrInvalidCard, i, s.ID, s.Cores)
		case s.Count < 0 || s.Count > MaxCardCount:
			return fmt.Errorf("%w: card %d (%s) count %d must be between 0 and %d", ErrInvalidCard, i, s.ID, s.Count, MaxCardCount)
		}
	}
	return nil
}
