package domain

// RunTrial plays one game over an already shuffled deck and returns the
// clamped core total recorded after each turn.
//
// The running total itself is never clamped, so once it passes
// MaxTrackedCores every later turn records MaxTrackedCores.
func RunTrial(deck Deck, p Params, play PlayPolicy, mulligan MulliganPolicy) Trajectory {
	cursor := min(p.OpeningHand, len(deck))
	hand := make(Hand, cursor, cursor+p.Turns)
	copy(hand, deck[:cursor])
	hand = Mulligan(hand, mulligan)

	total := 0
	out := make(Trajectory, p.Turns)
	for turn := 1; turn <= p.Turns; turn++ {
		if cursor < len(deck) {
			hand = append(hand, deck[cursor])
			cursor++
		}

		res := PlayCards(hand, turn, play)
		total += res.Cores()
		out[turn-1] = min(total, p.MaxTrackedCores)
		hand = res.Remaining
	}
	return out
}
