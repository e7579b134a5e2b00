package domain

import (
	"cmp"
	"slices"
)

// Play is the outcome of one turn's card selection.
type Play struct {
	// Played is in the order the cards were chosen.
	Played Hand
	// Remaining keeps the original hand order.
	Remaining Hand
}

// Cores sums the cores yielded by the played cards.
func (p Play) Cores() int {
	total := 0
	for _, c := range p.Played {
		total += c.Cores
	}
	return total
}

// ParsePlayPolicy maps a raw policy name to a PlayPolicy.
// Unknown names fall back to PlayHighCostFirst.
func ParsePlayPolicy(raw string) PlayPolicy {
	switch PlayPolicy(raw) {
	case PlayGreedy:
		return PlayGreedy
	default:
		return PlayHighCostFirst
	}
}

// PlayCards walks the hand once in policy order and plays every card that
// still fits in the remaining budget. A card that does not fit is skipped,
// never revisited, so the selection is not an optimal fill.
func PlayCards(hand Hand, budget int, policy PlayPolicy) Play {
	order := make([]int, len(hand))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return comparePriority(hand[a], hand[b], policy)
	})

	played := make([]bool, len(hand))
	out := Play{Played: Hand{}}
	for _, i := range order {
		c := hand[i]
		if c.Cost > budget {
			continue
		}
		budget -= c.Cost
		played[i] = true
		out.Played = append(out.Played, c)
	}

	out.Remaining = make(Hand, 0, len(hand)-len(out.Played))
	for i, c := range hand {
		if !played[i] {
			out.Remaining = append(out.Remaining, c)
		}
	}
	return out
}

// comparePriority orders a before b when it returns a negative number.
// Equal priority returns 0 so a stable sort keeps hand order.
func comparePriority(a, b Card, policy PlayPolicy) int {
	if policy == PlayGreedy {
		// b.Cores/b.Cost vs a.Cores/a.Cost without floating point.
		return cmp.Compare(b.Cores*a.Cost, a.Cores*b.Cost)
	}
	if c := cmp.Compare(b.Cost, a.Cost); c != 0 {
		return c
	}
	return cmp.Compare(b.Cores, a.Cores)
}
