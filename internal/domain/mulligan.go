package domain

// ParseMulliganPolicy maps a raw policy name to a MulliganPolicy.
// Unknown names fall back to MulliganNone.
func ParseMulliganPolicy(raw string) MulliganPolicy {
	switch MulliganPolicy(raw) {
	case MulliganReturnNonCore:
		return MulliganReturnNonCore
	default:
		return MulliganNone
	}
}

// Mulligan applies policy to an opening hand.
//
// MulliganReturnNonCore drops every card that yields no cores and does not
// draw replacements, so the hand may shrink.
func Mulligan(hand Hand, policy MulliganPolicy) Hand {
	if policy != MulliganReturnNonCore {
		return hand
	}

	kept := make(Hand, 0, len(hand))
	for _, c := range hand {
		if c.Cores != 0 {
			kept = append(kept, c)
		}
	}
	return kept
}
