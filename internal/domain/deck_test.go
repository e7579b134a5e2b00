package domain_test

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/randomtoy/coresim/internal/domain"
)

// seededRNG adapts a seeded math/rand/v2 generator.
type seededRNG struct{ r *rand.Rand }

func newSeededRNG(seed uint64) *seededRNG {
	return &seededRNG{r: rand.New(rand.NewPCG(seed, seed^0x5bd1e995))}
}

func (s *seededRNG) Intn(n int) int { return s.r.IntN(n) }

// identityRNG always picks j == i, leaving the deck in order.
type identityRNG struct{}

func (identityRNG) Intn(n int) int { return n - 1 }

func TestBuildDeck_PadsWithFiller(t *testing.T) {
	specs := []domain.CardSpec{
		{ID: "a", Cost: 1, Cores: 1, Count: 3},
		{ID: "b", Cost: 4, Cores: 2, Count: 2},
	}

	deck := domain.BuildDeck(specs, 40)
	if len(deck) != 40 {
		t.Fatalf("expected 40 cards, got %d", len(deck))
	}

	want := []domain.Card{{1, 1}, {1, 1}, {1, 1}, {4, 2}, {4, 2}}
	for i, c := range want {
		if deck[i] != c {
			t.Errorf("card %d: expected %+v, got %+v", i, c, deck[i])
		}
	}
	for i := len(want); i < len(deck); i++ {
		if deck[i] != domain.Filler {
			t.Fatalf("card %d: expected filler, got %+v", i, deck[i])
		}
	}
}

func TestBuildDeck_NoUpperBound(t *testing.T) {
	specs := []domain.CardSpec{
		{Cost: 1, Cores: 1, Count: 12},
		{Cost: 2, Cores: 1, Count: 12},
		{Cost: 3, Cores: 2, Count: 12},
		{Cost: 5, Cores: 2, Count: 12},
	}

	deck := domain.BuildDeck(specs, 40)
	if len(deck) != 48 {
		t.Fatalf("expected 48 cards, got %d", len(deck))
	}
	for _, c := range deck {
		if c == domain.Filler {
			t.Fatal("unexpected filler in an oversized deck")
		}
	}
}

func TestBuildDeck_EmptySpecsAllFiller(t *testing.T) {
	for _, specs := range [][]domain.CardSpec{nil, {{Cost: 3, Cores: 2, Count: 0}}} {
		deck := domain.BuildDeck(specs, 40)
		if len(deck) != 40 {
			t.Fatalf("expected 40 cards, got %d", len(deck))
		}
		for i, c := range deck {
			if c != domain.Filler {
				t.Fatalf("card %d: expected filler, got %+v", i, c)
			}
		}
	}
}

func TestBuildDeck_LengthIsMaxOfMinimumAndCounts(t *testing.T) {
	for total := 0; total <= 60; total += 5 {
		specs := []domain.CardSpec{{Cost: 2, Cores: 1, Count: total}}
		deck := domain.BuildDeck(specs, 40)
		if want := max(40, total); len(deck) != want {
			t.Errorf("total=%d: expected %d cards, got %d", total, want, len(deck))
		}
	}
}

func TestShuffle_DoesNotMutateInput(t *testing.T) {
	deck := domain.Deck{{1, 1}, {2, 1}, {3, 2}, {4, 2}, {5, 2}}
	orig := append(domain.Deck(nil), deck...)

	out := domain.Shuffle(deck, newSeededRNG(7))

	for i := range deck {
		if deck[i] != orig[i] {
			t.Fatalf("input mutated at %d: %+v", i, deck[i])
		}
	}
	if len(out) != len(deck) {
		t.Fatalf("expected %d cards, got %d", len(deck), len(out))
	}
}

func TestShuffle_IdentityRNGKeepsOrder(t *testing.T) {
	deck := domain.Deck{{1, 1}, {2, 1}, {3, 2}, {4, 2}}
	out := domain.Shuffle(deck, identityRNG{})
	for i := range deck {
		if out[i] != deck[i] {
			t.Errorf("position %d: expected %+v, got %+v", i, deck[i], out[i])
		}
	}
}

func TestShuffle_PreservesMultiset(t *testing.T) {
	deck := domain.BuildDeck([]domain.CardSpec{
		{Cost: 1, Cores: 1, Count: 3},
		{Cost: 2, Cores: 1, Count: 7},
		{Cost: 5, Cores: 2, Count: 3},
	}, 40)

	out := domain.Shuffle(deck, newSeededRNG(11))

	counts := make(map[domain.Card]int)
	for _, c := range deck {
		counts[c]++
	}
	for _, c := range out {
		counts[c]--
	}
	for c, n := range counts {
		if n != 0 {
			t.Errorf("card %+v: count differs by %d", c, n)
		}
	}
}

func TestShuffle_PositionsAreUniform(t *testing.T) {
	deck := domain.Deck{{1, 0}, {2, 0}, {3, 0}, {4, 0}}
	const runs = 40_000
	rng := newSeededRNG(42)

	// seen[position][cost-1]
	var seen [4][4]int
	for range runs {
		out := domain.Shuffle(deck, rng)
		for pos, c := range out {
			seen[pos][c.Cost-1]++
		}
	}

	expected := runs / len(deck)
	tolerance := expected / 20
	for pos := range seen {
		for card, n := range seen[pos] {
			if n < expected-tolerance || n > expected+tolerance {
				t.Errorf("position %d card %d: %d hits, expected %d±%d", pos, card, n, expected, tolerance)
			}
		}
	}
}

func TestValidateSpecs(t *testing.T) {
	valid := []domain.CardSpec{{ID: "ok", Cost: 1, Cores: 0, Count: 12}}
	if err := domain.ValidateSpecs(valid); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bad := []domain.CardSpec{
		{ID: "free", Cost: 0, Cores: 1, Count: 1},
		{ID: "negative", Cost: 1, Cores: -1, Count: 1},
		{ID: "too-many", Cost: 1, Cores: 1, Count: 13},
		{ID: "minus", Cost: 1, Cores: 1, Count: -1},
	}
	for _, s := range bad {
		err := domain.ValidateSpecs([]domain.CardSpec{s})
		if !errors.Is(err, domain.ErrInvalidCard) {
			t.Errorf("%s: expected ErrInvalidCard, got %v", s.ID, err)
		}
	}
}
