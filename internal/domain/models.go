package domain

// RNG abstracts random number generation for deterministic testing.
type RNG interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

// PlayPolicy names the order in which a hand is considered for play.
type PlayPolicy string

const (
	// PlayGreedy plays the best cores-per-mana cards first.
	PlayGreedy PlayPolicy = "greedy"
	// PlayHighCostFirst plays the most expensive cards first, then the
	// ones yielding more cores.
	PlayHighCostFirst PlayPolicy = "highCostFirst"
)

// MulliganPolicy names the adjustment applied once to the opening hand.
type MulliganPolicy string

const (
	MulliganNone          MulliganPolicy = "none"
	MulliganReturnNonCore MulliganPolicy = "returnNonCore"
)

// View selects how a percentage matrix is presented.
type View string

const (
	ViewNormal     View = "normal"
	ViewCumulative View = "cumulative"
)

// CardSpec describes one card type and how many copies go in the deck.
type CardSpec struct {
	ID    string `json:"id" yaml:"id"`
	Name  string `json:"name" yaml:"name"`
	Cost  int    `json:"cost" yaml:"cost"`
	Cores int    `json:"cores" yaml:"cores"`
	Image string `json:"image,omitempty" yaml:"image,omitempty"`
	Count int    `json:"count" yaml:"count"`
}

// Card is the part of a card the simulation cares about.
type Card struct {
	Cost  int `json:"cost"`
	Cores int `json:"cores"`
}

// Filler pads decks that are smaller than the minimum size.
var Filler = Card{Cost: 1, Cores: 0}

// Deck is an ordered pile of cards, top of the deck first.
type Deck []Card

// Hand is the ordered set of cards a trial is holding.
type Hand []Card

// Trajectory holds the recorded (clamped) core total after each turn.
type Trajectory []int

// Matrix is indexed by turn-1, then by core level.
type Matrix [][]float64

// Params controls the shape of a simulation batch. Every field is used as
// given; start from DefaultParams to change only some of them.
type Params struct {
	Trials          int `json:"trials"`
	MinDeckSize     int `json:"min_deck_size"`
	Turns           int `json:"turns"`
	MaxTrackedCores int `json:"max_tracked_cores"`
	OpeningHand     int `json:"opening_hand"`
}

const (
	DefaultTrials          = 10_000
	DefaultMinDeckSize     = 40
	DefaultTurns           = 10
	DefaultMaxTrackedCores = 30
	DefaultOpeningHand     = 3
	MaxCardCount           = 12
)

// DefaultParams returns the batch shape the simulator was tuned for.
func DefaultParams() Params {
	return Params{
		Trials:          DefaultTrials,
		MinDeckSize:     DefaultMinDeckSize,
		Turns:           DefaultTurns,
		MaxTrackedCores: DefaultMaxTrackedCores,
		OpeningHand:     DefaultOpeningHand,
	}
}
