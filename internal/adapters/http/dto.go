package http

import "github.com/randomtoy/coresim/internal/domain"

// SimulateRequest is the JSON body accepted by POST /v1/simulate.
// Absent numeric fields take the service defaults; "cards": [] asks for a
// deck of filler only.
type SimulateRequest struct {
	Cards       []CardRequest  `json:"cards"`
	Counts      map[string]int `json:"counts"`
	Play        string         `json:"play"`
	Mulligan    string         `json:"mulligan"`
	View        string         `json:"view"`
	Trials      *int           `json:"trials"`
	Turns       *int           `json:"turns"`
	MaxCores    *int           `json:"max_cores"`
	MinDeckSize *int           `json:"min_deck_size"`
	OpeningHand *int           `json:"opening_hand"`
	Seed        uint64         `json:"seed"`
}

type CardRequest struct {
	ID    string `json:"id"`
	Cost  int    `json:"cost"`
	Cores int    `json:"cores"`
	Count int    `json:"count"`
}

// SimulateResponse is the JSON shape returned by POST /v1/simulate.
type SimulateResponse struct {
	View     domain.View           `json:"view"`
	Play     domain.PlayPolicy     `json:"play"`
	Mulligan domain.MulliganPolicy `json:"mulligan"`
	Trials   int                   `json:"trials"`
	DeckSize int                   `json:"deck_size"`
	Turns    int                   `json:"turns"`
	MaxCores int                   `json:"max_cores"`
	MinDeck  int                   `json:"min_deck_size"`
	Rows     [][]float64           `json:"rows"`
	Meta     MetaResp              `json:"meta"`
}

type CardResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Cost  int    `json:"cost"`
	Cores int    `json:"cores"`
	Image string `json:"image"`
	Count int    `json:"count"`
}

type MetaResp struct {
	RequestID string `json:"request_id"`
	Seed      uint64 `json:"seed,omitempty"`
	LatencyMS int64  `json:"latency_ms"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
