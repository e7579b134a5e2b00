// Command coresim runs one simulation batch and prints the turn by core
// probability table as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/pterm/pterm"

	"github.com/randomtoy/coresim/internal/adapters/catalog"
	"github.com/randomtoy/coresim/internal/adapters/rng"
	"github.com/randomtoy/coresim/internal/app"
	"github.com/randomtoy/coresim/internal/domain"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		slog.Error("simulation failed", "error", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("coresim", flag.ContinueOnError)
	deckFlag := fs.String("deck", "", "YAML deck file (defaults to the built-in catalog)")
	catalogFlag := fs.String("catalog", catalog.DefaultID, "built-in catalog used when -deck is empty")
	playFlag := fs.String("play", string(domain.PlayHighCostFirst), "play policy: greedy or highCostFirst")
	mulliganFlag := fs.String("mulligan", string(domain.MulliganNone), "mulligan policy: none or returnNonCore")
	viewFlag := fs.String("view", string(domain.ViewNormal), "table view: normal or cumulative")
	trialsFlag := fs.Int("trials", domain.DefaultTrials, "number of trials to run")
	turnsFlag := fs.Int("turns", domain.DefaultTurns, "turns per trial")
	maxCoresFlag := fs.Int("max-cores", domain.DefaultMaxTrackedCores, "highest tracked core level")
	minDeckFlag := fs.Int("min-deck", domain.DefaultMinDeckSize, "deck is padded with filler up to this size")
	openingFlag := fs.Int("opening", domain.DefaultOpeningHand, "cards in the opening hand")
	seedFlag := fs.Uint64("seed", 0, "random seed (0 uses fresh randomness)")
	workersFlag := fs.Int("workers", 0, "worker goroutines (0 uses all CPUs)")
	verboseFlag := fs.Bool("v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return err
	}

	pterm.DefaultLogger.Writer = os.Stderr
	if *verboseFlag {
		pterm.DefaultLogger.Level = pterm.LogLevelDebug
	}
	logger := slog.New(pterm.NewSlogHandler(&pterm.DefaultLogger))
	slog.SetDefault(logger)

	req := app.SimulateRequest{
		PlayPolicy:     *playFlag,
		MulliganPolicy: *mulliganFlag,
		View:           *viewFlag,
		Shape: app.Shape{
			Trials:          trialsFlag,
			Turns:           turnsFlag,
			MaxTrackedCores: maxCoresFlag,
			MinDeckSize:     minDeckFlag,
			OpeningHand:     openingFlag,
		},
		Seed: *seedFlag,
	}
	if *deckFlag != "" {
		cards, err := catalog.LoadFile(*deckFlag)
		if err != nil {
			return err
		}
		req.Cards = cards
		logger.Debug("loaded deck file", "path", *deckFlag, "card_types", len(cards))
	}

	svc := app.NewSimulatorService(catalog.NewEmbeddedStore(), rng.NewSource(), logger, app.Options{
		CatalogID: *catalogFlag,
		Workers:   *workersFlag,
		MaxTrials: max(*trialsFlag, domain.DefaultTrials),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	resp, err := svc.Simulate(ctx, req)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(output{
		View:      resp.View,
		Play:      resp.PlayPolicy,
		Mulligan:  resp.MulliganPolicy,
		Params:    resp.Params,
		DeckSize:  resp.DeckSize,
		Seed:      resp.Seed,
		LatencyMS: resp.LatencyMS,
		Rows:      resp.Matrix,
	}); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}

type output struct {
	View      domain.View           `json:"view"`
	Play      domain.PlayPolicy     `json:"play"`
	Mulligan  domain.MulliganPolicy `json:"mulligan"`
	Params    domain.Params         `json:"params"`
	DeckSize  int                   `json:"deck_size"`
	Seed      uint64                `json:"seed,omitempty"`
	LatencyMS int64                 `json:"latency_ms"`
	Rows      domain.Matrix         `json:"rows"`
}
