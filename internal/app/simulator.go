package app

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/randomtoy/coresim/internal/domain"
	"github.com/randomtoy/coresim/internal/ports"
)

const maxTurns = 50

// Shape overrides parts of the default batch shape. Nil fields keep the
// default; an explicit zero is used as zero.
type Shape struct {
	Trials          *int
	MinDeckSize     *int
	Turns           *int
	MaxTrackedCores *int
	OpeningHand     *int
}

// SimulateRequest is the application-level input (no HTTP types).
type SimulateRequest struct {
	// Cards, when non-nil, is the full deck specification. An empty
	// non-nil slice means a deck of filler only.
	Cards []domain.CardSpec
	// Counts overrides default counts of catalog cards by ID. Ignored when
	// Cards is set.
	Counts         map[string]int
	PlayPolicy     string
	MulliganPolicy string
	View           string
	Shape          Shape
	// Seed makes the batch reproducible for a fixed worker count.
	// Zero draws fresh randomness.
	Seed uint64
}

// SimulateResponse is the application-level output.
type SimulateResponse struct {
	Matrix         domain.Matrix
	View           domain.View
	PlayPolicy     domain.PlayPolicy
	MulliganPolicy domain.MulliganPolicy
	Params         domain.Params
	DeckSize       int
	Seed           uint64
	LatencyMS      int64
}

// Options tunes the service. Zero values pick sensible defaults.
type Options struct {
	CatalogID     string
	Workers       int
	MaxTrials     int
	DefaultTrials int
}

// SimulatorService resolves decks and runs simulation batches.
// It keeps no state between calls.
type SimulatorService struct {
	catalog ports.CardCatalog
	random  ports.RandomSource
	logger  *slog.Logger
	opts    Options
}

func NewSimulatorService(cat ports.CardCatalog, rs ports.RandomSource, logger *slog.Logger, opts Options) *SimulatorService {
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	if opts.MaxTrials <= 0 {
		opts.MaxTrials = 1_000_000
	}
	if opts.DefaultTrials <= 0 {
		opts.DefaultTrials = domain.DefaultTrials
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &SimulatorService{
		catalog: cat,
		random:  rs,
		logger:  logger,
		opts:    opts,
	}
}

// Catalog lists the configured card set with its default counts.
func (s *SimulatorService) Catalog(ctx context.Context) ([]domain.CardSpec, error) {
	cards, err := s.catalog.GetCatalog(ctx, s.opts.CatalogID)
	if err != nil {
		return nil, fmt.Errorf("get catalog: %w", err)
	}
	return cards, nil
}

func (s *SimulatorService) Simulate(ctx context.Context, req SimulateRequest) (SimulateResponse, error) {
	specs, err := s.resolveCards(ctx, req)
	if err != nil {
		return SimulateResponse{}, err
	}
	if err := domain.ValidateSpecs(specs); err != nil {
		return SimulateResponse{}, fmt.Errorf("validate cards: %w", err)
	}

	params := s.resolveParams(req.Shape)
	if err := s.validateParams(params); err != nil {
		return SimulateResponse{}, err
	}

	play := domain.ParsePlayPolicy(req.PlayPolicy)
	mulligan := domain.ParseMulliganPolicy(req.MulliganPolicy)
	view := domain.ParseView(req.View)
	deck := domain.BuildDeck(specs, params.MinDeckSize)

	start := time.Now()
	tally, err := s.run(ctx, deck, params, play, mulligan, req.Seed)
	if err != nil {
		return SimulateResponse{}, fmt.Errorf("run batch: %w", err)
	}
	latency := time.Since(start).Milliseconds()

	s.logger.Info("simulation finished",
		"trials", params.Trials,
		"deck_size", len(deck),
		"play", play,
		"mulligan", mulligan,
		"latency_ms", latency,
	)

	return SimulateResponse{
		Matrix:         view.Apply(tally.Percentages()),
		View:           view,
		PlayPolicy:     play,
		MulliganPolicy: mulligan,
		Params:         params,
		DeckSize:       len(deck),
		Seed:           req.Seed,
		LatencyMS:      latency,
	}, nil
}

// run splits the trials into contiguous chunks, one per worker. Each worker
// owns its random stream and partial tally; partials are summed once all
// workers are done.
func (s *SimulatorService) run(ctx context.Context, deck domain.Deck, p domain.Params, play domain.PlayPolicy, mulligan domain.MulliganPolicy, seed uint64) (*domain.Tally, error) {
	workers := min(s.opts.Workers, p.Trials)
	partials := make([]*domain.Tally, workers)

	s.logger.Debug("simulation started", "trials", p.Trials, "workers", workers, "deck_size", len(deck))

	g, gctx := errgroup.WithContext(ctx)
	for w := range workers {
		lo := p.Trials * w / workers
		hi := p.Trials * (w + 1) / workers
		g.Go(func() error {
			rng := s.random.Stream(seed, uint64(w))
			tally := domain.NewTally(p.Turns, p.MaxTrackedCores)
			for range hi - lo {
				if err := gctx.Err(); err != nil {
					return err
				}
				tally.Record(domain.RunTrial(domain.Shuffle(deck, rng), p, play, mulligan))
			}
			partials[w] = tally
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := domain.NewTally(p.Turns, p.MaxTrackedCores)
	for _, part := range partials {
		if err := total.Merge(part); err != nil {
			return nil, err
		}
	}
	return total, nil
}

func (s *SimulatorService) resolveCards(ctx context.Context, req SimulateRequest) ([]domain.CardSpec, error) {
	if req.Cards != nil {
		return req.Cards, nil
	}

	cards, err := s.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	applied := 0
	for i := range cards {
		if n, ok := req.Counts[cards[i].ID]; ok {
			cards[i].Count = n
			applied++
		}
	}
	if applied != len(req.Counts) {
		for id := range req.Counts {
			if !hasCard(cards, id) {
				return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCard, id)
			}
		}
	}
	return cards, nil
}

func hasCard(cards []domain.CardSpec, id string) bool {
	for _, c := range cards {
		if c.ID == id {
			return true
		}
	}
	return false
}

func (s *SimulatorService) resolveParams(sh Shape) domain.Params {
	p := domain.DefaultParams()
	p.Trials = s.opts.DefaultTrials
	for _, f := range []struct {
		dst *int
		src *int
	}{
		{&p.Trials, sh.Trials},
		{&p.MinDeckSize, sh.MinDeckSize},
		{&p.Turns, sh.Turns},
		{&p.MaxTrackedCores, sh.MaxTrackedCores},
		{&p.OpeningHand, sh.OpeningHand},
	} {
		if f.src != nil {
			*f.dst = *f.src
		}
	}
	return p
}

func (s *SimulatorService) validateParams(p domain.Params) error {
	switch {
	case p.Trials < 1 || p.Trials > s.opts.MaxTrials:
		return fmt.Errorf("%w: trials must be between 1 and %d", domain.ErrInvalidParams, s.opts.MaxTrials)
	case p.Turns < 1 || p.Turns > maxTurns:
		return fmt.Errorf("%w: turns must be between 1 and %d", domain.ErrInvalidParams, maxTurns)
	case p.MaxTrackedCores < 0:
		return fmt.Errorf("%w: max tracked cores must not be negative", domain.ErrInvalidParams)
	case p.MinDeckSize < 0:
		return fmt.Errorf("%w: min deck size must not be negative", domain.ErrInvalidParams)
	case p.OpeningHand < 0:
		return fmt.Errorf("%w: opening hand must not be negative", domain.ErrInvalidParams)
	}
	return nil
}
