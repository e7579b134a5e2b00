package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/randomtoy/coresim/internal/app"
	"github.com/randomtoy/coresim/internal/domain"
)

type Handler struct {
	svc *app.SimulatorService
}

func NewHandler(svc *app.SimulatorService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)
	e.GET("/v1/cards", h.ListCards)
	e.POST("/v1/simulate", h.Simulate)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) ListCards(c echo.Context) error {
	cards, err := h.svc.Catalog(c.Request().Context())
	if err != nil {
		return mapError(c, err)
	}

	out := make([]CardResponse, len(cards))
	for i, card := range cards {
		out[i] = CardResponse{
			ID:    card.ID,
			Name:  card.Name,
			Cost:  card.Cost,
			Cores: card.Cores,
			Image: card.Image,
			Count: card.Count,
		}
	}
	return c.JSON(http.StatusOK, out)
}

func (h *Handler) Simulate(c echo.Context) error {
	var body SimulateRequest
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "request body must be valid JSON"})
	}

	resp, err := h.svc.Simulate(c.Request().Context(), toAppRequest(body))
	if err != nil {
		return mapError(c, err)
	}

	return c.JSON(http.StatusOK, toResponse(resp, requestID(c)))
}

func toAppRequest(b SimulateRequest) app.SimulateRequest {
	var cards []domain.CardSpec
	if b.Cards != nil {
		cards = make([]domain.CardSpec, len(b.Cards))
		for i, cr := range b.Cards {
			cards[i] = domain.CardSpec{
				ID:    cr.ID,
				Cost:  cr.Cost,
				Cores: cr.Cores,
				Count: cr.Count,
			}
		}
	}
	return app.SimulateRequest{
		Cards:          cards,
		Counts:         b.Counts,
		PlayPolicy:     b.Play,
		MulliganPolicy: b.Mulligan,
		View:           b.View,
		Shape: app.Shape{
			Trials:          b.Trials,
			Turns:           b.Turns,
			MaxTrackedCores: b.MaxCores,
			MinDeckSize:     b.MinDeckSize,
			OpeningHand:     b.OpeningHand,
		},
		Seed: b.Seed,
	}
}

func toResponse(r app.SimulateResponse, reqID string) SimulateResponse {
	return SimulateResponse{
		View:     r.View,
		Play:     r.PlayPolicy,
		Mulligan: r.MulliganPolicy,
		Trials:   r.Params.Trials,
		DeckSize: r.DeckSize,
		Turns:    r.Params.Turns,
		MaxCores: r.Params.MaxTrackedCores,
		MinDeck:  r.Params.MinDeckSize,
		Rows:     r.Matrix,
		Meta: MetaResp{
			RequestID: reqID,
			Seed:      r.Seed,
			LatencyMS: r.LatencyMS,
		},
	}
}

func mapError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidCard), errors.Is(err, domain.ErrInvalidParams), errors.Is(err, domain.ErrUnknownCard):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrCatalogNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		requestLogger(c).Warn("simulation interrupted", "error", err)
		return c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: "simulation did not finish in time"})
	default:
		requestLogger(c).Error("internal error", "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
