package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/randomtoy/coresim/internal/app"
)

const (
	headerRequestID = "X-Request-Id"
	keyRequestID    = "request_id"
	keyLogger       = "logger"
)

// NewServer wires the simulator routes and middleware onto a fresh echo
// instance. A zero timeout leaves request contexts unbounded.
func NewServer(svc *app.SimulatorService, logger *slog.Logger, timeout time.Duration) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(RequestContext(logger))
	e.Use(Deadline(timeout))
	NewHandler(svc).Register(e)
	return e
}

// RequestContext tags each request with an X-Request-Id (the caller's, or
// a fresh UUID), stores a logger carrying that id on the echo context, and
// writes one access line once the handler returns. 5xx responses log at
// error level and 4xx at warn.
func RequestContext(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			id := req.Header.Get(headerRequestID)
			if id == "" {
				id = uuid.NewString()
			}
			c.Response().Header().Set(headerRequestID, id)
			c.Set(keyRequestID, id)

			reqLogger := logger.With(keyRequestID, id)
			c.Set(keyLogger, reqLogger)

			start := time.Now()
			err := next(c)
			if err != nil {
				// Let echo render the error now so the status below is final.
				c.Error(err)
			}

			status := c.Response().Status
			reqLogger.Log(req.Context(), accessLevel(status), "request",
				"method", req.Method,
				"path", req.URL.Path,
				"status", status,
				"latency_ms", time.Since(start).Milliseconds(),
			)
			return nil
		}
	}
}

func accessLevel(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// Deadline bounds the request context. A batch still running when it
// expires stops between trials and the request fails.
func Deadline(d time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if d <= 0 {
			return next
		}
		return func(c echo.Context) error {
			ctx, cancel := context.WithTimeout(c.Request().Context(), d)
			defer cancel()
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

func requestID(c echo.Context) string {
	id, _ := c.Get(keyRequestID).(string)
	return id
}

func requestLogger(c echo.Context) *slog.Logger {
	if l, ok := c.Get(keyLogger).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}
