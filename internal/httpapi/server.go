package httpapi

import (
	"log/slog"
	"net/http"
	"time"

	"elektron/internal/config"
)

// NewServer wraps h with request ids, logging and metrics. metrics may be nil.
func NewServer(cfg config.Config, h http.Handler, metrics *Metrics, logger *slog.Logger) *http.Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           requestID(requestLogger(logger, metrics, h)),
		ReadHeaderTimeout: 10 * time.Second,
	}
}
