package controller

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"elektron/internal/modules/prices/types"
)

// ChartService turns a validated query into chart points.
type ChartService interface {
	Chart(ctx context.Context, q types.Query) ([]types.ChartPoint, error)
}

type PricesController interface {
	RegisterRoutes(mux *http.ServeMux)
}

type pricesControllerImpl struct {
	service  ChartService
	region   types.Region
	location *time.Location
	now      func() time.Time
	logger   *slog.Logger
}

// NewPricesController serves price routes from service. "Today" is taken in
// location, or time.Local when location is nil.
func NewPricesController(service ChartService, region types.Region, location *time.Location, logger *slog.Logger) PricesController {
	if location == nil {
		location = time.Local
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &pricesControllerImpl{
		service:  service,
		region:   region,
		location: location,
		now:      time.Now,
		logger:   logger,
	}
}

func (c *pricesControllerImpl) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", c.handleIndex)
	mux.HandleFunc("GET /prices", c.handlePrices)
	mux.HandleFunc("GET /prices/{year}/{month}/{day}/{region}", c.handlePricesForDate)
}

func (c *pricesControllerImpl) today() time.Time {
	return c.now().In(c.location)
}
