package service

import (
	"context"
	"log/slog"
	"time"

	"elektron/internal/modules/prices/transform"
	"elektron/internal/modules/prices/types"
	"elektron/internal/modules/prices/upstream"
)

// ChartPublisher receives every non-empty chart fetched from upstream.
type ChartPublisher interface {
	PublishChart(q types.Query, points []types.ChartPoint) error
}

type Service struct {
	source    upstream.PriceSource
	location  *time.Location
	publisher ChartPublisher
	logger    *slog.Logger
}

// NewService wires the upstream source to the chart transform. location is
// passed to transform.ToChart; publisher may be nil.
func NewService(source upstream.PriceSource, location *time.Location, publisher ChartPublisher, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{source: source, location: location, publisher: publisher, logger: logger}
}

// Chart fetches q from upstream and returns it as chart points. An empty
// result is returned as an empty slice, not an error.
func (s *Service) Chart(ctx context.Context, q types.Query) ([]types.ChartPoint, error) {
	records, err := s.source.GetPrices(ctx, q)
	if err != nil {
		return nil, err
	}
	points := transform.ToChart(records, s.location)
	if len(points) == 0 {
		s.logger.Info("no price data", "region", q.Region, "date", q.Date())
		return points, nil
	}
	if s.publisher != nil {
		go s.publish(q, points)
	}
	return points, nil
}

func (s *Service) publish(q types.Query, points []types.ChartPoint) {
	if err := s.publisher.PublishChart(q, points); err != nil {
		s.logger.Warn("publish chart failed",
			"region", q.Region,
			"date", q.Date(),
			"error", err,
		)
	}
}
