package prices

import (
	"log/slog"
	"net/http"

	"elektron/internal/config"
	"elektron/internal/modules/prices/controller"
	"elektron/internal/modules/prices/service"
	"elektron/internal/modules/prices/upstream"
)

// RegisterFeature wires the upstream client, chart service and price routes.
// publisher may be nil when MQTT is disabled.
func RegisterFeature(mux *http.ServeMux, cfg config.Config, metrics *upstream.Metrics, publisher service.ChartPublisher, logger *slog.Logger) {
	client := upstream.NewClient(cfg.UpstreamBaseURL, cfg.UpstreamTimeout, logger, metrics)
	chartService := service.NewService(client, cfg.PriceLocation, publisher, logger)
	pricesController := controller.NewPricesController(chartService, cfg.DefaultRegion, cfg.PriceLocation, logger)
	pricesController.RegisterRoutes(mux)
}
