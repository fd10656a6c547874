package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"elektron/internal/config"
	httpapi "elektron/internal/httpapi"
	"elektron/internal/modules/fonts"
	"elektron/internal/modules/prices"
	"elektron/internal/modules/prices/service"
	"elektron/internal/modules/prices/upstream"
	pricesviews "elektron/internal/modules/prices/views"
	"elektron/internal/mqtt"
)

func Run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	logger.Info("config loaded",
		"appEnv", cfg.AppEnv,
		"logLevel", cfg.LogLevel.String(),
		"httpAddr", cfg.HTTPAddr,
		"staticDir", cfg.StaticDir,
		"fontDir", cfg.FontDir,
		"upstreamBaseURL", cfg.UpstreamBaseURL,
		"upstreamTimeout", cfg.UpstreamTimeout,
		"defaultRegion", cfg.DefaultRegion,
		"priceTimezone", cfg.PriceTimezone,
		"mqttBroker", cfg.MQTTBroker,
		"mqttPort", cfg.MQTTPort,
		"mqttTopicPrefix", cfg.MQTTTopicPrefix,
	)

	if err := pricesviews.LoadTemplates(); err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// Interface values stay nil when MQTT is disabled.
	var (
		publisher service.ChartPublisher
		checker   httpapi.ConnectionChecker
		mqttPub   *mqtt.Publisher
	)
	if cfg.MQTTEnabled() {
		mqttPub = mqtt.NewPublisher(cfg, logger)
		publisher, checker = mqttPub, mqttPub

		// Use a short timeout for initial MQTT connect so we don't block startup when broker is down.
		connectCtx, connectCancel := context.WithTimeout(ctx, 5*time.Second)
		err := mqttPub.Connect(connectCtx)
		connectCancel()
		if err != nil {
			logger.Warn("mqtt connection failed (continuing without mqtt)", "error", err)
		}
	}

	mux := httpapi.NewMux(cfg.StaticDir, reg, checker)
	prices.RegisterFeature(mux, cfg, upstream.NewMetrics(reg), publisher, logger)
	fonts.RegisterFeature(mux, cfg.FontDir, logger)

	srv := httpapi.NewServer(cfg, fonts.Guard(mux), httpapi.NewMetrics(reg), logger)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http listening", "addr", cfg.HTTPAddr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if mqttPub != nil {
		logger.Info("mqtt disconnecting")
		mqttPub.Disconnect()
	}

	logger.Info("http shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	err := <-errCh
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return ctx.Err()
}
