package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"elektron/internal/modules/prices/types"
)

const (
	defaultUpstreamBaseURL = "https://www.hvakosterstrommen.no/api/v1"
	defaultTopicPrefix     = "elektron/prices"

	// TimezoneLocal converts upstream timestamps to the server's local zone.
	TimezoneLocal = "local"
	// TimezoneOffset keeps the UTC offset carried by each upstream timestamp.
	TimezoneOffset = "offset"
)

type Config struct {
	AppEnv   string
	LogLevel slog.Level
	HTTPAddr string

	// StaticDir is the absolute path to the directory served at /static/.
	// Set via STATIC_DIR (relative paths are resolved against the process working directory at startup).
	StaticDir string
	// FontDir holds the files served at /fonts/{filename}. Defaults to STATIC_DIR/fonts.
	FontDir string

	UpstreamBaseURL string
	UpstreamTimeout time.Duration
	DefaultRegion   types.Region

	// PriceTimezone is the raw PRICE_TIMEZONE value. PriceLocation is nil
	// when hours are read in the timestamp's own offset.
	PriceTimezone string
	PriceLocation *time.Location

	// MQTTBroker empty disables price publishing.
	MQTTBroker      string
	MQTTPort        int
	MQTTClientID    string
	MQTTTopicPrefix string
}

// MQTTEnabled reports whether a broker is configured.
func (c Config) MQTTEnabled() bool {
	return c.MQTTBroker != ""
}

func LoadFromEnv() (Config, error) {
	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = "dev"
	}
	switch appEnv {
	case "dev", "prod":
	default:
		return Config{}, fmt.Errorf("invalid APP_ENV %q (allowed: dev, prod)", appEnv)
	}

	logLevelStr := strings.TrimSpace(os.Getenv("LOG_LEVEL"))
	if logLevelStr == "" {
		logLevelStr = "info"
	}
	level, err := parseLogLevel(logLevelStr)
	if err != nil {
		return Config{}, err
	}

	httpAddr := strings.TrimSpace(os.Getenv("HTTP_ADDR"))
	if httpAddr == "" {
		httpAddr = ":8080"
	}

	staticDir := strings.TrimSpace(os.Getenv("STATIC_DIR"))
	if staticDir == "" {
		staticDir = "static"
	}
	staticDir, err = filepath.Abs(staticDir)
	if err != nil {
		return Config{}, fmt.Errorf("STATIC_DIR %q: %w", staticDir, err)
	}

	fontDir := strings.TrimSpace(os.Getenv("FONT_DIR"))
	if fontDir == "" {
		fontDir = filepath.Join(staticDir, "fonts")
	}
	fontDir, err = filepath.Abs(fontDir)
	if err != nil {
		return Config{}, fmt.Errorf("FONT_DIR %q: %w", fontDir, err)
	}

	upstreamBaseURL, err := parseBaseURL(os.Getenv("UPSTREAM_BASE_URL"))
	if err != nil {
		return Config{}, err
	}

	upstreamTimeoutStr := strings.TrimSpace(os.Getenv("UPSTREAM_TIMEOUT"))
	if upstreamTimeoutStr == "" {
		upstreamTimeoutStr = "0s"
	}
	upstreamTimeout, err := time.ParseDuration(upstreamTimeoutStr)
	if err != nil {
		return Config{}, fmt.Errorf("invalid UPSTREAM_TIMEOUT %q: %w", upstreamTimeoutStr, err)
	}
	if upstreamTimeout < 0 {
		return Config{}, fmt.Errorf("invalid UPSTREAM_TIMEOUT %q: must be >= 0", upstreamTimeoutStr)
	}

	regionStr := strings.TrimSpace(os.Getenv("DEFAULT_REGION"))
	if regionStr == "" {
		regionStr = string(types.RegionNO2)
	}
	region, ok := types.ParseRegion(regionStr)
	if !ok {
		return Config{}, fmt.Errorf("invalid DEFAULT_REGION %q (allowed: %s)", regionStr, types.RegionList())
	}

	priceTimezone := strings.TrimSpace(os.Getenv("PRICE_TIMEZONE"))
	if priceTimezone == "" {
		priceTimezone = TimezoneLocal
	}
	priceLocation, err := parseTimezone(priceTimezone)
	if err != nil {
		return Config{}, err
	}

	mqttBroker := strings.TrimSpace(os.Getenv("MQTT_BROKER"))

	mqttPortStr := strings.TrimSpace(os.Getenv("MQTT_PORT"))
	if mqttPortStr == "" {
		mqttPortStr = "1883"
	}
	mqttPort, err := strconv.Atoi(mqttPortStr)
	if err != nil {
		return Config{}, fmt.Errorf("invalid MQTT_PORT %q: %w", mqttPortStr, err)
	}
	if mqttPort <= 0 || mqttPort > 65535 {
		return Config{}, fmt.Errorf("invalid MQTT_PORT %d: out of range", mqttPort)
	}

	mqttClientID := strings.TrimSpace(os.Getenv("MQTT_CLIENT_ID"))
	if mqttClientID == "" {
		mqttClientID = "elektron-server"
	}

	topicPrefix := strings.Trim(strings.TrimSpace(os.Getenv("MQTT_TOPIC_PREFIX")), "/")
	if topicPrefix == "" {
		topicPrefix = defaultTopicPrefix
	}

	return Config{
		AppEnv:          appEnv,
		LogLevel:        level,
		HTTPAddr:        httpAddr,
		StaticDir:       staticDir,
		FontDir:         fontDir,
		UpstreamBaseURL: upstreamBaseURL,
		UpstreamTimeout: upstreamTimeout,
		DefaultRegion:   region,
		PriceTimezone:   priceTimezone,
		PriceLocation:   priceLocation,
		MQTTBroker:      mqttBroker,
		MQTTPort:        mqttPort,
		MQTTClientID:    mqttClientID,
		MQTTTopicPrefix: topicPrefix,
	}, nil
}

func parseBaseURL(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return defaultUpstreamBaseURL, nil
	}
	u, err := url.Parse(s)
	if err != nil {
		return "", fmt.Errorf("invalid UPSTREAM_BASE_URL %q: %w", s, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("invalid UPSTREAM_BASE_URL %q (expected http or https URL)", s)
	}
	return strings.TrimRight(s, "/"), nil
}

func parseTimezone(s string) (*time.Location, error) {
	switch strings.ToLower(s) {
	case TimezoneLocal:
		return time.Local, nil
	case TimezoneOffset:
		return nil, nil
	}
	loc, err := time.LoadLocation(s)
	if err != nil {
		return nil, fmt.Errorf("invalid PRICE_TIMEZONE %q: %w", s, err)
	}
	return loc, nil
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q (allowed: debug, info, warn, error)", s)
	}
}
