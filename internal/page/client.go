package page

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"elektron/internal/modules/prices/types"
)

// Initial is the page bootstrap rendered into the HTML shell.
type Initial struct {
	Date   string             `json:"date"`
	Region types.Region       `json:"region"`
	Points []types.ChartPoint `json:"points"`
	Error  string             `json:"error,omitempty"`
}

// DecodeInitial parses the inlined bootstrap JSON.
func DecodeInitial(raw string) (Initial, error) {
	var in Initial
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &in); err != nil {
		return Initial{}, fmt.Errorf("decode initial data: %w", err)
	}
	return in, nil
}

type apiError struct {
	Message string `json:"message"`
}

// FetchPoints GETs a prices endpoint. Non-2xx responses become an error
// carrying the server's message when it sent one.
func FetchPoints(ctx context.Context, client *http.Client, url string) ([]types.ChartPoint, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("NETTVERKSFEIL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var e apiError
		if json.NewDecoder(resp.Body).Decode(&e) == nil && e.Message != "" {
			return nil, errors.New(e.Message)
		}
		return nil, fmt.Errorf("HTTP-FEIL %d", resp.StatusCode)
	}

	var points []types.ChartPoint
	if err := json.NewDecoder(resp.Body).Decode(&points); err != nil {
		return nil, fmt.Errorf("ugyldig svar: %w", err)
	}
	return points, nil
}
