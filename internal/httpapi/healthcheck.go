package httpapi

import (
	"net/http"

	"elektron/internal/utils"
)

// ConnectionChecker reports broker connectivity. A nil checker means MQTT is disabled.
type ConnectionChecker interface {
	IsConnected() bool
}

type healthchecker interface {
	handleHealthz(w http.ResponseWriter, r *http.Request)
}

type healthcheckerImpl struct {
	mqtt ConnectionChecker
}

func NewHealthchecker(mqtt ConnectionChecker) healthchecker {
	return &healthcheckerImpl{mqtt: mqtt}
}

// handleHealthz always reports ok: the broker is optional and is only reported.
func (h *healthcheckerImpl) handleHealthz(w http.ResponseWriter, r *http.Request) {
	body := map[string]string{"status": "ok"}
	if h.mqtt != nil {
		body["mqtt"] = "disconnected"
		if h.mqtt.IsConnected() {
			body["mqtt"] = "connected"
		}
	}
	utils.WriteJSON(w, http.StatusOK, body)
}

func registerHealthcheck(mux *http.ServeMux, mqtt ConnectionChecker) {
	healthchecker := NewHealthchecker(mqtt)
	mux.HandleFunc("GET /healthz", healthchecker.handleHealthz)
}
