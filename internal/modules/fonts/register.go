package fonts

import (
	"log/slog"
	"net/http"

	"elektron/internal/modules/fonts/controller"
)

func RegisterFeature(mux *http.ServeMux, fontDir string, logger *slog.Logger) {
	fontsController := controller.NewFontsController(fontDir, logger)
	fontsController.RegisterRoutes(mux)
}

// Guard must wrap the mux the feature is registered on.
func Guard(next http.Handler) http.Handler {
	return controller.RejectInvalidPaths(next)
}
