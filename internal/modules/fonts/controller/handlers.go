package controller

import (
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path"
	"strings"

	"elektron/internal/utils"
)

const (
	cacheControl = "public, max-age=31536000"
	routePrefix  = "/fonts/"
)

type FontsController interface {
	RegisterRoutes(mux *http.ServeMux)
}

type fontsControllerImpl struct {
	dir    string
	logger *slog.Logger
}

// NewFontsController serves the files directly inside dir.
func NewFontsController(dir string, logger *slog.Logger) FontsController {
	if logger == nil {
		logger = slog.Default()
	}
	return &fontsControllerImpl{dir: dir, logger: logger}
}

func (c *fontsControllerImpl) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET "+routePrefix+"{filename}", c.handleFont)
}

// ValidFilename rejects empty names, parent references and path separators.
func ValidFilename(name string) bool {
	return name != "" && !strings.Contains(name, "..") && !strings.ContainsAny(name, `/\`)
}

// ContentType maps a font file extension to its MIME type.
func ContentType(name string) string {
	switch strings.ToLower(path.Ext(name)) {
	case ".woff2":
		return "font/woff2"
	case ".woff":
		return "font/woff"
	case ".ttf":
		return "font/ttf"
	default:
		return "application/octet-stream"
	}
}

// RejectInvalidPaths answers 400 for any /fonts/ request with an invalid
// filename. It must wrap the mux: ServeMux cleans "/fonts/../x" into a
// redirect before the route handler sees it.
func RejectInvalidPaths(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if name, ok := strings.CutPrefix(r.URL.Path, routePrefix); ok && !ValidFilename(name) {
			utils.WriteError(w, http.StatusBadRequest, "Invalid filename")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (c *fontsControllerImpl) handleFont(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("filename")
	if !ValidFilename(name) {
		utils.WriteError(w, http.StatusBadRequest, "Invalid filename")
		return
	}

	root, err := os.OpenRoot(c.dir)
	if err != nil {
		c.logger.Error("open font dir failed", "dir", c.dir, "error", err)
		utils.WriteError(w, http.StatusNotFound, "Font not found")
		return
	}
	defer root.Close()

	f, err := root.Open(name)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			c.logger.Warn("open font failed", "filename", name, "error", err)
		}
		utils.WriteError(w, http.StatusNotFound, "Font not found")
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || !info.Mode().IsRegular() {
		utils.WriteError(w, http.StatusNotFound, "Font not found")
		return
	}

	w.Header().Set("Content-Type", ContentType(name))
	w.Header().Set("Cache-Control", cacheControl)
	http.ServeContent(w, r, name, info.ModTime(), f)
}
