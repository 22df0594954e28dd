package routers

import (
	"net/http"
	"os"
	"path/filepath"
	"sinan-service/internal/app/config"

	"github.com/go-chi/chi/v5"
)

// attachStaticRoutes serves the compiled single page frontend. Any path that
// does not match a file on disk falls back to index.html so client side routes
// survive a page reload.
func attachStaticRoutes(router *chi.Mux, internalConfig *config.InternalConfig) {
	staticDir := internalConfig.App.StaticDir
	if _, err := os.Stat(staticDir); err != nil {
		return
	}

	fileServer := http.FileServer(http.Dir(staticDir))
	indexFile := filepath.Join(staticDir, "index.html")

	router.Get("/*", func(w http.ResponseWriter, r *http.Request) {
		requested := filepath.Join(staticDir, filepath.Clean(r.URL.Path))
		if info, err := os.Stat(requested); err == nil && !info.IsDir() {
			fileServer.ServeHTTP(w, r)
			return
		}
		http.ServeFile(w, r, indexFile)
	})
}
