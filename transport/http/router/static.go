package router

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"salon/shared/failure"
	"salon/transport/http/response"
	"strings"
)

const indexFile = "index.html"

// Static serves the booking page from dir. Unknown paths outside /api get index.html so
// client side routes resolve.
func Static(dir string) http.Handler {
	fileServer := http.FileServer(http.Dir(dir))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			response.WithEnvelope(w, failure.NotFound("not-found"))

			return
		}

		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.WriteHeader(http.StatusMethodNotAllowed)

			return
		}

		cleaned := path.Clean("/" + r.URL.Path)

		info, err := os.Stat(filepath.Join(dir, filepath.FromSlash(cleaned)))
		if err != nil || info.IsDir() && cleaned != "/" {
			http.ServeFile(w, r, filepath.Join(dir, indexFile))

			return
		}

		fileServer.ServeHTTP(w, r)
	})
}
