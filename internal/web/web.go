// Package web serves the embedded student signup portal.
package web

import (
	"embed"
	"net/http"

	"github.com/go-chi/chi/v5"
)

//go:embed static
var assets embed.FS

// Register mounts the portal routes: the root redirect and the static assets.
func Register(r chi.Router) {
	r.Get("/", handleRoot)
	r.Handle("/static/*", http.FileServer(http.FS(assets)))
}

// handleRoot redirects to the portal page. The redirect is temporary so
// clients keep asking the server where the portal lives.
func handleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}
