package http

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"practice-management-api/pkg/response"
)

// SPAHandler serves a prebuilt frontend bundle. Requests for files that
// exist under the root are served directly; everything else falls back to
// index.html so client-side routing works. API paths never fall back.
type SPAHandler struct {
	root string
}

func NewSPAHandler(root string) *SPAHandler {
	return &SPAHandler{root: root}
}

func (h *SPAHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if strings.HasPrefix(r.URL.Path, "/api/") || r.URL.Path == "/api" {
		response.NotFound(w, "Not Found")
		return
	}

	relative := strings.TrimPrefix(filepath.Clean(r.URL.Path), string(filepath.Separator))
	target := filepath.Join(h.root, relative)

	info, err := os.Stat(target)
	if err == nil && !info.IsDir() {
		http.ServeFile(w, r, target)
		return
	}

	http.ServeFile(w, r, filepath.Join(h.root, "index.html"))
}
