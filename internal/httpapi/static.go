package httpapi

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// staticHandler serves files from dir. Unknown paths fall back to
// index.html so client-side routes resolve.
func staticHandler(dir string) http.HandlerFunc {
	index := filepath.Join(dir, "index.html")
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			writeMessage(w, http.StatusNotFound, "route not found")
			return
		}
		if strings.HasPrefix(r.URL.Path, "/api/") {
			writeMessage(w, http.StatusNotFound, "route not found")
			return
		}

		urlPath := path.Clean("/" + r.URL.Path)
		if urlPath == "/" {
			http.ServeFile(w, r, index)
			return
		}

		filePath := filepath.Join(dir, filepath.FromSlash(urlPath))
		info, err := os.Stat(filePath)
		if err != nil || info.IsDir() {
			http.ServeFile(w, r, index)
			return
		}
		http.ServeFile(w, r, filePath)
	}
}
