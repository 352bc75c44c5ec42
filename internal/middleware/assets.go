package middleware

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Assets serves static files from dir with long-lived cache headers and weak
// ETags. ETags are computed on first request per file and memoized; the
// deployment is immutable so invalidation is not a concern. Paths that resolve
// outside dir are rejected before any file is touched.
func Assets(dir string) http.Handler {
	var (
		mu    sync.Mutex
		etags = map[string]string{}
	)
	fs := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clean := filepath.Join(dir, filepath.FromSlash(r.URL.Path))
		rel, err := filepath.Rel(dir, clean)
		if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			http.NotFound(w, r)
			return
		}

		w.Header().Set("Vary", "Accept-Encoding")
		w.Header().Set("Cache-Control", "public, max-age=604800, stale-while-revalidate=86400")

		mu.Lock()
		et, ok := etags[clean]
		mu.Unlock()
		if !ok {
			// Only existing files are memoized so probe misses cannot grow the map.
			if et, err = fileETag(clean); err == nil && et != "" {
				mu.Lock()
				etags[clean] = et
				mu.Unlock()
			}
		}
		if et != "" {
			w.Header().Set("ETag", et)
			if inm := r.Header.Get("If-None-Match"); inm != "" && inm == et {
				w.WriteHeader(http.StatusNotModified)
				return
			}
		}
		fs.ServeHTTP(w, r)
	})
}

func fileETag(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return `W/"` + hex.EncodeToString(h.Sum(nil)) + `"`, nil
}
