package server

import (
	"io/fs"
	"net/http"
	"path"
	"path/filepath"
	"strings"
)

// staticHandler serves files from a static directory under a URL prefix.
// Request paths are sanitized so serving can never escape the directory.
type staticHandler struct {
	fsys    fs.FS
	prefix  string
	metrics *Metrics
}

func newStaticHandler(fsys fs.FS, prefix string, metrics *Metrics) *staticHandler {
	return &staticHandler{fsys: fsys, prefix: prefix, metrics: metrics}
}

func (h *staticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	rel, ok := h.relPath(r.URL.Path)
	if !ok {
		http.NotFound(w, r)
		return
	}

	f, err := h.fsys.Open(rel)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}

	seeker, ok := f.(readSeeker)
	if !ok {
		http.NotFound(w, r)
		return
	}

	applyCacheHeaders(w, rel)
	h.metrics.RecordStatic()
	http.ServeContent(w, r, rel, info.ModTime(), seeker)
}

type readSeeker interface {
	Read([]byte) (int, error)
	Seek(int64, int) (int64, error)
}

// relPath returns a sanitized relative path for a static file request.
// It rejects traversal and absolute-path tricks.
func (h *staticHandler) relPath(urlPath string) (string, bool) {
	if h.fsys == nil {
		return "", false
	}

	rel := h.stripPrefix(urlPath)
	if rel == "" {
		return "", false
	}

	// Reject NUL early (can appear via %00).
	if strings.IndexByte(rel, 0) != -1 {
		return "", false
	}

	// Reject platform-dependent separators.
	if strings.Contains(rel, "\\") {
		return "", false
	}

	// After prefix stripping, a leading "/" indicates an absolute-path attempt
	// (e.g. "/assets//etc/passwd" => "/etc/passwd").
	if strings.HasPrefix(rel, "/") {
		return "", false
	}

	// Reject dot-segments before cleaning so traversal attempts are not
	// "cleaned away" into a different request path.
	for _, seg := range strings.Split(rel, "/") {
		if seg == "." || seg == ".." {
			return "", false
		}
	}

	clean := path.Clean(rel)
	if clean == "." || clean == "" || clean == ".." || strings.HasPrefix(clean, "../") || strings.HasPrefix(clean, "/") {
		return "", false
	}

	osPath := filepath.FromSlash(clean)
	if filepath.IsAbs(osPath) || filepath.VolumeName(osPath) != "" {
		return "", false
	}

	return clean, true
}

// stripPrefix removes the URL prefix, returning the relative file path.
func (h *staticHandler) stripPrefix(urlPath string) string {
	prefix := h.prefix
	if prefix == "" {
		prefix = "/"
	}
	if !strings.HasSuffix(prefix, "/") {
		prefix += "/"
	}

	if prefix == "/" {
		return strings.TrimPrefix(urlPath, "/")
	}
	if !strings.HasPrefix(urlPath, prefix) {
		return ""
	}
	return strings.TrimPrefix(urlPath, prefix)
}

// applyCacheHeaders sets Cache-Control based on whether the file name carries
// a content hash, e.g. "site.a1b2c3d4.css".
func applyCacheHeaders(w http.ResponseWriter, filePath string) {
	if isFingerprinted(filePath) {
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		return
	}
	w.Header().Set("Cache-Control", "public, max-age=3600, must-revalidate")
}

// isFingerprinted reports whether a file name contains a hash segment,
// e.g. "site.a1b2c3d4.css".
func isFingerprinted(filePath string) bool {
	parts := strings.Split(path.Base(filePath), ".")
	if len(parts) < 3 {
		return false
	}

	hash := parts[len(parts)-2]
	if len(hash) < 8 {
		return false
	}
	for _, c := range hash {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
			return false
		}
	}
	return true
}
