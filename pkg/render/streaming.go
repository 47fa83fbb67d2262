package render

import (
	"fmt"
	"io"
	"net/http"
)

// StreamingRenderer wraps Renderer with chunked output support.
// It flushes content incrementally for faster time-to-first-byte.
type StreamingRenderer struct {
	*Renderer
	flusher http.Flusher
	w       io.Writer
}

// NewStreamingRenderer creates a streaming renderer that writes to
// an http.ResponseWriter. If the writer implements http.Flusher,
// content will be flushed after each section for faster TTFB.
func NewStreamingRenderer(w http.ResponseWriter, config RendererConfig) *StreamingRenderer {
	flusher, _ := w.(http.Flusher)
	return &StreamingRenderer{
		Renderer: NewRenderer(config),
		flusher:  flusher,
		w:        w,
	}
}

// RenderPage renders a complete HTML document with incremental flushing.
// The head section is flushed immediately for faster first paint.
func (s *StreamingRenderer) RenderPage(page PageData) error {
	lang := page.Lang
	if lang == "" {
		lang = "en"
	}

	// DOCTYPE
	if _, err := s.w.Write([]byte("<!DOCTYPE html>\n")); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(s.w, `<html lang="%s">`+"\n", escapeAttr(lang)); err != nil {
		return err
	}

	// Head flushes first so the browser can start fetching stylesheets.
	if err := s.renderHead(s.w, page); err != nil {
		return err
	}
	s.flush()

	if _, err := s.w.Write([]byte("<body>\n")); err != nil {
		return err
	}

	if err := s.RenderToWriter(s.w, page.Body); err != nil {
		return err
	}

	for _, script := range page.Scripts {
		if !script.Defer && !script.Async {
			if err := s.renderScriptTag(s.w, script); err != nil {
				return err
			}
		}
	}

	if _, err := s.w.Write([]byte("</body>\n</html>\n")); err != nil {
		return err
	}
	s.flush()

	return nil
}

// flush flushes buffered output to the client if supported.
func (s *StreamingRenderer) flush() {
	if s.flusher != nil {
		s.flusher.Flush()
	}
}
