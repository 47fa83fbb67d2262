package render

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/marketfront/marketfront/pkg/vdom"
)

func TestStreamingRenderPage(t *testing.T) {
	rec := httptest.NewRecorder()
	sr := NewStreamingRenderer(rec, RendererConfig{})

	err := sr.RenderPage(PageData{
		Body:  vdom.Main(vdom.H1("Streamed")),
		Title: "Stream",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	html := rec.Body.String()
	if !strings.Contains(html, "<!DOCTYPE html>") {
		t.Errorf("missing doctype, got:\n%s", html)
	}
	if !strings.Contains(html, "<h1>Streamed</h1>") {
		t.Errorf("missing body content, got:\n%s", html)
	}
	if !rec.Flushed {
		t.Error("streaming renderer should flush")
	}
}

func TestStreamingMatchesBuffered(t *testing.T) {
	page := PageData{
		Body:  vdom.Main(vdom.Section(vdom.H2("Features"), vdom.P("Body"))),
		Title: "Same",
	}

	rec := httptest.NewRecorder()
	sr := NewStreamingRenderer(rec, RendererConfig{})
	if err := sr.RenderPage(page); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf strings.Builder
	renderer := NewRenderer(RendererConfig{})
	if err := renderer.RenderPage(&buf, page); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.Body.String() != buf.String() {
		t.Errorf("streaming output differs from buffered output:\n got: %q\nwant: %q",
			rec.Body.String(), buf.String())
	}
}
