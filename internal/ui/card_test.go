package ui

import (
	"strings"
	"testing"

	"github.com/marketfront/marketfront/pkg/render"
	"github.com/marketfront/marketfront/pkg/vdom"
)

func TestCardSlots(t *testing.T) {
	renderer := render.NewRenderer(render.RendererConfig{})

	card := Card(CardData{
		Header:  vdom.Span(vdom.Class("badge"), vdom.Text("hdr")),
		Title:   "Real-Time Data",
		Content: vdom.P(vdom.Text("Streaming quotes.")),
	})

	html, err := renderer.RenderToString(card)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(html, "hdr") {
		t.Errorf("header slot missing, got %q", html)
	}
	if !strings.Contains(html, "<h3") || !strings.Contains(html, "Real-Time Data") {
		t.Errorf("title missing, got %q", html)
	}
	if !strings.Contains(html, "Streaming quotes.") {
		t.Errorf("content missing, got %q", html)
	}
}

func TestCardWithoutTitle(t *testing.T) {
	renderer := render.NewRenderer(render.RendererConfig{})

	card := Card(CardData{Content: vdom.P(vdom.Text("body only"))})
	html, err := renderer.RenderToString(card)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(html, "<h3") {
		t.Errorf("card without title should have no heading, got %q", html)
	}
	if !strings.Contains(html, "body only") {
		t.Errorf("content missing, got %q", html)
	}
}

func TestCardExtraClass(t *testing.T) {
	renderer := render.NewRenderer(render.RendererConfig{})

	card := Card(CardData{Class: "md:col-span-2"})
	html, err := renderer.RenderToString(card)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(html, "md:col-span-2") {
		t.Errorf("extra class missing, got %q", html)
	}
}
