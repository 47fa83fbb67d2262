package site

import (
	"strings"
	"testing"

	"github.com/marketfront/marketfront/internal/ui"
	"github.com/marketfront/marketfront/pkg/render"
)

func renderSection(t *testing.T, features []Feature) string {
	t.Helper()
	renderer := render.NewRenderer(render.RendererConfig{})
	html, err := renderer.RenderToString(FeaturesSection(features))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return html
}

// cardCount counts rendered feature cards via the per-card accent marker.
func cardCount(html string) int {
	return strings.Count(html, `data-accent="`)
}

func TestFeaturesSectionOneCardPerEntry(t *testing.T) {
	catalog := Features()
	html := renderSection(t, catalog)

	if got := cardCount(html); got != len(catalog) {
		t.Errorf("card count = %d, want %d", got, len(catalog))
	}
}

func TestFeaturesSectionPreservesOrder(t *testing.T) {
	catalog := []Feature{
		{Title: "Alpha", Description: "first", Icon: ui.IconBolt, Accent: ui.TokenPrimary},
		{Title: "Beta", Description: "second", Icon: ui.IconShield, Accent: ui.TokenBull},
		{Title: "Gamma", Description: "third", Icon: ui.IconGlobe, Accent: ui.TokenBear},
	}
	html := renderSection(t, catalog)

	iAlpha := strings.Index(html, "Alpha")
	iBeta := strings.Index(html, "Beta")
	iGamma := strings.Index(html, "Gamma")
	if iAlpha == -1 || iBeta == -1 || iGamma == -1 {
		t.Fatalf("missing card titles in output:\n%s", html)
	}
	if !(iAlpha < iBeta && iBeta < iGamma) {
		t.Errorf("cards out of catalog order: Alpha@%d Beta@%d Gamma@%d", iAlpha, iBeta, iGamma)
	}
}

func TestFeatureCardFieldsExact(t *testing.T) {
	catalog := []Feature{
		{Title: "A", Description: "B", Icon: ui.IconBolt, Accent: ui.TokenPrimary},
	}
	html := renderSection(t, catalog)

	if got := cardCount(html); got != 1 {
		t.Fatalf("card count = %d, want 1", got)
	}
	if !strings.Contains(html, ">A</h3>") {
		t.Errorf("card heading should be exactly %q, got:\n%s", "A", html)
	}
	if !strings.Contains(html, ">B</p>") {
		t.Errorf("card body should be exactly %q, got:\n%s", "B", html)
	}
	if !strings.Contains(html, `data-accent="primary"`) {
		t.Errorf("card should carry primary accent marker, got:\n%s", html)
	}
	if !strings.Contains(html, ui.TokenPrimary.BadgeClass()) {
		t.Errorf("icon wrapper should carry primary badge classes, got:\n%s", html)
	}
}

func TestFeatureCardAccentTint(t *testing.T) {
	catalog := []Feature{
		{Title: "Up only", Description: "d", Icon: ui.IconBolt, Accent: ui.TokenBull},
	}
	html := renderSection(t, catalog)

	if !strings.Contains(html, ui.TokenBull.BadgeClass()) {
		t.Errorf("bull badge tint missing, got:\n%s", html)
	}
	if !strings.Contains(html, ui.TokenBull.TextClass()) {
		t.Errorf("bull icon tint missing, got:\n%s", html)
	}
}

func TestFeaturesSectionEmptyCatalog(t *testing.T) {
	html := renderSection(t, nil)

	if got := cardCount(html); got != 0 {
		t.Errorf("empty catalog should render zero cards, got %d", got)
	}
	// Testimonial and CTA render unconditionally.
	if !strings.Contains(html, testimonial.Author) {
		t.Errorf("testimonial missing with empty catalog:\n%s", html)
	}
	if !strings.Contains(html, callToAction.Heading) {
		t.Errorf("CTA missing with empty catalog:\n%s", html)
	}
}

func TestFeaturesSectionSkipsMalformedEntries(t *testing.T) {
	catalog := []Feature{
		{Title: "", Description: "no title", Icon: ui.IconBolt},
		{Title: "Kept", Description: "ok", Icon: ui.IconShield, Accent: ui.TokenBull},
		{Title: "no description", Description: "", Icon: ui.IconGlobe},
	}
	html := renderSection(t, catalog)

	if got := cardCount(html); got != 1 {
		t.Errorf("malformed entries should be skipped, card count = %d, want 1", got)
	}
	if !strings.Contains(html, "Kept") {
		t.Errorf("valid entry missing:\n%s", html)
	}
}

func TestFeaturesSectionIdempotent(t *testing.T) {
	catalog := Features()
	first := renderSection(t, catalog)
	for i := 0; i < 5; i++ {
		if again := renderSection(t, catalog); again != first {
			t.Fatalf("render %d differs from first render", i)
		}
	}
}

func TestFeaturesSectionEscapesContent(t *testing.T) {
	catalog := []Feature{
		{Title: "<b>bold</b>", Description: "a & b", Icon: ui.IconBolt},
	}
	html := renderSection(t, catalog)

	if strings.Contains(html, "<b>bold</b>") {
		t.Errorf("title should be escaped, got:\n%s", html)
	}
	if !strings.Contains(html, "&lt;b&gt;bold&lt;/b&gt;") {
		t.Errorf("escaped title missing, got:\n%s", html)
	}
	if !strings.Contains(html, "a &amp; b") {
		t.Errorf("escaped description missing, got:\n%s", html)
	}
}

func TestTrustBadgesRender(t *testing.T) {
	html := renderSection(t, nil)

	for _, badge := range callToAction.Badges {
		if !strings.Contains(html, badge.Label) {
			t.Errorf("trust badge %q missing:\n%s", badge.Label, html)
		}
	}
}
