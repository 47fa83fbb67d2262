package export

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/marketfront/marketfront/internal/config"
	"github.com/marketfront/marketfront/pkg/render"
	"github.com/marketfront/marketfront/pkg/vdom"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.New()
	cfg.Export.Output = filepath.Join(t.TempDir(), "dist")
	cfg.Static.Dir = ""
	return cfg
}

func TestExportWritesIndexHTML(t *testing.T) {
	cfg := testConfig(t)
	exporter := New(cfg, testLogger(), Options{})

	result, err := exporter.Export(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Pages) != 1 || result.Pages[0] != "index.html" {
		t.Fatalf("Pages = %v, want [index.html]", result.Pages)
	}

	data, err := os.ReadFile(filepath.Join(cfg.Export.Output, "index.html"))
	if err != nil {
		t.Fatalf("read exported page: %v", err)
	}
	if len(data) == 0 {
		t.Error("exported page is empty")
	}
}

func TestExportDeterministic(t *testing.T) {
	cfg := testConfig(t)
	exporter := New(cfg, testLogger(), Options{Clean: true})

	if _, err := exporter.Export(context.Background()); err != nil {
		t.Fatalf("first export: %v", err)
	}
	first, err := os.ReadFile(filepath.Join(cfg.Export.Output, "index.html"))
	if err != nil {
		t.Fatal(err)
	}

	if _, err := exporter.Export(context.Background()); err != nil {
		t.Fatalf("second export: %v", err)
	}
	second, err := os.ReadFile(filepath.Join(cfg.Export.Output, "index.html"))
	if err != nil {
		t.Fatal(err)
	}

	if string(first) != string(second) {
		t.Error("exporting twice should produce identical bytes")
	}
}

func TestExportNestedRoutes(t *testing.T) {
	cfg := testConfig(t)
	page := func() render.PageData {
		return render.PageData{Title: "t", Body: vdom.Div(vdom.Text("x"))}
	}
	exporter := New(cfg, testLogger(), Options{
		Routes: map[string]func() render.PageData{
			"/":            page,
			"/pricing":     page,
			"/legal/terms": page,
		},
	})

	result, err := exporter.Export(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"index.html", "legal/terms/index.html", "pricing/index.html"}
	if len(result.Pages) != len(want) {
		t.Fatalf("Pages = %v, want %v", result.Pages, want)
	}
	for i, rel := range want {
		if result.Pages[i] != rel {
			t.Errorf("Pages[%d] = %q, want %q", i, result.Pages[i], rel)
		}
		if _, err := os.Stat(filepath.Join(cfg.Export.Output, filepath.FromSlash(rel))); err != nil {
			t.Errorf("missing exported file %s: %v", rel, err)
		}
	}
}

func TestExportCopiesStaticAssets(t *testing.T) {
	cfg := testConfig(t)
	staticDir := filepath.Join(t.TempDir(), "public")
	if err := os.MkdirAll(filepath.Join(staticDir, "img"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(staticDir, "site.css"), []byte("body{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(staticDir, "img", "logo.svg"), []byte("<svg/>"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg.Static.Dir = staticDir

	exporter := New(cfg, testLogger(), Options{})
	result, err := exporter.Export(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Assets != 2 {
		t.Errorf("Assets = %d, want 2", result.Assets)
	}
	for _, rel := range []string{"assets/site.css", "assets/img/logo.svg"} {
		if _, err := os.Stat(filepath.Join(cfg.Export.Output, filepath.FromSlash(rel))); err != nil {
			t.Errorf("missing copied asset %s: %v", rel, err)
		}
	}
}

func TestExportCleanRemovesStaleFiles(t *testing.T) {
	cfg := testConfig(t)
	if err := os.MkdirAll(cfg.Export.Output, 0o755); err != nil {
		t.Fatal(err)
	}
	stale := filepath.Join(cfg.Export.Output, "stale.html")
	if err := os.WriteFile(stale, []byte("old"), 0o644); err != nil {
		t.Fatal(err)
	}

	exporter := New(cfg, testLogger(), Options{Clean: true})
	if _, err := exporter.Export(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Error("stale file should be removed by clean export")
	}
}

func TestExportCanceledContext(t *testing.T) {
	cfg := testConfig(t)
	exporter := New(cfg, testLogger(), Options{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := exporter.Export(ctx); err == nil {
		t.Error("expected error for canceled context")
	}
}

func TestPageFilePath(t *testing.T) {
	tests := []struct {
		route   string
		want    string
		wantErr bool
	}{
		{route: "/", want: "index.html"},
		{route: "/pricing", want: "pricing/index.html"},
		{route: "/legal/terms", want: "legal/terms/index.html"},
		{route: "pricing", wantErr: true},
		{route: "/../escape", wantErr: true},
	}
	for _, tt := range tests {
		got, err := pageFilePath(tt.route)
		if tt.wantErr {
			if err == nil {
				t.Errorf("pageFilePath(%q) = %q, want error", tt.route, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("pageFilePath(%q): %v", tt.route, err)
			continue
		}
		if got != tt.want {
			t.Errorf("pageFilePath(%q) = %q, want %q", tt.route, got, tt.want)
		}
	}
}
