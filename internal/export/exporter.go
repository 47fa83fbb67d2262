// Package export writes the rendered site to disk as static files.
//
// Each page route becomes an index.html under its path, and the static
// assets directory is copied alongside, so the output can be served by
// any static host or uploaded to S3.
package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/marketfront/marketfront/internal/config"
	"github.com/marketfront/marketfront/internal/site"
	"github.com/marketfront/marketfront/pkg/render"
)

// Result contains the export output.
type Result struct {
	// Duration is how long the export took.
	Duration time.Duration

	// Output is the output directory.
	Output string

	// Pages are the written page file paths, relative to Output.
	Pages []string

	// Assets is the number of static assets copied.
	Assets int
}

// Options configures the exporter.
type Options struct {
	// Clean removes the output directory before exporting.
	Clean bool

	// Routes overrides the exported page routes. Default is site.Routes().
	Routes map[string]func() render.PageData

	// OnProgress is called with progress updates.
	OnProgress func(step string)
}

// Exporter renders page routes to static files.
type Exporter struct {
	cfg     *config.Config
	logger  *slog.Logger
	options Options
}

// New creates an exporter.
func New(cfg *config.Config, logger *slog.Logger, options Options) *Exporter {
	if options.Routes == nil {
		options.Routes = site.Routes()
	}
	return &Exporter{
		cfg:     cfg,
		logger:  logger.With("component", "export"),
		options: options,
	}
}

// Export writes all pages and static assets to the output directory.
func (e *Exporter) Export(ctx context.Context) (*Result, error) {
	start := time.Now()
	output := e.cfg.Export.Output
	result := &Result{Output: output}

	if e.options.Clean {
		e.progress("Cleaning output directory...")
		if err := os.RemoveAll(output); err != nil {
			return nil, fmt.Errorf("clean %s: %w", output, err)
		}
	}
	if err := os.MkdirAll(output, 0o755); err != nil {
		return nil, fmt.Errorf("create %s: %w", output, err)
	}

	// Sort routes so export order, and therefore logging and progress
	// output, is deterministic.
	routes := make([]string, 0, len(e.options.Routes))
	for route := range e.options.Routes {
		routes = append(routes, route)
	}
	sort.Strings(routes)

	e.progress("Rendering pages...")
	renderer := render.NewRenderer(render.RendererConfig{})
	for _, route := range routes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rel, err := pageFilePath(route)
		if err != nil {
			return nil, err
		}

		var buf bytes.Buffer
		if err := renderer.RenderPage(&buf, e.options.Routes[route]()); err != nil {
			return nil, fmt.Errorf("render %s: %w", route, err)
		}

		dest := filepath.Join(output, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return nil, fmt.Errorf("create %s: %w", filepath.Dir(dest), err)
		}
		if err := os.WriteFile(dest, buf.Bytes(), 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", dest, err)
		}

		e.logger.Info("page written", "route", route, "file", rel, "bytes", buf.Len())
		result.Pages = append(result.Pages, rel)
	}

	e.progress("Copying static assets...")
	copied, err := e.copyAssets(output)
	if err != nil {
		return nil, err
	}
	result.Assets = copied

	result.Duration = time.Since(start)
	e.logger.Info("export complete",
		"pages", len(result.Pages),
		"assets", result.Assets,
		"duration", result.Duration,
	)
	return result, nil
}

// pageFilePath maps a route to its output file: "/" becomes index.html,
// "/pricing" becomes pricing/index.html.
func pageFilePath(route string) (string, error) {
	if !strings.HasPrefix(route, "/") {
		return "", fmt.Errorf("route %q must start with /", route)
	}
	trimmed := strings.Trim(route, "/")
	if trimmed == "" {
		return "index.html", nil
	}
	for _, seg := range strings.Split(trimmed, "/") {
		if seg == "" || seg == "." || seg == ".." {
			return "", fmt.Errorf("route %q has invalid segment", route)
		}
	}
	return trimmed + "/index.html", nil
}

// copyAssets copies the static directory into the output under the
// configured URL prefix, e.g. public/site.css to dist/assets/site.css.
func (e *Exporter) copyAssets(output string) (int, error) {
	srcDir := e.cfg.Static.Dir
	if srcDir == "" {
		return 0, nil
	}
	if _, err := os.Stat(srcDir); os.IsNotExist(err) {
		return 0, nil
	}

	destDir := filepath.Join(output, filepath.FromSlash(strings.Trim(e.cfg.Static.Prefix, "/")))

	copied := 0
	err := filepath.Walk(srcDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		dest := filepath.Join(destDir, rel)
		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return err
		}
		if err := copyFile(path, dest); err != nil {
			return err
		}
		copied++
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("copy assets: %w", err)
	}
	return copied, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}

func (e *Exporter) progress(step string) {
	if e.options.OnProgress != nil {
		e.options.OnProgress(step)
	}
}
