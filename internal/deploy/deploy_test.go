package deploy

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/marketfront/marketfront/internal/config"
)

type fakePutter struct {
	mu   sync.Mutex
	puts []*s3.PutObjectInput
	err  error
}

func (f *fakePutter) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	// Drain the body like the real client would.
	if params.Body != nil {
		_, _ = io.Copy(io.Discard, params.Body)
	}
	f.puts = append(f.puts, params)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakePutter) input(key string) *s3.PutObjectInput {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.puts {
		if p.Key != nil && *p.Key == key {
			return p
		}
	}
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig(t *testing.T, files map[string]string) *config.Config {
	t.Helper()
	dist := filepath.Join(t.TempDir(), "dist")
	for name, content := range files {
		path := filepath.Join(dist, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	cfg := config.New()
	cfg.Export.Output = dist
	cfg.Deploy.Bucket = "test-bucket"
	return cfg
}

func TestDeployUploadsAllFiles(t *testing.T) {
	cfg := testConfig(t, map[string]string{
		"index.html":       "<html></html>",
		"assets/site.css":  "body{}",
		"assets/img/x.svg": "<svg/>",
	})
	putter := &fakePutter{}
	deployer := New(putter, cfg, testLogger())

	result, err := deployer.Deploy(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(result.Keys) != 3 {
		t.Fatalf("Keys = %v, want 3 uploads", result.Keys)
	}
	for _, key := range []string{"index.html", "assets/site.css", "assets/img/x.svg"} {
		if putter.input(key) == nil {
			t.Errorf("missing upload for key %q", key)
		}
	}
	if result.Bucket != "test-bucket" {
		t.Errorf("Bucket = %q, want %q", result.Bucket, "test-bucket")
	}
}

func TestDeployAppliesPrefix(t *testing.T) {
	cfg := testConfig(t, map[string]string{"index.html": "<html></html>"})
	cfg.Deploy.Prefix = "www/"
	putter := &fakePutter{}
	deployer := New(putter, cfg, testLogger())

	if _, err := deployer.Deploy(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if putter.input("www/index.html") == nil {
		t.Errorf("expected key under prefix, got %v", keysOf(putter))
	}
}

func keysOf(f *fakePutter) []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var keys []string
	for _, p := range f.puts {
		keys = append(keys, *p.Key)
	}
	return keys
}

func TestDeployContentTypes(t *testing.T) {
	cfg := testConfig(t, map[string]string{
		"index.html":      "<html></html>",
		"assets/site.css": "body{}",
	})
	putter := &fakePutter{}
	deployer := New(putter, cfg, testLogger())

	if _, err := deployer.Deploy(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p := putter.input("index.html"); p == nil || *p.ContentType != "text/html; charset=utf-8" {
		t.Errorf("index.html content type wrong: %+v", p)
	}
	if p := putter.input("assets/site.css"); p == nil || *p.ContentType != "text/css; charset=utf-8" {
		t.Errorf("site.css content type wrong: %+v", p)
	}
}

func TestDeployCacheControl(t *testing.T) {
	cfg := testConfig(t, map[string]string{
		"index.html":               "<html></html>",
		"assets/site.a1b2c3d4.css": "body{}",
		"assets/site.css":          "body{}",
	})
	putter := &fakePutter{}
	deployer := New(putter, cfg, testLogger())

	if _, err := deployer.Deploy(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if p := putter.input("index.html"); p == nil || *p.CacheControl != "public, max-age=0, must-revalidate" {
		t.Errorf("html cache control wrong: %+v", p)
	}
	if p := putter.input("assets/site.a1b2c3d4.css"); p == nil || *p.CacheControl != "public, max-age=31536000, immutable" {
		t.Errorf("fingerprinted cache control wrong: %+v", p)
	}
	if p := putter.input("assets/site.css"); p == nil || *p.CacheControl != "public, max-age=3600" {
		t.Errorf("plain asset cache control wrong: %+v", p)
	}
}

func TestDeployRequiresBucket(t *testing.T) {
	cfg := testConfig(t, map[string]string{"index.html": "x"})
	cfg.Deploy.Bucket = ""
	deployer := New(&fakePutter{}, cfg, testLogger())

	if _, err := deployer.Deploy(context.Background()); err == nil {
		t.Error("expected error for missing bucket")
	}
}

func TestDeployRequiresExport(t *testing.T) {
	cfg := config.New()
	cfg.Export.Output = filepath.Join(t.TempDir(), "missing")
	cfg.Deploy.Bucket = "b"
	deployer := New(&fakePutter{}, cfg, testLogger())

	if _, err := deployer.Deploy(context.Background()); err == nil {
		t.Error("expected error for missing export output")
	}
}
