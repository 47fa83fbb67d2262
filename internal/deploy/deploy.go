// Package deploy uploads an exported site to S3.
package deploy

import (
	"context"
	"fmt"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/marketfront/marketfront/internal/config"
)

// ObjectPutter is the subset of the S3 client used by the deployer.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Result contains the deploy output.
type Result struct {
	// Duration is how long the deploy took.
	Duration time.Duration

	// Bucket is the destination bucket.
	Bucket string

	// Keys are the uploaded object keys, in upload order.
	Keys []string

	// Bytes is the total number of bytes uploaded.
	Bytes int64
}

// Deployer uploads the export directory to an S3 bucket.
type Deployer struct {
	client ObjectPutter
	cfg    *config.Config
	logger *slog.Logger
}

// New creates a deployer with the given S3 client.
func New(client ObjectPutter, cfg *config.Config, logger *slog.Logger) *Deployer {
	return &Deployer{
		client: client,
		cfg:    cfg,
		logger: logger.With("component", "deploy"),
	}
}

// NewFromEnv creates a deployer using the default AWS credential chain.
func NewFromEnv(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Deployer, error) {
	opts := []func(*awsconfig.LoadOptions) error{}
	if cfg.Deploy.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Deploy.Region))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return New(s3.NewFromConfig(awsCfg), cfg, logger), nil
}

// Deploy uploads every file under the export output directory.
// Keys mirror the directory layout under the configured prefix.
func (d *Deployer) Deploy(ctx context.Context) (*Result, error) {
	bucket := d.cfg.Deploy.Bucket
	if bucket == "" {
		return nil, fmt.Errorf("deploy bucket is not configured")
	}

	srcDir := d.cfg.Export.Output
	info, err := os.Stat(srcDir)
	if err != nil {
		return nil, fmt.Errorf("export output %s: %w (run export first)", srcDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("export output %s is not a directory", srcDir)
	}

	var files []string
	err = filepath.Walk(srcDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", srcDir, err)
	}
	sort.Strings(files)

	start := time.Now()
	result := &Result{Bucket: bucket}

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return nil, err
		}
		key := d.objectKey(rel)

		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}

		_, err = d.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:       aws.String(bucket),
			Key:          aws.String(key),
			Body:         f,
			ContentType:  aws.String(contentTypeFor(rel)),
			CacheControl: aws.String(cacheControlFor(rel)),
		})
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("upload %s: %w", key, err)
		}

		fi, statErr := os.Stat(path)
		if statErr == nil {
			result.Bytes += fi.Size()
		}
		result.Keys = append(result.Keys, key)
		d.logger.Info("uploaded", "key", key, "bucket", bucket)
	}

	result.Duration = time.Since(start)
	d.logger.Info("deploy complete",
		"bucket", bucket,
		"objects", len(result.Keys),
		"bytes", result.Bytes,
		"duration", result.Duration,
	)
	return result, nil
}

// objectKey maps a relative file path to its S3 key under the prefix.
func (d *Deployer) objectKey(rel string) string {
	key := filepath.ToSlash(rel)
	prefix := strings.Trim(d.cfg.Deploy.Prefix, "/")
	if prefix != "" {
		key = prefix + "/" + key
	}
	return key
}

// contentTypeFor resolves the Content-Type from the file extension.
func contentTypeFor(rel string) string {
	ext := strings.ToLower(filepath.Ext(rel))
	switch ext {
	case ".html":
		return "text/html; charset=utf-8"
	case ".css":
		return "text/css; charset=utf-8"
	case ".js":
		return "text/javascript; charset=utf-8"
	case ".svg":
		return "image/svg+xml"
	case ".json":
		return "application/json"
	}
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// cacheControlFor picks the cache policy: HTML revalidates so deploys show
// up immediately, fingerprinted assets are immutable, the rest is cached
// for an hour.
func cacheControlFor(rel string) string {
	if strings.HasSuffix(rel, ".html") {
		return "public, max-age=0, must-revalidate"
	}
	if isFingerprinted(rel) {
		return "public, max-age=31536000, immutable"
	}
	return "public, max-age=3600"
}

// isFingerprinted reports whether a file name contains a hash segment,
// e.g. "site.a1b2c3d4.css".
func isFingerprinted(rel string) bool {
	parts := strings.Split(filepath.Base(rel), ".")
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
