package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/marketfront/marketfront/internal/config"
	"github.com/marketfront/marketfront/internal/deploy"
)

func deployCmd() *cobra.Command {
	var (
		bucket  string
		prefix  string
		region  string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Upload the exported site to S3",
		Long: `Upload the export output directory to an S3 bucket.

Credentials come from the default AWS credential chain (environment,
shared config, instance role). Run export first.

Examples:
  marketfront deploy
  marketfront deploy --bucket=www.example.com --region=eu-west-1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeploy(bucket, prefix, region, verbose)
		},
	}

	cmd.Flags().StringVar(&bucket, "bucket", "", "S3 bucket (default from marketfront.json)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix within the bucket")
	cmd.Flags().StringVar(&region, "region", "", "AWS region of the bucket")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

func runDeploy(bucket, prefix, region string, verbose bool) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}
	if bucket != "" {
		cfg.Deploy.Bucket = bucket
	}
	if prefix != "" {
		cfg.Deploy.Prefix = prefix
	}
	if region != "" {
		cfg.Deploy.Region = region
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deployer, err := deploy.NewFromEnv(ctx, cfg, newLogger(verbose))
	if err != nil {
		return err
	}

	info("Uploading %s to s3://%s...", cfg.Export.Output, cfg.Deploy.Bucket)
	result, err := deployer.Deploy(ctx)
	if err != nil {
		return err
	}

	success("Uploaded %d objects (%d bytes) to %s in %s",
		len(result.Keys), result.Bytes, result.Bucket, result.Duration.Round(time.Millisecond))
	return nil
}
