package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/marketfront/marketfront/internal/config"
	"github.com/marketfront/marketfront/internal/export"
)

func exportCmd() *cobra.Command {
	var (
		output  string
		clean   bool
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the site as static files",
		Long: `Render every page route to disk and copy the static assets
alongside, producing a directory any static host can serve.

Examples:
  marketfront export
  marketfront export --output=dist --clean`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(output, clean, verbose)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output directory (default from marketfront.json)")
	cmd.Flags().BoolVar(&clean, "clean", false, "Clean output directory before export")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

func runExport(output string, clean, verbose bool) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}
	if output != "" {
		cfg.Export.Output = output
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	exporter := export.New(cfg, newLogger(verbose), export.Options{
		Clean:      clean,
		OnProgress: func(step string) { info(step) },
	})

	result, err := exporter.Export(ctx)
	if err != nil {
		return err
	}

	success("Exported %d pages and %d assets to %s in %s",
		len(result.Pages), result.Assets, result.Output, result.Duration.Round(time.Millisecond))
	return nil
}
