package main

import (
	"context"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/marketfront/marketfront/internal/config"
	"github.com/marketfront/marketfront/internal/dev"
	"github.com/marketfront/marketfront/internal/server"
)

func serveCmd() *cobra.Command {
	var (
		addr    string
		devMode bool
		tracing bool
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Long: `Run the HTTP server for the site.

In dev mode the server watches the asset directories and tells
connected browsers to reload when files change.

Examples:
  marketfront serve
  marketfront serve --addr=0.0.0.0:8080
  marketfront serve --dev`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(addr, devMode, tracing, verbose)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from marketfront.json)")
	cmd.Flags().BoolVar(&devMode, "dev", false, "Enable live reload")
	cmd.Flags().BoolVar(&tracing, "tracing", false, "Enable OpenTelemetry request tracing")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

func runServe(addr string, devMode, tracing, verbose bool) error {
	cfg, err := config.LoadFromWorkingDir()
	if err != nil {
		return err
	}
	if err := applyAddr(cfg, addr); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(verbose)

	opts := []server.Option{server.WithLogger(logger)}
	if tracing {
		opts = append(opts, server.WithTracing())
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if devMode {
		loop, err := dev.NewLoop(cfg, logger)
		if err != nil {
			return err
		}
		opts = append(opts, server.WithDevReload(loop.Reload()))
		go func() {
			if err := loop.Run(ctx); err != nil {
				logger.Error("dev loop stopped", "error", err)
			}
		}()
		info("Live reload enabled, watching %s", strings.Join(cfg.Dev.Watch, ", "))
	}

	srv := server.New(cfg, opts...)
	success("Serving at %s", cfg.URL())
	return srv.Start(ctx)
}

// applyAddr overrides host/port from a --addr flag value.
func applyAddr(cfg *config.Config, addr string) error {
	if addr == "" {
		return nil
	}
	host, portStr, ok := strings.Cut(addr, ":")
	if !ok {
		return errInvalidAddr(addr)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return errInvalidAddr(addr)
	}
	if host != "" {
		cfg.Host = host
	}
	cfg.Port = port
	return nil
}

type errInvalidAddr string

func (e errInvalidAddr) Error() string {
	return "invalid --addr " + strconv.Quote(string(e)) + ", expected host:port"
}
