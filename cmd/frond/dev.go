package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/frond-ui/frond/internal/config"
	"github.com/frond-ui/frond/internal/dev"
)

func devCmd() *cobra.Command {
	var (
		port int
		host string
	)

	cmd := &cobra.Command{
		Use:   "dev",
		Short: "Start the development server",
		Long: `Start the development server with hot reload.

The dev server watches for file changes, rebuilds the wasm binary,
and automatically refreshes connected browsers.

Examples:
  frond dev
  frond dev --port=8080
  frond dev --host=0.0.0.0`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDev(port, host)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to run on (default from frond.yaml)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from frond.yaml)")

	return cmd
}

func runDev(port int, host string) error {
	if _, err := exec.LookPath("go"); err != nil {
		info("Go is not installed or not in PATH")
		return err
	}

	dir, err := os.Getwd()
	if err != nil {
		return err
	}
	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}
	if port != 0 {
		cfg.Dev.Port = port
	}
	if host != "" {
		cfg.Dev.Host = host
	}

	printBanner()
	info("serving http://%s", cfg.Addr())
	fmt.Println()

	server := dev.NewServer(dev.ServerOptions{
		Config: cfg,
		Dir:    dir,
		Logger: slog.Default(),
		OnBuildComplete: func(result dev.BuildResult) {
			if result.Success {
				success("built in %s", result.Duration.Round(time.Millisecond))
			} else if result.Output != "" {
				fmt.Fprint(os.Stderr, result.Output)
			}
		},
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.Run(ctx)
}
