package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/frond-ui/frond/internal/config"
	"github.com/frond-ui/frond/internal/dev"
)

func buildCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the project for the browser",
		Long: `Compile the project to WebAssembly.

The compiled app.wasm is written to the output directory
(default: dist, configurable in frond.yaml).`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output directory (default from frond.yaml)")

	return cmd
}

func runBuild(output string) error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}
	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}
	if output != "" {
		cfg.Build.Output = output
	}

	builder := dev.NewBuilder(dev.BuilderConfig{
		ProjectPath: dir,
		Main:        cfg.Build.Main,
		Output:      filepath.Join(dir, cfg.Build.Output),
	})

	result := builder.Build(context.Background())
	if !result.Success {
		if result.Output != "" {
			fmt.Fprint(os.Stderr, result.Output)
		}
		return result.Error
	}

	success("built %s in %s", builder.ArtifactPath(), result.Duration.Round(time.Millisecond))
	return nil
}
