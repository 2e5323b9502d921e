package dev

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/frond-ui/frond/internal/errors"
)

// BuilderConfig configures WebAssembly builds.
type BuilderConfig struct {
	// ProjectPath is the root directory of the project.
	ProjectPath string

	// Main is the package to build.
	Main string

	// Output is the directory receiving app.wasm.
	Output string
}

// BuildResult describes a completed build.
type BuildResult struct {
	Success  bool
	Duration time.Duration
	Output   string
	Error    error
}

// Builder compiles the project to WebAssembly.
type Builder struct {
	config BuilderConfig
}

// NewBuilder creates a builder.
func NewBuilder(config BuilderConfig) *Builder {
	if config.Main == "" {
		config.Main = "."
	}
	if config.Output == "" {
		config.Output = filepath.Join(config.ProjectPath, "dist")
	}
	return &Builder{config: config}
}

// ArtifactPath returns the path of the compiled wasm binary.
func (b *Builder) ArtifactPath() string {
	return filepath.Join(b.config.Output, "app.wasm")
}

// Build runs go build with the wasm target.
func (b *Builder) Build(ctx context.Context) BuildResult {
	start := time.Now()

	if err := os.MkdirAll(b.config.Output, 0o755); err != nil {
		return BuildResult{
			Duration: time.Since(start),
			Error:    errors.New("F201", errors.CategoryBuild, "cannot create output directory").WithCause(err),
		}
	}

	cmd := exec.CommandContext(ctx, "go", "build", "-o", b.ArtifactPath(), b.config.Main)
	cmd.Dir = b.config.ProjectPath
	cmd.Env = append(os.Environ(), "GOOS=js", "GOARCH=wasm")

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	err := cmd.Run()
	result := BuildResult{
		Success:  err == nil,
		Duration: time.Since(start),
		Output:   out.String(),
	}
	if err != nil {
		result.Error = errors.New("F202", errors.CategoryBuild, "go build failed").
			WithCause(err).
			WithHint("see the compiler output above")
	}
	return result
}
