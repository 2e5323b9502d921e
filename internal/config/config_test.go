package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/frond-ui/frond/internal/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return dir
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Dev.Port != DefaultPort {
		t.Errorf("Dev.Port = %d, want %d", cfg.Dev.Port, DefaultPort)
	}
	if cfg.Dev.Host != DefaultHost {
		t.Errorf("Dev.Host = %q, want %q", cfg.Dev.Host, DefaultHost)
	}
	if cfg.Build.Output != DefaultOutput {
		t.Errorf("Build.Output = %q, want %q", cfg.Build.Output, DefaultOutput)
	}
	if cfg.Build.Main != "." {
		t.Errorf("Build.Main = %q, want %q", cfg.Build.Main, ".")
	}
}

func TestLoadParsesFields(t *testing.T) {
	dir := writeConfig(t, `
name: demo
dev:
  port: 8080
  host: 0.0.0.0
  ignore: ["*.tmp"]
build:
  output: public
deploy:
  bucket: my-bucket
  prefix: app
  region: us-west-2
`)
	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Name != "demo" {
		t.Errorf("Name = %q", cfg.Name)
	}
	if cfg.Dev.Port != 8080 || cfg.Dev.Host != "0.0.0.0" {
		t.Errorf("Dev = %+v", cfg.Dev)
	}
	if got := cfg.Addr(); got != "0.0.0.0:8080" {
		t.Errorf("Addr() = %q", got)
	}
	if cfg.Build.Output != "public" {
		t.Errorf("Build.Output = %q", cfg.Build.Output)
	}
	if cfg.Deploy.Bucket != "my-bucket" || cfg.Deploy.Region != "us-west-2" {
		t.Errorf("Deploy = %+v", cfg.Deploy)
	}
}

func TestLoadPartialFileFillsDefaults(t *testing.T) {
	dir := writeConfig(t, "name: partial\n")
	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Dev.Port != DefaultPort || cfg.Build.Output != DefaultOutput {
		t.Errorf("defaults not applied: %+v", cfg)
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	dir := writeConfig(t, "dev: [not a map\n")
	_, err := Load(dir)
	if err == nil {
		t.Fatal("expected error")
	}
	var fe *errors.Error
	if !errors.As(err, &fe) {
		t.Fatalf("error type = %T", err)
	}
	if fe.Code != "F102" || fe.Category != errors.CategoryConfig {
		t.Errorf("error = %+v", fe)
	}
}

func TestLoadInvalidPort(t *testing.T) {
	dir := writeConfig(t, "dev:\n  port: 99999\n")
	_, err := Load(dir)
	if err == nil {
		t.Fatal("expected error")
	}
	var fe *errors.Error
	if !errors.As(err, &fe) || fe.Code != "F103" {
		t.Errorf("error = %v", err)
	}
}
