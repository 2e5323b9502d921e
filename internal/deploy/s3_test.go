package deploy

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type fakeS3 struct {
	puts []s3.PutObjectInput
}

func (f *fakeS3) PutObject(ctx context.Context, input *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.puts = append(f.puts, *input)
	return &s3.PutObjectOutput{}, nil
}

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestSyncUploadsAllFiles(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"index.html":     "<html></html>",
		"app.wasm":       "\x00asm",
		"css/styles.css": "body {}",
	})

	fake := &fakeS3{}
	d := NewDeployer(fake, "my-bucket", "app")

	n, err := d.Sync(context.Background(), dir)
	if err != nil {
		t.Fatalf("Sync: %v", err)
	}
	if n != 3 {
		t.Fatalf("uploaded = %d, want 3", n)
	}

	keys := make([]string, 0, len(fake.puts))
	for _, p := range fake.puts {
		if *p.Bucket != "my-bucket" {
			t.Errorf("bucket = %q", *p.Bucket)
		}
		keys = append(keys, *p.Key)
	}
	sort.Strings(keys)
	want := []string{"app/app.wasm", "app/css/styles.css", "app/index.html"}
	for i, k := range want {
		if keys[i] != k {
			t.Errorf("key[%d] = %q, want %q", i, keys[i], k)
		}
	}
}

func TestSyncContentTypes(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"app.wasm":   "\x00asm",
		"index.html": "<html></html>",
	})

	fake := &fakeS3{}
	d := NewDeployer(fake, "b", "")
	if _, err := d.Sync(context.Background(), dir); err != nil {
		t.Fatal(err)
	}

	types := map[string]string{}
	for _, p := range fake.puts {
		types[*p.Key] = *p.ContentType
	}
	if ct := types["app.wasm"]; ct != "application/wasm" {
		t.Errorf("wasm content type = %q", ct)
	}
	if ct := types["index.html"]; ct == "" || ct == "application/octet-stream" {
		t.Errorf("html content type = %q", ct)
	}
}

func TestNewDeployerPrefixNormalization(t *testing.T) {
	d := NewDeployer(&fakeS3{}, "b", "/nested/path/")
	if d.prefix != "nested/path/" {
		t.Errorf("prefix = %q", d.prefix)
	}
	d = NewDeployer(&fakeS3{}, "b", "")
	if d.prefix != "" {
		t.Errorf("prefix = %q", d.prefix)
	}
}
