// Package deploy uploads build output to static hosting targets.
package deploy

import (
	"context"
	"io/fs"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/frond-ui/frond/internal/errors"
)

// S3API is the subset of the S3 client the deployer uses.
type S3API interface {
	PutObject(ctx context.Context, input *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Deployer syncs a local directory to an S3 bucket.
type Deployer struct {
	client S3API
	bucket string
	prefix string
	log    *slog.Logger
}

// NewDeployer creates a deployer targeting bucket with an optional key
// prefix.
func NewDeployer(client S3API, bucket, prefix string) *Deployer {
	prefix = strings.Trim(prefix, "/")
	if prefix != "" {
		prefix += "/"
	}
	return &Deployer{
		client: client,
		bucket: bucket,
		prefix: prefix,
		log:    slog.Default(),
	}
}

// WithLogger sets the logger used during sync.
func (d *Deployer) WithLogger(log *slog.Logger) *Deployer {
	d.log = log
	return d
}

// Sync uploads every regular file beneath dir, keyed by its path
// relative to dir. It returns the number of files uploaded.
func (d *Deployer) Sync(ctx context.Context, dir string) (int, error) {
	uploaded := 0
	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		key := d.prefix + filepath.ToSlash(rel)
		if err := d.put(ctx, path, key); err != nil {
			return err
		}
		uploaded++
		d.log.Info("uploaded", "key", key)
		return nil
	})
	if err != nil {
		return uploaded, errors.New("F301", errors.CategoryDeploy, "sync of %s failed", dir).
			WithCause(err).
			WithHint("check the bucket name and your AWS credentials")
	}
	return uploaded, nil
}

func (d *Deployer) put(ctx context.Context, path, key string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = d.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(d.bucket),
		Key:         aws.String(key),
		Body:        f,
		ContentType: aws.String(contentType(path)),
	})
	return err
}

func contentType(path string) string {
	if ct := mime.TypeByExtension(filepath.Ext(path)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}
