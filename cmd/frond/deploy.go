package main

import (
	"context"
	"os"
	"path/filepath"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/frond-ui/frond/internal/config"
	"github.com/frond-ui/frond/internal/deploy"
	"github.com/frond-ui/frond/internal/errors"
)

func deployCmd() *cobra.Command {
	var (
		bucket string
		prefix string
		region string
	)

	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Upload the build output to S3",
		Long: `Sync the build output directory to an S3 bucket.

Credentials are resolved through the standard AWS chain
(environment, shared config, instance role).

Examples:
  frond deploy
  frond deploy --bucket=my-site --region=eu-west-1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeploy(cmd.Context(), bucket, prefix, region)
		},
	}

	cmd.Flags().StringVarP(&bucket, "bucket", "b", "", "Target bucket (default from frond.yaml)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix (default from frond.yaml)")
	cmd.Flags().StringVar(&region, "region", "", "AWS region (default from frond.yaml)")

	return cmd
}

func runDeploy(ctx context.Context, bucket, prefix, region string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	dir, err := os.Getwd()
	if err != nil {
		return err
	}
	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}
	if bucket == "" {
		bucket = cfg.Deploy.Bucket
	}
	if prefix == "" {
		prefix = cfg.Deploy.Prefix
	}
	if region == "" {
		region = cfg.Deploy.Region
	}
	if bucket == "" {
		return errors.New("F302", errors.CategoryDeploy, "no target bucket").
			WithHint("set deploy.bucket in frond.yaml or pass --bucket")
	}

	outDir := filepath.Join(dir, cfg.Build.Output)
	if _, err := os.Stat(outDir); err != nil {
		return errors.New("F303", errors.CategoryDeploy, "build output %s not found", cfg.Build.Output).
			WithHint("run `frond build` first")
	}

	var loadOpts []func(*awsconfig.LoadOptions) error
	if region != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return errors.New("F304", errors.CategoryDeploy, "cannot load AWS configuration").WithCause(err)
	}

	d := deploy.NewDeployer(s3.NewFromConfig(awsCfg), bucket, prefix)
	n, err := d.Sync(ctx, outDir)
	if err != nil {
		return err
	}

	success("deployed %d files to s3://%s/%s", n, bucket, prefix)
	return nil
}
