package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/funhtml-go/funhtml/internal/errors"
	"github.com/funhtml-go/funhtml/pkg/publish"
	"github.com/funhtml-go/funhtml/pkg/render"
	"github.com/spf13/cobra"
)

func (a *app) publishCmd() *cobra.Command {
	var (
		bucket       string
		prefix       string
		region       string
		endpoint     string
		cacheControl string
		dryRun       bool
	)

	cmd := &cobra.Command{
		Use:   "publish [dir]",
		Short: "Render a directory of Markdown pages and upload them to S3",
		Long: `Render every Markdown file under a directory and upload the pages to
an S3 bucket. "guide/intro.md" is stored as "guide/intro.html" below the
configured prefix.

Credentials are read from AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and
AWS_SESSION_TOKEN. --endpoint selects an S3-compatible service.

Examples:
  funhtml publish docs --bucket my-site --prefix docs/
  funhtml publish --dry-run`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			pc := a.cfg.Publish
			flags := cmd.Flags()
			if flags.Changed("bucket") {
				pc.Bucket = bucket
			}
			if flags.Changed("prefix") {
				pc.Prefix = prefix
			}
			if flags.Changed("region") {
				pc.Region = region
			}
			if flags.Changed("endpoint") {
				pc.Endpoint = endpoint
			}
			if flags.Changed("cache-control") {
				pc.CacheControl = cacheControl
			}
			if pc.Bucket == "" {
				return errors.New("F400")
			}

			var client publish.PutObjectAPI
			if dryRun {
				client = dryRunClient{out: cmd.OutOrStdout()}
			} else {
				c, err := publish.NewS3Client(pc.Region, pc.Endpoint)
				if err != nil {
					if stderrors.Is(err, publish.ErrNoCredentials) {
						return errors.New("F401").Wrap(err)
					}
					return errors.New("F402").Wrap(err)
				}
				client = c
			}
			return a.publish(cmd.Context(), dir, client, pc.Bucket,
				publish.WithPrefix(pc.Prefix),
				publish.WithCacheControl(pc.CacheControl),
			)
		},
	}

	cmd.Flags().StringVar(&bucket, "bucket", "", "Target bucket")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Prefix for every object key")
	cmd.Flags().StringVar(&region, "region", "", "Storage region (default: AWS_REGION or us-east-1)")
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "S3-compatible endpoint URL")
	cmd.Flags().StringVar(&cacheControl, "cache-control", "", "Cache-Control header stored with each object")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Render and list the uploads without sending them")

	return cmd
}

// publish renders every page under dir and uploads it through client.
func (a *app) publish(ctx context.Context, dir string, client publish.PutObjectAPI, bucket string, opts ...publish.Option) error {
	files, err := markdownFiles(dir)
	if err != nil {
		return err
	}
	b, err := newBuilder(a.cfg)
	if err != nil {
		return err
	}

	docs := make(map[string]render.Document, len(files))
	for _, rel := range files {
		doc, err := b.file(filepath.Join(dir, filepath.FromSlash(rel)))
		if err != nil {
			return err
		}
		docs[objectKey(rel)] = doc
	}

	opts = append(opts, publish.WithRenderer(b.renderer()), publish.WithLogger(a.logger))
	p := publish.New(client, bucket, opts...)
	results, err := p.PublishAll(ctx, docs)
	for _, res := range results {
		a.info("%s/%s (%d bytes)", res.Bucket, res.Key, res.Size)
	}
	if err != nil {
		return errors.New("F402").WithDetail(fmt.Sprintf("%d of %d pages uploaded", len(results), len(docs))).Wrap(err)
	}
	a.success("Published %d pages to %s", len(results), bucket)
	return nil
}

// dryRunClient reports uploads instead of sending them.
type dryRunClient struct {
	out io.Writer
}

func (c dryRunClient) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	fmt.Fprintf(c.out, "  would upload %s/%s (%s)\n", aws.ToString(in.Bucket), aws.ToString(in.Key), aws.ToString(in.ContentType))
	return &s3.PutObjectOutput{}, nil
}
