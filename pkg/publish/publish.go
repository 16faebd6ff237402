// Package publish uploads rendered documents to S3-compatible object
// storage.
//
// Example usage:
//
//	client, err := publish.NewS3Client("eu-west-1", "")
//	if err != nil {
//	    return err
//	}
//	p := publish.New(client, "my-site", publish.WithPrefix("docs/"))
//	res, err := p.Publish(ctx, "index.html", doc)
package publish

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/funhtml-go/funhtml/pkg/render"
)

// ContentType is stored with every published object.
const ContentType = "text/html; charset=utf-8"

var (
	// ErrNoBucket is returned when the publisher has no bucket configured.
	ErrNoBucket = errors.New("publish: no bucket configured")

	// ErrEmptyKey is returned for an empty object key.
	ErrEmptyKey = errors.New("publish: empty object key")
)

// PutObjectAPI is the part of *s3.Client the publisher uses.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Result describes one uploaded document.
type Result struct {
	Bucket string
	Key    string
	Size   int64
	ETag   string
}

// Publisher renders documents and stores them as objects.
type Publisher struct {
	client       PutObjectAPI
	bucket       string
	prefix       string
	cacheControl string
	renderer     *render.Renderer
	logger       *slog.Logger
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithPrefix prepends prefix to every object key (e.g. "docs/").
func WithPrefix(prefix string) Option {
	return func(p *Publisher) {
		p.prefix = prefix
	}
}

// WithCacheControl sets the Cache-Control header stored with each object.
func WithCacheControl(v string) Option {
	return func(p *Publisher) {
		p.cacheControl = v
	}
}

// WithRenderer sets the renderer used to serialize documents.
func WithRenderer(r *render.Renderer) Option {
	return func(p *Publisher) {
		if r != nil {
			p.renderer = r
		}
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(p *Publisher) {
		if l != nil {
			p.logger = l
		}
	}
}

// New creates a Publisher that writes to bucket through client.
func New(client PutObjectAPI, bucket string, opts ...Option) *Publisher {
	p := &Publisher{
		client:   client,
		bucket:   bucket,
		renderer: render.NewRenderer(render.Config{}),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Key returns the object key a document published under name is stored at.
func (p *Publisher) Key(name string) string {
	return p.prefix + strings.TrimLeft(name, "/")
}

// Publish renders doc and uploads it under key.
func (p *Publisher) Publish(ctx context.Context, key string, doc render.Document) (Result, error) {
	if p.bucket == "" {
		return Result{}, ErrNoBucket
	}
	if strings.TrimLeft(key, "/") == "" {
		return Result{}, ErrEmptyKey
	}
	full := p.Key(key)
	body := p.renderer.RenderDocument(doc)

	input := &s3.PutObjectInput{
		Bucket:        aws.String(p.bucket),
		Key:           aws.String(full),
		Body:          strings.NewReader(body),
		ContentType:   aws.String(ContentType),
		ContentLength: aws.Int64(int64(len(body))),
		Metadata:      map[string]string{"generator": "funhtml"},
	}
	if p.cacheControl != "" {
		input.CacheControl = aws.String(p.cacheControl)
	}

	out, err := p.client.PutObject(ctx, input)
	if err != nil {
		return Result{}, fmt.Errorf("publish %s: %w", full, err)
	}

	res := Result{
		Bucket: p.bucket,
		Key:    full,
		Size:   int64(len(body)),
	}
	if out != nil {
		res.ETag = strings.Trim(aws.ToString(out.ETag), `"`)
	}
	p.logger.Debug("published", "bucket", p.bucket, "key", full, "bytes", res.Size)
	return res, nil
}

// PublishAll publishes docs in key order. It stops at the first failure
// and returns the results uploaded so far along with the error.
func (p *Publisher) PublishAll(ctx context.Context, docs map[string]render.Document) ([]Result, error) {
	results := make([]Result, 0, len(docs))
	for _, key := range slices.Sorted(maps.Keys(docs)) {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		res, err := p.Publish(ctx, key, docs[key])
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}
