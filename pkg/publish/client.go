package publish

import (
	"context"
	"errors"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ErrNoCredentials is returned when AWS_ACCESS_KEY_ID or
// AWS_SECRET_ACCESS_KEY is not set.
var ErrNoCredentials = errors.New("publish: AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY must be set")

// NewS3Client builds an S3 client for region using credentials from the
// standard AWS environment variables. A non-empty endpoint selects an
// S3-compatible service (MinIO, R2, LocalStack) with path-style
// addressing.
func NewS3Client(region, endpoint string) (*s3.Client, error) {
	if _, err := envCredentials(context.Background()); err != nil {
		return nil, err
	}
	if region == "" {
		region = os.Getenv("AWS_REGION")
	}
	if region == "" {
		region = "us-east-1"
	}

	cfg := aws.Config{
		Region:      region,
		Credentials: aws.NewCredentialsCache(aws.CredentialsProviderFunc(envCredentials)),
	}
	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

func envCredentials(context.Context) (aws.Credentials, error) {
	id := os.Getenv("AWS_ACCESS_KEY_ID")
	secret := os.Getenv("AWS_SECRET_ACCESS_KEY")
	if id == "" || secret == "" {
		return aws.Credentials{}, ErrNoCredentials
	}
	return aws.Credentials{
		AccessKeyID:     id,
		SecretAccessKey: secret,
		SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
		Source:          "EnvironmentVariables",
	}, nil
}
