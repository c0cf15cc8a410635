package imagehost

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/mx-space/portfolio/internal/config"
)

// S3 stores objects in an S3-compatible bucket.
type S3 struct {
	client    *s3.Client
	bucket    string
	prefix    string
	publicURL string
	endpoint  *url.URL
	pathStyle bool
}

func NewS3(_ context.Context, opts config.S3Config) (*S3, error) {
	bucket := strings.TrimSpace(opts.Bucket)
	region := strings.TrimSpace(opts.Region)
	if bucket == "" || region == "" || opts.AccessKeyID == "" || opts.SecretAccessKey == "" {
		return nil, fmt.Errorf("incomplete s3 config: bucket/region/access_key_id/secret_access_key are required")
	}

	endpoint := strings.TrimSpace(opts.Endpoint)
	if endpoint == "" {
		endpoint = fmt.Sprintf("https://s3.%s.amazonaws.com", region)
	}
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}
	parsed, err := url.Parse(strings.TrimSuffix(endpoint, "/"))
	if err != nil || parsed.Host == "" {
		return nil, fmt.Errorf("invalid s3 endpoint: %s", endpoint)
	}
	// custom endpoints (MinIO, R2) rarely support virtual-hosted buckets
	pathStyle := opts.PathStyle || opts.Endpoint != ""

	client := s3.New(s3.Options{
		Region:       region,
		Credentials:  credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, ""),
		BaseEndpoint: aws.String(parsed.String()),
		UsePathStyle: pathStyle,
	})

	return &S3{
		client:    client,
		bucket:    bucket,
		prefix:    strings.Trim(opts.Prefix, "/"),
		publicURL: strings.TrimRight(opts.PublicURL, "/"),
		endpoint:  parsed,
		pathStyle: pathStyle,
	}, nil
}

func (b *S3) Put(ctx context.Context, key, contentType string, payload []byte) (string, error) {
	key = normalizeObjectKey(b.prefix + "/" + key)
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err := b.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(b.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(payload),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(payload))),
	})
	if err != nil {
		return "", fmt.Errorf("s3 put %s: %w", key, err)
	}
	return b.objectURL(key), nil
}

func (b *S3) objectURL(key string) string {
	if b.publicURL != "" {
		return b.publicURL + "/" + key
	}
	base := strings.TrimSuffix(b.endpoint.Path, "/")
	if b.pathStyle {
		return b.endpoint.Scheme + "://" + b.endpoint.Host + base + "/" + b.bucket + "/" + key
	}
	return b.endpoint.Scheme + "://" + b.bucket + "." + b.endpoint.Host + base + "/" + key
}
