// Package s3 loads articles from an S3 bucket.
package s3

import (
	"bytes"
	"context"
	"encoding/base64"
	"io"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"golang.org/x/sync/singleflight"

	"github.com/insightgrid/insightgrid/pkg/loader"
	"github.com/insightgrid/insightgrid/pkg/loader/file"
)

// S3Loader loads article content from an S3 bucket using the AWS SDK v2.
// The source value is the object key; text extraction follows the same
// extension dispatch as local files. Works against S3-compatible storage
// (MinIO) via a custom endpoint.
type S3Loader struct {
	bucket string
	client *s3.Client

	cache   map[string][]byte
	cacheMu sync.RWMutex
	group   singleflight.Group
}

// NewS3LoaderParams defines the configuration for creating a new S3Loader.
type NewS3LoaderParams struct {
	Bucket    string
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
}

// NewS3Loader creates a new S3Loader with static credentials and the
// given endpoint/region.
func NewS3Loader(ctx context.Context, params NewS3LoaderParams) (*S3Loader, error) {
	cfg, err := config.LoadDefaultConfig(
		ctx,
		config.WithRegion(params.Region),
		config.WithBaseEndpoint(params.Endpoint),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			params.AccessKey,
			params.SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, err
	}

	return NewS3LoaderWithClient(params.Bucket, s3.NewFromConfig(cfg)), nil
}

// NewS3LoaderWithClient creates a new S3Loader using an existing
// s3.Client, for callers that already hold a preconfigured AWS client.
func NewS3LoaderWithClient(bucket string, client *s3.Client) *S3Loader {
	return &S3Loader{
		bucket: bucket,
		client: client,
		cache:  make(map[string][]byte),
	}
}

// LoadText retrieves an object from the bucket and extracts its text
// content based on the key extension. Results are cached, and concurrent
// requests for the same key share a single fetch.
func (l *S3Loader) LoadText(ctx context.Context, src loader.Source) ([]byte, error) {
	cacheKey := loader.CacheKey(src)

	l.cacheMu.RLock()
	if cached, ok := l.cache[cacheKey]; ok {
		l.cacheMu.RUnlock()
		return cached, nil
	}
	l.cacheMu.RUnlock()

	result, err, _ := l.group.Do(cacheKey, func() (any, error) {
		l.cacheMu.RLock()
		if cached, ok := l.cache[cacheKey]; ok {
			l.cacheMu.RUnlock()
			return cached, nil
		}
		l.cacheMu.RUnlock()

		content, err := l.getObject(ctx, src)
		if err != nil {
			return nil, err
		}

		text, err := file.ExtractText(src, content)
		if err != nil {
			return nil, err
		}

		l.cacheMu.Lock()
		l.cache[cacheKey] = text
		l.cacheMu.Unlock()

		return text, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]byte), nil
}

// LoadBase64 retrieves an object and returns it encoded as base64 with a
// MIME prefix derived from the key extension.
func (l *S3Loader) LoadBase64(ctx context.Context, src loader.Source) (loader.Base64Content, error) {
	content, err := l.getObject(ctx, src)
	if err != nil {
		return loader.Base64Content{}, err
	}

	return loader.Base64Content{
		Base64:      base64.StdEncoding.EncodeToString(content),
		ContentType: loader.Base64Prefix(src.Value),
	}, nil
}

// InvalidateCache removes a single key from the cache.
func (l *S3Loader) InvalidateCache(src loader.Source) {
	l.cacheMu.Lock()
	delete(l.cache, loader.CacheKey(src))
	l.cacheMu.Unlock()
}

// ClearCache removes all cached content.
func (l *S3Loader) ClearCache() {
	l.cacheMu.Lock()
	l.cache = make(map[string][]byte)
	l.cacheMu.Unlock()
}

func (l *S3Loader) getObject(ctx context.Context, src loader.Source) ([]byte, error) {
	out, err := l.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(l.bucket),
		Key:    aws.String(src.Value),
	})
	if err != nil {
		return nil, &loader.AcquisitionError{
			Source: src,
			Reason: loader.ReasonUnreachable,
			Detail: "fetching object",
			Err:    err,
		}
	}
	defer out.Body.Close()

	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, out.Body); err != nil {
		return nil, &loader.AcquisitionError{
			Source: src,
			Reason: loader.ReasonUnreachable,
			Detail: "reading object body",
			Err:    err,
		}
	}

	return buf.Bytes(), nil
}
