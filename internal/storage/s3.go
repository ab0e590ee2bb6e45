// Package storage uploads evidence files and hands back opaque reference
// URLs. The lifecycle store only ever sees the returned strings.
package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"solidaria/internal/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type EvidenceStore struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

// NewEvidenceStore wraps an S3 client. baseURL overrides the default
// public URL prefix (e.g. a CDN distribution); it may be empty.
func NewEvidenceStore(client *s3.Client, bucket, baseURL string) *EvidenceStore {
	return &EvidenceStore{
		client:  client,
		bucket:  bucket,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// Upload stores the file under a salted key and returns its public URL.
func (e *EvidenceStore) Upload(ctx context.Context, filename, contentType string, body io.Reader) (string, error) {
	key := fmt.Sprintf("evidence/%s-%s", utils.NanoIDSize(12), sanitizeFilename(filename))

	_, err := e.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(e.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload evidence %s: %w", key, err)
	}

	return e.publicURL(key), nil
}

func (e *EvidenceStore) publicURL(key string) string {
	if e.baseURL != "" {
		return e.baseURL + "/" + key
	}
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", e.bucket, key)
}

func sanitizeFilename(name string) string {
	name = path.Base(name)
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '-'
		}
	}, name)

	if name == "" || name == "." {
		return "upload"
	}
	return name
}
