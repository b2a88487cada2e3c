package storage

import (
	"context"
	"io"
)

// Uploader stores a blob and returns its public URL. The S3 implementation
// lives in s3.go; tests use FakeUploader.
type Uploader interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

type FakeUploader struct {
	UploadFn func(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

func (f *FakeUploader) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	if f.UploadFn != nil {
		return f.UploadFn(ctx, key, contentType, body)
	}
	panic("unexpected Upload")
}
