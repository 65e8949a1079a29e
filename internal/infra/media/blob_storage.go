// Package media stores uploaded files in a gocloud.dev blob bucket.
package media

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"quill/config"
	"quill/internal/domain/lifecycle"
	"quill/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket drivers selected by the configured bucket URL scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/s3blob"
)

// blobStorage implements service.MediaStorage on a gocloud bucket. The same
// code serves local disk, GCS or S3 depending on the configured URL.
type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and ties it to the application lifetime.
func New(params Params) (service.MediaStorage, error) {
	cfg := params.Config.Media
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("media bucket URL must be provided")
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open media bucket")
	}

	storage := &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return storage.Close()
		},
	})

	params.Logger.Info("Media bucket opened", slog.String("bucket", cfg.BucketURL))

	return storage, nil
}

// Upload writes the object under the given key and returns its public URL.
func (s *blobStorage) Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error) {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "failed to open bucket writer")
	}

	if _, err := io.Copy(w, body); err != nil {
		w.Close()

		return "", errors.Wrap(err, "failed to write media object")
	}

	if err := w.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize media object")
	}

	return s.publicBaseURL + "/" + key, nil
}

// Close releases the bucket handle.
func (s *blobStorage) Close() error {
	return errors.WithStack(s.bucket.Close())
}
