// Package media stores dish images and videos in a gocloud.dev blob bucket.
package media

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"aunerarroz/config"
	"aunerarroz/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	_ "gocloud.dev/blob/s3blob"   // s3:// buckets
	"gocloud.dev/gcerrors"
)

const (
	defaultBucketURL = "mem://"
	cacheControl     = "public, max-age=31536000, immutable"
)

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// Params holds dependencies for MediaStorage, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the bucket named by media.bucketUrl. Without one an in-memory
// bucket is used, which loses uploads on restart.
func New(params Params) (service.MediaStorage, error) {
	bucketURL, publicBaseURL := defaultBucketURL, ""
	if cfg := params.Config.Media; cfg != nil {
		if cfg.BucketURL != "" {
			bucketURL = cfg.BucketURL
		}
		publicBaseURL = cfg.PublicBaseURL
	}
	if bucketURL == defaultBucketURL {
		params.Logger.Warn("Media bucket not configured, uploads are kept in memory")
	}

	bucket, err := blob.OpenBucket(params.Ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open media bucket %s", bucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})

	return NewBlobStorage(bucket, publicBaseURL), nil
}

// NewBlobStorage wraps an opened bucket. Returned URLs are publicBaseURL + "/" + key.
func NewBlobStorage(bucket *blob.Bucket, publicBaseURL string) service.MediaStorage {
	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

func (s *blobStorage) Upload(ctx context.Context, key string, contentType string, r io.Reader) (string, error) {
	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType:  contentType,
		CacheControl: cacheControl,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to open media writer")
	}

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()

		return "", errors.Wrap(err, "failed to write media object")
	}

	if err := w.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize media object")
	}

	return s.publicBaseURL + "/" + key, nil
}

// Delete is idempotent: a missing object is not an error.
func (s *blobStorage) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrap(err, "failed to delete media object")
	}

	return nil
}
