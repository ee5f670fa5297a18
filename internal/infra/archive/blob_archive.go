// Package archive stores raw provider responses in a gocloud.dev blob bucket.
package archive

import (
	"context"
	"log/slog"

	"columbus/config"
	"columbus/internal/domain/service"
	"columbus/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets for local development
	_ "gocloud.dev/blob/memblob"  // mem:// buckets for tests
	_ "gocloud.dev/blob/s3blob"   // s3:// buckets in deployed environments
)

type blobArchive struct {
	bucket *blob.Bucket
	logger *slog.Logger
}

type noopArchive struct{}

func (noopArchive) Put(context.Context, string, []byte, string) error {
	return nil
}

// Params holds dependencies for the archive, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewArchiveStore opens the configured bucket. Without a URL archiving is disabled.
func NewArchiveStore(params Params) (service.ArchiveStore, error) {
	cfg := params.Config.Archive
	if cfg == nil || cfg.URL == "" {
		params.Logger.Info("Archive not configured, provider responses will not be kept")

		return noopArchive{}, nil
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.URL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open archive bucket %s", cfg.URL)
	}
	if cfg.Prefix != "" {
		bucket = blob.PrefixedBucket(bucket, cfg.Prefix)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return newBlobArchive(bucket, params.Logger), nil
}

func newBlobArchive(bucket *blob.Bucket, logger *slog.Logger) *blobArchive {
	return &blobArchive{bucket: bucket, logger: logger}
}

func (a *blobArchive) Put(ctx context.Context, key string, data []byte, contentType string) error {
	checksum := util.Checksum(data)
	err := a.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{
		ContentType: contentType,
		Metadata:    map[string]string{"sha256": checksum},
	})
	if err != nil {
		return errors.Wrapf(err, "failed to archive %s", key)
	}

	a.logger.DebugContext(ctx, "Archived provider response",
		slog.String("key", key),
		slog.String("size", util.FormatBytes(int64(len(data)))),
		slog.String("sha256", checksum),
	)

	return nil
}
