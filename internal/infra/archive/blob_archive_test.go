package archive

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"columbus/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"gocloud.dev/blob/memblob"
)

func TestBlobArchive_PutWritesObjectWithChecksum(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()
	archive := newBlobArchive(bucket, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()

	require.NoError(t, archive.Put(ctx, "abc.json", []byte(`{"days":[]}`), "application/json"))

	data, err := bucket.ReadAll(ctx, "abc.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"days":[]}`, string(data))

	attrs, err := bucket.Attributes(ctx, "abc.json")
	require.NoError(t, err)
	assert.Equal(t, "application/json", attrs.ContentType)
	assert.Len(t, attrs.Metadata["sha256"], 64)
}

func TestNewArchiveStore_PrefixesKeys(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	store, err := NewArchiveStore(Params{
		Lc:     lc,
		Ctx:    context.Background(),
		Config: &config.Config{Archive: &config.ArchiveConfig{URL: "mem://", Prefix: "generations/"}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	archive, ok := store.(*blobArchive)
	require.True(t, ok)
	require.NoError(t, archive.Put(context.Background(), "it-1.json", []byte("{}"), "application/json"))

	exists, err := archive.bucket.Exists(context.Background(), "it-1.json")
	require.NoError(t, err)
	assert.True(t, exists)
	lc.RequireStart().RequireStop()
}

func TestNewArchiveStore_DisabledWithoutURL(t *testing.T) {
	store, err := NewArchiveStore(Params{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	assert.IsType(t, noopArchive{}, store)
	assert.NoError(t, store.Put(context.Background(), "x", nil, ""))
}

