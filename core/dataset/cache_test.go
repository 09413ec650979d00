package dataset

import (
	"bytes"
	"context"
	"io"
	"testing"

	"cs2-localizer/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type errReadCloser struct{ err error }

func (r errReadCloser) Read([]byte) (int, error) { return 0, r.err }
func (r errReadCloser) Close() error             { return nil }

func TestDiskCache(t *testing.T) {
	ctx := context.Background()
	fs := afero.NewMemMapFs()
	c := NewDiskCache(fs, "translation_cache")

	_, ok, err := c.Load(ctx, "agents.json")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Store(ctx, "agents.json", []byte("[]")))

	data, ok, err := c.Load(ctx, "agents.json")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "[]", string(data))

	exists, err := afero.Exists(fs, "translation_cache/agents.json")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestObjectCache(t *testing.T) {
	ctx := context.Background()

	t.Run("Hit", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("GetObject", ctx, "bucket", "translation_cache/skins.json", mock.Anything).
			Return(io.NopCloser(bytes.NewReader([]byte("[1]"))), nil)

		data, ok, err := NewObjectCache(m, "bucket", "translation_cache/").Load(ctx, "skins.json")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "[1]", string(data))
	})

	t.Run("Miss", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("GetObject", ctx, "bucket", "translation_cache/skins.json", mock.Anything).
			Return(errReadCloser{err: minio.ErrorResponse{Code: "NoSuchKey"}}, nil)

		_, ok, err := NewObjectCache(m, "bucket", "translation_cache/").Load(ctx, "skins.json")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Store", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", ctx, "bucket").Return(true, nil)
		m.On("PutObject", ctx, "bucket", "translation_cache/skins.json", mock.Anything, int64(2), mock.Anything).
			Return(minio.UploadInfo{}, nil)

		require.NoError(t, NewObjectCache(m, "bucket", "translation_cache/").Store(ctx, "skins.json", []byte("[]")))
		m.AssertExpectations(t)
	})
}

func TestNewCache(t *testing.T) {
	fs := afero.NewMemMapFs()

	c, err := NewCache(CacheConfig{Driver: DriverDisk, Dir: "c"}, fs, nil, "")
	require.NoError(t, err)
	assert.IsType(t, &DiskCache{}, c)

	c, err = NewCache(CacheConfig{Driver: DriverS3, Prefix: "p/"}, fs, new(mocks.Client), "b")
	require.NoError(t, err)
	assert.IsType(t, &ObjectCache{}, c)

	_, err = NewCache(CacheConfig{Driver: DriverS3}, fs, nil, "b")
	assert.Error(t, err)

	_, err = NewCache(CacheConfig{Driver: "redis"}, fs, nil, "")
	assert.Error(t, err)
}
