package storage_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"cs2-localizer/core/storage"
	"cs2-localizer/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type failingReader struct{ err error }

func (r failingReader) Read([]byte) (int, error) { return 0, r.err }
func (r failingReader) Close() error             { return nil }

func TestEnsureBucket(t *testing.T) {
	ctx := context.Background()

	t.Run("Exists", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", ctx, "b").Return(true, nil)
		require.NoError(t, storage.EnsureBucket(ctx, m, "b"))
		m.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Creates", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", ctx, "b").Return(false, nil)
		m.On("MakeBucket", ctx, "b", mock.Anything).Return(nil)
		require.NoError(t, storage.EnsureBucket(ctx, m, "b"))
		m.AssertExpectations(t)
	})

	t.Run("CheckFails", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", ctx, "b").Return(false, assert.AnError)
		assert.ErrorIs(t, storage.EnsureBucket(ctx, m, "b"), assert.AnError)
	})
}

func TestWriteObject(t *testing.T) {
	ctx := context.Background()
	m := new(mocks.Client)
	m.On("PutObject", ctx, "b", "translated/stickers.json", mock.Anything, int64(2), mock.MatchedBy(func(o minio.PutObjectOptions) bool {
		return o.ContentType == "application/json"
	})).Return(minio.UploadInfo{}, nil)

	require.NoError(t, storage.WriteObject(ctx, m, "b", "translated/stickers.json", []byte("[]"), "application/json"))
	m.AssertExpectations(t)
}

func TestReadObject(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("GetObject", ctx, "b", "k", mock.Anything).Return(io.NopCloser(bytes.NewReader([]byte("[1]"))), nil)
		data, err := storage.ReadObject(ctx, m, "b", "k")
		require.NoError(t, err)
		assert.Equal(t, "[1]", string(data))
	})

	t.Run("NoSuchKey", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("GetObject", ctx, "b", "k", mock.Anything).Return(failingReader{err: minio.ErrorResponse{Code: "NoSuchKey"}}, nil)
		_, err := storage.ReadObject(ctx, m, "b", "k")
		assert.ErrorIs(t, err, storage.ErrObjectNotFound)
	})

	t.Run("GetFails", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("GetObject", ctx, "b", "k", mock.Anything).Return(nil, errors.New("boom"))
		_, err := storage.ReadObject(ctx, m, "b", "k")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, storage.ErrObjectNotFound)
	})
}

func TestKey(t *testing.T) {
	assert.Equal(t, "skins.json", storage.Key("", "skins.json"))
	assert.Equal(t, "translation_cache/skins.json", storage.Key("translation_cache/", "skins.json"))
}
