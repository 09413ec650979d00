package dataset

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"cs2-localizer/core/storage"

	"github.com/spf13/afero"
)

// Cache stores raw dataset bytes between runs.
type Cache interface {
	// Load returns the cached bytes and whether they were present.
	Load(ctx context.Context, name string) ([]byte, bool, error)
	// Store replaces the cached bytes.
	Store(ctx context.Context, name string, data []byte) error
}

// DiskCache keeps datasets as files in a directory.
type DiskCache struct {
	fs  afero.Fs
	dir string
}

// NewDiskCache creates a disk cache rooted at dir.
func NewDiskCache(fs afero.Fs, dir string) *DiskCache {
	return &DiskCache{fs: fs, dir: dir}
}

// Path returns the file that holds the named dataset.
func (c *DiskCache) Path(name string) string {
	return filepath.Join(c.dir, name)
}

// Load implements Cache.
func (c *DiskCache) Load(_ context.Context, name string) ([]byte, bool, error) {
	data, err := afero.ReadFile(c.fs, c.Path(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read cache %s: %w", name, err)
	}
	return data, true, nil
}

// Store implements Cache.
func (c *DiskCache) Store(_ context.Context, name string, data []byte) error {
	if err := c.fs.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}
	if err := afero.WriteFile(c.fs, c.Path(name), data, 0o644); err != nil {
		return fmt.Errorf("failed to write cache %s: %w", name, err)
	}
	return nil
}

// ObjectCache keeps datasets in an object store bucket.
type ObjectCache struct {
	client storage.Client
	bucket string
	prefix string
}

// NewObjectCache creates a bucket-backed cache under prefix.
func NewObjectCache(client storage.Client, bucket, prefix string) *ObjectCache {
	return &ObjectCache{client: client, bucket: bucket, prefix: prefix}
}

// Load implements Cache.
func (c *ObjectCache) Load(ctx context.Context, name string) ([]byte, bool, error) {
	data, err := storage.ReadObject(ctx, c.client, c.bucket, storage.Key(c.prefix, name))
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

// Store implements Cache.
func (c *ObjectCache) Store(ctx context.Context, name string, data []byte) error {
	if err := storage.EnsureBucket(ctx, c.client, c.bucket); err != nil {
		return err
	}
	return storage.WriteObject(ctx, c.client, c.bucket, storage.Key(c.prefix, name), data, "application/json")
}

// NewCache builds the cache selected by cfg. The s3 driver needs a storage client.
func NewCache(cfg CacheConfig, fs afero.Fs, client storage.Client, bucket string) (Cache, error) {
	switch cfg.Driver {
	case DriverDisk, "":
		return NewDiskCache(fs, cfg.Dir), nil
	case DriverS3:
		if client == nil {
			return nil, errors.New("s3 cache requires a storage client")
		}
		return NewObjectCache(client, bucket, cfg.Prefix), nil
	default:
		return nil, fmt.Errorf("unknown cache driver %q", cfg.Driver)
	}
}
