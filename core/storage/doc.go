// Package storage talks to an S3-compatible object store through the MinIO client.
//
// The localizer keeps two kinds of objects there: cached copies of the remote datasets and,
// when publishing is enabled, the translated output files. AWS S3 and self-hosted MinIO both work.
//
// # Client Interface
//
// Client exposes only the four calls the localizer makes, so tests substitute the testify mock
// in core/storage/mocks.
//
// EnsureBucket, WriteObject and ReadObject wrap a Client. ReadObject maps a missing key to
// ErrObjectNotFound.
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	err = storage.WriteObject(ctx, client, cfg.Storage.Bucket, "translated/skins.json", data, "application/json")
package storage
