package dataset

// CacheConfig holds configuration for the reference dataset cache.
type CacheConfig struct {
	// Driver selects the cache backend (disk, s3).
	Driver string `mapstructure:"driver" default:"disk"`
	// Dir is the local cache directory used by the disk driver.
	Dir string `mapstructure:"dir" default:"translation_cache"`
	// Prefix is the object key prefix used by the s3 driver.
	Prefix string `mapstructure:"prefix" default:"translation_cache/"`
}

const (
	DriverDisk = "disk"
	DriverS3   = "s3"
)
