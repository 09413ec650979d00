package storage

// Config points at an S3-compatible endpoint. It is only dialed when the dataset cache
// driver is "s3" or Upload is set.
type Config struct {
	// Endpoint may carry an http:// or https:// scheme; it is stripped.
	Endpoint  string `mapstructure:"endpoint" default:"localhost:9000"`
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	UseSSL    bool   `mapstructure:"use_ssl" default:"false"`
	// Bucket holds cached datasets and published translations.
	Bucket         string `mapstructure:"bucket" default:"cs2-localizer"`
	Region         string `mapstructure:"region" default:""`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" default:"30"`
	// Upload publishes every translated file to the bucket after it is written locally.
	Upload bool `mapstructure:"upload" default:"false"`
}
