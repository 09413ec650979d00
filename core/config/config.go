package config

import (
	"reflect"
	"strings"

	"cs2-localizer/core/database"
	"cs2-localizer/core/dataset"
	"cs2-localizer/core/logger"
	"cs2-localizer/core/server"
	"cs2-localizer/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// AppConfig holds the translation file locations and the reference dataset endpoint.
type AppConfig struct {
	// InputDir holds the English export files (agents.json, skins.json, ...).
	InputDir string `mapstructure:"input_dir" default:"."`
	// OutputDir receives the translated files.
	OutputDir string `mapstructure:"output_dir" default:"translated"`
	// APIBaseURL is the base URL of the localized reference datasets.
	APIBaseURL string `mapstructure:"api_base_url" default:"https://raw.githubusercontent.com/ByMykel/CSGO-API/main/public/api/zh-CN/"`
	// TimeoutSeconds bounds each dataset download.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// App holds the translation paths and dataset endpoint.
	App AppConfig `mapstructure:"app"`
	// Cache holds configuration for the reference dataset cache.
	Cache dataset.CacheConfig `mapstructure:"cache"`
	// Server holds configuration for the HTTP server.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the object storage (e.g., S3, Minio) used by the
	// s3 cache driver and for publishing translations.
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the run history database.
	Database database.Config `mapstructure:"database"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env file if it exists
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. SERVER_PORT -> server.port)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
