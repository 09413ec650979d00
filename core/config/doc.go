// Package config provides configuration management for the localizer.
//
// It utilizes Viper for loading configuration from environment variables and an optional
// .env file. Defaults come from the `default` struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - App: input/output directories, dataset base URL and download timeout (APP_*)
//   - Cache: dataset cache driver, directory and object prefix (CACHE_*)
//   - Server: HTTP port and API key (SERVER_*)
//   - Database: run history database (DATABASE_*)
//   - Storage: S3/MinIO credentials, bucket and upload switch (STORAGE_*)
//   - Log: level, format and run log directory (LOG_*)
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.App.OutputDir)
package config
