package cmd

import (
	"fmt"
	"time"

	"cs2-localizer/core/config"
	"cs2-localizer/core/database"
	"cs2-localizer/core/dataset"
	"cs2-localizer/core/history"
	"cs2-localizer/core/logger"
	"cs2-localizer/core/storage"
	"cs2-localizer/feature/translate"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// app bundles the collaborators shared by the commands.
type app struct {
	cfg     *config.Config
	logger  *zap.Logger
	fs      afero.Fs
	store   storage.Client
	history *history.Repository
	loader  *dataset.Loader
}

type bootstrapOptions struct {
	refresh bool
	// runLog enables the per-run log file.
	runLog bool
	// inputDir and outputDir override the configured directories when set.
	inputDir  string
	outputDir string
}

// bootstrap loads configuration and wires the shared collaborators.
func bootstrap(opts bootstrapOptions) (*app, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if opts.inputDir != "" {
		cfg.App.InputDir = opts.inputDir
	}
	if opts.outputDir != "" {
		cfg.App.OutputDir = opts.outputDir
	}

	logCfg := cfg.Log
	if !opts.runLog {
		logCfg.Dir = ""
	}
	logg, err := logger.New(&logCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	zap.ReplaceGlobals(logg)

	a := &app{cfg: cfg, logger: logg, fs: afero.NewOsFs()}

	dirs := []string{cfg.App.OutputDir}
	if cfg.Cache.Driver != dataset.DriverS3 {
		dirs = append(dirs, cfg.Cache.Dir)
	}
	for _, dir := range dirs {
		if err := a.fs.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	if cfg.Storage.Upload || cfg.Cache.Driver == dataset.DriverS3 {
		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		a.store = store
	}

	// History is optional
	a.history = history.NewRepository(nil)
	if cfg.Database.Enabled {
		if db, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed, history disabled", zap.Error(err))
		} else {
			repo := history.NewRepository(db)
			if err := repo.Migrate(); err != nil {
				logg.Warn("History migration failed, history disabled", zap.Error(err))
			} else {
				a.history = repo
			}
		}
	}

	cache, err := dataset.NewCache(cfg.Cache, a.fs, a.store, cfg.Storage.Bucket)
	if err != nil {
		return nil, err
	}
	fetcher := dataset.NewHTTPFetcher(cfg.App.APIBaseURL, time.Duration(cfg.App.TimeoutSeconds)*time.Second)
	a.loader = dataset.NewLoader(fetcher, cache, logg, dataset.WithRefresh(opts.refresh))

	return a, nil
}

// service builds the translation service.
func (a *app) service() *translate.Service {
	return translate.NewService(a.loader, a.fs, translate.Settings{
		InputDir:  a.cfg.App.InputDir,
		OutputDir: a.cfg.App.OutputDir,
		Upload:    a.cfg.Storage.Upload,
		Bucket:    a.cfg.Storage.Bucket,
	}, a.store, a.history, a.logger)
}
