package translate

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"cs2-localizer/core/history"
	"cs2-localizer/core/jsonio"
	"cs2-localizer/core/match"
	"cs2-localizer/core/storage"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// progressEvery is the record interval between progress log entries.
const progressEvery = 100

// UploadPrefix is the object key prefix of published translations.
const UploadPrefix = "translated"

// DatasetLoader provides reference records by dataset name.
type DatasetLoader interface {
	Load(ctx context.Context, name string) ([]match.Record, error)
}

// Settings holds the file locations and publishing options of a Service.
type Settings struct {
	InputDir  string
	OutputDir string
	// Upload publishes each output file to Bucket under UploadPrefix.
	Upload bool
	Bucket string
}

// Service translates categories.
type Service struct {
	datasets DatasetLoader
	fs       afero.Fs
	settings Settings
	store    storage.Client
	history  *history.Repository
	logger   *zap.Logger

	mu      sync.Mutex
	engines map[string]*match.Engine
}

// NewService creates a translation service. store may be nil when uploads are disabled,
// and repo may be nil when history is disabled.
func NewService(datasets DatasetLoader, fs afero.Fs, settings Settings, store storage.Client, repo *history.Repository, logger *zap.Logger) *Service {
	return &Service{
		datasets: datasets,
		fs:       fs,
		settings: settings,
		store:    store,
		history:  repo,
		logger:   logger,
		engines:  make(map[string]*match.Engine),
	}
}

// History returns the run history repository.
func (s *Service) History() *history.Repository {
	return s.history
}

// Engine returns the matching engine of cat, loading its dataset on first use.
func (s *Service) Engine(ctx context.Context, cat Category) (*match.Engine, error) {
	s.mu.Lock()
	engine, ok := s.engines[cat.Name]
	s.mu.Unlock()
	if ok {
		return engine, nil
	}

	refs, err := s.datasets.Load(ctx, cat.Dataset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cat.Name, err)
	}

	engine = match.NewEngine(cat.Table(), refs)
	s.logger.Debug("Indexes built",
		zap.String("category", cat.Name),
		zap.Int("references", len(refs)),
		zap.Any("sizes", engine.Index().Sizes()),
	)

	s.mu.Lock()
	if existing, ok := s.engines[cat.Name]; ok {
		engine = existing
	} else {
		s.engines[cat.Name] = engine
	}
	s.mu.Unlock()
	return engine, nil
}

// Run translates cats in order and summarizes the outcome. Failed categories do not stop
// the run.
func (s *Service) Run(ctx context.Context, cats []Category) Summary {
	start := time.Now()
	summary := Summary{RunID: uuid.NewString(), Total: len(cats)}

	for _, cat := range cats {
		report := s.RunCategory(ctx, cat, summary.RunID)
		if report.Success() {
			summary.Succeeded++
		}
		summary.Reports = append(summary.Reports, report)
	}

	summary.Elapsed = time.Since(start)
	return summary
}

// RunCategory translates every input file of cat.
func (s *Service) RunCategory(ctx context.Context, cat Category, runID string) CategoryReport {
	start := time.Now()
	report := CategoryReport{Category: cat.Name, Label: cat.Label}
	l := s.logger.With(zap.String("category", cat.Name), zap.String("run_id", runID))
	l.Info("Translating category")

	var present []Input
	for _, in := range cat.Inputs {
		path := filepath.Join(s.settings.InputDir, in.File)
		exists, err := afero.Exists(s.fs, path)
		if err != nil {
			report.Files = append(report.Files, FileReport{Input: in.File, Err: fmt.Errorf("failed to stat %s: %w", path, err)})
			continue
		}
		if !exists {
			l.Warn("Input file not found", zap.String("file", path))
			report.Files = append(report.Files, FileReport{Input: in.File, Err: fmt.Errorf("%w: %s", ErrInputMissing, path), Skipped: true})
			continue
		}
		present = append(present, in)
	}

	if err := inputsError(cat, present, report.Files); err != nil {
		return s.finishCategory(ctx, l, report, err, runID, start)
	}

	engine, err := s.Engine(ctx, cat)
	if err != nil {
		return s.finishCategory(ctx, l, report, err, runID, start)
	}

	var firstErr error
	for _, in := range present {
		fr := s.translateFile(ctx, l, engine, in, runID)
		report.Files = append(report.Files, fr)
		if fr.Err != nil && firstErr == nil {
			firstErr = fr.Err
		}
	}

	report.Duration = time.Since(start)
	report.Err = firstErr
	if firstErr != nil {
		l.Error("Category failed", zap.Error(firstErr))
	} else {
		l.Info("Category translated", zap.Int("translated", report.Translated()), zap.Int("total", report.Total()))
	}
	return report
}

// inputsError decides whether the files found are enough to translate cat.
func inputsError(cat Category, present []Input, files []FileReport) error {
	for _, f := range files {
		if f.Err != nil && !f.Skipped {
			return f.Err
		}
	}
	if len(present) == 0 || (!cat.AnyInput && len(present) < len(cat.Inputs)) {
		return fmt.Errorf("%s: %w", cat.Name, ErrInputMissing)
	}
	return nil
}

func (s *Service) finishCategory(ctx context.Context, l *zap.Logger, report CategoryReport, err error, runID string, start time.Time) CategoryReport {
	report.Err = err
	report.Duration = time.Since(start)
	l.Error("Category failed", zap.Error(err))

	inputs := make([]string, 0, len(report.Files))
	for _, f := range report.Files {
		inputs = append(inputs, f.Input)
	}
	s.record(ctx, &history.Run{
		RunID:      runID,
		Category:   report.Category,
		InputFile:  strings.Join(inputs, ","),
		Source:     history.SourceCLI,
		Error:      err.Error(),
		DurationMS: report.Duration.Milliseconds(),
	})
	return report
}

func (s *Service) translateFile(ctx context.Context, l *zap.Logger, engine *match.Engine, in Input, runID string) (fr FileReport) {
	start := time.Now()
	inPath := filepath.Join(s.settings.InputDir, in.File)
	outPath := filepath.Join(s.settings.OutputDir, in.File)
	fr = FileReport{Input: in.File, Output: outPath, Glove: in.Glove}
	l = l.With(zap.String("file", in.File))

	defer func() {
		fr.Duration = time.Since(start)
		run := &history.Run{
			RunID:      runID,
			Category:   engine.Table().Category,
			InputFile:  in.File,
			Source:     history.SourceCLI,
			Total:      fr.Stats.Total,
			Translated: fr.Stats.Translated,
			Success:    fr.Err == nil,
			DurationMS: fr.Duration.Milliseconds(),
		}
		if fr.Err != nil {
			run.Error = fr.Err.Error()
		}
		s.record(ctx, run)
	}()

	recs, err := jsonio.ReadRecords(s.fs, inPath)
	if err != nil {
		fr.Err = err
		return fr
	}
	l.Info("Loaded input", zap.Int("records", len(recs)))

	out, stats := engine.Apply(recs, match.Options{Glove: in.Glove}, progressLogger(l))
	fr.Stats = stats

	data, err := jsonio.WriteRecords(s.fs, outPath, out)
	if err != nil {
		fr.Err = err
		return fr
	}

	l.Info("Translation written",
		zap.String("output", outPath),
		zap.Int("total", stats.Total),
		zap.Int("translated", stats.Translated),
		zap.Int("unmatched", stats.Unmatched),
		zap.Int("skipped", stats.Skipped),
		zap.Any("strategies", stats.ByStrategy),
	)

	if s.settings.Upload {
		fr.Uploaded = s.publish(ctx, l, in.File, data)
	}
	return fr
}

// publish uploads an output file. Failures are logged and leave the local file in place.
func (s *Service) publish(ctx context.Context, l *zap.Logger, file string, data []byte) bool {
	if s.store == nil {
		l.Warn("Upload enabled without a storage client")
		return false
	}
	if err := storage.EnsureBucket(ctx, s.store, s.settings.Bucket); err != nil {
		l.Warn("Upload failed", zap.Error(err))
		return false
	}
	key := storage.Key(UploadPrefix, file)
	if err := storage.WriteObject(ctx, s.store, s.settings.Bucket, key, data, "application/json"); err != nil {
		l.Warn("Upload failed", zap.Error(err))
		return false
	}
	l.Info("Translation uploaded", zap.String("bucket", s.settings.Bucket), zap.String("key", key))
	return true
}

func progressLogger(l *zap.Logger) match.ProgressFunc {
	return func(done, total, translated int) {
		if done%progressEvery == 0 || done == total {
			l.Debug("Progress", zap.Int("done", done), zap.Int("total", total), zap.Int("translated", translated))
		}
	}
}

// TranslateRecords translates an uploaded array for cat and records the run.
func (s *Service) TranslateRecords(ctx context.Context, cat Category, recs []match.Record, opts match.Options) ([]match.Record, match.Stats, error) {
	start := time.Now()
	run := &history.Run{
		RunID:     uuid.NewString(),
		Category:  cat.Name,
		InputFile: "upload",
		Source:    history.SourceAPI,
	}

	engine, err := s.Engine(ctx, cat)
	if err != nil {
		run.Error = err.Error()
		run.DurationMS = time.Since(start).Milliseconds()
		s.record(ctx, run)
		return nil, match.Stats{}, err
	}

	out, stats := engine.Apply(recs, opts)
	run.Total = stats.Total
	run.Translated = stats.Translated
	run.Success = true
	run.DurationMS = time.Since(start).Milliseconds()
	s.record(ctx, run)
	return out, stats, nil
}

func (s *Service) record(ctx context.Context, run *history.Run) {
	if !s.history.Enabled() {
		return
	}
	if err := s.history.Record(ctx, run); err != nil {
		s.logger.Warn("Failed to record run history", zap.Error(err))
	}
}

// IsInputError reports whether err is caused by the user's files rather than the dataset.
func IsInputError(err error) bool {
	return errors.Is(err, ErrInputMissing) || errors.Is(err, ErrMalformedInput)
}
