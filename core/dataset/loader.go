package dataset

import (
	"context"
	"fmt"
	"sync"

	"cs2-localizer/core/match"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Loader resolves datasets through the cache and the fetcher.
type Loader struct {
	fetcher Fetcher
	cache   Cache
	logger  *zap.Logger
	refresh bool

	group singleflight.Group
	mu    sync.RWMutex
	memo  map[string][]match.Record
}

// Option configures a Loader.
type Option func(*Loader)

// WithRefresh ignores cached copies on the first load of each dataset.
func WithRefresh(refresh bool) Option {
	return func(l *Loader) {
		l.refresh = refresh
	}
}

// NewLoader creates a loader. A nil cache disables caching.
func NewLoader(fetcher Fetcher, cache Cache, logger *zap.Logger, opts ...Option) *Loader {
	l := &Loader{
		fetcher: fetcher,
		cache:   cache,
		logger:  logger,
		memo:    make(map[string][]match.Record),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load returns the records of the named dataset.
// Concurrent calls for the same name share a single cache read or download.
func (l *Loader) Load(ctx context.Context, name string) ([]match.Record, error) {
	l.mu.RLock()
	recs, ok := l.memo[name]
	l.mu.RUnlock()
	if ok {
		return recs, nil
	}

	v, err, _ := l.group.Do(name, func() (any, error) {
		recs, err := l.load(ctx, name)
		if err != nil {
			return nil, err
		}
		l.mu.Lock()
		l.memo[name] = recs
		l.mu.Unlock()
		return recs, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]match.Record), nil
}

// Warm downloads the named dataset and stores it in the cache, bypassing any cached copy.
func (l *Loader) Warm(ctx context.Context, name string) (int, error) {
	recs, err := l.download(ctx, name)
	if err != nil {
		return 0, err
	}
	l.mu.Lock()
	l.memo[name] = recs
	l.mu.Unlock()
	return len(recs), nil
}

func (l *Loader) load(ctx context.Context, name string) ([]match.Record, error) {
	if l.cache != nil && !l.refresh {
		data, ok, err := l.cache.Load(ctx, name)
		switch {
		case err != nil:
			l.logger.Warn("Dataset cache unreadable, downloading", zap.String("dataset", name), zap.Error(err))
		case ok:
			recs, parseErr := match.ParseRecords(data)
			if parseErr == nil {
				l.logger.Debug("Using cached dataset", zap.String("dataset", name), zap.Int("records", len(recs)))
				return recs, nil
			}
			l.logger.Warn("Cached dataset is malformed, downloading", zap.String("dataset", name), zap.Error(parseErr))
		}
	}
	return l.download(ctx, name)
}

func (l *Loader) download(ctx context.Context, name string) ([]match.Record, error) {
	l.logger.Info("Downloading dataset", zap.String("dataset", name))

	data, err := l.fetcher.Fetch(ctx, name)
	if err != nil {
		return nil, err
	}

	recs, err := match.ParseRecords(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnavailable, name, err)
	}

	if l.cache != nil {
		if err := l.cache.Store(ctx, name, data); err != nil {
			l.logger.Warn("Failed to cache dataset", zap.String("dataset", name), zap.Error(err))
		}
	}

	l.logger.Info("Dataset loaded", zap.String("dataset", name), zap.Int("records", len(recs)))
	return recs, nil
}
