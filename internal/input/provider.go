package input

import (
	"context"
	"strconv"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/dyluth/advent/pkg/puzzle"
)

// Provider returns each day's input from the store, fetching and caching it
// on a miss. Within one Provider every day is loaded at most once: results
// are memoized, and concurrent callers for the same day share one load.
type Provider struct {
	store   Store
	fetcher Fetcher
	logger  *zap.Logger

	group singleflight.Group
	mu    sync.Mutex
	memo  map[puzzle.Day]string
}

func NewProvider(store Store, fetcher Fetcher, logger *zap.Logger) *Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Provider{
		store:   store,
		fetcher: fetcher,
		logger:  logger,
		memo:    make(map[puzzle.Day]string),
	}
}

// Get returns the input for day.
func (p *Provider) Get(ctx context.Context, day puzzle.Day) (string, error) {
	if text, ok := p.cached(day); ok {
		return text, nil
	}

	// The shared load outlives any single caller; each caller waits on its own ctx.
	loadCtx := context.WithoutCancel(ctx)
	ch := p.group.DoChan(strconv.Itoa(int(day)), func() (any, error) {
		if text, ok := p.cached(day); ok {
			return text, nil
		}
		text, err := p.load(loadCtx, day)
		if err != nil {
			return "", err
		}
		p.mu.Lock()
		p.memo[day] = text
		p.mu.Unlock()
		return text, nil
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		if res.Shared {
			p.logger.Debug("Shared in-flight input load", zap.Int("day", int(day)))
		}
		return res.Val.(string), nil
	}
}

// Cached reports whether day's input is available without a fetch.
func (p *Provider) Cached(ctx context.Context, day puzzle.Day) (bool, error) {
	if _, ok := p.cached(day); ok {
		return true, nil
	}
	_, ok, err := p.store.Get(ctx, day)
	return ok, err
}

func (p *Provider) cached(day puzzle.Day) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	text, ok := p.memo[day]
	return text, ok
}

func (p *Provider) load(ctx context.Context, day puzzle.Day) (string, error) {
	text, ok, err := p.store.Get(ctx, day)
	if err != nil {
		return "", err
	}
	if ok {
		p.logger.Debug("Input cache hit", zap.Int("day", int(day)), zap.Int("bytes", len(text)))
		return text, nil
	}

	p.logger.Debug("Input cache miss", zap.Int("day", int(day)))
	text, err = p.fetcher.Fetch(ctx, day)
	if err != nil {
		return "", err
	}
	if err := p.store.Put(ctx, day, text); err != nil {
		return "", err
	}
	return text, nil
}
