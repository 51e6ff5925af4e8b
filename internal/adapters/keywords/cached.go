// internal/adapters/keywords/cached.go
package keywords

import (
	"context"
	"time"

	"crackbench/internal/core/domain"
	"crackbench/internal/core/ports"
	"crackbench/internal/platform/cache"
	"crackbench/internal/platform/logx"
	"crackbench/internal/platform/validator"
)

// CachedSource memoizes another source's answers per URL. Errors and empty
// answers are not cached.
type CachedSource struct {
	inner  ports.KeywordSource
	cache  *cache.LRU[string, []domain.SeedKeyword]
	logger logx.Logger
}

var _ ports.KeywordSource = (*CachedSource)(nil)

// NewCachedSource wraps inner with an LRU of the given size and TTL.
func NewCachedSource(inner ports.KeywordSource, size int, ttl time.Duration, logger logx.Logger) *CachedSource {
	if logger == nil {
		logger = logx.NewNop()
	}
	return &CachedSource{
		inner:  inner,
		cache:  cache.New[string, []domain.SeedKeyword](size, ttl),
		logger: logger.With("component", "keywords", "source", "cached-"+inner.Name()),
	}
}

// Name implementa ports.KeywordSource.
func (c *CachedSource) Name() string { return c.inner.Name() }

// Keywords implementa ports.KeywordSource.
func (c *CachedSource) Keywords(ctx context.Context, url string) ([]domain.SeedKeyword, error) {
	key := validator.NormalizeURL(url)
	if words, ok := c.cache.Get(key); ok {
		c.logger.Debug("cache hit", "url", key)
		return append([]domain.SeedKeyword(nil), words...), nil
	}

	words, err := c.inner.Keywords(ctx, url)
	if err != nil {
		return nil, err
	}
	if len(words) > 0 {
		c.cache.Set(key, append([]domain.SeedKeyword(nil), words...))
	}
	return words, nil
}

// Stats expone los contadores del cache.
func (c *CachedSource) Stats() cache.Stats {
	return c.cache.Stats()
}

// Close implementa ports.KeywordSource.
func (c *CachedSource) Close() error {
	return c.inner.Close()
}

// Options selects and configures a keyword backend.
type Options struct {
	Mode       string // "browser" (default) or "static"
	Wait       time.Duration
	Timeout    time.Duration
	UserAgent  string
	ChromePath string
	CacheSize  int
	CacheTTL   time.Duration // 0 disables caching
	Extract    ExtractOptions
	Logger     logx.Logger
}

// New builds the configured backend, wrapped in a cache when CacheTTL > 0.
func New(opts Options) ports.KeywordSource {
	var src ports.KeywordSource
	switch opts.Mode {
	case "static":
		src = NewStaticSource(StaticOptions{
			Timeout:   opts.Timeout,
			UserAgent: opts.UserAgent,
			Extract:   opts.Extract,
			Logger:    opts.Logger,
		})
	default:
		src = NewBrowserSource(BrowserOptions{
			ExecPath:  opts.ChromePath,
			Wait:      opts.Wait,
			Timeout:   opts.Timeout,
			UserAgent: opts.UserAgent,
			Extract:   opts.Extract,
			Logger:    opts.Logger,
		})
	}
	if opts.CacheTTL > 0 {
		return NewCachedSource(src, opts.CacheSize, opts.CacheTTL, opts.Logger)
	}
	return src
}
