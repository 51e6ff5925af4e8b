// internal/adapters/keywords/browser.go
package keywords

import (
	"context"
	"time"

	"github.com/chromedp/chromedp"

	"crackbench/internal/core/domain"
	"crackbench/internal/core/ports"
	"crackbench/internal/platform/errors"
	"crackbench/internal/platform/logx"
	"crackbench/internal/platform/validator"
)

// Browser defaults.
const (
	DefaultWait    = 3 * time.Second
	DefaultTimeout = 30 * time.Second
)

// BrowserOptions configura BrowserSource.
type BrowserOptions struct {
	ExecPath  string        // Chrome/Chromium binary; empty = auto-detect
	Wait      time.Duration // settle time after navigation
	Timeout   time.Duration // whole page load
	UserAgent string
	Extract   ExtractOptions
	Logger    logx.Logger
}

// BrowserSource renders the page in headless Chrome and reads the visible
// text of <body>, so client-rendered content is seen.
//
// Each call starts its own browser process and tears it down before
// returning.
type BrowserSource struct {
	opts   BrowserOptions
	logger logx.Logger
}

var _ ports.KeywordSource = (*BrowserSource)(nil)

// NewBrowserSource crea una fuente basada en Chrome headless.
func NewBrowserSource(opts BrowserOptions) *BrowserSource {
	if opts.Wait < 0 {
		opts.Wait = 0
	} else if opts.Wait == 0 {
		opts.Wait = DefaultWait
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Logger == nil {
		opts.Logger = logx.NewNop()
	}
	return &BrowserSource{
		opts:   opts,
		logger: opts.Logger.With("component", "keywords", "source", "browser"),
	}
}

// Name implementa ports.KeywordSource.
func (b *BrowserSource) Name() string { return "browser" }

// allocatorOptions mirrors the flags the extractor has always run Chrome with.
func (b *BrowserSource) allocatorOptions() []chromedp.ExecAllocatorOption {
	opts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
	opts = append(opts,
		chromedp.Headless,
		chromedp.NoSandbox,
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if b.opts.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(b.opts.ExecPath))
	}
	if b.opts.UserAgent != "" {
		opts = append(opts, chromedp.UserAgent(b.opts.UserAgent))
	}
	return opts
}

// Keywords implementa ports.KeywordSource.
func (b *BrowserSource) Keywords(ctx context.Context, url string) ([]domain.SeedKeyword, error) {
	if !validator.IsFetchableURL(url) {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "unsupported url %q", url)
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, b.allocatorOptions()...)
	defer cancelAlloc()

	browserCtx, cancel := chromedp.NewContext(allocCtx, chromedp.WithLogf(func(string, ...interface{}) {}))
	defer cancel()

	timeoutCtx, timeoutCancel := context.WithTimeout(browserCtx, b.opts.Timeout+b.opts.Wait)
	defer timeoutCancel()

	start := time.Now()
	var text string
	err := chromedp.Run(timeoutCtx,
		chromedp.Navigate(url),
		chromedp.Sleep(b.opts.Wait),
		chromedp.Text("body", &text, chromedp.ByQuery),
	)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, errors.Mark(err, errors.ErrTimeout)
		}
		return nil, errors.Wrapf(err, "render %s", url)
	}

	words := Extract(text, b.opts.Extract)
	b.logger.Debug("keywords extracted",
		"url", url,
		"count", len(words),
		"duration", time.Since(start).String(),
	)
	return words, nil
}

// Close implementa ports.KeywordSource.
func (b *BrowserSource) Close() error { return nil }
