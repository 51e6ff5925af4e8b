// internal/adapters/keywords/static.go
package keywords

import (
	"bytes"
	"context"
	"strings"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"crackbench/internal/core/domain"
	"crackbench/internal/core/ports"
	"crackbench/internal/platform/errors"
	"crackbench/internal/platform/httpclient"
	"crackbench/internal/platform/logx"
	"crackbench/internal/platform/validator"
)

// StaticOptions configura StaticSource.
type StaticOptions struct {
	Timeout   time.Duration
	UserAgent string
	Extract   ExtractOptions
	Logger    logx.Logger
}

// StaticSource fetches the raw HTML and reads the text of <body> without
// running scripts. Faster than the browser but blind to client-rendered pages.
type StaticSource struct {
	client  *httpclient.Client
	extract ExtractOptions
	logger  logx.Logger
}

var _ ports.KeywordSource = (*StaticSource)(nil)

// NewStaticSource crea una fuente estática.
func NewStaticSource(opts StaticOptions) *StaticSource {
	if opts.Logger == nil {
		opts.Logger = logx.NewNop()
	}
	logger := opts.Logger.With("component", "keywords", "source", "static")
	return &StaticSource{
		client:  httpclient.New(httpclient.Config{Timeout: opts.Timeout, UserAgent: opts.UserAgent}, logger),
		extract: opts.Extract,
		logger:  logger,
	}
}

// Name implementa ports.KeywordSource.
func (s *StaticSource) Name() string { return "static" }

// Keywords implementa ports.KeywordSource.
func (s *StaticSource) Keywords(ctx context.Context, url string) ([]domain.SeedKeyword, error) {
	if !validator.IsFetchableURL(url) {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "unsupported url %q", url)
	}

	body, err := s.client.Get(ctx, url, map[string]string{"Accept": "text/html,application/xhtml+xml"})
	if err != nil {
		return nil, err
	}
	text, err := BodyText(body)
	if err != nil {
		return nil, err
	}
	words := Extract(text, s.extract)
	s.logger.Debug("keywords extracted", "url", url, "count", len(words))
	return words, nil
}

// Close implementa ports.KeywordSource.
func (s *StaticSource) Close() error { return nil }

// BodyText returns the text content of the document's <body>, skipping
// script, style, noscript and template elements. Block boundaries become
// newlines so words from adjacent elements never merge.
func BodyText(doc []byte) (string, error) {
	root, err := html.Parse(bytes.NewReader(doc))
	if err != nil {
		return "", errors.Mark(err, errors.ErrInvalidResponse)
	}

	body := findBody(root)
	if body == nil {
		return "", nil
	}

	var sb strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			sb.WriteString(n.Data)
			return
		case html.ElementNode:
			switch n.DataAtom {
			case atom.Script, atom.Style, atom.Noscript, atom.Template:
				return
			}
		case html.CommentNode:
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		// separador solo tras texto, nunca doble
		if n.Type == html.ElementNode && sb.Len() > 0 && !strings.HasSuffix(sb.String(), "\n") {
			sb.WriteByte('\n')
		}
	}
	walk(body)
	return strings.TrimSpace(sb.String()), nil
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == atom.Body {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
