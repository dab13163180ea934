package transform

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	ghtml "github.com/yuin/goldmark/renderer/html"

	"notepress/internal/assets"
	"notepress/internal/domain"
)

// AssetStore persists media binaries and hands back addressable records.
type AssetStore interface {
	Store(ctx context.Context, in assets.StoreInput) (*domain.AssetRecord, error)
}

// ResourceFetcher pulls the raw bytes of one note-embedded resource.
type ResourceFetcher func(ctx context.Context, guid string) ([]byte, error)

// Input is one piece of source content to canonicalize.
type Input struct {
	Kind        domain.SourceKind
	Markup      string
	OwnerID     string
	Title       string
	ContentDate time.Time

	// Note-markup inputs only.
	Resources     []domain.NoteResource
	FetchResource ResourceFetcher
}

// Result is canonical stored HTML plus transform bookkeeping. Errors are
// per-media failures; a missing or unfetchable resource never fails the
// whole transform.
type Result struct {
	HTML       string
	Excerpt    string
	MediaCount int
	Errors     []string
}

// Config tunes the transformer.
type Config struct {
	// LocalURLPrefix marks media references that are already ours and
	// must not be re-downloaded.
	LocalURLPrefix string
	ExcerptLength  int
	DownloadLimit  int64
	Timeout        time.Duration
}

// Transformer converts source markup into canonical HTML with every media
// reference resolved into a local asset URL. It is stateless across calls;
// idempotence comes from the asset store's content-hash dedup, not from
// anything held here.
type Transformer struct {
	assets     AssetStore
	httpClient *http.Client
	markdown   goldmark.Markdown
	cfg        Config
	logger     *slog.Logger
}

func New(store AssetStore, cfg Config, logger *slog.Logger) *Transformer {
	if cfg.DownloadLimit == 0 {
		cfg.DownloadLimit = 20 << 20
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.ExcerptLength == 0 {
		cfg.ExcerptLength = 280
	}
	return &Transformer{
		assets:     store,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(ghtml.WithUnsafe()),
		),
		cfg:    cfg,
		logger: logger,
	}
}

// Transform dispatches on the source kind and always produces usable HTML
// plus an excerpt, even when individual media resolutions failed.
func (t *Transformer) Transform(ctx context.Context, in Input) (*Result, error) {
	var res *Result
	var err error

	switch in.Kind {
	case domain.SourceNotes:
		res, err = t.transformNoteMarkup(ctx, in)
	case domain.SourceGhost, domain.SourceManual:
		markup := in.Markup
		if in.Kind == domain.SourceManual {
			var buf strings.Builder
			if err := t.markdown.Convert([]byte(markup), &buf); err != nil {
				return nil, fmt.Errorf("render markdown: %w", err)
			}
			markup = buf.String()
		}
		res, err = t.transformHostedHTML(ctx, in, markup)
	default:
		return nil, fmt.Errorf("unknown source kind %q", in.Kind)
	}
	if err != nil {
		return nil, err
	}

	res.Excerpt = excerpt(res.HTML, t.cfg.ExcerptLength)
	return res, nil
}
