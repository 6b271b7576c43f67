package render

import (
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"

	"github.com/goliatone/go-sermons/pkg/model"
	"github.com/goliatone/go-sermons/pkg/store"
)

const defaultDateFormat = "January 2, 2006"

// Links configures the URLs the renderer weaves into its output. Every field
// is optional; a missing URL disables the tags that need it rather than
// producing broken markup.
type Links struct {
	// Base is the listing page URL. Permalinks and filter links derive from it
	// when a record carries no permalink of its own.
	Base string
	// Admin is the edit screen URL; empty disables the edit_link tag.
	Admin string
	// MediaBase prefixes bare attachment file names.
	MediaBase string
	// Podcast is the feed URL behind the four podcast tag variants.
	Podcast string
}

// Option customises a Renderer.
type Option func(*Renderer)

// WithLinks supplies the site URLs used by link-producing tags.
func WithLinks(links Links) Option {
	return func(r *Renderer) {
		r.links = links
	}
}

// WithScriptureFetcher injects the collaborator behind the per-translation
// scripture text tags. Without one those tags render as empty strings.
func WithScriptureFetcher(fetcher store.ScriptureFetcher) Option {
	return func(r *Renderer) {
		r.fetcher = fetcher
	}
}

// WithDateFormat overrides the time layout used by the sermon_date tag.
func WithDateFormat(layout string) Option {
	return func(r *Renderer) {
		if layout != "" {
			r.dateFormat = layout
		}
	}
}

// WithMarkdownDescriptions treats sermon descriptions as markdown, converting
// them to sanitised HTML instead of escaping them as plain text.
func WithMarkdownDescriptions() Option {
	return func(r *Renderer) {
		r.markdown = goldmark.New()
	}
}

// WithEmbedPolicy applies a sanitisation policy to decoded embed markup.
// By default embeds are trusted admin-authored content and injected verbatim.
func WithEmbedPolicy(policy *bluemonday.Policy) Option {
	return func(r *Renderer) {
		r.embedPolicy = policy
	}
}

// Renderer owns the closed tag vocabulary and the per-tag formatting rules.
// It holds no parsing logic and performs no storage access: every method is a
// pure function over the scope it is handed, returning "" whenever the data
// it needs is absent.
type Renderer struct {
	links       Links
	fetcher     store.ScriptureFetcher
	dateFormat  string
	markdown    goldmark.Markdown
	embedPolicy *bluemonday.Policy
}

// New constructs a Renderer applying any provided options.
func New(options ...Option) *Renderer {
	r := &Renderer{dateFormat: defaultDateFormat}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	return r
}

// Scope is the resolution context for a single tag: the render mode, the full
// render context, and whichever loop bindings are active. The parser copies
// and extends it per loop iteration; the caller's context is never mutated.
type Scope struct {
	Mode    model.Mode
	Data    *model.Context
	Sermon  *model.Sermon
	Media   *model.MediaItem
	Passage *model.Passage
}

// CurrentSermon returns the innermost sermon binding, falling back to the
// context's default record.
func (sc Scope) CurrentSermon() *model.Sermon {
	if sc.Sermon != nil {
		return sc.Sermon
	}
	if sc.Data != nil {
		return sc.Data.Sermon
	}
	return nil
}
