// Package engine orchestrates a full render: it resolves the stored template
// text for a render mode, serves a cached result when one is fresh, and
// otherwise drives the parser and caches what it produced. The cache is an
// accelerator only; a miss never changes output, just latency.
package engine

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	memcache "github.com/goliatone/go-sermons/internal/cache"
	"github.com/goliatone/go-sermons/pkg/model"
	"github.com/goliatone/go-sermons/pkg/parser"
	"github.com/goliatone/go-sermons/pkg/render"
	"github.com/goliatone/go-sermons/pkg/store"
)

// ErrUnknownMode reports a render mode outside the recognised set. This is a
// caller bug, not user input, so it fails the render fast instead of
// degrading.
var ErrUnknownMode = errors.New("engine: unknown render mode")

const (
	cachePrefix = "render:"
	defaultTTL  = 10 * time.Minute
)

// Parser is the slice of the tag parser the engine invokes.
type Parser interface {
	Parse(ctx context.Context, template string, mode model.Mode, data *model.Context) string
}

// Option customises the engine configuration.
type Option func(*Engine)

// WithParser injects a custom template parser.
func WithParser(p Parser) Option {
	return func(e *Engine) {
		if p != nil {
			e.parser = p
		}
	}
}

// WithRenderer builds the default parser around the given tag renderer.
// Ignored when WithParser is also supplied.
func WithRenderer(r *render.Renderer) Option {
	return func(e *Engine) {
		if r != nil {
			e.renderer = r
		}
	}
}

// WithCache injects a render cache implementation.
func WithCache(c store.Cache) Option {
	return func(e *Engine) {
		if c != nil {
			e.cache = c
		}
	}
}

// WithCacheTTL overrides the fixed expiry applied to cached renders.
func WithCacheTTL(ttl time.Duration) Option {
	return func(e *Engine) {
		if ttl > 0 {
			e.ttl = ttl
		}
	}
}

// Engine is the single entry point for rendering. Construct one per site
// configuration and share it; renders are independent and the only shared
// mutable state is the cache.
type Engine struct {
	store    store.TemplateStore
	cache    store.Cache
	parser   Parser
	renderer *render.Renderer
	ttl      time.Duration
}

// New constructs an Engine over the given template store, applying options
// and falling back to built-in defaults (in-memory cache, default renderer
// and parser) so a single constructor call yields a working engine.
func New(templates store.TemplateStore, options ...Option) *Engine {
	e := &Engine{
		store: templates,
		ttl:   defaultTTL,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}
	if e.cache == nil {
		e.cache = memcache.New()
	}
	if e.parser == nil {
		if e.renderer == nil {
			e.renderer = render.New()
		}
		e.parser = parser.New(e.renderer)
	}
	return e
}

// RenderOption carries per-call flags.
type RenderOption func(*renderConfig)

type renderConfig struct {
	bypassCache bool
}

// BypassCache skips the cache lookup and forces a fresh parse. The freshly
// computed result is still written to the cache.
func BypassCache() RenderOption {
	return func(cfg *renderConfig) {
		cfg.bypassCache = true
	}
}

// Render produces the final markup for one page. It rejects an unrecognised
// mode before doing any work, loads the stored template text, and serves a
// cached render when one is fresh; otherwise it parses and caches the result.
func (e *Engine) Render(ctx context.Context, mode model.Mode, data *model.Context, options ...RenderOption) (string, error) {
	if !mode.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}

	var cfg renderConfig
	for _, opt := range options {
		if opt != nil {
			opt(&cfg)
		}
	}

	text, err := e.store.LoadTemplate(mode)
	if err != nil {
		return "", fmt.Errorf("engine: load template for mode %q: %w", mode, err)
	}

	key := cacheKey(mode, text, data)
	if !cfg.bypassCache {
		if cached, ok := e.cache.Get(key); ok {
			return cached, nil
		}
	}

	out := e.parser.Parse(ctx, text, mode, data)
	e.cache.Set(key, out, e.ttl)
	return out, nil
}

// ClearCache purges every cached render. Call it after template text is
// edited so stale output is never served.
func (e *Engine) ClearCache() {
	e.cache.Clear(cachePrefix)
}

// cacheKey content-addresses a render by mode plus a hash of the template
// text and the serialised context.
func cacheKey(mode model.Mode, text string, data *model.Context) string {
	h := sha256.New()
	h.Write([]byte(text))
	h.Write([]byte{0})
	if data != nil {
		if payload, err := json.Marshal(data); err == nil {
			h.Write(payload)
		}
	}
	return cachePrefix + string(mode) + ":" + hex.EncodeToString(h.Sum(nil))
}
