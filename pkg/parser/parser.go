// Package parser turns template text plus a render context into final markup.
// It recognises loop blocks and individual tags, expands loops over their
// collections (recursing so nested loops see the outer iteration's binding),
// and delegates every resolved tag to the render vocabulary. Authoring
// mistakes never fail a parse: unknown tags round-trip byte for byte and
// unbalanced loop markers leave their region as literal text.
package parser

import (
	"context"
	"regexp"
	"strings"

	"github.com/goliatone/go-sermons/pkg/model"
	"github.com/goliatone/go-sermons/pkg/render"
)

// TagResolver is the slice of the tag renderer the parser depends on.
type TagResolver interface {
	// AvailableTags lists every known tag name, loop markers included.
	AvailableTags() []string
	// Resolve renders a known tag; the second return is false for names
	// outside the vocabulary.
	Resolve(ctx context.Context, name string, sc render.Scope) (string, bool)
}

// TagPattern matches one template tag: brackets around lowercase ASCII
// letters and underscores, with an optional leading slash for closing loop
// markers. This is the wire format of the templating language and is shared
// with the migrator's static scan.
var TagPattern = regexp.MustCompile(`\[(/?[a-z_]+)\]`)

// loopKind pairs the start/end marker spellings of one loop block kind.
type loopKind struct {
	start string
	end   string
}

// loopOrder fixes the expansion order. Sermon loops may contain file, embed,
// and passage loops nested inside them, so sermons expand first and nested
// bodies resolve against the sermon currently being iterated.
var loopOrder = []loopKind{
	{render.TagSermonsLoop, render.TagSermonsLoopEnd},
	{render.TagFilesLoop, render.TagFilesLoopEnd},
	{render.TagEmbedLoop, render.TagEmbedLoopEnd},
	{render.TagPassagesLoop, render.TagPassagesLoopEnd},
}

var (
	markerSpellings = map[string]struct{}{
		render.TagSermonsLoop:     {},
		render.TagSermonsLoopEnd:  {},
		render.TagFilesLoop:       {},
		render.TagFilesLoopEnd:    {},
		render.TagEmbedLoop:       {},
		render.TagEmbedLoopEnd:    {},
		render.TagPassagesLoop:    {},
		render.TagPassagesLoopEnd: {},
	}

	normalizeReplacer *strings.Replacer
	restoreReplacer   *strings.Replacer
)

func init() {
	var toSentinel, toLiteral []string
	for name := range markerSpellings {
		toSentinel = append(toSentinel, "["+name+"]", render.Sentinel(name))
		toLiteral = append(toLiteral, render.Sentinel(name), "["+name+"]")
	}
	normalizeReplacer = strings.NewReplacer(toSentinel...)
	restoreReplacer = strings.NewReplacer(toLiteral...)
}

// Parser drives template expansion against a tag resolver.
type Parser struct {
	tags TagResolver
}

// New constructs a Parser over the given resolver.
func New(tags TagResolver) *Parser {
	return &Parser{tags: tags}
}

// Parse resolves all tags in template against the given mode and context and
// returns the assembled markup. The context is read-only: iteration bindings
// extend a copied scope, never the caller's data.
func (p *Parser) Parse(ctx context.Context, template string, mode model.Mode, data *model.Context) string {
	sc := render.Scope{Mode: mode, Data: data}

	// Phase 1: swap marker spellings for sentinel tokens so body slicing
	// cannot be confused by bracket syntax.
	s := normalizeReplacer.Replace(template)

	// Phase 2: expand loop kinds in fixed order, recursing into bodies.
	s = p.expandLoops(ctx, s, sc)

	// Unmatched markers survive expansion as stray sentinels; put their
	// literal spellings back before the final pass.
	s = restoreReplacer.Replace(s)

	// Phase 3: resolve tags that sit outside any loop.
	return p.resolveTags(ctx, s, sc)
}

func (p *Parser) expandLoops(ctx context.Context, s string, sc render.Scope) string {
	for _, kind := range loopOrder {
		s = p.expandKind(ctx, s, kind, sc)
	}
	return s
}

// expandKind expands every start/end pair of one loop kind at the current
// nesting level. A start without an end (or a stray end) is left in place for
// later restoration to literal text.
func (p *Parser) expandKind(ctx context.Context, s string, kind loopKind, sc render.Scope) string {
	startTok := render.Sentinel(kind.start)
	endTok := render.Sentinel(kind.end)

	var out strings.Builder
	rest := s
	for {
		i := strings.Index(rest, startTok)
		if i < 0 {
			break
		}
		j := strings.Index(rest[i+len(startTok):], endTok)
		if j < 0 {
			break
		}
		body := rest[i+len(startTok) : i+len(startTok)+j]
		out.WriteString(rest[:i])
		out.WriteString(p.expandBody(ctx, body, kind, sc))
		rest = rest[i+len(startTok)+j+len(endTok):]
	}
	out.WriteString(rest)
	return out.String()
}

// expandBody runs the loop body once per collection element, binding the
// element as the current item of its kind. Inner loops are expanded before
// scalar tags so they observe the outer binding.
func (p *Parser) expandBody(ctx context.Context, body string, kind loopKind, sc render.Scope) string {
	var b strings.Builder
	switch kind.start {
	case render.TagSermonsLoop:
		if sc.Data == nil {
			break
		}
		for _, s := range sc.Data.Sermons {
			if s == nil {
				continue
			}
			inner := sc
			inner.Sermon = s
			b.WriteString(p.expandIteration(ctx, body, inner))
		}
	case render.TagFilesLoop:
		for _, m := range p.mediaItems(sc, false) {
			m := m
			inner := sc
			inner.Media = &m
			b.WriteString(p.expandIteration(ctx, body, inner))
		}
	case render.TagEmbedLoop:
		for _, m := range p.mediaItems(sc, true) {
			m := m
			inner := sc
			inner.Media = &m
			b.WriteString(p.expandIteration(ctx, body, inner))
		}
	case render.TagPassagesLoop:
		for _, pass := range sc.CurrentSermon().Passages() {
			pass := pass
			inner := sc
			inner.Passage = &pass
			b.WriteString(p.expandIteration(ctx, body, inner))
		}
	}
	return b.String()
}

func (p *Parser) expandIteration(ctx context.Context, body string, sc render.Scope) string {
	expanded := p.expandLoops(ctx, body, sc)
	return p.resolveTags(ctx, expanded, sc)
}

// mediaItems selects the current binding's attachments: embeds are the items
// typed as code, files are everything else.
func (p *Parser) mediaItems(sc render.Scope, wantCode bool) []model.MediaItem {
	all := sc.Data.CurrentMedia(sc.Sermon)
	out := make([]model.MediaItem, 0, len(all))
	for _, m := range all {
		if (m.Type == model.MediaCode) == wantCode {
			out = append(out, m)
		}
	}
	return out
}

// resolveTags substitutes every in-vocabulary tag in s using the active
// scope. Unknown tags and leftover loop markers are preserved verbatim.
func (p *Parser) resolveTags(ctx context.Context, s string, sc render.Scope) string {
	return TagPattern.ReplaceAllStringFunc(s, func(m string) string {
		name := m[1 : len(m)-1]
		if _, isMarker := markerSpellings[name]; isMarker {
			return m
		}
		out, ok := p.tags.Resolve(ctx, name, sc)
		if !ok {
			return m
		}
		return out
	})
}
