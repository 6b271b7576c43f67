package render

import (
	"context"
	"fmt"

	"github.com/goliatone/go-sermons/pkg/model"
)

// TidyReference formats a verse range as a human-readable citation, collapsing
// whatever the start and end references share:
//
//	same verse            "John 3:16"
//	same chapter          "John 3:16-18"
//	same book             "John 3:16-4:2"
//	different books       "John 3:16 - Acts 2:1"
func TidyReference(start, end model.Reference) string {
	switch {
	case start.Book == end.Book && start.Chapter == end.Chapter && start.Verse == end.Verse:
		return fmt.Sprintf("%s %d:%d", start.Book, start.Chapter, start.Verse)
	case start.Book == end.Book && start.Chapter == end.Chapter:
		return fmt.Sprintf("%s %d:%d-%d", start.Book, start.Chapter, start.Verse, end.Verse)
	case start.Book == end.Book:
		return fmt.Sprintf("%s %d:%d-%d:%d", start.Book, start.Chapter, start.Verse, end.Chapter, end.Verse)
	default:
		return fmt.Sprintf("%s %d:%d - %s %d:%d", start.Book, start.Chapter, start.Verse, end.Book, end.Chapter, end.Verse)
	}
}

// currentPassage returns the bound passage, or the current sermon's first
// passage when no passage loop is active.
func currentPassage(sc Scope) (model.Passage, bool) {
	if sc.Passage != nil {
		return *sc.Passage, true
	}
	passages := sc.CurrentSermon().Passages()
	if len(passages) == 0 {
		return model.Passage{}, false
	}
	return passages[0], true
}

func (r *Renderer) firstPassage(_ context.Context, sc Scope) string {
	passages := sc.CurrentSermon().Passages()
	if len(passages) == 0 {
		return ""
	}
	return esc(TidyReference(passages[0].Start, passages[0].End))
}

func (r *Renderer) passageTag(_ context.Context, sc Scope) string {
	p, ok := currentPassage(sc)
	if !ok {
		return ""
	}
	return esc(TidyReference(p.Start, p.End))
}

// scriptureText resolves a per-translation text tag through the fetch
// collaborator. Markup comes back pre-formatted from the fetcher; any failure
// there degrades to an empty string, never an error surfacing to the page.
func (r *Renderer) scriptureText(ctx context.Context, sc Scope, translation string) string {
	if r.fetcher == nil {
		return ""
	}
	p, ok := currentPassage(sc)
	if !ok {
		return ""
	}
	text, ok := r.fetcher.Fetch(ctx, p.Start, p.End, translation)
	if !ok {
		return ""
	}
	return text
}
