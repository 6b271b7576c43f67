package render_test

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/goliatone/go-sermons/pkg/model"
	"github.com/goliatone/go-sermons/pkg/render"
	"github.com/goliatone/go-sermons/pkg/store"
)

func resolve(t *testing.T, r *render.Renderer, name string, sc render.Scope) string {
	t.Helper()
	out, ok := r.Resolve(context.Background(), name, sc)
	if !ok {
		t.Fatalf("tag %q not in vocabulary", name)
	}
	return out
}

func sampleSermon() *model.Sermon {
	return &model.Sermon{
		ID:        5,
		Title:     "Grace & Truth",
		Date:      time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		Permalink: "https://example.com/sermons/grace-and-truth",
		Preacher:  &model.Preacher{ID: 2, Name: "Jo Smith", URL: "https://example.com/preachers/2"},
		Series:    &model.Series{ID: 3, Name: "Gospel of John"},
		Start:     []model.Reference{{Book: "John", Chapter: 1, Verse: 14}},
		End:       []model.Reference{{Book: "John", Chapter: 1, Verse: 18}},
	}
}

func TestSermonTitle_ModeDependent(t *testing.T) {
	r := render.New()
	s := sampleSermon()

	search := resolve(t, r, "sermon_title", render.Scope{Mode: model.ModeSearch, Sermon: s})
	want := `<a href="https://example.com/sermons/grace-and-truth">Grace &amp; Truth</a>`
	if search != want {
		t.Fatalf("search mode title = %q, want %q", search, want)
	}

	single := resolve(t, r, "sermon_title", render.Scope{Mode: model.ModeSingle, Sermon: s})
	if single != "Grace &amp; Truth" {
		t.Fatalf("single mode title = %q, want plain escaped text", single)
	}
}

func TestSermonTitle_DerivedPermalink(t *testing.T) {
	r := render.New(render.WithLinks(render.Links{Base: "/sermons"}))
	s := sampleSermon()
	s.Permalink = ""

	got := resolve(t, r, "sermon_title", render.Scope{Mode: model.ModeSearch, Sermon: s})
	want := `<a href="/sermons?sermon_id=5">Grace &amp; Truth</a>`
	if got != want {
		t.Fatalf("derived permalink title = %q, want %q", got, want)
	}
}

func TestRecordTags_AbsentDataRendersEmpty(t *testing.T) {
	r := render.New()
	empty := render.Scope{Mode: model.ModeSearch}

	for _, name := range []string{
		"sermon_title", "sermon_description", "sermon_date",
		"preacher_link", "preacher_image", "preacher_description",
		"series_link", "service_link", "edit_link",
		"first_passage", "passage", "esv_text",
	} {
		if out := resolve(t, r, name, empty); out != "" {
			t.Fatalf("tag %q with no record rendered %q, want empty", name, out)
		}
	}
}

func TestPreacherAndSeriesLinks(t *testing.T) {
	r := render.New()
	sc := render.Scope{Mode: model.ModeSingle, Sermon: sampleSermon()}

	preacher := resolve(t, r, "preacher_link", sc)
	if preacher != `<a href="https://example.com/preachers/2">Jo Smith</a>` {
		t.Fatalf("preacher_link = %q", preacher)
	}

	// A series with no URL degrades to plain text.
	series := resolve(t, r, "series_link", sc)
	if series != "Gospel of John" {
		t.Fatalf("series_link = %q", series)
	}
}

func TestSermonDate(t *testing.T) {
	r := render.New()
	sc := render.Scope{Mode: model.ModeSingle, Sermon: sampleSermon()}

	if got := resolve(t, r, "sermon_date", sc); got != "March 10, 2024" {
		t.Fatalf("sermon_date = %q", got)
	}

	custom := render.New(render.WithDateFormat("2006-01-02"))
	if got := resolve(t, custom, "sermon_date", sc); got != "2024-03-10" {
		t.Fatalf("custom format sermon_date = %q", got)
	}
}

func TestEditLink(t *testing.T) {
	r := render.New(render.WithLinks(render.Links{Admin: "/admin/sermons.php"}))
	sc := render.Scope{Mode: model.ModeSingle, Sermon: sampleSermon()}

	got := resolve(t, r, "edit_link", sc)
	want := `<a class="sermon-edit" href="/admin/sermons.php?sermon_id=5">Edit</a>`
	if got != want {
		t.Fatalf("edit_link = %q, want %q", got, want)
	}

	// No admin URL configured: the tag disappears.
	if got := resolve(t, render.New(), "edit_link", sc); got != "" {
		t.Fatalf("edit_link without admin URL = %q, want empty", got)
	}
}

func TestPreacherDescription_Sanitised(t *testing.T) {
	r := render.New()
	s := sampleSermon()
	s.Preacher.Description = `<p onclick="steal()">Pastor since <em>1999</em></p>`
	sc := render.Scope{Mode: model.ModeSingle, Sermon: s}

	got := resolve(t, r, "preacher_description", sc)
	if got != `<p>Pastor since <em>1999</em></p>` {
		t.Fatalf("preacher_description = %q, want event handler stripped", got)
	}
}

func TestFirstPassage(t *testing.T) {
	r := render.New()
	sc := render.Scope{Mode: model.ModeSingle, Sermon: sampleSermon()}

	if got := resolve(t, r, "first_passage", sc); got != "John 1:14-18" {
		t.Fatalf("first_passage = %q", got)
	}
}

func TestScriptureText_FetcherDegradation(t *testing.T) {
	sc := render.Scope{Mode: model.ModeSingle, Sermon: sampleSermon()}

	// No fetcher configured.
	if got := resolve(t, render.New(), "esv_text", sc); got != "" {
		t.Fatalf("esv_text without fetcher = %q, want empty", got)
	}

	// Fetcher failure.
	failing := store.FetcherFunc(func(context.Context, model.Reference, model.Reference, string) (string, bool) {
		return "", false
	})
	r := render.New(render.WithScriptureFetcher(failing))
	if got := resolve(t, r, "esv_text", sc); got != "" {
		t.Fatalf("esv_text with failing fetcher = %q, want empty", got)
	}

	// Success returns the fetched markup verbatim.
	var gotTranslation string
	ok := store.FetcherFunc(func(_ context.Context, start, _ model.Reference, translation string) (string, bool) {
		gotTranslation = translation
		return "<p class=\"verse\">" + start.Book + "</p>", true
	})
	r = render.New(render.WithScriptureFetcher(ok))
	if got := resolve(t, r, "kjv_text", sc); got != `<p class="verse">John</p>` {
		t.Fatalf("kjv_text = %q", got)
	}
	if gotTranslation != "KJV" {
		t.Fatalf("fetcher received translation %q, want KJV", gotTranslation)
	}
}

func TestAvailableTags(t *testing.T) {
	r := render.New()
	tags := r.AvailableTags()

	if !sort.StringsAreSorted(tags) {
		t.Fatalf("AvailableTags not sorted: %v", tags)
	}

	index := make(map[string]struct{}, len(tags))
	for _, name := range tags {
		index[name] = struct{}{}
	}
	for _, name := range []string{
		"sermon_title", "file", "embed", "first_passage", "creditlink",
		"sermons_loop", "/sermons_loop", "files_loop", "/files_loop",
		"embed_loop", "/embed_loop", "passages_loop", "/passages_loop",
	} {
		if _, ok := index[name]; !ok {
			t.Fatalf("AvailableTags missing %q", name)
		}
	}
}

func TestResolve_UnknownAndMarkers(t *testing.T) {
	r := render.New()

	if _, ok := r.Resolve(context.Background(), "legacy_widget", render.Scope{}); ok {
		t.Fatal("unknown tag resolved, want membership failure")
	}

	out, ok := r.Resolve(context.Background(), "sermons_loop", render.Scope{})
	if !ok {
		t.Fatal("marker tag not in vocabulary")
	}
	if out != render.Sentinel("sermons_loop") {
		t.Fatalf("marker resolved to %q, want sentinel", out)
	}
}
