package sermons_test

import (
	"context"
	"strings"
	"testing"
	"time"

	sermons "github.com/goliatone/go-sermons"
	"github.com/goliatone/go-sermons/internal/filestore"
	"github.com/goliatone/go-sermons/pkg/model"
	"github.com/goliatone/go-sermons/pkg/render"
)

const searchTemplate = `<div class="results">
Found [sermon_count] sermons.
[sermons_loop]<article>
<h2>[sermon_title]</h2>
<p>[preacher_link] on [sermon_date] ([first_passage])</p>
<ul>[files_loop]<li>[file]</li>[/files_loop]</ul>
[embed_loop][embed][/embed_loop]
</article>
[/sermons_loop][previous_page] [next_page]
[legacy_widget]
</div>`

func TestFullRender(t *testing.T) {
	dir := t.TempDir()
	st, err := filestore.New(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := st.SaveTemplate(sermons.ModeSearch, searchTemplate); err != nil {
		t.Fatal(err)
	}

	eng, _, err := sermons.NewFileEngine(dir,
		render.WithLinks(render.Links{Base: "/sermons"}),
	)
	if err != nil {
		t.Fatal(err)
	}

	data := &sermons.Context{
		Count: 2,
		Sermons: []*model.Sermon{
			{
				ID:        1,
				Title:     "Living Water",
				Date:      time.Date(2024, time.May, 5, 0, 0, 0, 0, time.UTC),
				Preacher:  &model.Preacher{Name: "Jo Smith", URL: "/preachers/2"},
				Start:     []model.Reference{{Book: "John", Chapter: 4, Verse: 10}},
				End:       []model.Reference{{Book: "John", Chapter: 4, Verse: 14}},
				Media:     []model.MediaItem{{ID: 1, Name: "living-water.mp3", Type: model.MediaFile}},
				Permalink: "/s/1",
			},
			{
				ID:    2,
				Title: "The Vine",
				Media: []model.MediaItem{{ID: 2, Name: "&lt;iframe&gt;&lt;/iframe&gt;", Type: model.MediaCode}},
			},
		},
	}

	html, err := eng.Render(context.Background(), sermons.ModeSearch, data)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	for _, want := range []string{
		"Found 2 sermons.",
		`<a href="/s/1">Living Water</a>`,
		`<a href="/preachers/2">Jo Smith</a>`,
		"May 5, 2024",
		"John 4:10-14",
		"living-water.mp3",
		"<iframe></iframe>",
		"[legacy_widget]",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("rendered page missing %q:\n%s", want, html)
		}
	}

	// The second sermon has no files; its list must be empty, not borrow the
	// first sermon's attachments.
	if strings.Count(html, "living-water.mp3</a>") != 1 {
		t.Fatalf("file leaked across sermon iterations:\n%s", html)
	}
}

func TestFacadeMigrate(t *testing.T) {
	dir := t.TempDir()
	st, err := filestore.New(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := st.SaveTemplate(sermons.ModeSearch, "[sermon_title][old_thing]"); err != nil {
		t.Fatal(err)
	}

	result, err := sermons.Migrate(st)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	if result.Success() {
		t.Fatal("migration reported success with an unknown tag present")
	}
	if got := result.UnknownTags(); len(got) != 1 || got[0] != "old_thing" {
		t.Fatalf("UnknownTags = %v", got)
	}

	backup, err := st.LoadBackup(sermons.ModeSearch)
	if err != nil {
		t.Fatal(err)
	}
	if backup != "[sermon_title][old_thing]" {
		t.Fatalf("backup = %q, want original text", backup)
	}
}
