package render_test

import (
	"testing"

	"github.com/goliatone/go-sermons/pkg/model"
	"github.com/goliatone/go-sermons/pkg/render"
)

func TestFileTag(t *testing.T) {
	r := render.New(render.WithLinks(render.Links{MediaBase: "https://cdn.example.com/media/"}))
	m := model.MediaItem{ID: 1, Name: "grace.mp3", Type: model.MediaFile}
	sc := render.Scope{Mode: model.ModeSearch, Media: &m}

	got := resolve(t, r, "file", sc)
	want := `<a class="sermon-file sermon-file-mp3" href="https://cdn.example.com/media/grace.mp3">grace.mp3</a>`
	if got != want {
		t.Fatalf("file = %q, want %q", got, want)
	}
}

func TestFileTag_AbsoluteURLPassesThrough(t *testing.T) {
	r := render.New(render.WithLinks(render.Links{MediaBase: "https://cdn.example.com/media/"}))
	m := model.MediaItem{ID: 2, Name: "https://elsewhere.example.com/talk.pdf", Type: model.MediaURL}
	sc := render.Scope{Media: &m}

	got := resolve(t, r, "file", sc)
	want := `<a class="sermon-file sermon-file-pdf" href="https://elsewhere.example.com/talk.pdf">talk.pdf</a>`
	if got != want {
		t.Fatalf("file = %q, want %q", got, want)
	}
}

func TestFileWithDownload(t *testing.T) {
	r := render.New()
	audio := model.MediaItem{ID: 1, Name: "grace.mp3", Type: model.MediaFile}
	doc := model.MediaItem{ID: 2, Name: "notes.pdf", Type: model.MediaFile}

	withDownload := resolve(t, r, "file_with_download", render.Scope{Media: &audio})
	want := `<a class="sermon-file sermon-file-mp3" href="grace.mp3">grace.mp3</a> ` +
		`<a class="sermon-file-download" href="grace.mp3" download>Download</a>`
	if withDownload != want {
		t.Fatalf("file_with_download (audio) = %q, want %q", withDownload, want)
	}

	// Non-audio attachments render identically to the plain file tag.
	plain := resolve(t, r, "file_with_download", render.Scope{Media: &doc})
	if plain != `<a class="sermon-file sermon-file-pdf" href="notes.pdf">notes.pdf</a>` {
		t.Fatalf("file_with_download (pdf) = %q", plain)
	}
}

func TestEmbedTag_DecodesVerbatim(t *testing.T) {
	r := render.New()
	m := model.MediaItem{
		ID:   3,
		Name: "&lt;iframe src=&quot;https://player.example.com/1&quot;&gt;&lt;/iframe&gt;",
		Type: model.MediaCode,
	}
	sc := render.Scope{Media: &m}

	got := resolve(t, r, "embed", sc)
	want := `<iframe src="https://player.example.com/1"></iframe>`
	if got != want {
		t.Fatalf("embed = %q, want %q", got, want)
	}
}

func TestEmbedTag_WrongTypeRendersEmpty(t *testing.T) {
	r := render.New()
	m := model.MediaItem{ID: 4, Name: "grace.mp3", Type: model.MediaFile}

	if got := resolve(t, r, "embed", render.Scope{Media: &m}); got != "" {
		t.Fatalf("embed over a file item = %q, want empty", got)
	}
	if got := resolve(t, r, "file", render.Scope{}); got != "" {
		t.Fatalf("file with no binding = %q, want empty", got)
	}
}
