package render

import (
	"context"
	"html"
	"path"
	"strings"

	"github.com/goliatone/go-sermons/pkg/model"
)

var audioExtensions = map[string]bool{
	".mp3":  true,
	".m4a":  true,
	".ogg":  true,
	".wav":  true,
	".aac":  true,
	".flac": true,
}

func (r *Renderer) fileTag(_ context.Context, sc Scope) string {
	m := sc.Media
	if m == nil || m.Name == "" || m.Type == model.MediaCode {
		return ""
	}
	href := r.mediaURL(m.Name)
	label := path.Base(m.Name)
	kind := fileKind(m.Name)
	return `<a class="sermon-file sermon-file-` + kind + `" href="` + esc(href) + `">` + esc(label) + `</a>`
}

// fileWithDownload renders like file but appends an explicit download link
// for audio attachments, which browsers would otherwise play inline.
func (r *Renderer) fileWithDownload(ctx context.Context, sc Scope) string {
	out := r.fileTag(ctx, sc)
	if out == "" {
		return ""
	}
	m := sc.Media
	ext := strings.ToLower(path.Ext(m.Name))
	if !audioExtensions[ext] {
		return out
	}
	href := r.mediaURL(m.Name)
	return out + ` <a class="sermon-file-download" href="` + esc(href) + `" download>Download</a>`
}

// embedTag decodes the stored entity-encoded markup and injects it verbatim.
// Embeds are trusted admin-authored content; an optional policy narrows that
// trust for hosts that want it.
func (r *Renderer) embedTag(_ context.Context, sc Scope) string {
	m := sc.Media
	if m == nil || m.Type != model.MediaCode || m.Name == "" {
		return ""
	}
	decoded := html.UnescapeString(m.Name)
	if r.embedPolicy != nil {
		return r.embedPolicy.Sanitize(decoded)
	}
	return decoded
}

// mediaURL resolves an attachment name to an absolute URL. Names that already
// look like URLs pass through untouched.
func (r *Renderer) mediaURL(name string) string {
	if strings.Contains(name, "://") {
		return name
	}
	if r.links.MediaBase == "" {
		return name
	}
	return strings.TrimSuffix(r.links.MediaBase, "/") + "/" + name
}

func fileKind(name string) string {
	ext := strings.TrimPrefix(strings.ToLower(path.Ext(name)), ".")
	if ext == "" {
		return "link"
	}
	return ext
}
