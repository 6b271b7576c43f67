package render

import (
	"bytes"
	"context"
	"strconv"
	"strings"

	"github.com/goliatone/go-sermons/pkg/model"
)

// sermonTitle is the only tag whose output shape depends on the render mode:
// listing pages wrap the title in a permalink anchor, single pages print it
// as plain text.
func (r *Renderer) sermonTitle(_ context.Context, sc Scope) string {
	s := sc.CurrentSermon()
	if s == nil {
		return ""
	}
	if sc.Mode == model.ModeSearch {
		return r.sermonAnchor(s)
	}
	return esc(s.Title)
}

func (r *Renderer) sermonDescription(_ context.Context, sc Scope) string {
	s := sc.CurrentSermon()
	if s == nil || s.Description == "" {
		return ""
	}
	if r.markdown != nil {
		var buf bytes.Buffer
		if err := r.markdown.Convert([]byte(s.Description), &buf); err == nil {
			return contentPolicy().Sanitize(strings.TrimSpace(buf.String()))
		}
	}
	return esc(s.Description)
}

func (r *Renderer) sermonDate(_ context.Context, sc Scope) string {
	s := sc.CurrentSermon()
	if s == nil || s.Date.IsZero() {
		return ""
	}
	return s.Date.Format(r.dateFormat)
}

func (r *Renderer) preacherLink(_ context.Context, sc Scope) string {
	s := sc.CurrentSermon()
	if s == nil || s.Preacher == nil || s.Preacher.Name == "" {
		return ""
	}
	p := s.Preacher
	if p.URL == "" {
		return esc(p.Name)
	}
	return `<a href="` + esc(p.URL) + `">` + esc(p.Name) + `</a>`
}

func (r *Renderer) preacherImage(_ context.Context, sc Scope) string {
	s := sc.CurrentSermon()
	if s == nil || s.Preacher == nil || s.Preacher.Image == "" {
		return ""
	}
	p := s.Preacher
	return `<img class="preacher-image" src="` + esc(p.Image) + `" alt="` + esc(p.Name) + `">`
}

// preacherDescription carries admin-authored rich text, so it is sanitised
// through an allowlist policy rather than escaped wholesale.
func (r *Renderer) preacherDescription(_ context.Context, sc Scope) string {
	s := sc.CurrentSermon()
	if s == nil || s.Preacher == nil || s.Preacher.Description == "" {
		return ""
	}
	return contentPolicy().Sanitize(s.Preacher.Description)
}

func (r *Renderer) seriesLink(_ context.Context, sc Scope) string {
	s := sc.CurrentSermon()
	if s == nil || s.Series == nil || s.Series.Name == "" {
		return ""
	}
	if s.Series.URL == "" {
		return esc(s.Series.Name)
	}
	return `<a href="` + esc(s.Series.URL) + `">` + esc(s.Series.Name) + `</a>`
}

func (r *Renderer) serviceLink(_ context.Context, sc Scope) string {
	s := sc.CurrentSermon()
	if s == nil || s.Service == nil || s.Service.Name == "" {
		return ""
	}
	if s.Service.URL == "" {
		return esc(s.Service.Name)
	}
	return `<a href="` + esc(s.Service.URL) + `">` + esc(s.Service.Name) + `</a>`
}

func (r *Renderer) editLink(_ context.Context, sc Scope) string {
	s := sc.CurrentSermon()
	if s == nil || r.links.Admin == "" {
		return ""
	}
	href := appendQuery(r.links.Admin, "sermon_id="+strconv.Itoa(s.ID))
	return `<a class="sermon-edit" href="` + esc(href) + `">Edit</a>`
}
