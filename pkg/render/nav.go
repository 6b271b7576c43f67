package render

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

func (r *Renderer) sermonCount(_ context.Context, sc Scope) string {
	if sc.Data == nil {
		return ""
	}
	return strconv.Itoa(sc.Data.Count)
}

// filtersForm emits a minimal search form that round-trips the active filters
// as hidden inputs so refining a search never silently drops them.
func (r *Renderer) filtersForm(_ context.Context, sc Scope) string {
	if r.links.Base == "" {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<form class="sermon-filters" method="get" action="` + esc(r.links.Base) + `">`)
	if sc.Data != nil {
		keys := sortedFilterKeys(sc.Data.Filters)
		for _, k := range keys {
			b.WriteString(`<input type="hidden" name="` + esc(k) + `" value="` + esc(sc.Data.Filters[k]) + `">`)
		}
	}
	b.WriteString(`<input type="text" name="title" placeholder="Search sermons">`)
	b.WriteString(`<button type="submit">Search</button>`)
	b.WriteString(`</form>`)
	return b.String()
}

// tagCloud scales each tag's font size linearly between 80% and 150% of the
// base size across the observed count range.
func (r *Renderer) tagCloud(_ context.Context, sc Scope) string {
	if sc.Data == nil || len(sc.Data.Tags) == 0 {
		return ""
	}
	tags := sc.Data.Tags
	min, max := tags[0].Count, tags[0].Count
	for _, t := range tags {
		if t.Count < min {
			min = t.Count
		}
		if t.Count > max {
			max = t.Count
		}
	}
	var b strings.Builder
	b.WriteString(`<div class="sermon-tag-cloud">`)
	for i, t := range tags {
		if i > 0 {
			b.WriteString(" ")
		}
		size := 80
		if max > min {
			size = 80 + 70*(t.Count-min)/(max-min)
		}
		href := appendQuery(r.links.Base, "stag="+url.QueryEscape(t.Name))
		b.WriteString(fmt.Sprintf(`<span class="sermon-tag" style="font-size:%d%%"><a href="%s">%s</a></span>`, size, esc(href), esc(t.Name)))
	}
	b.WriteString(`</div>`)
	return b.String()
}

func (r *Renderer) mostPopular(_ context.Context, sc Scope) string {
	if sc.Data == nil || len(sc.Data.Popular) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<ol class="sermon-popular">`)
	for _, s := range sc.Data.Popular {
		if link := r.sermonAnchor(s); link != "" {
			b.WriteString(`<li>` + link + `</li>`)
		}
	}
	b.WriteString(`</ol>`)
	return b.String()
}

func (r *Renderer) nextPage(_ context.Context, sc Scope) string {
	return r.pageLink(sc, +1, `Next page &raquo;`)
}

func (r *Renderer) previousPage(_ context.Context, sc Scope) string {
	return r.pageLink(sc, -1, `&laquo; Previous page`)
}

// pageLink builds the next or previous page anchor, preserving the active
// filters, and returns "" at either edge of the result set.
func (r *Renderer) pageLink(sc Scope, delta int, label string) string {
	d := sc.Data
	if d == nil || d.PageSize <= 0 || r.links.Base == "" {
		return ""
	}
	page := d.Page
	if page < 1 {
		page = 1
	}
	totalPages := (d.Count + d.PageSize - 1) / d.PageSize
	target := page + delta
	if target < 1 || target > totalPages {
		return ""
	}
	query := encodeFilters(d.Filters)
	query = strings.TrimPrefix(query+"&page="+strconv.Itoa(target), "&")
	href := appendQuery(r.links.Base, query)
	return `<a class="sermon-page" href="` + esc(href) + `">` + label + `</a>`
}

func (r *Renderer) nextSermon(_ context.Context, sc Scope) string {
	if sc.Data == nil {
		return ""
	}
	return r.sermonAnchor(sc.Data.Next)
}

func (r *Renderer) previousSermon(_ context.Context, sc Scope) string {
	if sc.Data == nil {
		return ""
	}
	return r.sermonAnchor(sc.Data.Previous)
}

func (r *Renderer) sameDaySermon(_ context.Context, sc Scope) string {
	if sc.Data == nil {
		return ""
	}
	return r.sermonAnchor(sc.Data.SameDay)
}

// The four podcast variants: the filtered and unfiltered feed URL, each in
// plain and itunes (itpc) scheme form.

func (r *Renderer) podcast(_ context.Context, sc Scope) string {
	if r.links.Podcast == "" {
		return ""
	}
	href := r.links.Podcast
	if sc.Data != nil {
		href = appendQuery(href, encodeFilters(sc.Data.Filters))
	}
	return esc(href)
}

func (r *Renderer) podcastAll(_ context.Context, _ Scope) string {
	return esc(r.links.Podcast)
}

func (r *Renderer) itunesPodcast(_ context.Context, sc Scope) string {
	if r.links.Podcast == "" {
		return ""
	}
	href := r.links.Podcast
	if sc.Data != nil {
		href = appendQuery(href, encodeFilters(sc.Data.Filters))
	}
	return esc(itunesScheme(href))
}

func (r *Renderer) itunesPodcastAll(_ context.Context, _ Scope) string {
	return esc(itunesScheme(r.links.Podcast))
}

func (r *Renderer) creditLink(_ context.Context, _ Scope) string {
	return `<span class="sermon-credit">Powered by <a href="https://github.com/goliatone/go-sermons">go-sermons</a></span>`
}

func itunesScheme(u string) string {
	switch {
	case u == "":
		return ""
	case strings.HasPrefix(u, "https://"):
		return "itpc://" + strings.TrimPrefix(u, "https://")
	case strings.HasPrefix(u, "http://"):
		return "itpc://" + strings.TrimPrefix(u, "http://")
	default:
		return u
	}
}
