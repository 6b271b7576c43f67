package render

import (
	"html"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/goliatone/go-sermons/pkg/model"
)

func esc(s string) string {
	return html.EscapeString(s)
}

// permalink resolves the URL for a sermon record, preferring a stored
// permalink and deriving one from the listing base otherwise.
func (r *Renderer) permalink(s *model.Sermon) string {
	if s == nil {
		return ""
	}
	if s.Permalink != "" {
		return s.Permalink
	}
	if r.links.Base == "" {
		return ""
	}
	return appendQuery(r.links.Base, "sermon_id="+strconv.Itoa(s.ID))
}

// sermonAnchor wraps a sermon title in a permalink anchor, degrading to the
// escaped title when no URL can be built and to "" when the record is absent.
func (r *Renderer) sermonAnchor(s *model.Sermon) string {
	if s == nil || s.Title == "" {
		return ""
	}
	href := r.permalink(s)
	if href == "" {
		return esc(s.Title)
	}
	return `<a href="` + esc(href) + `">` + esc(s.Title) + `</a>`
}

// appendQuery joins a query fragment onto a URL that may or may not already
// carry one.
func appendQuery(base, query string) string {
	if query == "" {
		return base
	}
	sep := "?"
	if strings.Contains(base, "?") {
		sep = "&"
	}
	return base + sep + query
}

// sortedFilterKeys returns the filter parameter names in sorted order.
func sortedFilterKeys(filters map[string]string) []string {
	keys := make([]string, 0, len(filters))
	for k := range filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// encodeFilters renders the filter map as a stable query string, sorted by
// parameter name so cache keys and output stay deterministic.
func encodeFilters(filters map[string]string) string {
	if len(filters) == 0 {
		return ""
	}
	keys := sortedFilterKeys(filters)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, url.QueryEscape(k)+"="+url.QueryEscape(filters[k]))
	}
	return strings.Join(parts, "&")
}
