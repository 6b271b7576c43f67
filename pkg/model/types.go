package model

import "time"

// Mode selects which stored template text is rendered and how sermon-scoped
// tags behave: listing pages link each sermon title to its permalink, while
// single-record pages print the title as plain text.
type Mode string

const (
	// ModeSearch renders the listing (search results) template.
	ModeSearch Mode = "search"
	// ModeSingle renders the individual-record template.
	ModeSingle Mode = "single"
)

// Valid reports whether the mode is one of the recognised render modes.
func (m Mode) Valid() bool {
	return m == ModeSearch || m == ModeSingle
}

// MediaType distinguishes attached files and URLs from embedded markup
// snippets. Items typed MediaCode expand inside embed loops; everything else
// expands inside file loops.
type MediaType string

const (
	MediaFile MediaType = "file"
	MediaURL  MediaType = "url"
	MediaCode MediaType = "code"
)

// MediaItem is one attachment on a sermon. Name holds a file name, an absolute
// URL, or (for MediaCode) the entity-encoded embed markup authored by an
// administrator.
type MediaItem struct {
	ID   int       `json:"id" yaml:"id"`
	Name string    `json:"name" yaml:"name"`
	Type MediaType `json:"type" yaml:"type"`
}

// Reference identifies a single verse by book name, chapter, and verse number.
type Reference struct {
	Book    string `json:"book" yaml:"book"`
	Chapter int    `json:"chapter" yaml:"chapter"`
	Verse   int    `json:"verse" yaml:"verse"`
}

// Passage is an inclusive start/end verse range.
type Passage struct {
	Start Reference `json:"start" yaml:"start"`
	End   Reference `json:"end" yaml:"end"`
}

// Preacher is the speaker attached to a sermon. Description may contain
// admin-authored HTML; renderers sanitise it before output.
type Preacher struct {
	ID          int    `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	URL         string `json:"url,omitempty" yaml:"url,omitempty"`
	Image       string `json:"image,omitempty" yaml:"image,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Series groups sermons preached under one banner.
type Series struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url,omitempty" yaml:"url,omitempty"`
}

// Service is the recurring meeting a sermon was preached at.
type Service struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	URL  string `json:"url,omitempty" yaml:"url,omitempty"`
}

// Sermon is the central record. Related entities are hydrated by the record
// store before rendering; any of them may be nil or empty, and renderers treat
// absence as "emit nothing" rather than an error.
type Sermon struct {
	ID          int         `json:"id" yaml:"id"`
	Title       string      `json:"title" yaml:"title"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty"`
	Date        time.Time   `json:"date,omitempty" yaml:"date,omitempty"`
	Permalink   string      `json:"permalink,omitempty" yaml:"permalink,omitempty"`
	Preacher    *Preacher   `json:"preacher,omitempty" yaml:"preacher,omitempty"`
	Series      *Series     `json:"series,omitempty" yaml:"series,omitempty"`
	Service     *Service    `json:"service,omitempty" yaml:"service,omitempty"`
	Media       []MediaItem `json:"media,omitempty" yaml:"media,omitempty"`
	// Start and End are parallel lists of passage boundaries. They are zipped
	// element-wise during passage loop expansion; the shorter list wins.
	Start []Reference `json:"start,omitempty" yaml:"start,omitempty"`
	End   []Reference `json:"end,omitempty" yaml:"end,omitempty"`
}

// Passages zips the parallel Start/End reference lists into passage ranges,
// truncating to the shorter list.
func (s *Sermon) Passages() []Passage {
	if s == nil {
		return nil
	}
	n := len(s.Start)
	if len(s.End) < n {
		n = len(s.End)
	}
	out := make([]Passage, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, Passage{Start: s.Start[i], End: s.End[i]})
	}
	return out
}

// TagCount is one entry in the tag cloud: a topic tag and how many sermons
// carry it.
type TagCount struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}
