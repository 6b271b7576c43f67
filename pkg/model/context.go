package model

// Context carries every piece of data a single render can reach. It is
// assembled by the caller (the record store queries are out of scope here) and
// treated as read-only by the parser: loop iteration binds the current item on
// a copy of the resolution scope, never on this struct.
type Context struct {
	// Sermon is the default record: the one being displayed on a single page,
	// or the first result on a listing page. Scalar sermon tags outside any
	// loop resolve against it.
	Sermon *Sermon `json:"sermon,omitempty" yaml:"sermon,omitempty"`

	// Sermons is the collection the outer sermons loop iterates.
	Sermons []*Sermon `json:"sermons,omitempty" yaml:"sermons,omitempty"`

	// Media holds the default record's attachments, used by file and embed
	// loops that appear outside any sermons loop.
	Media []MediaItem `json:"media,omitempty" yaml:"media,omitempty"`

	// Tags feeds the tag cloud.
	Tags []TagCount `json:"tags,omitempty" yaml:"tags,omitempty"`

	// Popular feeds the most-popular list.
	Popular []*Sermon `json:"popular,omitempty" yaml:"popular,omitempty"`

	// Navigational neighbours of the default record. Nil when there is none.
	Next     *Sermon `json:"next,omitempty" yaml:"next,omitempty"`
	Previous *Sermon `json:"previous,omitempty" yaml:"previous,omitempty"`
	SameDay  *Sermon `json:"same_day,omitempty" yaml:"same_day,omitempty"`

	// Count is the total number of matching records, independent of paging.
	Count int `json:"count,omitempty" yaml:"count,omitempty"`

	// Page is the 1-based current page; PageSize the listing page length.
	Page     int `json:"page,omitempty" yaml:"page,omitempty"`
	PageSize int `json:"page_size,omitempty" yaml:"page_size,omitempty"`

	// Filters holds the active listing filters (preacher, series, book, ...)
	// as query parameter name/value pairs.
	Filters map[string]string `json:"filters,omitempty" yaml:"filters,omitempty"`
}

// CurrentMedia returns the attachments file and embed loops should iterate for
// the given bound sermon, falling back to the context-level media list and
// then to the default record's attachments.
func (c *Context) CurrentMedia(bound *Sermon) []MediaItem {
	if bound != nil {
		return bound.Media
	}
	if c == nil {
		return nil
	}
	if len(c.Media) > 0 {
		return c.Media
	}
	if c.Sermon != nil {
		return c.Sermon.Media
	}
	return nil
}
