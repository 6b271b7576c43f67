package render

import (
	"context"
	"sort"
)

// Category classifies a tag by the shape of data it formats.
type Category int

const (
	// CategoryRecord tags format fields of the current sermon record.
	CategoryRecord Category = iota
	// CategoryMedia tags format the current attachment inside a file or embed
	// loop.
	CategoryMedia
	// CategoryPassage tags format the current scripture passage.
	CategoryPassage
	// CategoryAggregate tags format counters, navigation, and page chrome that
	// need no loop binding.
	CategoryAggregate
	// CategoryMarker tags delimit loop blocks; they resolve to internal
	// sentinels and never to user-visible content.
	CategoryMarker
)

// Binding names the loop binding a tag reads, if any.
type Binding int

const (
	BindNone Binding = iota
	BindSermon
	BindMedia
	BindPassage
)

// TagSpec describes one vocabulary entry: its category, the binding it
// consumes, and the formatting function invoked when the tag resolves.
type TagSpec struct {
	Category Category
	Binding  Binding
	render   func(r *Renderer, ctx context.Context, sc Scope) string
}

// Loop marker spellings. The closing forms carry the leading slash because
// that is how they appear in template text and in AvailableTags.
const (
	TagSermonsLoop     = "sermons_loop"
	TagSermonsLoopEnd  = "/sermons_loop"
	TagFilesLoop       = "files_loop"
	TagFilesLoopEnd    = "/files_loop"
	TagEmbedLoop       = "embed_loop"
	TagEmbedLoopEnd    = "/embed_loop"
	TagPassagesLoop    = "passages_loop"
	TagPassagesLoopEnd = "/passages_loop"
)

// Sentinel returns the internal token a loop marker tag resolves to. The NUL
// framing cannot collide with tag syntax, which keeps body-slicing decoupled
// from bracket matching.
func Sentinel(name string) string {
	return "\x00" + name + "\x00"
}

func marker() TagSpec {
	return TagSpec{Category: CategoryMarker, Binding: BindNone}
}

func scripture(translation string) TagSpec {
	return TagSpec{
		Category: CategoryPassage,
		Binding:  BindPassage,
		render: func(r *Renderer, ctx context.Context, sc Scope) string {
			return r.scriptureText(ctx, sc, translation)
		},
	}
}

// vocabulary is the closed set of tag names the renderer understands. A name
// absent from this table is never invoked; the parser echoes it back verbatim.
var vocabulary = map[string]TagSpec{
	// Scalar record tags.
	"sermon_title":         {Category: CategoryRecord, Binding: BindSermon, render: (*Renderer).sermonTitle},
	"sermon_description":   {Category: CategoryRecord, Binding: BindSermon, render: (*Renderer).sermonDescription},
	"sermon_date":          {Category: CategoryRecord, Binding: BindSermon, render: (*Renderer).sermonDate},
	"preacher_link":        {Category: CategoryRecord, Binding: BindSermon, render: (*Renderer).preacherLink},
	"preacher_image":       {Category: CategoryRecord, Binding: BindSermon, render: (*Renderer).preacherImage},
	"preacher_description": {Category: CategoryRecord, Binding: BindSermon, render: (*Renderer).preacherDescription},
	"series_link":          {Category: CategoryRecord, Binding: BindSermon, render: (*Renderer).seriesLink},
	"service_link":         {Category: CategoryRecord, Binding: BindSermon, render: (*Renderer).serviceLink},
	"edit_link":            {Category: CategoryRecord, Binding: BindSermon, render: (*Renderer).editLink},

	// Loop-item tags.
	"file":               {Category: CategoryMedia, Binding: BindMedia, render: (*Renderer).fileTag},
	"file_with_download": {Category: CategoryMedia, Binding: BindMedia, render: (*Renderer).fileWithDownload},
	"embed":              {Category: CategoryMedia, Binding: BindMedia, render: (*Renderer).embedTag},

	// Passage tags.
	"first_passage": {Category: CategoryPassage, Binding: BindSermon, render: (*Renderer).firstPassage},
	"passage":       {Category: CategoryPassage, Binding: BindPassage, render: (*Renderer).passageTag},
	"esv_text":      scripture("ESV"),
	"kjv_text":      scripture("KJV"),
	"web_text":      scripture("WEB"),

	// Aggregate and navigation tags.
	"sermon_count":       {Category: CategoryAggregate, render: (*Renderer).sermonCount},
	"filters_form":       {Category: CategoryAggregate, render: (*Renderer).filtersForm},
	"tag_cloud":          {Category: CategoryAggregate, render: (*Renderer).tagCloud},
	"most_popular":       {Category: CategoryAggregate, render: (*Renderer).mostPopular},
	"next_page":          {Category: CategoryAggregate, render: (*Renderer).nextPage},
	"previous_page":      {Category: CategoryAggregate, render: (*Renderer).previousPage},
	"next_sermon":        {Category: CategoryAggregate, render: (*Renderer).nextSermon},
	"previous_sermon":    {Category: CategoryAggregate, render: (*Renderer).previousSermon},
	"sameday_sermon":     {Category: CategoryAggregate, render: (*Renderer).sameDaySermon},
	"podcast":            {Category: CategoryAggregate, render: (*Renderer).podcast},
	"podcast_all":        {Category: CategoryAggregate, render: (*Renderer).podcastAll},
	"itunes_podcast":     {Category: CategoryAggregate, render: (*Renderer).itunesPodcast},
	"itunes_podcast_all": {Category: CategoryAggregate, render: (*Renderer).itunesPodcastAll},
	"creditlink":         {Category: CategoryAggregate, render: (*Renderer).creditLink},

	// Loop markers.
	TagSermonsLoop:     marker(),
	TagSermonsLoopEnd:  marker(),
	TagFilesLoop:       marker(),
	TagFilesLoopEnd:    marker(),
	TagEmbedLoop:       marker(),
	TagEmbedLoopEnd:    marker(),
	TagPassagesLoop:    marker(),
	TagPassagesLoopEnd: marker(),
}

// Lookup returns the vocabulary entry for name.
func Lookup(name string) (TagSpec, bool) {
	spec, ok := vocabulary[name]
	return spec, ok
}

// AvailableTags returns every tag name the renderer can resolve, including
// loop marker spellings, in deterministic (sorted) order. Both the parser and
// the migrator use this to decide known versus unknown.
func (r *Renderer) AvailableTags() []string {
	names := make([]string, 0, len(vocabulary))
	for name := range vocabulary {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve dispatches a tag name to its formatting function. It returns false
// for names outside the vocabulary; callers must then preserve the original
// bracketed text. Marker tags resolve to their sentinel token.
func (r *Renderer) Resolve(ctx context.Context, name string, sc Scope) (string, bool) {
	spec, ok := vocabulary[name]
	if !ok {
		return "", false
	}
	if spec.Category == CategoryMarker {
		return Sentinel(name), true
	}
	return spec.render(r, ctx, sc), true
}
