// Package sermons renders administrator-authored page templates for a sermon
// archive. Templates contain bracketed placeholder tags ([sermon_title]) and
// named loop blocks ([sermons_loop] ... [/sermons_loop]); the engine
// substitutes each known tag with escaped, context-appropriate content,
// expands loops over record collections, and leaves anything it does not
// recognise untouched.
package sermons

import (
	"context"

	"github.com/goliatone/go-sermons/internal/filestore"
	"github.com/goliatone/go-sermons/pkg/engine"
	"github.com/goliatone/go-sermons/pkg/migrate"
	"github.com/goliatone/go-sermons/pkg/model"
	"github.com/goliatone/go-sermons/pkg/render"
	"github.com/goliatone/go-sermons/pkg/store"
)

// Mode selects which stored template is rendered.
type Mode = model.Mode

const (
	ModeSearch = model.ModeSearch
	ModeSingle = model.ModeSingle
)

// Context carries the data one render can reach.
type Context = model.Context

// Sermon is the central record type.
type Sermon = model.Sermon

// Links configures the URLs link-producing tags emit.
type Links = render.Links

// MigrationResult reports the outcome of a template migration run.
type MigrationResult = migrate.Result

// NewEngine constructs a template engine over any TemplateStore, mirroring
// engine.New for callers that only import the root package.
func NewEngine(templates store.TemplateStore, options ...engine.Option) *engine.Engine {
	return engine.New(templates, options...)
}

// NewFileEngine wires the common case in one call: a file-backed template
// store rooted at dir plus an engine whose renderer applies the given
// options.
func NewFileEngine(dir string, rendererOptions ...render.Option) (*engine.Engine, *filestore.Store, error) {
	fs, err := filestore.New(dir)
	if err != nil {
		return nil, nil, err
	}
	eng := engine.New(fs, engine.WithRenderer(render.New(rendererOptions...)))
	return eng, fs, nil
}

// WatchTemplates blocks watching the store's directory and clears the
// engine's render cache whenever a template file changes, so an edited
// template is never served stale. Cancel ctx to stop.
func WatchTemplates(ctx context.Context, fs *filestore.Store, eng *engine.Engine) error {
	return fs.Watch(ctx, func(string) {
		eng.ClearCache()
	}, nil)
}

// Migrate runs the one-shot upgrade-time template migration against the
// given store using the default tag vocabulary.
func Migrate(templates store.TemplateStore) (MigrationResult, error) {
	return migrate.New(templates, render.New()).Migrate()
}
