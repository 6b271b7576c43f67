// Package store declares the boundary contracts the template engine consumes:
// template text storage, the render cache, and the scripture text fetch. The
// engine never knows how any of these are implemented; built-in
// implementations live under internal/ and hosts can substitute their own.
package store

import (
	"context"
	"time"

	"github.com/goliatone/go-sermons/pkg/model"
)

// TemplateStore persists the administrator-authored template texts, one per
// render mode, plus the backup and generated-output slots the migrator
// manages. A missing stored value is reported as an empty string, never as an
// error; storage faults are the only error-returning paths.
type TemplateStore interface {
	// LoadTemplate returns the stored template text for the mode, or "" when
	// none has been saved yet.
	LoadTemplate(mode model.Mode) (string, error)

	// SaveBackup writes a verbatim copy of text into the mode's backup slot.
	SaveBackup(mode model.Mode, text string) error

	// DeleteGenerated removes any previously generated output artifact for the
	// mode. Deleting a slot that does not exist is a no-op.
	DeleteGenerated(mode model.Mode) error
}

// Cache is the render cache: a content-addressed accelerator whose absence
// never changes output, only latency. Implementations must treat Get misses
// as routine.
type Cache interface {
	// Get returns the cached value for key and whether it was present and
	// unexpired.
	Get(key string) (string, bool)

	// Set stores value under key for ttl. A non-positive ttl stores without
	// expiry.
	Set(key, value string, ttl time.Duration)

	// Clear removes every entry whose key starts with prefix. An empty prefix
	// clears everything.
	Clear(prefix string)
}

// ScriptureFetcher retrieves formatted scripture markup for a verse range in
// the named translation. The second return is false on any failure (network,
// parse, missing key, unknown translation); callers never inspect the reason
// and degrade to empty output.
type ScriptureFetcher interface {
	Fetch(ctx context.Context, start, end model.Reference, translation string) (string, bool)
}

// FetcherFunc adapts a function to the ScriptureFetcher interface.
type FetcherFunc func(ctx context.Context, start, end model.Reference, translation string) (string, bool)

// Fetch implements ScriptureFetcher.
func (f FetcherFunc) Fetch(ctx context.Context, start, end model.Reference, translation string) (string, bool) {
	return f(ctx, start, end, translation)
}
