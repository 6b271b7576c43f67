// Package model defines the record types and the render context consumed by
// the tag renderer and parser. Records arrive fully hydrated from whatever
// store the host application uses; every relation is optional and nil-safe so
// a sermon missing its preacher, media, or passages still renders (with those
// pieces omitted) instead of failing the page.
package model
