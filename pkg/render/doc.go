// Package render owns the closed vocabulary of template tags and the
// formatting rule behind each one. The vocabulary is a single table mapping a
// tag name to its category and required loop binding; both the parser (known
// versus unknown decisions) and the migrator (vocabulary drift scans) are
// driven off it. Every formatting method is pure with respect to its inputs
// and returns an empty string, never an error, when the data it needs is
// missing: one sermon lacking one field must never crash a page render.
package render
