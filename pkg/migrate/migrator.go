// Package migrate implements the one-shot upgrade operation that carries
// stored template texts across engine versions: it backs up the authored
// texts verbatim, statically scans them for tag names the current vocabulary
// does not recognise, and drops previously generated output so the next
// render regenerates from the current engine. Rendering behaviour is never
// touched; the scan only reports drift.
package migrate

import (
	"fmt"

	"github.com/goliatone/go-sermons/pkg/model"
	"github.com/goliatone/go-sermons/pkg/parser"
	"github.com/goliatone/go-sermons/pkg/store"
)

// VocabularySource exposes the tag names the renderer understands. The
// renderer itself satisfies this.
type VocabularySource interface {
	AvailableTags() []string
}

// Migrator runs the upgrade-time template migration.
type Migrator struct {
	templates store.TemplateStore
	vocab     VocabularySource
}

// New constructs a Migrator over the given template store and vocabulary.
func New(templates store.TemplateStore, vocab VocabularySource) *Migrator {
	return &Migrator{templates: templates, vocab: vocab}
}

// Migrate reads both stored template texts (a missing value counts as empty
// text), writes verbatim backups, scans for out-of-vocabulary tag names, and
// deletes obsolete generated output. Storage faults abort the migration;
// unknown tags do not, they are reported in the Result.
func (m *Migrator) Migrate() (Result, error) {
	known := make(map[string]struct{})
	for _, name := range m.vocab.AvailableTags() {
		known[name] = struct{}{}
	}

	var unknown []string
	seen := make(map[string]struct{})

	for _, mode := range []model.Mode{model.ModeSearch, model.ModeSingle} {
		text, err := m.templates.LoadTemplate(mode)
		if err != nil {
			return Result{}, fmt.Errorf("migrate: load template for mode %q: %w", mode, err)
		}
		if err := m.templates.SaveBackup(mode, text); err != nil {
			return Result{}, fmt.Errorf("migrate: back up template for mode %q: %w", mode, err)
		}
		for _, name := range scanTags(text) {
			if _, ok := known[name]; ok {
				continue
			}
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			unknown = append(unknown, name)
		}
		if err := m.templates.DeleteGenerated(mode); err != nil {
			return Result{}, fmt.Errorf("migrate: delete generated output for mode %q: %w", mode, err)
		}
	}

	return Result{unknown: unknown}, nil
}

// scanTags extracts every bracketed tag name occurrence from text using the
// same pattern the parser matches at render time, in document order.
func scanTags(text string) []string {
	matches := parser.TagPattern.FindAllStringSubmatch(text, -1)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}
	return names
}
