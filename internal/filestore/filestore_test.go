package filestore_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goliatone/go-sermons/internal/filestore"
	"github.com/goliatone/go-sermons/pkg/model"
)

func TestLoadTemplate_MissingIsEmpty(t *testing.T) {
	st, err := filestore.New(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	text, err := st.LoadTemplate(model.ModeSearch)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if text != "" {
		t.Fatalf("missing template = %q, want empty", text)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st, err := filestore.New(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	const tpl = "<h2>[sermon_title]</h2>\n[sermons_loop][sermon_date][/sermons_loop]"
	if err := st.SaveTemplate(model.ModeSingle, tpl); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := st.LoadTemplate(model.ModeSingle)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != tpl {
		t.Fatalf("round trip = %q, want %q", got, tpl)
	}
}

func TestBackupSlotIsSeparate(t *testing.T) {
	st, err := filestore.New(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if err := st.SaveTemplate(model.ModeSearch, "current"); err != nil {
		t.Fatal(err)
	}
	if err := st.SaveBackup(model.ModeSearch, "original"); err != nil {
		t.Fatal(err)
	}

	current, err := st.LoadTemplate(model.ModeSearch)
	if err != nil {
		t.Fatal(err)
	}
	backup, err := st.LoadBackup(model.ModeSearch)
	if err != nil {
		t.Fatal(err)
	}
	if current != "current" || backup != "original" {
		t.Fatalf("slots = (%q, %q), want separate values", current, backup)
	}
}

func TestDeleteGenerated(t *testing.T) {
	dir := t.TempDir()
	st, err := filestore.New(dir)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	// Deleting a slot that never existed is a no-op.
	if err := st.DeleteGenerated(model.ModeSingle); err != nil {
		t.Fatalf("delete missing: %v", err)
	}

	out := filepath.Join(dir, "single.html")
	if err := os.WriteFile(out, []byte("<html>stale</html>"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := st.DeleteGenerated(model.ModeSingle); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Fatal("generated output still present after delete")
	}
}
