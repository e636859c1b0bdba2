package notes

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/nadia/entitle/internal/titlecase"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "notes.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestCreateAndGet(t *testing.T) {
	s := openTestStore(t)

	note, err := s.Create("A Tale of Two Cities", "# A Tale of Two Cities\n")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if !strings.HasPrefix(note.ID, "nt-") {
		t.Errorf("note ID = %q, want nt- prefix", note.ID)
	}

	got, err := s.Get(note.ID)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if got == nil || got.Title != note.Title {
		t.Errorf("Get() = %+v, want title %q", got, note.Title)
	}
}

func TestGetMissing(t *testing.T) {
	s := openTestStore(t)
	got, err := s.Get("nt-missing")
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if got != nil {
		t.Errorf("Get(missing) = %+v, want nil", got)
	}
}

func TestBulkCreate(t *testing.T) {
	s := openTestStore(t)

	input := "a tale of two cities\n\nwar and peace\nA TALE OF TWO CITIES\n"
	created, skipped, err := s.BulkCreate(input, titlecase.Chicago, nil)
	if err != nil {
		t.Fatalf("BulkCreate() failed: %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("BulkCreate() created %d notes, want 2", len(created))
	}
	if skipped != 1 {
		t.Errorf("BulkCreate() skipped = %d, want 1", skipped)
	}
	if created[0].Title != "A Tale of Two Cities" {
		t.Errorf("title = %q, want %q", created[0].Title, "A Tale of Two Cities")
	}
	if created[1].Title != "War and Peace" {
		t.Errorf("title = %q, want %q", created[1].Title, "War and Peace")
	}

	// A second run finds everything already present.
	created, skipped, err = s.BulkCreate(input, titlecase.Chicago, nil)
	if err != nil {
		t.Fatalf("BulkCreate() rerun failed: %v", err)
	}
	if len(created) != 0 || skipped != 3 {
		t.Errorf("BulkCreate() rerun = %d created, %d skipped; want 0, 3", len(created), skipped)
	}
}

func TestRetitle(t *testing.T) {
	s := openTestStore(t)

	note, err := s.Create("the lord of the rings", "# the lord of the rings\nbody\n")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}

	got, err := s.Retitle(note.ID, titlecase.MLA, nil)
	if err != nil {
		t.Fatalf("Retitle() failed: %v", err)
	}
	if got.Title != "The Lord of the Rings" {
		t.Errorf("Retitle() title = %q, want %q", got.Title, "The Lord of the Rings")
	}
	if !strings.HasPrefix(got.Content, "# The Lord of the Rings\n") {
		t.Errorf("Retitle() content heading not updated: %q", got.Content)
	}
	if !strings.Contains(got.Content, "body") {
		t.Errorf("Retitle() lost body: %q", got.Content)
	}
}

func TestDeleteRestoreAndList(t *testing.T) {
	s := openTestStore(t)

	a, _ := s.Create("First Note", "")
	b, _ := s.Create("Second Note", "")

	if err := s.Delete(a.ID); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}

	active, err := s.List()
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(active) != 1 || active[0].ID != b.ID {
		t.Errorf("List() after delete = %+v, want only %s", active, b.ID)
	}

	deleted, err := s.ListDeleted()
	if err != nil {
		t.Fatalf("ListDeleted() failed: %v", err)
	}
	if len(deleted) != 1 || deleted[0].ID != a.ID {
		t.Errorf("ListDeleted() = %+v, want only %s", deleted, a.ID)
	}

	if err := s.Restore(a.ID); err != nil {
		t.Fatalf("Restore() failed: %v", err)
	}
	active, _ = s.List()
	if len(active) != 2 {
		t.Errorf("List() after restore = %d notes, want 2", len(active))
	}

	if err := s.Restore(b.ID); err == nil {
		t.Errorf("Restore() of live note should fail")
	}
}

func TestTogglePin(t *testing.T) {
	s := openTestStore(t)

	a, _ := s.Create("Unpinned", "")
	b, _ := s.Create("Pinned", "")

	if err := s.TogglePin(b.ID); err != nil {
		t.Fatalf("TogglePin() failed: %v", err)
	}

	list, err := s.List()
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(list) != 2 || list[0].ID != b.ID {
		t.Errorf("List() order = %+v, want pinned %s first", list, b.ID)
	}
	if !list[0].Pinned {
		t.Errorf("pinned note not marked pinned")
	}
	_ = a
}
