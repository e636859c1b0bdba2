package notes

import store "github.com/nadia/entitle/internal/notes"

// NotesLoadedMsg carries the result of an async note list load.
type NotesLoadedMsg struct {
	Notes []store.Note
	Err   error
}

// NoteSavedMsg carries the result of a create or update.
type NoteSavedMsg struct {
	Note *store.Note
	Err  error
}

// NoteDeletedMsg carries the result of a delete or restore.
type NoteDeletedMsg struct {
	ID       string
	Restored bool
	Err      error
}

// BulkAddedMsg carries the result of a bulk note creation.
type BulkAddedMsg struct {
	Created int
	Skipped int
	Err     error
}

// RetitledMsg carries the result of a retitle operation.
type RetitledMsg struct {
	Count int
	Err   error
}
