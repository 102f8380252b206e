// Package export writes tokenization results to external formats.
package export

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/hiraoka/sudago/tokenizer"
)

const schema = `
CREATE TABLE IF NOT EXISTS documents (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	text       TEXT    NOT NULL,
	mode       TEXT    NOT NULL,
	created_at INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS morphemes (
	document_id     INTEGER NOT NULL REFERENCES documents(id),
	seq             INTEGER NOT NULL,
	surface         TEXT    NOT NULL,
	part_of_speech  TEXT    NOT NULL,
	dictionary_form TEXT    NOT NULL,
	normalized_form TEXT    NOT NULL,
	reading_form    TEXT    NOT NULL,
	is_oov          INTEGER NOT NULL,
	word_id         INTEGER NOT NULL,
	begin_offset    INTEGER NOT NULL,
	end_offset      INTEGER NOT NULL,
	PRIMARY KEY (document_id, seq)
);`

// SQLite appends one tokenized document to the database at path, creating
// the file and schema as needed. Part-of-speech tags are joined with commas,
// outermost first.
func SQLite(path, text string, mode tokenizer.Mode, morphemes []tokenizer.Morpheme) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		"INSERT INTO documents (text, mode, created_at) VALUES (?, ?, ?)",
		text, mode.String(), time.Now().Unix(),
	)
	if err != nil {
		return fmt.Errorf("inserting document: %w", err)
	}
	docID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading document id: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO morphemes
		(document_id, seq, surface, part_of_speech, dictionary_form,
		 normalized_form, reading_form, is_oov, word_id, begin_offset, end_offset)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, m := range morphemes {
		_, err := stmt.Exec(
			docID, i, m.Surface, strings.Join(m.PartOfSpeech, ","),
			m.DictionaryForm, m.NormalizedForm, m.ReadingForm,
			m.IsOOV, m.WordID, m.Begin, m.End,
		)
		if err != nil {
			return fmt.Errorf("inserting morpheme %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	return nil
}
