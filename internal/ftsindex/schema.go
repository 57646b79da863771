package ftsindex

import (
	"database/sql"
	"strings"
)

// initializeSchema creates the literal_index content table, its FTS5
// virtual table, a vocabulary view, and a spellfix table for approximate
// string matching (spec §6).
func (db *DB) initializeSchema() error {
	return db.WithTx(func(tx *sql.Tx) error {
		stmts := []string{
			`CREATE TABLE IF NOT EXISTS literal_index_content (
				rowid INTEGER PRIMARY KEY AUTOINCREMENT,
				subject TEXT NOT NULL,
				predicate TEXT NOT NULL,
				object TEXT NOT NULL,
				language TEXT,
				datatype TEXT
			)`,
			`CREATE INDEX IF NOT EXISTS idx_literal_index_content_subject
				ON literal_index_content(subject)`,
			`CREATE VIRTUAL TABLE IF NOT EXISTS literal_index USING fts5(
				subject UNINDEXED,
				predicate UNINDEXED,
				object,
				language UNINDEXED,
				datatype UNINDEXED,
				content='literal_index_content',
				content_rowid='rowid'
			)`,
			`CREATE VIRTUAL TABLE IF NOT EXISTS literal_index_vocab
				USING fts5vocab('literal_index', 'row')`,
			`CREATE VIRTUAL TABLE IF NOT EXISTS literal_index_spellfix
				USING spellfix1`,
			`CREATE TRIGGER IF NOT EXISTS literal_index_ai
				AFTER INSERT ON literal_index_content BEGIN
				INSERT INTO literal_index(rowid, subject, predicate, object, language, datatype)
				VALUES (new.rowid, new.subject, new.predicate, new.object, new.language, new.datatype);
			END`,
		}

		for _, s := range stmts {
			if _, err := tx.Exec(s); err != nil {
	// The spellfix1 module and fts5vocab module are not compiled into
				// every sqlite build; degrade gracefully rather than aborting
				// the whole schema if only an optional extension is missing.
				if strings.Contains(s, "spellfix1") || strings.Contains(s, "fts5vocab") {
					continue
				}
				return err
			}
		}

		return nil
	})
}
