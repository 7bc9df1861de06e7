package glossary

import (
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"
)

const createGlossaryTable = `CREATE TABLE IF NOT EXISTS glossary (
	phrase TEXT NOT NULL,
	lang TEXT NOT NULL,
	translation TEXT NOT NULL,
	PRIMARY KEY (phrase, lang)
)`

// SQLiteBackend persists the glossary in a SQLite database, one row per
// phrase+language pair with upsert semantics (last writer wins)
type SQLiteBackend struct {
	db *sql.DB
	sq sq.StatementBuilderType
}

// NewSQLiteBackend opens (and if needed initializes) the database at path
func NewSQLiteBackend(path string) (*SQLiteBackend, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(createGlossaryTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create glossary table: %w", err)
	}
	return &SQLiteBackend{
		db: db,
		sq: sq.StatementBuilder.PlaceholderFormat(sq.Question),
	}, nil
}

// Load reads all glossary rows into the nested mapping
func (b *SQLiteBackend) Load() (map[string]map[string]string, error) {
	sqlStr, args, err := b.sq.
		Select("phrase", "lang", "translation").
		From("glossary").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := b.db.Query(sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query glossary: %w", err)
	}
	defer rows.Close()

	entries := make(map[string]map[string]string)
	for rows.Next() {
		var phrase, lang, translation string
		if err := rows.Scan(&phrase, &lang, &translation); err != nil {
			return nil, err
		}
		if entries[phrase] == nil {
			entries[phrase] = make(map[string]string)
		}
		entries[phrase][lang] = translation
	}
	return entries, rows.Err()
}

// Save upserts every phrase+language pair in one transaction
func (b *SQLiteBackend) Save(entries map[string]map[string]string) error {
	tx, err := b.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	for phrase, langs := range entries {
		for lang, translation := range langs {
			sqlStr, args, err := b.sq.
				Insert("glossary").
				Columns("phrase", "lang", "translation").
				Values(phrase, lang, translation).
				Suffix("ON CONFLICT(phrase, lang) DO UPDATE SET translation=excluded.translation").
				ToSql()
			if err != nil {
				tx.Rollback()
				return err
			}
			if _, err := tx.Exec(sqlStr, args...); err != nil {
				tx.Rollback()
				return fmt.Errorf("failed to upsert glossary entry: %w", err)
			}
		}
	}
	return tx.Commit()
}

// Close releases the database handle
func (b *SQLiteBackend) Close() error {
	return b.db.Close()
}
