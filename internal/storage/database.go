package storage

import (
	"database/sql"

	_ "modernc.org/sqlite"
)

// Open opens the sqlite database at path and creates the schema if missing.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	createPredictionsTable := `
	CREATE TABLE IF NOT EXISTS predictions (
			"id" TEXT PRIMARY KEY,
			"patient" TEXT NOT NULL,
			"risk_class" TEXT NOT NULL,
			"risk_score" TEXT NOT NULL,
			"message" TEXT NOT NULL,
			"created_at" DATETIME NOT NULL
	);`

	if _, err := db.Exec(createPredictionsTable); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// Store is the prediction audit log.
type Store struct {
	db *sql.DB
}

func (s *Store) Close() error {
	return s.db.Close()
}
