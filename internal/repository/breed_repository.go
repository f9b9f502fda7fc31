package repository

import (
	"context"
	"database/sql"
)

// Breed mirrors the 'cats' table. IDs are assigned by SQLite on insert and
// carry no meaning beyond ordering.
type Breed struct {
	ID          int64
	Name        string
	Description string
	ImageURL    string
}

type BreedRepo struct{ DB *sql.DB }

func NewBreedRepo(db *sql.DB) *BreedRepo { return &BreedRepo{DB: db} }

// ReplaceAll destructively replaces the entire cats table with the given
// breeds, preserving input order. Drop, create and inserts run in a single
// transaction so a concurrent reader never observes a missing or partially
// populated table.
func (r *BreedRepo) ReplaceAll(ctx context.Context, breeds []Breed) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS cats"); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `CREATE TABLE cats (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT,
		description TEXT,
		image_url TEXT
	)`); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO cats (name, description, image_url) VALUES (?,?,?)")
	if err != nil {
		return err
	}
	defer func() { _ = stmt.Close() }()

	for _, b := range breeds {
		if _, err := stmt.ExecContext(ctx, b.Name, b.Description, b.ImageURL); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// ListAll returns all stored breeds ordered by id ascending, which matches
// the insertion order of the last ReplaceAll.
func (r *BreedRepo) ListAll(ctx context.Context) ([]Breed, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,name,description,image_url FROM cats ORDER BY id ASC")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var breeds []Breed
	for rows.Next() {
		var b Breed
		if err := rows.Scan(&b.ID, &b.Name, &b.Description, &b.ImageURL); err != nil {
			return nil, err
		}
		breeds = append(breeds, b)
	}
	return breeds, rows.Err()
}
