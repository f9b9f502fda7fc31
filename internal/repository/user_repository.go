package repository

import (
	"context"
	"database/sql"
	"strings"
)

// User mirrors the 'users' table. Password holds the PBKDF2 hash string,
// never the plain text.
type User struct {
	ID       int64
	Email    string
	Password string
}

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Create inserts a user and returns its ID. A violation of the users.email
// UNIQUE constraint maps to ErrEmailExists.
func (r *UserRepo) Create(ctx context.Context, email, passwordHash string) (int64, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (email, password) VALUES (?,?)",
		email, passwordHash)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique constraint") {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	return res.LastInsertId()
}

// GetByEmail fetches a user by normalized email. Returns sql.ErrNoRows when
// no such user exists.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var u User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,email,password FROM users WHERE email=? LIMIT 1",
		email).Scan(&u.ID, &u.Email, &u.Password)
	return u, err
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (User, error) {
	var u User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,email,password FROM users WHERE id=? LIMIT 1",
		id).Scan(&u.ID, &u.Email, &u.Password)
	return u, err
}
