package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/samber/mo"

	"foodTracker/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create inserts a new user with the given username.
// Returns the created User with its generated ID.
func (r *UserRepository) Create(ctx context.Context, username string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `INSERT INTO users (username) VALUES (?)`, username)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &models.User{ID: id, Username: username}, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (mo.Option[*models.User], error) {
	return r.getOne(ctx, `SELECT id, username FROM users WHERE id = ?`, id)
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (mo.Option[*models.User], error) {
	return r.getOne(ctx, `SELECT id, username FROM users WHERE username = ?`, username)
}

// EnsureByUsername returns the user with the given name, creating it first if needed.
func (r *UserRepository) EnsureByUsername(ctx context.Context, username string) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if _, err := r.db.ExecContext(ctx, `INSERT OR IGNORE INTO users (username) VALUES (?)`, username); err != nil {
		return nil, err
	}
	u, err := r.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u.IsAbsent() {
		return nil, errors.New("user vanished after insert")
	}
	return u.MustGet(), nil
}

func (r *UserRepository) getOne(ctx context.Context, query string, arg any) (mo.Option[*models.User], error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var u models.User
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&u.ID, &u.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return mo.None[*models.User](), nil
		}
		return mo.None[*models.User](), err
	}
	return mo.Some(&u), nil
}
