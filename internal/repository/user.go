package repository

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/ojas-1234/company-fitness-bot/internal/model"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository interface {
	Upsert(user *model.User) error
	ByID(id int64) (*model.User, error)
}

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

// Upsert inserts the user or refreshes their handle and display name if the
// row already exists. An existing created_at is never overwritten, so it
// keeps marking the user's first contact with the bot.
func (r *userRepository) Upsert(user *model.User) error {
	query := `
		INSERT INTO users (id, handle, display_name, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			handle = excluded.handle,
			display_name = excluded.display_name`

	_, err := r.db.Exec(query, user.ID, user.Handle, user.DisplayName, user.CreatedAt)
	return err
}

func (r *userRepository) ByID(id int64) (*model.User, error) {
	var user model.User
	query := `SELECT * FROM users WHERE id = $1`

	err := r.db.Get(&user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
