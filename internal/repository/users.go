package repository

import (
	"context"
	"fmt"

	"realty/internal/model"

	"github.com/jmoiron/sqlx"
)

const userColumns = `id, name, email, phone, created_at`

const insertUserSQL = `
	INSERT INTO users (id, name, email, phone, created_at)
	VALUES (:id, :name, :email, :phone, :created_at)
`

var userFields = map[string]string{
	"name":  "name",
	"email": "email",
	"phone": "phone",
}

// ListUsers returns every user, oldest first
func (s *Store) ListUsers(ctx context.Context) ([]model.User, error) {
	users := []model.User{}
	query := "SELECT " + userColumns + " FROM users ORDER BY created_at ASC, id ASC"
	if err := s.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	return users, nil
}

// GetUser retrieves a single user by its ID
func (s *Store) GetUser(ctx context.Context, id string) (*model.User, error) {
	var user model.User
	found, err := s.getRow(ctx, &user, "SELECT "+userColumns+" FROM users WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &user, nil
}

// CreateUser inserts a user. Email is not unique: every inquiry form
// submission creates a new record.
func (s *Store) CreateUser(ctx context.Context, user *model.User) error {
	return insertUser(ctx, s.db, user)
}

// UpdateUser applies a partial update; false means the id is unknown
func (s *Store) UpdateUser(ctx context.Context, id string, fields map[string]interface{}) (bool, error) {
	return s.updateRow(ctx, "users", id, userFields, fields)
}

// DeleteUser removes a user; false means the id is unknown
func (s *Store) DeleteUser(ctx context.Context, id string) (bool, error) {
	return s.deleteRow(ctx, "users", id)
}

func insertUser(ctx context.Context, e sqlx.ExtContext, user *model.User) error {
	if _, err := sqlx.NamedExecContext(ctx, e, insertUserSQL, user); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}
