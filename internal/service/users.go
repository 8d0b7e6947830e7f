package service

import (
	"context"

	"realty/internal/model"
)

// ListUsers returns every user
func (c *Catalog) ListUsers(ctx context.Context) ([]model.User, error) {
	return c.repo.ListUsers(ctx)
}

// GetUser returns a user, or nil when it does not exist
func (c *Catalog) GetUser(ctx context.Context, id string) (*model.User, error) {
	return c.repo.GetUser(ctx, id)
}

// CreateUser always stores a new record; there is no lookup by email
func (c *Catalog) CreateUser(ctx context.Context, user model.User) (*model.User, error) {
	user.ID = c.newID()
	user.CreatedAt = model.NewTimestamp(c.now())
	if err := c.repo.CreateUser(ctx, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser applies a partial update and returns the stored result,
// or nil when the user does not exist
func (c *Catalog) UpdateUser(ctx context.Context, id string, fields map[string]interface{}) (*model.User, error) {
	found, err := c.repo.UpdateUser(ctx, id, fields)
	if err != nil || !found {
		return nil, err
	}
	return c.repo.GetUser(ctx, id)
}

// DeleteUser removes a user; false means it did not exist
func (c *Catalog) DeleteUser(ctx context.Context, id string) (bool, error) {
	return c.repo.DeleteUser(ctx, id)
}
