package client

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"realty/internal/model"
)

// Lister fetches a collection, optionally filtered
type Lister[T any] interface {
	List(ctx context.Context, query Query) ([]T, error)
}

// Getter fetches one entity by id
type Getter[T any] interface {
	Get(ctx context.Context, id string) (*T, error)
}

// Creator submits a new entity and returns the server's copy
type Creator[T any] interface {
	Create(ctx context.Context, payload any) (*T, error)
}

// Updater submits a partial entity and returns the updated copy
type Updater[T any] interface {
	Update(ctx context.Context, id string, partial any) (*T, error)
}

// Deleter removes an entity
type Deleter interface {
	Delete(ctx context.Context, id string) (*Acknowledgement, error)
}

// Acknowledgement is the server's reply to a delete or an admin action
type Acknowledgement struct {
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Deleted    bool   `json:"-"`
}

// Resource is the CRUD surface of one API family, e.g. /properties
type Resource[T any] struct {
	c    *Client
	name string
	path string
}

func newResource[T any](c *Client, name string) *Resource[T] {
	return &Resource[T]{c: c, name: name, path: "/" + name}
}

// Name returns the family name, e.g. "properties"
func (r *Resource[T]) Name() string {
	return r.name
}

// List handles GET /{family}
func (r *Resource[T]) List(ctx context.Context, query Query) ([]T, error) {
	var items []T
	if _, err := r.c.do(ctx, http.MethodGet, r.path, query, nil, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Get handles GET /{family}/:id. A 404 matches ErrNotFound.
func (r *Resource[T]) Get(ctx context.Context, id string) (*T, error) {
	var item T
	if _, err := r.c.do(ctx, http.MethodGet, r.itemPath(id), nil, nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Create handles POST /{family}
func (r *Resource[T]) Create(ctx context.Context, payload any) (*T, error) {
	var item T
	if _, err := r.c.do(ctx, http.MethodPost, r.path, nil, payload, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Update handles PUT /{family}/:id with a partial body
func (r *Resource[T]) Update(ctx context.Context, id string, partial any) (*T, error) {
	var item T
	if _, err := r.c.do(ctx, http.MethodPut, r.itemPath(id), nil, partial, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete handles DELETE /{family}/:id. Deleting something that is already
// gone is not an error: the acknowledgement carries the 404 and Deleted=false.
func (r *Resource[T]) Delete(ctx context.Context, id string) (*Acknowledgement, error) {
	var ack Acknowledgement
	status, err := r.c.do(ctx, http.MethodDelete, r.itemPath(id), nil, nil, &ack)
	if err != nil {
		var statusErr *HTTPStatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			return &Acknowledgement{
				Message:    statusErr.Message,
				StatusCode: statusErr.StatusCode,
			}, nil
		}
		return nil, err
	}
	ack.StatusCode = status
	ack.Deleted = true
	return &ack, nil
}

func (r *Resource[T]) itemPath(id string) string {
	return r.path + "/" + url.PathEscape(id)
}

var (
	_ Deleter       = (*Resource[model.Listing])(nil)
	_ InquiryClient = (*Resource[model.Inquiry])(nil)
	_ UserClient    = (*Resource[model.User])(nil)
)
