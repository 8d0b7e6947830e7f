package service

import (
	"context"

	"realty/internal/model"
)

// ListProperties returns listings matching filter
func (c *Catalog) ListProperties(ctx context.Context, filter model.PropertyFilter) ([]model.Listing, error) {
	return c.repo.ListProperties(ctx, filter)
}

// GetProperty returns a listing, or nil when it does not exist
func (c *Catalog) GetProperty(ctx context.Context, id string) (*model.Listing, error) {
	return c.repo.GetProperty(ctx, id)
}

// CreateProperty validates and stores a new listing. Any id or timestamp in
// the payload is replaced; a missing status becomes Available.
func (c *Catalog) CreateProperty(ctx context.Context, listing model.Listing) (*model.Listing, error) {
	if err := validateListing(&listing); err != nil {
		return nil, err
	}
	listing.ID = c.newID()
	listing.CreatedAt = model.NewTimestamp(c.now())
	if listing.Status == "" {
		listing.Status = model.StatusAvailable
	}
	if err := c.repo.CreateProperty(ctx, &listing); err != nil {
		return nil, err
	}
	return &listing, nil
}

// UpdateProperty applies a partial update and returns the stored result,
// or nil when the listing does not exist
func (c *Catalog) UpdateProperty(ctx context.Context, id string, fields map[string]interface{}) (*model.Listing, error) {
	if err := validateListingFields(fields); err != nil {
		return nil, err
	}
	found, err := c.repo.UpdateProperty(ctx, id, fields)
	if err != nil || !found {
		return nil, err
	}
	return c.repo.GetProperty(ctx, id)
}

// DeleteProperty removes a listing; false means it did not exist
func (c *Catalog) DeleteProperty(ctx context.Context, id string) (bool, error) {
	return c.repo.DeleteProperty(ctx, id)
}

