package service

import (
	"context"

	"realty/internal/model"
)

// ListInquiries returns inquiries matching filter
func (c *Catalog) ListInquiries(ctx context.Context, filter model.InquiryFilter) ([]model.Inquiry, error) {
	return c.repo.ListInquiries(ctx, filter)
}

// GetInquiry returns an inquiry, or nil when it does not exist
func (c *Catalog) GetInquiry(ctx context.Context, id string) (*model.Inquiry, error) {
	return c.repo.GetInquiry(ctx, id)
}

// CreateInquiry validates and stores a new inquiry; a missing status becomes Pending
func (c *Catalog) CreateInquiry(ctx context.Context, inquiry model.Inquiry) (*model.Inquiry, error) {
	if inquiry.Status == "" {
		inquiry.Status = model.InquiryPending
	}
	if err := validateInquiry(&inquiry); err != nil {
		return nil, err
	}
	inquiry.ID = c.newID()
	inquiry.CreatedAt = model.NewTimestamp(c.now())
	if err := c.repo.CreateInquiry(ctx, &inquiry); err != nil {
		return nil, err
	}
	return &inquiry, nil
}

// UpdateInquiry applies a partial update and returns the stored result,
// or nil when the inquiry does not exist
func (c *Catalog) UpdateInquiry(ctx context.Context, id string, fields map[string]interface{}) (*model.Inquiry, error) {
	if err := validateInquiryFields(fields); err != nil {
		return nil, err
	}
	found, err := c.repo.UpdateInquiry(ctx, id, fields)
	if err != nil || !found {
		return nil, err
	}
	return c.repo.GetInquiry(ctx, id)
}

// DeleteInquiry removes an inquiry; false means it did not exist
func (c *Catalog) DeleteInquiry(ctx context.Context, id string) (bool, error) {
	return c.repo.DeleteInquiry(ctx, id)
}
