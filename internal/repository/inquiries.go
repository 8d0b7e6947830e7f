package repository

import (
	"context"
	"fmt"

	"realty/internal/model"

	"github.com/jmoiron/sqlx"
)

const inquiryColumns = `id, property_id, user_id, agent_id, message, status, created_at`

const insertInquirySQL = `
	INSERT INTO inquiries (id, property_id, user_id, agent_id, message, status, created_at)
	VALUES (:id, :property_id, :user_id, :agent_id, :message, :status, :created_at)
`

var inquiryFields = map[string]string{
	"propertyId": "property_id",
	"userId":     "user_id",
	"agentId":    "agent_id",
	"message":    "message",
	"status":     "status",
}

// ListInquiries returns inquiries matching every non-empty filter field, newest first
func (s *Store) ListInquiries(ctx context.Context, filter model.InquiryFilter) ([]model.Inquiry, error) {
	var where whereClause
	if filter.PropertyID != "" {
		where.add("property_id = ?", filter.PropertyID)
	}
	if filter.UserID != "" {
		where.add("user_id = ?", filter.UserID)
	}
	if filter.AgentID != "" {
		where.add("agent_id = ?", filter.AgentID)
	}
	if filter.Status != "" {
		where.add("status = ?", filter.Status)
	}

	query := fmt.Sprintf("SELECT %s FROM inquiries WHERE %s ORDER BY created_at DESC, id ASC", inquiryColumns, where.String())

	inquiries := []model.Inquiry{}
	if err := s.db.SelectContext(ctx, &inquiries, s.db.Rebind(query), where.args...); err != nil {
		return nil, fmt.Errorf("failed to fetch inquiries: %w", err)
	}
	return inquiries, nil
}

// GetInquiry retrieves a single inquiry by its ID
func (s *Store) GetInquiry(ctx context.Context, id string) (*model.Inquiry, error) {
	var inquiry model.Inquiry
	found, err := s.getRow(ctx, &inquiry, "SELECT "+inquiryColumns+" FROM inquiries WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("failed to get inquiry: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &inquiry, nil
}

// CreateInquiry inserts a fully populated inquiry
func (s *Store) CreateInquiry(ctx context.Context, inquiry *model.Inquiry) error {
	return insertInquiry(ctx, s.db, inquiry)
}

// UpdateInquiry applies a partial update; false means the id is unknown
func (s *Store) UpdateInquiry(ctx context.Context, id string, fields map[string]interface{}) (bool, error) {
	return s.updateRow(ctx, "inquiries", id, inquiryFields, fields)
}

// DeleteInquiry removes an inquiry; false means the id is unknown
func (s *Store) DeleteInquiry(ctx context.Context, id string) (bool, error) {
	return s.deleteRow(ctx, "inquiries", id)
}

func insertInquiry(ctx context.Context, e sqlx.ExtContext, inquiry *model.Inquiry) error {
	if _, err := sqlx.NamedExecContext(ctx, e, insertInquirySQL, inquiry); err != nil {
		return fmt.Errorf("failed to insert inquiry: %w", err)
	}
	return nil
}
