package repository

import (
	"context"
	"fmt"
	"strings"

	"realty/internal/model"

	"github.com/jmoiron/sqlx"
)

const propertyColumns = `id, title, description, price, property_type, bedrooms, bathrooms,
	size, city, address, agent_id, status, created_at`

const insertPropertySQL = `
	INSERT INTO properties (id, title, description, price, property_type, bedrooms, bathrooms,
		size, city, address, agent_id, status, created_at)
	VALUES (:id, :title, :description, :price, :property_type, :bedrooms, :bathrooms,
		:size, :city, :address, :agent_id, :status, :created_at)
`

// propertySortColumns whitelists sortBy values
var propertySortColumns = map[string]string{
	model.SortByPrice:     "price",
	model.SortBySize:      "size",
	model.SortByCity:      "city",
	model.SortByCreatedAt: "created_at",
}

// propertyFields maps JSON keys accepted by partial updates to columns
var propertyFields = map[string]string{
	"title":        "title",
	"description":  "description",
	"price":        "price",
	"propertyType": "property_type",
	"bedrooms":     "bedrooms",
	"bathrooms":    "bathrooms",
	"size":         "size",
	"city":         "city",
	"address":      "address",
	"agentId":      "agent_id",
	"status":       "status",
}

// ListProperties returns listings matching filter, ordered as requested
func (s *Store) ListProperties(ctx context.Context, filter model.PropertyFilter) ([]model.Listing, error) {
	var where whereClause
	if filter.City != "" {
		where.add("LOWER(city) LIKE ?", "%"+strings.ToLower(filter.City)+"%")
	}
	if filter.PropertyType != "" {
		where.add("property_type = ?", filter.PropertyType)
	}
	if filter.MinPrice != nil {
		where.add("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		where.add("price <= ?", *filter.MaxPrice)
	}

	sortColumn, ok := propertySortColumns[filter.SortBy]
	if !ok {
		sortColumn = "created_at"
	}
	direction := "ASC"
	if filter.Descending {
		direction = "DESC"
	}

	query := fmt.Sprintf(
		"SELECT %s FROM properties WHERE %s ORDER BY %s %s, id ASC",
		propertyColumns, where.String(), sortColumn, direction,
	)

	listings := []model.Listing{}
	if err := s.db.SelectContext(ctx, &listings, s.db.Rebind(query), where.args...); err != nil {
		return nil, fmt.Errorf("failed to fetch properties: %w", err)
	}
	return listings, nil
}

// GetProperty retrieves a single listing by its ID
func (s *Store) GetProperty(ctx context.Context, id string) (*model.Listing, error) {
	var listing model.Listing
	found, err := s.getRow(ctx, &listing, "SELECT "+propertyColumns+" FROM properties WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &listing, nil
}

// CreateProperty inserts a fully populated listing
func (s *Store) CreateProperty(ctx context.Context, listing *model.Listing) error {
	return insertProperty(ctx, s.db, listing)
}

// UpdateProperty applies a partial update; false means the id is unknown
func (s *Store) UpdateProperty(ctx context.Context, id string, fields map[string]interface{}) (bool, error) {
	return s.updateRow(ctx, "properties", id, propertyFields, fields)
}

// DeleteProperty removes a listing; false means the id is unknown
func (s *Store) DeleteProperty(ctx context.Context, id string) (bool, error) {
	return s.deleteRow(ctx, "properties", id)
}

// CountProperties returns the number of stored listings
func (s *Store) CountProperties(ctx context.Context) (int, error) {
	var count int
	if err := s.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM properties"); err != nil {
		return 0, fmt.Errorf("failed to count properties: %w", err)
	}
	return count, nil
}

func insertProperty(ctx context.Context, e sqlx.ExtContext, listing *model.Listing) error {
	if _, err := sqlx.NamedExecContext(ctx, e, insertPropertySQL, listing); err != nil {
		return fmt.Errorf("failed to insert property: %w", err)
	}
	return nil
}
