package repository

import (
	"context"
	"fmt"

	"realty/internal/model"
)

// PriceBucket is a raw price-range bucket index with its count.
// Index 0-4 are the ranges in PriceBucketBounds; PriceBucketOther is everything else.
type PriceBucket struct {
	Index int `db:"bucket"`
	Count int `db:"count"`
}

// PriceBucketOther collects prices outside every bounded range
const PriceBucketOther = 5

// PriceBucketBounds are the lower bounds of the bounded buckets; the last
// value is the exclusive upper bound of the final one.
var PriceBucketBounds = []float64{0, 300000, 500000, 700000, 1000000, 10000000}

// AveragePriceByCity groups listings by city, most expensive first
func (s *Store) AveragePriceByCity(ctx context.Context) ([]model.CityPriceStats, error) {
	query := `
		SELECT
			city,
			AVG(price) AS average_price,
			COUNT(*) AS property_count,
			MIN(price) AS min_price,
			MAX(price) AS max_price
		FROM properties
		GROUP BY city
		ORDER BY average_price DESC, city ASC
	`
	rows := []model.CityPriceStats{}
	if err := s.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to aggregate prices by city: %w", err)
	}
	return rows, nil
}

// MostActiveAgents returns the agents with the most active listings
func (s *Store) MostActiveAgents(ctx context.Context, limit int) ([]model.Agent, error) {
	query := s.db.Rebind("SELECT " + agentColumns + " FROM agents ORDER BY active_listings DESC, name ASC LIMIT ?")
	rows := []model.Agent{}
	if err := s.db.SelectContext(ctx, &rows, query, limit); err != nil {
		return nil, fmt.Errorf("failed to rank agents: %w", err)
	}
	return rows, nil
}

// PropertiesByType groups listings by property type, largest group first
func (s *Store) PropertiesByType(ctx context.Context) ([]model.PropertyTypeStats, error) {
	query := `
		SELECT
			property_type,
			COUNT(*) AS count,
			AVG(price) AS average_price,
			SUM(price) AS total_value
		FROM properties
		GROUP BY property_type
		ORDER BY count DESC, property_type ASC
	`
	rows := []model.PropertyTypeStats{}
	if err := s.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to aggregate properties by type: %w", err)
	}
	return rows, nil
}

// InquiryStatistics counts inquiries per status
func (s *Store) InquiryStatistics(ctx context.Context) ([]model.InquiryStatusCount, error) {
	query := `SELECT status, COUNT(*) AS count FROM inquiries GROUP BY status ORDER BY status ASC`
	rows := []model.InquiryStatusCount{}
	if err := s.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to aggregate inquiries: %w", err)
	}
	return rows, nil
}

// PriceDistribution counts listings per price bucket. Empty buckets are omitted.
func (s *Store) PriceDistribution(ctx context.Context) ([]PriceBucket, error) {
	b := PriceBucketBounds
	query := s.db.Rebind(fmt.Sprintf(`
		SELECT
			CASE
				WHEN price < ? THEN %d
				WHEN price < ? THEN 0
				WHEN price < ? THEN 1
				WHEN price < ? THEN 2
				WHEN price < ? THEN 3
				WHEN price < ? THEN 4
				ELSE %d
			END AS bucket,
			COUNT(*) AS count
		FROM properties
		GROUP BY bucket
		ORDER BY bucket ASC
	`, PriceBucketOther, PriceBucketOther))

	rows := []PriceBucket{}
	if err := s.db.SelectContext(ctx, &rows, query, b[0], b[1], b[2], b[3], b[4], b[5]); err != nil {
		return nil, fmt.Errorf("failed to bucket prices: %w", err)
	}
	return rows, nil
}

// SeedData is the sample catalogue written by Seed
type SeedData struct {
	Agents     []model.Agent
	Properties []model.Listing
	Users      []model.User
	Inquiries  []model.Inquiry
}

// Seed writes data in one transaction, but only into an empty catalogue.
// Returns false when listings already existed and nothing was written.
func (s *Store) Seed(ctx context.Context, data *SeedData) (bool, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	var count int
	if err := tx.GetContext(ctx, &count, "SELECT COUNT(*) FROM properties"); err != nil {
		return false, fmt.Errorf("failed to count properties: %w", err)
	}
	if count > 0 {
		return false, nil
	}

	for i := range data.Agents {
		if err := insertAgent(ctx, tx, &data.Agents[i]); err != nil {
			return false, err
		}
	}
	for i := range data.Properties {
		if err := insertProperty(ctx, tx, &data.Properties[i]); err != nil {
			return false, err
		}
	}
	for i := range data.Users {
		if err := insertUser(ctx, tx, &data.Users[i]); err != nil {
			return false, err
		}
	}
	for i := range data.Inquiries {
		if err := insertInquiry(ctx, tx, &data.Inquiries[i]); err != nil {
			return false, err
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return true, nil
}
