package repository

import (
	"context"
	"fmt"

	"realty/internal/model"

	"github.com/jmoiron/sqlx"
)

const agentColumns = `id, name, email, phone, specialization, active_listings, created_at`

const insertAgentSQL = `
	INSERT INTO agents (id, name, email, phone, specialization, active_listings, created_at)
	VALUES (:id, :name, :email, :phone, :specialization, :active_listings, :created_at)
`

var agentFields = map[string]string{
	"name":           "name",
	"email":          "email",
	"phone":          "phone",
	"specialization": "specialization",
	"activeListings": "active_listings",
}

// ListAgents returns agents, optionally narrowed to one specialization
func (s *Store) ListAgents(ctx context.Context, filter model.AgentFilter) ([]model.Agent, error) {
	var where whereClause
	if filter.Specialization != "" {
		where.add("specialization = ?", filter.Specialization)
	}

	query := fmt.Sprintf("SELECT %s FROM agents WHERE %s ORDER BY created_at ASC, id ASC", agentColumns, where.String())

	agents := []model.Agent{}
	if err := s.db.SelectContext(ctx, &agents, s.db.Rebind(query), where.args...); err != nil {
		return nil, fmt.Errorf("failed to fetch agents: %w", err)
	}
	return agents, nil
}

// GetAgent retrieves a single agent by its ID
func (s *Store) GetAgent(ctx context.Context, id string) (*model.Agent, error) {
	var agent model.Agent
	found, err := s.getRow(ctx, &agent, "SELECT "+agentColumns+" FROM agents WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("failed to get agent: %w", err)
	}
	if !found {
		return nil, nil
	}
	return &agent, nil
}

// CreateAgent inserts a fully populated agent
func (s *Store) CreateAgent(ctx context.Context, agent *model.Agent) error {
	return insertAgent(ctx, s.db, agent)
}

// UpdateAgent applies a partial update; false means the id is unknown
func (s *Store) UpdateAgent(ctx context.Context, id string, fields map[string]interface{}) (bool, error) {
	return s.updateRow(ctx, "agents", id, agentFields, fields)
}

// DeleteAgent removes an agent; false means the id is unknown
func (s *Store) DeleteAgent(ctx context.Context, id string) (bool, error) {
	return s.deleteRow(ctx, "agents", id)
}

func insertAgent(ctx context.Context, e sqlx.ExtContext, agent *model.Agent) error {
	if _, err := sqlx.NamedExecContext(ctx, e, insertAgentSQL, agent); err != nil {
		return fmt.Errorf("failed to insert agent: %w", err)
	}
	return nil
}
