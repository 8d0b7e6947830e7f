package service

import (
	"context"

	"realty/internal/model"
)

// ListAgents returns the agent directory
func (c *Catalog) ListAgents(ctx context.Context, filter model.AgentFilter) ([]model.Agent, error) {
	return c.repo.ListAgents(ctx, filter)
}

// GetAgent returns an agent, or nil when it does not exist
func (c *Catalog) GetAgent(ctx context.Context, id string) (*model.Agent, error) {
	return c.repo.GetAgent(ctx, id)
}

// CreateAgent validates and stores a new agent
func (c *Catalog) CreateAgent(ctx context.Context, agent model.Agent) (*model.Agent, error) {
	if err := validateAgent(&agent); err != nil {
		return nil, err
	}
	agent.ID = c.newID()
	agent.CreatedAt = model.NewTimestamp(c.now())
	if err := c.repo.CreateAgent(ctx, &agent); err != nil {
		return nil, err
	}
	return &agent, nil
}

// UpdateAgent applies a partial update and returns the stored result,
// or nil when the agent does not exist
func (c *Catalog) UpdateAgent(ctx context.Context, id string, fields map[string]interface{}) (*model.Agent, error) {
	found, err := c.repo.UpdateAgent(ctx, id, fields)
	if err != nil || !found {
		return nil, err
	}
	return c.repo.GetAgent(ctx, id)
}

// DeleteAgent removes an agent; false means it did not exist
func (c *Catalog) DeleteAgent(ctx context.Context, id string) (bool, error) {
	return c.repo.DeleteAgent(ctx, id)
}
