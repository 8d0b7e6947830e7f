package console

import (
	"context"
	"log"
	"strconv"

	"realty/internal/client"
	"realty/internal/model"
)

// LoadAgents fetches the agent directory
func (c *Console) LoadAgents(ctx context.Context, filter model.AgentFilter) Page[[]model.Agent] {
	return Load(ctx, func(ctx context.Context) ([]model.Agent, error) {
		return c.api.Agents.List(ctx, client.BuildAgentQuery(filter))
	}, loading[[]model.Agent](c, "agents"))
}

// RenderAgents prints the agent directory
func (c *Console) RenderAgents(page Page[[]model.Agent]) {
	c.heading("Our Agents", "Meet our experienced real estate professionals")

	if page.State == Failed {
		log.Printf("Error loading agents: %v", page.Err)
	}
	if len(page.Data) == 0 {
		c.printf("No agents found\n")
		return
	}

	rows := make([][]string, 0, len(page.Data))
	for _, a := range page.Data {
		rows = append(rows, []string{a.Name, a.Specialization, a.Email, a.Phone, strconv.Itoa(a.ActiveListings)})
	}
	c.table([]string{"NAME", "SPECIALIZATION", "EMAIL", "PHONE", "ACTIVE LISTINGS"}, rows)
}
