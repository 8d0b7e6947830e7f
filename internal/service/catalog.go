package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"realty/internal/repository"

	"github.com/google/uuid"
)

// mostActiveAgentsLimit caps the agent ranking report
const mostActiveAgentsLimit = 10

// Catalog holds the business rules of the listings API: defaults,
// validation, id and timestamp assignment, report shaping and seeding.
type Catalog struct {
	repo  *repository.Store
	now   func() time.Time
	newID func() string
}

// NewCatalog creates a new catalog service
func NewCatalog(repo *repository.Store) *Catalog {
	return &Catalog{
		repo:  repo,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// ValidationError reports a rejected field in a create or update payload
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// InitDatabase creates the schema and seeds sample data into an empty
// catalogue. Returns false when data already existed.
func (c *Catalog) InitDatabase(ctx context.Context) (bool, error) {
	if err := c.repo.Migrate(ctx); err != nil {
		return false, err
	}
	return c.repo.Seed(ctx, c.sampleData())
}

// Ping checks the backing store
func (c *Catalog) Ping(ctx context.Context) error {
	return c.repo.Ping(ctx)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
