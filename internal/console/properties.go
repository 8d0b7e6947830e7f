package console

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"

	"realty/internal/client"
	"realty/internal/inquiry"
	"realty/internal/model"
)

// LoadProperties fetches the listings matching filters
func (c *Console) LoadProperties(ctx context.Context, filters model.ListingFilters) Page[[]model.Listing] {
	query := client.BuildListingQuery(filters)
	return Load(ctx, func(ctx context.Context) ([]model.Listing, error) {
		return c.api.Properties.List(ctx, query)
	}, loading[[]model.Listing](c, "properties"))
}

// RenderProperties prints the listings page. A failed load is logged and
// shown as an empty result.
func (c *Console) RenderProperties(page Page[[]model.Listing]) {
	c.heading("Properties", "Browse our collection of real estate listings")

	if page.State == Failed {
		log.Printf("Error loading properties: %v", page.Err)
	}
	if len(page.Data) == 0 {
		c.printf("No properties found\nTry adjusting your filters\n")
		return
	}

	rows := make([][]string, 0, len(page.Data))
	for _, l := range page.Data {
		rows = append(rows, []string{
			l.ID,
			l.Title,
			l.PropertyType,
			l.City,
			strconv.Itoa(l.Bedrooms),
			strconv.Itoa(l.Bathrooms),
			formatSize(l.Size),
			FormatPrice(l.Price),
			l.Status,
		})
	}
	c.table([]string{"ID", "TITLE", "TYPE", "CITY", "BEDS", "BATHS", "SIZE", "PRICE", "STATUS"}, rows)
	c.printf("\n%d properties\n", len(page.Data))
}

// LoadProperty fetches one listing
func (c *Console) LoadProperty(ctx context.Context, id string) Page[*model.Listing] {
	return Load(ctx, func(ctx context.Context) (*model.Listing, error) {
		return c.api.Properties.Get(ctx, id)
	}, loading[*model.Listing](c, "property"))
}

// RenderProperty prints the listing detail page
func (c *Console) RenderProperty(page Page[*model.Listing]) {
	if page.State == Failed {
		if !errors.Is(page.Err, client.ErrNotFound) {
			log.Printf("Error loading property: %v", page.Err)
		}
		c.printf("Property not found\n")
		return
	}

	l := page.Data
	c.heading(l.Title, l.Address)
	c.table([]string{"Price", FormatPrice(l.Price)}, [][]string{
		{"Type", l.PropertyType},
		{"City", l.City},
		{"Bedrooms", strconv.Itoa(l.Bedrooms)},
		{"Bathrooms", strconv.Itoa(l.Bathrooms)},
		{"Size", formatSize(l.Size) + " sq ft"},
		{"Status", l.Status},
		{"Agent", l.AgentID},
		{"Listed", FormatDate(l.CreatedAt)},
	})
	if l.Description != "" {
		c.printf("\nDescription\n%s\n", l.Description)
	}
}

// SubmitInquiry loads the listing and sends the visitor's inquiry about it.
// Failures are reported to the visitor and returned.
func (c *Console) SubmitInquiry(ctx context.Context, propertyID string, form inquiry.ContactForm) error {
	page := c.LoadProperty(ctx, propertyID)
	if page.State == Failed {
		c.RenderProperty(page)
		return fmt.Errorf("failed to load property %s: %w", propertyID, page.Err)
	}

	if _, err := c.workflow.Submit(ctx, *page.Data, form); err != nil {
		log.Printf("Error submitting inquiry: %v", err)
		c.printf("Error submitting inquiry. Please try again.\n")
		return err
	}

	c.printf("Inquiry submitted successfully!\n")
	return nil
}

func formatSize(size float64) string {
	return FormatCount(int(size))
}
