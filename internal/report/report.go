// Package report loads the analytics dashboard's four reports concurrently.
package report

import (
	"context"
	"fmt"

	"realty/internal/model"

	"golang.org/x/sync/errgroup"
)

// Source serves the individual reports. *client.AggregationClient satisfies it.
type Source interface {
	AveragePriceByCity(ctx context.Context) ([]model.CityPriceStats, error)
	MostActiveAgents(ctx context.Context) ([]model.Agent, error)
	PropertiesByType(ctx context.Context) ([]model.PropertyTypeStats, error)
	InquiryStatistics(ctx context.Context) ([]model.InquiryStatusCount, error)
}

// Aggregator joins the four reports into one bundle
type Aggregator struct {
	source Source
}

// NewAggregator creates a new aggregator over source
func NewAggregator(source Source) *Aggregator {
	return &Aggregator{source: source}
}

// Load issues all four reads at once and waits for every one of them. On any
// failure the first error is returned and no bundle is produced; the other
// reads are not cancelled.
func (a *Aggregator) Load(ctx context.Context) (*model.ReportBundle, error) {
	var (
		g      errgroup.Group
		bundle model.ReportBundle
	)

	g.Go(func() error {
		rows, err := a.source.AveragePriceByCity(ctx)
		if err != nil {
			return fmt.Errorf("average price by city: %w", err)
		}
		bundle.AveragePriceByCity = rows
		return nil
	})
	g.Go(func() error {
		rows, err := a.source.MostActiveAgents(ctx)
		if err != nil {
			return fmt.Errorf("most active agents: %w", err)
		}
		bundle.MostActiveAgents = rows
		return nil
	})
	g.Go(func() error {
		rows, err := a.source.PropertiesByType(ctx)
		if err != nil {
			return fmt.Errorf("properties by type: %w", err)
		}
		bundle.PropertiesByType = rows
		return nil
	})
	g.Go(func() error {
		rows, err := a.source.InquiryStatistics(ctx)
		if err != nil {
			return fmt.Errorf("inquiry statistics: %w", err)
		}
		bundle.InquiryStatistics = rows
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &bundle, nil
}
