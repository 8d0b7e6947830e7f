package service

import (
	"context"

	"realty/internal/model"
	"realty/internal/repository"
)

// priceRangeLabels names repository price buckets by index
var priceRangeLabels = map[int]string{
	0:                           "$0 - $300,000",
	1:                           "$300,000 - $500,000",
	2:                           "$500,000 - $700,000",
	3:                           "$700,000 - $1,000,000",
	4:                           "$1,000,000+",
	repository.PriceBucketOther: "Other",
}

// AveragePriceByCity reports price statistics per city, averages rounded to cents
func (c *Catalog) AveragePriceByCity(ctx context.Context) ([]model.CityPriceStats, error) {
	rows, err := c.repo.AveragePriceByCity(ctx)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].AveragePrice = round2(rows[i].AveragePrice)
	}
	return rows, nil
}

// MostActiveAgents ranks agents by active listings
func (c *Catalog) MostActiveAgents(ctx context.Context) ([]model.Agent, error) {
	return c.repo.MostActiveAgents(ctx, mostActiveAgentsLimit)
}

// PropertiesByType reports counts and value per property type
func (c *Catalog) PropertiesByType(ctx context.Context) ([]model.PropertyTypeStats, error) {
	rows, err := c.repo.PropertiesByType(ctx)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].AveragePrice = round2(rows[i].AveragePrice)
	}
	return rows, nil
}

// InquiryStatistics counts inquiries per status
func (c *Catalog) InquiryStatistics(ctx context.Context) ([]model.InquiryStatusCount, error) {
	return c.repo.InquiryStatistics(ctx)
}

// PriceRangeDistribution counts listings per labelled price range
func (c *Catalog) PriceRangeDistribution(ctx context.Context) ([]model.PriceRangeBucket, error) {
	buckets, err := c.repo.PriceDistribution(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.PriceRangeBucket, 0, len(buckets))
	for _, b := range buckets {
		label, ok := priceRangeLabels[b.Index]
		if !ok {
			label = priceRangeLabels[repository.PriceBucketOther]
		}
		out = append(out, model.PriceRangeBucket{PriceRange: label, Count: b.Count})
	}
	return out, nil
}
