package client

import (
	"context"
	"net/http"

	"realty/internal/model"
)

// AggregationClient reads the reporting endpoints under /aggregation
type AggregationClient struct {
	c *Client
}

// AveragePriceByCity handles GET /aggregation/average-price-by-city
func (a *AggregationClient) AveragePriceByCity(ctx context.Context) ([]model.CityPriceStats, error) {
	var rows []model.CityPriceStats
	if err := a.get(ctx, "average-price-by-city", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// MostActiveAgents handles GET /aggregation/most-active-agents
func (a *AggregationClient) MostActiveAgents(ctx context.Context) ([]model.Agent, error) {
	var rows []model.Agent
	if err := a.get(ctx, "most-active-agents", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// PropertiesByType handles GET /aggregation/properties-by-type
func (a *AggregationClient) PropertiesByType(ctx context.Context) ([]model.PropertyTypeStats, error) {
	var rows []model.PropertyTypeStats
	if err := a.get(ctx, "properties-by-type", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// InquiryStatistics handles GET /aggregation/inquiry-statistics
func (a *AggregationClient) InquiryStatistics(ctx context.Context) ([]model.InquiryStatusCount, error) {
	var rows []model.InquiryStatusCount
	if err := a.get(ctx, "inquiry-statistics", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// PriceRangeDistribution handles GET /aggregation/price-range-distribution
func (a *AggregationClient) PriceRangeDistribution(ctx context.Context) ([]model.PriceRangeBucket, error) {
	var rows []model.PriceRangeBucket
	if err := a.get(ctx, "price-range-distribution", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (a *AggregationClient) get(ctx context.Context, report string, out any) error {
	_, err := a.c.do(ctx, http.MethodGet, "/aggregation/"+report, nil, nil, out)
	return err
}
