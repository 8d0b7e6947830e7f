package console

import (
	"context"
	"log"
	"strconv"

	"realty/internal/model"
)

// Totals are the dashboard's headline figures derived from a report bundle
type Totals struct {
	Cities        int
	PropertyTypes int
	Agents        int
	Inquiries     int
}

// ComputeTotals counts the cities, property types and ranked agents in b and
// sums the inquiry counts across statuses
func ComputeTotals(b *model.ReportBundle) Totals {
	t := Totals{
		Cities:        len(b.AveragePriceByCity),
		PropertyTypes: len(b.PropertiesByType),
		Agents:        len(b.MostActiveAgents),
	}
	for _, s := range b.InquiryStatistics {
		t.Inquiries += s.Count
	}
	return t
}

// LoadAnalytics fetches the four dashboard reports as one bundle
func (c *Console) LoadAnalytics(ctx context.Context) Page[*model.ReportBundle] {
	return Load(ctx, c.reports.Load, loading[*model.ReportBundle](c, "analytics"))
}

// RenderAnalytics prints the dashboard. A failed load shows empty reports.
func (c *Console) RenderAnalytics(page Page[*model.ReportBundle]) {
	c.heading("Analytics Dashboard", "Insights and statistics about your real estate platform")

	bundle := page.Data
	if page.State == Failed {
		log.Printf("Error loading analytics: %v", page.Err)
	}
	if bundle == nil {
		bundle = &model.ReportBundle{}
	}

	totals := ComputeTotals(bundle)
	c.table([]string{"Total Cities", strconv.Itoa(totals.Cities)}, [][]string{
		{"Property Types", strconv.Itoa(totals.PropertyTypes)},
		{"Active Agents", strconv.Itoa(totals.Agents)},
		{"Total Inquiries", strconv.Itoa(totals.Inquiries)},
	})

	c.printf("\nAverage Price by City\n")
	cityRows := make([][]string, 0, len(bundle.AveragePriceByCity))
	for _, s := range bundle.AveragePriceByCity {
		cityRows = append(cityRows, []string{
			s.City,
			FormatPrice(s.AveragePrice),
			strconv.Itoa(s.PropertyCount),
			FormatPrice(s.MinPrice),
			FormatPrice(s.MaxPrice),
		})
	}
	c.table([]string{"CITY", "AVERAGE", "PROPERTIES", "MIN", "MAX"}, cityRows)

	c.printf("\nProperties by Type\n")
	typeRows := make([][]string, 0, len(bundle.PropertiesByType))
	for _, s := range bundle.PropertiesByType {
		typeRows = append(typeRows, []string{
			s.PropertyType,
			strconv.Itoa(s.Count),
			FormatPrice(s.AveragePrice),
			FormatPrice(s.TotalValue),
		})
	}
	c.table([]string{"TYPE", "COUNT", "AVERAGE", "TOTAL VALUE"}, typeRows)

	c.printf("\nMost Active Agents\n")
	agentRows := make([][]string, 0, len(bundle.MostActiveAgents))
	for _, a := range bundle.MostActiveAgents {
		agentRows = append(agentRows, []string{a.Name, a.Specialization, strconv.Itoa(a.ActiveListings)})
	}
	c.table([]string{"AGENT", "SPECIALIZATION", "ACTIVE LISTINGS"}, agentRows)

	c.printf("\nInquiry Statistics\n")
	statusRows := make([][]string, 0, len(bundle.InquiryStatistics))
	for _, s := range bundle.InquiryStatistics {
		statusRows = append(statusRows, []string{s.Status, strconv.Itoa(s.Count)})
	}
	c.table([]string{"STATUS", "COUNT"}, statusRows)
}

// LoadPriceRanges fetches the price-range distribution report
func (c *Console) LoadPriceRanges(ctx context.Context) Page[[]model.PriceRangeBucket] {
	return Load(ctx, c.api.Aggregation.PriceRangeDistribution, loading[[]model.PriceRangeBucket](c, "price ranges"))
}

// RenderPriceRanges prints the listing count per price range
func (c *Console) RenderPriceRanges(page Page[[]model.PriceRangeBucket]) {
	c.heading("Price Ranges", "")

	if page.State == Failed {
		log.Printf("Error loading price ranges: %v", page.Err)
	}
	if len(page.Data) == 0 {
		c.printf("No properties found\n")
		return
	}

	rows := make([][]string, 0, len(page.Data))
	for _, b := range page.Data {
		rows = append(rows, []string{b.PriceRange, strconv.Itoa(b.Count)})
	}
	c.table([]string{"RANGE", "COUNT"}, rows)
}
