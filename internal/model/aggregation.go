package model

// CityPriceStats is one row of the average-price-by-city report
type CityPriceStats struct {
	City          string  `json:"city" db:"city"`
	AveragePrice  float64 `json:"averagePrice" db:"average_price"`
	PropertyCount int     `json:"propertyCount" db:"property_count"`
	MinPrice      float64 `json:"minPrice" db:"min_price"`
	MaxPrice      float64 `json:"maxPrice" db:"max_price"`
}

// PropertyTypeStats is one row of the properties-by-type report
type PropertyTypeStats struct {
	PropertyType string  `json:"propertyType" db:"property_type"`
	Count        int     `json:"count" db:"count"`
	AveragePrice float64 `json:"averagePrice" db:"average_price"`
	TotalValue   float64 `json:"totalValue" db:"total_value"`
}

// InquiryStatusCount is one row of the inquiry-statistics report
type InquiryStatusCount struct {
	Status string `json:"status" db:"status"`
	Count  int    `json:"count" db:"count"`
}

// PriceRangeBucket is one row of the price-range-distribution report
type PriceRangeBucket struct {
	PriceRange string `json:"priceRange"`
	Count      int    `json:"count"`
}

// ReportBundle holds the four dashboard result sets.
// Each set comes from an independent read; no consistency between them is implied.
type ReportBundle struct {
	AveragePriceByCity []CityPriceStats     `json:"averagePriceByCity"`
	MostActiveAgents   []Agent              `json:"mostActiveAgents"`
	PropertiesByType   []PropertyTypeStats  `json:"propertiesByType"`
	InquiryStatistics  []InquiryStatusCount `json:"inquiryStatistics"`
}
