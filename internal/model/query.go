package model

// Sort keys understood by the listings endpoint
const (
	SortByPrice     = "price"
	SortBySize      = "size"
	SortByCity      = "city"
	SortByCreatedAt = "createdAt"
)

// Sort directions
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// ListingFilters holds the raw values of the property filter form.
// Values are passed through as entered; the server decides what is valid.
type ListingFilters struct {
	City         string
	PropertyType string
	MinPrice     string
	MaxPrice     string
	SortBy       string
	Order        string
}

// DefaultListingFilters returns the initial filter form state
func DefaultListingFilters() ListingFilters {
	return ListingFilters{
		SortBy: SortByPrice,
		Order:  OrderAsc,
	}
}

// PropertyFilter is the parsed form of a listings query on the server side
type PropertyFilter struct {
	City         string
	PropertyType string
	MinPrice     *float64
	MaxPrice     *float64
	SortBy       string
	Descending   bool
}

// AgentFilter narrows the agent directory
type AgentFilter struct {
	Specialization string
}

// InquiryFilter narrows the inquiry list; empty fields match everything
type InquiryFilter struct {
	PropertyID string
	UserID     string
	AgentID    string
	Status     string
}
