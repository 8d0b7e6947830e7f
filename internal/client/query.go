package client

import (
	"net/url"
	"strings"

	"realty/internal/model"
)

// Param is a single query-string pair
type Param struct {
	Key   string
	Value string
}

// Query is an ordered list of query-string pairs. Unlike url.Values it
// keeps insertion order when encoded.
type Query []Param

// Add appends key=value, skipping empty values so they are never sent
func (q Query) Add(key, value string) Query {
	if value == "" {
		return q
	}
	return append(q, Param{Key: key, Value: value})
}

// Get returns the first value for key
func (q Query) Get(key string) (string, bool) {
	for _, p := range q {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// Encode renders the query as "k1=v1&k2=v2" in insertion order
func (q Query) Encode() string {
	if len(q) == 0 {
		return ""
	}
	var b strings.Builder
	for i, p := range q {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}

// BuildListingQuery turns the filter form into the listings query string.
// Empty fields are left out entirely, so cleared filters fetch everything.
func BuildListingQuery(f model.ListingFilters) Query {
	var q Query
	q = q.Add("city", f.City)
	q = q.Add("propertyType", f.PropertyType)
	q = q.Add("minPrice", f.MinPrice)
	q = q.Add("maxPrice", f.MaxPrice)
	q = q.Add("sortBy", f.SortBy)
	q = q.Add("order", f.Order)
	return q
}

// BuildInquiryQuery turns an inquiry filter into a query string
func BuildInquiryQuery(f model.InquiryFilter) Query {
	var q Query
	q = q.Add("propertyId", f.PropertyID)
	q = q.Add("userId", f.UserID)
	q = q.Add("agentId", f.AgentID)
	q = q.Add("status", f.Status)
	return q
}

// BuildAgentQuery turns an agent filter into a query string
func BuildAgentQuery(f model.AgentFilter) Query {
	var q Query
	return q.Add("specialization", f.Specialization)
}
