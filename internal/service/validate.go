package service

import (
	"strings"

	"realty/internal/model"
)

func validateListing(l *model.Listing) error {
	l.Title = strings.TrimSpace(l.Title)
	if l.Title == "" {
		return &ValidationError{Field: "title", Message: "is required"}
	}
	if l.Price <= 0 {
		return &ValidationError{Field: "price", Message: "must be a positive number"}
	}
	if l.Bedrooms < 0 {
		return &ValidationError{Field: "bedrooms", Message: "must not be negative"}
	}
	if l.Bathrooms < 0 {
		return &ValidationError{Field: "bathrooms", Message: "must not be negative"}
	}
	if l.Size < 0 {
		return &ValidationError{Field: "size", Message: "must not be negative"}
	}
	if l.PropertyType != "" && !model.IsPropertyType(l.PropertyType) {
		return &ValidationError{Field: "propertyType", Message: "must be one of " + strings.Join(model.PropertyTypes, ", ")}
	}
	return nil
}

// validateListingFields checks the typed fields of a partial listing update
func validateListingFields(fields map[string]interface{}) error {
	if v, ok := fields["price"]; ok {
		if price, isNum := v.(float64); !isNum || price <= 0 {
			return &ValidationError{Field: "price", Message: "must be a positive number"}
		}
	}
	if v, ok := fields["propertyType"]; ok {
		if t, isStr := v.(string); !isStr || !model.IsPropertyType(t) {
			return &ValidationError{Field: "propertyType", Message: "must be one of " + strings.Join(model.PropertyTypes, ", ")}
		}
	}
	return nil
}

func validateAgent(a *model.Agent) error {
	a.Name = strings.TrimSpace(a.Name)
	a.Email = strings.TrimSpace(a.Email)
	if a.Name == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}
	if a.Email == "" {
		return &ValidationError{Field: "email", Message: "is required"}
	}
	if a.ActiveListings < 0 {
		return &ValidationError{Field: "activeListings", Message: "must not be negative"}
	}
	return nil
}

func validateInquiry(i *model.Inquiry) error {
	if i.PropertyID == "" {
		return &ValidationError{Field: "propertyId", Message: "is required"}
	}
	if i.UserID == "" {
		return &ValidationError{Field: "userId", Message: "is required"}
	}
	if !model.IsInquiryStatus(i.Status) {
		return inquiryStatusError()
	}
	return nil
}

func validateInquiryFields(fields map[string]interface{}) error {
	if v, ok := fields["status"]; ok {
		if s, isStr := v.(string); !isStr || !model.IsInquiryStatus(s) {
			return inquiryStatusError()
		}
	}
	return nil
}

func inquiryStatusError() error {
	return &ValidationError{Field: "status", Message: "must be one of " + strings.Join(model.InquiryStatuses, ", ")}
}
