package service

import (
	"realty/internal/model"
	"realty/internal/repository"
)

// sampleData builds the demo catalogue written by InitDatabase
func (c *Catalog) sampleData() *repository.SeedData {
	now := model.NewTimestamp(c.now())

	agents := []model.Agent{
		{Name: "John Smith", Email: "john.smith@realty.com", Phone: "+1-555-0101", Specialization: "Residential", ActiveListings: 15},
		{Name: "Sarah Johnson", Email: "sarah.johnson@realty.com", Phone: "+1-555-0102", Specialization: "Commercial", ActiveListings: 8},
		{Name: "Michael Brown", Email: "michael.brown@realty.com", Phone: "+1-555-0103", Specialization: "Luxury", ActiveListings: 12},
	}
	for i := range agents {
		agents[i].ID = c.newID()
		agents[i].CreatedAt = now
	}

	properties := []model.Listing{
		{
			Title:        "Modern Downtown Apartment",
			Description:  "Stunning 2-bedroom apartment in the heart of downtown",
			Price:        450000,
			PropertyType: model.PropertyTypeApartment,
			Bedrooms:     2,
			Bathrooms:    2,
			Size:         1200,
			City:         "New York",
			Address:      "123 Main St, New York, NY 10001",
			AgentID:      agents[0].ID,
		},
		{
			Title:        "Spacious Family Home",
			Description:  "Beautiful 4-bedroom house with a large backyard",
			Price:        650000,
			PropertyType: model.PropertyTypeHouse,
			Bedrooms:     4,
			Bathrooms:    3,
			Size:         2500,
			City:         "Los Angeles",
			Address:      "456 Oak Ave, Los Angeles, CA 90001",
			AgentID:      agents[1].ID,
		},
		{
			Title:        "Luxury Penthouse Suite",
			Description:  "Exclusive penthouse with panoramic city views",
			Price:        1200000,
			PropertyType: model.PropertyTypePenthouse,
			Bedrooms:     3,
			Bathrooms:    3,
			Size:         3000,
			City:         "New York",
			Address:      "789 Park Ave, New York, NY 10021",
			AgentID:      agents[2].ID,
		},
		{
			Title:        "Cozy Studio Apartment",
			Description:  "Perfect studio for young professionals",
			Price:        280000,
			PropertyType: model.PropertyTypeApartment,
			Bedrooms:     1,
			Bathrooms:    1,
			Size:         650,
			City:         "Chicago",
			Address:      "321 Lake St, Chicago, IL 60601",
			AgentID:      agents[0].ID,
		},
		{
			Title:        "Commercial Office Space",
			Description:  "Prime office location in business district",
			Price:        850000,
			PropertyType: model.PropertyTypeCommercial,
			Bedrooms:     0,
			Bathrooms:    2,
			Size:         4000,
			City:         "Los Angeles",
			Address:      "555 Business Blvd, Los Angeles, CA 90017",
			AgentID:      agents[1].ID,
		},
	}
	for i := range properties {
		properties[i].ID = c.newID()
		properties[i].Status = model.StatusAvailable
		properties[i].CreatedAt = now
	}

	users := []model.User{
		{Name: "Alice Cooper", Email: "alice.cooper@email.com", Phone: "+1-555-0201"},
		{Name: "Bob Wilson", Email: "bob.wilson@email.com", Phone: "+1-555-0202"},
	}
	for i := range users {
		users[i].ID = c.newID()
		users[i].CreatedAt = now
	}

	inquiries := []model.Inquiry{
		{
			PropertyID: properties[0].ID,
			UserID:     users[0].ID,
			AgentID:    agents[0].ID,
			Message:    "I'm interested in scheduling a viewing",
			Status:     model.InquiryPending,
		},
		{
			PropertyID: properties[1].ID,
			UserID:     users[1].ID,
			AgentID:    agents[1].ID,
			Message:    "Can you provide more details about the property?",
			Status:     model.InquiryResponded,
		},
	}
	for i := range inquiries {
		inquiries[i].ID = c.newID()
		inquiries[i].CreatedAt = now
	}

	return &repository.SeedData{
		Agents:     agents,
		Properties: properties,
		Users:      users,
		Inquiries:  inquiries,
	}
}
