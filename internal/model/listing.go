package model

// Property types accepted by the listings API
const (
	PropertyTypeApartment  = "Apartment"
	PropertyTypeHouse      = "House"
	PropertyTypePenthouse  = "Penthouse"
	PropertyTypeCommercial = "Commercial"
)

// PropertyTypes lists the known property types in display order
var PropertyTypes = []string{
	PropertyTypeApartment,
	PropertyTypeHouse,
	PropertyTypePenthouse,
	PropertyTypeCommercial,
}

// StatusAvailable is the status assigned to listings created without one
const StatusAvailable = "Available"

// Listing represents a property listing
type Listing struct {
	ID           string    `json:"_id,omitempty" db:"id"`
	Title        string    `json:"title" db:"title"`
	Description  string    `json:"description" db:"description"`
	Price        float64   `json:"price" db:"price"`
	PropertyType string    `json:"propertyType" db:"property_type"`
	Bedrooms     int       `json:"bedrooms" db:"bedrooms"`
	Bathrooms    int       `json:"bathrooms" db:"bathrooms"`
	Size         float64   `json:"size" db:"size"`
	City         string    `json:"city" db:"city"`
	Address      string    `json:"address" db:"address"`
	AgentID      string    `json:"agentId" db:"agent_id"`
	Status       string    `json:"status,omitempty" db:"status"`
	CreatedAt    Timestamp `json:"createdAt,omitzero" db:"created_at"`
}

// IsPropertyType reports whether t is one of the known property types
func IsPropertyType(t string) bool {
	for _, known := range PropertyTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Agent represents a listing agent
type Agent struct {
	ID             string    `json:"_id,omitempty" db:"id"`
	Name           string    `json:"name" db:"name"`
	Email          string    `json:"email" db:"email"`
	Phone          string    `json:"phone" db:"phone"`
	Specialization string    `json:"specialization" db:"specialization"`
	ActiveListings int       `json:"activeListings" db:"active_listings"`
	CreatedAt      Timestamp `json:"createdAt,omitzero" db:"created_at"`
}

// User represents a customer who contacted an agent
type User struct {
	ID        string    `json:"_id,omitempty" db:"id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	Phone     string    `json:"phone" db:"phone"`
	CreatedAt Timestamp `json:"createdAt,omitzero" db:"created_at"`
}
