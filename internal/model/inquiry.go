package model

// Inquiry statuses. Any status may be set from any other.
const (
	InquiryPending   = "Pending"
	InquiryResponded = "Responded"
	InquiryClosed    = "Closed"
)

// InquiryStatuses lists the inquiry workflow states in display order
var InquiryStatuses = []string{InquiryPending, InquiryResponded, InquiryClosed}

// Inquiry represents a customer request about a listing
type Inquiry struct {
	ID         string    `json:"_id,omitempty" db:"id"`
	PropertyID string    `json:"propertyId" db:"property_id"`
	UserID     string    `json:"userId" db:"user_id"`
	AgentID    string    `json:"agentId" db:"agent_id"`
	Message    string    `json:"message" db:"message"`
	Status     string    `json:"status,omitempty" db:"status"`
	CreatedAt  Timestamp `json:"createdAt,omitzero" db:"created_at"`
}

// IsInquiryStatus reports whether s is a known inquiry status
func IsInquiryStatus(s string) bool {
	for _, known := range InquiryStatuses {
		if s == known {
			return true
		}
	}
	return false
}
