// Package inquiry implements the contact-an-agent flow: a new user record
// followed by an inquiry that references it.
package inquiry

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"realty/internal/model"
)

// ErrIncompleteForm is returned before any request when a required contact
// field is blank
var ErrIncompleteForm = errors.New("name and email are required")

// UserCreator creates user records
type UserCreator interface {
	Create(ctx context.Context, payload any) (*model.User, error)
}

// InquiryWriter creates and updates inquiries
type InquiryWriter interface {
	Create(ctx context.Context, payload any) (*model.Inquiry, error)
	Update(ctx context.Context, id string, partial any) (*model.Inquiry, error)
}

// ContactForm is what a visitor fills in on a listing page
type ContactForm struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// OrphanedUserError reports that the user record was created but the inquiry
// was not. The user is not removed.
type OrphanedUserError struct {
	UserID string
	Err    error
}

func (e *OrphanedUserError) Error() string {
	return fmt.Sprintf("inquiry not created, user %s left without inquiry: %v", e.UserID, e.Err)
}

func (e *OrphanedUserError) Unwrap() error { return e.Err }

// Workflow submits inquiries and changes their status
type Workflow struct {
	users     UserCreator
	inquiries InquiryWriter
}

// NewWorkflow creates a new inquiry workflow
func NewWorkflow(users UserCreator, inquiries InquiryWriter) *Workflow {
	return &Workflow{
		users:     users,
		inquiries: inquiries,
	}
}

type userPayload struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type inquiryPayload struct {
	PropertyID string `json:"propertyId"`
	UserID     string `json:"userId"`
	AgentID    string `json:"agentId"`
	Message    string `json:"message"`
	Status     string `json:"status"`
}

// Submit creates a user from the form, always a new record, then an inquiry
// on listing for that user. The two writes are sequential and not atomic.
func (w *Workflow) Submit(ctx context.Context, listing model.Listing, form ContactForm) (*model.Inquiry, error) {
	if strings.TrimSpace(form.Name) == "" || strings.TrimSpace(form.Email) == "" {
		return nil, ErrIncompleteForm
	}

	user, err := w.users.Create(ctx, userPayload{
		Name:  form.Name,
		Email: form.Email,
		Phone: form.Phone,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	if user == nil || user.ID == "" {
		return nil, errors.New("failed to create user: server returned no id")
	}

	inquiry, err := w.inquiries.Create(ctx, inquiryPayload{
		PropertyID: listing.ID,
		UserID:     user.ID,
		AgentID:    listing.AgentID,
		Message:    form.Message,
		Status:     model.InquiryPending,
	})
	if err != nil {
		return nil, &OrphanedUserError{UserID: user.ID, Err: err}
	}

	return inquiry, nil
}

// SetStatus moves an inquiry to status. Any status may follow any other.
func (w *Workflow) SetStatus(ctx context.Context, id, status string) (*model.Inquiry, error) {
	if !model.IsInquiryStatus(status) {
		return nil, fmt.Errorf("invalid inquiry status %q, must be one of %s",
			status, strings.Join(model.InquiryStatuses, ", "))
	}

	inquiry, err := w.inquiries.Update(ctx, id, map[string]string{"status": status})
	if err != nil {
		return nil, fmt.Errorf("failed to update inquiry %s: %w", id, err)
	}
	return inquiry, nil
}
