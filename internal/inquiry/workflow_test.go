package inquiry

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"realty/internal/client"
	"realty/internal/model"
	"realty/internal/testutil"
)

// recorder captures every write in order as its JSON encoding
type recorder struct {
	calls  []string
	bodies []map[string]interface{}

	userID     string
	userErr    error
	inquiryErr error
}

func (r *recorder) record(call string, payload any) {
	raw, _ := json.Marshal(payload)
	var body map[string]interface{}
	_ = json.Unmarshal(raw, &body)
	r.calls = append(r.calls, call)
	r.bodies = append(r.bodies, body)
}

type fakeUsers struct{ *recorder }

func (f fakeUsers) Create(_ context.Context, payload any) (*model.User, error) {
	f.record("users.create", payload)
	if f.userErr != nil {
		return nil, f.userErr
	}
	return &model.User{ID: f.userID}, nil
}

type fakeInquiries struct{ *recorder }

func (f fakeInquiries) Create(_ context.Context, payload any) (*model.Inquiry, error) {
	f.record("inquiries.create", payload)
	if f.inquiryErr != nil {
		return nil, f.inquiryErr
	}
	return &model.Inquiry{ID: "i1", Status: model.InquiryPending}, nil
}

func (f fakeInquiries) Update(_ context.Context, id string, partial any) (*model.Inquiry, error) {
	f.record("inquiries.update:"+id, partial)
	return &model.Inquiry{ID: id}, nil
}

func newFakeWorkflow(r *recorder) *Workflow {
	return NewWorkflow(fakeUsers{r}, fakeInquiries{r})
}

var listing = model.Listing{ID: "p1", AgentID: "a1", Title: "Modern Downtown Apartment"}

func TestSubmitWritesUserThenInquiry(t *testing.T) {
	r := &recorder{userID: "u1"}
	form := ContactForm{Name: "A", Email: "a@x.com", Phone: "555", Message: "Is it available?"}

	inquiry, err := newFakeWorkflow(r).Submit(context.Background(), listing, form)
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if inquiry.ID != "i1" {
		t.Errorf("Submit() id = %q, want i1", inquiry.ID)
	}

	if len(r.calls) != 2 || r.calls[0] != "users.create" || r.calls[1] != "inquiries.create" {
		t.Fatalf("calls = %v, want [users.create inquiries.create]", r.calls)
	}

	user := r.bodies[0]
	for key, want := range map[string]string{"name": "A", "email": "a@x.com", "phone": "555"} {
		if user[key] != want {
			t.Errorf("user payload %s = %v, want %q", key, user[key], want)
		}
	}

	inq := r.bodies[1]
	for key, want := range map[string]string{
		"propertyId": "p1",
		"userId":     "u1",
		"agentId":    "a1",
		"message":    "Is it available?",
		"status":     model.InquiryPending,
	} {
		if inq[key] != want {
			t.Errorf("inquiry payload %s = %v, want %q", key, inq[key], want)
		}
	}
}

func TestSubmitFailures(t *testing.T) {
	errBoom := errors.New("boom")

	tests := []struct {
		name       string
		form       ContactForm
		userID     string
		userErr    error
		inquiryErr error
		wantCalls  int
		check      func(t *testing.T, err error)
	}{
		{
			name:      "missing email sends nothing",
			form:      ContactForm{Name: "A"},
			wantCalls: 0,
			check: func(t *testing.T, err error) {
				if !errors.Is(err, ErrIncompleteForm) {
					t.Errorf("error = %v, want ErrIncompleteForm", err)
				}
			},
		},
		{
			name:      "user create fails",
			form:      ContactForm{Name: "A", Email: "a@x.com"},
			userErr:   errBoom,
			wantCalls: 1,
			check: func(t *testing.T, err error) {
				if !errors.Is(err, errBoom) {
					t.Errorf("error = %v, want %v", err, errBoom)
				}
				var orphan *OrphanedUserError
				if errors.As(err, &orphan) {
					t.Errorf("error = %v, no user was created", err)
				}
			},
		},
		{
			name:      "user without id",
			form:      ContactForm{Name: "A", Email: "a@x.com"},
			wantCalls: 1,
			check: func(t *testing.T, err error) {
				if err == nil {
					t.Error("error = nil, want missing id error")
				}
			},
		},
		{
			name:       "inquiry create fails leaves user",
			form:       ContactForm{Name: "A", Email: "a@x.com"},
			userID:     "u1",
			inquiryErr: errBoom,
			wantCalls:  2,
			check: func(t *testing.T, err error) {
				var orphan *OrphanedUserError
				if !errors.As(err, &orphan) {
					t.Fatalf("error = %v, want *OrphanedUserError", err)
				}
				if orphan.UserID != "u1" {
					t.Errorf("UserID = %q, want u1", orphan.UserID)
				}
				if !errors.Is(err, errBoom) {
					t.Errorf("error does not unwrap to %v", errBoom)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &recorder{userID: tt.userID, userErr: tt.userErr, inquiryErr: tt.inquiryErr}
			inquiry, err := newFakeWorkflow(r).Submit(context.Background(), listing, tt.form)
			if inquiry != nil {
				t.Errorf("Submit() inquiry = %+v, want nil", inquiry)
			}
			if len(r.calls) != tt.wantCalls {
				t.Errorf("calls = %v, want %d", r.calls, tt.wantCalls)
			}
			tt.check(t, err)
		})
	}
}

func TestSetStatus(t *testing.T) {
	r := &recorder{}
	w := newFakeWorkflow(r)

	if _, err := w.SetStatus(context.Background(), "i1", "Archived"); err == nil {
		t.Error("SetStatus(Archived) error = nil, want invalid status")
	}
	if len(r.calls) != 0 {
		t.Fatalf("invalid status sent %v", r.calls)
	}

	if _, err := w.SetStatus(context.Background(), "i1", model.InquiryClosed); err != nil {
		t.Fatalf("SetStatus(Closed) error = %v", err)
	}
	if r.calls[0] != "inquiries.update:i1" || r.bodies[0]["status"] != model.InquiryClosed {
		t.Errorf("update = %v %v, want status Closed on i1", r.calls, r.bodies)
	}
}

func TestSubmitAgainstServer(t *testing.T) {
	ctx := context.Background()
	srv := testutil.NewServer(t, true)
	api := client.New(srv.APIConfig(), nil)

	listings, err := api.Properties.List(ctx, nil)
	if err != nil || len(listings) == 0 {
		t.Fatalf("Properties.List() = %d, %v", len(listings), err)
	}
	target := listings[0]

	w := NewWorkflow(api.Users, api.Inquiries)
	inquiry, err := w.Submit(ctx, target, ContactForm{
		Name:    "Carol",
		Email:   "carol@example.com",
		Phone:   "+1-555-0303",
		Message: "Can I book a viewing?",
	})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	if inquiry.PropertyID != target.ID || inquiry.AgentID != target.AgentID {
		t.Errorf("inquiry refs = %s/%s, want %s/%s", inquiry.PropertyID, inquiry.AgentID, target.ID, target.AgentID)
	}
	if inquiry.Status != model.InquiryPending {
		t.Errorf("Status = %q, want Pending", inquiry.Status)
	}

	user, err := srv.Catalog.GetUser(ctx, inquiry.UserID)
	if err != nil || user == nil {
		t.Fatalf("GetUser(%s) = %v, %v", inquiry.UserID, user, err)
	}
	if user.Email != "carol@example.com" {
		t.Errorf("user email = %q", user.Email)
	}

	updated, err := w.SetStatus(ctx, inquiry.ID, model.InquiryResponded)
	if err != nil {
		t.Fatalf("SetStatus() error = %v", err)
	}
	if updated.Status != model.InquiryResponded {
		t.Errorf("Status = %q, want Responded", updated.Status)
	}
}
