package console

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"realty/internal/client"
	"realty/internal/config"
	"realty/internal/inquiry"
	"realty/internal/model"
	"realty/internal/testutil"
)

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{450000, "$450,000"},
		{1200000, "$1,200,000"},
		{999.6, "$1,000"},
		{0, "$0"},
	}
	for _, tt := range tests {
		if got := FormatPrice(tt.in); got != tt.want {
			t.Errorf("FormatPrice(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	ts := model.NewTimestamp(time.Date(2024, 3, 7, 23, 0, 0, 0, time.UTC))
	if got := FormatDate(ts); got != "Mar 7, 2024" {
		t.Errorf("FormatDate() = %q", got)
	}
	if got := FormatDate(model.Timestamp{}); got != "" {
		t.Errorf("FormatDate(zero) = %q, want empty", got)
	}
}

func TestLoadStates(t *testing.T) {
	var seen []State
	observe := func(p Page[int]) { seen = append(seen, p.State) }

	page := Load(context.Background(), func(context.Context) (int, error) { return 7, nil }, observe)
	if page.State != Loaded || page.Data != 7 || page.Err != nil {
		t.Errorf("Load(ok) = %+v", page)
	}

	errBoom := errors.New("boom")
	page = Load(context.Background(), func(context.Context) (int, error) { return 0, errBoom }, observe)
	if page.State != Failed || !errors.Is(page.Err, errBoom) {
		t.Errorf("Load(fail) = %+v", page)
	}

	if len(seen) != 2 || seen[0] != Loading || seen[1] != Loading {
		t.Errorf("observed %v, want two Loading states", seen)
	}
	if Idle.String() != "idle" || Failed.String() != "failed" {
		t.Errorf("State.String() = %s, %s", Idle, Failed)
	}
}

func TestComputeTotals(t *testing.T) {
	b := &model.ReportBundle{
		AveragePriceByCity: []model.CityPriceStats{{City: "A"}, {City: "B"}},
		MostActiveAgents:   []model.Agent{{Name: "x"}},
		PropertiesByType:   []model.PropertyTypeStats{{PropertyType: "House"}},
		InquiryStatistics:  []model.InquiryStatusCount{{Status: "Pending", Count: 3}, {Status: "Closed", Count: 2}},
	}
	want := Totals{Cities: 2, PropertyTypes: 1, Agents: 1, Inquiries: 5}
	if got := ComputeTotals(b); got != want {
		t.Errorf("ComputeTotals() = %+v, want %+v", got, want)
	}
}

// stubAPI serves fixed JSON bodies keyed by "METHOD /path"
func stubAPI(t *testing.T, routes map[string]string) *Console {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.Method+" "+r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"error":"unavailable"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	api := client.New(&config.APIConfig{BaseURL: srv.URL + "/api", Timeout: 5 * time.Second}, nil)
	return New(api, &bytes.Buffer{})
}

func output(c *Console) string {
	return c.out.(*bytes.Buffer).String()
}

func TestAnalyticsInquiryTotal(t *testing.T) {
	c := stubAPI(t, map[string]string{
		"GET /api/aggregation/average-price-by-city": `[]`,
		"GET /api/aggregation/most-active-agents":    `[]`,
		"GET /api/aggregation/properties-by-type":    `[]`,
		"GET /api/aggregation/inquiry-statistics":    `[{"status":"Pending","count":3},{"status":"Closed","count":2}]`,
	})

	if err := c.Run(context.Background(), []string{"analytics"}); err != nil {
		t.Fatalf("Run(analytics) error = %v", err)
	}
	if !regexp.MustCompile(`Total Inquiries\s+5\n`).MatchString(output(c)) {
		t.Errorf("output missing total of 5:\n%s", output(c))
	}
}

func TestAnalyticsFailureShowsEmptyDashboard(t *testing.T) {
	c := stubAPI(t, map[string]string{
		"GET /api/aggregation/average-price-by-city": `[{"city":"Austin","averagePrice":1,"propertyCount":1,"minPrice":1,"maxPrice":1}]`,
		"GET /api/aggregation/most-active-agents":    `[]`,
		"GET /api/aggregation/properties-by-type":    `[]`,
	})

	page := c.LoadAnalytics(context.Background())
	if page.State != Failed || page.Data != nil {
		t.Fatalf("LoadAnalytics() = %+v, want Failed with no bundle", page)
	}
	c.RenderAnalytics(page)
	out := output(c)
	if strings.Contains(out, "Austin") {
		t.Errorf("partial results rendered:\n%s", out)
	}
	if !regexp.MustCompile(`Total Cities\s+0\n`).MatchString(out) {
		t.Errorf("output missing empty totals:\n%s", out)
	}
}

func TestListFailureRendersEmptyState(t *testing.T) {
	c := stubAPI(t, nil)

	for _, tt := range []struct {
		args []string
		want string
	}{
		{[]string{"properties"}, "No properties found"},
		{[]string{"agents"}, "No agents found"},
		{[]string{"inquiries"}, "No inquiries found"},
		{[]string{"property", "p1"}, "Property not found"},
	} {
		if err := c.Run(context.Background(), tt.args); err != nil {
			t.Errorf("Run(%v) error = %v, want nil", tt.args, err)
		}
		if !strings.Contains(output(c), tt.want) {
			t.Errorf("Run(%v) output missing %q", tt.args, tt.want)
		}
	}
}

func TestInquireFailureIsReported(t *testing.T) {
	c := stubAPI(t, map[string]string{
		"GET /api/properties/p1": `{"_id":"p1","title":"Loft","price":1,"agentId":"a1"}`,
		"POST /api/users":        `{"_id":"u1","name":"A","email":"a@x.com","phone":"555"}`,
	})

	err := c.Run(context.Background(), []string{"inquire", "-name", "A", "-email", "a@x.com", "-phone", "555", "p1"})
	var orphan *inquiry.OrphanedUserError
	if !errors.As(err, &orphan) || orphan.UserID != "u1" {
		t.Fatalf("Run(inquire) error = %v, want orphaned user u1", err)
	}
	if !strings.Contains(output(c), "Error submitting inquiry. Please try again.") {
		t.Errorf("output missing alert:\n%s", output(c))
	}
}

func TestRunUsage(t *testing.T) {
	c := stubAPI(t, nil)

	for _, args := range [][]string{
		nil,
		{"bogus"},
		{"property"},
		{"inquiry-status", "i1"},
		{"inquiry-status", "i1", "Archived"},
		{"inquire", "p1"},
		{"properties", "-nope"},
	} {
		if err := c.Run(context.Background(), args); !errors.Is(err, ErrUsage) {
			t.Errorf("Run(%v) error = %v, want ErrUsage", args, err)
		}
	}

	if err := c.Run(context.Background(), []string{"properties", "-h"}); err != nil {
		t.Errorf("Run(properties -h) error = %v, want nil", err)
	}
}

func TestConsoleAgainstServer(t *testing.T) {
	ctx := context.Background()
	srv := testutil.NewServer(t, true)
	out := &bytes.Buffer{}
	c := New(client.New(srv.APIConfig(), nil), out)

	if err := c.Run(ctx, []string{"properties", "-city", "New York"}); err != nil {
		t.Fatalf("Run(properties) error = %v", err)
	}
	text := out.String()
	for _, want := range []string{"Modern Downtown Apartment", "$450,000", "$1,200,000", "2 properties"} {
		if !strings.Contains(text, want) {
			t.Errorf("properties output missing %q:\n%s", want, text)
		}
	}
	// sorted by price ascending by default
	if strings.Index(text, "$450,000") > strings.Index(text, "$1,200,000") {
		t.Errorf("listings not in ascending price order:\n%s", text)
	}

	page := c.LoadProperties(ctx, model.ListingFilters{City: "Chicago"})
	if page.State != Loaded || len(page.Data) != 1 {
		t.Fatalf("LoadProperties(Chicago) = %+v", page)
	}
	target := page.Data[0]

	out.Reset()
	if err := c.SubmitInquiry(ctx, target.ID, inquiry.ContactForm{Name: "Dana", Email: "dana@example.com", Message: "Viewing?"}); err != nil {
		t.Fatalf("SubmitInquiry() error = %v", err)
	}
	if !strings.Contains(out.String(), "Inquiry submitted successfully!") {
		t.Errorf("missing success message:\n%s", out.String())
	}

	inquiries := c.LoadInquiries(ctx, model.InquiryFilter{PropertyID: target.ID})
	if inquiries.State != Loaded || len(inquiries.Data) != 1 {
		t.Fatalf("LoadInquiries() = %+v", inquiries)
	}
	submitted := inquiries.Data[0]

	reloaded := c.UpdateInquiryStatus(ctx, submitted.ID, model.InquiryClosed)
	if reloaded.State != Loaded || len(reloaded.Data) != 3 {
		t.Fatalf("UpdateInquiryStatus() = %+v, want reloaded list of 3", reloaded)
	}
	for _, i := range reloaded.Data {
		if i.ID == submitted.ID && i.Status != model.InquiryClosed {
			t.Errorf("status = %q, want Closed", i.Status)
		}
	}

	out.Reset()
	if err := c.Run(ctx, []string{"analytics"}); err != nil {
		t.Fatalf("Run(analytics) error = %v", err)
	}
	for _, re := range []string{`Total Cities\s+3\n`, `Property Types\s+4\n`, `Active Agents\s+3\n`, `Total Inquiries\s+3\n`} {
		if !regexp.MustCompile(re).MatchString(out.String()) {
			t.Errorf("analytics output missing %s:\n%s", re, out.String())
		}
	}

	out.Reset()
	if err := c.Run(ctx, []string{"price-ranges"}); err != nil {
		t.Fatalf("Run(price-ranges) error = %v", err)
	}
	if !strings.Contains(out.String(), "$1,000,000+") {
		t.Errorf("price-ranges output:\n%s", out.String())
	}
}
