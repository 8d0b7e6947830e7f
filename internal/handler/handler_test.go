package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"realty/internal/handler"
	"realty/internal/model"
	"realty/internal/testutil"
)

func do(t *testing.T, router http.Handler, method, path, body string) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec.Code, rec.Body.Bytes()
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		t.Fatalf("decode %s: %v", raw, err)
	}
	return v
}

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	srv := testutil.NewServer(t, true)
	return srv.Config.Handler
}

func TestPropertyRoutes(t *testing.T) {
	router := newRouter(t)

	tests := []struct {
		name      string
		path      string
		wantCount int
		wantFirst float64
	}{
		{"default newest first", "/api/properties", 5, 0},
		{"city and price sort", "/api/properties?city=los&sortBy=price&order=asc", 2, 650000},
		{"price range", "/api/properties?minPrice=400000&maxPrice=700000&sortBy=price&order=desc", 2, 650000},
		{"non numeric price ignored", "/api/properties?minPrice=abc&sortBy=price&order=asc", 5, 280000},
		{"type filter", "/api/properties?propertyType=Apartment&sortBy=price&order=desc", 2, 450000},
		{"no match", "/api/properties?city=Austin", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := do(t, router, http.MethodGet, tt.path, "")
			if code != http.StatusOK {
				t.Fatalf("GET %s = %d %s", tt.path, code, body)
			}
			listings := decode[[]model.Listing](t, body)
			if len(listings) != tt.wantCount {
				t.Fatalf("GET %s = %d listings, want %d", tt.path, len(listings), tt.wantCount)
			}
			if tt.wantFirst != 0 && listings[0].Price != tt.wantFirst {
				t.Errorf("first price = %v, want %v", listings[0].Price, tt.wantFirst)
			}
		})
	}
}

func TestPropertyCRUDRoutes(t *testing.T) {
	router := newRouter(t)

	code, body := do(t, router, http.MethodPost, "/api/properties",
		`{"title":"Harbor Flat","price":399000,"propertyType":"Apartment","city":"Boston","_id":"mine"}`)
	if code != http.StatusCreated {
		t.Fatalf("POST = %d %s", code, body)
	}
	created := decode[model.Listing](t, body)
	if created.ID == "" || created.ID == "mine" || created.Status != model.StatusAvailable {
		t.Errorf("created = %+v", created)
	}
	path := "/api/properties/" + created.ID

	code, body = do(t, router, http.MethodPut, path, `{"price":389000,"createdAt":"1999-01-01T00:00:00Z","color":"red"}`)
	if code != http.StatusOK {
		t.Fatalf("PUT = %d %s", code, body)
	}
	updated := decode[model.Listing](t, body)
	if updated.Price != 389000 || !updated.CreatedAt.Equal(created.CreatedAt.Time) {
		t.Errorf("updated = %+v", updated)
	}

	code, body = do(t, router, http.MethodDelete, path, "")
	if code != http.StatusOK || decode[map[string]string](t, body)["message"] != "Property deleted successfully" {
		t.Errorf("DELETE = %d %s", code, body)
	}

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		reqBody := ""
		if method == http.MethodPut {
			reqBody = `{"price":1}`
		}
		code, body = do(t, router, method, path, reqBody)
		if code != http.StatusNotFound || decode[map[string]string](t, body)["error"] != "Property not found" {
			t.Errorf("%s missing = %d %s", method, code, body)
		}
	}
}

func TestBadRequests(t *testing.T) {
	router := newRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"malformed json", http.MethodPost, "/api/properties", `{"title":`},
		{"missing title", http.MethodPost, "/api/properties", `{"price":100}`},
		{"agent missing email", http.MethodPost, "/api/agents", `{"name":"A"}`},
		{"duplicate agent email", http.MethodPost, "/api/agents", `{"name":"A","email":"john.smith@realty.com"}`},
		{"inquiry bad status", http.MethodPost, "/api/inquiries", `{"propertyId":"p","userId":"u","status":"Lost"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := do(t, router, tt.method, tt.path, tt.body)
			if code != http.StatusBadRequest {
				t.Fatalf("%s %s = %d %s, want 400", tt.method, tt.path, code, body)
			}
			if decode[map[string]string](t, body)["error"] == "" {
				t.Errorf("body %s has no error message", body)
			}
		})
	}
}

func TestInquiryAndUserRoutes(t *testing.T) {
	router := newRouter(t)

	code, body := do(t, router, http.MethodPost, "/api/users", `{"name":"A","email":"a@x.com","phone":"555"}`)
	if code != http.StatusCreated {
		t.Fatalf("POST user = %d %s", code, body)
	}
	user := decode[model.User](t, body)

	code, body = do(t, router, http.MethodPost, "/api/inquiries",
		`{"propertyId":"p1","userId":"`+user.ID+`","agentId":"a1","message":"hi"}`)
	if code != http.StatusCreated {
		t.Fatalf("POST inquiry = %d %s", code, body)
	}
	inquiry := decode[model.Inquiry](t, body)
	if inquiry.Status != model.InquiryPending {
		t.Errorf("Status = %q, want Pending", inquiry.Status)
	}

	code, body = do(t, router, http.MethodGet, "/api/inquiries?userId="+user.ID, "")
	if code != http.StatusOK || len(decode[[]model.Inquiry](t, body)) != 1 {
		t.Errorf("GET inquiries by user = %d %s", code, body)
	}

	code, body = do(t, router, http.MethodPut, "/api/inquiries/"+inquiry.ID, `{"status":"Closed"}`)
	if code != http.StatusOK || decode[model.Inquiry](t, body).Status != model.InquiryClosed {
		t.Errorf("PUT inquiry = %d %s", code, body)
	}

	code, body = do(t, router, http.MethodGet, "/api/users/"+user.ID, "")
	if code != http.StatusOK || decode[model.User](t, body).Email != "a@x.com" {
		t.Errorf("GET user = %d %s", code, body)
	}
}

func TestAggregationRoutes(t *testing.T) {
	router := newRouter(t)

	code, body := do(t, router, http.MethodGet, "/api/aggregation/average-price-by-city", "")
	if code != http.StatusOK {
		t.Fatalf("average-price-by-city = %d %s", code, body)
	}
	cities := decode[[]model.CityPriceStats](t, body)
	if len(cities) != 3 || cities[0].City != "New York" || cities[0].AveragePrice != 825000 {
		t.Errorf("cities = %+v", cities)
	}

	code, body = do(t, router, http.MethodGet, "/api/aggregation/properties-by-type", "")
	types := decode[[]model.PropertyTypeStats](t, body)
	if code != http.StatusOK || len(types) != 4 || types[0].PropertyType != "Apartment" || types[0].AveragePrice != 365000 {
		t.Errorf("properties-by-type = %d %+v", code, types)
	}

	code, body = do(t, router, http.MethodGet, "/api/aggregation/most-active-agents", "")
	agents := decode[[]model.Agent](t, body)
	if code != http.StatusOK || len(agents) != 3 || agents[0].ActiveListings != 15 {
		t.Errorf("most-active-agents = %d %+v", code, agents)
	}

	code, body = do(t, router, http.MethodGet, "/api/aggregation/inquiry-statistics", "")
	stats := decode[[]model.InquiryStatusCount](t, body)
	if code != http.StatusOK || len(stats) != 2 {
		t.Errorf("inquiry-statistics = %d %+v", code, stats)
	}

	code, body = do(t, router, http.MethodGet, "/api/aggregation/price-range-distribution", "")
	ranges := decode[[]model.PriceRangeBucket](t, body)
	if code != http.StatusOK || len(ranges) != 5 || ranges[4].PriceRange != "$1,000,000+" {
		t.Errorf("price-range-distribution = %d %+v", code, ranges)
	}
}

func TestServiceRoutes(t *testing.T) {
	router := newRouter(t)

	code, body := do(t, router, http.MethodGet, "/health", "")
	if code != http.StatusOK || decode[map[string]string](t, body)["status"] != "healthy" {
		t.Errorf("/health = %d %s", code, body)
	}

	code, body = do(t, router, http.MethodGet, "/version", "")
	if code != http.StatusOK || decode[map[string]string](t, body)["version"] != "test" {
		t.Errorf("/version = %d %s", code, body)
	}

	code, _ = do(t, router, http.MethodGet, "/", "")
	if code != http.StatusOK {
		t.Errorf("/ = %d", code)
	}

	code, body = do(t, router, http.MethodGet, "/api/nothing-here", "")
	if code != http.StatusNotFound || decode[map[string]string](t, body)["error"] != "API endpoint not found" {
		t.Errorf("unknown api path = %d %s", code, body)
	}

	code, body = do(t, router, http.MethodPost, "/api/init-db", "")
	if code != http.StatusOK || !strings.Contains(string(body), "Database initialized successfully") {
		t.Errorf("init-db = %d %s", code, body)
	}
}

func TestInitDBOnEmptyStore(t *testing.T) {
	srv := testutil.NewServer(t, false)
	router := handler.NewRouter(srv.Catalog, handler.RouterOptions{})

	code, body := do(t, router, http.MethodGet, "/api/properties", "")
	if code != http.StatusOK || len(decode[[]model.Listing](t, body)) != 0 {
		t.Fatalf("empty store list = %d %s", code, body)
	}

	code, body = do(t, router, http.MethodPost, "/api/init-db", "")
	if code != http.StatusOK {
		t.Fatalf("init-db = %d %s", code, body)
	}
	if seeded := decode[map[string]interface{}](t, body)["seeded"]; seeded != true {
		t.Errorf("seeded = %v, want true", seeded)
	}

	count, err := srv.Store.CountProperties(context.Background())
	if err != nil || count != 5 {
		t.Errorf("CountProperties() = %d, %v, want 5", count, err)
	}
}
