// Package testutil provides shared fixtures for the realty test suites: an
// in-memory SQLite store and a live API server backed by it.
package testutil

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"realty/internal/config"
	"realty/internal/handler"
	"realty/internal/repository"
	"realty/internal/service"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// NewStore returns a migrated in-memory store, closed when the test completes
func NewStore(t *testing.T) *repository.Store {
	t.Helper()

	store, err := repository.NewSQLiteStore(":memory:")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})

	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate test store: %v", err)
	}
	return store
}

// Server is a running API server over an in-memory store
type Server struct {
	*httptest.Server
	Store   *repository.Store
	Catalog *service.Catalog
}

// NewServer starts an API server. When seed is true the sample catalogue is
// loaded first, exactly as POST /api/init-db would.
func NewServer(t *testing.T, seed bool) *Server {
	t.Helper()

	store := NewStore(t)
	catalog := service.NewCatalog(store)
	if seed {
		if _, err := catalog.InitDatabase(context.Background()); err != nil {
			t.Fatalf("seed test store: %v", err)
		}
	}

	srv := httptest.NewServer(handler.NewRouter(catalog, handler.RouterOptions{
		AllowedOrigins: "*",
		Build:          handler.BuildInfo{Version: "test"},
	}))
	t.Cleanup(srv.Close)

	return &Server{Server: srv, Store: store, Catalog: catalog}
}

// APIConfig points a client at the server's /api base path
func (s *Server) APIConfig() *config.APIConfig {
	return &config.APIConfig{
		BaseURL: s.URL + "/api",
		Timeout: 5 * time.Second,
	}
}
