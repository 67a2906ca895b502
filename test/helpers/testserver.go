package helpers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http/httptest"
	"testing"

	"wealthcoach_backend/database"
	"wealthcoach_backend/internal/app"
	"wealthcoach_backend/internal/config"
	"wealthcoach_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TestServer serves requests in-process through the full middleware chain.
// Each test runs inside its own transaction; SendRequest injects it through
// the request context, where DBMiddleware picks it up instead of the pool.
type TestServer struct {
	Router *gin.Engine
	DB     *gorm.DB
}

// NewTestServer connects to the test database (DATABASE_URL), migrates and
// seeds it, and builds the full router.
func NewTestServer(t *testing.T) *TestServer {
	gin.SetMode(gin.TestMode)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("failed to load test configuration: %v", err)
	}

	db, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		t.Fatalf("failed to connect to test database (%s): %v", cfg.Database.DSN, err)
	}

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	if err := database.SeedRoles(db); err != nil {
		t.Fatalf("failed to seed roles: %v", err)
	}

	router := app.SetupRouter(cfg, db)

	log.Printf("test server ready, database %s", cfg.Database.DSN)

	return &TestServer{
		Router: router,
		DB:     db,
	}
}

func (ts *TestServer) Close() {
	sqlDB, err := ts.DB.DB()
	if err == nil {
		sqlDB.Close()
	}
}

// BeginTransaction opens the transaction a single test runs in.
func (ts *TestServer) BeginTransaction(t *testing.T) *gorm.DB {
	tx := ts.DB.Begin()
	if tx.Error != nil {
		t.Fatalf("failed to begin test transaction: %v", tx.Error)
	}
	return tx
}

// RollbackTransaction throws away everything the test created.
func (ts *TestServer) RollbackTransaction(t *testing.T, tx *gorm.DB) {
	if err := tx.Rollback().Error; err != nil && err != gorm.ErrInvalidTransaction {
		t.Logf("rollback failed: %v", err)
	}
}

// SendRequest performs a JSON request against the router inside tx.
func (ts *TestServer) SendRequest(t *testing.T, tx *gorm.DB, method, path, token string, body interface{}) (*httptest.ResponseRecorder, string) {
	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to encode request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tx != nil {
		ctx := context.WithValue(req.Context(), contextkeys.DBContextKey, tx)
		req = req.WithContext(ctx)
	}

	rec := httptest.NewRecorder()
	ts.Router.ServeHTTP(rec, req)

	return rec, rec.Body.String()
}

// SendRaw performs a request with a prebuilt body and content type, used for
// multipart uploads.
func (ts *TestServer) SendRaw(t *testing.T, tx *gorm.DB, method, path, token, contentType string, body io.Reader) (*httptest.ResponseRecorder, string) {
	req := httptest.NewRequest(method, path, body)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if tx != nil {
		ctx := context.WithValue(req.Context(), contextkeys.DBContextKey, tx)
		req = req.WithContext(ctx)
	}

	rec := httptest.NewRecorder()
	ts.Router.ServeHTTP(rec, req)

	return rec, rec.Body.String()
}
