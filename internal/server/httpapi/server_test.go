package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/vrajdev/sadhana-backend/internal/common"
	"github.com/vrajdev/sadhana-backend/internal/logging"
	"github.com/vrajdev/sadhana-backend/internal/server/accounts"
	"github.com/vrajdev/sadhana-backend/internal/server/blog"
	"github.com/vrajdev/sadhana-backend/internal/server/catalog"
	"github.com/vrajdev/sadhana-backend/internal/server/config"
	"github.com/vrajdev/sadhana-backend/internal/server/media"
	"github.com/vrajdev/sadhana-backend/internal/server/sadhana"
	"github.com/vrajdev/sadhana-backend/internal/server/teable"
)

// memStore is an in-memory stand-in for the external record store shared
// by the account, stats and catalog services.
type memStore struct {
	mu        sync.Mutex
	tables    map[string][]teable.Record
	nextTable int

	listErr        error
	createErr      error
	createTableErr error
}

func newMemStore() *memStore {
	return &memStore{tables: map[string][]teable.Record{}}
}

func (m *memStore) ListRecords(ctx context.Context, tableID string) ([]teable.Record, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]teable.Record(nil), m.tables[tableID]...), nil
}

func (m *memStore) CreateRecord(ctx context.Context, tableID string, fields map[string]any) (*teable.Record, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	rec := teable.Record{ID: fmt.Sprintf("rec%d", len(m.tables[tableID])+1), Fields: fields}
	m.tables[tableID] = append(m.tables[tableID], rec)
	return &rec, nil
}

func (m *memStore) CreateTable(ctx context.Context, baseID string, name string, fields []teable.FieldSpec) (string, error) {
	if m.createTableErr != nil {
		return "", m.createTableErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextTable++
	id := fmt.Sprintf("tblStats%d", m.nextTable)
	m.tables[id] = nil
	return id, nil
}

// memRepo is an in-memory blog repository.
type memRepo struct {
	mu    sync.Mutex
	posts []*blog.Post
}

func (m *memRepo) Create(ctx context.Context, post *blog.Post) (*blog.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	post.ID = fmt.Sprintf("p-%d", len(m.posts)+1)
	post.CreatedAt = time.Now()
	m.posts = append(m.posts, post)
	return post, nil
}

func (m *memRepo) GetByID(ctx context.Context, id string) (*blog.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (m *memRepo) List(ctx context.Context) ([]*blog.Post, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*blog.Post(nil), m.posts...), nil
}

const testSecret = "test-secret"

func newTestServer(t *testing.T, store *memStore) http.Handler {
	t.Helper()

	cfg := &config.Config{
		SecretKey:                   testSecret,
		AccessTokenValidityDuration: 24 * time.Hour,
		AccountsTableID:             "tblAccounts",
		TeableBaseID:                "bse1",
		CoursesTableID:              "tblCourses",
		TripsTableID:                "tblTrips",
		S3Bucket:                    "gallery",
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))

	srv := NewServer(":0", logger,
		accounts.NewService(store, cfg),
		sadhana.NewService(store),
		catalog.NewService(store, cfg),
		blog.NewService(&memRepo{}),
		media.NewService(cfg),
		cfg.SecretKey,
	)

	return srv.Handler()
}

func doJSON(t *testing.T, h http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", rr.Body.String(), err)
	}
	return out
}
