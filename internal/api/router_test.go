package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/elibrary/library-system/internal/core/domain"
	"github.com/elibrary/library-system/internal/core/service"
	"github.com/elibrary/library-system/internal/infrastructure/kv"
)

// newTestRouter wires the real services over an in-memory backing store so
// requests exercise the whole stack, including the error handler.
func newTestRouter(t *testing.T) (*httptest.Server, kv.Store) {
	t.Helper()

	store := kv.NewMemory()
	log := zerolog.Nop()

	catalog := service.NewCatalogService(kv.NewCatalogRepository(store, log), nil, log)
	auth := service.NewAuthService(
		kv.NewAccountRepository(store, log),
		kv.NewSessionStore(store),
		service.PlaintextScheme{},
		"test-secret",
		time.Hour,
		log,
	)

	e := NewRouter(Dependencies{
		Catalog:   catalog,
		Auth:      auth,
		Themes:    kv.NewThemeStore(store),
		Store:     store,
		JWTSecret: "test-secret",
		Log:       log,
	})

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return srv, store
}

func doJSON(t *testing.T, method, url, token, body string) (*http.Response, map[string]any) {
	t.Helper()

	req, err := http.NewRequest(method, url, strings.NewReader(body))
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	t.Cleanup(func() { _ = resp.Body.Close() })

	out := map[string]any{}
	_ = json.NewDecoder(resp.Body).Decode(&out)
	return resp, out
}

func loginAs(t *testing.T, srv *httptest.Server, username, password string) string {
	t.Helper()
	resp, body := doJSON(t, http.MethodPost, srv.URL+"/auth/login", "",
		`{"username":"`+username+`","password":"`+password+`"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login as %s failed: %d %v", username, resp.StatusCode, body)
	}
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatalf("no token in login response: %v", body)
	}
	return token
}

func TestRouter_AdminLoginAndCatalogFlow(t *testing.T) {
	srv, _ := newTestRouter(t)
	token := loginAs(t, srv, "admin", "admin123")

	// Fresh store: list seeds the catalog.
	resp, body := doJSON(t, http.MethodGet, srv.URL+"/v1/books", token, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list failed: %d %v", resp.StatusCode, body)
	}
	books, _ := body["books"].([]any)
	if len(books) != 5 {
		t.Fatalf("expected 5 seed books, got %d", len(books))
	}

	// Issue then return restores the available count.
	resp, body = doJSON(t, http.MethodPost, srv.URL+"/v1/books/B-104/issue", token, `{"recipient":"M-001"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("issue failed: %d %v", resp.StatusCode, body)
	}
	resp, body = doJSON(t, http.MethodPost, srv.URL+"/v1/books/B-104/return", token, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("return failed: %d %v", resp.StatusCode, body)
	}
	book, _ := body["book"].(map[string]any)
	if book["available"] != float64(2) {
		t.Fatalf("expected available restored to 2, got %v", book["available"])
	}

	// Return with every copy present is a conflict with no state change.
	resp, body = doJSON(t, http.MethodPost, srv.URL+"/v1/books/B-104/return", token, "")
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409, got %d %v", resp.StatusCode, body)
	}

	// Dashboard counts reduce over the catalog.
	resp, body = doJSON(t, http.MethodGet, srv.URL+"/v1/dashboard", token, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("dashboard failed: %d %v", resp.StatusCode, body)
	}
	if body["total"] != float64(20) || body["issued"] != float64(0) || body["available"] != float64(20) {
		t.Fatalf("unexpected counts: %v", body)
	}
}

func TestRouter_IssueUntilExhausted(t *testing.T) {
	srv, _ := newTestRouter(t)
	token := loginAs(t, srv, "admin", "admin123")

	// B-104 has two copies.
	for i := 0; i < 2; i++ {
		resp, body := doJSON(t, http.MethodPost, srv.URL+"/v1/books/B-104/issue", token, `{"recipient":"M-001"}`)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("issue %d failed: %d %v", i, resp.StatusCode, body)
		}
	}

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/v1/books/B-104/issue", token, `{"recipient":"M-001"}`)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 when exhausted, got %d %v", resp.StatusCode, body)
	}
	if body["error"] != "no copies available" {
		t.Fatalf("unexpected error message: %v", body)
	}
}

func TestRouter_RegisterLoginAndRBAC(t *testing.T) {
	srv, _ := newTestRouter(t)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/auth/register", "",
		`{"username":"Alice","password":"secret","confirm_password":"secret"}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register failed: %d %v", resp.StatusCode, body)
	}

	// Registering the same name again conflicts, as does the reserved name.
	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/auth/register", "",
		`{"username":"alice","password":"secret","confirm_password":"secret"}`)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate, got %d", resp.StatusCode)
	}
	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/auth/register", "",
		`{"username":"admin","password":"secret","confirm_password":"secret"}`)
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 for reserved name, got %d", resp.StatusCode)
	}

	// Login is case-insensitive on the username.
	token := loginAs(t, srv, "ALICE", "secret")

	// A user-role session may issue but not add.
	resp, body = doJSON(t, http.MethodPost, srv.URL+"/v1/books/B-101/issue", token, `{"recipient":"M-007"}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("issue as user failed: %d %v", resp.StatusCode, body)
	}
	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/v1/books", token,
		`{"title":"Sneaky","total_copies":1}`)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin add, got %d", resp.StatusCode)
	}

	// Admin can add; the record lands in the catalog.
	adminToken := loginAs(t, srv, "admin", "admin123")
	resp, body = doJSON(t, http.MethodPost, srv.URL+"/v1/books", adminToken,
		`{"title":"Compilers","author":"A. Aho","total_copies":2}`)
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("add failed: %d %v", resp.StatusCode, body)
	}

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/v1/books", adminToken, "")
	books, _ := body["books"].([]any)
	if len(books) != 6 {
		t.Fatalf("expected 6 books after add, got %d", len(books))
	}
}

func TestRouter_BadCredentialsAndMissingToken(t *testing.T) {
	srv, _ := newTestRouter(t)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/auth/login", "",
		`{"username":"admin","password":"wrong"}`)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
	if body["error"] != "invalid credentials" {
		t.Fatalf("unexpected error message: %v", body)
	}

	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/v1/books", "", "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.StatusCode)
	}
}

func TestRouter_SessionLifecycle(t *testing.T) {
	srv, store := newTestRouter(t)

	resp, _ := doJSON(t, http.MethodGet, srv.URL+"/auth/session", "", "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 before login, got %d", resp.StatusCode)
	}

	token := loginAs(t, srv, "admin", "admin123")

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/auth/session", "", "")
	if resp.StatusCode != http.StatusOK || body["username"] != "admin" || body["role"] != domain.RoleAdmin {
		t.Fatalf("unexpected session: %d %v", resp.StatusCode, body)
	}

	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/auth/logout", token, "")
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("logout failed: %d", resp.StatusCode)
	}

	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/auth/session", "", "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", resp.StatusCode)
	}

	// The session keys themselves are gone from the backing store.
	if _, err := store.Get(context.Background(), kv.KeyUser); err == nil {
		t.Fatalf("expected user key cleared")
	}
}

func TestRouter_ThemeAndHealth(t *testing.T) {
	srv, _ := newTestRouter(t)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/theme", "", "")
	if resp.StatusCode != http.StatusOK || body["theme"] != domain.ThemeLight {
		t.Fatalf("expected default light theme, got %d %v", resp.StatusCode, body)
	}

	resp, body = doJSON(t, http.MethodPost, srv.URL+"/theme/toggle", "", "")
	if resp.StatusCode != http.StatusOK || body["theme"] != domain.ThemeDark {
		t.Fatalf("expected dark after toggle, got %d %v", resp.StatusCode, body)
	}

	resp, _ = doJSON(t, http.MethodPut, srv.URL+"/theme", "", `{"theme":"sepia"}`)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid theme, got %d", resp.StatusCode)
	}

	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/health", "", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("liveness failed: %d", resp.StatusCode)
	}
	resp, body = doJSON(t, http.MethodGet, srv.URL+"/health/ready", "", "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("readiness failed: %d %v", resp.StatusCode, body)
	}
}
