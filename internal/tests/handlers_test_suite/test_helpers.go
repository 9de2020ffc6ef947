package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/charcuterie-certains/storefront-api/internal/auth"
	"github.com/charcuterie-certains/storefront-api/internal/cart"
	api "github.com/charcuterie-certains/storefront-api/internal/http"
	"github.com/charcuterie-certains/storefront-api/internal/http/handlers"
	rl "github.com/charcuterie-certains/storefront-api/internal/http/rate_limiter"
	"github.com/charcuterie-certains/storefront-api/internal/repo"
	"github.com/charcuterie-certains/storefront-api/internal/whatsapp"
)

const (
	testEmail    = "client@example.com"
	testPassword = "secret123"
)

type env struct {
	router http.Handler
	users  *repo.InMemoryUserRepository
	carts  *cart.Manager
	token  string
}

// newEnv builds the real router on in-memory repositories and registers one
// customer account.
func newEnv(t *testing.T) *env {
	t.Helper()

	catalog, err := repo.NewInMemoryProductRepository(repo.DefaultProducts())
	if err != nil {
		t.Fatalf("building catalog: %v", err)
	}

	users := repo.NewInMemoryUserRepository()
	carts := cart.NewManager(time.Hour)
	tokens := auth.NewTokens("test-secret", 15*time.Minute)

	h := handlers.New(handlers.Deps{
		Products:   catalog,
		Users:      users,
		Carts:      carts,
		Tokens:     tokens,
		Refresh:    auth.NewMemoryRefreshStore(),
		RefreshTTL: time.Hour,
		WhatsApp:   whatsapp.NewLinkBuilder("243972499388"),
		Log:        zerolog.Nop(),
	})

	// generous limits so the suite never trips the limiter
	limiter := rl.NewLimiter(1000, 1000)
	router := api.NewRouter(h, tokens, limiter, nil, zerolog.Nop())

	e := &env{router: router, users: users, carts: carts}

	w := e.do(t, http.MethodPost, "/auth/register", handlers.CredentialsRequest{
		Email:    testEmail,
		Password: testPassword,
	}, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("registering test user: expected 201, got %d (%s)", w.Code, w.Body.String())
	}
	var result handlers.RegisterResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("decoding register result: %v", err)
	}
	e.token = result.Token

	return e
}

// do performs one request against the router. A nil body sends no payload.
func (e *env) do(t *testing.T, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshaling request body: %v", err)
		}
		reader = bytes.NewBuffer(payload)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// doAuthed is do with the registered customer's Bearer token attached.
func (e *env) doAuthed(t *testing.T, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	if headers == nil {
		headers = map[string]string{}
	}
	headers["Authorization"] = "Bearer " + e.token
	return e.do(t, method, path, body, headers)
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.NewDecoder(w.Body).Decode(&v); err != nil {
		t.Fatalf("decoding response: %v (body: %s)", err, w.Body.String())
	}
	return v
}
