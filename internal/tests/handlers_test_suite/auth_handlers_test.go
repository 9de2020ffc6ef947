package handlers_test_suite

import (
	"net/http"
	"testing"

	"github.com/charcuterie-certains/storefront-api/internal/http/handlers"
)

func TestRegisterReturnsTokens(t *testing.T) {
	e := newEnv(t)

	w := e.do(t, http.MethodPost, "/auth/register", handlers.CredentialsRequest{
		Email:    "nouveau@example.com",
		Password: "motdepasse",
	}, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d (%s)", w.Code, w.Body.String())
	}

	result := decode[handlers.RegisterResult](t, w)
	if result.Token == "" || result.RefreshToken == "" {
		t.Error("expected both tokens in the register response")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	e := newEnv(t)

	w := e.do(t, http.MethodPost, "/auth/register", handlers.CredentialsRequest{
		Email:    testEmail,
		Password: "autremotdepasse",
	}, nil)
	if w.Code != http.StatusConflict {
		t.Errorf("expected 409 for duplicate email, got %d", w.Code)
	}
}

func TestRegisterValidation(t *testing.T) {
	e := newEnv(t)

	cases := []struct {
		name string
		body handlers.CredentialsRequest
	}{
		{"missing email", handlers.CredentialsRequest{Password: "motdepasse"}},
		{"malformed email", handlers.CredentialsRequest{Email: "pas-un-email", Password: "motdepasse"}},
		{"short password", handlers.CredentialsRequest{Email: "ok@example.com", Password: "abc"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := e.do(t, http.MethodPost, "/auth/register", tc.body, nil)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	e := newEnv(t)

	w := e.do(t, http.MethodPost, "/auth/login", handlers.CredentialsRequest{
		Email:    testEmail,
		Password: testPassword,
	}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	result := decode[handlers.AuthResult](t, w)
	if result.Token == "" || result.RefreshToken == "" {
		t.Error("expected both tokens in the login response")
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	e := newEnv(t)

	cases := []struct {
		name string
		body handlers.CredentialsRequest
	}{
		{"unknown email", handlers.CredentialsRequest{Email: "inconnu@example.com", Password: testPassword}},
		{"wrong password", handlers.CredentialsRequest{Email: testEmail, Password: "mauvais-mdp"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := e.do(t, http.MethodPost, "/auth/login", tc.body, nil)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("expected 401, got %d", w.Code)
			}
		})
	}
}

func TestRefreshRotatesTokens(t *testing.T) {
	e := newEnv(t)

	login := decode[handlers.AuthResult](t, e.do(t, http.MethodPost, "/auth/login", handlers.CredentialsRequest{
		Email:    testEmail,
		Password: testPassword,
	}, nil))

	w := e.do(t, http.MethodPost, "/auth/refresh", handlers.RefreshRequest{RefreshToken: login.RefreshToken}, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	rotated := decode[handlers.AuthResult](t, w)
	if rotated.RefreshToken == login.RefreshToken {
		t.Error("refresh token was not rotated")
	}

	// the old refresh token is revoked by the rotation
	w = e.do(t, http.MethodPost, "/auth/refresh", handlers.RefreshRequest{RefreshToken: login.RefreshToken}, nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for a rotated-out token, got %d", w.Code)
	}
}

func TestRefreshRejectsUnknownToken(t *testing.T) {
	e := newEnv(t)

	w := e.do(t, http.MethodPost, "/auth/refresh", handlers.RefreshRequest{RefreshToken: "jamais-vu"}, nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	e := newEnv(t)

	login := decode[handlers.AuthResult](t, e.do(t, http.MethodPost, "/auth/login", handlers.CredentialsRequest{
		Email:    testEmail,
		Password: testPassword,
	}, nil))

	w := e.doAuthed(t, http.MethodPost, "/auth/logout", handlers.RefreshRequest{RefreshToken: login.RefreshToken}, nil)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}

	w = e.do(t, http.MethodPost, "/auth/refresh", handlers.RefreshRequest{RefreshToken: login.RefreshToken}, nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 after logout, got %d", w.Code)
	}
}

func TestLogoutRequiresAuth(t *testing.T) {
	e := newEnv(t)

	w := e.do(t, http.MethodPost, "/auth/logout", handlers.RefreshRequest{RefreshToken: "quelconque"}, nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 without a bearer token, got %d", w.Code)
	}
}

func TestAuthMiddlewareRejectsGarbageToken(t *testing.T) {
	e := newEnv(t)

	w := e.do(t, http.MethodPost, "/cart/items", handlers.CartItemRequest{ProductID: 1, Quantity: 1},
		map[string]string{"Authorization": "Bearer pas.un.jwt"})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for a malformed token, got %d", w.Code)
	}
}
