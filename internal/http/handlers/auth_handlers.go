package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/charcuterie-certains/storefront-api/internal/auth"
	"github.com/charcuterie-certains/storefront-api/internal/models"
	"github.com/charcuterie-certains/storefront-api/internal/repo"
)

func (h *Handler) issueTokens(ctx context.Context, user models.User) (string, string, error) {
	token, err := h.tokens.Generate(user)
	if err != nil {
		return "", "", err
	}
	refreshToken := auth.NewRefreshToken()
	if err := h.refresh.Save(ctx, refreshToken, user.Email, h.refreshTTL); err != nil {
		return "", "", err
	}
	return token, refreshToken, nil
}

// RegisterHandler godoc
// @Summary Register a customer account and return tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "email and password"
// @Success 201 {object} RegisterResult
// @Failure 400 {object} []ValidationError
// @Failure 409 {string} string "Email already registered"
// @Router /auth/register [post]
func (h *Handler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var creds CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if validationErrors := h.validateStruct(creds); len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "failed to hash password", http.StatusInternalServerError)
		return
	}

	user, err := h.users.CreateUser(models.User{
		Email:        creds.Email,
		PasswordHash: string(hashed),
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			http.Error(w, "email already registered", http.StatusConflict)
			return
		}
		h.log.Error().Err(err).Msg("register failed")
		http.Error(w, "failed to register user", http.StatusInternalServerError)
		return
	}

	token, refreshToken, err := h.issueTokens(r.Context(), user)
	if err != nil {
		h.log.Error().Err(err).Msg("token issue failed")
		http.Error(w, "could not generate token", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, RegisterResult{
		Message:      "user registered",
		Token:        token,
		RefreshToken: refreshToken,
	})
}

// LoginHandler godoc
// @Summary Authenticate a customer and return tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body CredentialsRequest true "email and password"
// @Success 200 {object} AuthResult
// @Failure 400 {string} string "Invalid input"
// @Failure 401 {string} string "Unauthorized"
// @Router /auth/login [post]
func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var creds CredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	user, err := h.users.GetByEmail(creds.Email)
	if err != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)) != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	token, refreshToken, err := h.issueTokens(r.Context(), user)
	if err != nil {
		h.log.Error().Err(err).Msg("token issue failed")
		http.Error(w, "could not generate token", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, AuthResult{Token: token, RefreshToken: refreshToken})
}

// RefreshHandler godoc
// @Summary Rotate a refresh token
// @Description Exchanges a valid refresh token for a new access token and a new refresh token; the old one is revoked.
// @Tags auth
// @Accept json
// @Produce json
// @Param token body RefreshRequest true "refresh token"
// @Success 200 {object} AuthResult
// @Failure 400 {object} []ValidationError
// @Failure 401 {string} string "Unknown or expired refresh token"
// @Router /auth/refresh [post]
func (h *Handler) RefreshHandler(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if validationErrors := h.validateStruct(req); len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	email, err := h.refresh.Lookup(r.Context(), req.RefreshToken)
	if err != nil {
		http.Error(w, "invalid refresh token", http.StatusUnauthorized)
		return
	}

	user, err := h.users.GetByEmail(email)
	if err != nil {
		http.Error(w, "invalid refresh token", http.StatusUnauthorized)
		return
	}

	if err := h.refresh.Revoke(r.Context(), req.RefreshToken); err != nil {
		h.log.Error().Err(err).Msg("refresh revoke failed")
		http.Error(w, "could not rotate token", http.StatusInternalServerError)
		return
	}

	token, refreshToken, err := h.issueTokens(r.Context(), user)
	if err != nil {
		h.log.Error().Err(err).Msg("token issue failed")
		http.Error(w, "could not generate token", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, AuthResult{Token: token, RefreshToken: refreshToken})
}

// LogoutHandler godoc
// @Summary Revoke a refresh token
// @Tags auth
// @Accept json
// @Security BearerAuth
// @Param token body RefreshRequest true "refresh token"
// @Success 204 "Logged out"
// @Failure 400 {string} string "Invalid input"
// @Router /auth/logout [post]
func (h *Handler) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if err := h.refresh.Revoke(r.Context(), req.RefreshToken); err != nil {
		h.log.Error().Err(err).Msg("refresh revoke failed")
		http.Error(w, "could not revoke token", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
