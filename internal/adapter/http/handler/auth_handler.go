package handler

import (
	"net/http"

	"github.com/iho/payledger/internal/adapter/http/dto"
	"github.com/iho/payledger/internal/domain"
	"github.com/iho/payledger/internal/infrastructure/auth"
)

// AuthHandler issues demo tokens for the API.
type AuthHandler struct {
	jwtManager *auth.JWTManager
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(jwtManager *auth.JWTManager) *AuthHandler {
	return &AuthHandler{jwtManager: jwtManager}
}

// Token issues a signed token for the built-in demo user. There is no
// credential check, the endpoint exists so clients can exercise the
// authenticated API without a user store.
func (h *AuthHandler) Token(w http.ResponseWriter, r *http.Request) {
	user := domain.DemoUser

	token, expiresAt, err := h.jwtManager.Generate(user)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	resp := dto.TokenResponse{
		Token: token,
		User: dto.UserInfo{
			ID:       user.ID,
			Username: user.Username,
			Email:    user.Email,
		},
		ExpiresAt: expiresAt,
	}

	writeMessage(w, http.StatusOK, resp, "Demo token generated successfully")
}
