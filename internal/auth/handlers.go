package auth

import (
	"net/http"

	apperrors "foodgram-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// CredentialChecker verifies an email/password pair
type CredentialChecker interface {
	Authenticate(email, password string) (Actor, error)
}

// AuthHandler handles token login and logout
type AuthHandler struct {
	service *AuthService
	users   CredentialChecker
}

// LoginRequest represents the token login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"chef@example.com"`
	Password string `json:"password" binding:"required" example:"s3cret-pass"`
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService, users CredentialChecker) *AuthHandler {
	return &AuthHandler{service: service, users: users}
}

// Login exchanges credentials for an API token
// @Summary Obtain auth token
// @Description Exchange email and password for a token used in the Authorization header
// @Tags authentication
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} map[string]interface{} "Invalid credentials"
// @Router /auth/token/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	actor, err := h.users.Authenticate(req.Email, req.Password)
	if err != nil {
		if apperrors.IsAuthentication(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed", "details": err.Error()})
		return
	}

	token, err := h.service.GenerateJWT(actor)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, TokenResponse{AuthToken: token})
}

// Logout ends the session. Tokens are stateless and expire on their own.
// @Summary Log out
// @Tags authentication
// @Security TokenAuth
// @Success 204
// @Failure 401 {object} map[string]interface{}
// @Router /auth/token/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	c.Status(http.StatusNoContent)
}
