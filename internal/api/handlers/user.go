package handlers

import (
	"net/http"

	"foodgram-backend/internal/auth"
	"foodgram-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles accounts and subscriptions
type UserHandler struct {
	userService         service.UserServiceInterface
	subscriptionService service.SubscriptionServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService service.UserServiceInterface, subscriptionService service.SubscriptionServiceInterface) *UserHandler {
	return &UserHandler{
		userService:         userService,
		subscriptionService: subscriptionService,
	}
}

// ListUsers handles GET /users
// @Summary List users
// @Tags users
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(6)
// @Success 200 {object} service.Page[service.UserResponse]
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	page, err := h.userService.List(pageRequest(c), auth.ActorFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, withLinks(c, page))
}

// Register handles POST /users
// @Summary Register a new user
// @Tags users
// @Accept json
// @Produce json
// @Param user body service.RegisterRequest true "Account data"
// @Success 201 {object} service.UserCreatedResponse
// @Failure 400 {object} ErrorResponse "Validation error or duplicate account"
// @Router /users [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.userService.Register(&req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// GetUser handles GET /users/:id
// @Summary Get user profile
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} service.UserResponse
// @Failure 404 {object} map[string]interface{} "User not found"
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := parseID(c, "id", "user")
	if !ok {
		return
	}

	user, err := h.userService.GetByID(id, auth.ActorFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// Me handles GET /users/me
// @Summary Current user profile
// @Tags users
// @Produce json
// @Success 200 {object} service.UserResponse
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Security TokenAuth
// @Router /users/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	user, err := h.userService.Me(auth.ActorFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// SetPassword handles POST /users/set_password
// @Summary Change password
// @Tags users
// @Accept json
// @Param passwords body service.SetPasswordRequest true "Current and new password"
// @Success 204 "Password changed"
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Security TokenAuth
// @Router /users/set_password [post]
func (h *UserHandler) SetPassword(c *gin.Context) {
	var req service.SetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.userService.SetPassword(&req, auth.ActorFromContext(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListSubscriptions handles GET /users/subscriptions
// @Summary Authors the current user follows
// @Tags users
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(6)
// @Param recipes_limit query int false "Recipes shown per author"
// @Success 200 {object} service.Page[service.SubscriptionResponse]
// @Failure 401 {object} map[string]interface{} "Authentication required"
// @Security TokenAuth
// @Router /users/subscriptions [get]
func (h *UserHandler) ListSubscriptions(c *gin.Context) {
	page, err := h.subscriptionService.List(pageRequest(c), auth.ActorFromContext(c), queryInt(c, "recipes_limit", 0))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, withLinks(c, page))
}

// Subscribe handles POST /users/:id/subscribe
// @Summary Subscribe to an author
// @Tags users
// @Produce json
// @Param id path int true "Author ID"
// @Param recipes_limit query int false "Recipes shown for the author"
// @Success 201 {object} service.SubscriptionResponse
// @Failure 400 {object} ErrorResponse "Self subscription or duplicate"
// @Failure 404 {object} map[string]interface{} "Author not found"
// @Security TokenAuth
// @Router /users/{id}/subscribe [post]
func (h *UserHandler) Subscribe(c *gin.Context) {
	id, ok := parseID(c, "id", "user")
	if !ok {
		return
	}

	author, err := h.subscriptionService.Subscribe(id, auth.ActorFromContext(c), queryInt(c, "recipes_limit", 0))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, author)
}

// Unsubscribe handles DELETE /users/:id/subscribe
// @Summary Unsubscribe from an author
// @Tags users
// @Param id path int true "Author ID"
// @Success 204 "Unsubscribed"
// @Failure 400 {object} ErrorResponse "Not subscribed"
// @Failure 404 {object} map[string]interface{} "Author not found"
// @Security TokenAuth
// @Router /users/{id}/subscribe [delete]
func (h *UserHandler) Unsubscribe(c *gin.Context) {
	id, ok := parseID(c, "id", "user")
	if !ok {
		return
	}

	if err := h.subscriptionService.Unsubscribe(id, auth.ActorFromContext(c)); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
