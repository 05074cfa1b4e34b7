// internal/interfaces/http/handlers/auth.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/app"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/interfaces/http/middleware"
	"github.com/your-org/storefront-backend/internal/pkg/auth"
)

// AuthHandler handles session creation and teardown. A successful login
// or registration creates an orchestrator for the app session and issues
// the token that binds later requests to it.
type AuthHandler struct {
	registry   *app.Registry
	jwtManager *auth.JWTManager
	policy     *auth.Policy
	config     *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(registry *app.Registry, policy *auth.Policy, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		registry:   registry,
		jwtManager: auth.NewJWTManager(cfg),
		policy:     policy,
		config:     cfg,
	}
}

// Login handles user login
func (h *AuthHandler) Login(c *gin.Context) {
	var req auth.Credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	orch := h.registry.NewOrchestrator()
	session, err := orch.SignIn(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": err.Error(),
		})
		return
	}

	h.respondWithSession(c, http.StatusOK, "Login successful", orch, session)
}

// Register handles user registration
func (h *AuthHandler) Register(c *gin.Context) {
	var req auth.Registration
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	orch := h.registry.NewOrchestrator()
	session, err := orch.SignUp(c.Request.Context(), req)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, auth.ErrEmailTaken) {
			status = http.StatusConflict
		}
		c.JSON(status, gin.H{
			"error": err.Error(),
		})
		return
	}

	h.respondWithSession(c, http.StatusCreated, "User registered successfully", orch, session)
}

// Logout tears down the session. Sign-out failures are reported and the
// session stays usable; a repeated logout for an already-gone session
// simply succeeds.
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID, ok := middleware.GetSessionIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	orch, ok := h.registry.Get(sessionID)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
		return
	}

	if err := orch.SignOut(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": err.Error(),
		})
		return
	}

	h.registry.Remove(sessionID)

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}

func (h *AuthHandler) respondWithSession(c *gin.Context, status int, message string, orch *app.Orchestrator, session *app.Session) {
	token, err := h.jwtManager.GenerateSessionToken(
		session.ID,
		session.Identity.Email,
		h.policy.IsAdmin(session.Identity.Email),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate session token",
		})
		return
	}

	h.registry.Register(session.ID, orch)

	c.JSON(status, gin.H{
		"message": message,
		"data": gin.H{
			"session_token": token,
			"user":          session.Identity,
			"state":         orch.Snapshot(),
		},
	})
}
