package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GianlucaAlves/cinelog/internal/config"
	"github.com/GianlucaAlves/cinelog/internal/domain"
	"github.com/GianlucaAlves/cinelog/internal/middleware"
)

// refreshCookieName is the cookie the refresh token travels in. The cookie
// is HTTP-only, SameSite=Strict and scoped to the refresh endpoint path so
// page script cannot read it and no other endpoint ever receives it.
const (
	refreshCookieName = "refreshToken"
	refreshCookiePath = "/api/auth/refresh"
)

// AuthHandler handles authentication-related HTTP requests.
type AuthHandler struct {
	Service domain.AuthService
	Config  *config.Config
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service domain.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{Service: service, Config: cfg}
}

// Register handles POST /api/auth/register. Registration does not log the
// user in.
func (h *AuthHandler) Register(c *gin.Context) {
	var req domain.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email, username and password are required"})
		return
	}
	user, err := h.Service.Register(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user})
}

// Login handles POST /api/auth/login. Success returns the access token in
// the body and sets the refresh cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}
	resp, refreshToken, err := h.Service.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	h.setRefreshCookie(c, refreshToken)
	c.JSON(http.StatusOK, resp)
}

// Logout handles POST /api/auth/logout. It clears the refresh cookie;
// already-issued access tokens stay valid until they expire.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(refreshCookieName, "", -1, refreshCookiePath, "", h.Config.IsProduction(), true)
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Me handles GET /api/auth/me behind the auth middleware.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Access token is required"})
		return
	}
	user, err := h.Service.GetUserByID(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user})
}

// Refresh handles GET /api/auth/refresh. The refresh token is only ever
// read from its scoped cookie, and every use rotates it.
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(refreshCookieName)
	if err != nil || refreshToken == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Refresh token is required"})
		return
	}
	accessToken, newRefresh, err := h.Service.Refresh(refreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired refresh token"})
		return
	}
	h.setRefreshCookie(c, newRefresh)
	c.JSON(http.StatusOK, gin.H{"accessToken": accessToken})
}

func (h *AuthHandler) setRefreshCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(refreshCookieName, token, int(h.Config.RefreshTokenTTL.Seconds()), refreshCookiePath, "", h.Config.IsProduction(), true)
}
