package handler

import (
	"net/http"

	"datavault360/internal/service"
	"datavault360/pkg/utils"

	"github.com/gin-gonic/gin"
)

const refreshCookie = "refresh_token"

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest carries the refresh token; the cookie set at login is the fallback
type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

// Login handles user authentication
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !bind(c, &req) {
		return
	}

	response, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.SetCookie(refreshCookie, response.RefreshToken, int(utils.GetRefreshTokenExpiry().Seconds()), "/", "", false, true)
	utils.SuccessResponse(c, response)
}

// Refresh generates a new access token from a refresh token
func (h *AuthHandler) Refresh(c *gin.Context) {
	token := h.refreshToken(c)
	if token == "" {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Refresh token not found")
		return
	}

	accessToken, err := h.authService.RefreshAccessToken(c.Request.Context(), token)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"access": accessToken,
	})
}

// Logout revokes the refresh token; logging out twice is not an error
func (h *AuthHandler) Logout(c *gin.Context) {
	if token := h.refreshToken(c); token != "" {
		if err := h.authService.Logout(c.Request.Context(), token); err != nil {
			respondError(c, err)
			return
		}
	}

	c.SetCookie(refreshCookie, "", -1, "/", "", false, true)
	utils.MessageResponse(c, "Logged out successfully")
}

func (h *AuthHandler) refreshToken(c *gin.Context) string {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err == nil && req.Refresh != "" {
		return req.Refresh
	}
	token, _ := c.Cookie(refreshCookie)
	return token
}
