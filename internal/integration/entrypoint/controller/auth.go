// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/freight-manager/backend/internal/application/usecase/auth"
	domainerror "github.com/freight-manager/backend/internal/domain/error"
	"github.com/freight-manager/backend/internal/integration/entrypoint/dto"
)

// AuthController serves login, token refresh and logout.
type AuthController struct {
	login   *auth.LoginUserUseCase
	refresh *auth.RefreshTokenUseCase
	logout  *auth.LogoutUserUseCase
}

func NewAuthController(
	login *auth.LoginUserUseCase,
	refresh *auth.RefreshTokenUseCase,
	logout *auth.LogoutUserUseCase,
) *AuthController {
	return &AuthController{
		login:   login,
		refresh: refresh,
		logout:  logout,
	}
}

// Login handles POST /auth/login.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, domainerror.ErrCodeMissingFields, "email and password are required")
		return
	}

	session, err := c.login.Execute(ctx.Request.Context(), auth.LoginUserInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AuthResponse{
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		ExpiresIn:    secondsUntil(session.AccessExpiresAt),
		User:         dto.ToUserResponse(session.User),
	})
}

// RefreshToken handles POST /auth/refresh.
func (c *AuthController) RefreshToken(ctx *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, domainerror.ErrCodeMissingToken, "refresh_token is required")
		return
	}

	session, err := c.refresh.Execute(ctx.Request.Context(), req.RefreshToken)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken:  session.AccessToken,
		RefreshToken: session.RefreshToken,
		ExpiresIn:    secondsUntil(session.AccessExpiresAt),
	})
}

// Logout handles POST /auth/logout. It answers 200 even without a body.
func (c *AuthController) Logout(ctx *gin.Context) {
	var req dto.LogoutRequest
	_ = ctx.ShouldBindJSON(&req)

	c.logout.Execute(ctx.Request.Context(), req.RefreshToken)

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Successfully logged out"})
}

func respondBadRequest(ctx *gin.Context, code domainerror.AuthErrorCode, message string) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error: message,
		Code:  string(code),
	})
}

func secondsUntil(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return max(int64(time.Until(t).Seconds()), 0)
}
