package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-api/internal/app"
	"portfolio-api/internal/logger"
	"portfolio-api/internal/transport/http/middleware"
	"portfolio-api/internal/transport/http/response"
)

type AuthHandler struct {
	authService *app.AuthService
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func NewAuthHandler(authService *app.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	err := h.authService.Register(c.Request.Context(), app.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidInput):
			response.Error(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, app.ErrDuplicateCredential):
			response.Error(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, app.ErrStoreUnavailable):
			response.Error(c, http.StatusServiceUnavailable, err.Error())
		default:
			logger.FromContext(c.Request.Context()).Error().Err(err).Msg("register failed")
			response.Error(c, http.StatusInternalServerError, "register failed")
		}
		return
	}

	response.Message(c, http.StatusCreated, "user registered")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	result, err := h.authService.Login(c.Request.Context(), app.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrInvalidCredentials):
			response.Error(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, app.ErrStoreUnavailable), errors.Is(err, app.ErrSigningUnavailable):
			response.Error(c, http.StatusServiceUnavailable, err.Error())
		default:
			logger.FromContext(c.Request.Context()).Error().Err(err).Msg("login failed")
			response.Error(c, http.StatusInternalServerError, "login failed")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":  result.Token,
		"userID": result.UserID,
	})
}

// GetUser answers the profile lookup behind the token guard. The guard has
// already verified the token and placed the user ID on the context.
func (h *AuthHandler) GetUser(c *gin.Context) {
	userIDAny, exists := c.Get(middleware.ContextUserIDKey)
	if !exists {
		response.Error(c, http.StatusUnauthorized, "missing authenticated user")
		return
	}
	userID, ok := userIDAny.(uint)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "invalid authenticated user")
		return
	}

	profile, err := h.authService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, app.ErrUserNotFound):
			response.Error(c, http.StatusNotFound, err.Error())
		case errors.Is(err, app.ErrStoreUnavailable):
			response.Error(c, http.StatusServiceUnavailable, err.Error())
		default:
			logger.FromContext(c.Request.Context()).Error().Err(err).Msg("get profile failed")
			response.Error(c, http.StatusInternalServerError, "fetch profile failed")
		}
		return
	}

	c.JSON(http.StatusOK, profile)
}
