package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gamescorehq/gamescore_app/internal/apperrors"
	portssvc "github.com/gamescorehq/gamescore_app/internal/core/ports/services"
	"github.com/gamescorehq/gamescore_app/internal/dto"
	"github.com/gamescorehq/gamescore_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// authHandler handles login, registration and credential recovery.
type authHandler struct {
	playerService portssvc.PlayerSvcFacade
}

// newAuthHandler creates a new authHandler.
func newAuthHandler(ps portssvc.PlayerSvcFacade) *authHandler {
	return &authHandler{
		playerService: ps,
	}
}

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// registerAuthRoutes sets up the public authentication routes.
func registerAuthRoutes(rg *gin.Engine, playerService portssvc.PlayerSvcFacade) {
	h := newAuthHandler(playerService)

	auth := rg.Group("/api/v1/auth")
	{
		auth.POST("/login", h.login)
		auth.POST("/register", h.register)
		auth.POST("/forgotpassword", h.forgotPassword)
		auth.POST("/resetpassword", h.resetPassword)
	}
}

// bindingErrorMessage turns a binding failure into a caller-friendly message,
// naming the offending fields when the validator provides them.
func bindingErrorMessage(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fields := make([]string, len(validationErrs))
		for i, fe := range validationErrs {
			fields[i] = fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag())
		}
		return "Invalid request body: " + strings.Join(fields, ", ")
	}
	return "Invalid request body"
}

// login godoc
// @Summary Player login
// @Description Authenticates a player and returns a session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	token, err := h.playerService.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Incorrect username or password"})
			return
		}
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Login failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to log in"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Token: token})
}

// register godoc
// @Summary Register new player
// @Description Creates a new player account.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "Player Registration Info"
// @Success 201 {object} dto.PlayerResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Conflict (username exists)"
// @Failure 500 {object} ErrorResponse
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	newPlayer, err := h.playerService.Register(c.Request.Context(), req)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		switch {
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Username is already taken"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Username, password and email are required"})
		default:
			logger.Error("Failed to register player", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to register player"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToPlayerResponse(newPlayer))
}

// forgotPassword godoc
// @Summary Start credential recovery
// @Description Issues a one-time reset token, mails it to the player and returns a session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param forgot body dto.ForgotPasswordRequest true "Username and registered email"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "Username and email do not match"
// @Failure 502 {object} ErrorResponse "Mail delivery failed"
// @Failure 500 {object} ErrorResponse
// @Router /auth/forgotpassword [post]
func (h *authHandler) forgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	token, err := h.playerService.ForgotPassword(c.Request.Context(), req)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		switch {
		case errors.Is(err, apperrors.ErrUnauthorized), errors.Is(err, apperrors.ErrNotFound):
			// An unknown username and a wrong email look the same to the
			// caller so the endpoint can't be used to probe accounts.
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Username and email don't match"})
		case errors.Is(err, apperrors.ErrDependency):
			logger.Error("Reset mail delivery failed", slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Failed to send reset email"})
		default:
			logger.Error("Forgot password failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to process request"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Token: token})
}

// resetPassword godoc
// @Summary Complete credential recovery
// @Description Exchanges a valid reset token for a new password.
// @Tags auth
// @Accept json
// @Produce json
// @Param reset body dto.ResetPasswordRequest true "Username, reset token and new password"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "Username and token do not match"
// @Failure 500 {object} ErrorResponse
// @Router /auth/resetpassword [post]
func (h *authHandler) resetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	if err := h.playerService.ResetPassword(c.Request.Context(), req); err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		switch {
		case errors.Is(err, apperrors.ErrUnauthorized), errors.Is(err, apperrors.ErrInvalidToken):
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Username and token don't match"})
		default:
			logger.Error("Reset password failed", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to reset password"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Password updated successfully"})
}
