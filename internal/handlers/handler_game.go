package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gamescorehq/gamescore_app/internal/apperrors"
	"github.com/gamescorehq/gamescore_app/internal/core/domain"
	portssvc "github.com/gamescorehq/gamescore_app/internal/core/ports/services"
	"github.com/gamescorehq/gamescore_app/internal/dto"
	"github.com/gamescorehq/gamescore_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// gameHandler handles HTTP requests for game records and leaderboards.
type gameHandler struct {
	gameService portssvc.GameSvcFacade
}

func newGameHandler(gs portssvc.GameSvcFacade) *gameHandler {
	return &gameHandler{
		gameService: gs,
	}
}

// registerGameRoutes registers all game-related routes.
func registerGameRoutes(rg *gin.RouterGroup, gameService portssvc.GameSvcFacade) {
	h := newGameHandler(gameService)

	games := rg.Group("/games")
	{
		games.POST("", h.addGame)
		games.GET("/player/:username", h.listGamesByPlayer)
		games.GET("/leaderboard/weekly", h.weeklyLeaderboard)
		games.GET("/leaderboard/monthly", h.monthlyLeaderboard)
	}
}

// addGame godoc
// @Summary Record a finished game
// @Description Stores a game result for the given player.
// @Tags games
// @Accept json
// @Produce json
// @Param game body dto.AddGameRequest true "Game result"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Player not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /games [post]
func (h *gameHandler) addGame(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.AddGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	if err := h.gameService.AddGame(c.Request.Context(), req.PlayerID, req.Score); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Score cannot be negative"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Player not found"})
		default:
			logger.Error("Failed to record game", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to record game"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.MessageResponse{Message: "Game recorded successfully"})
}

// listGamesByPlayer godoc
// @Summary List a player's games
// @Description Retrieves a player's game history, highest score first.
// @Tags games
// @Produce json
// @Param username path string true "Username"
// @Param limit query int false "Limit number of results" default(20)
// @Success 200 {object} dto.ListGamesResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /games/player/{username} [get]
func (h *gameHandler) listGamesByPlayer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	username := c.Param("username")

	var params dto.ListPlayersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid pagination parameters"})
		return
	}

	games, err := h.gameService.ListGamesByPlayer(c.Request.Context(), username, params.Limit)
	if err != nil {
		logger.Error("Failed to list games", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list games"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListGamesResponse(games))
}

// weeklyLeaderboard godoc
// @Summary Weekly leaderboard
// @Description Per-player score totals over the last 7 days, highest first.
// @Tags games
// @Produce json
// @Param limit query int false "Limit number of results" default(10)
// @Success 200 {object} dto.LeaderboardResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /games/leaderboard/weekly [get]
func (h *gameHandler) weeklyLeaderboard(c *gin.Context) {
	h.leaderboard(c, h.gameService.WeeklyLeaderboard)
}

// monthlyLeaderboard godoc
// @Summary Monthly leaderboard
// @Description Per-player score totals over the last 30 days, highest first.
// @Tags games
// @Produce json
// @Param limit query int false "Limit number of results" default(10)
// @Success 200 {object} dto.LeaderboardResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /games/leaderboard/monthly [get]
func (h *gameHandler) monthlyLeaderboard(c *gin.Context) {
	h.leaderboard(c, h.gameService.MonthlyLeaderboard)
}

func (h *gameHandler) leaderboard(c *gin.Context, query func(ctx context.Context, limit int) ([]domain.ScoreRecord, error)) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.LeaderboardParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid limit parameter"})
		return
	}

	records, err := query(c.Request.Context(), params.Limit)
	if err != nil {
		logger.Error("Failed to query leaderboard", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to query leaderboard"})
		return
	}

	c.JSON(http.StatusOK, dto.ToLeaderboardResponse(records))
}
