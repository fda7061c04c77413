package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gamescorehq/gamescore_app/internal/apperrors"
	portssvc "github.com/gamescorehq/gamescore_app/internal/core/ports/services"
	"github.com/gamescorehq/gamescore_app/internal/dto"
	"github.com/gamescorehq/gamescore_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// playerHandler handles HTTP requests related to players.
type playerHandler struct {
	playerService portssvc.PlayerSvcFacade
}

// newPlayerHandler creates a new playerHandler.
func newPlayerHandler(ps portssvc.PlayerSvcFacade) *playerHandler {
	return &playerHandler{
		playerService: ps,
	}
}

// registerPlayerRoutes registers all player-related routes.
func registerPlayerRoutes(rg *gin.RouterGroup, playerService portssvc.PlayerSvcFacade) {
	h := newPlayerHandler(playerService)

	rg.GET("/playerid", h.getPlayerID)

	players := rg.Group("/players")
	{
		players.GET("", h.listPlayers)
		players.GET("/:id", h.getPlayer)
		players.PUT("/:id", h.updatePlayer)
	}
}

// getPlayerID godoc
// @Summary Look up a player ID
// @Description Resolves a username to its player ID.
// @Tags players
// @Produce json
// @Param username query string true "Username to resolve"
// @Success 200 {object} dto.PlayerIDResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Player not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /playerid [get]
func (h *playerHandler) getPlayerID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	username := c.Query("username")
	if username == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Query parameter 'username' is required"})
		return
	}

	playerID, err := h.playerService.GetPlayerID(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Player not found"})
			return
		}
		logger.Error("Failed to look up player ID", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to look up player ID"})
		return
	}

	c.JSON(http.StatusOK, dto.PlayerIDResponse{PlayerID: playerID})
}

// getPlayer godoc
// @Summary Get a player by ID
// @Description Retrieves details for a specific player.
// @Tags players
// @Produce json
// @Param id path string true "Player ID"
// @Success 200 {object} dto.PlayerResponse
// @Failure 404 {object} ErrorResponse "Player not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /players/{id} [get]
func (h *playerHandler) getPlayer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	playerID := c.Param("id")

	player, err := h.playerService.GetPlayerByID(c.Request.Context(), playerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Player not found"})
			return
		}
		logger.Error("Failed to get player", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve player"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPlayerResponse(player))
}

// listPlayers godoc
// @Summary List players
// @Description Retrieves a paginated list of players.
// @Tags players
// @Produce json
// @Param limit query int false "Limit number of results" default(20)
// @Param offset query int false "Offset for pagination" default(0)
// @Success 200 {object} dto.ListPlayersResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /players [get]
func (h *playerHandler) listPlayers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListPlayersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid pagination parameters"})
		return
	}

	players, err := h.playerService.ListPlayers(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list players", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list players"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListPlayersResponse(players))
}

// updatePlayer godoc
// @Summary Update a player's password
// @Description Replaces the player's password. Any outstanding reset token is invalidated.
// @Tags players
// @Accept json
// @Produce json
// @Param id path string true "Player ID"
// @Param update body dto.UpdatePlayerRequest true "New password"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Player not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /players/{id} [put]
func (h *playerHandler) updatePlayer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	playerID := c.Param("id")

	if username, ok := middleware.GetAuthenticatedUsername(c); ok {
		logger = logger.With(slog.String("requested_by", username))
	}

	var req dto.UpdatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindingErrorMessage(err)})
		return
	}

	if err := h.playerService.UpdatePlayer(c.Request.Context(), playerID, req.Password); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Player not found"})
			return
		}
		logger.Error("Failed to update player", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update player"})
		return
	}

	logger.Info("Player password updated", slog.String("player_id", playerID))
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Player updated successfully"})
}
