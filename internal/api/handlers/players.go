package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mstratford/fpl-advisor/internal/services"
	"github.com/mstratford/fpl-advisor/pkg/utils"
)

type PlayerHandler struct {
	advisor *services.AdvisorService
}

func NewPlayerHandler(advisor *services.AdvisorService) *PlayerHandler {
	return &PlayerHandler{
		advisor: advisor,
	}
}

// GetPlayers returns the player pool with quality metrics, best first.
// Optional filters: ?position=MID&team=ARS
func (h *PlayerHandler) GetPlayers(c *gin.Context) {
	position := strings.ToUpper(c.Query("position"))
	team := strings.ToUpper(c.Query("team"))

	players, err := h.advisor.Players(c.Request.Context(), position, team)
	if err != nil {
		utils.SendUpstreamError(c, "Failed to load players")
		return
	}

	utils.SendSuccessWithMeta(c, players, &utils.Meta{Count: len(players)})
}

// GetPlayer returns one player with quality metrics.
func (h *PlayerHandler) GetPlayer(c *gin.Context) {
	playerID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.SendValidationError(c, "Invalid player ID", err.Error())
		return
	}

	player, err := h.advisor.Player(c.Request.Context(), playerID)
	if err != nil {
		utils.SendNotFound(c, "Player not found")
		return
	}

	utils.SendSuccess(c, player)
}

// GetPlayerProjections returns per-fixture expected points for one player.
func (h *PlayerHandler) GetPlayerProjections(c *gin.Context) {
	playerID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.SendValidationError(c, "Invalid player ID", err.Error())
		return
	}

	projection, err := h.advisor.Projections(c.Request.Context(), playerID)
	if err != nil {
		utils.SendNotFound(c, "Player not found")
		return
	}

	utils.SendSuccess(c, projection)
}

// GetTopProjections returns the highest projected players over the horizon.
// Optional: ?position=FWD&limit=10
func (h *PlayerHandler) GetTopProjections(c *gin.Context) {
	position := strings.ToUpper(c.Query("position"))

	limit := 20
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			utils.SendValidationError(c, "Invalid limit", "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	projections, err := h.advisor.TopProjections(c.Request.Context(), position, limit)
	if err != nil {
		utils.SendUpstreamError(c, "Failed to compute projections")
		return
	}

	utils.SendSuccessWithMeta(c, projections, &utils.Meta{Count: len(projections)})
}
