package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mstratford/fpl-advisor/internal/services"
	"github.com/mstratford/fpl-advisor/pkg/config"
	"github.com/mstratford/fpl-advisor/pkg/utils"
)

type TeamHandler struct {
	advisor *services.AdvisorService
	cfg     *config.Config
}

func NewTeamHandler(advisor *services.AdvisorService, cfg *config.Config) *TeamHandler {
	return &TeamHandler{
		advisor: advisor,
		cfg:     cfg,
	}
}

// entryID resolves the manager id from the query, falling back to the
// configured default team.
func (h *TeamHandler) entryID(c *gin.Context) (int, bool) {
	raw := c.Query("entry")
	if raw == "" {
		if h.cfg.FPLTeamID > 0 {
			return h.cfg.FPLTeamID, true
		}
		utils.SendValidationError(c, "Missing entry ID", "pass ?entry= or configure FPL_TEAM_ID")
		return 0, false
	}
	entryID, err := strconv.Atoi(raw)
	if err != nil || entryID <= 0 {
		utils.SendValidationError(c, "Invalid entry ID", "entry must be a positive integer")
		return 0, false
	}
	return entryID, true
}

// GetTeam returns the manager's roster with next-fixture expected points.
func (h *TeamHandler) GetTeam(c *gin.Context) {
	entryID, ok := h.entryID(c)
	if !ok {
		return
	}

	outlook, err := h.advisor.Team(c.Request.Context(), entryID)
	if err != nil {
		utils.SendUpstreamError(c, "Failed to load team")
		return
	}

	utils.SendSuccessWithMeta(c, outlook, &utils.Meta{Gameweek: outlook.Gameweek})
}

// GetTransfers returns transfer suggestions within the available budget.
// Optional: ?budget=1.5 (money in the bank, defaults to configured budget)
func (h *TeamHandler) GetTransfers(c *gin.Context) {
	entryID, ok := h.entryID(c)
	if !ok {
		return
	}

	budget := h.cfg.TransferBudget
	if raw := c.Query("budget"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed < 0 {
			utils.SendValidationError(c, "Invalid budget", "budget must be a non-negative number")
			return
		}
		budget = parsed
	}

	candidates, err := h.advisor.Transfers(c.Request.Context(), entryID, budget)
	if err != nil {
		utils.SendUpstreamError(c, "Failed to evaluate transfers")
		return
	}

	utils.SendSuccessWithMeta(c, candidates, &utils.Meta{Count: len(candidates)})
}

// GetCaptain ranks the roster for the armband.
func (h *TeamHandler) GetCaptain(c *gin.Context) {
	entryID, ok := h.entryID(c)
	if !ok {
		return
	}

	suggestion, err := h.advisor.Captain(c.Request.Context(), entryID)
	if err != nil {
		utils.SendUpstreamError(c, "Failed to evaluate captain options")
		return
	}

	utils.SendSuccess(c, suggestion)
}
