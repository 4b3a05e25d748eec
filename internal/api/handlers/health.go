package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mstratford/fpl-advisor/internal/models"
	"github.com/mstratford/fpl-advisor/internal/services"
	"github.com/mstratford/fpl-advisor/pkg/database"
	"github.com/mstratford/fpl-advisor/pkg/utils"
)

type HealthHandler struct {
	db        *database.DB
	refresher *services.RefresherService
	snapshots *services.SnapshotService
}

func NewHealthHandler(db *database.DB, refresher *services.RefresherService, snapshots *services.SnapshotService) *HealthHandler {
	return &HealthHandler{
		db:        db,
		refresher: refresher,
		snapshots: snapshots,
	}
}

// GetHealth reports liveness plus scheduler state.
func (h *HealthHandler) GetHealth(c *gin.Context) {
	status := "ok"
	code := http.StatusOK

	sqlDB, err := h.db.DB.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":    status,
		"timestamp": time.Now().UTC(),
		"service":   "fpl-advisor",
		"refresher": h.refresher.Status(),
	})
}

// GetSnapshots lists recorded upstream pulls, newest first.
// Optional: ?kind=bootstrap&limit=10
func (h *HealthHandler) GetSnapshots(c *gin.Context) {
	kind := c.DefaultQuery("kind", models.SnapshotBootstrap)
	switch kind {
	case models.SnapshotBootstrap, models.SnapshotFixtures, models.SnapshotPicks:
	default:
		utils.SendValidationError(c, "Invalid snapshot kind", "kind must be bootstrap, fixtures, or picks")
		return
	}

	limit := 20
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			utils.SendValidationError(c, "Invalid limit", "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	snapshots, err := h.snapshots.History(c.Request.Context(), kind, limit)
	if err != nil {
		utils.SendInternalError(c, "Failed to list snapshots")
		return
	}

	utils.SendSuccessWithMeta(c, snapshots, &utils.Meta{Count: len(snapshots)})
}

// RefreshData triggers an out-of-schedule refresh.
func (h *HealthHandler) RefreshData(c *gin.Context) {
	h.refresher.RefreshNow()
	c.JSON(http.StatusAccepted, gin.H{"status": "refresh scheduled"})
}
