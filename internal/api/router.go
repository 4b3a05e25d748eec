package api

import (
	"github.com/gin-gonic/gin"

	"github.com/mstratford/fpl-advisor/internal/api/handlers"
	"github.com/mstratford/fpl-advisor/internal/services"
	"github.com/mstratford/fpl-advisor/pkg/config"
	"github.com/mstratford/fpl-advisor/pkg/database"
)

// SetupRoutes configures all API routes on the given router group
func SetupRoutes(
	group *gin.RouterGroup,
	db *database.DB,
	advisor *services.AdvisorService,
	refresher *services.RefresherService,
	snapshots *services.SnapshotService,
	cfg *config.Config,
) {
	// Initialize handlers
	playerHandler := handlers.NewPlayerHandler(advisor)
	teamHandler := handlers.NewTeamHandler(advisor, cfg)
	healthHandler := handlers.NewHealthHandler(db, refresher, snapshots)

	// Player endpoints
	group.GET("/players", playerHandler.GetPlayers)
	group.GET("/players/:id", playerHandler.GetPlayer)
	group.GET("/players/:id/projections", playerHandler.GetPlayerProjections)
	group.GET("/projections", playerHandler.GetTopProjections)

	// Manager endpoints
	group.GET("/team", teamHandler.GetTeam)
	group.GET("/transfers", teamHandler.GetTransfers)
	group.GET("/captain", teamHandler.GetCaptain)

	// Operational endpoints
	group.GET("/health", healthHandler.GetHealth)
	group.GET("/snapshots", healthHandler.GetSnapshots)
	group.POST("/refresh", healthHandler.RefreshData)
}
