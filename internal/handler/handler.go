package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/maxviazov/tournament-standings-service/internal/live"
	"github.com/maxviazov/tournament-standings-service/internal/service"
)

// APIV1Prefix is the base path of the public HTTP API; tests and clients build URLs from it.
const APIV1Prefix = "/api/v1"

// Register mounts all public routes on the given engine.
// Accepts service layer dependencies for API endpoints; a nil hub leaves the websocket route out.
func Register(r *gin.Engine, repo Pinger, tournamentSvc service.TournamentService, matchSvc service.MatchService, hub *live.Hub, allowedOrigins []string, logger zerolog.Logger) {
	h := NewHealthHandler(repo)

	// Health probes
	r.GET("/live", h.Liveness)
	r.GET("/ready", h.Readiness)

	// Docs endpoints (root-level)
	RegisterDocs(r)

	if hub != nil {
		NewLiveHandler(hub, tournamentSvc, allowedOrigins, logger).Register(r)
	}

	api := r.Group(APIV1Prefix) // Versioning added via single source of truth
	{
		health := api.Group("/health")
		{
			health.GET("/live", h.Liveness)
			health.GET("/ready", h.Readiness)
		}
		NewTournamentHandler(tournamentSvc).Register(api)
		NewMatchHandler(matchSvc).Register(api)
	}
}
