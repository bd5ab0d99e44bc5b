package handler

import (
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/maxviazov/tournament-standings-service/internal/live"
	"github.com/maxviazov/tournament-standings-service/internal/service"
	"github.com/maxviazov/tournament-standings-service/pkg/response"
)

// LiveHandler upgrades subscribers of a tournament to a websocket and joins them to its room.
type LiveHandler struct {
	hub         *live.Hub
	tournaments service.TournamentService
	upgrader    websocket.Upgrader
	log         zerolog.Logger
}

// NewLiveHandler accepts connections from allowedOrigins only; an empty list admits same-host
// origins, and "*" admits any.
func NewLiveHandler(hub *live.Hub, tournaments service.TournamentService, allowedOrigins []string, logger zerolog.Logger) *LiveHandler {
	h := &LiveHandler{
		hub:         hub,
		tournaments: tournaments,
		log:         logger.With().Str("module", "handler").Str("component", "live").Logger(),
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     originChecker(allowedOrigins),
	}
	return h
}

func (h *LiveHandler) Register(r gin.IRoutes) {
	r.GET("/ws/tournaments/:tournament_id", h.serve)
}

func originChecker(allowed []string) func(r *http.Request) bool {
	if slices.Contains(allowed, "*") {
		return func(*http.Request) bool { return true }
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		if len(allowed) == 0 {
			u, err := url.Parse(origin)
			return err == nil && strings.EqualFold(u.Host, r.Host)
		}
		return slices.ContainsFunc(allowed, func(o string) bool { return strings.EqualFold(o, origin) })
	}
}

func (h *LiveHandler) serve(c *gin.Context) {
	id, ok := pathID(c, "tournament_id")
	if !ok {
		return
	}
	// reject unknown tournaments before upgrading so the client gets a normal HTTP error
	if _, err := h.tournaments.GetTournament(c.Request.Context(), id); err != nil {
		response.WriteError(c, err)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error.
		h.log.Debug().Err(err).Int64("tournament_id", id).Msg("websocket upgrade failed")
		return
	}
	client := h.hub.NewClient(conn, live.RoomForTournament(id))
	client.Serve()
	h.log.Debug().Int64("tournament_id", id).Str("client_id", client.ID).Msg("live subscriber connected")
}
