package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/tournament-standings-service/internal/repository"
	"github.com/maxviazov/tournament-standings-service/internal/service"
	"github.com/maxviazov/tournament-standings-service/pkg/response"
)

type TournamentHandler struct {
	svc service.TournamentService
}

func NewTournamentHandler(svc service.TournamentService) *TournamentHandler {
	return &TournamentHandler{svc: svc}
}

func (h *TournamentHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/tournaments")
	{
		g.GET("", h.list)
		g.GET("/:tournament_id", h.getByID)
		g.GET("/:tournament_id/matches", h.listMatches)
		g.GET("/:tournament_id/standings", h.standings)
		g.GET("/:tournament_id/view", h.view)
	}
}

func (h *TournamentHandler) list(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))
	res, err := h.svc.ListTournaments(c.Request.Context(), repository.Page{Limit: limit, Offset: offset})
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, res)
}

func (h *TournamentHandler) getByID(c *gin.Context) {
	id, ok := pathID(c, "tournament_id")
	if !ok {
		return
	}
	t, err := h.svc.GetTournament(c.Request.Context(), id)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, t)
}

func (h *TournamentHandler) listMatches(c *gin.Context) {
	id, ok := pathID(c, "tournament_id")
	if !ok {
		return
	}
	matches, err := h.svc.ListMatches(c.Request.Context(), id)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, gin.H{"items": matches})
}

func (h *TournamentHandler) standings(c *gin.Context) {
	id, ok := pathID(c, "tournament_id")
	if !ok {
		return
	}
	rows, err := h.svc.GetStandings(c.Request.Context(), id)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, gin.H{"tournament_id": id, "standings": rows})
}

func (h *TournamentHandler) view(c *gin.Context) {
	id, ok := pathID(c, "tournament_id")
	if !ok {
		return
	}
	entryID, ok := optionalQueryID(c, "entry_id")
	if !ok {
		return
	}
	v, err := h.svc.GetView(c.Request.Context(), id, entryID)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, v)
}
