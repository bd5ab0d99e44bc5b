package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/maxviazov/tournament-standings-service/internal/model"
	"github.com/maxviazov/tournament-standings-service/internal/service"
	"github.com/maxviazov/tournament-standings-service/pkg/response"
)

type MatchHandler struct {
	svc service.MatchService
}

func NewMatchHandler(svc service.MatchService) *MatchHandler { return &MatchHandler{svc: svc} }

func (h *MatchHandler) Register(r *gin.RouterGroup) {
	r.POST("/tournaments/:tournament_id/matches", h.create)
	r.PUT("/matches/:match_id/result", h.recordResult)
}

type createMatchRequest struct {
	HomeTeamID *int64     `json:"home_team_id"`
	AwayTeamID *int64     `json:"away_team_id"`
	HomeLabel  *string    `json:"home_label"`
	AwayLabel  *string    `json:"away_label"`
	KickoffAt  *time.Time `json:"kickoff_at"` // RFC3339
	Field      *string    `json:"field"`
	Status     string     `json:"status"`
	HomeScore  *int       `json:"home_score"`
	AwayScore  *int       `json:"away_score"`
}

type recordResultRequest struct {
	HomeScore *int `json:"home_score"`
	AwayScore *int `json:"away_score"`
}

func (h *MatchHandler) create(c *gin.Context) {
	tournamentID, ok := pathID(c, "tournament_id")
	if !ok {
		return
	}
	var req createMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}

	var result *model.MatchResult
	switch {
	case req.HomeScore != nil && req.AwayScore != nil:
		result = &model.MatchResult{HomeScore: *req.HomeScore, AwayScore: *req.AwayScore}
	case req.HomeScore != nil || req.AwayScore != nil:
		response.WriteInvalid(c, "result", "home_score and away_score must be given together")
		return
	}

	m, err := h.svc.CreateMatch(c.Request.Context(), service.CreateMatchInput{
		TournamentID: tournamentID,
		HomeTeamID:   req.HomeTeamID,
		AwayTeamID:   req.AwayTeamID,
		HomeLabel:    req.HomeLabel,
		AwayLabel:    req.AwayLabel,
		KickoffAt:    req.KickoffAt,
		Field:        req.Field,
		Status:       req.Status,
		Result:       result,
	})
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, m)
}

func (h *MatchHandler) recordResult(c *gin.Context) {
	matchID, ok := pathID(c, "match_id")
	if !ok {
		return
	}
	var req recordResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, service.ErrInvalidInput)
		return
	}
	if req.HomeScore == nil || req.AwayScore == nil {
		response.WriteInvalid(c, "result", "home_score and away_score are required")
		return
	}
	m, err := h.svc.RecordResult(c.Request.Context(), matchID, *req.HomeScore, *req.AwayScore)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, m)
}
