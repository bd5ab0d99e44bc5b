package handler_test

import (
	"context"
	"io"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/maxviazov/tournament-standings-service/internal/handler"
	"github.com/maxviazov/tournament-standings-service/internal/live"
	"github.com/maxviazov/tournament-standings-service/internal/model"
	"github.com/maxviazov/tournament-standings-service/internal/repository"
	"github.com/maxviazov/tournament-standings-service/internal/service"
)

// stubPinger implements handler.Pinger for health endpoints.
type stubPinger struct{ err error }

func (s stubPinger) Ping(context.Context) error { return s.err }

// stubTournamentService lets each test control method outcomes and inspect inputs.
type stubTournamentService struct {
	tournament model.Tournament
	page       repository.PageResult[model.Tournament]
	matches    []model.Match
	rows       []model.StandingRow
	view       model.TournamentView
	err        error

	gotPage    repository.Page
	gotEntryID *int64
}

func (s *stubTournamentService) GetTournament(context.Context, int64) (model.Tournament, error) {
	return s.tournament, s.err
}

func (s *stubTournamentService) ListTournaments(_ context.Context, p repository.Page) (repository.PageResult[model.Tournament], error) {
	s.gotPage = p
	return s.page, s.err
}

func (s *stubTournamentService) ListMatches(context.Context, int64) ([]model.Match, error) {
	return s.matches, s.err
}

func (s *stubTournamentService) GetStandings(context.Context, int64) ([]model.StandingRow, error) {
	return s.rows, s.err
}

func (s *stubTournamentService) GetView(_ context.Context, _ int64, entryID *int64) (model.TournamentView, error) {
	s.gotEntryID = entryID
	return s.view, s.err
}

var _ service.TournamentService = (*stubTournamentService)(nil)

type stubMatchService struct {
	match model.Match
	err   error

	gotInput         service.CreateMatchInput
	gotID            int64
	gotHome, gotAway int
}

func (s *stubMatchService) CreateMatch(_ context.Context, in service.CreateMatchInput) (model.Match, error) {
	s.gotInput = in
	return s.match, s.err
}

func (s *stubMatchService) RecordResult(_ context.Context, id int64, home, away int) (model.Match, error) {
	s.gotID, s.gotHome, s.gotAway = id, home, away
	return s.match, s.err
}

var _ service.MatchService = (*stubMatchService)(nil)

func newRouter(p handler.Pinger, ts service.TournamentService, ms service.MatchService, hub *live.Hub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handler.Register(r, p, ts, ms, hub, nil, zerolog.New(io.Discard))
	return r
}
