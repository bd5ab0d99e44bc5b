package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/maxviazov/tournament-standings-service/internal/model"
	"github.com/maxviazov/tournament-standings-service/internal/repository"
	"github.com/maxviazov/tournament-standings-service/internal/standings"
)

type matchService struct {
	tournaments repository.TournamentRepository
	matches     repository.MatchRepository
	tx          repository.TxManager
	cache       StandingsCache
	publisher   StandingsPublisher
	log         zerolog.Logger
}

func NewMatchService(
	tournaments repository.TournamentRepository,
	matches repository.MatchRepository,
	tx repository.TxManager,
	cache StandingsCache,
	publisher StandingsPublisher,
	logger zerolog.Logger,
) MatchService {
	l := logger.With().Str("module", "service").Str("component", "match").Logger()
	if publisher == nil {
		publisher = noPublisher{}
	}
	return &matchService{tournaments: tournaments, matches: matches, tx: tx, cache: cache, publisher: publisher, log: l}
}

func (s *matchService) CreateMatch(ctx context.Context, in CreateMatchInput) (model.Match, error) {
	status := normalizeStatus(in.Status)
	if status == "" {
		status = string(model.StatusScheduled)
	}
	homeLabel, awayLabel := trimLabel(in.HomeLabel), trimLabel(in.AwayLabel)

	var ferrs []FieldError
	if in.TournamentID <= 0 {
		ferrs = append(ferrs, FieldError{Field: "tournament_id", Message: "must be > 0"})
	}
	ferrs = append(ferrs, validateSide("home", in.HomeTeamID, homeLabel)...)
	ferrs = append(ferrs, validateSide("away", in.AwayTeamID, awayLabel)...)
	if in.HomeTeamID != nil && in.AwayTeamID != nil && *in.HomeTeamID == *in.AwayTeamID {
		ferrs = append(ferrs, FieldError{Field: "teams", Message: "home and away must differ"})
	}
	if !IsValidMatchStatus(status) {
		ferrs = append(ferrs, FieldError{Field: "status", Message: "must be one of scheduled|in_progress|finished"})
	}
	if in.Result != nil {
		ferrs = append(ferrs, validateScores(in.Result.HomeScore, in.Result.AwayScore)...)
		if model.MatchStatus(status) == model.StatusScheduled {
			ferrs = append(ferrs, FieldError{Field: "result", Message: "scheduled match cannot have a result"})
		}
	}

	// Invalid structure: return before touching the database.
	if err := newInvalidInput(ferrs); err != nil {
		s.log.Debug().Interface("field_errors", ferrs).Msg("match validation failed (structure)")
		return model.Match{}, err
	}

	if _, err := s.tournaments.GetByID(ctx, in.TournamentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Match{}, newInvalidInput([]FieldError{{Field: "tournament_id", Message: "tournament does not exist"}})
		}
		return model.Match{}, err
	}

	var out model.Match
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		created, err := s.matches.Create(ctx, model.Match{
			TournamentID: in.TournamentID,
			HomeTeamID:   in.HomeTeamID,
			AwayTeamID:   in.AwayTeamID,
			HomeTeamName: homeLabel,
			AwayTeamName: awayLabel,
			KickoffAt:    in.KickoffAt,
			Field:        trimLabel(in.Field),
			Status:       model.MatchStatus(status),
			Result:       in.Result,
		})
		if err != nil {
			return err
		}
		out = created
		return nil
	})
	if err != nil {
		s.log.Error().Err(err).Int64("tournament_id", in.TournamentID).Msg("create match failed")
		return model.Match{}, err
	}

	if out.Result != nil {
		s.refresh(ctx, out.TournamentID)
	}
	return out, nil
}

func (s *matchService) RecordResult(ctx context.Context, matchID int64, homeScore, awayScore int) (model.Match, error) {
	var ferrs []FieldError
	if matchID <= 0 {
		ferrs = append(ferrs, FieldError{Field: "match_id", Message: "must be > 0"})
	}
	ferrs = append(ferrs, validateScores(homeScore, awayScore)...)
	if err := newInvalidInput(ferrs); err != nil {
		s.log.Debug().Interface("field_errors", ferrs).Msg("result validation failed")
		return model.Match{}, err
	}

	var out model.Match
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		updated, err := s.matches.RecordResult(ctx, matchID, model.MatchResult{HomeScore: homeScore, AwayScore: awayScore})
		if err != nil {
			return err
		}
		out = updated
		return nil
	})
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.log.Error().Err(err).Int64("match_id", matchID).Msg("record result failed")
		}
		return model.Match{}, err
	}

	s.log.Info().
		Int64("match_id", matchID).
		Int64("tournament_id", out.TournamentID).
		Int("home_score", homeScore).
		Int("away_score", awayScore).
		Msg("result recorded")
	s.refresh(ctx, out.TournamentID)
	return out, nil
}

// refresh drops stale cached tables and pushes the recomputed one to live subscribers.
// The write already committed, so failures here are logged and not returned.
func (s *matchService) refresh(ctx context.Context, tournamentID int64) {
	if err := s.cache.Invalidate(ctx, tournamentID); err != nil {
		s.log.Warn().Err(err).Int64("tournament_id", tournamentID).Msg("standings cache invalidation failed")
	}
	matches, err := s.matches.ListByTournament(ctx, tournamentID)
	if err != nil {
		s.log.Warn().Err(err).Int64("tournament_id", tournamentID).Msg("reload matches for live standings failed")
		return
	}
	rows := cachedStandings(ctx, s.cache, s.log, tournamentID, standings.SortByKickoff(matches))
	s.publisher.PublishStandings(tournamentID, rows)
}

// noPublisher is used when live updates are disabled.
type noPublisher struct{}

func (noPublisher) PublishStandings(int64, []model.StandingRow) {}
