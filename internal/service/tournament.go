package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/maxviazov/tournament-standings-service/internal/model"
	"github.com/maxviazov/tournament-standings-service/internal/repository"
	"github.com/maxviazov/tournament-standings-service/internal/standings"
)

type tournamentService struct {
	tournaments repository.TournamentRepository
	matches     repository.MatchRepository
	entries     repository.EntryRepository
	cache       StandingsCache
	log         zerolog.Logger
}

func NewTournamentService(
	tournaments repository.TournamentRepository,
	matches repository.MatchRepository,
	entries repository.EntryRepository,
	cache StandingsCache,
	logger zerolog.Logger,
) TournamentService {
	l := logger.With().Str("module", "service").Str("component", "tournament").Logger()
	return &tournamentService{tournaments: tournaments, matches: matches, entries: entries, cache: cache, log: l}
}

func (s *tournamentService) GetTournament(ctx context.Context, id int64) (model.Tournament, error) {
	if id <= 0 {
		return model.Tournament{}, newInvalidInput([]FieldError{{Field: "id", Message: "must be > 0"}})
	}
	return s.tournaments.GetByID(ctx, id)
}

func (s *tournamentService) ListTournaments(ctx context.Context, page repository.Page) (repository.PageResult[model.Tournament], error) {
	p := normalizePage(page)
	res, err := s.tournaments.List(ctx, p)
	if err != nil {
		s.log.Error().Err(err).Int("limit", p.Limit).Int("offset", p.Offset).Msg("list tournaments failed")
		return repository.PageResult[model.Tournament]{}, err
	}
	return res, nil
}

// loadMatches checks the tournament exists and returns its fixtures in chronological order.
func (s *tournamentService) loadMatches(ctx context.Context, tournamentID int64) ([]model.Match, error) {
	if tournamentID <= 0 {
		return nil, newInvalidInput([]FieldError{{Field: "tournament_id", Message: "must be > 0"}})
	}
	if _, err := s.tournaments.GetByID(ctx, tournamentID); err != nil {
		return nil, err
	}
	matches, err := s.matches.ListByTournament(ctx, tournamentID)
	if err != nil {
		s.log.Error().Err(err).Int64("tournament_id", tournamentID).Msg("list matches failed")
		return nil, err
	}
	// storage order is already chronological; re-sort so the contract doesn't depend on it
	return standings.SortByKickoff(matches), nil
}

func (s *tournamentService) ListMatches(ctx context.Context, tournamentID int64) ([]model.Match, error) {
	return s.loadMatches(ctx, tournamentID)
}

func (s *tournamentService) GetStandings(ctx context.Context, tournamentID int64) ([]model.StandingRow, error) {
	matches, err := s.loadMatches(ctx, tournamentID)
	if err != nil {
		return nil, err
	}
	return cachedStandings(ctx, s.cache, s.log, tournamentID, matches), nil
}

func (s *tournamentService) GetView(ctx context.Context, tournamentID int64, entryID *int64) (model.TournamentView, error) {
	var entryTeamID *int64
	if entryID != nil {
		entry, err := s.resolveEntry(ctx, tournamentID, *entryID)
		if err != nil {
			return model.TournamentView{}, err
		}
		entryTeamID = &entry.TeamID
	}

	matches, err := s.loadMatches(ctx, tournamentID)
	if err != nil {
		return model.TournamentView{}, err
	}
	view := standings.BuildView(matches, entryTeamID)
	s.log.Debug().
		Int64("tournament_id", tournamentID).
		Int("matches", len(matches)).
		Int("next_fixture", view.NextFixtureIndex).
		Str("my_team", view.MyTeam.Name).
		Msg("tournament view built")
	return view, nil
}

func (s *tournamentService) resolveEntry(ctx context.Context, tournamentID, entryID int64) (model.Entry, error) {
	if entryID <= 0 {
		return model.Entry{}, newInvalidInput([]FieldError{{Field: "entry_id", Message: "must be > 0"}})
	}
	entry, err := s.entries.GetByID(ctx, entryID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Entry{}, newInvalidInput([]FieldError{{Field: "entry_id", Message: "entry does not exist"}})
		}
		return model.Entry{}, err
	}
	if entry.TournamentID != tournamentID {
		return model.Entry{}, newInvalidInput([]FieldError{{Field: "entry_id", Message: "entry belongs to another tournament"}})
	}
	return entry, nil
}

// cachedStandings serves the table from cache when the match list is unchanged and fills it otherwise.
// Cache failures only cost a recomputation.
func cachedStandings(ctx context.Context, cache StandingsCache, log zerolog.Logger, tournamentID int64, matches []model.Match) []model.StandingRow {
	fp := standings.Fingerprint(matches)
	rows, ok, err := cache.Get(ctx, tournamentID, fp)
	if err != nil {
		log.Warn().Err(err).Int64("tournament_id", tournamentID).Msg("standings cache read failed")
	}
	if ok {
		return rows
	}
	rows = standings.BuildStandings(matches)
	if err := cache.Set(ctx, tournamentID, fp, rows); err != nil {
		log.Warn().Err(err).Int64("tournament_id", tournamentID).Msg("standings cache write failed")
	}
	return rows
}
