package repository

import (
	"context"

	"github.com/maxviazov/tournament-standings-service/internal/model"
)

// Pinger represents a minimal readiness probe capability.
// I use it to decouple health checks from storage implementation details.
type Pinger interface {
	Ping(ctx context.Context) error
}

// TxFunc is the unit of work executed within a transaction boundary.
type TxFunc func(ctx context.Context) error

// TxManager abstracts transactional execution for repositories that support it.
type TxManager interface {
	WithinTx(ctx context.Context, fn TxFunc) error
}

// TournamentRepository declares read access to tournaments.
type TournamentRepository interface {
	GetByID(ctx context.Context, id int64) (model.Tournament, error)
	List(ctx context.Context, p Page) (PageResult[model.Tournament], error)
}

// MatchRepository declares persistence operations for fixtures.
// Team names come back already resolved: the team's name when linked, otherwise the placeholder label.
type MatchRepository interface {
	Create(ctx context.Context, m model.Match) (model.Match, error)
	GetByID(ctx context.Context, id int64) (model.Match, error)
	// ListByTournament returns matches ordered by kickoff (missing kickoff first), then id.
	ListByTournament(ctx context.Context, tournamentID int64) ([]model.Match, error)
	// RecordResult stores the final score and marks the match finished.
	RecordResult(ctx context.Context, matchID int64, r model.MatchResult) (model.Match, error)
}

// EntryRepository declares read access to tournament entries.
type EntryRepository interface {
	GetByID(ctx context.Context, id int64) (model.Entry, error)
}
