// Package service holds business logic orchestration across repositories and handlers.
// Kept intentionally lean: only use-case coordination, validation and domain error shaping.
// Standings math lives in the standings package; services only load matches and hand them over.
package service

import (
	"context"
	"errors"
	"time"

	"github.com/maxviazov/tournament-standings-service/internal/model"
	"github.com/maxviazov/tournament-standings-service/internal/repository"
)

// ErrInvalidInput is the marker error for aggregated validation failures (maps to HTTP 400).
// Field-level details are retrieved via FieldErrors(err).
var ErrInvalidInput = errors.New("invalid input")

// FieldError describes a single invalid field in a client request.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// invalidInputError aggregates multiple FieldError instances and unwraps to ErrInvalidInput.
type invalidInputError struct {
	fields []FieldError
}

func (e *invalidInputError) Error() string        { return ErrInvalidInput.Error() }
func (e *invalidInputError) Unwrap() error        { return ErrInvalidInput }
func (e *invalidInputError) Fields() []FieldError { return e.fields }

// newInvalidInput builds an aggregated validation error if any field errors are present.
func newInvalidInput(fe []FieldError) error {
	if len(fe) == 0 {
		return nil
	}
	return &invalidInputError{fields: fe}
}

// InvalidField reports a single invalid field, e.g. a malformed path or query parameter.
func InvalidField(field, message string) error {
	return newInvalidInput([]FieldError{{Field: field, Message: message}})
}

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	type feIface interface{ Fields() []FieldError }
	if v, ok := err.(feIface); ok && errors.Is(err, ErrInvalidInput) {
		return v.Fields()
	}
	return nil
}

// StandingsCache memoizes ranked tables keyed by tournament and match-list fingerprint.
type StandingsCache interface {
	Get(ctx context.Context, tournamentID int64, fingerprint string) ([]model.StandingRow, bool, error)
	Set(ctx context.Context, tournamentID int64, fingerprint string, rows []model.StandingRow) error
	Invalidate(ctx context.Context, tournamentID int64) error
}

// StandingsPublisher pushes a fresh table to whoever follows the tournament live.
type StandingsPublisher interface {
	PublishStandings(tournamentID int64, rows []model.StandingRow)
}

// TournamentService defines the read side of a tournament: its fixtures, table and detail view.
type TournamentService interface {
	GetTournament(ctx context.Context, id int64) (model.Tournament, error)
	ListTournaments(ctx context.Context, page repository.Page) (repository.PageResult[model.Tournament], error)
	// ListMatches returns the tournament's fixtures in chronological order.
	ListMatches(ctx context.Context, tournamentID int64) ([]model.Match, error)
	GetStandings(ctx context.Context, tournamentID int64) ([]model.StandingRow, error)
	// GetView builds the detail page model. entryID, when set, must be an entry of the tournament
	// and selects whose summary is shown.
	GetView(ctx context.Context, tournamentID int64, entryID *int64) (model.TournamentView, error)
}

// CreateMatchInput carries a new fixture. A side is either a linked team or a placeholder label.
type CreateMatchInput struct {
	TournamentID int64
	HomeTeamID   *int64
	AwayTeamID   *int64
	HomeLabel    *string
	AwayLabel    *string
	KickoffAt    *time.Time
	Field        *string
	Status       string
	Result       *model.MatchResult
}

// MatchService defines fixture write use cases.
type MatchService interface {
	CreateMatch(ctx context.Context, in CreateMatchInput) (model.Match, error)
	// RecordResult stores a final score, marks the match finished and refreshes live standings.
	RecordResult(ctx context.Context, matchID int64, homeScore, awayScore int) (model.Match, error)
}
