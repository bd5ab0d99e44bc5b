package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/maxviazov/tournament-standings-service/internal/model"
	"github.com/maxviazov/tournament-standings-service/internal/repository"
)

// matchColumns resolves each side's display name from the linked team, falling back to the
// placeholder label (e.g. "A組1位") while the slot is undecided.
const matchColumns = `m.id, m.tournament_id, m.home_team_id, m.away_team_id,
	COALESCE(h.name, m.home_label), COALESCE(a.name, m.away_label),
	m.kickoff_at, m.field, m.status, m.home_score, m.away_score`

const matchFrom = `FROM matches m
	LEFT JOIN teams h ON h.id = m.home_team_id
	LEFT JOIN teams a ON a.id = m.away_team_id`

type matchRepository struct{ pool *pgxpool.Pool }

func NewMatchRepository(pool *pgxpool.Pool) repository.MatchRepository {
	return &matchRepository{pool: pool}
}

func scanMatch(row pgx.Row) (model.Match, error) {
	var (
		out                  model.Match
		status               string
		homeScore, awayScore *int
	)
	if err := row.Scan(&out.ID, &out.TournamentID, &out.HomeTeamID, &out.AwayTeamID,
		&out.HomeTeamName, &out.AwayTeamName, &out.KickoffAt, &out.Field, &status,
		&homeScore, &awayScore); err != nil {
		return model.Match{}, err
	}
	out.Status = model.MatchStatus(status)
	if homeScore != nil && awayScore != nil {
		out.Result = &model.MatchResult{HomeScore: *homeScore, AwayScore: *awayScore}
	}
	return out, nil
}

func (r *matchRepository) Create(ctx context.Context, m model.Match) (model.Match, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Match{}, err
	}
	var homeScore, awayScore *int
	if m.Result != nil {
		homeScore, awayScore = &m.Result.HomeScore, &m.Result.AwayScore
	}
	exec := getQ(ctx, r.pool)
	var id int64
	err := exec.QueryRow(ctx,
		`INSERT INTO matches (tournament_id, home_team_id, away_team_id, home_label, away_label,
		                      kickoff_at, field, status, home_score, away_score)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING id`,
		m.TournamentID, m.HomeTeamID, m.AwayTeamID, m.HomeTeamName, m.AwayTeamName,
		m.KickoffAt, m.Field, string(m.Status), homeScore, awayScore,
	).Scan(&id)
	if err != nil {
		return model.Match{}, repository.MapPgError(err)
	}
	return r.GetByID(ctx, id)
}

func (r *matchRepository) GetByID(ctx context.Context, id int64) (model.Match, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Match{}, err
	}
	row := getQ(ctx, r.pool).QueryRow(ctx, `SELECT `+matchColumns+` `+matchFrom+` WHERE m.id = $1`, id)
	out, err := scanMatch(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Match{}, repository.ErrNotFound
		}
		return model.Match{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *matchRepository) ListByTournament(ctx context.Context, tournamentID int64) ([]model.Match, error) {
	if err := ensurePool(r.pool); err != nil {
		return nil, err
	}
	rows, err := getQ(ctx, r.pool).Query(ctx,
		`SELECT `+matchColumns+` `+matchFrom+`
		 WHERE m.tournament_id = $1
		 ORDER BY m.kickoff_at ASC NULLS FIRST, m.id ASC`,
		tournamentID,
	)
	if err != nil {
		return nil, repository.MapPgError(err)
	}
	defer rows.Close()

	out := make([]model.Match, 0)
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, repository.MapPgError(err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.MapPgError(err)
	}
	return out, nil
}

func (r *matchRepository) RecordResult(ctx context.Context, matchID int64, res model.MatchResult) (model.Match, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Match{}, err
	}
	tag, err := getQ(ctx, r.pool).Exec(ctx,
		`UPDATE matches
		 SET home_score = $2, away_score = $3, status = $4, updated_at = now()
		 WHERE id = $1`,
		matchID, res.HomeScore, res.AwayScore, string(model.StatusFinished),
	)
	if err != nil {
		return model.Match{}, repository.MapPgError(err)
	}
	if tag.RowsAffected() == 0 {
		return model.Match{}, repository.ErrNotFound
	}
	return r.GetByID(ctx, matchID)
}

var _ repository.MatchRepository = (*matchRepository)(nil)
