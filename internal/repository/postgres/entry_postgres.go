package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/maxviazov/tournament-standings-service/internal/model"
	"github.com/maxviazov/tournament-standings-service/internal/repository"
)

type entryRepository struct{ pool *pgxpool.Pool }

func NewEntryRepository(pool *pgxpool.Pool) repository.EntryRepository {
	return &entryRepository{pool: pool}
}

func (r *entryRepository) GetByID(ctx context.Context, id int64) (model.Entry, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Entry{}, err
	}
	row := getQ(ctx, r.pool).QueryRow(ctx,
		`SELECT id, tournament_id, team_id, status, created_at FROM entries WHERE id = $1`, id,
	)
	var out model.Entry
	if err := row.Scan(&out.ID, &out.TournamentID, &out.TeamID, &out.Status, &out.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Entry{}, repository.ErrNotFound
		}
		return model.Entry{}, repository.MapPgError(err)
	}
	return out, nil
}

var _ repository.EntryRepository = (*entryRepository)(nil)
