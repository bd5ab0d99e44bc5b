package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/maxviazov/tournament-standings-service/internal/model"
	"github.com/maxviazov/tournament-standings-service/internal/repository"
)

type tournamentRepository struct{ pool *pgxpool.Pool }

func NewTournamentRepository(pool *pgxpool.Pool) repository.TournamentRepository {
	return &tournamentRepository{pool: pool}
}

func (r *tournamentRepository) GetByID(ctx context.Context, id int64) (model.Tournament, error) {
	if err := ensurePool(r.pool); err != nil {
		return model.Tournament{}, err
	}
	row := getQ(ctx, r.pool).QueryRow(ctx,
		`SELECT id, name, status, starts_on, created_at, updated_at
		 FROM tournaments WHERE id = $1`, id,
	)
	var out model.Tournament
	if err := row.Scan(&out.ID, &out.Name, &out.Status, &out.StartsOn, &out.CreatedAt, &out.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Tournament{}, repository.ErrNotFound
		}
		return model.Tournament{}, repository.MapPgError(err)
	}
	return out, nil
}

func (r *tournamentRepository) List(ctx context.Context, p repository.Page) (repository.PageResult[model.Tournament], error) {
	if err := ensurePool(r.pool); err != nil {
		return repository.PageResult[model.Tournament]{}, err
	}
	limit, offset := sanitizeLimitOffset(p.Limit, p.Offset)
	rows, err := getQ(ctx, r.pool).Query(ctx,
		`SELECT id, name, status, starts_on, created_at, updated_at, COUNT(*) OVER() AS total
		 FROM tournaments
		 ORDER BY starts_on DESC NULLS LAST, id DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return repository.PageResult[model.Tournament]{}, repository.MapPgError(err)
	}
	defer rows.Close()

	res := repository.PageResult[model.Tournament]{Items: make([]model.Tournament, 0, limit)}
	for rows.Next() {
		var it model.Tournament
		var total int
		if err := rows.Scan(&it.ID, &it.Name, &it.Status, &it.StartsOn, &it.CreatedAt, &it.UpdatedAt, &total); err != nil {
			return repository.PageResult[model.Tournament]{}, repository.MapPgError(err)
		}
		res.Items = append(res.Items, it)
		res.Total = total
	}
	if err := rows.Err(); err != nil {
		return repository.PageResult[model.Tournament]{}, repository.MapPgError(err)
	}
	return res, nil
}

var _ repository.TournamentRepository = (*tournamentRepository)(nil)
