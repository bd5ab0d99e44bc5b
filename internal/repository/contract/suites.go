// Package contract holds storage-agnostic behaviour suites every repository implementation must pass.
package contract

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/maxviazov/tournament-standings-service/internal/model"
	"github.com/maxviazov/tournament-standings-service/internal/repository"
)

// Seeder inserts the rows the read-mostly repositories can't create themselves.
type Seeder interface {
	Tournament(ctx context.Context, name string) (int64, error)
	Team(ctx context.Context, name string) (int64, error)
	Entry(ctx context.Context, tournamentID, teamID int64) (int64, error)
}

type TournamentFactory func(t *testing.T) (repository.TournamentRepository, Seeder, func())

type MatchFactory func(t *testing.T) (repository.MatchRepository, Seeder, func())

type EntryFactory func(t *testing.T) (repository.EntryRepository, Seeder, func())

type TxFactory func(t *testing.T) (repository.TxManager, repository.MatchRepository, Seeder, func())

type PingerFactory func(t *testing.T) (repository.Pinger, func())

// must fails the test on a seeding error; call as must[int64](t)(seed.Team(ctx, "Reds")).
func must[T any](t *testing.T) func(T, error) T {
	return func(v T, err error) T {
		t.Helper()
		if err != nil {
			t.Fatalf("seed failed: %v", err)
		}
		return v
	}
}

func RunTournamentRepositoryContract(t *testing.T, makeRepo TournamentFactory) {
	t.Helper()

	t.Run("get_and_list", func(t *testing.T) {
		repo, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		id := must[int64](t)(seed.Tournament(ctx, "Spring Cup"))
		must[int64](t)(seed.Tournament(ctx, "Autumn Cup"))

		got, err := repo.GetByID(ctx, id)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if got.Name != "Spring Cup" {
			t.Fatalf("unexpected tournament: %+v", got)
		}

		page, err := repo.List(ctx, repository.Page{Limit: 1})
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(page.Items) != 1 || page.Total != 2 {
			t.Fatalf("expected 1 item of 2, got %d of %d", len(page.Items), page.Total)
		}
	})

	t.Run("get_not_found", func(t *testing.T) {
		repo, _, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		if _, err := repo.GetByID(context.Background(), 999999); !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func RunMatchRepositoryContract(t *testing.T, makeRepo MatchFactory) {
	t.Helper()

	t.Run("create_resolves_names", func(t *testing.T) {
		repo, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		tid := must[int64](t)(seed.Tournament(ctx, "Cup"))
		home := must[int64](t)(seed.Team(ctx, "Reds"))
		label := "A組1位"

		m, err := repo.Create(ctx, model.Match{TournamentID: tid, HomeTeamID: &home, AwayTeamName: &label, Status: model.StatusScheduled})
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if m.HomeTeamName == nil || *m.HomeTeamName != "Reds" {
			t.Fatalf("home name not resolved from team: %+v", m.HomeTeamName)
		}
		if m.AwayTeamID != nil || m.AwayTeamName == nil || *m.AwayTeamName != label {
			t.Fatalf("away placeholder not kept: %+v", m)
		}
		if m.Result != nil {
			t.Fatalf("new match must not have a result")
		}
	})

	t.Run("list_orders_by_kickoff_nulls_first", func(t *testing.T) {
		repo, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		tid := must[int64](t)(seed.Tournament(ctx, "Cup"))
		late := time.Date(2025, 6, 1, 15, 0, 0, 0, time.UTC)
		early := late.Add(-2 * time.Hour)
		name := "TBD"

		ids := make([]int64, 0, 3)
		for _, k := range []*time.Time{&late, nil, &early} {
			m, err := repo.Create(ctx, model.Match{TournamentID: tid, HomeTeamName: &name, AwayTeamName: &name, KickoffAt: k, Status: model.StatusScheduled})
			if err != nil {
				t.Fatalf("create failed: %v", err)
			}
			ids = append(ids, m.ID)
		}

		list, err := repo.ListByTournament(ctx, tid)
		if err != nil {
			t.Fatalf("list failed: %v", err)
		}
		if len(list) != 3 || list[0].ID != ids[1] || list[1].ID != ids[2] || list[2].ID != ids[0] {
			t.Fatalf("unexpected order: %+v", list)
		}
	})

	t.Run("record_result", func(t *testing.T) {
		repo, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		tid := must[int64](t)(seed.Tournament(ctx, "Cup"))
		h := must[int64](t)(seed.Team(ctx, "Reds"))
		a := must[int64](t)(seed.Team(ctx, "Blues"))
		m, err := repo.Create(ctx, model.Match{TournamentID: tid, HomeTeamID: &h, AwayTeamID: &a, Status: model.StatusScheduled})
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}

		got, err := repo.RecordResult(ctx, m.ID, model.MatchResult{HomeScore: 2, AwayScore: 1})
		if err != nil {
			t.Fatalf("record failed: %v", err)
		}
		if got.Status != model.StatusFinished || got.Result == nil || got.Result.HomeScore != 2 || got.Result.AwayScore != 1 {
			t.Fatalf("unexpected match after result: %+v", got)
		}
	})

	t.Run("record_result_not_found", func(t *testing.T) {
		repo, _, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		_, err := repo.RecordResult(context.Background(), 999999, model.MatchResult{})
		if !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("create_fk_violation_conflict", func(t *testing.T) {
		repo, _, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		_, err := repo.Create(context.Background(), model.Match{TournamentID: 999999, Status: model.StatusScheduled})
		if !errors.Is(err, repository.ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
	})
}

func RunEntryRepositoryContract(t *testing.T, makeRepo EntryFactory) {
	t.Helper()

	t.Run("get", func(t *testing.T) {
		repo, seed, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		tid := must[int64](t)(seed.Tournament(ctx, "Cup"))
		team := must[int64](t)(seed.Team(ctx, "Reds"))
		id := must[int64](t)(seed.Entry(ctx, tid, team))

		got, err := repo.GetByID(ctx, id)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if got.TournamentID != tid || got.TeamID != team {
			t.Fatalf("unexpected entry: %+v", got)
		}
	})

	t.Run("get_not_found", func(t *testing.T) {
		repo, _, cleanup := makeRepo(t)
		t.Cleanup(cleanup)
		if _, err := repo.GetByID(context.Background(), 999999); !errors.Is(err, repository.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}

func RunTxManagerContract(t *testing.T, makeTx TxFactory) {
	t.Helper()

	t.Run("rollback_on_error", func(t *testing.T) {
		tx, matches, seed, cleanup := makeTx(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		tid := must[int64](t)(seed.Tournament(ctx, "Cup"))
		name := "TBD"
		m, err := matches.Create(ctx, model.Match{TournamentID: tid, HomeTeamName: &name, AwayTeamName: &name, Status: model.StatusScheduled})
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}

		boom := errors.New("boom")
		err = tx.WithinTx(ctx, func(ctx context.Context) error {
			if _, err := matches.RecordResult(ctx, m.ID, model.MatchResult{HomeScore: 1}); err != nil {
				return err
			}
			return boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("expected fn error, got %v", err)
		}

		got, err := matches.GetByID(ctx, m.ID)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if got.Result != nil || got.Status != model.StatusScheduled {
			t.Fatalf("result must be rolled back: %+v", got)
		}
	})

	t.Run("commit_on_nil_error", func(t *testing.T) {
		tx, matches, seed, cleanup := makeTx(t)
		t.Cleanup(cleanup)
		ctx := context.Background()
		tid := must[int64](t)(seed.Tournament(ctx, "Cup"))
		name := "TBD"
		m, err := matches.Create(ctx, model.Match{TournamentID: tid, HomeTeamName: &name, AwayTeamName: &name, Status: model.StatusScheduled})
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}

		if err := tx.WithinTx(ctx, func(ctx context.Context) error {
			_, err := matches.RecordResult(ctx, m.ID, model.MatchResult{HomeScore: 0, AwayScore: 3})
			return err
		}); err != nil {
			t.Fatalf("tx failed: %v", err)
		}

		got, err := matches.GetByID(ctx, m.ID)
		if err != nil {
			t.Fatalf("get failed: %v", err)
		}
		if got.Result == nil || got.Result.AwayScore != 3 {
			t.Fatalf("result not committed: %+v", got)
		}
	})
}

func RunPingerContract(t *testing.T, makePinger PingerFactory) {
	t.Helper()
	t.Run("ping_ok", func(t *testing.T) {
		p, cleanup := makePinger(t)
		t.Cleanup(cleanup)
		if err := p.Ping(context.Background()); err != nil {
			t.Fatalf("ping failed: %v", err)
		}
	})
}
