package service_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/rs/zerolog"

	"github.com/maxviazov/tournament-standings-service/internal/model"
	"github.com/maxviazov/tournament-standings-service/internal/repository"
	"github.com/maxviazov/tournament-standings-service/internal/service"
)

var discard = zerolog.New(io.Discard)

func i64(v int64) *int64 { return &v }

func str(v string) *string { return &v }

type fakeTournamentRepo struct{ items map[int64]model.Tournament }

func newFakeTournamentRepo(ids ...int64) *fakeTournamentRepo {
	f := &fakeTournamentRepo{items: map[int64]model.Tournament{}}
	for _, id := range ids {
		f.items[id] = model.Tournament{ID: id, Name: "Cup", Status: "running"}
	}
	return f
}

func (f *fakeTournamentRepo) GetByID(_ context.Context, id int64) (model.Tournament, error) {
	t, ok := f.items[id]
	if !ok {
		return model.Tournament{}, repository.ErrNotFound
	}
	return t, nil
}

func (f *fakeTournamentRepo) List(_ context.Context, p repository.Page) (repository.PageResult[model.Tournament], error) {
	var res repository.PageResult[model.Tournament]
	for _, t := range f.items {
		res.Items = append(res.Items, t)
	}
	res.Total = len(res.Items)
	if p.Limit < len(res.Items) {
		res.Items = res.Items[:p.Limit]
	}
	return res, nil
}

var _ repository.TournamentRepository = (*fakeTournamentRepo)(nil)

type fakeMatchRepo struct {
	nextID  int64
	matches map[int64]model.Match
	listErr error
	lists   int
}

func newFakeMatchRepo() *fakeMatchRepo {
	return &fakeMatchRepo{nextID: 1, matches: map[int64]model.Match{}}
}

func (f *fakeMatchRepo) add(m model.Match) model.Match {
	m.ID = f.nextID
	f.nextID++
	f.matches[m.ID] = m
	return m
}

func (f *fakeMatchRepo) Create(_ context.Context, m model.Match) (model.Match, error) {
	return f.add(m), nil
}

func (f *fakeMatchRepo) GetByID(_ context.Context, id int64) (model.Match, error) {
	m, ok := f.matches[id]
	if !ok {
		return model.Match{}, repository.ErrNotFound
	}
	return m, nil
}

// ListByTournament returns matches in id order, which deliberately differs from kickoff order.
func (f *fakeMatchRepo) ListByTournament(_ context.Context, tournamentID int64) ([]model.Match, error) {
	f.lists++
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]model.Match, 0)
	for _, m := range f.matches {
		if m.TournamentID == tournamentID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeMatchRepo) RecordResult(_ context.Context, id int64, r model.MatchResult) (model.Match, error) {
	m, ok := f.matches[id]
	if !ok {
		return model.Match{}, repository.ErrNotFound
	}
	m.Result = &r
	m.Status = model.StatusFinished
	f.matches[id] = m
	return m, nil
}

var _ repository.MatchRepository = (*fakeMatchRepo)(nil)

type fakeEntryRepo struct{ items map[int64]model.Entry }

func (f *fakeEntryRepo) GetByID(_ context.Context, id int64) (model.Entry, error) {
	e, ok := f.items[id]
	if !ok {
		return model.Entry{}, repository.ErrNotFound
	}
	return e, nil
}

var _ repository.EntryRepository = (*fakeEntryRepo)(nil)

type fakeTx struct{ calls int }

func (f *fakeTx) WithinTx(ctx context.Context, fn repository.TxFunc) error {
	f.calls++
	return fn(ctx)
}

var _ repository.TxManager = (*fakeTx)(nil)

type fakeCache struct {
	rows        map[string][]model.StandingRow
	gets, hits  int
	sets        int
	invalidated []int64
	err         error
}

func newFakeCache() *fakeCache { return &fakeCache{rows: map[string][]model.StandingRow{}} }

func cacheKey(tid int64, fp string) string { return fmt.Sprintf("%d:%s", tid, fp) }

func (f *fakeCache) Get(_ context.Context, tid int64, fp string) ([]model.StandingRow, bool, error) {
	f.gets++
	if f.err != nil {
		return nil, false, f.err
	}
	rows, ok := f.rows[cacheKey(tid, fp)]
	if ok {
		f.hits++
	}
	return rows, ok, nil
}

func (f *fakeCache) Set(_ context.Context, tid int64, fp string, rows []model.StandingRow) error {
	f.sets++
	if f.err != nil {
		return f.err
	}
	f.rows[cacheKey(tid, fp)] = rows
	return nil
}

func (f *fakeCache) Invalidate(_ context.Context, tid int64) error {
	f.invalidated = append(f.invalidated, tid)
	if f.err != nil {
		return f.err
	}
	f.rows = map[string][]model.StandingRow{}
	return nil
}

var _ service.StandingsCache = (*fakeCache)(nil)

type published struct {
	tournamentID int64
	rows         []model.StandingRow
}

type fakePublisher struct{ sent []published }

func (f *fakePublisher) PublishStandings(tid int64, rows []model.StandingRow) {
	f.sent = append(f.sent, published{tournamentID: tid, rows: rows})
}

var _ service.StandingsPublisher = (*fakePublisher)(nil)

var errBoom = errors.New("boom")

func hasField(err error, field string) bool {
	for _, fe := range service.FieldErrors(err) {
		if fe.Field == field {
			return true
		}
	}
	return false
}
