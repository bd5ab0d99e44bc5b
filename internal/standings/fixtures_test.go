package standings_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maxviazov/tournament-standings-service/internal/model"
	"github.com/maxviazov/tournament-standings-service/internal/standings"
)

func statuses(ss ...model.MatchStatus) []model.Match {
	out := make([]model.Match, len(ss))
	for i, s := range ss {
		out[i] = model.Match{ID: int64(i + 1), Status: s}
	}
	return out
}

func TestFindNextFixtureIndex(t *testing.T) {
	fin, sch, live := model.StatusFinished, model.StatusScheduled, model.StatusInProgress
	cases := []struct {
		name    string
		matches []model.Match
		want    int
	}{
		{"empty", nil, -1},
		{"all finished", statuses(fin, fin, fin), -1},
		{"single unfinished at k", statuses(fin, fin, sch, fin), 2},
		{"first unfinished wins", statuses(fin, live, sch), 1},
		{"unknown status counts as unplayed", statuses(fin, model.MatchStatus("postponed")), 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, standings.FindNextFixtureIndex(tc.matches))
		})
	}
}

func TestSortByKickoff(t *testing.T) {
	matches := []model.Match{
		{ID: 1, KickoffAt: at(12)},
		{ID: 2},
		{ID: 3, KickoffAt: at(9)},
		{ID: 4, KickoffAt: at(12)},
		{ID: 5},
	}
	sorted := standings.SortByKickoff(matches)

	ids := make([]int64, len(sorted))
	for i, m := range sorted {
		ids[i] = m.ID
	}
	assert.Equal(t, []int64{2, 5, 3, 1, 4}, ids)
	assert.Equal(t, int64(1), matches[0].ID, "input must stay untouched")
}

func TestClassifyFixtures(t *testing.T) {
	fin, sch := model.StatusFinished, model.StatusScheduled
	got := standings.ClassifyFixtures(statuses(fin, sch, sch))
	require.Len(t, got, 3)
	assert.Equal(t, model.TierCompleted, got[0].Tier)
	assert.Equal(t, model.TierNext, got[1].Tier)
	assert.Equal(t, model.TierUpcoming, got[2].Tier)

	// A result entered out of order is still completed.
	got = standings.ClassifyFixtures(statuses(sch, fin))
	assert.Equal(t, model.TierNext, got[0].Tier)
	assert.Equal(t, model.TierCompleted, got[1].Tier)
}
