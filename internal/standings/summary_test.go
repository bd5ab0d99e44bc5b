package standings_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maxviazov/tournament-standings-service/internal/model"
	"github.com/maxviazov/tournament-standings-service/internal/standings"
)

func TestComputeSummary(t *testing.T) {
	byID := model.TeamRef{ID: id(1), Name: "Reds"}
	byName := model.TeamRef{Name: "Reds"}

	cases := []struct {
		name    string
		matches []model.Match
		team    model.TeamRef
		want    model.Summary
	}{
		{"empty", nil, byID, model.Summary{}},
		{
			name: "by id on both sides",
			matches: []model.Match{
				withIDs(1, "Reds", 2, "Blues", res(3, 1)),
				withIDs(3, "Greens", 1, "Reds", res(2, 0)),
				withIDs(1, "Reds", 4, "Whites", res(1, 1)),
				withIDs(5, "Pinks", 1, "Reds", nil),
				withIDs(2, "Blues", 3, "Greens", res(9, 0)),
			},
			team: byID,
			want: model.Summary{Wins: 1, Losses: 1, Draws: 1, Diff: 0},
		},
		{
			name: "id match ignores names",
			matches: []model.Match{
				withIDs(1, "Renamed", 2, "Blues", res(2, 0)),
				named("Reds", "Blues", res(0, 5)),
			},
			team: byID,
			want: model.Summary{Wins: 1, Diff: 2},
		},
		{
			name: "by name without id",
			matches: []model.Match{
				named("Reds", "Blues", res(0, 2)),
				named("Greens", "Reds", res(1, 4)),
				named("Greens", "Blues", res(1, 0)),
			},
			team: byName,
			want: model.Summary{Wins: 1, Losses: 1, Diff: 1},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, standings.ComputeSummary(tc.matches, tc.team))
		})
	}
}
