package standings

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/maxviazov/tournament-standings-service/internal/model"
)

const (
	pointsWin  = 3
	pointsDraw = 1
)

// BuildStandings returns one ranked row per distinct team appearing in matches, played or not.
//
// Rows are ordered by points, goal difference and goals scored (all descending), then by team
// name in Japanese collation. Ranks are positional: tied rows still get distinct ranks.
func BuildStandings(matches []model.Match) []model.StandingRow {
	rows := make([]*model.StandingRow, 0)
	byKey := make(map[string]*model.StandingRow)

	ensure := func(s side) *model.StandingRow {
		k := s.key()
		if r, ok := byKey[k]; ok {
			return r
		}
		r := &model.StandingRow{Key: k, TeamID: cloneID(s.id), TeamName: s.displayName()}
		byKey[k] = r
		rows = append(rows, r)
		return r
	}

	for _, m := range matches {
		home, away := ensure(homeOf(m)), ensure(awayOf(m))
		if m.Result == nil {
			continue
		}
		record(home, m.Result.HomeScore, m.Result.AwayScore)
		record(away, m.Result.AwayScore, m.Result.HomeScore)
	}

	for _, r := range rows {
		r.Diff = r.GoalsFor - r.GoalsAgainst
	}

	// collate.Collator is not safe for concurrent use; one per call.
	col := collate.New(language.Japanese)
	slices.SortStableFunc(rows, func(a, b *model.StandingRow) int {
		if c := cmp.Compare(b.Points, a.Points); c != 0 {
			return c
		}
		if c := cmp.Compare(b.Diff, a.Diff); c != 0 {
			return c
		}
		if c := cmp.Compare(b.GoalsFor, a.GoalsFor); c != 0 {
			return c
		}
		return col.CompareString(a.TeamName, b.TeamName)
	})

	out := make([]model.StandingRow, len(rows))
	for i, r := range rows {
		r.Rank = i + 1
		out[i] = *r
	}
	return out
}

func record(r *model.StandingRow, scored, conceded int) {
	r.Played++
	r.GoalsFor += scored
	r.GoalsAgainst += conceded
	switch {
	case scored > conceded:
		r.Wins++
		r.Points += pointsWin
	case scored < conceded:
		r.Losses++
	default:
		r.Draws++
		r.Points += pointsDraw
	}
}
