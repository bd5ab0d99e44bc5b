package standings_test

import (
	"time"

	"github.com/maxviazov/tournament-standings-service/internal/model"
)

func id(v int64) *int64 { return &v }

func str(v string) *string { return &v }

func at(hour int) *time.Time {
	t := time.Date(2025, 5, 3, hour, 0, 0, 0, time.UTC)
	return &t
}

func res(home, away int) *model.MatchResult {
	return &model.MatchResult{HomeScore: home, AwayScore: away}
}

// named builds a match between two name-only teams.
func named(home, away string, r *model.MatchResult) model.Match {
	st := model.StatusScheduled
	if r != nil {
		st = model.StatusFinished
	}
	return model.Match{HomeTeamName: str(home), AwayTeamName: str(away), Status: st, Result: r}
}

// withIDs builds a match between two teams that carry both ids and names.
func withIDs(homeID int64, home string, awayID int64, away string, r *model.MatchResult) model.Match {
	m := named(home, away, r)
	m.HomeTeamID, m.AwayTeamID = id(homeID), id(awayID)
	return m
}
