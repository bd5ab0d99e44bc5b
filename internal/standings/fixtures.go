package standings

import (
	"slices"
	"time"

	"github.com/maxviazov/tournament-standings-service/internal/model"
)

var epoch = time.Unix(0, 0).UTC()

func kickoffOf(m model.Match) time.Time {
	if m.KickoffAt == nil {
		return epoch
	}
	return *m.KickoffAt
}

// SortByKickoff returns a chronologically ordered copy of matches.
// Matches without a kickoff time sort as the Unix epoch; equal times keep input order.
func SortByKickoff(matches []model.Match) []model.Match {
	out := make([]model.Match, len(matches))
	copy(out, matches)
	slices.SortStableFunc(out, func(a, b model.Match) int {
		return kickoffOf(a).Compare(kickoffOf(b))
	})
	return out
}

// FindNextFixtureIndex returns the index of the first match in sorted that isn't finished,
// or -1 once every match has been played.
func FindNextFixtureIndex(sorted []model.Match) int {
	for i, m := range sorted {
		if m.Status != model.StatusFinished {
			return i
		}
	}
	return -1
}

// ClassifyFixtures tags each match of a chronologically sorted list as completed, next or upcoming.
func ClassifyFixtures(sorted []model.Match) []model.FixtureProgress {
	next := FindNextFixtureIndex(sorted)
	out := make([]model.FixtureProgress, len(sorted))
	for i, m := range sorted {
		tier := model.TierUpcoming
		switch {
		case m.Status == model.StatusFinished:
			tier = model.TierCompleted
		case i == next:
			tier = model.TierNext
		}
		out[i] = model.FixtureProgress{Match: m, Tier: tier}
	}
	return out
}
