package standings

import "github.com/maxviazov/tournament-standings-service/internal/model"

// ComputeSummary tallies wins, losses, draws and goal difference for team over played matches.
// Matches without a result or without team on either side are skipped.
func ComputeSummary(matches []model.Match, team model.TeamRef) model.Summary {
	var sum model.Summary
	for _, m := range matches {
		if m.Result == nil {
			continue
		}
		var mine, theirs int
		switch {
		case homeOf(m).is(team):
			mine, theirs = m.Result.HomeScore, m.Result.AwayScore
		case awayOf(m).is(team):
			mine, theirs = m.Result.AwayScore, m.Result.HomeScore
		default:
			continue
		}
		sum.Diff += mine - theirs
		switch {
		case mine > theirs:
			sum.Wins++
		case mine < theirs:
			sum.Losses++
		default:
			sum.Draws++
		}
	}
	return sum
}
