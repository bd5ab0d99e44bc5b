package standings

import (
	"encoding/json"
	"strconv"

	"github.com/cespare/xxhash/v2"

	"github.com/maxviazov/tournament-standings-service/internal/model"
)

// BuildView assembles everything the tournament detail page renders from one match list.
func BuildView(matches []model.Match, entryTeamID *int64) model.TournamentView {
	sorted := SortByKickoff(matches)
	me := ResolveMyTeam(matches, entryTeamID)
	next := FindNextFixtureIndex(sorted)
	return model.TournamentView{
		MyTeam:           me,
		Summary:          ComputeSummary(matches, me),
		Standings:        BuildStandings(matches),
		Fixtures:         ClassifyFixtures(sorted),
		NextFixtureIndex: next,
		Completed:        next == -1 && len(sorted) > 0,
	}
}

// Fingerprint hashes the content of a match list. Two lists with the same matches in the
// same order share a fingerprint, so it can key memoized standings.
func Fingerprint(matches []model.Match) string {
	h := xxhash.New()
	enc := json.NewEncoder(h)
	for _, m := range matches {
		// Encoding a plain struct into a hash can't fail.
		_ = enc.Encode(m)
	}
	return strconv.FormatUint(h.Sum64(), 16)
}
