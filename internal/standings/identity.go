// Package standings derives the points table, a team's record and fixture progress
// from a raw list of matches. Everything here is a pure function of its arguments:
// no I/O, no shared state, safe to call from any number of goroutines.
package standings

import (
	"strconv"

	"github.com/maxviazov/tournament-standings-service/internal/model"
)

const (
	// UndecidedTeamName is shown for a match side whose team is not known yet.
	UndecidedTeamName = "未定"
	// DefaultMyTeamName is returned when no team can be resolved at all.
	DefaultMyTeamName = "My Team"

	noIDKey   = "none"
	noNameKey = "unknown"
)

// side is one participant slot of a match.
type side struct {
	id   *int64
	name *string
}

func homeOf(m model.Match) side { return side{id: m.HomeTeamID, name: m.HomeTeamName} }
func awayOf(m model.Match) side { return side{id: m.AwayTeamID, name: m.AwayTeamName} }

func hasName(s side) bool { return s.name != nil && *s.name != "" }

func (s side) displayName() string {
	if hasName(s) {
		return *s.name
	}
	return UndecidedTeamName
}

// key is the de-duplication key of a standings row: "<id|none>:<name|unknown>".
func (s side) key() string {
	id := noIDKey
	if s.id != nil {
		id = strconv.FormatInt(*s.id, 10)
	}
	name := noNameKey
	if hasName(s) {
		name = *s.name
	}
	return id + ":" + name
}

// is reports whether the side belongs to team, by id when the team has one, else by name.
func (s side) is(team model.TeamRef) bool {
	if team.ID != nil {
		return s.id != nil && *s.id == *team.ID
	}
	return hasName(s) && *s.name == team.Name
}

func cloneID(id *int64) *int64 {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}
