package standings

import "github.com/maxviazov/tournament-standings-service/internal/model"

// ResolveMyTeam decides which team the viewer should be treated as.
//
// An entryTeamID that shows up as a participant always wins. Otherwise the team id seen
// most often is picked, falling back to the most frequent name when no match carries ids,
// and finally to DefaultMyTeamName. Ties go to the team encountered first.
func ResolveMyTeam(matches []model.Match, entryTeamID *int64) model.TeamRef {
	if entryTeamID != nil {
		if name, ok := observedName(matches, *entryTeamID); ok {
			return model.TeamRef{ID: cloneID(entryTeamID), Name: name}
		}
	}
	if ref, ok := mostFrequentByID(matches); ok {
		return ref
	}
	if ref, ok := mostFrequentByName(matches); ok {
		return ref
	}
	return model.TeamRef{Name: DefaultMyTeamName}
}

// observedName returns the first non-empty name seen next to id.
func observedName(matches []model.Match, id int64) (string, bool) {
	found := false
	for _, m := range matches {
		for _, s := range [2]side{homeOf(m), awayOf(m)} {
			if s.id == nil || *s.id != id {
				continue
			}
			if hasName(s) {
				return *s.name, true
			}
			found = true
		}
	}
	if found {
		return UndecidedTeamName, true
	}
	return "", false
}

func mostFrequentByID(matches []model.Match) (model.TeamRef, bool) {
	counts := make(map[int64]int)
	var order []int64
	for _, m := range matches {
		for _, s := range [2]side{homeOf(m), awayOf(m)} {
			if s.id == nil {
				continue
			}
			if _, seen := counts[*s.id]; !seen {
				order = append(order, *s.id)
			}
			counts[*s.id]++
		}
	}
	if len(order) == 0 {
		return model.TeamRef{}, false
	}
	best := order[0]
	for _, id := range order[1:] {
		if counts[id] > counts[best] {
			best = id
		}
	}
	name, _ := observedName(matches, best)
	return model.TeamRef{ID: &best, Name: name}, true
}

func mostFrequentByName(matches []model.Match) (model.TeamRef, bool) {
	counts := make(map[string]int)
	var order []string
	for _, m := range matches {
		for _, s := range [2]side{homeOf(m), awayOf(m)} {
			if !hasName(s) {
				continue
			}
			if _, seen := counts[*s.name]; !seen {
				order = append(order, *s.name)
			}
			counts[*s.name]++
		}
	}
	if len(order) == 0 {
		return model.TeamRef{}, false
	}
	best := order[0]
	for _, name := range order[1:] {
		if counts[name] > counts[best] {
			best = name
		}
	}
	return model.TeamRef{Name: best}, true
}
