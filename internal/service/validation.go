package service

import (
	"strings"

	"github.com/maxviazov/tournament-standings-service/internal/model"
	"github.com/maxviazov/tournament-standings-service/internal/repository"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 200
)

func normalizePage(p repository.Page) repository.Page {
	limit := p.Limit
	offset := p.Offset
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	if offset < 0 {
		offset = 0
	}
	return repository.Page{Limit: limit, Offset: offset}
}

func normalizeStatus(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// IsValidMatchStatus reports whether s names a known match lifecycle state.
func IsValidMatchStatus(s string) bool {
	switch model.MatchStatus(normalizeStatus(s)) {
	case model.StatusScheduled, model.StatusInProgress, model.StatusFinished:
		return true
	default:
		return false
	}
}

// trimLabel returns nil for absent or blank labels.
func trimLabel(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func validateSide(field string, teamID *int64, label *string) []FieldError {
	var ferrs []FieldError
	if teamID != nil && *teamID <= 0 {
		ferrs = append(ferrs, FieldError{Field: field + "_team_id", Message: "must be > 0"})
	}
	if teamID == nil && label == nil {
		ferrs = append(ferrs, FieldError{Field: field, Message: "team id or label is required"})
	}
	return ferrs
}

func validateScores(homeScore, awayScore int) []FieldError {
	var ferrs []FieldError
	if homeScore < 0 {
		ferrs = append(ferrs, FieldError{Field: "home_score", Message: "must be >= 0"})
	}
	if awayScore < 0 {
		ferrs = append(ferrs, FieldError{Field: "away_score", Message: "must be >= 0"})
	}
	return ferrs
}
