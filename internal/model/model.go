// Package model contains domain entities and DTOs used across layers.
// I keep it lean and focused on data shapes without behavior.
package model

import "time"

// MatchStatus is the lifecycle state reported by the backend for a fixture.
// Only StatusFinished counts as played when tracking fixture progress.
type MatchStatus string

const (
	StatusScheduled  MatchStatus = "scheduled"
	StatusInProgress MatchStatus = "in_progress"
	StatusFinished   MatchStatus = "finished"
)

// Tournament is the container all matches and entries belong to.
type Tournament struct {
	ID        int64      `json:"id"`
	Name      string     `json:"name"`
	Status    string     `json:"status"` // draft, open, running, closed
	StartsOn  *time.Time `json:"starts_on,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Entry is a team's registration in a tournament.
type Entry struct {
	ID           int64     `json:"id"`
	TournamentID int64     `json:"tournament_id"`
	TeamID       int64     `json:"team_id"`
	Status       string    `json:"status"` // pending, accepted, withdrawn
	CreatedAt    time.Time `json:"created_at"`
}

// MatchResult is the final score of a played match.
type MatchResult struct {
	HomeScore int `json:"home_score"`
	AwayScore int `json:"away_score"`
}

// Match is a single fixture between two (possibly undecided) teams.
// Every pointer field is optional on the wire; a nil Result means the match has not been played.
type Match struct {
	ID           int64        `json:"id"`
	TournamentID int64        `json:"tournament_id"`
	HomeTeamID   *int64       `json:"home_team_id"`
	AwayTeamID   *int64       `json:"away_team_id"`
	HomeTeamName *string      `json:"home_team_name"`
	AwayTeamName *string      `json:"away_team_name"`
	KickoffAt    *time.Time   `json:"kickoff_at"`
	Field        *string      `json:"field"`
	Status       MatchStatus  `json:"status"`
	Result       *MatchResult `json:"result"`
}

// TeamRef identifies a team by id when known, always carrying a display name.
type TeamRef struct {
	ID   *int64 `json:"id"`
	Name string `json:"name"`
}

// StandingRow is one team's aggregated line in the points table.
// It's derived on every request and never persisted.
type StandingRow struct {
	Key          string `json:"key"`
	Rank         int    `json:"rank"`
	TeamID       *int64 `json:"team_id"`
	TeamName     string `json:"team_name"`
	Played       int    `json:"played"`
	Wins         int    `json:"wins"`
	Draws        int    `json:"draws"`
	Losses       int    `json:"losses"`
	GoalsFor     int    `json:"goals_for"`
	GoalsAgainst int    `json:"goals_against"`
	Diff         int    `json:"diff"`
	Points       int    `json:"points"`
}

// Summary is the win/loss/draw record of a single team.
type Summary struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
	Draws  int `json:"draws"`
	Diff   int `json:"diff"`
}

// FixtureTier marks where a match sits relative to tournament progress.
type FixtureTier string

const (
	TierCompleted FixtureTier = "completed"
	TierNext      FixtureTier = "next"
	TierUpcoming  FixtureTier = "upcoming"
)

// FixtureProgress pairs a match with its progress tier.
type FixtureProgress struct {
	Match Match       `json:"match"`
	Tier  FixtureTier `json:"tier"`
}

// TournamentView is the presentation-ready model of the live tournament detail page.
type TournamentView struct {
	MyTeam           TeamRef           `json:"my_team"`
	Summary          Summary           `json:"summary"`
	Standings        []StandingRow     `json:"standings"`
	Fixtures         []FixtureProgress `json:"fixtures"`
	NextFixtureIndex int               `json:"next_fixture_index"`
	Completed        bool              `json:"completed"`
}
