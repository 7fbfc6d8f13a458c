package sleeper

import "time"

// League represents a Sleeper fantasy league
type League struct {
	LeagueID     string         `json:"league_id"`
	Name         string         `json:"name"`
	Status       string         `json:"status"`
	Sport        string         `json:"sport"`
	Season       string         `json:"season"`
	Settings     LeagueSettings `json:"settings"`
	TotalRosters int            `json:"total_rosters"`
	Avatar       string         `json:"avatar"`
}

// LeagueSettings contains the league configuration relevant to the stats
// engine: schedule bounds and playoff shape.
type LeagueSettings struct {
	PlayoffTeams         int `json:"playoff_teams"`
	PlayoffWeeksPerMatch int `json:"playoff_weeks_per_matchup"`
	PlayoffWeekStart     int `json:"playoff_week_start"`
	NumTeams             int `json:"num_teams"`
	StartWeek            int `json:"start_week"`
	LastScoredLeg        int `json:"last_scored_leg"`
	Leg                  int `json:"leg"`
}

// User represents a Sleeper user
type User struct {
	UserID      string       `json:"user_id"`
	Username    string       `json:"username"`
	DisplayName string       `json:"display_name"`
	Avatar      string       `json:"avatar"`
	Metadata    UserMetadata `json:"metadata"`
}

// UserMetadata carries league-specific user settings; TeamName is the
// display name shown in standings when the owner set one.
type UserMetadata struct {
	TeamName string `json:"team_name"`
}

// Roster represents a team's roster entry
type Roster struct {
	RosterID int            `json:"roster_id"`
	OwnerID  string         `json:"owner_id"`
	Settings RosterSettings `json:"settings"`
}

// RosterSettings contains team performance data
type RosterSettings struct {
	Wins        int     `json:"wins"`
	Losses      int     `json:"losses"`
	Ties        int     `json:"ties"`
	FPTS        float64 `json:"fpts"`
	FPTSAgainst float64 `json:"fpts_against"`
	Division    int     `json:"division,omitempty"`
}

// Matchup represents one roster's side of a weekly matchup
type Matchup struct {
	RosterID  int     `json:"roster_id"`
	MatchupID int     `json:"matchup_id"`
	Points    float64 `json:"points"`
}

// APIResponse represents the standard response format for our tools
type APIResponse struct {
	Success  bool        `json:"success"`
	Data     interface{} `json:"data,omitempty"`
	Summary  string      `json:"summary"`
	Error    string      `json:"error,omitempty"`
	Metadata Metadata    `json:"metadata"`
}

// Metadata contains response metadata
type Metadata struct {
	Timestamp    time.Time `json:"timestamp"`
	Source       string    `json:"source"`
	APICallsUsed int       `json:"api_calls_used"`
	LeagueID     string    `json:"league_id,omitempty"`
}

// SleeperError represents an error from the Sleeper API
type SleeperError struct {
	Type       string `json:"type"`
	Message    string `json:"message"`
	StatusCode int    `json:"status_code,omitempty"`
	LeagueID   string `json:"league_id,omitempty"`
}

func (e *SleeperError) Error() string {
	return e.Message
}
