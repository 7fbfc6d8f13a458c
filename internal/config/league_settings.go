package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// SeasonSettings holds the schedule shape for one season of a league:
// division membership, where the regular season ends, and the hand-curated
// postseason slot schedule.
type SeasonSettings struct {
	Divisions          map[string][]string `json:"divisions"`
	RegularSeasonWeeks int                 `json:"regular_season_weeks"`
	Postseason         []PostseasonSlot    `json:"postseason"`
}

// PostseasonSlot pins one postseason game to a bracket slot for a given
// week. Team1 and Team2 name the roster display names playing in it.
type PostseasonSlot struct {
	Week  int    `json:"week"`
	Slot  string `json:"slot"`
	Team1 string `json:"team_1"`
	Team2 string `json:"team_2"`
}

// LeagueSettings represents the configuration for a specific league
type LeagueSettings struct {
	Name        string                    `json:"name"`
	Description string                    `json:"description"`
	Seasons     map[string]SeasonSettings `json:"seasons"`
}

// LeagueConfig represents the entire league configuration file
type LeagueConfig struct {
	Instructions string                    `json:"_instructions,omitempty"`
	Leagues      map[string]LeagueSettings `json:"leagues"`
}

// LoadLeagueSettings loads league configuration from the settings file
func LoadLeagueSettings() (*LeagueConfig, error) {
	// Try to find the config file - first check relative to working directory
	configPaths := []string{
		"configs/league_settings.json",
		"../configs/league_settings.json",
		"../../configs/league_settings.json",
	}

	var configData []byte
	var foundPath string

	for _, path := range configPaths {
		if _, err := os.Stat(path); err == nil {
			var readErr error
			configData, readErr = os.ReadFile(path)
			if readErr == nil {
				foundPath = path
				break
			}
		}
	}

	if foundPath == "" {
		// If no config file found, return an empty configuration. Tools that
		// need divisions or a postseason schedule degrade gracefully.
		return &LeagueConfig{
			Leagues: make(map[string]LeagueSettings),
		}, nil
	}

	var config LeagueConfig
	if err := json.Unmarshal(configData, &config); err != nil {
		return nil, fmt.Errorf("failed to parse league settings from %s: %w", foundPath, err)
	}

	return &config, nil
}

// GetLeagueSettings returns settings for a specific league ID
func (c *LeagueConfig) GetLeagueSettings(leagueID string) (LeagueSettings, bool) {
	settings, exists := c.Leagues[leagueID]
	return settings, exists
}

// SeasonFor returns the season settings for a league and season, if
// configured.
func (c *LeagueConfig) SeasonFor(leagueID, season string) (SeasonSettings, bool) {
	settings, exists := c.Leagues[leagueID]
	if !exists {
		return SeasonSettings{}, false
	}
	seasonSettings, exists := settings.Seasons[season]
	return seasonSettings, exists
}

// DivisionsFor flattens the configured division rosters into a map from team
// name to division name. Returns nil when the league or season has no
// division assignment.
func (c *LeagueConfig) DivisionsFor(leagueID, season string) map[string]string {
	seasonSettings, ok := c.SeasonFor(leagueID, season)
	if !ok || len(seasonSettings.Divisions) == 0 {
		return nil
	}

	divisions := make(map[string]string)
	for division, teams := range seasonSettings.Divisions {
		for _, team := range teams {
			divisions[team] = division
		}
	}
	return divisions
}

// RegularSeasonWeeksFor returns the configured regular season length, or the
// fallback when the league or season is not configured.
func (c *LeagueConfig) RegularSeasonWeeksFor(leagueID, season string, fallback int) int {
	seasonSettings, ok := c.SeasonFor(leagueID, season)
	if !ok || seasonSettings.RegularSeasonWeeks <= 0 {
		return fallback
	}
	return seasonSettings.RegularSeasonWeeks
}

// PostseasonFor returns the postseason slot schedule for a league and
// season. Returns nil when none is configured.
func (c *LeagueConfig) PostseasonFor(leagueID, season string) []PostseasonSlot {
	seasonSettings, ok := c.SeasonFor(leagueID, season)
	if !ok {
		return nil
	}
	return seasonSettings.Postseason
}
