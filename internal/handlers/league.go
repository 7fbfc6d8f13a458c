package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sirupsen/logrus"

	"github.com/fantasylab/league-stats-mcp-server/internal/config"
	"github.com/fantasylab/league-stats-mcp-server/internal/league"
	"github.com/fantasylab/league-stats-mcp-server/internal/sleeper"
)

const defaultRegularSeasonWeeks = 14

// LeagueHandler handles league statistics MCP tools
type LeagueHandler struct {
	client sleeper.Client
	logger *logrus.Logger
	config *config.LeagueConfig
}

// NewLeagueHandler creates a new league handler
func NewLeagueHandler(client sleeper.Client, logger *logrus.Logger) *LeagueHandler {
	// Load league configuration
	leagueConfig, err := config.LoadLeagueSettings()
	if err != nil {
		logger.WithError(err).Warn("Failed to load league settings, using defaults")
		leagueConfig = &config.LeagueConfig{
			Leagues: make(map[string]config.LeagueSettings),
		}
	}

	return &LeagueHandler{
		client: client,
		logger: logger,
		config: leagueConfig,
	}
}

// seasonData bundles everything the stats tools need for one league season:
// resolved team names, the regular season match records, and how many API
// calls it took to assemble them.
type seasonData struct {
	league   *sleeper.League
	names    map[int]string
	matchups []league.Matchup
	lastWeek int
	apiCalls int
}

// loadSeason fetches league metadata, resolves roster names, and pulls every
// completed regular season week into engine match records.
func (h *LeagueHandler) loadSeason(leagueID string) (*seasonData, error) {
	lg, err := h.client.GetLeague(leagueID)
	if err != nil {
		return nil, fmt.Errorf("failed to get league: %w", err)
	}

	names, calls, err := h.loadTeamNames(leagueID)
	if err != nil {
		return nil, err
	}

	data := &seasonData{
		league:   lg,
		names:    names,
		lastWeek: h.lastRegularSeasonWeek(leagueID, lg),
		apiCalls: 1 + calls,
	}

	for week := 1; week <= data.lastWeek; week++ {
		rows, err := h.client.GetMatchups(leagueID, week)
		if err != nil {
			return nil, fmt.Errorf("failed to get matchups for week %d: %w", week, err)
		}
		data.apiCalls++
		data.matchups = append(data.matchups, sleeper.ResolveWeekMatchups(week, rows, names)...)
	}

	return data, nil
}

// loadTeamNames fetches rosters and users and resolves roster display names.
func (h *LeagueHandler) loadTeamNames(leagueID string) (map[int]string, int, error) {
	rosters, err := h.client.GetLeagueRosters(leagueID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get rosters: %w", err)
	}

	users, err := h.client.GetLeagueUsers(leagueID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get users: %w", err)
	}

	return sleeper.TeamNames(rosters, users), 2, nil
}

// lastRegularSeasonWeek bounds the weeks worth fetching. The configured
// regular season length wins when set; otherwise the week before the
// league's playoff start. Weeks Sleeper has not scored yet are skipped.
func (h *LeagueHandler) lastRegularSeasonWeek(leagueID string, lg *sleeper.League) int {
	weeks := defaultRegularSeasonWeeks
	if lg.Settings.PlayoffWeekStart > 1 {
		weeks = lg.Settings.PlayoffWeekStart - 1
	}
	weeks = h.config.RegularSeasonWeeksFor(leagueID, lg.Season, weeks)

	if lg.Settings.LastScoredLeg > 0 && lg.Settings.LastScoredLeg < weeks {
		weeks = lg.Settings.LastScoredLeg
	}
	return weeks
}

// requireLeagueID pulls the league_id argument every tool shares.
func requireLeagueID(args map[string]interface{}) (string, error) {
	leagueID, ok := args["league_id"].(string)
	if !ok || leagueID == "" {
		return "", fmt.Errorf("league_id is required and must be a string")
	}
	return leagueID, nil
}

// errorResult wraps a failure message in an MCP error response.
func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{
				Type: "text",
				Text: message,
			},
		},
		IsError: true,
	}
}

// jsonResult marshals an API response into an MCP text response.
func (h *LeagueHandler) jsonResult(response sleeper.APIResponse) (*mcp.CallToolResult, error) {
	jsonResponse, err := formatJSONResponse(response)
	if err != nil {
		h.logger.WithError(err).Error("Failed to format response")
		return errorResult(fmt.Sprintf("Error formatting response: %s", err.Error())), nil
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{
				Type: "text",
				Text: jsonResponse,
			},
		},
	}, nil
}

func leagueIDProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "The Sleeper league ID",
		"required":    true,
	}
}

// GetLeagueStandingsTool returns the MCP tool definition for get_league_standings
func (h *LeagueHandler) GetLeagueStandingsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_league_standings",
		Description: "Get league standings computed from weekly matchup results, with head-to-head and sweep-based tiebreakers applied",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"league_id": leagueIDProperty(),
			},
		},
	}
}

// HandleGetLeagueStandings handles the get_league_standings tool call
func (h *LeagueHandler) HandleGetLeagueStandings(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
	h.logger.WithField("args", args).Info("Handling get_league_standings")

	leagueID, err := requireLeagueID(args)
	if err != nil {
		return nil, err
	}

	data, err := h.loadSeason(leagueID)
	if err != nil {
		h.logger.WithError(err).Error("Failed to load season data")
		return errorResult(fmt.Sprintf("Failed to get league standings: %s", err.Error())), nil
	}

	standings := league.SortStandings(
		league.ComputeStandings(data.matchups),
		league.BuildHeadToHead(data.matchups),
	)

	summary := fmt.Sprintf("Standings for %d teams through week %d", len(standings), data.lastWeek)
	if len(standings) > 0 {
		leader := standings[0]
		summary = fmt.Sprintf("Standings for %d teams through week %d - Leader: %s (%d-%d, %.1f pts)",
			len(standings), data.lastWeek, leader.Team, leader.Wins, leader.Losses, leader.PointsFor)
	}

	response := sleeper.APIResponse{
		Success: true,
		Data:    standings,
		Summary: summary,
		Metadata: sleeper.Metadata{
			Timestamp:    time.Now(),
			Source:       "sleeper_api",
			APICallsUsed: data.apiCalls,
			LeagueID:     leagueID,
		},
	}

	return h.jsonResult(response)
}

// GetWeeklyLuckTool returns the MCP tool definition for get_weekly_luck
func (h *LeagueHandler) GetWeeklyLuckTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_weekly_luck",
		Description: "Get per-week luck records comparing each team's actual result against its record had it played every other team that week",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"league_id": leagueIDProperty(),
				"week": map[string]interface{}{
					"type":        "integer",
					"description": "Optional week filter; omit for every completed week",
					"required":    false,
				},
			},
		},
	}
}

// HandleGetWeeklyLuck handles the get_weekly_luck tool call
func (h *LeagueHandler) HandleGetWeeklyLuck(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
	h.logger.WithField("args", args).Info("Handling get_weekly_luck")

	leagueID, err := requireLeagueID(args)
	if err != nil {
		return nil, err
	}

	week := 0
	if weekRaw, exists := args["week"]; exists {
		weekFloat, ok := weekRaw.(float64)
		if !ok {
			return nil, fmt.Errorf("week must be a number")
		}
		week = int(weekFloat)
	}

	data, err := h.loadSeason(leagueID)
	if err != nil {
		h.logger.WithError(err).Error("Failed to load season data")
		return errorResult(fmt.Sprintf("Failed to get weekly luck: %s", err.Error())), nil
	}

	records := league.WeeklyLuck(data.matchups)
	if week > 0 {
		filtered := records[:0]
		for _, r := range records {
			if r.Week == week {
				filtered = append(filtered, r)
			}
		}
		records = filtered
	}

	summary := fmt.Sprintf("%d weekly luck records through week %d", len(records), data.lastWeek)
	if week > 0 {
		summary = fmt.Sprintf("%d luck records for week %d", len(records), week)
	}

	response := sleeper.APIResponse{
		Success: true,
		Data:    records,
		Summary: summary,
		Metadata: sleeper.Metadata{
			Timestamp:    time.Now(),
			Source:       "sleeper_api",
			APICallsUsed: data.apiCalls,
			LeagueID:     leagueID,
		},
	}

	return h.jsonResult(response)
}

// GetCumulativeLuckTool returns the MCP tool definition for get_cumulative_luck
func (h *LeagueHandler) GetCumulativeLuckTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_cumulative_luck",
		Description: "Get a week-by-week cumulative luck table per team, with win and true percentages, luck deltas, and trend direction",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"league_id": leagueIDProperty(),
			},
		},
	}
}

// HandleGetCumulativeLuck handles the get_cumulative_luck tool call
func (h *LeagueHandler) HandleGetCumulativeLuck(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
	h.logger.WithField("args", args).Info("Handling get_cumulative_luck")

	leagueID, err := requireLeagueID(args)
	if err != nil {
		return nil, err
	}

	data, err := h.loadSeason(leagueID)
	if err != nil {
		h.logger.WithError(err).Error("Failed to load season data")
		return errorResult(fmt.Sprintf("Failed to get cumulative luck: %s", err.Error())), nil
	}

	rows := league.CumulativeLuck(data.matchups)

	response := sleeper.APIResponse{
		Success: true,
		Data:    rows,
		Summary: fmt.Sprintf("%d cumulative luck rows through week %d", len(rows), data.lastWeek),
		Metadata: sleeper.Metadata{
			Timestamp:    time.Now(),
			Source:       "sleeper_api",
			APICallsUsed: data.apiCalls,
			LeagueID:     leagueID,
		},
	}

	return h.jsonResult(response)
}

// GetPlayoffSeedingTool returns the MCP tool definition for get_playoff_seeding
func (h *LeagueHandler) GetPlayoffSeedingTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_playoff_seeding",
		Description: "Get playoff and consolation seeding from regular season results. Division winners seed first, then two wildcards; requires divisions in the league settings file.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"league_id": leagueIDProperty(),
			},
		},
	}
}

// PlayoffSeedingResult groups the two seed lists the seeding tool returns.
type PlayoffSeedingResult struct {
	Playoff     []league.SeedAssignment `json:"playoff"`
	Consolation []league.SeedAssignment `json:"consolation"`
}

// HandleGetPlayoffSeeding handles the get_playoff_seeding tool call
func (h *LeagueHandler) HandleGetPlayoffSeeding(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
	h.logger.WithField("args", args).Info("Handling get_playoff_seeding")

	leagueID, err := requireLeagueID(args)
	if err != nil {
		return nil, err
	}

	data, err := h.loadSeason(leagueID)
	if err != nil {
		h.logger.WithError(err).Error("Failed to load season data")
		return errorResult(fmt.Sprintf("Failed to get playoff seeding: %s", err.Error())), nil
	}

	divisions := h.config.DivisionsFor(leagueID, data.league.Season)

	playoff, consolation := league.ComputeSeeding(data.matchups, divisions)

	summary := fmt.Sprintf("%d playoff seeds, %d consolation seeds through week %d",
		len(playoff), len(consolation), data.lastWeek)
	if divisions == nil {
		summary = "No division assignment configured for this league and season; seeding unavailable"
	}

	response := sleeper.APIResponse{
		Success: true,
		Data: PlayoffSeedingResult{
			Playoff:     playoff,
			Consolation: consolation,
		},
		Summary: summary,
		Metadata: sleeper.Metadata{
			Timestamp:    time.Now(),
			Source:       "sleeper_api",
			APICallsUsed: data.apiCalls,
			LeagueID:     leagueID,
		},
	}

	return h.jsonResult(response)
}

// GetPlayoffBracketTool returns the MCP tool definition for get_playoff_bracket
func (h *LeagueHandler) GetPlayoffBracketTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_playoff_bracket",
		Description: "Get the championship or consolation bracket with per-round results. Multi-week series are combined; requires a postseason schedule in the league settings file.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"league_id": leagueIDProperty(),
				"bracket_type": map[string]interface{}{
					"type":        "string",
					"description": "Bracket to build: 'championship' (default) or 'consolation'",
					"required":    false,
				},
			},
		},
	}
}

// HandleGetPlayoffBracket handles the get_playoff_bracket tool call
func (h *LeagueHandler) HandleGetPlayoffBracket(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
	h.logger.WithField("args", args).Info("Handling get_playoff_bracket")

	leagueID, err := requireLeagueID(args)
	if err != nil {
		return nil, err
	}

	bracketType := "championship"
	if raw, exists := args["bracket_type"]; exists {
		if str, ok := raw.(string); ok && str != "" {
			bracketType = str
		}
	}
	if bracketType != "championship" && bracketType != "consolation" {
		return nil, fmt.Errorf("bracket_type must be 'championship' or 'consolation'")
	}

	lg, err := h.client.GetLeague(leagueID)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get league info")
		return errorResult(fmt.Sprintf("Failed to get playoff bracket: %s", err.Error())), nil
	}

	names, calls, err := h.loadTeamNames(leagueID)
	if err != nil {
		h.logger.WithError(err).Error("Failed to resolve team names")
		return errorResult(fmt.Sprintf("Failed to get playoff bracket: %s", err.Error())), nil
	}
	apiCalls := 1 + calls

	schedule := h.config.PostseasonFor(leagueID, lg.Season)

	postseason, scoreCalls, err := h.loadPostseasonMatchups(leagueID, schedule, names)
	if err != nil {
		h.logger.WithError(err).Error("Failed to load postseason matchups")
		return errorResult(fmt.Sprintf("Failed to get playoff bracket: %s", err.Error())), nil
	}
	apiCalls += scoreCalls

	bySlot := league.GroupBySlot(postseason)

	var bracket league.Bracket
	if bracketType == "championship" {
		bracket = league.BuildChampionshipBracket(bySlot)
	} else {
		bracket = league.BuildConsolationBracket(bySlot)
	}

	summary := fmt.Sprintf("%s bracket with %d rounds", bracketType, len(bracket.Rounds))
	if len(schedule) == 0 {
		summary = fmt.Sprintf("No postseason schedule configured; %s bracket rendered as placeholders", bracketType)
	}

	response := sleeper.APIResponse{
		Success: true,
		Data:    bracket,
		Summary: summary,
		Metadata: sleeper.Metadata{
			Timestamp:    time.Now(),
			Source:       "sleeper_api",
			APICallsUsed: apiCalls,
			LeagueID:     leagueID,
		},
	}

	return h.jsonResult(response)
}

// loadPostseasonMatchups pulls scores for every scheduled postseason game.
// Each distinct week in the schedule is fetched once; a scheduled game whose
// pairing cannot be found in the week's results is skipped, leaving its slot
// to render as a placeholder.
func (h *LeagueHandler) loadPostseasonMatchups(leagueID string, schedule []config.PostseasonSlot, names map[int]string) ([]league.Matchup, int, error) {
	weekMatchups := make(map[int][]league.Matchup)
	apiCalls := 0

	for _, slot := range schedule {
		if _, fetched := weekMatchups[slot.Week]; fetched {
			continue
		}
		rows, err := h.client.GetMatchups(leagueID, slot.Week)
		if err != nil {
			return nil, apiCalls, fmt.Errorf("failed to get matchups for week %d: %w", slot.Week, err)
		}
		apiCalls++
		weekMatchups[slot.Week] = sleeper.ResolveWeekMatchups(slot.Week, rows, names)
	}

	var postseason []league.Matchup
	for _, slot := range schedule {
		for _, m := range weekMatchups[slot.Week] {
			if m.Team1 == slot.Team1 && m.Team2 == slot.Team2 {
				m.Slot = slot.Slot
				postseason = append(postseason, m)
				break
			}
			if m.Team1 == slot.Team2 && m.Team2 == slot.Team1 {
				// Keep the schedule's seed order so bracket labels read
				// correctly.
				postseason = append(postseason, league.Matchup{
					Week:   m.Week,
					Team1:  slot.Team1,
					Score1: m.Score2,
					Team2:  slot.Team2,
					Score2: m.Score1,
					Slot:   slot.Slot,
				})
				break
			}
		}
	}

	return postseason, apiCalls, nil
}

// GetMatchupsTool returns the MCP tool definition for get_matchups
func (h *LeagueHandler) GetMatchupsTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_matchups",
		Description: "Get matchup results for a specific week with roster names resolved, byes and unplayed games marked",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"league_id": leagueIDProperty(),
				"week": map[string]interface{}{
					"type":        "integer",
					"description": "Week number (1-18)",
					"required":    true,
				},
			},
		},
	}
}

// HandleGetMatchups handles the get_matchups tool call
func (h *LeagueHandler) HandleGetMatchups(ctx context.Context, args map[string]interface{}) (*mcp.CallToolResult, error) {
	h.logger.WithField("args", args).Info("Handling get_matchups")

	leagueID, err := requireLeagueID(args)
	if err != nil {
		return nil, err
	}

	weekFloat, ok := args["week"].(float64)
	if !ok {
		return nil, fmt.Errorf("week is required and must be a number")
	}
	week := int(weekFloat)

	if week < 1 || week > 18 {
		return nil, fmt.Errorf("week must be between 1 and 18")
	}

	names, calls, err := h.loadTeamNames(leagueID)
	if err != nil {
		h.logger.WithError(err).Error("Failed to resolve team names")
		return errorResult(fmt.Sprintf("Failed to get matchups: %s", err.Error())), nil
	}

	rows, err := h.client.GetMatchups(leagueID, week)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get matchups")
		return errorResult(fmt.Sprintf("Failed to get matchups: %s", err.Error())), nil
	}

	matchups := sleeper.ResolveWeekMatchups(week, rows, names)

	response := sleeper.APIResponse{
		Success: true,
		Data:    matchups,
		Summary: fmt.Sprintf("Found %d matchups for week %d", len(matchups), week),
		Metadata: sleeper.Metadata{
			Timestamp:    time.Now(),
			Source:       "sleeper_api",
			APICallsUsed: calls + 1,
			LeagueID:     leagueID,
		},
	}

	return h.jsonResult(response)
}
