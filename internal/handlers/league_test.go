package handlers

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/fantasylab/league-stats-mcp-server/internal/sleeper"
)

// MockSleeperClient is a mock implementation of the sleeper.Client interface for testing
type MockSleeperClient struct {
	GetLeagueFunc        func(leagueID string) (*sleeper.League, error)
	GetLeagueUsersFunc   func(leagueID string) ([]sleeper.User, error)
	GetLeagueRostersFunc func(leagueID string) ([]sleeper.Roster, error)
	GetMatchupsFunc      func(leagueID string, week int) ([]sleeper.Matchup, error)
}

func (m *MockSleeperClient) GetLeague(leagueID string) (*sleeper.League, error) {
	if m.GetLeagueFunc != nil {
		return m.GetLeagueFunc(leagueID)
	}
	return nil, errors.New("not implemented")
}

func (m *MockSleeperClient) GetLeagueUsers(leagueID string) ([]sleeper.User, error) {
	if m.GetLeagueUsersFunc != nil {
		return m.GetLeagueUsersFunc(leagueID)
	}
	return nil, errors.New("not implemented")
}

func (m *MockSleeperClient) GetLeagueRosters(leagueID string) ([]sleeper.Roster, error) {
	if m.GetLeagueRostersFunc != nil {
		return m.GetLeagueRostersFunc(leagueID)
	}
	return nil, errors.New("not implemented")
}

func (m *MockSleeperClient) GetMatchups(leagueID string, week int) ([]sleeper.Matchup, error) {
	if m.GetMatchupsFunc != nil {
		return m.GetMatchupsFunc(leagueID, week)
	}
	return nil, errors.New("not implemented")
}

// seasonMockClient wires up a four team league with two scored weeks:
// Alpha beats Bravo then Charlie, Delta beats Charlie then loses to Bravo.
func seasonMockClient() *MockSleeperClient {
	return &MockSleeperClient{
		GetLeagueFunc: func(leagueID string) (*sleeper.League, error) {
			return &sleeper.League{
				LeagueID: leagueID,
				Name:     "Test League",
				Season:   "2024",
				Settings: sleeper.LeagueSettings{
					PlayoffWeekStart: 3,
					LastScoredLeg:    2,
					NumTeams:         4,
				},
			}, nil
		},
		GetLeagueRostersFunc: func(leagueID string) ([]sleeper.Roster, error) {
			return []sleeper.Roster{
				{RosterID: 1, OwnerID: "u1"},
				{RosterID: 2, OwnerID: "u2"},
				{RosterID: 3, OwnerID: "u3"},
				{RosterID: 4, OwnerID: "u4"},
			}, nil
		},
		GetLeagueUsersFunc: func(leagueID string) ([]sleeper.User, error) {
			return []sleeper.User{
				{UserID: "u1", DisplayName: "Alpha"},
				{UserID: "u2", DisplayName: "Bravo"},
				{UserID: "u3", DisplayName: "Charlie"},
				{UserID: "u4", DisplayName: "Delta"},
			}, nil
		},
		GetMatchupsFunc: func(leagueID string, week int) ([]sleeper.Matchup, error) {
			switch week {
			case 1:
				return []sleeper.Matchup{
					{RosterID: 1, MatchupID: 1, Points: 100},
					{RosterID: 2, MatchupID: 1, Points: 90},
					{RosterID: 3, MatchupID: 2, Points: 80},
					{RosterID: 4, MatchupID: 2, Points: 95},
				}, nil
			case 2:
				return []sleeper.Matchup{
					{RosterID: 1, MatchupID: 1, Points: 100},
					{RosterID: 3, MatchupID: 1, Points: 90},
					{RosterID: 2, MatchupID: 2, Points: 80},
					{RosterID: 4, MatchupID: 2, Points: 70},
				}, nil
			default:
				return nil, nil
			}
		},
	}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()

	if result == nil {
		t.Fatal("Expected result but got nil")
	}
	if len(result.Content) == 0 {
		t.Fatal("Expected content in result")
	}
	textContent, ok := result.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatal("Expected text content")
	}
	return textContent.Text
}

func TestLeagueHandler_ToolDefinitions(t *testing.T) {
	logger, _ := test.NewNullLogger()
	handler := NewLeagueHandler(&MockSleeperClient{}, logger)

	tests := []struct {
		name string
		tool mcp.Tool
	}{
		{"get_league_standings", handler.GetLeagueStandingsTool()},
		{"get_weekly_luck", handler.GetWeeklyLuckTool()},
		{"get_cumulative_luck", handler.GetCumulativeLuckTool()},
		{"get_playoff_seeding", handler.GetPlayoffSeedingTool()},
		{"get_playoff_bracket", handler.GetPlayoffBracketTool()},
		{"get_matchups", handler.GetMatchupsTool()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.tool.Name != tt.name {
				t.Errorf("Expected tool name '%s', got '%s'", tt.name, tt.tool.Name)
			}
			if tt.tool.Description == "" {
				t.Error("Expected tool description to be set")
			}
			if tt.tool.InputSchema.Type != "object" {
				t.Errorf("Expected input schema type 'object', got '%s'", tt.tool.InputSchema.Type)
			}
			if _, exists := tt.tool.InputSchema.Properties["league_id"]; !exists {
				t.Error("Expected league_id property in input schema")
			}
		})
	}
}

func TestLeagueHandler_HandleGetLeagueStandings(t *testing.T) {
	logger, _ := test.NewNullLogger()
	handler := NewLeagueHandler(seasonMockClient(), logger)
	ctx := context.Background()

	result, err := handler.HandleGetLeagueStandings(ctx, map[string]interface{}{
		"league_id": "test123",
	})

	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if result.IsError {
		t.Error("Expected successful result but got error")
	}

	text := resultText(t, result)
	// Alpha won both weeks and leads the standings.
	if !strings.Contains(text, "Leader: Alpha (2-0") {
		t.Errorf("Expected Alpha to lead the standings, got: %s", text)
	}
}

func TestLeagueHandler_HandleGetLeagueStandings_MissingLeagueID(t *testing.T) {
	logger, _ := test.NewNullLogger()
	handler := NewLeagueHandler(&MockSleeperClient{}, logger)

	if _, err := handler.HandleGetLeagueStandings(context.Background(), map[string]interface{}{}); err == nil {
		t.Error("Expected error for missing league_id")
	}
}

func TestLeagueHandler_HandleGetLeagueStandings_APIError(t *testing.T) {
	logger, _ := test.NewNullLogger()
	mockClient := &MockSleeperClient{
		GetLeagueFunc: func(leagueID string) (*sleeper.League, error) {
			return nil, errors.New("league not found")
		},
	}
	handler := NewLeagueHandler(mockClient, logger)

	result, err := handler.HandleGetLeagueStandings(context.Background(), map[string]interface{}{
		"league_id": "invalid",
	})

	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if result == nil || !result.IsError {
		t.Error("Expected error result for API failure")
	}
}

func TestLeagueHandler_HandleGetWeeklyLuck(t *testing.T) {
	logger, _ := test.NewNullLogger()
	handler := NewLeagueHandler(seasonMockClient(), logger)
	ctx := context.Background()

	result, err := handler.HandleGetWeeklyLuck(ctx, map[string]interface{}{
		"league_id": "test123",
	})

	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if result.IsError {
		t.Error("Expected successful result but got error")
	}

	text := resultText(t, result)
	// Four teams across two weeks.
	if !strings.Contains(text, "8 weekly luck records") {
		t.Errorf("Expected 8 records in summary, got: %s", text)
	}
}

func TestLeagueHandler_HandleGetWeeklyLuck_WeekFilter(t *testing.T) {
	logger, _ := test.NewNullLogger()
	handler := NewLeagueHandler(seasonMockClient(), logger)
	ctx := context.Background()

	result, err := handler.HandleGetWeeklyLuck(ctx, map[string]interface{}{
		"league_id": "test123",
		"week":      float64(2),
	})

	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}

	text := resultText(t, result)
	if !strings.Contains(text, "4 luck records for week 2") {
		t.Errorf("Expected week 2 filter in summary, got: %s", text)
	}
}

func TestLeagueHandler_HandleGetCumulativeLuck(t *testing.T) {
	logger, _ := test.NewNullLogger()
	handler := NewLeagueHandler(seasonMockClient(), logger)
	ctx := context.Background()

	result, err := handler.HandleGetCumulativeLuck(ctx, map[string]interface{}{
		"league_id": "test123",
	})

	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if result.IsError {
		t.Error("Expected successful result but got error")
	}

	text := resultText(t, result)
	if !strings.Contains(text, "8 cumulative luck rows") {
		t.Errorf("Expected 8 rows in summary, got: %s", text)
	}
	if !strings.Contains(text, "\"trend\"") {
		t.Errorf("Expected trend column in rows, got: %s", text)
	}
}

func TestLeagueHandler_HandleGetPlayoffSeeding_NoDivisions(t *testing.T) {
	logger, _ := test.NewNullLogger()
	handler := NewLeagueHandler(seasonMockClient(), logger)
	ctx := context.Background()

	result, err := handler.HandleGetPlayoffSeeding(ctx, map[string]interface{}{
		"league_id": "test123",
	})

	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if result.IsError {
		t.Error("Unconfigured divisions should degrade gracefully, not error")
	}

	text := resultText(t, result)
	if !strings.Contains(text, "No division assignment configured") {
		t.Errorf("Expected graceful summary for missing divisions, got: %s", text)
	}
}

func TestLeagueHandler_HandleGetPlayoffBracket_NoSchedule(t *testing.T) {
	logger, _ := test.NewNullLogger()
	handler := NewLeagueHandler(seasonMockClient(), logger)
	ctx := context.Background()

	result, err := handler.HandleGetPlayoffBracket(ctx, map[string]interface{}{
		"league_id": "test123",
	})

	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if result.IsError {
		t.Error("Missing postseason schedule should degrade gracefully, not error")
	}

	text := resultText(t, result)
	if !strings.Contains(text, "No postseason schedule configured") {
		t.Errorf("Expected placeholder summary, got: %s", text)
	}
	if !strings.Contains(text, "TBD") {
		t.Errorf("Expected TBD placeholders in bracket, got: %s", text)
	}
}

func TestLeagueHandler_HandleGetPlayoffBracket_InvalidType(t *testing.T) {
	logger, _ := test.NewNullLogger()
	handler := NewLeagueHandler(&MockSleeperClient{}, logger)

	_, err := handler.HandleGetPlayoffBracket(context.Background(), map[string]interface{}{
		"league_id":    "test123",
		"bracket_type": "group_stage",
	})

	if err == nil {
		t.Error("Expected error for invalid bracket_type")
	}
}

func TestLeagueHandler_HandleGetMatchups(t *testing.T) {
	logger, _ := test.NewNullLogger()
	handler := NewLeagueHandler(seasonMockClient(), logger)
	ctx := context.Background()

	result, err := handler.HandleGetMatchups(ctx, map[string]interface{}{
		"league_id": "test123",
		"week":      float64(1), // JSON numbers are parsed as float64
	})

	if err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if result.IsError {
		t.Error("Expected successful result but got error")
	}

	text := resultText(t, result)
	if !strings.Contains(text, "Found 2 matchups for week 1") {
		t.Errorf("Expected 2 resolved matchups, got: %s", text)
	}
	if !strings.Contains(text, "Alpha") || !strings.Contains(text, "Bravo") {
		t.Errorf("Expected resolved team names in matchups, got: %s", text)
	}
}

func TestLeagueHandler_HandleGetMatchups_InvalidWeek(t *testing.T) {
	logger, _ := test.NewNullLogger()
	handler := NewLeagueHandler(&MockSleeperClient{}, logger)

	_, err := handler.HandleGetMatchups(context.Background(), map[string]interface{}{
		"league_id": "test123",
		"week":      float64(20), // Invalid week > 18
	})

	if err == nil {
		t.Error("Expected error for invalid week")
	}
}

func TestNewLeagueHandler(t *testing.T) {
	logger, _ := test.NewNullLogger()
	mockClient := &MockSleeperClient{}

	handler := NewLeagueHandler(mockClient, logger)

	if handler == nil {
		t.Fatal("Expected handler to be created, got nil")
	}
	if handler.client != mockClient {
		t.Error("Expected handler to use provided client")
	}
	if handler.logger != logger {
		t.Error("Expected handler to use provided logger")
	}
}
