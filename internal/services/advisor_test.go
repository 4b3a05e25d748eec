package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mstratford/fpl-advisor/internal/fpl"
	"github.com/mstratford/fpl-advisor/internal/prediction"
)

const advisorBootstrap = `{
	"events": [{"id": 3, "is_current": true}],
	"teams": [
		{"id": 1, "name": "Arsenal", "short_name": "ARS"},
		{"id": 2, "name": "Chelsea", "short_name": "CHE"}
	],
	"element_types": [
		{"id": 3, "singular_name_short": "MID"},
		{"id": 4, "singular_name_short": "FWD"}
	],
	"elements": [
		{
			"id": 10, "web_name": "Starter", "first_name": "In", "second_name": "Form",
			"team": 1, "element_type": 3, "now_cost": 80, "total_points": 90,
			"form": "6.5", "points_per_game": "5.0", "selected_by_percent": "30.0",
			"ict_index": "180.0", "minutes": 2000, "starts": 22, "goals_scored": 8,
			"assists": 6, "bps": 500, "bonus": 12,
			"expected_goals_per_90": 0.4, "expected_assists_per_90": 0.3,
			"expected_goal_involvements_per_90": 0.7, "status": "a"
		},
		{
			"id": 20, "web_name": "Bench", "first_name": "Out", "second_name": "OfForm",
			"team": 2, "element_type": 4, "now_cost": 60, "total_points": 20,
			"form": "1.2", "points_per_game": "1.5", "selected_by_percent": "2.0",
			"ict_index": "40.0", "minutes": 600, "starts": 6, "goals_scored": 1,
			"bps": 80, "expected_goals_per_90": 0.15, "expected_assists_per_90": 0.05,
			"status": "a"
		}
	]
}`

const advisorFixtures = `[
	{"id": 1, "event": 3, "team_h": 1, "team_a": 2, "team_h_difficulty": 2, "team_a_difficulty": 4,
	 "kickoff_time": "2026-09-05T14:00:00Z", "finished": false}
]`

const advisorPicks = `{
	"entry_history": {"event": 3, "points": 40},
	"picks": [
		{"element": 10, "position": 1, "multiplier": 1},
		{"element": 20, "position": 2, "multiplier": 1}
	]
}`

func newTestAdvisor(t *testing.T) *AdvisorService {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/bootstrap-static/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(advisorBootstrap))
	})
	mux.HandleFunc("/fixtures/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(advisorFixtures))
	})
	mux.HandleFunc("/entry/7/event/3/picks/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(advisorPicks))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	logger := logrus.New()
	client := fpl.NewClient(fpl.Config{
		BaseURL:        server.URL,
		RequestsPerMin: 6000,
	}, nil, logger)
	predictor := prediction.New(prediction.DefaultRules())
	return NewAdvisorService(client, predictor, logger, 5)
}

func TestAdvisorPlayersSortedByQuality(t *testing.T) {
	advisor := newTestAdvisor(t)

	players, err := advisor.Players(context.Background(), "", "")
	require.NoError(t, err)
	require.Len(t, players, 2)
	assert.Equal(t, "Starter", players[0].Name)
	assert.Greater(t, players[0].QualityScore, players[1].QualityScore)
}

func TestAdvisorPlayersPositionFilter(t *testing.T) {
	advisor := newTestAdvisor(t)

	players, err := advisor.Players(context.Background(), "FWD", "")
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, "Bench", players[0].Name)
}

func TestAdvisorProjections(t *testing.T) {
	advisor := newTestAdvisor(t)

	projection, err := advisor.Projections(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, projection.Predictions, 1)
	assert.Equal(t, "CHE", projection.Predictions[0].Fixture.Opponent)
	assert.Greater(t, projection.Total, 0.0)

	_, err = advisor.Projections(context.Background(), 999)
	assert.Error(t, err)
}

func TestAdvisorTopProjections(t *testing.T) {
	advisor := newTestAdvisor(t)

	projections, err := advisor.TopProjections(context.Background(), "", 10)
	require.NoError(t, err)
	require.Len(t, projections, 2)
	assert.GreaterOrEqual(t, projections[0].Total, projections[1].Total)
}

func TestAdvisorTeam(t *testing.T) {
	advisor := newTestAdvisor(t)

	outlook, err := advisor.Team(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 3, outlook.Gameweek)
	require.Len(t, outlook.Predictions, 2)
	assert.InDelta(t, outlook.Predictions[0].ExpectedPoints+outlook.Predictions[1].ExpectedPoints, outlook.Total, 1e-9)
}

func TestAdvisorCaptain(t *testing.T) {
	advisor := newTestAdvisor(t)

	suggestion, err := advisor.Captain(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, suggestion.Captain)
	assert.Equal(t, "Starter", suggestion.Captain.Player.Name)
}

func TestAdvisorTransfersExcludeRoster(t *testing.T) {
	advisor := newTestAdvisor(t)

	// Whole pool is already in the squad, so nothing qualifies
	candidates, err := advisor.Transfers(context.Background(), 7, 2.0)
	require.NoError(t, err)
	assert.Empty(t, candidates)
}
