package fpl

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const bootstrapPayload = `{
	"events": [
		{"id": 7, "is_current": false, "finished": true},
		{"id": 8, "is_current": true, "finished": false},
		{"id": 9, "is_next": true, "finished": false}
	],
	"teams": [
		{"id": 1, "code": 3, "name": "Arsenal", "short_name": "ARS"},
		{"id": 2, "code": 8, "name": "Chelsea", "short_name": "CHE"},
		{"id": 3, "code": 14, "name": "Liverpool", "short_name": "LIV"}
	],
	"element_types": [
		{"id": 1, "singular_name_short": "GKP"},
		{"id": 2, "singular_name_short": "DEF"},
		{"id": 3, "singular_name_short": "MID"},
		{"id": 4, "singular_name_short": "FWD"}
	],
	"elements": [
		{
			"id": 100, "web_name": "Saka", "first_name": "Bukayo", "second_name": "Saka",
			"team": 1, "element_type": 3, "now_cost": 89, "total_points": 112,
			"form": "5.2", "points_per_game": "4.8", "selected_by_percent": "38.4",
			"ict_index": "210.5", "minutes": 1800, "starts": 20, "goals_scored": 7,
			"assists": 9, "bps": 520, "bonus": 14,
			"expected_goals_per_90": 0.45, "expected_assists_per_90": 0.3,
			"expected_goal_involvements_per_90": 0.75,
			"status": "a", "chance_of_playing_next_round": null
		},
		{
			"id": 200, "web_name": "James", "first_name": "Reece", "second_name": "James",
			"team": 2, "element_type": 2, "now_cost": 54, "total_points": 40,
			"form": "", "points_per_game": "3.1", "selected_by_percent": "8.2",
			"ict_index": "88.0", "minutes": 990, "starts": 11, "clean_sheets": 4,
			"goals_conceded": 12, "bps": 260, "expected_goals_conceded_per_90": 1.1,
			"status": "d", "chance_of_playing_next_round": 75
		}
	]
}`

const fixturesPayload = `[
	{"id": 1, "event": 8, "team_h": 1, "team_a": 2, "team_h_difficulty": 4, "team_a_difficulty": 3,
	 "kickoff_time": "2026-09-05T14:00:00Z", "finished": false},
	{"id": 2, "event": 9, "team_h": 3, "team_a": 1, "team_h_difficulty": 2, "team_a_difficulty": 5,
	 "kickoff_time": "2026-09-12T14:00:00Z", "finished": false},
	{"id": 3, "event": 7, "team_h": 2, "team_a": 3, "team_h_difficulty": 3, "team_a_difficulty": 3,
	 "kickoff_time": "2026-08-22T14:00:00Z", "finished": true}
]`

const picksPayload = `{
	"active_chip": null,
	"entry_history": {"event": 8, "points": 52},
	"picks": [
		{"element": 100, "position": 1, "multiplier": 2, "is_captain": true, "is_vice_captain": false},
		{"element": 200, "position": 2, "multiplier": 1, "is_captain": false, "is_vice_captain": true}
	]
}`

func newTestClient(t *testing.T) (*Client, *httptest.Server) {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/bootstrap-static/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(bootstrapPayload))
	})
	mux.HandleFunc("/fixtures/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(fixturesPayload))
	})
	mux.HandleFunc("/entry/123/event/8/picks/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(picksPayload))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	logger := logrus.New()
	client := NewClient(Config{
		BaseURL:        server.URL,
		Timeout:        2 * time.Second,
		RequestsPerMin: 6000,
	}, nil, logger)
	return client, server
}

func TestPlayersMapping(t *testing.T) {
	client, _ := newTestClient(t)

	players, err := client.Players(context.Background())
	require.NoError(t, err)
	require.Len(t, players, 2)

	saka := players[0]
	assert.Equal(t, 100, saka.ID)
	assert.Equal(t, "Saka", saka.Name)
	assert.Equal(t, "Bukayo Saka", saka.FullName)
	assert.Equal(t, "ARS", saka.Team)
	assert.Equal(t, "MID", saka.Position)
	assert.InDelta(t, 8.9, saka.Price, 1e-9)
	assert.InDelta(t, 5.2, saka.Form, 1e-9)
	assert.InDelta(t, 0.75, saka.XGIPer90, 1e-9)
	assert.Nil(t, saka.ChanceOfPlaying)
	assert.True(t, saka.Available())

	james := players[1]
	assert.Equal(t, "CHE", james.Team)
	assert.Equal(t, "DEF", james.Position)
	assert.Equal(t, 0.0, james.Form) // empty string falls back
	require.NotNil(t, james.ChanceOfPlaying)
	assert.Equal(t, 75.0, *james.ChanceOfPlaying)
	assert.False(t, james.Available())
}

func TestFixturesByTeamPerspective(t *testing.T) {
	client, _ := newTestClient(t)

	snapshot, err := client.FixturesByTeam(context.Background(), 5)
	require.NoError(t, err)

	arsenal := snapshot[1]
	require.Len(t, arsenal, 2)
	// Finished fixture excluded, remaining ordered by kickoff
	assert.Equal(t, "CHE", arsenal[0].Opponent)
	assert.True(t, arsenal[0].IsHome)
	assert.Equal(t, 4, arsenal[0].Difficulty)
	assert.Equal(t, "LIV", arsenal[1].Opponent)
	assert.False(t, arsenal[1].IsHome)
	assert.Equal(t, 5, arsenal[1].Difficulty)
}

func TestFixturesByTeamHorizonLimit(t *testing.T) {
	client, _ := newTestClient(t)

	snapshot, err := client.FixturesByTeam(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, snapshot[1], 1)
	assert.Equal(t, "CHE", snapshot[1][0].Opponent)
}

func TestRoster(t *testing.T) {
	client, _ := newTestClient(t)

	roster, err := client.Roster(context.Background(), 123)
	require.NoError(t, err)
	require.Len(t, roster, 2)
	assert.Equal(t, "Saka", roster[0].Name)
	assert.Equal(t, "James", roster[1].Name)
}

func TestCurrentGameweek(t *testing.T) {
	client, _ := newTestClient(t)

	bootstrap, err := client.GetBootstrap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 8, CurrentGameweek(bootstrap))
}

func TestClientUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, RequestsPerMin: 6000}, nil, logrus.New())
	_, err := client.GetBootstrap(context.Background())
	assert.Error(t, err)
}
