package prediction

import (
	"testing"

	"github.com/mstratford/fpl-advisor/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestCaptainRanksByNextFixture(t *testing.T) {
	p := New(DefaultRules())

	star := strongForward(1, 11)
	defender := solidDefender()
	defender.ID = 2
	defender.TeamID = 12
	bench := weakDefender(3, 13)

	roster := []models.Player{bench, defender, star}
	fixtures := allTeamsFixtures(11, 12, 13)

	suggestion := p.SuggestCaptain(roster, fixtures)
	require.NotNil(t, suggestion.Captain)
	require.NotNil(t, suggestion.ViceCaptain)

	assert.GreaterOrEqual(t, suggestion.Captain.ExpectedPoints, suggestion.ViceCaptain.ExpectedPoints)
	if len(suggestion.Alternatives) > 0 {
		assert.GreaterOrEqual(t, suggestion.ViceCaptain.ExpectedPoints, suggestion.Alternatives[0].ExpectedPoints)
	}
}

func TestSuggestCaptainSmallRoster(t *testing.T) {
	p := New(DefaultRules())

	suggestion := p.SuggestCaptain([]models.Player{strongForward(1, 11)}, allTeamsFixtures(11))
	require.NotNil(t, suggestion.Captain)
	assert.Nil(t, suggestion.ViceCaptain)
	assert.Empty(t, suggestion.Alternatives)
}

func TestSuggestCaptainEmptyRoster(t *testing.T) {
	p := New(DefaultRules())

	suggestion := p.SuggestCaptain(nil, nil)
	assert.Nil(t, suggestion.Captain)
	assert.Nil(t, suggestion.ViceCaptain)
	assert.Empty(t, suggestion.Alternatives)
}

func TestSuggestCaptainAlternativesCappedAtThree(t *testing.T) {
	p := New(DefaultRules())

	var roster []models.Player
	teamIDs := make([]int, 0, 8)
	for i := 0; i < 8; i++ {
		roster = append(roster, strongForward(i+1, 20+i))
		teamIDs = append(teamIDs, 20+i)
	}

	suggestion := p.SuggestCaptain(roster, allTeamsFixtures(teamIDs...))
	assert.Len(t, suggestion.Alternatives, 3)
}
