package prediction

import (
	"sort"

	"github.com/mstratford/fpl-advisor/internal/models"
)

// SuggestCaptain ranks the roster by next-fixture expected points and
// returns the captain, vice-captain and up to three further alternatives.
func (p *Predictor) SuggestCaptain(roster []models.Player, fixturesByTeam map[int][]models.Fixture) models.CaptainSuggestion {
	predictions := p.ProjectTeam(roster, fixturesByTeam)

	sort.SliceStable(predictions, func(i, j int) bool {
		return predictions[i].ExpectedPoints > predictions[j].ExpectedPoints
	})

	var suggestion models.CaptainSuggestion
	if len(predictions) > 0 {
		suggestion.Captain = &predictions[0]
	}
	if len(predictions) > 1 {
		suggestion.ViceCaptain = &predictions[1]
	}
	if len(predictions) > 2 {
		end := 5
		if end > len(predictions) {
			end = len(predictions)
		}
		suggestion.Alternatives = predictions[2:end]
	}
	return suggestion
}
