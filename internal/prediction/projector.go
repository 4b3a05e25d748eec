package prediction

import "github.com/mstratford/fpl-advisor/internal/models"

// Project applies the points estimator to each of the player's upcoming
// fixtures independently. The fixture slice is one immutable snapshot; no
// state carries over between fixtures.
func (p *Predictor) Project(player models.Player, fixtures []models.Fixture) []models.PredictionResult {
	if len(fixtures) == 0 {
		return nil
	}

	results := make([]models.PredictionResult, 0, len(fixtures))
	for _, fixture := range fixtures {
		results = append(results, models.PredictionResult{
			Fixture:        fixture,
			ExpectedPoints: p.EstimatePoints(player, fixture),
		})
	}
	return results
}

// ProjectTotal sums the per-fixture expected points over the horizon,
// rounded to one decimal. An empty fixture list yields 0.
func (p *Predictor) ProjectTotal(player models.Player, fixtures []models.Fixture) float64 {
	total := 0.0
	for _, result := range p.Project(player, fixtures) {
		total += SafeValue(result.ExpectedPoints, 0)
	}
	return round1(total)
}

// ProjectTeam computes each roster player's expected points for their next
// fixture, looking fixtures up by team from the supplied snapshot. Players
// whose team has no upcoming fixture get 0.
func (p *Predictor) ProjectTeam(roster []models.Player, fixturesByTeam map[int][]models.Fixture) []models.TeamPrediction {
	if len(roster) == 0 {
		return nil
	}

	predictions := make([]models.TeamPrediction, 0, len(roster))
	for _, player := range roster {
		expected := 0.0
		if fixtures := fixturesByTeam[player.TeamID]; len(fixtures) > 0 {
			expected = p.EstimatePoints(player, fixtures[0])
		}
		predictions = append(predictions, models.TeamPrediction{
			Player:         player,
			ExpectedPoints: expected,
		})
	}
	return predictions
}
