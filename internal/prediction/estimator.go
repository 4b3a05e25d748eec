package prediction

import (
	"math"

	"github.com/mstratford/fpl-advisor/internal/models"
)

// Predictor converts per-player season statistics and fixture metadata into
// expected fantasy points and transfer suggestions. It holds only the fixed
// rule tables; every method is a pure function of its arguments.
type Predictor struct {
	rules Rules
}

// New returns a Predictor using the given scoring rules.
func New(rules Rules) *Predictor {
	return &Predictor{rules: rules}
}

// EstimatePoints computes the expected fantasy points for one player in one
// fixture, composed additively from appearance odds, attacking output,
// defensive returns, bonus potential and card risk, then gated by the
// player's chance of actually playing. The result is clamped to >= 0 and
// rounded to one decimal.
func (p *Predictor) EstimatePoints(player models.Player, fixture models.Fixture) float64 {
	expected := 0.0

	minutes := SafeValue(player.Minutes, 0)
	starts := SafeValue(player.Starts, 0)
	gamesPlayed := 1.0
	if minutes > 0 {
		gamesPlayed = minutes / 90
	}
	startProbability := 0.7
	if gamesPlayed > 0 {
		startProbability = math.Min(starts/gamesPlayed, 1)
	}

	playingChance := startProbability
	if c := player.ChanceOfPlaying; c != nil && *c > 0 {
		playingChance = (*c / 100) * startProbability
	}

	// Appearance points for 60+ minutes
	expected += float64(p.rules.PointsFullGame) * playingChance

	// Form relative to season PPG, capped at 2x upside and 0.8x downside
	form := SafeValue(player.Form, 3)
	ppg := SafeValue(player.PPG, 2)
	formMultiplier := 0.8
	if form > 0 {
		formMultiplier = math.Min(form/ppg, 2)
	}

	attackMult := p.rules.attackMultiplier(fixture.Difficulty)

	xG := SafeValue(player.XGPer90, 0)
	expectedGoals := SafeValue(xG*formMultiplier*attackMult, 0)
	expected += expectedGoals * float64(p.rules.goalPoints(player.Position))

	xA := SafeValue(player.XAPer90, 0)
	expectedAssists := SafeValue(xA*formMultiplier*attackMult, 0)
	expected += expectedAssists * float64(p.rules.Assists)

	bps := SafeValue(player.BPS, 0)
	bpsPerGame := 0.0
	if gamesPlayed > 0 {
		bpsPerGame = bps / gamesPlayed
	}

	defenceMult := p.rules.defenceMultiplier(fixture.Difficulty)

	if player.Position == models.PositionGKP || player.Position == models.PositionDEF {
		// Clean-sheet probability driven by the player's own xGC rate:
		// xGC 0.5 -> ~57%, 1.0 -> ~35%, 1.5 -> ~18%
		rawXGC := SafeValue(player.XGCPer90, 0)
		conceded := SafeValue(player.Conceded, 0)
		xGCPer90 := rawXGC
		if xGCPer90 <= 0 {
			if gamesPlayed > 0 {
				xGCPer90 = conceded / gamesPlayed
			} else {
				xGCPer90 = 0.9
			}
		}

		baseCSProb := math.Max(0.05, math.Min(0.70, 1-xGCPer90*0.65))
		cleanSheetProb := math.Min(0.80, baseCSProb*defenceMult)
		expected += cleanSheetProb * float64(p.rules.CleanSheets[player.Position])

		// Goals-conceded penalty: harder fixtures raise expected GC
		expectedGC := xGCPer90 * (1 / defenceMult)
		expected += math.Floor(expectedGC/2) * float64(p.rules.GoalsConceded[player.Position])
	}

	if player.Position == models.PositionMID {
		midCSProb := math.Max(0.03, 0.28*defenceMult)
		expected += midCSProb * float64(p.rules.CleanSheets[models.PositionMID])
	}

	// Bonus points: BPS above ~30 per game regularly earns bonus
	bonusProb := math.Min(bpsPerGame/40, 0.8)
	expected += bonusProb * 2

	if player.Position == models.PositionGKP {
		// Saves per start rather than per 90 to avoid double-counting
		totalSaves := SafeValue(player.Saves, 0)
		savesPerGame := SafeValue(player.SavesPer90, 0)
		if starts > 0 {
			savesPerGame = totalSaves / starts
		}
		expectedSaves := savesPerGame * p.rules.saveMultiplier(fixture.Difficulty) * playingChance
		expected += math.Floor(expectedSaves/float64(p.rules.SavesPerPoint)) * float64(p.rules.SavePoints)

		// Penalty save expectation, ~2.5% baseline per game
		penaltiesSaved := SafeValue(player.PenaltySaved, 0)
		penSaveProb := 0.025
		if penaltiesSaved > 0 {
			penSaveProb = math.Min(0.08, (penaltiesSaved/math.Max(1, gamesPlayed))*0.5)
		}
		expected += penSaveProb * float64(p.rules.PenaltySaved)

		// Defensive BPS credit for keepers (saves, sweeping)
		if bpsPerGame > 28 {
			expected += 1.5
		} else if bpsPerGame > 20 {
			expected += 0.8
		}
	}

	if player.Position == models.PositionDEF {
		// BPS captures tackles, interceptions, clearances
		if bpsPerGame > 30 {
			expected += 1.2
		} else if bpsPerGame > 22 {
			expected += 0.6
		} else if bpsPerGame > 15 {
			expected += 0.2
		}
	}

	if SafeValue(player.PenaltyOrder, 99) == 1 {
		// First-choice penalty taker
		expected += 0.3
	}

	yellowCards := SafeValue(player.YellowCards, 0)
	if gamesPlayed > 0 {
		expected += (yellowCards / gamesPlayed) * float64(p.rules.YellowCard)
	}

	// Final appearance gate
	final := expected * playingChance
	if math.IsNaN(final) || final < 0 {
		return 0
	}
	return round1(final)
}
