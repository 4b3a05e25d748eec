package prediction

import (
	"math"
	"sort"

	"github.com/mstratford/fpl-advisor/internal/models"
)

// Per-position suggestion quotas.
var positionLimits = map[string]int{
	models.PositionGKP: 2,
	models.PositionDEF: 3,
	models.PositionMID: 3,
	models.PositionFWD: 3,
}

var positionOrder = []string{
	models.PositionGKP,
	models.PositionDEF,
	models.PositionMID,
	models.PositionFWD,
}

type scoredPlayer struct {
	models.Player
	score float64
}

type scoredIncumbent struct {
	models.Player
	score    float64
	expected float64
}

// FindTransfers searches the candidate pool for upgrades over the weakest
// incumbents in each position group, bounded by budget and availability.
// fixturesByTeam is one immutable snapshot of upcoming fixtures keyed by
// team ID; every projection in the evaluation reads from it. Output is
// position-major (GKP, DEF, MID, FWD) and every candidate carries an
// expected points gain of at least 1.0 over the fixture horizon.
func (p *Predictor) FindTransfers(roster, pool []models.Player, budget float64, fixturesByTeam map[int][]models.Fixture) []models.TransferCandidate {
	onRoster := make(map[int]bool, len(roster))
	for _, player := range roster {
		onRoster[player.ID] = true
	}

	// Score every available player not already owned
	candidates := make([]scoredPlayer, 0, len(pool))
	for _, player := range pool {
		if onRoster[player.ID] || !player.Available() {
			continue
		}
		candidates = append(candidates, scoredPlayer{
			Player: player,
			score:  p.ScorePlayer(player),
		})
	}

	// Score and project the current squad once up front
	incumbents := make([]scoredIncumbent, 0, len(roster))
	for _, player := range roster {
		incumbents = append(incumbents, scoredIncumbent{
			Player:   player,
			score:    p.ScorePlayer(player),
			expected: p.ProjectTotal(player, fixturesByTeam[player.TeamID]),
		})
	}

	byPosition := make(map[string][]models.TransferCandidate, len(positionOrder))

	for _, position := range positionOrder {
		var inPosition []scoredIncumbent
		for _, inc := range incumbents {
			if inc.Position == position {
				inPosition = append(inPosition, inc)
			}
		}
		if len(inPosition) == 0 {
			continue
		}
		sort.SliceStable(inPosition, func(i, j int) bool {
			return inPosition[i].score < inPosition[j].score
		})

		// Consider swapping out the weakest 60% of the position group
		weakestCount := int(math.Max(1, math.Ceil(float64(len(inPosition))*0.6)))
		options := make([]models.TransferCandidate, 0, weakestCount*5)

		for _, incumbent := range inPosition[:weakestCount] {
			replacements := p.filterReplacements(candidates, incumbent, position, budget, true)
			if len(replacements) > 5 {
				replacements = replacements[:5]
			}
			for _, replacement := range replacements {
				options = append(options, p.buildCandidate(incumbent, replacement, fixturesByTeam))
			}
		}

		sort.SliceStable(options, func(i, j int) bool {
			return options[i].TransferPriority > options[j].TransferPriority
		})

		// Relaxed fallback when the strict pass produced too few options.
		// Incumbents already matched above must not be reused.
		if len(options) < 3 {
			used := make(map[int]bool, len(options))
			for _, opt := range options {
				used[opt.Out.ID] = true
			}
			for _, incumbent := range inPosition {
				if len(options) >= 3 {
					break
				}
				if used[incumbent.ID] {
					continue
				}
				replacements := p.filterReplacements(candidates, incumbent, position, budget+1.5, false)
				if len(replacements) == 0 {
					continue
				}
				option := p.buildCandidate(incumbent, replacements[0], fixturesByTeam)
				if option.ExpectedPointsGain < 1.0 {
					continue
				}
				options = append(options, option)
			}
		}

		if limit := positionLimits[position]; len(options) > limit {
			options = options[:limit]
		}
		byPosition[position] = options
	}

	var all []models.TransferCandidate
	for _, position := range positionOrder {
		for _, option := range byPosition[position] {
			if option.ExpectedPointsGain >= 1.0 {
				all = append(all, option)
			}
		}
	}
	return all
}

// filterReplacements returns same-position candidates within budget that
// beat the incumbent's quality threshold, best score first. The strict pass
// additionally requires a 75% chance of playing.
func (p *Predictor) filterReplacements(candidates []scoredPlayer, incumbent scoredIncumbent, position string, budget float64, strict bool) []scoredPlayer {
	threshold := 0.8
	if strict {
		threshold = 0.85
	}
	maxPrice := SafeValue(incumbent.Price, 0) + budget

	var eligible []scoredPlayer
	for _, candidate := range candidates {
		if candidate.Position != position {
			continue
		}
		if SafeValue(candidate.Price, 0) > maxPrice {
			continue
		}
		if strict {
			chance := 100.0
			if c := candidate.ChanceOfPlaying; c != nil && *c != 0 {
				chance = *c
			}
			if chance < 75 {
				continue
			}
		}
		if candidate.score > incumbent.score*threshold {
			eligible = append(eligible, candidate)
		}
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].score > eligible[j].score
	})
	return eligible
}

func (p *Predictor) buildCandidate(incumbent scoredIncumbent, replacement scoredPlayer, fixturesByTeam map[int][]models.Fixture) models.TransferCandidate {
	replacementExpected := p.ProjectTotal(replacement.Player, fixturesByTeam[replacement.TeamID])
	pointsGain := replacementExpected - SafeValue(incumbent.expected, 0)
	scoreDiff := replacement.score - incumbent.score

	return models.TransferCandidate{
		Out:                incumbent.Player,
		In:                 replacement.Player,
		Cost:               SafeValue(replacement.Price, 0) - SafeValue(incumbent.Price, 0),
		ExpectedPointsGain: round1(pointsGain),
		ScoreDifference:    round1(scoreDiff),
		TransferPriority:   round1(scoreDiff + pointsGain),
		Reason:             p.TransferReason(incumbent.Player, replacement.Player),
		Position:           incumbent.Position,
	}
}
