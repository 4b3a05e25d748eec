package prediction

import (
	"math"

	"github.com/mstratford/fpl-advisor/internal/models"
)

// ScorePlayer computes the composite quality score summarizing a player's
// underlying output independent of any single fixture. The blend is 40%
// form/PPG, 30% position-specific expected stats, 20% BPS/ICT, 10% bonus,
// then dampened for low minutes, rotation risk and fitness doubts.
func (p *Predictor) ScorePlayer(player models.Player) float64 {
	form := SafeValue(player.Form, 3)
	ppg := SafeValue(player.PPG, 2)
	minutes := SafeValue(player.Minutes, 0)
	xGPer90 := SafeValue(player.XGPer90, 0)
	xAPer90 := SafeValue(player.XAPer90, 0)
	xGIPer90 := SafeValue(player.XGIPer90, 0)
	bps := SafeValue(player.BPS, 0)
	ictIndex := SafeValue(player.ICTIndex, 0)
	starts := SafeValue(player.Starts, 0)
	bonus := SafeValue(player.Bonus, 0)

	gamesPlayed := 1.0
	if minutes > 0 {
		gamesPlayed = minutes / 90
	}
	minutesFactor := math.Min(minutes/1000, 1.5)

	startProbability := 0.5
	if gamesPlayed > 0 {
		startProbability = starts / gamesPlayed
	}

	score := (form*3 + ppg*2) * 0.4

	switch player.Position {
	case models.PositionGKP:
		cleanSheets := SafeValue(player.CleanSheets, 0)
		totalSaves := SafeValue(player.Saves, 0)
		xGCPer90 := SafeValue(player.XGCPer90, 0)

		// CS per start is the primary goalkeeper earner (6 pts each)
		csPerStart := 0.0
		if starts > 0 {
			csPerStart = cleanSheets / starts
		} else if gamesPlayed > 0 {
			csPerStart = cleanSheets / gamesPlayed
		}
		csScore := csPerStart * 38

		// Save volume indicates bonus potential and workload
		savesPerStart := 0.0
		if starts > 0 {
			savesPerStart = totalSaves / starts
		}
		savesScore := math.Min(28, savesPerStart*3.2)

		// Lower xGC = better defensive team behind the keeper
		defenceScore := 5.0
		if xGCPer90 > 0 {
			defenceScore = math.Max(0, (1.8-xGCPer90)*10)
		}

		// Minutes reliability rewards nailed-on starters over backups
		minutesScore := math.Min(12, (minutes/2700)*12)

		score += csScore*0.38 + savesScore*0.28 + defenceScore*0.20 + minutesScore*0.14

	case models.PositionDEF:
		xGCPer90 := SafeValue(player.XGCPer90, 0)
		conceded := SafeValue(player.Conceded, 0)
		effectiveXGC := xGCPer90
		if effectiveXGC <= 0 {
			effectiveXGC = 1.0
			if gamesPlayed > 0 {
				effectiveXGC = conceded / gamesPlayed
			}
		}
		defenceScore := math.Max(0, (1.8-effectiveXGC)*18)

		cleanSheets := SafeValue(player.CleanSheets, 0)
		csRatio := 0.0
		if starts > 0 {
			csRatio = cleanSheets / starts
		}
		csScore := csRatio * 30

		// BPS per game proxies tackles, clearances, interceptions
		bpsPerGame := 0.0
		if gamesPlayed > 0 {
			bpsPerGame = bps / gamesPlayed
		}
		bpsScore := math.Min(20, bpsPerGame*0.55)

		// xGI still matters for attacking defenders
		attackScore := xGIPer90 * 12

		score += defenceScore*0.30 + csScore*0.30 + bpsScore*0.25 + attackScore*0.15

	case models.PositionMID:
		score += (xGIPer90 * 20) * 0.3

	default: // FWD
		score += (xGPer90*25 + xAPer90*10) * 0.3
	}

	bpsPerGame := 0.0
	ictPerGame := 0.0
	bonusPerGame := 0.0
	if gamesPlayed > 0 {
		bpsPerGame = bps / gamesPlayed
		ictPerGame = ictIndex / gamesPlayed
		bonusPerGame = bonus / gamesPlayed
	}
	score += (bpsPerGame/10 + ictPerGame/20) * 0.2
	score += bonusPerGame * 1.5 * 0.1

	score *= minutesFactor
	score *= 0.5 + startProbability*0.5 // rotation-risk discount

	chance := 100.0
	if player.ChanceOfPlaying != nil {
		chance = SafeValue(*player.ChanceOfPlaying, 100)
	}
	if chance < 100 {
		score *= chance / 100
	}

	return math.Max(0, score)
}

// FormTrend compares short-term form to the season average.
func (p *Predictor) FormTrend(player models.Player) string {
	form := SafeValue(player.Form, 0)
	ppg := SafeValue(player.PPG, 0)

	switch {
	case form > ppg+1:
		return "Rising"
	case form < ppg-1:
		return "Falling"
	default:
		return "Stable"
	}
}

// ValueScore is season points per million, one decimal.
func (p *Predictor) ValueScore(player models.Player) float64 {
	price := SafeValue(player.Price, 1)
	if price == 0 {
		return 0
	}
	score := float64(player.Points) / price * 10
	return SafeValue(math.Round(score)/10, 0)
}
