package prediction

import (
	"fmt"
	"math"
	"strings"

	"github.com/mstratford/fpl-advisor/internal/models"
)

const fallbackReason = "Statistical upgrade based on xG, xA, and BPS metrics"

// TransferReason derives a short justification for swapping out for in,
// from the same statistics used to rank the pair. The first three triggered
// observations are joined with "; "; a generic message covers the rest.
func (p *Predictor) TransferReason(out, in models.Player) string {
	var reasons []string

	outForm := SafeValue(out.Form, 0)
	inForm := SafeValue(in.Form, 0)
	outPPG := SafeValue(out.PPG, 0)
	inPPG := SafeValue(in.PPG, 0)
	outXGI := SafeValue(out.XGIPer90, 0)
	inXGI := SafeValue(in.XGIPer90, 0)
	outBPS := SafeValue(out.BPS, 0)
	inBPS := SafeValue(in.BPS, 0)
	outMinutes := SafeValue(out.Minutes, 0)
	inMinutes := SafeValue(in.Minutes, 0)
	inSelectedBy := SafeValue(in.SelectedBy, 0)

	outChance := 100.0
	if c := out.ChanceOfPlaying; c != nil && *c != 0 {
		outChance = *c
	}

	if out.Position == models.PositionDEF || out.Position == models.PositionGKP {
		outXGC := SafeValue(out.XGCPer90, 0)
		inXGC := SafeValue(in.XGCPer90, 0)
		outStarts := math.Max(1, SafeValue(out.Starts, 1))
		inStarts := math.Max(1, SafeValue(in.Starts, 1))
		outCSRate := SafeValue(out.CleanSheets, 0) / outStarts
		inCSRate := SafeValue(in.CleanSheets, 0) / inStarts

		if outXGC > 0 && inXGC > 0 && inXGC < outXGC*0.80 {
			reasons = append(reasons, fmt.Sprintf("Better defensive record (xGC/90: %.2f vs %.2f)", inXGC, outXGC))
		}
		if inCSRate > outCSRate+0.10 {
			reasons = append(reasons, fmt.Sprintf("Higher clean sheet rate (%.0f%% vs %.0f%%)", inCSRate*100, outCSRate*100))
		}
		if out.Position == models.PositionGKP {
			outSavesPerGame := SafeValue(out.Saves, 0) / outStarts
			inSavesPerGame := SafeValue(in.Saves, 0) / inStarts
			if inSavesPerGame > outSavesPerGame*1.2 && inSavesPerGame > 3 {
				reasons = append(reasons, fmt.Sprintf("More saves per game (%.1f vs %.1f)", inSavesPerGame, outSavesPerGame))
			}
			if inMinutes > outMinutes*1.15 && inMinutes > 900 {
				reasons = append(reasons, fmt.Sprintf("More reliable starter (%.0f vs %.0f mins)", inMinutes, outMinutes))
			}
		}
	}

	if outForm < 3 {
		reasons = append(reasons, fmt.Sprintf("%s poor form (%.1f)", out.Name, outForm))
	}
	if inForm > 6 {
		reasons = append(reasons, fmt.Sprintf("%s excellent form (%.1f)", in.Name, inForm))
	}
	if outChance < 75 {
		reasons = append(reasons, "Injury/rotation risk")
	}
	if inPPG > outPPG+1.5 {
		reasons = append(reasons, fmt.Sprintf("Better PPG: %.1f vs %.1f", inPPG, outPPG))
	}
	if inXGI > outXGI*1.3 && inXGI > 0.1 {
		reasons = append(reasons, fmt.Sprintf("Higher xGI per 90: %.2f vs %.2f", inXGI, outXGI))
	}

	inBPSPerGame := 0.0
	if inMinutes > 0 {
		inBPSPerGame = inBPS / (inMinutes / 90)
	}
	outBPSPerGame := 0.0
	if outMinutes > 0 {
		outBPSPerGame = outBPS / (outMinutes / 90)
	}
	if inBPSPerGame > outBPSPerGame*1.2 && inBPSPerGame > 20 {
		reasons = append(reasons, "Better bonus potential")
	}

	if outMinutes < 500 && inMinutes > 1000 {
		reasons = append(reasons, "More nailed-on starter")
	}
	if inSelectedBy < 10 && inForm > 5 {
		reasons = append(reasons, fmt.Sprintf("Differential pick (%.1f%% TSB)", inSelectedBy))
	}

	inPrice := SafeValue(in.Price, 1)
	outPrice := SafeValue(out.Price, 1)
	if inPrice == 0 {
		inPrice = 1
	}
	if outPrice == 0 {
		outPrice = 1
	}
	if inPPG/inPrice > (outPPG/outPrice)*1.2 {
		reasons = append(reasons, "Better value")
	}

	if len(reasons) == 0 {
		return fallbackReason
	}
	if len(reasons) > 3 {
		reasons = reasons[:3]
	}
	return strings.Join(reasons, "; ")
}
