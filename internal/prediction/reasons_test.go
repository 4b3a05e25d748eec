package prediction

import (
	"strings"
	"testing"

	"github.com/mstratford/fpl-advisor/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestTransferReasonPoorForm(t *testing.T) {
	p := New(DefaultRules())

	out := models.Player{Name: "Maddison", Position: models.PositionMID, Form: 1.8, PPG: 4.0, Price: 7.5, Minutes: 1400}
	in := models.Player{Name: "Gordon", Position: models.PositionMID, Form: 4.5, PPG: 4.2, Price: 6.5, Minutes: 1500}

	reason := p.TransferReason(out, in)
	assert.Contains(t, reason, "Maddison poor form (1.8)")
}

func TestTransferReasonExcellentForm(t *testing.T) {
	p := New(DefaultRules())

	out := models.Player{Name: "Out", Position: models.PositionFWD, Form: 4.0, PPG: 4.0, Price: 7.0, Minutes: 1500}
	in := models.Player{Name: "Haaland", Position: models.PositionFWD, Form: 8.9, PPG: 7.2, Price: 14.0, Minutes: 1600}

	reason := p.TransferReason(out, in)
	assert.Contains(t, reason, "Haaland excellent form (8.9)")
}

func TestTransferReasonInjuryRisk(t *testing.T) {
	p := New(DefaultRules())

	out := models.Player{Name: "Out", Position: models.PositionMID, Form: 4.0, PPG: 4.0, Price: 7.0, Minutes: 1500, ChanceOfPlaying: chance(25)}
	in := models.Player{Name: "In", Position: models.PositionMID, Form: 4.0, PPG: 4.0, Price: 7.0, Minutes: 1500}

	assert.Contains(t, p.TransferReason(out, in), "Injury/rotation risk")
}

func TestTransferReasonDefensiveUpgrade(t *testing.T) {
	p := New(DefaultRules())

	out := models.Player{
		Name: "Out", Position: models.PositionDEF, Form: 3.5, PPG: 3.5, Price: 5.0,
		Minutes: 1800, Starts: 20, CleanSheets: 3, XGCPer90: 1.60,
	}
	in := models.Player{
		Name: "In", Position: models.PositionDEF, Form: 4.0, PPG: 4.0, Price: 5.2,
		Minutes: 1800, Starts: 20, CleanSheets: 10, XGCPer90: 0.90,
	}

	reason := p.TransferReason(out, in)
	assert.Contains(t, reason, "Better defensive record (xGC/90: 0.90 vs 1.60)")
	assert.Contains(t, reason, "Higher clean sheet rate (50% vs 15%)")
}

func TestTransferReasonKeeperSpecific(t *testing.T) {
	p := New(DefaultRules())

	out := models.Player{
		Name: "Out", Position: models.PositionGKP, Form: 3.5, PPG: 3.5, Price: 4.5,
		Minutes: 450, Starts: 5, Saves: 10,
	}
	in := models.Player{
		Name: "In", Position: models.PositionGKP, Form: 4.0, PPG: 4.0, Price: 4.8,
		Minutes: 2700, Starts: 30, Saves: 120,
	}

	reason := p.TransferReason(out, in)
	assert.Contains(t, reason, "More saves per game (4.0 vs 2.0)")
	assert.Contains(t, reason, "More reliable starter (2700 vs 450 mins)")
}

func TestTransferReasonDifferentialPick(t *testing.T) {
	p := New(DefaultRules())

	out := models.Player{Name: "Out", Position: models.PositionMID, Form: 4.0, PPG: 4.0, Price: 7.0, Minutes: 1500}
	in := models.Player{Name: "In", Position: models.PositionMID, Form: 5.6, PPG: 4.2, Price: 6.8, Minutes: 1500, SelectedBy: 3.4}

	assert.Contains(t, p.TransferReason(out, in), "Differential pick (3.4% TSB)")
}

func TestTransferReasonAtMostThree(t *testing.T) {
	p := New(DefaultRules())

	// A swap that trips form, availability, PPG, xGI and value triggers
	out := models.Player{
		Name: "Out", Position: models.PositionMID, Form: 1.0, PPG: 2.0, Price: 8.0,
		Minutes: 400, XGIPer90: 0.1, ChanceOfPlaying: chance(50),
	}
	in := models.Player{
		Name: "In", Position: models.PositionMID, Form: 7.5, PPG: 6.0, Price: 8.0,
		Minutes: 2400, XGIPer90: 0.8, BPS: 700, SelectedBy: 5.0,
	}

	reason := p.TransferReason(out, in)
	assert.Len(t, strings.Split(reason, "; "), 3)
}

func TestTransferReasonFallback(t *testing.T) {
	p := New(DefaultRules())

	// Statistically indistinguishable players trip no trigger
	player := models.Player{Name: "Same", Position: models.PositionMID, Form: 4.0, PPG: 4.0, Price: 7.0, Minutes: 1500}
	assert.Equal(t, fallbackReason, p.TransferReason(player, player))
}
