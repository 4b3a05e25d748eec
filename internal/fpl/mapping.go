package fpl

import (
	"context"
	"fmt"
	"sort"

	"github.com/mstratford/fpl-advisor/internal/models"
	"github.com/mstratford/fpl-advisor/internal/prediction"
)

// MapPlayer converts a bootstrap element into the domain record, resolving
// team and position names and parsing the API's string-typed statistics
// through the numeric normalizer.
func MapPlayer(element Element, teams map[int]Team, types map[int]ElementType) models.Player {
	team := teams[element.TeamID].ShortName
	position := types[element.TypeID].SingularNameShort

	var chance *float64
	if element.ChanceOfPlayingNextRound != nil {
		v := float64(*element.ChanceOfPlayingNextRound)
		chance = &v
	}

	penaltyOrder := 0.0
	if element.PenaltiesOrder != nil {
		penaltyOrder = float64(*element.PenaltiesOrder)
	}

	return models.Player{
		ID:       element.ID,
		Name:     element.WebName,
		FullName: fmt.Sprintf("%s %s", element.FirstName, element.SecondName),
		Team:     team,
		TeamID:   element.TeamID,
		Position: position,

		Price:      float64(element.NowCost) / 10,
		Points:     element.TotalPoints,
		Form:       prediction.ParseValue(element.Form, 0),
		PPG:        prediction.ParseValue(element.PPG, 0),
		SelectedBy: prediction.ParseValue(element.SelectedBy, 0),

		Minutes:     float64(element.Minutes),
		Starts:      float64(element.Starts),
		Goals:       float64(element.GoalsScored),
		Assists:     float64(element.Assists),
		CleanSheets: float64(element.CleanSheets),
		Conceded:    float64(element.GoalsConceded),
		OwnGoals:    float64(element.OwnGoals),
		Saves:       float64(element.Saves),
		Bonus:       float64(element.Bonus),
		BPS:         float64(element.BPS),
		ICTIndex:    prediction.ParseValue(element.ICTIndex, 0),
		YellowCards: float64(element.YellowCards),
		RedCards:    float64(element.RedCards),

		XGPer90:       prediction.SafeValue(element.ExpectedGoalsPer90, 0),
		XAPer90:       prediction.SafeValue(element.ExpectedAssistsPer90, 0),
		XGIPer90:      prediction.SafeValue(element.ExpectedGoalInvolvementsPer90, 0),
		XGCPer90:      prediction.SafeValue(element.ExpectedGoalsConcededPer90, 0),
		SavesPer90:    prediction.SafeValue(element.SavesPer90, 0),
		PenaltyOrder:  penaltyOrder,
		PenaltySaved:  float64(element.PenaltiesSaved),
		PenaltyMissed: float64(element.PenaltiesMissed),

		Status:          element.Status,
		News:            element.News,
		ChanceOfPlaying: chance,
	}
}

// Players returns every player in the game as a domain record.
func (c *Client) Players(ctx context.Context) ([]models.Player, error) {
	bootstrap, err := c.GetBootstrap(ctx)
	if err != nil {
		return nil, err
	}
	return MapBootstrap(bootstrap), nil
}

// MapBootstrap converts every element in a bootstrap payload to a domain record.
func MapBootstrap(bootstrap *Bootstrap) []models.Player {
	teams := make(map[int]Team, len(bootstrap.Teams))
	for _, team := range bootstrap.Teams {
		teams[team.ID] = team
	}
	types := make(map[int]ElementType, len(bootstrap.ElementTypes))
	for _, elementType := range bootstrap.ElementTypes {
		types[elementType.ID] = elementType
	}

	players := make([]models.Player, 0, len(bootstrap.Elements))
	for _, element := range bootstrap.Elements {
		players = append(players, MapPlayer(element, teams, types))
	}
	return players
}

// FixturesByTeam builds the per-team upcoming fixture snapshot: the next
// `horizon` unfinished fixtures for every team, ordered by kickoff, with
// the difficulty rating taken from that team's perspective.
func (c *Client) FixturesByTeam(ctx context.Context, horizon int) (map[int][]models.Fixture, error) {
	bootstrap, err := c.GetBootstrap(ctx)
	if err != nil {
		return nil, err
	}
	fixtures, err := c.GetFixtures(ctx)
	if err != nil {
		return nil, err
	}
	return buildFixtureSnapshot(bootstrap, fixtures, horizon), nil
}

func buildFixtureSnapshot(bootstrap *Bootstrap, fixtures []APIFixture, horizon int) map[int][]models.Fixture {
	teams := make(map[int]Team, len(bootstrap.Teams))
	for _, team := range bootstrap.Teams {
		teams[team.ID] = team
	}

	upcoming := make([]APIFixture, 0, len(fixtures))
	for _, fixture := range fixtures {
		if !fixture.Finished && fixture.KickoffTime != nil {
			upcoming = append(upcoming, fixture)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].KickoffTime.Before(*upcoming[j].KickoffTime)
	})

	snapshot := make(map[int][]models.Fixture, len(teams))
	for _, fixture := range upcoming {
		if len(snapshot[fixture.TeamH]) < horizon {
			snapshot[fixture.TeamH] = append(snapshot[fixture.TeamH], models.Fixture{
				Opponent:   teams[fixture.TeamA].ShortName,
				IsHome:     true,
				Difficulty: fixture.TeamHDifficulty,
				Kickoff:    *fixture.KickoffTime,
			})
		}
		if len(snapshot[fixture.TeamA]) < horizon {
			snapshot[fixture.TeamA] = append(snapshot[fixture.TeamA], models.Fixture{
				Opponent:   teams[fixture.TeamH].ShortName,
				IsHome:     false,
				Difficulty: fixture.TeamADifficulty,
				Kickoff:    *fixture.KickoffTime,
			})
		}
	}
	return snapshot
}

// Roster returns the manager's current squad as domain records.
func (c *Client) Roster(ctx context.Context, entryID int) ([]models.Player, error) {
	bootstrap, err := c.GetBootstrap(ctx)
	if err != nil {
		return nil, err
	}

	gameweek := CurrentGameweek(bootstrap)
	picks, err := c.GetPicks(ctx, entryID, gameweek)
	if err != nil {
		return nil, err
	}

	byID := make(map[int]models.Player)
	for _, player := range MapBootstrap(bootstrap) {
		byID[player.ID] = player
	}

	roster := make([]models.Player, 0, len(picks.Picks))
	for _, pick := range picks.Picks {
		player, ok := byID[pick.Element]
		if !ok {
			c.logger.Warnf("Pick references unknown element %d", pick.Element)
			continue
		}
		roster = append(roster, player)
	}
	return roster, nil
}
