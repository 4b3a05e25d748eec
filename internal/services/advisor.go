package services

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/mstratford/fpl-advisor/internal/fpl"
	"github.com/mstratford/fpl-advisor/internal/models"
	"github.com/mstratford/fpl-advisor/internal/prediction"
)

const projectionWorkers = 8

// AdvisorService orchestrates one evaluation at a time: it loads the player
// pool and fixture snapshot once, then runs every projection against that
// same state so suggestions within a response never mix gameweek views.
type AdvisorService struct {
	client    *fpl.Client
	predictor *prediction.Predictor
	logger    *logrus.Logger
	horizon   int
}

// PlayerDetail is a player enriched with computed quality metrics.
type PlayerDetail struct {
	models.Player
	QualityScore float64 `json:"quality_score"`
	ValueScore   float64 `json:"value_score"`
	FormTrend    string  `json:"form_trend"`
}

// PlayerProjection pairs a player with per-fixture expected points.
type PlayerProjection struct {
	Player      PlayerDetail              `json:"player"`
	Predictions []models.PredictionResult `json:"predictions"`
	Total       float64                   `json:"total_expected_points"`
}

// TeamOutlook is the manager's roster with next-fixture expected points.
type TeamOutlook struct {
	EntryID     int                     `json:"entry_id"`
	Gameweek    int                     `json:"gameweek"`
	Predictions []models.TeamPrediction `json:"predictions"`
	Total       float64                 `json:"total_expected_points"`
}

// evaluation is one consistent snapshot of upstream state.
type evaluation struct {
	players        []models.Player
	fixturesByTeam map[int][]models.Fixture
	gameweek       int
}

func NewAdvisorService(client *fpl.Client, predictor *prediction.Predictor, logger *logrus.Logger, horizon int) *AdvisorService {
	if horizon <= 0 {
		horizon = 5
	}
	return &AdvisorService{
		client:    client,
		predictor: predictor,
		logger:    logger,
		horizon:   horizon,
	}
}

func (s *AdvisorService) load(ctx context.Context) (*evaluation, error) {
	bootstrap, err := s.client.GetBootstrap(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load players: %w", err)
	}
	fixturesByTeam, err := s.client.FixturesByTeam(ctx, s.horizon)
	if err != nil {
		return nil, fmt.Errorf("failed to load fixtures: %w", err)
	}
	return &evaluation{
		players:        fpl.MapBootstrap(bootstrap),
		fixturesByTeam: fixturesByTeam,
		gameweek:       fpl.CurrentGameweek(bootstrap),
	}, nil
}

func (s *AdvisorService) detail(player models.Player) PlayerDetail {
	return PlayerDetail{
		Player:       player,
		QualityScore: s.predictor.ScorePlayer(player),
		ValueScore:   s.predictor.ValueScore(player),
		FormTrend:    s.predictor.FormTrend(player),
	}
}

// Players returns the full pool with quality metrics, best score first.
// Position and team filters are optional (empty string matches all).
func (s *AdvisorService) Players(ctx context.Context, position, team string) ([]PlayerDetail, error) {
	eval, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]PlayerDetail, 0, len(eval.players))
	for _, player := range eval.players {
		if position != "" && player.Position != position {
			continue
		}
		if team != "" && player.Team != team {
			continue
		}
		details = append(details, s.detail(player))
	}
	sort.SliceStable(details, func(i, j int) bool {
		return details[i].QualityScore > details[j].QualityScore
	})
	return details, nil
}

// Player returns one player with quality metrics.
func (s *AdvisorService) Player(ctx context.Context, playerID int) (*PlayerDetail, error) {
	eval, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, player := range eval.players {
		if player.ID == playerID {
			detail := s.detail(player)
			return &detail, nil
		}
	}
	return nil, fmt.Errorf("player %d not found", playerID)
}

// Projections returns per-fixture expected points for one player over the
// configured horizon.
func (s *AdvisorService) Projections(ctx context.Context, playerID int) (*PlayerProjection, error) {
	eval, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, player := range eval.players {
		if player.ID != playerID {
			continue
		}
		fixtures := eval.fixturesByTeam[player.TeamID]
		return &PlayerProjection{
			Player:      s.detail(player),
			Predictions: s.predictor.Project(player, fixtures),
			Total:       s.predictor.ProjectTotal(player, fixtures),
		}, nil
	}
	return nil, fmt.Errorf("player %d not found", playerID)
}

// TopProjections scores the whole pool over the horizon in parallel and
// returns the best n players by total expected points. Workers only compute
// per-player projections; aggregation happens after they all finish.
func (s *AdvisorService) TopProjections(ctx context.Context, position string, n int) ([]PlayerProjection, error) {
	eval, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	if n <= 0 {
		n = 20
	}

	pool := make([]models.Player, 0, len(eval.players))
	for _, player := range eval.players {
		if position != "" && player.Position != position {
			continue
		}
		pool = append(pool, player)
	}

	projections := make([]PlayerProjection, len(pool))
	sem := make(chan struct{}, projectionWorkers)
	var wg sync.WaitGroup
	for i, player := range pool {
		wg.Add(1)
		go func(i int, player models.Player) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			fixtures := eval.fixturesByTeam[player.TeamID]
			projections[i] = PlayerProjection{
				Player:      s.detail(player),
				Predictions: s.predictor.Project(player, fixtures),
				Total:       s.predictor.ProjectTotal(player, fixtures),
			}
		}(i, player)
	}
	wg.Wait()

	sort.SliceStable(projections, func(i, j int) bool {
		return projections[i].Total > projections[j].Total
	})
	if len(projections) > n {
		projections = projections[:n]
	}
	return projections, nil
}

// Team returns the manager's roster with next-fixture expected points.
func (s *AdvisorService) Team(ctx context.Context, entryID int) (*TeamOutlook, error) {
	eval, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	roster, err := s.client.Roster(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}

	predictions := s.predictor.ProjectTeam(roster, eval.fixturesByTeam)
	var total float64
	for _, p := range predictions {
		total += p.ExpectedPoints
	}

	return &TeamOutlook{
		EntryID:     entryID,
		Gameweek:    eval.gameweek,
		Predictions: predictions,
		Total:       total,
	}, nil
}

// Transfers suggests replacements for the manager's squad within budget.
func (s *AdvisorService) Transfers(ctx context.Context, entryID int, budget float64) ([]models.TransferCandidate, error) {
	eval, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	roster, err := s.client.Roster(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}

	candidates := s.predictor.FindTransfers(roster, eval.players, budget, eval.fixturesByTeam)
	s.logger.WithFields(logrus.Fields{
		"entry":      entryID,
		"budget":     budget,
		"candidates": len(candidates),
	}).Info("Evaluated transfer suggestions")
	return candidates, nil
}

// Captain ranks the manager's roster for the armband.
func (s *AdvisorService) Captain(ctx context.Context, entryID int) (*models.CaptainSuggestion, error) {
	eval, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	roster, err := s.client.Roster(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}

	suggestion := s.predictor.SuggestCaptain(roster, eval.fixturesByTeam)
	return &suggestion, nil
}

// Gameweek reports the current event id.
func (s *AdvisorService) Gameweek(ctx context.Context) (int, error) {
	bootstrap, err := s.client.GetBootstrap(ctx)
	if err != nil {
		return 0, err
	}
	return fpl.CurrentGameweek(bootstrap), nil
}
