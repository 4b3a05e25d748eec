package prediction

// Rules consolidates every FPL scoring constant and fixture-difficulty
// multiplier the model uses. All formulas read from one shared value so a
// recalibration is a single-point change.
type Rules struct {
	// Minutes played
	MinutesThreshold int
	PointsFullGame   int
	PointsShortGame  int

	// Point values keyed by position
	Goals         map[string]int
	Assists       int
	CleanSheets   map[string]int
	GoalsConceded map[string]int // per 2 goals conceded, negative

	// Goalkeeper saves: 1 point per 3 saves
	SavePoints    int
	SavesPerPoint int

	Bonus         int
	PenaltySaved  int
	PenaltyMissed int
	YellowCard    int
	RedCard       int
	OwnGoal       int

	// Fixture-difficulty multipliers, keyed by FDR 1-5. The three tables
	// are calibrated independently; they must not be merged.
	AttackMultipliers  map[int]float64
	DefenceMultipliers map[int]float64
	SaveMultipliers    map[int]float64
}

// DefaultRules returns the calibrated 2023/24 FPL scoring configuration.
func DefaultRules() Rules {
	return Rules{
		MinutesThreshold: 60,
		PointsFullGame:   2,
		PointsShortGame:  1,

		Goals: map[string]int{
			"GKP": 6,
			"DEF": 6,
			"MID": 5,
			"FWD": 4,
		},
		Assists: 3,
		CleanSheets: map[string]int{
			"GKP": 6,
			"DEF": 6,
			"MID": 1,
			"FWD": 0,
		},
		GoalsConceded: map[string]int{
			"GKP": -1,
			"DEF": -1,
			"MID": 0,
			"FWD": 0,
		},

		SavePoints:    1,
		SavesPerPoint: 3,

		Bonus:         1,
		PenaltySaved:  5,
		PenaltyMissed: -2,
		YellowCard:    -1,
		RedCard:       -3,
		OwnGoal:       -2,

		// Easier fixture raises attacking output and clean-sheet odds but
		// lowers expected save volume.
		AttackMultipliers:  map[int]float64{1: 1.30, 2: 1.15, 3: 1.00, 4: 0.85, 5: 0.70},
		DefenceMultipliers: map[int]float64{1: 1.30, 2: 1.15, 3: 1.00, 4: 0.78, 5: 0.52},
		SaveMultipliers:    map[int]float64{1: 0.75, 2: 0.88, 3: 1.00, 4: 1.18, 5: 1.40},
	}
}

func (r Rules) attackMultiplier(difficulty int) float64 {
	if m, ok := r.AttackMultipliers[difficulty]; ok {
		return m
	}
	return 1.0
}

func (r Rules) defenceMultiplier(difficulty int) float64 {
	if m, ok := r.DefenceMultipliers[difficulty]; ok {
		return m
	}
	return 1.0
}

func (r Rules) saveMultiplier(difficulty int) float64 {
	if m, ok := r.SaveMultipliers[difficulty]; ok {
		return m
	}
	return 1.0
}

func (r Rules) goalPoints(position string) int {
	if pts, ok := r.Goals[position]; ok {
		return pts
	}
	return 4
}
