package models

import "time"

// Fixture describes one upcoming match from the perspective of a player's
// team. Difficulty is the FDR rating, 1 (easiest) to 5 (hardest).
type Fixture struct {
	Opponent   string    `json:"opponent"`
	IsHome     bool      `json:"is_home"`
	Difficulty int       `json:"difficulty"`
	Kickoff    time.Time `json:"kickoff_time"`
}

// PredictionResult pairs a fixture with the expected points for it,
// rounded to one decimal place and never negative.
type PredictionResult struct {
	Fixture        Fixture `json:"fixture"`
	ExpectedPoints float64 `json:"expected_points"`
}

// TeamPrediction is one roster player's expected points for their next
// fixture. Used by captain suggestion and the team view.
type TeamPrediction struct {
	Player         Player  `json:"player"`
	ExpectedPoints float64 `json:"expected_points"`
}

// CaptainSuggestion ranks the roster by next-fixture expected points.
type CaptainSuggestion struct {
	Captain      *TeamPrediction  `json:"captain"`
	ViceCaptain  *TeamPrediction  `json:"vice_captain"`
	Alternatives []TeamPrediction `json:"alternatives"`
}
