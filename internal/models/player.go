package models

// Position codes used by the FPL API.
const (
	PositionGKP = "GKP"
	PositionDEF = "DEF"
	PositionMID = "MID"
	PositionFWD = "FWD"
)

// Availability status codes from bootstrap-static ("a" = available,
// "d" = doubtful, "i" = injured, "s" = suspended, "u" = unavailable).
const (
	StatusAvailable = "a"
	StatusDoubtful  = "d"
	StatusInjured   = "i"
	StatusSuspended = "s"
)

// Player is a read-only season statistics record for one FPL player, built
// from the bootstrap-static element by the data layer. Numeric fields that
// the API transmits as strings have already been parsed with a safe default;
// ChanceOfPlaying stays a pointer because the API sends null when a player
// carries no fitness flag.
type Player struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	FullName string `json:"full_name"`
	Team     string `json:"team"`
	TeamID   int    `json:"team_id"`
	Position string `json:"position"`

	Price      float64 `json:"price"`
	Points     int     `json:"points"`
	Form       float64 `json:"form"`
	PPG        float64 `json:"points_per_game"`
	SelectedBy float64 `json:"selected_by"`

	Minutes     float64 `json:"minutes"`
	Starts      float64 `json:"starts"`
	Goals       float64 `json:"goals_scored"`
	Assists     float64 `json:"assists"`
	CleanSheets float64 `json:"clean_sheets"`
	Conceded    float64 `json:"goals_conceded"`
	OwnGoals    float64 `json:"own_goals"`
	Saves       float64 `json:"saves"`
	Bonus       float64 `json:"bonus"`
	BPS         float64 `json:"bps"`
	ICTIndex    float64 `json:"ict_index"`
	YellowCards float64 `json:"yellow_cards"`
	RedCards    float64 `json:"red_cards"`

	XGPer90       float64 `json:"expected_goals_per_90"`
	XAPer90       float64 `json:"expected_assists_per_90"`
	XGIPer90      float64 `json:"expected_goal_involvements_per_90"`
	XGCPer90      float64 `json:"expected_goals_conceded_per_90"`
	SavesPer90    float64 `json:"saves_per_90"`
	PenaltyOrder  float64 `json:"penalties_order"`
	PenaltySaved  float64 `json:"penalties_saved"`
	PenaltyMissed float64 `json:"penalties_missed"`

	Status          string   `json:"status"`
	News            string   `json:"news"`
	ChanceOfPlaying *float64 `json:"chance_of_playing_next_round"`
}

// Available reports whether the player is flagged as fully available.
func (p Player) Available() bool {
	return p.Status == StatusAvailable
}
