package fpl

import "time"

// Raw shapes returned by the FPL API. Most per-season statistics arrive as
// strings ("4.5", "0.00") and are parsed into models.Player by the mapping
// layer; per-90 rates arrive as JSON numbers.

type Bootstrap struct {
	Events       []Event       `json:"events"`
	Teams        []Team        `json:"teams"`
	ElementTypes []ElementType `json:"element_types"`
	Elements     []Element     `json:"elements"`
}

type Event struct {
	ID         int  `json:"id"`
	IsCurrent  bool `json:"is_current"`
	IsNext     bool `json:"is_next"`
	Finished   bool `json:"finished"`
	IsPrevious bool `json:"is_previous"`
}

type Team struct {
	ID        int    `json:"id"`
	Code      int    `json:"code"`
	Name      string `json:"name"`
	ShortName string `json:"short_name"`
}

type ElementType struct {
	ID                int    `json:"id"`
	SingularNameShort string `json:"singular_name_short"`
}

type Element struct {
	ID         int    `json:"id"`
	WebName    string `json:"web_name"`
	FirstName  string `json:"first_name"`
	SecondName string `json:"second_name"`
	TeamID     int    `json:"team"`
	TypeID     int    `json:"element_type"`

	NowCost     int    `json:"now_cost"` // tenths of a million
	TotalPoints int    `json:"total_points"`
	EventPoints int    `json:"event_points"`
	Form        string `json:"form"`
	PPG         string `json:"points_per_game"`
	SelectedBy  string `json:"selected_by_percent"`
	ICTIndex    string `json:"ict_index"`

	Minutes       int `json:"minutes"`
	Starts        int `json:"starts"`
	GoalsScored   int `json:"goals_scored"`
	Assists       int `json:"assists"`
	CleanSheets   int `json:"clean_sheets"`
	GoalsConceded int `json:"goals_conceded"`
	OwnGoals      int `json:"own_goals"`
	YellowCards   int `json:"yellow_cards"`
	RedCards      int `json:"red_cards"`
	Saves         int `json:"saves"`
	Bonus         int `json:"bonus"`
	BPS           int `json:"bps"`

	ExpectedGoalsPer90            float64 `json:"expected_goals_per_90"`
	ExpectedAssistsPer90          float64 `json:"expected_assists_per_90"`
	ExpectedGoalInvolvementsPer90 float64 `json:"expected_goal_involvements_per_90"`
	ExpectedGoalsConcededPer90    float64 `json:"expected_goals_conceded_per_90"`
	SavesPer90                    float64 `json:"saves_per_90"`

	PenaltiesOrder  *int `json:"penalties_order"`
	PenaltiesSaved  int  `json:"penalties_saved"`
	PenaltiesMissed int  `json:"penalties_missed"`

	Status                   string `json:"status"`
	News                     string `json:"news"`
	ChanceOfPlayingNextRound *int   `json:"chance_of_playing_next_round"`
}

type APIFixture struct {
	ID              int        `json:"id"`
	Event           *int       `json:"event"`
	TeamH           int        `json:"team_h"`
	TeamA           int        `json:"team_a"`
	TeamHDifficulty int        `json:"team_h_difficulty"`
	TeamADifficulty int        `json:"team_a_difficulty"`
	KickoffTime     *time.Time `json:"kickoff_time"`
	Finished        bool       `json:"finished"`
}

type Entry struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Picks struct {
	ActiveChip   *string     `json:"active_chip"`
	EntryHistory PickHistory `json:"entry_history"`
	Picks        []Pick      `json:"picks"`
}

type PickHistory struct {
	Event  int `json:"event"`
	Points int `json:"points"`
}

type Pick struct {
	Element       int  `json:"element"`
	Position      int  `json:"position"`
	Multiplier    int  `json:"multiplier"`
	IsCaptain     bool `json:"is_captain"`
	IsViceCaptain bool `json:"is_vice_captain"`
}
