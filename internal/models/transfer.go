package models

// TransferCandidate is one suggested swap: sell Out, buy In. Cost is the
// price delta, ExpectedPointsGain the difference in projected points over
// the fixture horizon, and TransferPriority the combined ranking value.
type TransferCandidate struct {
	Out                Player  `json:"out"`
	In                 Player  `json:"in"`
	Cost               float64 `json:"cost"`
	ExpectedPointsGain float64 `json:"expected_points_gain"`
	ScoreDifference    float64 `json:"score_difference"`
	TransferPriority   float64 `json:"transfer_priority"`
	Reason             string  `json:"reason"`
	Position           string  `json:"position"`
}
