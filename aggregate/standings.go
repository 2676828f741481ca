package aggregate

import "cfpredict/entity"

// Standings is a successful lookup: Rank always belongs to a CONTESTANT row.
type Standings struct {
	ContestID         int                 `json:"contest_id"`
	Contest           *entity.Contest     `json:"contest,omitempty"`
	Rank              int                 `json:"rank"`
	TotalParticipants int                 `json:"total_participants"`
	Rows              []entity.ContestRow `json:"rows,omitempty"`
}

type Prediction struct {
	Handle    string                  `json:"handle"`
	ContestID int                     `json:"contest_id"`
	Result    entity.PredictionResult `json:"result"`
}
