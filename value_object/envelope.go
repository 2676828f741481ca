package valueobject

import (
	"cfpredict/entity"
	"encoding/json"
)

var STATUS_OK = `OK`

// Envelope is the common shape of every remote API response.
type Envelope struct {
	Status  string          `json:"status"`
	Comment string          `json:"comment,omitempty"`
	Result  json.RawMessage `json:"result,omitempty"`
}

func (e Envelope) OK() bool {
	return e.Status == STATUS_OK
}

type StandingsPayload struct {
	Contest entity.Contest      `json:"contest"`
	Rows    []entity.ContestRow `json:"rows"`
}
