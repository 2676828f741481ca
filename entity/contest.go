package entity

import "strings"

type ParticipantType string

const (
	CONTESTANT         ParticipantType = "CONTESTANT"
	PRACTICE           ParticipantType = "PRACTICE"
	VIRTUAL            ParticipantType = "VIRTUAL"
	MANAGER            ParticipantType = "MANAGER"
	OUT_OF_COMPETITION ParticipantType = "OUT_OF_COMPETITION"
)

type Member struct {
	Handle string `json:"handle"`
}

type Party struct {
	ContestID       int             `json:"contestId"`
	Members         []Member        `json:"members"`
	ParticipantType ParticipantType `json:"participantType"`
	TeamName        *string         `json:"teamName,omitempty"`
}

type ContestRow struct {
	Party  Party   `json:"party"`
	Rank   int     `json:"rank"`
	Points float64 `json:"points"`
}

type Contest struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Phase string `json:"phase"`
}

func (r ContestRow) IsContestant() bool {
	return r.Party.ParticipantType == CONTESTANT
}

// Lead is the first member of the party; team rows are matched on it only.
func (r ContestRow) Lead() (Member, bool) {
	if len(r.Party.Members) == 0 {
		return Member{}, false
	}
	return r.Party.Members[0], true
}

func SameHandle(a, b string) bool {
	return strings.ToLower(a) == strings.ToLower(b)
}
