package infrastructure

import (
	"cfpredict/aggregate"
	repository "cfpredict/domain/contest"
	"cfpredict/entity"
	"cfpredict/failure"
	"cfpredict/infrastructure/codeforces"
	valueobject "cfpredict/value_object"
	"context"
	"net/url"
	"strconv"

	"github.com/pkg/errors"
)

type ContestRepository struct {
	client *codeforces.Client
}

func NewContestRepository(client *codeforces.Client) repository.StandingsRepository {
	return &ContestRepository{client: client}
}

// GetStandings looks up the official rank of handle in contestID, with
// unofficial rows requested so the full table is returned.
func (r *ContestRepository) GetStandings(ctx context.Context, contestID int, handle string) (*aggregate.Standings, error) {
	if handle == `` {
		return nil, failure.Missing("handle")
	}
	var payload valueobject.StandingsPayload
	params := url.Values{
		"contestId":      {strconv.Itoa(contestID)},
		"showUnofficial": {"true"},
	}
	if err := r.client.Get(ctx, codeforces.METHOD_CONTEST_STANDINGS, params, &payload); err != nil {
		return nil, err
	}
	rank, found, total, err := ScanStandings(payload.Rows, handle)
	if err != nil {
		return nil, failure.Wrap(codeforces.METHOD_CONTEST_STANDINGS, err, "malformed standings")
	}
	if !found {
		return nil, failure.NotFound(handle, contestID, total)
	}
	return &aggregate.Standings{
		ContestID:         contestID,
		Contest:           &payload.Contest,
		Rank:              rank,
		TotalParticipants: total,
		Rows:              payload.Rows,
	}, nil
}

// ScanStandings counts CONTESTANT rows and finds the rank of the row whose
// lead member is handle, compared case-insensitively. Rows of any other
// participant type are neither counted nor matched. The last matching row wins.
func ScanStandings(rows []entity.ContestRow, handle string) (rank int, found bool, total int, err error) {
	for i, row := range rows {
		if !row.IsContestant() {
			continue
		}
		total++
		lead, ok := row.Lead()
		if !ok {
			return 0, false, total, errors.Errorf("row %d has no members", i)
		}
		if entity.SameHandle(lead.Handle, handle) {
			rank = row.Rank
			found = true
		}
	}
	return rank, found, total, nil
}
