package predict

import (
	contest "cfpredict/domain/contest"
	prediction "cfpredict/domain/prediction"
	user "cfpredict/domain/user"
	"cfpredict/entity"
	"cfpredict/failure"
	"cfpredict/report"
	"context"
	"strconv"
	"strings"
)

type Predictor struct {
	Users    user.RatingRepository
	Contests contest.StandingsRepository
	// Journal is optional.
	Journal prediction.PredictionRepository
}

func NewPredictor(users user.RatingRepository, contests contest.StandingsRepository, journal prediction.PredictionRepository) *Predictor {
	return &Predictor{Users: users, Contests: contests, Journal: journal}
}

// ParseInput validates the raw form values before anything goes over the network.
func ParseInput(handle, contestID string) (string, int, error) {
	handle = strings.TrimSpace(handle)
	contestID = strings.TrimSpace(contestID)
	if handle == `` {
		return ``, 0, failure.Missing("handle")
	}
	if contestID == `` {
		return ``, 0, failure.Missing("contest id")
	}
	id, err := strconv.Atoi(contestID)
	if err != nil || id <= 0 {
		return ``, 0, failure.Invalid("contest id", contestID)
	}
	return handle, id, nil
}

// Predict fetches the rating, then the standings, and estimates the delta.
// The first failing fetch ends the prediction.
func (p *Predictor) Predict(ctx context.Context, handle, contestID string) (*entity.PredictionResult, error) {
	handle, id, err := ParseInput(handle, contestID)
	if err != nil {
		return nil, err
	}
	profile, err := p.Users.GetRating(ctx, handle)
	if err != nil {
		return nil, err
	}
	standings, err := p.Contests.GetStandings(ctx, id, handle)
	if err != nil {
		return nil, err
	}
	delta := EstimateDelta(standings.Rank, profile.Rating, standings.TotalParticipants)
	res := &entity.PredictionResult{
		Rating:            profile.Rating,
		Rank:              standings.Rank,
		TotalParticipants: standings.TotalParticipants,
		Delta:             delta,
		NewRating:         profile.Rating + delta,
	}
	p.journal(handle, id, res)
	return res, nil
}

func (p *Predictor) journal(handle string, contestID int, res *entity.PredictionResult) {
	if p.Journal == nil {
		return
	}
	err := p.Journal.Save(&entity.PredictionRecord{
		Handle:            handle,
		ContestID:         contestID,
		Rating:            res.Rating,
		Rank:              res.Rank,
		TotalParticipants: res.TotalParticipants,
		Delta:             res.Delta,
		NewRating:         res.NewRating,
	})
	report.ErrorServer(nil, err)
}
