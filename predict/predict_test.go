package predict

import (
	"cfpredict/aggregate"
	"cfpredict/entity"
	"cfpredict/failure"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUsers struct {
	profile *entity.UserProfile
	err     error
	calls   int
}

func (f *fakeUsers) GetRating(ctx context.Context, handle string) (*entity.UserProfile, error) {
	f.calls++
	return f.profile, f.err
}

type fakeContests struct {
	standings *aggregate.Standings
	err       error
	calls     int
	contestID int
}

func (f *fakeContests) GetStandings(ctx context.Context, contestID int, handle string) (*aggregate.Standings, error) {
	f.calls++
	f.contestID = contestID
	return f.standings, f.err
}

type fakeJournal struct {
	saved []entity.PredictionRecord
	err   error
}

func (f *fakeJournal) Save(record *entity.PredictionRecord) error {
	f.saved = append(f.saved, *record)
	return f.err
}

func (f *fakeJournal) ListByHandle(handle string, limit int) ([]entity.PredictionRecord, error) {
	return f.saved, f.err
}

func TestParseInput(t *testing.T) {
	tests := []struct {
		name      string
		handle    string
		contestID string
		kind      failure.Kind
		id        int
	}{
		{"valid", " tourist ", " 1941 ", failure.Unknown, 1941},
		{"empty handle", "", "1941", failure.MissingInput, 0},
		{"blank handle", "   ", "1941", failure.MissingInput, 0},
		{"empty contest", "tourist", "", failure.MissingInput, 0},
		{"letters", "tourist", "abc", failure.InvalidInput, 0},
		{"zero", "tourist", "0", failure.InvalidInput, 0},
		{"negative", "tourist", "-5", failure.InvalidInput, 0},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			handle, id, err := ParseInput(test.handle, test.contestID)
			assert.Equal(t, test.kind, failure.KindOf(err))
			assert.Equal(t, test.id, id)
			if err == nil {
				assert.Equal(t, "tourist", handle)
			}
		})
	}
}

func TestPredict(t *testing.T) {
	users := &fakeUsers{profile: &entity.UserProfile{Handle: "tourist", Rating: 1900}}
	contests := &fakeContests{standings: &aggregate.Standings{ContestID: 1941, Rank: 10, TotalParticipants: 100}}
	journal := &fakeJournal{}

	res, err := NewPredictor(users, contests, journal).Predict(context.Background(), "tourist", "1941")
	require.NoError(t, err)
	assert.Equal(t, entity.PredictionResult{
		Rating:            1900,
		Rank:              10,
		TotalParticipants: 100,
		Delta:             2,
		NewRating:         1902,
	}, *res)
	assert.Equal(t, 1941, contests.contestID)
	require.Len(t, journal.saved, 1)
	assert.Equal(t, "tourist", journal.saved[0].Handle)
	assert.Equal(t, 1902, journal.saved[0].NewRating)
}

func TestPredictMissingInputSkipsNetwork(t *testing.T) {
	users := &fakeUsers{}
	contests := &fakeContests{}

	_, err := NewPredictor(users, contests, nil).Predict(context.Background(), "", "1941")
	assert.Equal(t, failure.MissingInput, failure.KindOf(err))
	assert.Zero(t, users.calls)
	assert.Zero(t, contests.calls)
}

func TestPredictFailures(t *testing.T) {
	tests := []struct {
		name     string
		users    *fakeUsers
		contests *fakeContests
		kind     failure.Kind
		fetches  int
	}{{
		"rating status failure",
		&fakeUsers{err: failure.Status("user.info", "FAILED", "")},
		&fakeContests{},
		failure.UpstreamStatus,
		0,
	}, {
		"standings status failure",
		&fakeUsers{profile: &entity.UserProfile{Rating: 1500}},
		&fakeContests{err: failure.Status("contest.standings", "FAILED", "")},
		failure.UpstreamStatus,
		1,
	}, {
		"user not in contest",
		&fakeUsers{profile: &entity.UserProfile{Rating: 1500}},
		&fakeContests{err: failure.NotFound("tourist", 1941, 12)},
		failure.UserNotFoundInContest,
		1,
	}, {
		"transport",
		&fakeUsers{err: failure.Wrap("user.info", errors.New("dial tcp"), "request failed")},
		&fakeContests{},
		failure.Transport,
		0,
	}}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			journal := &fakeJournal{}
			res, err := NewPredictor(test.users, test.contests, journal).Predict(context.Background(), "tourist", "1941")
			assert.Nil(t, res)
			assert.Equal(t, test.kind, failure.KindOf(err))
			assert.Equal(t, test.fetches, test.contests.calls)
			assert.Empty(t, journal.saved)
		})
	}
}

func TestPredictJournalErrorIgnored(t *testing.T) {
	users := &fakeUsers{profile: &entity.UserProfile{Rating: 1500}}
	contests := &fakeContests{standings: &aggregate.Standings{Rank: 50, TotalParticipants: 100}}

	res, err := NewPredictor(users, contests, &fakeJournal{err: errors.New("disk full")}).Predict(context.Background(), "a", "1")
	require.NoError(t, err)
	assert.Equal(t, 0, res.Delta)
	assert.Equal(t, 1500, res.NewRating)
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, MISSING_INPUT_ERROR, UserMessage(failure.Missing("handle")))
	assert.Equal(t, INVALID_CONTEST_ERROR, UserMessage(failure.Invalid("contest id", "x")))
	assert.Equal(t, RETRIEVE_ERROR, UserMessage(failure.Status("user.info", "FAILED", "")))
	assert.Equal(t, RETRIEVE_ERROR, UserMessage(failure.NotFound("a", 1, 0)))
	assert.Equal(t, TRANSPORT_ERROR, UserMessage(failure.Wrap("user.info", errors.New("x"), "y")))
}

func TestFormatResult(t *testing.T) {
	out := FormatResult("tourist", &entity.PredictionResult{Rating: 1900, Rank: 10, TotalParticipants: 100, Delta: 2, NewRating: 1902})
	assert.Equal(t, "Prediction complete for tourist\n"+
		"Current rating: 1900\n"+
		"Rank: 10 out of 100\n"+
		"Predicted delta: +2\n"+
		"Predicted new rating: 1902\n", out)
	assert.Contains(t, FormatResult("a", &entity.PredictionResult{Delta: -3}), "Predicted delta: -3\n")
}
