package daemon

import (
	"bytes"
	"cfpredict/failure"
	"cfpredict/infrastructure/codeforces"
	contest "cfpredict/infrastructure/contest/repository"
	user "cfpredict/infrastructure/user/repository"
	"cfpredict/predict"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPredictor(t *testing.T) *predict.Predictor {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/user.info":
			w.Write([]byte(`{"status":"OK","result":[{"handle":"x","rating":1500}]}`))
		case "/contest.standings":
			w.Write([]byte(`{"status":"OK","result":{"rows":[
{"party":{"members":[{"handle":"alpha"}],"participantType":"CONTESTANT"},"rank":1},
{"party":{"members":[{"handle":"beta"}],"participantType":"CONTESTANT"},"rank":2}
]}}`))
		}
	}))
	t.Cleanup(srv.Close)
	client := codeforces.NewClient(srv.URL, 0)
	return predict.NewPredictor(user.NewUserRepository(client), contest.NewContestRepository(client), nil)
}

func TestCommandLine(t *testing.T) {
	var out bytes.Buffer
	in := strings.NewReader("alpha 1\n\nnobody 1\nbeta\n")

	err := CommandLine(context.Background(), newPredictor(t), in, &out)
	require.NoError(t, err)

	lines := out.String()
	assert.Contains(t, lines, "Prediction complete for alpha\n")
	assert.Contains(t, lines, "Rank: 1 out of 2\n")
	assert.Contains(t, lines, "Predicted delta: +0\n")
	assert.Contains(t, lines, predict.RETRIEVE_ERROR+"\n")
	assert.Contains(t, lines, predict.MISSING_INPUT_ERROR+"\n")
}

func TestPredictTransportFault(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	client := codeforces.NewClient(srv.URL, 0)
	p := predict.NewPredictor(user.NewUserRepository(client), contest.NewContestRepository(client), nil)

	var out bytes.Buffer
	err := Predict(context.Background(), p, &out, "alpha", "1")
	assert.Equal(t, failure.Transport, failure.KindOf(err))
	assert.Empty(t, out.String())
}
