package apipredict

import (
	"cfpredict/aggregate"
	"cfpredict/config"
	"cfpredict/entity"
	"cfpredict/failure"
	"cfpredict/predict"
	"cfpredict/report"
	"cfpredict/result"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/sessions"
)

var HISTORY_LIMIT = 20
var HISTORY_MAX_LIMIT = 100

type Handlers struct {
	Predictor *predict.Predictor
}

func NewHandlers(p *predict.Predictor) *Handlers {
	return &Handlers{Predictor: p}
}

func session(r *http.Request) *sessions.Session {
	s, err := config.Store.Get(r, config.COOKIE_NAME)
	if err != nil {
		// undecodable cookie, s is a fresh session
		report.ErrorServer(r, err)
	}
	return s
}

func lastQuery(s *sessions.Session) entity.LastQuery {
	q, _ := s.Values["last"].(entity.LastQuery)
	return q
}

// PredictHandler serves GET /api/predict?handle=&contest_id=. Omitted
// parameters fall back to the ones last submitted in this session.
func (h *Handlers) PredictHandler(w http.ResponseWriter, r *http.Request) {
	var res result.ResultInfo
	keys := r.URL.Query()
	s := session(r)
	last := lastQuery(s)
	handle, contestID := keys.Get("handle"), keys.Get("contest_id")
	if handle == `` && contestID == `` {
		handle, contestID = last.Handle, last.ContestID
	}

	p, err := h.Predictor.Predict(r.Context(), handle, contestID)
	if err != nil {
		status := http.StatusOK
		if failure.Is(err, failure.Transport) {
			report.ErrorServer(r, err)
			status = http.StatusBadGateway
		} else if !failure.IsInput(err) {
			report.Access(r, "prediction failed: %v", err)
		}
		res = result.SetErrorResult(predict.UserMessage(err))
		result.ReturnJSONStatus(w, status, &res)
		return
	}

	handle, id, _ := predict.ParseInput(handle, contestID)
	s.Values["last"] = entity.LastQuery{Handle: handle, ContestID: strconv.Itoa(id)}
	if err := s.Save(r, w); err != nil {
		report.ErrorServer(r, err)
	}
	report.Access(r, "%s contest %d: %+d", handle, id, p.Delta)
	res = result.SetResult(aggregate.Prediction{Handle: handle, ContestID: id, Result: *p})
	result.ReturnJSON(w, &res)
}

// HistoryHandler serves GET /api/history?handle=&limit= from the journal.
func (h *Handlers) HistoryHandler(w http.ResponseWriter, r *http.Request) {
	var res result.ResultInfo
	if h.Predictor.Journal == nil {
		res = result.SetErrorResult(predict.HISTORY_DISABLED_ERROR)
		result.ReturnJSON(w, &res)
		return
	}
	keys := r.URL.Query()
	handle := strings.TrimSpace(keys.Get("handle"))
	if handle == `` {
		handle = lastQuery(session(r)).Handle
	}
	if handle == `` {
		res = result.SetErrorResult(`Need handle parameter`)
		result.ReturnJSON(w, &res)
		return
	}
	limit := HISTORY_LIMIT
	if l := keys.Get("limit"); l != `` {
		n, err := strconv.Atoi(l)
		if err != nil || n <= 0 {
			res = result.SetErrorResult(`Error in parsing limit parameter`)
			result.ReturnJSON(w, &res)
			return
		}
		limit = n
	}
	if limit > HISTORY_MAX_LIMIT {
		limit = HISTORY_MAX_LIMIT
	}
	records, err := h.Predictor.Journal.ListByHandle(handle, limit)
	if err != nil {
		report.ErrorServer(r, err)
		res = result.SetErrorResult(predict.DATABASE_ERROR)
		result.ReturnJSON(w, &res)
		return
	}
	res = result.SetResult(records)
	res.Paginator = &result.Paginator{Total: len(records), CountPage: 1, Page: 1, Limit: limit}
	result.ReturnJSON(w, &res)
}
