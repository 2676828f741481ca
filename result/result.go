package result

import (
	"encoding/json"
	"net/http"

	"github.com/oxtoacart/bpool"
)

type ResultInfo struct {
	Done      bool        `json:"done"`
	Message   *string     `json:"message,omitempty"`
	Items     interface{} `json:"data,omitempty"`
	Paginator *Paginator  `json:"paginator,omitempty"`
}

type Paginator struct {
	Total     int `json:"total"`
	CountPage int `json:"count_page"`
	Page      int `json:"page"`
	Offset    int `json:"offset"`
	Limit     int `json:"limit"`
}

var bufpool = bpool.NewBufferPool(64)

func SetErrorResult(m string) (result ResultInfo) {
	result.Done = false
	result.Message = &m
	result.Items = nil
	return result
}

func SetResult(items interface{}) (result ResultInfo) {
	result.Done = true
	result.Items = items
	return result
}

func ReturnJSON(w http.ResponseWriter, res *ResultInfo) {
	ReturnJSONStatus(w, http.StatusOK, res)
}

func ReturnJSONStatus(w http.ResponseWriter, status int, res *ResultInfo) {
	buf := bufpool.Get()
	defer bufpool.Put(buf)
	if err := json.NewEncoder(buf).Encode(res); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
