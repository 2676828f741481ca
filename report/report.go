package report

import (
	"cfpredict/config"
	"fmt"
	"net/http"

	"github.com/kaibox-git/sqlparams"
)

func requestLine(r *http.Request) string {
	if r == nil {
		return ``
	}
	return fmt.Sprintf("%s %s ", r.Method, r.URL.RequestURI())
}

func ErrorServer(r *http.Request, err error) {
	if err == nil {
		return
	}
	config.ErrorLog.Output(2, fmt.Sprintf("%s%+v", requestLine(r), err))
}

func ErrorSQLServer(r *http.Request, err error, query string, params ...any) {
	if err == nil {
		return
	}
	config.ErrorLog.Output(2, fmt.Sprintf("%s%v\n\t%s", requestLine(r), err, sqlparams.Inline(query, params...)))
}

func Access(r *http.Request, format string, args ...any) {
	config.AccessLog.Printf(requestLine(r)+format, args...)
}
