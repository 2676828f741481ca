package main

import (
	apipredict "cfpredict/api/predict"
	"cfpredict/config"
	"cfpredict/daemon"
	prediction "cfpredict/domain/prediction"
	"cfpredict/infrastructure/codeforces"
	contest "cfpredict/infrastructure/contest/repository"
	journal "cfpredict/infrastructure/prediction/repository"
	user "cfpredict/infrastructure/user/repository"
	"cfpredict/predict"
	"cfpredict/report"
	"cfpredict/routes"
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/gorilla/mux"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}

func run() error {
	err := config.InitSettings()
	if err != nil {
		return err
	}
	config.InitCookies()
	err = config.InitDB()
	if err != nil {
		return err
	}
	client := codeforces.NewClient(config.Site.APIBase, config.Site.HTTPTimeout)
	var history prediction.PredictionRepository
	if db := config.ConnectDB(); db != nil {
		defer db.Close()
		history, err = journal.NewPredictionRepository(db)
		if err != nil {
			return err
		}
	}
	predictor := predict.NewPredictor(
		user.NewUserRepository(client),
		contest.NewContestRepository(client),
		history,
	)
	ctx := context.Background()

	switch {
	case len(os.Args) == 2 && os.Args[1] == "-":
		return daemon.CommandLine(ctx, predictor, os.Stdin, os.Stdout)
	case len(os.Args) >= 2:
		var contestID string
		if len(os.Args) > 2 {
			contestID = os.Args[2]
		}
		return daemon.Predict(ctx, predictor, os.Stdout, os.Args[1], contestID)
	}
	config.InitLoggers()
	return serve(predictor)
}

func serve(predictor *predict.Predictor) error {
	routeAll := mux.NewRouter()
	routes.GetAllHandlers(routeAll, apipredict.NewHandlers(predictor))
	routeAll.Use(mw)
	fmt.Println("[SERVER] Server address is " + config.Site.Address)
	return http.ListenAndServe(config.Site.Address, routeAll)
}

func mw(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				report.ErrorServer(r, fmt.Errorf("panic: %v", rec))
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
