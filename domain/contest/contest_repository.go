package repository

import (
	"cfpredict/aggregate"
	"context"
)

type StandingsRepository interface {
	GetStandings(ctx context.Context, contestID int, handle string) (*aggregate.Standings, error)
}
