package config

import (
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

var Db *sqlx.DB

// InitDB opens the prediction journal. It is a no-op when no driver is configured.
func InitDB() error {
	if Site.HistoryDriver == `` {
		return nil
	}
	db, err := sqlx.Connect(Site.HistoryDriver, Site.HistoryDSN)
	if err != nil {
		return errors.Wrapf(err, "unable to connect to %s journal", Site.HistoryDriver)
	}
	Db = db
	return nil
}

func ConnectDB() *sqlx.DB {
	return Db
}
