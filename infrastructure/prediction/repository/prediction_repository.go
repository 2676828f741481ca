package infrastructure

import (
	repository "cfpredict/domain/prediction"
	"cfpredict/entity"
	"cfpredict/report"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

type PredictionRepository struct {
	db *sqlx.DB
}

func NewPredictionRepository(db *sqlx.DB) (repository.PredictionRepository, error) {
	r := &PredictionRepository{db: db}
	if err := r.createTable(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *PredictionRepository) createTable() error {
	var id string
	switch r.db.DriverName() {
	case "postgres":
		id = `id SERIAL PRIMARY KEY`
	case "mysql":
		id = `id INT AUTO_INCREMENT PRIMARY KEY`
	default:
		id = `id INTEGER NOT NULL PRIMARY KEY`
	}
	query := `CREATE TABLE IF NOT EXISTS predictions (
		` + id + `,
		handle VARCHAR(64) NOT NULL,
		contest_id INTEGER NOT NULL,
		rating INTEGER NOT NULL,
		place INTEGER NOT NULL,
		total INTEGER NOT NULL,
		delta INTEGER NOT NULL,
		new_rating INTEGER NOT NULL,
		created_at TIMESTAMP NOT NULL
	)`
	_, err := r.db.Exec(query)
	if err != nil {
		report.ErrorSQLServer(nil, err, query)
	}
	return errors.Wrap(err, "unable to create table predictions")
}

func (r *PredictionRepository) Save(record *entity.PredictionRecord) error {
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	query := `INSERT INTO predictions (handle, contest_id, rating, place, total, delta, new_rating, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	params := []any{record.Handle, record.ContestID, record.Rating, record.Rank, record.TotalParticipants, record.Delta, record.NewRating, record.CreatedAt}
	if r.db.DriverName() == "postgres" {
		query = r.db.Rebind(query + ` RETURNING id`)
		err := r.db.QueryRow(query, params...).Scan(&record.ID)
		if err != nil {
			report.ErrorSQLServer(nil, err, query, params...)
		}
		return errors.Wrap(err, "unable to insert prediction")
	}
	query = r.db.Rebind(query)
	res, err := r.db.Exec(query, params...)
	if err != nil {
		report.ErrorSQLServer(nil, err, query, params...)
		return errors.Wrap(err, "unable to insert prediction")
	}
	id, err := res.LastInsertId()
	if err != nil {
		return errors.Wrap(err, "unable to read prediction id")
	}
	record.ID = int(id)
	return nil
}

// ListByHandle returns the latest journal entries for handle, newest first.
func (r *PredictionRepository) ListByHandle(handle string, limit int) ([]entity.PredictionRecord, error) {
	res := []entity.PredictionRecord{}
	query := r.db.Rebind(`SELECT id, handle, contest_id, rating, place, total, delta, new_rating, created_at FROM predictions WHERE LOWER(handle) = LOWER(?) ORDER BY created_at DESC, id DESC LIMIT ?`)
	params := []any{handle, limit}
	err := r.db.Select(&res, query, params...)
	if err != nil {
		report.ErrorSQLServer(nil, err, query, params...)
		return nil, errors.Wrap(err, "unable to select predictions")
	}
	return res, nil
}
