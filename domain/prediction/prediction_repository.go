package repository

import "cfpredict/entity"

type PredictionRepository interface {
	Save(record *entity.PredictionRecord) error
	ListByHandle(handle string, limit int) ([]entity.PredictionRecord, error)
}
