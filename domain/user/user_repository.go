package repository

import (
	"cfpredict/entity"
	"context"
)

type RatingRepository interface {
	GetRating(ctx context.Context, handle string) (*entity.UserProfile, error)
}
