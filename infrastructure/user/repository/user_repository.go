package infrastructure

import (
	repository "cfpredict/domain/user"
	"cfpredict/entity"
	"cfpredict/failure"
	"cfpredict/infrastructure/codeforces"
	"context"
	"net/url"

	"github.com/pkg/errors"
)

type UserRepository struct {
	client *codeforces.Client
}

func NewUserRepository(client *codeforces.Client) repository.RatingRepository {
	return &UserRepository{client: client}
}

// GetRating returns the current rating of handle. Unrated users get the
// default rating; a non-OK status is reported as an UpstreamStatus failure.
func (r *UserRepository) GetRating(ctx context.Context, handle string) (*entity.UserProfile, error) {
	if handle == `` {
		return nil, failure.Missing("handle")
	}
	var users []entity.UserInfo
	params := url.Values{"handles": {handle}}
	if err := r.client.Get(ctx, codeforces.METHOD_USER_INFO, params, &users); err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, failure.Wrap(codeforces.METHOD_USER_INFO, errors.New("empty result"), "no user entry")
	}
	return users[0].Profile(), nil
}
