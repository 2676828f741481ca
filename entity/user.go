package entity

var DEFAULT_RATING int = 1500

type UserProfile struct {
	Handle string `json:"handle"`
	Rating int    `json:"rating"`
}

type UserInfo struct {
	Handle string `json:"handle"`
	Rating *int   `json:"rating,omitempty"`
}

// Profile applies the default rating to users the remote side reports as unrated.
func (u UserInfo) Profile() *UserProfile {
	p := &UserProfile{Handle: u.Handle, Rating: DEFAULT_RATING}
	if u.Rating != nil {
		p.Rating = *u.Rating
	}
	return p
}

type LastQuery struct {
	Handle    string
	ContestID string
}
