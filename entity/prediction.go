package entity

import "time"

type PredictionResult struct {
	Rating            int `json:"rating"`
	Rank              int `json:"rank"`
	TotalParticipants int `json:"total_participants"`
	Delta             int `json:"delta"`
	NewRating         int `json:"new_rating"`
}

type PredictionRecord struct {
	ID                int       `db:"id" json:"id"`
	Handle            string    `db:"handle" json:"handle"`
	ContestID         int       `db:"contest_id" json:"contest_id"`
	Rating            int       `db:"rating" json:"rating"`
	Rank              int       `db:"place" json:"rank"`
	TotalParticipants int       `db:"total" json:"total_participants"`
	Delta             int       `db:"delta" json:"delta"`
	NewRating         int       `db:"new_rating" json:"new_rating"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
}
