package model

import "time"

type Event struct {
	ID          int       `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	StartsAt    time.Time `db:"starts_at" json:"starts_at"`
	Location    string    `db:"location" json:"location"`
	PosterURL   string    `db:"poster_url" json:"poster_url"`
	Price       float64   `db:"price" json:"price"`
	RSVPCount   int       `db:"rsvp_count" json:"rsvp_count"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
