package model

import (
	"encoding/json"
	"time"
)

// Item is a free-form JSON document stored as jsonb.
type Item struct {
	ID        int             `db:"id" json:"id"`
	Data      json.RawMessage `db:"data" json:"data"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt time.Time       `db:"updated_at" json:"updated_at"`
}
