package store

import (
	"context"
	"fmt"

	"eventdeck/internal/database"
	"eventdeck/internal/model"
)

func CreateEvent(ctx context.Context, db database.DB, ev *model.Event) (*model.Event, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO events (title, description, starts_at, location, poster_url, price)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, rsvp_count, created_at`,
		ev.Title,
		ev.Description,
		ev.StartsAt,
		ev.Location,
		ev.PosterURL,
		ev.Price,
	)
	if err := row.Scan(&ev.ID, &ev.RSVPCount, &ev.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateEvent: %w", err)
	}
	return ev, nil
}

func ListEvents(ctx context.Context, db database.DB) ([]model.Event, error) {
	rows, err := db.Query(ctx,
		`SELECT id, title, description, starts_at, location, poster_url, price, rsvp_count, created_at
		 FROM events ORDER BY starts_at`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListEvents: %w", err)
	}
	defer rows.Close()

	events := []model.Event{}
	for rows.Next() {
		var ev model.Event
		if err := rows.Scan(
			&ev.ID,
			&ev.Title,
			&ev.Description,
			&ev.StartsAt,
			&ev.Location,
			&ev.PosterURL,
			&ev.Price,
			&ev.RSVPCount,
			&ev.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListEvents: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListEvents: %w", err)
	}
	return events, nil
}

func GetEventByID(ctx context.Context, db database.DB, eventID int) (*model.Event, error) {
	row := db.QueryRow(ctx,
		`SELECT id, title, description, starts_at, location, poster_url, price, rsvp_count, created_at
		 FROM events WHERE id = $1`,
		eventID,
	)
	ev := &model.Event{}
	if err := row.Scan(
		&ev.ID,
		&ev.Title,
		&ev.Description,
		&ev.StartsAt,
		&ev.Location,
		&ev.PosterURL,
		&ev.Price,
		&ev.RSVPCount,
		&ev.CreatedAt,
	); err != nil {
		if isNoRows(err) {
			return nil, fmt.Errorf("GetEventByID: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("GetEventByID: %w", err)
	}
	return ev, nil
}

func DeleteEvent(ctx context.Context, db database.DB, eventID int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM events WHERE id = $1`,
		eventID,
	)
	if err != nil {
		return fmt.Errorf("DeleteEvent: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteEvent: %w", ErrNotFound)
	}
	return nil
}
