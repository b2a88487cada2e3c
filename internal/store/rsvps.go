package store

import (
	"context"
	"fmt"

	"eventdeck/internal/database"
	"eventdeck/internal/model"
)

// CreateRSVP inserts the rsvp row and bumps the event counter in one
// transaction, so rsvp_count always equals the number of rsvps rows. A
// second rsvp by the same user hits the (user_id, event_id) unique index.
func CreateRSVP(ctx context.Context, db database.DB, r *model.RSVP) (*model.RSVP, error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("CreateRSVP: %w", err)
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx,
		`INSERT INTO rsvps (user_id, event_id, ticket_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		r.UserID,
		r.EventID,
		r.TicketID,
	)
	if err := row.Scan(&r.ID, &r.CreatedAt); err != nil {
		switch {
		case isUniqueViolation(err):
			return nil, fmt.Errorf("CreateRSVP: %w", ErrDuplicate)
		case isForeignKeyViolation(err):
			return nil, fmt.Errorf("CreateRSVP: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("CreateRSVP: %w", err)
	}

	if _, err := tx.Exec(ctx,
		`UPDATE events SET rsvp_count = rsvp_count + 1 WHERE id = $1`,
		r.EventID,
	); err != nil {
		return nil, fmt.Errorf("CreateRSVP: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("CreateRSVP: %w", err)
	}
	return r, nil
}

func GetRSVP(ctx context.Context, db database.DB, userID, eventID int) (*model.RSVP, error) {
	row := db.QueryRow(ctx,
		`SELECT id, user_id, event_id, ticket_id, created_at
		 FROM rsvps WHERE user_id = $1 AND event_id = $2`,
		userID,
		eventID,
	)
	r := &model.RSVP{}
	if err := row.Scan(
		&r.ID,
		&r.UserID,
		&r.EventID,
		&r.TicketID,
		&r.CreatedAt,
	); err != nil {
		if isNoRows(err) {
			return nil, fmt.Errorf("GetRSVP: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("GetRSVP: %w", err)
	}
	return r, nil
}

func ListRSVPsByUser(ctx context.Context, db database.DB, userID int) ([]model.UserRSVP, error) {
	rows, err := db.Query(ctx,
		`SELECT e.id, e.title, e.starts_at, r.ticket_id
		 FROM rsvps r JOIN events e ON e.id = r.event_id
		 WHERE r.user_id = $1
		 ORDER BY e.starts_at`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListRSVPsByUser: %w", err)
	}
	defer rows.Close()

	out := []model.UserRSVP{}
	for rows.Next() {
		var r model.UserRSVP
		if err := rows.Scan(&r.EventID, &r.Title, &r.StartsAt, &r.TicketID); err != nil {
			return nil, fmt.Errorf("ListRSVPsByUser: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListRSVPsByUser: %w", err)
	}
	return out, nil
}
