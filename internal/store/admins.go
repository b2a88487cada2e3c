package store

import (
	"context"
	"fmt"

	"eventdeck/internal/database"
	"eventdeck/internal/model"
)

func CreateAdmin(ctx context.Context, db database.DB, a *model.Admin) (*model.Admin, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO admins (name, email, password_hash)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		a.Name,
		a.Email,
		a.PasswordHash,
	)
	if err := row.Scan(&a.ID, &a.CreatedAt); err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("CreateAdmin: %w", ErrDuplicate)
		}
		return nil, fmt.Errorf("CreateAdmin: %w", err)
	}
	return a, nil
}

func GetAdminByName(ctx context.Context, db database.DB, name string) (*model.Admin, error) {
	row := db.QueryRow(ctx,
		`SELECT id, name, email, password_hash, created_at
		 FROM admins WHERE name = $1`,
		name,
	)
	a := &model.Admin{}
	if err := row.Scan(
		&a.ID,
		&a.Name,
		&a.Email,
		&a.PasswordHash,
		&a.CreatedAt,
	); err != nil {
		if isNoRows(err) {
			return nil, fmt.Errorf("GetAdminByName: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("GetAdminByName: %w", err)
	}
	return a, nil
}
