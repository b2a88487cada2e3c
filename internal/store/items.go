package store

import (
	"context"
	"fmt"

	"eventdeck/internal/database"
	"eventdeck/internal/model"
)

func CreateItem(ctx context.Context, db database.DB, it *model.Item) (*model.Item, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO items (data)
		 VALUES ($1)
		 RETURNING id, created_at, updated_at`,
		it.Data,
	)
	if err := row.Scan(&it.ID, &it.CreatedAt, &it.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateItem: %w", err)
	}
	return it, nil
}

func ListItems(ctx context.Context, db database.DB) ([]model.Item, error) {
	rows, err := db.Query(ctx,
		`SELECT id, data, created_at, updated_at FROM items ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListItems: %w", err)
	}
	defer rows.Close()

	items := []model.Item{}
	for rows.Next() {
		var it model.Item
		if err := rows.Scan(&it.ID, &it.Data, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("ListItems: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListItems: %w", err)
	}
	return items, nil
}

func UpdateItem(ctx context.Context, db database.DB, it *model.Item) error {
	tag, err := db.Exec(ctx,
		`UPDATE items SET data = $1, updated_at = now() WHERE id = $2`,
		it.Data,
		it.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateItem: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("UpdateItem: %w", ErrNotFound)
	}
	return nil
}

func DeleteItem(ctx context.Context, db database.DB, itemID int) error {
	tag, err := db.Exec(ctx,
		`DELETE FROM items WHERE id = $1`,
		itemID,
	)
	if err != nil {
		return fmt.Errorf("DeleteItem: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("DeleteItem: %w", ErrNotFound)
	}
	return nil
}
