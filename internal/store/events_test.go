package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"eventdeck/internal/database"
	"eventdeck/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestCreateEvent(t *testing.T) {
	now := time.Now().UTC()
	starts := now.Add(48 * time.Hour)

	t.Run("success", func(t *testing.T) {
		var gotArgs []any
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				gotArgs = args
				return &fakeRow{vals: []any{3, 0, now}}
			},
		}
		ev, err := CreateEvent(context.Background(), db, &model.Event{
			Title:     "GopherCon",
			StartsAt:  starts,
			Location:  "Berlin",
			PosterURL: "https://cdn/p.png",
			Price:     25.5,
		})
		require.NoError(t, err)
		require.Equal(t, 3, ev.ID)
		require.Equal(t, 0, ev.RSVPCount)
		require.Len(t, gotArgs, 6)
		require.Equal(t, "GopherCon", gotArgs[0])
	})

	t.Run("scan error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanErr: errors.New("boom")}
			},
		}
		_, err := CreateEvent(context.Background(), db, &model.Event{})
		require.Error(t, err)
	})
}

func TestListEvents(t *testing.T) {
	now := time.Now().UTC()

	t.Run("success", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &fakeRows{data: [][]any{
					{1, "A", "", now, "Berlin", "u1", 10.0, 2, now},
					{2, "B", "", now, "Paris", "u2", 0.0, 0, now},
				}}, nil
			},
		}
		evs, err := ListEvents(context.Background(), db)
		require.NoError(t, err)
		require.Len(t, evs, 2)
		require.Equal(t, "A", evs[0].Title)
		require.Equal(t, 2, evs[0].RSVPCount)
	})

	t.Run("empty result is a non-nil slice", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &fakeRows{}, nil
			},
		}
		evs, err := ListEvents(context.Background(), db)
		require.NoError(t, err)
		require.NotNil(t, evs)
		require.Empty(t, evs)
	})

	t.Run("query error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return nil, errors.New("boom")
			},
		}
		_, err := ListEvents(context.Background(), db)
		require.Error(t, err)
	})

	t.Run("rows error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &fakeRows{err: errors.New("late failure")}, nil
			},
		}
		_, err := ListEvents(context.Background(), db)
		require.Error(t, err)
	})
}

func TestGetEventByID(t *testing.T) {
	now := time.Now().UTC()

	t.Run("success", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				require.Equal(t, []any{3}, args)
				return &fakeRow{vals: []any{3, "GopherCon", "desc", now, "Berlin", "u", 25.5, 4, now}}
			},
		}
		ev, err := GetEventByID(context.Background(), db, 3)
		require.NoError(t, err)
		require.Equal(t, "GopherCon", ev.Title)
		require.Equal(t, 25.5, ev.Price)
	})

	t.Run("missing row maps to ErrNotFound", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeRow{scanErr: pgx.ErrNoRows}
			},
		}
		_, err := GetEventByID(context.Background(), db, 3)
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestDeleteEvent(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
				require.Equal(t, []any{3}, args)
				return pgconn.NewCommandTag("DELETE 1"), nil
			},
		}
		require.NoError(t, DeleteEvent(context.Background(), db, 3))
	})

	t.Run("no rows maps to ErrNotFound", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("DELETE 0"), nil
			},
		}
		require.ErrorIs(t, DeleteEvent(context.Background(), db, 3), ErrNotFound)
	})

	t.Run("exec error", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.CommandTag{}, errors.New("boom")
			},
		}
		require.Error(t, DeleteEvent(context.Background(), db, 3))
	})
}
