//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestRoom(t *testing.T, pool *pgxpool.Pool, code, name, status string) uuid.UUID {
	t.Helper()

	roomID := uuid.New()
	ctx := context.Background()

	tag, err := pool.Exec(ctx,
		"INSERT INTO rooms (id, code, name, capacity, equipment, status) VALUES ($1, $2, $3, 20, $4, $5) ON CONFLICT (code) DO NOTHING",
		roomID, code, name, []string{"wifi"}, status)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t, pool.QueryRow(ctx, "SELECT id FROM rooms WHERE code = $1", code).Scan(&roomID))
	}

	return roomID
}

func CreateTestBooking(t *testing.T, pool *pgxpool.Pool, roomID uuid.UUID, title string, start, end time.Time) uuid.UUID {
	t.Helper()

	bookingID := uuid.New()
	_, err := pool.Exec(context.Background(),
		"INSERT INTO bookings (id, title, start_at, end_at, room_id) VALUES ($1, $2, $3, $4, $5)",
		bookingID, title, start, end, roomID)
	require.NoError(t, err)

	return bookingID
}

// truncates all tables between tests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	rows, err := pool.Query(ctx, `
	  SELECT 'public.' || quote_ident(tablename)
	  FROM pg_tables
	  WHERE schemaname = 'public'
	    AND tablename NOT IN ('atlas_schema_revisions', 'schema_migrations')`)
	if err != nil {
		return err
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var tbl string
		if err := rows.Scan(&tbl); err != nil {
			return err
		}
		tables = append(tables, tbl)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	if len(tables) == 0 {
		return nil
	}

	_, err = pool.Exec(ctx, fmt.Sprintf("TRUNCATE %s RESTART IDENTITY CASCADE", strings.Join(tables, ", ")))
	return err
}
