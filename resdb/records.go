package resdb

import (
	"context"
	"time"
)

// Record is one residency measurement for a system
type Record struct {
	SystemID   string    // system identifier
	RecordedAt time.Time // measurement timestamp
	Residency  float64   // residency value (percent)
}

// System summarizes one system's records in the working copy
type System struct {
	ID          string
	RecordCount int64
	FirstSeen   time.Time
	LastSeen    time.Time
}

// QuerySystems retrieves every known system ordered by identifier.
func (c *Client) QuerySystems(ctx context.Context) ([]System, error) {
	rows, err := c.DB.QueryContext(
		ctx,
		`SELECT system_id, record_count, first_seen, last_seen
			FROM systems
			ORDER BY system_id`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	var systems []System
	for rows.Next() {
		var system System
		var first, last int64
		if err := rows.Scan(&system.ID, &system.RecordCount, &first, &last); err != nil {
			return nil, err
		}
		system.FirstSeen = time.UnixMilli(first).UTC()
		system.LastSeen = time.UnixMilli(last).UTC()
		systems = append(systems, system)
	}

	return systems, rows.Err()
}

// GetSystem retrieves a single system summary. It returns sql.ErrNoRows
// wrapped by database/sql when the system is unknown.
func (c *Client) GetSystem(ctx context.Context, id string) (System, error) {
	var system System
	var first, last int64
	err := c.DB.QueryRowContext(
		ctx,
		`SELECT system_id, record_count, first_seen, last_seen
			FROM systems
			WHERE system_id = ?`,
		id,
	).Scan(&system.ID, &system.RecordCount, &first, &last)
	if err != nil {
		return System{}, err
	}
	system.FirstSeen = time.UnixMilli(first).UTC()
	system.LastSeen = time.UnixMilli(last).UTC()
	return system, nil
}

// QueryRecords retrieves one system's records ordered by timestamp,
// optionally restricted to [from, to). Zero times disable either bound.
func (c *Client) QueryRecords(ctx context.Context, systemID string, from, to time.Time) ([]Record, error) {
	query := `SELECT system_id, recorded_at, residency
		FROM residency_records
		WHERE system_id = ?`
	args := []any{systemID}

	if !from.IsZero() {
		query += ` AND recorded_at >= ?`
		args = append(args, from.UnixMilli())
	}
	if !to.IsZero() {
		query += ` AND recorded_at < ?`
		args = append(args, to.UnixMilli())
	}
	query += ` ORDER BY recorded_at`

	rows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	var records []Record
	for rows.Next() {
		var record Record
		var at int64
		if err := rows.Scan(&record.SystemID, &at, &record.Residency); err != nil {
			return nil, err
		}
		record.RecordedAt = time.UnixMilli(at).UTC()
		records = append(records, record)
	}

	return records, rows.Err()
}
