package resdb

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"residash.io/internal/logging"
)

// Client is the main entry point for the residency database
type Client struct {
	config Config
	DB     *sql.DB
	logger *slog.Logger
}

// NewClient creates a new Client with the provided configuration
func NewClient(config Config, logger *slog.Logger) (*Client, error) {
	db, err := createDB(config)
	if err != nil {
		return nil, fmt.Errorf("unable to create residency database: %w", err)
	}
	if config.verbose {
		logging.LogOperation(logger, "created residency tables",
			slog.String("db_path", config.DBPath))
	}

	return &Client{
		config: config,
		DB:     db,
		logger: logger,
	}, nil
}

func (c *Client) Close() error {
	return c.DB.Close()
}

// ReplaceAll swaps the entire working copy for the given records inside
// one transaction, so readers never observe a partially loaded dataset.
func (c *Client) ReplaceAll(ctx context.Context, records []Record) (err error) {
	start := time.Now()

	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer logging.SafeRollbackWithLogging(tx, c.logger, "replace_all_records")

	if _, err = tx.ExecContext(ctx, `DELETE FROM residency_records;`); err != nil {
		return fmt.Errorf("error clearing records: %w", err)
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM systems;`); err != nil {
		return fmt.Errorf("error clearing systems: %w", err)
	}

	insertSystem, err := tx.PrepareContext(ctx, `
		INSERT INTO systems (system_id, record_count, first_seen, last_seen)
		VALUES (?, 0, ?, ?)
		ON CONFLICT(system_id) DO UPDATE SET
			first_seen = MIN(first_seen, excluded.first_seen),
			last_seen = MAX(last_seen, excluded.last_seen);
	`)
	if err != nil {
		return fmt.Errorf("error preparing system insert: %w", err)
	}
	defer logging.SafeCloseWithLogging(insertSystem, c.logger, "insert_system_stmt")

	insertRecord, err := tx.PrepareContext(ctx, `
		INSERT INTO residency_records (system_id, recorded_at, residency)
		VALUES (?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("error preparing record insert: %w", err)
	}
	defer logging.SafeCloseWithLogging(insertRecord, c.logger, "insert_record_stmt")

	for _, record := range records {
		at := record.RecordedAt.UnixMilli()
		if _, err = insertSystem.ExecContext(ctx, record.SystemID, at, at); err != nil {
			return fmt.Errorf("error inserting system %q: %w", record.SystemID, err)
		}
		if _, err = insertRecord.ExecContext(ctx, record.SystemID, at, record.Residency); err != nil {
			return fmt.Errorf("error inserting record for %q: %w", record.SystemID, err)
		}
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE systems SET record_count = (
			SELECT COUNT(*) FROM residency_records r
			WHERE r.system_id = systems.system_id
		);
	`)
	if err != nil {
		return fmt.Errorf("error counting records: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error committing records: %w", err)
	}

	if c.config.verbose {
		logging.LogOperation(c.logger, "replaced residency records",
			slog.Int("records", len(records)),
			slog.Duration("duration", time.Since(start)))
	}
	return nil
}
