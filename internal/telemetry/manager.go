// Package telemetry loads residency telemetry from a CSV source and
// maintains the in-memory working copy the analytical views read from.
package telemetry

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"residash.io/internal/analysis"
	"residash.io/resdb"
)

// Manager owns the loaded residency records and the SQLite working
// copy, and refreshes URL sources in the background.
type Manager struct {
	source      string
	isLocalFile bool
	config      Config
	logger      *slog.Logger
	DB          *resdb.Client

	mu          sync.RWMutex
	records     []resdb.Record
	warnings    []string
	lastUpdated time.Time

	shutdownChan chan struct{}
	wg           sync.WaitGroup
	shutdownOnce sync.Once
}

// InitManager loads the telemetry source, builds the working copy, and
// starts the refresh loop for URL sources. A source that cannot be
// loaded at all is an error; malformed rows only produce warnings.
func InitManager(config Config, logger *slog.Logger) (*Manager, error) {
	isLocalFile := !strings.HasPrefix(config.Source, "http://") && !strings.HasPrefix(config.Source, "https://")

	db, err := resdb.NewClient(resdb.NewConfig(config.DBPath, config.Env, config.Verbose), logger)
	if err != nil {
		return nil, err
	}

	manager := &Manager{
		source:       config.Source,
		isLocalFile:  isLocalFile,
		config:       config,
		logger:       logger,
		DB:           db,
		shutdownChan: make(chan struct{}),
	}

	if err := manager.reload(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	if config.refreshEnabled(isLocalFile) {
		manager.wg.Add(1)
		go manager.refreshPeriodically()
	}

	return manager, nil
}

// Shutdown gracefully shuts down the manager and its background goroutines
func (manager *Manager) Shutdown() {
	manager.shutdownOnce.Do(func() {
		close(manager.shutdownChan)
		manager.wg.Wait()
		if manager.DB != nil {
			_ = manager.DB.Close()
		}
	})
}

// reload fetches, parses and stores the source from scratch.
func (manager *Manager) reload(ctx context.Context) error {
	data, err := rawTelemetryData(manager.source, manager.isLocalFile)
	if err != nil {
		return err
	}

	records, warnings, err := ParseRecords(data)
	if err != nil {
		return fmt.Errorf("error parsing telemetry CSV: %w", err)
	}

	sort.SliceStable(records, func(a, b int) bool {
		if records[a].SystemID != records[b].SystemID {
			return records[a].SystemID < records[b].SystemID
		}
		return records[a].RecordedAt.Before(records[b].RecordedAt)
	})

	if err := manager.DB.ReplaceAll(ctx, records); err != nil {
		return err
	}

	manager.mu.Lock()
	manager.records = records
	manager.warnings = warnings
	manager.lastUpdated = time.Now()
	manager.mu.Unlock()

	for _, warning := range warnings {
		manager.logger.Warn("dropped malformed telemetry row", "detail", warning)
	}
	return nil
}

func (manager *Manager) refreshPeriodically() {
	defer manager.wg.Done()

	ticker := time.NewTicker(manager.config.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			if err := manager.reload(ctx); err != nil {
				manager.logger.Error("failed to refresh telemetry source", "error", err, "source", manager.source)
			}
			cancel()
		case <-manager.shutdownChan:
			return
		}
	}
}

// Systems lists every known system in the working copy.
func (manager *Manager) Systems(ctx context.Context) ([]resdb.System, error) {
	return manager.DB.QuerySystems(ctx)
}

// FindSystem returns the summary for one system, or nil when unknown.
func (manager *Manager) FindSystem(ctx context.Context, id string) *resdb.System {
	system, err := manager.DB.GetSystem(ctx, id)
	if err != nil {
		return nil
	}
	return &system
}

// SeriesForSystem returns one system's residency series, restricted to
// [from, to) when the bounds are non-zero, resampled onto a one-minute
// grid with gaps interpolated. An unknown system yields an empty series.
func (manager *Manager) SeriesForSystem(ctx context.Context, id string, from, to time.Time) (analysis.Series, error) {
	records, err := manager.DB.QueryRecords(ctx, id, from, to)
	if err != nil {
		return analysis.Series{}, err
	}

	series := analysis.Series{
		Timestamps: make([]time.Time, len(records)),
		Values:     make([]float64, len(records)),
	}
	for i, record := range records {
		series.Timestamps[i] = record.RecordedAt
		series.Values[i] = record.Residency
	}
	return analysis.Regularize(series, time.Minute), nil
}

// Records returns the full loaded record set, for the debug UI.
func (manager *Manager) Records() []resdb.Record {
	manager.mu.RLock()
	defer manager.mu.RUnlock()
	return manager.records
}

// Warnings returns the malformed-row warnings from the last load.
func (manager *Manager) Warnings() []string {
	manager.mu.RLock()
	defer manager.mu.RUnlock()
	return manager.warnings
}

// LastUpdated reports when the working copy was last (re)built.
func (manager *Manager) LastUpdated() time.Time {
	manager.mu.RLock()
	defer manager.mu.RUnlock()
	return manager.lastUpdated
}

// LogStatistics writes a one-line summary of the loaded dataset.
func (manager *Manager) LogStatistics() {
	manager.mu.RLock()
	recordCount := len(manager.records)
	warningCount := len(manager.warnings)
	manager.mu.RUnlock()

	systems, err := manager.Systems(context.Background())
	if err != nil {
		manager.logger.Error("failed to count systems", "error", err)
		return
	}

	manager.logger.Info("telemetry loaded",
		"source", manager.source,
		"records", recordCount,
		"systems", len(systems),
		"dropped_rows", warningCount)
}
