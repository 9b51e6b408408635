package telemetry

import (
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"residash.io/resdb"
)

// timestampLayouts are tried in order when parsing the Timestamp column.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// rawTelemetryData reads the CSV bytes from a local file or a URL.
func rawTelemetryData(source string, isLocalFile bool) ([]byte, error) {
	if isLocalFile {
		b, err := os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("error reading local telemetry file: %w", err)
		}
		return b, nil
	}

	resp, err := http.Get(source)
	if err != nil {
		return nil, fmt.Errorf("error downloading telemetry data: %w", err)
	}
	defer resp.Body.Close() // nolint

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("error downloading telemetry data: unexpected status %s", resp.Status)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading telemetry data: %w", err)
	}
	return b, nil
}

// ParseRecords parses residency CSV data into records. The header row
// must contain System, Timestamp and Residency columns (matched
// case-insensitively); extra columns are ignored. Malformed rows are
// dropped and reported as warnings, never as errors.
func ParseRecords(data []byte) ([]resdb.Record, []string, error) {
	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	systemCol, timestampCol, residencyCol := -1, -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "system":
			systemCol = i
		case "timestamp":
			timestampCol = i
		case "residency":
			residencyCol = i
		}
	}
	if systemCol == -1 || timestampCol == -1 || residencyCol == -1 {
		return nil, nil, fmt.Errorf("CSV header missing required columns (need System, Timestamp, Residency; got %v)", header)
	}

	var records []resdb.Record
	var warnings []string
	line := 1
	for {
		line++
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("line %d: %v", line, err))
			continue
		}

		record, warning := parseRow(row, line, systemCol, timestampCol, residencyCol)
		if warning != "" {
			warnings = append(warnings, warning)
			continue
		}
		records = append(records, record)
	}

	return records, warnings, nil
}

func parseRow(row []string, line, systemCol, timestampCol, residencyCol int) (resdb.Record, string) {
	maxCol := systemCol
	if timestampCol > maxCol {
		maxCol = timestampCol
	}
	if residencyCol > maxCol {
		maxCol = residencyCol
	}
	if len(row) <= maxCol {
		return resdb.Record{}, fmt.Sprintf("line %d: too few fields (%d)", line, len(row))
	}

	systemID := strings.TrimSpace(row[systemCol])
	if systemID == "" {
		return resdb.Record{}, fmt.Sprintf("line %d: empty system identifier", line)
	}

	at, ok := parseTimestamp(strings.TrimSpace(row[timestampCol]))
	if !ok {
		return resdb.Record{}, fmt.Sprintf("line %d: unparseable timestamp %q", line, row[timestampCol])
	}

	residency, err := strconv.ParseFloat(strings.TrimSpace(row[residencyCol]), 64)
	if err != nil {
		return resdb.Record{}, fmt.Sprintf("line %d: non-numeric residency %q", line, row[residencyCol])
	}

	return resdb.Record{SystemID: systemID, RecordedAt: at, Residency: residency}, ""
}

func parseTimestamp(value string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if at, err := time.Parse(layout, value); err == nil {
			return at.UTC(), true
		}
	}
	return time.Time{}, false
}
