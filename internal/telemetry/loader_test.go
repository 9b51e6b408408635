package telemetry

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecordsFixture(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("../../testdata", "sample_residency.csv"))
	require.NoError(t, err)

	records, warnings, err := ParseRecords(data)
	require.NoError(t, err)

	// 12 sys-alpha + 4 sys-beta + 1 surviving sys-gamma row.
	assert.Len(t, records, 17)

	// Bad timestamp, non-numeric residency, empty system.
	assert.Len(t, warnings, 3)

	first := records[0]
	assert.Equal(t, "sys-alpha", first.SystemID)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), first.RecordedAt)
	assert.Equal(t, 40.0, first.Residency)
}

func TestParseRecordsHeaderIsCaseInsensitive(t *testing.T) {
	data := []byte("SYSTEM,timestamp,ReSiDeNcY\nsys-a,2025-06-01 10:00:00,12.5\n")
	records, warnings, err := ParseRecords(data)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Empty(t, warnings)
	assert.Equal(t, 12.5, records[0].Residency)
}

func TestParseRecordsIgnoresExtraColumns(t *testing.T) {
	data := []byte("System,Timestamp,Residency,Region\nsys-a,2025-06-01 10:00:00,12.5,us-east\n")
	records, _, err := ParseRecords(data)
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestParseRecordsMissingColumnFails(t *testing.T) {
	data := []byte("System,Timestamp\nsys-a,2025-06-01 10:00:00\n")
	_, _, err := ParseRecords(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required columns")
}

func TestParseRecordsEmptyInputFails(t *testing.T) {
	_, _, err := ParseRecords(nil)
	assert.Error(t, err)
}

func TestParseRecordsShortRowIsDropped(t *testing.T) {
	data := []byte("System,Timestamp,Residency\nsys-a,2025-06-01 10:00:00\nsys-a,2025-06-01 10:01:00,50\n")
	records, warnings, err := ParseRecords(data)
	require.NoError(t, err)
	assert.Len(t, records, 1)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "too few fields")
}

func TestParseRecordsTimestampLayouts(t *testing.T) {
	testCases := []struct {
		name  string
		stamp string
	}{
		{"RFC3339", "2025-06-01T10:00:00Z"},
		{"space separated", "2025-06-01 10:00:00"},
		{"T separated no zone", "2025-06-01T10:00:00"},
		{"minute precision", "2025-06-01 10:00"},
		{"date only", "2025-06-01"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			data := []byte("System,Timestamp,Residency\nsys-a," + tc.stamp + ",1\n")
			records, warnings, err := ParseRecords(data)
			require.NoError(t, err)
			assert.Empty(t, warnings)
			assert.Len(t, records, 1)
		})
	}
}
