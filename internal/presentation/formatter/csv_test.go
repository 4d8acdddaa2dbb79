package formatter

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVFormatterFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewCSVFormatter(&buf).Format(sampleReport()))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, []string{"Date", "Start", "End", "Duration (s)", "Duration", "Reason", "ID"}, rows[0])
	assert.Equal(t, []string{"2025-10-30", "2025-10-30 23:00:00 +0800", "2025-10-31 01:00:00 +0800", "7200", "2h 0m", "Idle Sleep", "r1"}, rows[1])
	assert.Equal(t, "2025-10-29", rows[3][0])
	assert.Equal(t, "19", rows[3][3])
	assert.Equal(t, "Software Sleep pid=157", rows[3][5])
}

func TestCSVFormatterEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewCSVFormatter(&buf).Format(emptyReport()))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 1, "only the header")
}
