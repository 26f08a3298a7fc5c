package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisitorStats_RecordMovesAllCountersTogether(t *testing.T) {
	stats := NewVisitorStats()

	stats.Record("Windows", "2026-08-30")
	stats.Record("Windows", "2026-08-31")
	stats.Record("Linux", "2026-08-31")

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, map[string]int{"Windows": 2, "Linux": 1}, stats.ByOS)

	require.Contains(t, stats.Daily, "2026-08-31")
	day := stats.Daily["2026-08-31"]
	assert.Equal(t, 2, day.Total)
	assert.Equal(t, map[string]int{"Windows": 1, "Linux": 1}, day.ByOS)
}

func TestVisitorStats_RecordToleratesNilMaps(t *testing.T) {
	stats := &VisitorStats{}

	stats.Record("iOS", "2026-08-31")

	assert.Equal(t, 1, stats.Total)
	assert.Equal(t, 1, stats.ByOS["iOS"])
	require.NotNil(t, stats.Daily["2026-08-31"])
	assert.Equal(t, 1, stats.Daily["2026-08-31"].ByOS["iOS"])
}
