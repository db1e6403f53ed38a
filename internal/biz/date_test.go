package biz

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2024-05-01", "2024-05-01"},
		{"2024-05-01T23:30:00Z", "2024-05-01"},
		{"2024-05-01T23:30:00+07:00", "2024-05-01"},
		{"2024/05/01", "2024-05-01"},
		{"05/01/2024", "2024-05-01"},
		{"May 1, 2024", "2024-05-01"},
		{"", ""},
		{"tomorrow", "tomorrow"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeDate(tt.in), tt.in)
	}
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "", FormatDate(time.Time{}))
	ict := time.FixedZone("ICT", 7*3600)
	assert.Equal(t, "2024-04-30", FormatDate(time.Date(2024, 5, 1, 6, 0, 0, 0, ict)))
}

func TestParseDateTime(t *testing.T) {
	ict := time.FixedZone("ICT", 7*3600)

	got, ok := ParseDateTime("2024-05-01T19:30:00", ict)
	assert.True(t, ok)
	assert.True(t, got.Equal(time.Date(2024, 5, 1, 19, 30, 0, 0, ict)))

	got, ok = ParseDateTime("2024-05-01T12:30:00Z", ict)
	assert.True(t, ok)
	assert.True(t, got.Equal(time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC)))

	got, ok = ParseDateTime("2024-05-01 08:00:00", nil)
	assert.True(t, ok)
	assert.True(t, got.Equal(time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)))

	_, ok = ParseDateTime("", ict)
	assert.False(t, ok)
	_, ok = ParseDateTime("soon", ict)
	assert.False(t, ok)
}

func TestNextDays(t *testing.T) {
	ict := time.FixedZone("ICT", 7*3600)
	now := time.Date(2024, 12, 30, 20, 0, 0, 0, time.UTC)

	assert.Equal(t, []string{"2024-12-31", "2025-01-01", "2025-01-02"}, NextDays(now, 3, ict))
	assert.Equal(t, []string{"2024-12-30", "2024-12-31"}, NextDays(now, 2, nil))
	assert.Empty(t, NextDays(now, 0, ict))
}
