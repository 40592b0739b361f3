package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthsBetween(t *testing.T) {
	base := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{"exact year", base, base.AddDate(1, 0, 0), 12},
		{"one month", base, time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC), 1},
		{"partial month floors", base, time.Date(2026, 4, 14, 0, 0, 0, 0, time.UTC), 0},
		{"same instant", base, base, 0},
		{"past date goes negative", base, time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC), -2},
		{"crosses year boundary", base, time.Date(2027, 1, 20, 0, 0, 0, 0, time.UTC), 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MonthsBetween(tt.from, tt.to))
		})
	}
}

func TestNormalizeDeviceModel(t *testing.T) {
	assert.Equal(t, "iphone14.3", NormalizeDeviceModel("iPhone14,3"))
	assert.Equal(t, "arm64", NormalizeDeviceModel("arm64"))
}

func TestLanguageCode(t *testing.T) {
	assert.Equal(t, "en", LanguageCode("en-US"))
	assert.Equal(t, "de", LanguageCode("de_DE"))
	assert.Equal(t, "fr", LanguageCode("fr"))
	assert.Equal(t, "en", LanguageCode(""))
}

func TestCountryCode(t *testing.T) {
	assert.Equal(t, "US", CountryCode("en_US.UTF-8"))
	assert.Equal(t, "DE", CountryCode("de-DE"))
	assert.Equal(t, "US", CountryCode("en"))
	assert.Equal(t, "US", CountryCode(""))
}

func TestIsDateOverdue(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)
	assert.True(t, IsDateOverdue(now.AddDate(0, 0, -1), now))
	assert.False(t, IsDateOverdue(now, now))
	assert.False(t, IsDateOverdue(now.AddDate(0, 0, 1), now))
}
