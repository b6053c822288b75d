package domain_test

import (
	"testing"

	"github.com/latadairy/dairy_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestMonthWindow(t *testing.T) {
	tests := []struct {
		name      string
		month     int
		year      int
		wantStart string
		wantEnd   string
	}{
		{
			name:      "january",
			month:     1,
			year:      2025,
			wantStart: "2025-01-01",
			wantEnd:   "2025-02-01",
		},
		{
			name:      "mid-year month",
			month:     6,
			year:      2025,
			wantStart: "2025-06-01",
			wantEnd:   "2025-07-01",
		},
		{
			name:      "november stays in the same year",
			month:     11,
			year:      2025,
			wantStart: "2025-11-01",
			wantEnd:   "2025-12-01",
		},
		{
			name:      "december rolls over to january of next year",
			month:     12,
			year:      2025,
			wantStart: "2025-12-01",
			wantEnd:   "2026-01-01",
		},
		{
			name:      "single digit month is zero padded",
			month:     9,
			year:      2024,
			wantStart: "2024-09-01",
			wantEnd:   "2024-10-01",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := domain.MonthWindow(tt.month, tt.year)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
		})
	}
}
