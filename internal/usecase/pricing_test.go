package usecase_test

import (
	"testing"
	"time"

	"hotel-storefront/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCalculateStayPrice(t *testing.T) {
	tests := []struct {
		name          string
		pricePerNight float64
		checkIn       time.Time
		checkOut      time.Time
		wantNights    int
		wantTotal     float64
		wantFormatted string
	}{
		{
			name:          "three night stay",
			pricePerNight: 100,
			checkIn:       date(2026, time.March, 1),
			checkOut:      date(2026, time.March, 4),
			wantNights:    3,
			wantTotal:     300,
			wantFormatted: "$300.00",
		},
		{
			name:          "same day checkout still charges one night",
			pricePerNight: 100,
			checkIn:       date(2026, time.March, 1),
			checkOut:      date(2026, time.March, 1),
			wantNights:    1,
			wantTotal:     100,
			wantFormatted: "$100.00",
		},
		{
			name:          "grouped formatting",
			pricePerNight: 325,
			checkIn:       date(2026, time.March, 1),
			checkOut:      date(2026, time.March, 5),
			wantNights:    4,
			wantTotal:     1300,
			wantFormatted: "$1,300.00",
		},
		{
			name:          "fractional rate",
			pricePerNight: 99.5,
			checkIn:       date(2026, time.March, 1),
			checkOut:      date(2026, time.March, 3),
			wantNights:    2,
			wantTotal:     199,
			wantFormatted: "$199.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := usecase.CalculateStayPrice(tt.pricePerNight, tt.checkIn, tt.checkOut)

			assert.Equal(t, tt.wantNights, got.Nights)
			assert.Equal(t, tt.wantTotal, got.TotalPrice)
			assert.Equal(t, tt.wantFormatted, got.FormattedPrice)
		})
	}
}

func TestCalculateStayPrice_MissingInputs(t *testing.T) {
	got := usecase.CalculateStayPrice(0, date(2026, time.March, 1), date(2026, time.March, 4))
	assert.Equal(t, 0, got.Nights)
	assert.Equal(t, "$0.00", got.FormattedPrice)

	got = usecase.CalculateStayPrice(100, time.Time{}, date(2026, time.March, 4))
	assert.Equal(t, 0, got.Nights)
	assert.Equal(t, float64(0), got.TotalPrice)
	assert.Equal(t, "$0.00", got.FormattedPrice)
}

func TestCalculateStayPrice_IgnoresTimeOfDay(t *testing.T) {
	checkIn := time.Date(2026, time.March, 1, 23, 30, 0, 0, time.UTC)
	checkOut := time.Date(2026, time.March, 4, 1, 15, 0, 0, time.UTC)

	got := usecase.CalculateStayPrice(100, checkIn, checkOut)

	assert.Equal(t, 3, got.Nights)
	assert.Equal(t, float64(300), got.TotalPrice)
}
