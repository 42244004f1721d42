package usecase

import (
	"time"

	"hotel-storefront/internal/dto/response"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// pricePrinter renders grouped en-US numbers, e.g. "$1,200.00".
var pricePrinter = message.NewPrinter(language.AmericanEnglish)

// CalculateStayPrice computes the provisional total for a stay:
// nights = max(1, whole days between the dates), total = pricePerNight ×
// nights. Same-day or missing inputs price as zero nights only when a date
// or rate is absent; otherwise at least one night is always charged.
func CalculateStayPrice(pricePerNight float64, checkIn, checkOut time.Time) response.PriceInfo {
	if pricePerNight == 0 || checkIn.IsZero() || checkOut.IsZero() {
		return response.PriceInfo{
			Nights:         0,
			TotalPrice:     0,
			FormattedPrice: FormatPrice(0),
		}
	}

	nights := daysBetween(checkIn, checkOut)
	if nights < 1 {
		nights = 1
	}

	total := pricePerNight * float64(nights)

	return response.PriceInfo{
		Nights:         nights,
		TotalPrice:     total,
		FormattedPrice: FormatPrice(total),
	}
}

// FormatPrice renders a USD amount for display.
func FormatPrice(amount float64) string {
	return pricePrinter.Sprintf("$%.2f", amount)
}

// daysBetween counts whole calendar days from a to b, ignoring the time of
// day on either side.
func daysBetween(a, b time.Time) int {
	a = time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	b = time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
