package entity

import (
	"time"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPaid    PaymentStatus = "PAID"
	PaymentStatusFailed  PaymentStatus = "FAILED"
)

type TemporalStatus string

const (
	TemporalStatusUpcoming  TemporalStatus = "upcoming"
	TemporalStatusActive    TemporalStatus = "active"
	TemporalStatusCompleted TemporalStatus = "completed"
)

// Booking is the canonical read view of a server-owned booking record. All
// upstream response shapes are mapped onto it at the remote-client boundary.
type Booking struct {
	ID            string
	HotelID       string
	HotelName     string
	FirstName     string
	LastName      string
	Email         string
	PhoneNumber   string
	RoomNumber    int
	CheckIn       time.Time
	CheckOut      time.Time
	PaymentStatus PaymentStatus
	CreatedAt     time.Time
}

// DeriveTemporalStatus classifies a stay relative to now. Pure: the same
// (now, checkIn, checkOut) triple always yields the same status.
func DeriveTemporalStatus(now, checkIn, checkOut time.Time) TemporalStatus {
	switch {
	case now.Before(checkIn):
		return TemporalStatusUpcoming
	case now.After(checkOut):
		return TemporalStatusCompleted
	default:
		return TemporalStatusActive
	}
}

// TemporalStatus derives the upcoming/active/completed classification for
// this booking's stay dates.
func (b *Booking) TemporalStatus(now time.Time) TemporalStatus {
	return DeriveTemporalStatus(now, b.CheckIn, b.CheckOut)
}
