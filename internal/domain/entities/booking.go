package entities

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// BookingStatus represents the lifecycle state of a booking.
//
// Domain notes:
//   - pending is the initial state; a booking stored without a status
//     is read as pending.
//   - active, rejected, expired and completed are terminal for this
//     service. A separate settlement process moves active bookings to
//     completed; that transition is out of scope here.

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusActive    BookingStatus = "active"
	BookingStatusRejected  BookingStatus = "rejected"
	BookingStatusExpired   BookingStatus = "expired"
	BookingStatusCompleted BookingStatus = "completed"
)

// Schedule format constants. Times are stored as 24-hour wall clock
// strings and dates with day precision, both interpreted in UTC.
const (
	TimeLayout = "15:04"      // HH:mm
	DateLayout = "2006-01-02" // YYYY-MM-DD
)

// ErrMalformedSchedule marks a booking whose scheduled date/time
// cannot be combined into an absolute instant. Such bookings are never
// auto-expired; the condition is reported instead.
var ErrMalformedSchedule = errors.New("malformed schedule")

// Booking is a customer-to-provider service request persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (customer_id-index): customer_id
//   - GSI2 (provider_id-index): provider_id
//
// Monetary representation:
//   - Rate is fixed at creation and never mutated by lifecycle or
//     ledger logic.

type Booking struct {
	ID            string        `json:"id"`
	CustomerID    string        `json:"customer_id"`
	ProviderID    string        `json:"provider_id"`
	ServiceLabel  string        `json:"service_label"`
	ScheduledDate time.Time     `json:"scheduled_date"`
	ScheduledTime string        `json:"scheduled_time"`
	Rate          float64       `json:"rate"`
	Status        BookingStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// EffectiveStatus treats a missing stored status as pending.
func (b Booking) EffectiveStatus() BookingStatus {
	if b.Status == "" {
		return BookingStatusPending
	}
	return b.Status
}

// Terminal reports whether no further transition is allowed from the
// booking's current state by this service.
func (b Booking) Terminal() bool {
	return b.EffectiveStatus() != BookingStatusPending
}

// ScheduleAt combines ScheduledDate and ScheduledTime into the
// appointment's absolute end-instant in UTC. The result is the single
// reference point for expiry evaluation and calendar projection.
func (b Booking) ScheduleAt() (time.Time, error) {
	if b.ScheduledDate.IsZero() {
		return time.Time{}, fmt.Errorf("%w: missing scheduled date", ErrMalformedSchedule)
	}
	raw := strings.TrimSpace(b.ScheduledTime)
	if raw == "" {
		return time.Time{}, fmt.Errorf("%w: missing scheduled time", ErrMalformedSchedule)
	}
	tod, err := time.Parse(TimeLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: scheduled time %q", ErrMalformedSchedule, raw)
	}
	d := b.ScheduledDate.UTC()
	return time.Date(d.Year(), d.Month(), d.Day(), tod.Hour(), tod.Minute(), 0, 0, time.UTC), nil
}

// ExpiredAt reports whether the booking's end-instant is strictly
// before now. Bookings with a malformed schedule never expire.
func (b Booking) ExpiredAt(now time.Time) (bool, error) {
	at, err := b.ScheduleAt()
	if err != nil {
		return false, err
	}
	return at.Before(now), nil
}
