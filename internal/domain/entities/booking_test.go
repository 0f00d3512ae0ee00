package entities

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBooking_EffectiveStatus(t *testing.T) {
	t.Run("empty status reads as pending", func(t *testing.T) {
		b := Booking{}
		if got := b.EffectiveStatus(); got != BookingStatusPending {
			t.Fatalf("expected pending, got %s", got)
		}
	})

	t.Run("stored status wins", func(t *testing.T) {
		b := Booking{Status: BookingStatusActive}
		if got := b.EffectiveStatus(); got != BookingStatusActive {
			t.Fatalf("expected active, got %s", got)
		}
	})
}

func TestBooking_Terminal(t *testing.T) {
	cases := []struct {
		status BookingStatus
		want   bool
	}{
		{"", false},
		{BookingStatusPending, false},
		{BookingStatusActive, true},
		{BookingStatusRejected, true},
		{BookingStatusExpired, true},
		{BookingStatusCompleted, true},
	}
	for _, tc := range cases {
		b := Booking{Status: tc.status}
		if got := b.Terminal(); got != tc.want {
			t.Fatalf("status %q: expected terminal=%v, got %v", tc.status, tc.want, got)
		}
	}
}

func TestBooking_ScheduleAt(t *testing.T) {
	t.Run("combines date and time in UTC", func(t *testing.T) {
		b := Booking{ScheduledDate: date(2026, time.March, 9), ScheduledTime: "14:30"}
		at, err := b.ScheduleAt()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2026, time.March, 9, 14, 30, 0, 0, time.UTC)
		if !at.Equal(want) {
			t.Fatalf("expected %v, got %v", want, at)
		}
	})

	t.Run("missing date", func(t *testing.T) {
		b := Booking{ScheduledTime: "14:30"}
		if _, err := b.ScheduleAt(); !errors.Is(err, ErrMalformedSchedule) {
			t.Fatalf("expected ErrMalformedSchedule, got %v", err)
		}
	})

	t.Run("missing time", func(t *testing.T) {
		b := Booking{ScheduledDate: date(2026, time.March, 9), ScheduledTime: "  "}
		if _, err := b.ScheduleAt(); !errors.Is(err, ErrMalformedSchedule) {
			t.Fatalf("expected ErrMalformedSchedule, got %v", err)
		}
	})

	t.Run("unparseable time", func(t *testing.T) {
		b := Booking{ScheduledDate: date(2026, time.March, 9), ScheduledTime: "2pm"}
		if _, err := b.ScheduleAt(); !errors.Is(err, ErrMalformedSchedule) {
			t.Fatalf("expected ErrMalformedSchedule, got %v", err)
		}
	})
}

func TestBooking_ExpiredAt(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	t.Run("yesterday is expired", func(t *testing.T) {
		b := Booking{ScheduledDate: date(2026, time.March, 9), ScheduledTime: "10:00"}
		past, err := b.ExpiredAt(now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !past {
			t.Fatal("expected expired")
		}
	})

	t.Run("later today is not expired", func(t *testing.T) {
		b := Booking{ScheduledDate: date(2026, time.March, 10), ScheduledTime: "18:00"}
		past, err := b.ExpiredAt(now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if past {
			t.Fatal("expected not expired")
		}
	})

	t.Run("exactly now is not expired", func(t *testing.T) {
		b := Booking{ScheduledDate: date(2026, time.March, 10), ScheduledTime: "12:00"}
		past, err := b.ExpiredAt(now)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if past {
			t.Fatal("boundary instant must not count as expired")
		}
	})

	t.Run("malformed schedule reports instead of expiring", func(t *testing.T) {
		b := Booking{ScheduledDate: date(2026, time.March, 9)}
		past, err := b.ExpiredAt(now)
		if !errors.Is(err, ErrMalformedSchedule) {
			t.Fatalf("expected ErrMalformedSchedule, got %v", err)
		}
		if past {
			t.Fatal("malformed schedule must never expire")
		}
	})
}
