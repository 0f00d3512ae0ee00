package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"skilllink/internal/domain/entities"
	mock_interfaces "skilllink/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestComputeWeekWindow(t *testing.T) {
	// 2026-03-10 is a Tuesday; its week starts Sunday 2026-03-08.
	now := time.Date(2026, time.March, 10, 15, 30, 0, 0, time.UTC)

	t.Run("current week", func(t *testing.T) {
		w := ComputeWeekWindow(now, 0)
		wantStart := day(2026, time.March, 8)
		if !w.Start.Equal(wantStart) {
			t.Fatalf("expected start %v, got %v", wantStart, w.Start)
		}
		wantEnd := day(2026, time.March, 15).Add(-time.Nanosecond)
		if !w.End.Equal(wantEnd) {
			t.Fatalf("expected end %v, got %v", wantEnd, w.End)
		}
	})

	t.Run("previous and next week", func(t *testing.T) {
		prev := ComputeWeekWindow(now, -1)
		if !prev.Start.Equal(day(2026, time.March, 1)) {
			t.Fatalf("expected previous week start Mar 1, got %v", prev.Start)
		}
		next := ComputeWeekWindow(now, 1)
		if !next.Start.Equal(day(2026, time.March, 15)) {
			t.Fatalf("expected next week start Mar 15, got %v", next.Start)
		}
	})

	t.Run("sunday is its own week start", func(t *testing.T) {
		sunday := time.Date(2026, time.March, 8, 0, 0, 0, 0, time.UTC)
		w := ComputeWeekWindow(sunday, 0)
		if !w.Start.Equal(day(2026, time.March, 8)) {
			t.Fatalf("expected start Mar 8, got %v", w.Start)
		}
	})

	t.Run("saturday belongs to the week that started six days earlier", func(t *testing.T) {
		saturday := time.Date(2026, time.March, 14, 23, 59, 0, 0, time.UTC)
		w := ComputeWeekWindow(saturday, 0)
		if !w.Start.Equal(day(2026, time.March, 8)) {
			t.Fatalf("expected start Mar 8, got %v", w.Start)
		}
	})

	t.Run("window contains its boundaries", func(t *testing.T) {
		w := ComputeWeekWindow(now, 0)
		if !w.Contains(w.Start) {
			t.Fatal("start must be inside the window")
		}
		if !w.Contains(w.End) {
			t.Fatal("end must be inside the window")
		}
		if w.Contains(w.Start.Add(-time.Nanosecond)) {
			t.Fatal("instant before start must be outside")
		}
		if w.Contains(w.End.Add(time.Nanosecond)) {
			t.Fatal("instant after end must be outside")
		}
	})
}

func TestAggregate(t *testing.T) {
	w := ComputeWeekWindow(time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC), 0)

	completed := func(id string, d time.Time, rate float64) entities.Booking {
		return entities.Booking{ID: id, Status: entities.BookingStatusCompleted, ScheduledDate: d, Rate: rate}
	}

	t.Run("seven ascending buckets with zero defaults", func(t *testing.T) {
		totals := Aggregate(nil, w)
		if len(totals) != 7 {
			t.Fatalf("expected 7 buckets, got %d", len(totals))
		}
		for i, dt := range totals {
			want := w.Start.AddDate(0, 0, i)
			if !dt.Date.Equal(want) {
				t.Fatalf("bucket %d: expected %v, got %v", i, want, dt.Date)
			}
			if dt.Total != 0 {
				t.Fatalf("bucket %d: expected zero total, got %f", i, dt.Total)
			}
		}
	})

	t.Run("sums rates per day", func(t *testing.T) {
		totals := Aggregate([]entities.Booking{
			completed("b-1", day(2026, time.March, 9), 40),
			completed("b-2", day(2026, time.March, 9), 30),
			completed("b-3", day(2026, time.March, 11), 25),
		}, w)
		if totals[1].Total != 70 {
			t.Fatalf("expected 70 on Monday, got %f", totals[1].Total)
		}
		if totals[3].Total != 25 {
			t.Fatalf("expected 25 on Wednesday, got %f", totals[3].Total)
		}
	})

	t.Run("caps each day independently", func(t *testing.T) {
		totals := Aggregate([]entities.Booking{
			completed("b-1", day(2026, time.March, 9), 40),
			completed("b-2", day(2026, time.March, 9), 30),
			completed("b-3", day(2026, time.March, 9), 50),
			completed("b-4", day(2026, time.March, 10), 60),
		}, w)
		if totals[1].Total != DailyEarningsCap {
			t.Fatalf("expected capped total %f, got %f", DailyEarningsCap, totals[1].Total)
		}
		if totals[2].Total != 60 {
			t.Fatalf("cap must apply per day, got %f", totals[2].Total)
		}
	})

	t.Run("exact cap is not clamped", func(t *testing.T) {
		totals := Aggregate([]entities.Booking{
			completed("b-1", day(2026, time.March, 9), 100),
		}, w)
		if totals[1].Total != 100 {
			t.Fatalf("expected 100, got %f", totals[1].Total)
		}
	})

	t.Run("one cent over the cap is clamped", func(t *testing.T) {
		totals := Aggregate([]entities.Booking{
			completed("b-1", day(2026, time.March, 9), 100.01),
		}, w)
		if totals[1].Total != DailyEarningsCap {
			t.Fatalf("expected %f, got %f", DailyEarningsCap, totals[1].Total)
		}
	})

	t.Run("ignores non-completed and out-of-window bookings", func(t *testing.T) {
		totals := Aggregate([]entities.Booking{
			{ID: "b-1", Status: entities.BookingStatusActive, ScheduledDate: day(2026, time.March, 9), Rate: 40},
			{ID: "b-2", Status: entities.BookingStatusPending, ScheduledDate: day(2026, time.March, 9), Rate: 40},
			completed("b-3", day(2026, time.March, 1), 40),
			completed("b-4", day(2026, time.March, 16), 40),
		}, w)
		for i, dt := range totals {
			if dt.Total != 0 {
				t.Fatalf("bucket %d: expected zero, got %f", i, dt.Total)
			}
		}
	})
}

func TestCalendarEvents(t *testing.T) {
	t.Run("projects active bookings as one-hour events", func(t *testing.T) {
		events, issues := CalendarEvents([]entities.Booking{
			{ID: "b-1", ServiceLabel: "Plumbing", Status: entities.BookingStatusActive, ScheduledDate: day(2026, time.March, 9), ScheduledTime: "14:30"},
			{ID: "b-2", Status: entities.BookingStatusPending, ScheduledDate: day(2026, time.March, 9), ScheduledTime: "10:00"},
			{ID: "b-3", Status: entities.BookingStatusCompleted, ScheduledDate: day(2026, time.March, 9), ScheduledTime: "10:00"},
		})
		if len(issues) != 0 {
			t.Fatalf("unexpected issues: %v", issues)
		}
		if len(events) != 1 {
			t.Fatalf("expected 1 event, got %d", len(events))
		}
		ev := events[0]
		wantStart := time.Date(2026, time.March, 9, 14, 30, 0, 0, time.UTC)
		if !ev.Start.Equal(wantStart) {
			t.Fatalf("expected start %v, got %v", wantStart, ev.Start)
		}
		if !ev.End.Equal(wantStart.Add(time.Hour)) {
			t.Fatalf("expected one-hour event, got end %v", ev.End)
		}
		if ev.ServiceLabel != "Plumbing" {
			t.Fatalf("expected service label, got %q", ev.ServiceLabel)
		}
	})

	t.Run("reports active bookings with malformed schedules", func(t *testing.T) {
		events, issues := CalendarEvents([]entities.Booking{
			{ID: "b-bad", Status: entities.BookingStatusActive, ScheduledTime: "14:30"},
		})
		if len(events) != 0 {
			t.Fatalf("expected no events, got %v", events)
		}
		if len(issues) != 1 || issues[0].BookingID != "b-bad" {
			t.Fatalf("expected issue for b-bad, got %v", issues)
		}
		if !errors.Is(issues[0].Err, entities.ErrMalformedSchedule) {
			t.Fatalf("expected ErrMalformedSchedule, got %v", issues[0].Err)
		}
	})
}

func TestLedgerUseCase_WeeklyEarnings(t *testing.T) {
	now := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)

	t.Run("empty provider id", func(t *testing.T) {
		uc := NewLedgerUseCase(nil)
		_, _, err := uc.WeeklyEarnings(context.Background(), "  ", 0)
		if !errors.Is(err, ErrInvalidProviderID) {
			t.Fatalf("expected ErrInvalidProviderID, got %v", err)
		}
	})

	t.Run("queries completed bookings inside the window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewLedgerUseCase(repo).WithClock(fixedClock(now))

		want := ComputeWeekWindow(now, -1)
		repo.EXPECT().
			ListByProviderAndStatus(gomock.Any(), "prov-1", entities.BookingStatusCompleted, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ entities.BookingStatus, from, to *time.Time) ([]entities.Booking, error) {
				if from == nil || !from.Equal(want.Start) {
					t.Fatalf("expected from %v, got %v", want.Start, from)
				}
				if to == nil || !to.Equal(want.End) {
					t.Fatalf("expected to %v, got %v", want.End, to)
				}
				return []entities.Booking{
					{ID: "b-1", Status: entities.BookingStatusCompleted, ScheduledDate: want.Start, Rate: 55},
				}, nil
			})

		w, totals, err := uc.WeeklyEarnings(context.Background(), "prov-1", -1)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !w.Start.Equal(want.Start) {
			t.Fatalf("expected window start %v, got %v", want.Start, w.Start)
		}
		if totals[0].Total != 55 {
			t.Fatalf("expected 55 on Sunday, got %f", totals[0].Total)
		}
	})

	t.Run("repo error propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewLedgerUseCase(repo).WithClock(fixedClock(now))

		repo.EXPECT().
			ListByProviderAndStatus(gomock.Any(), "prov-1", entities.BookingStatusCompleted, gomock.Any(), gomock.Any()).
			Return(nil, errors.New("db"))

		_, _, err := uc.WeeklyEarnings(context.Background(), "prov-1", 0)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestLedgerUseCase_Events(t *testing.T) {
	t.Run("empty provider id", func(t *testing.T) {
		uc := NewLedgerUseCase(nil)
		_, _, err := uc.Events(context.Background(), "")
		if !errors.Is(err, ErrInvalidProviderID) {
			t.Fatalf("expected ErrInvalidProviderID, got %v", err)
		}
	})

	t.Run("returns projected events", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewLedgerUseCase(repo)

		repo.EXPECT().
			ListByProviderAndStatus(gomock.Any(), "prov-1", entities.BookingStatusActive, gomock.Nil(), gomock.Nil()).
			Return([]entities.Booking{
				{ID: "b-1", ServiceLabel: "Tutoring", Status: entities.BookingStatusActive, ScheduledDate: day(2026, time.March, 9), ScheduledTime: "09:00"},
			}, nil)

		events, issues, err := uc.Events(context.Background(), "prov-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(issues) != 0 {
			t.Fatalf("unexpected issues: %v", issues)
		}
		if len(events) != 1 || events[0].BookingID != "b-1" {
			t.Fatalf("expected event for b-1, got %v", events)
		}
	})
}
