package usecase

import (
	"context"
	"strings"
	"time"

	"skilllink/internal/domain/entities"
	"skilllink/internal/usecase/interfaces"
)

// Weekly ledger conventions. Weeks start on Sunday, matching the
// calendar the mobile ledger always rendered, and a single day's
// displayed earnings are clamped to DailyEarningsCap. The clamp only
// affects the returned aggregate, never the stored bookings.
const (
	DailyEarningsCap = 100.0

	weekStartDay = time.Sunday
	eventLength  = time.Hour
)

// WeekWindow is the inclusive [Start, End] range of one calendar week.
type WeekWindow struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the window.
func (w WeekWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// DailyTotal is one ledger bucket: a calendar date and the capped sum
// of completed bookings' rates on that date.
type DailyTotal struct {
	Date  time.Time
	Total float64
}

// CalendarEvent is an active booking projected for calendar rendering.
// Every event lasts exactly one hour; the service does not track
// variable durations.
type CalendarEvent struct {
	BookingID    string
	ServiceLabel string
	Start        time.Time
	End          time.Time
}

// ComputeWeekWindow returns the week containing now shifted by offset
// whole weeks (0 = current, -1 = previous, +1 = next). The window runs
// from Sunday 00:00:00 UTC through the last nanosecond of Saturday.
func ComputeWeekWindow(now time.Time, offset int) WeekWindow {
	now = now.UTC()
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	back := int(day.Weekday() - weekStartDay)
	start := day.AddDate(0, 0, -back+offset*7)
	return WeekWindow{
		Start: start,
		End:   start.AddDate(0, 0, 7).Add(-time.Nanosecond),
	}
}

// Aggregate buckets completed bookings' rates per calendar day of the
// window. The result always has exactly 7 entries in ascending date
// order; days without bookings keep a zero total. Each day's total is
// clamped to DailyEarningsCap on output.
func Aggregate(bookings []entities.Booking, w WeekWindow) []DailyTotal {
	totals := make([]DailyTotal, 7)
	index := make(map[string]int, 7)
	for i := range totals {
		date := w.Start.AddDate(0, 0, i)
		totals[i] = DailyTotal{Date: date}
		index[date.Format(entities.DateLayout)] = i
	}

	for _, b := range bookings {
		if b.EffectiveStatus() != entities.BookingStatusCompleted {
			continue
		}
		d := b.ScheduledDate.UTC()
		if !w.Contains(d) {
			continue
		}
		if i, ok := index[d.Format(entities.DateLayout)]; ok {
			totals[i].Total += b.Rate
		}
	}

	for i := range totals {
		if totals[i].Total > DailyEarningsCap {
			totals[i].Total = DailyEarningsCap
		}
	}
	return totals
}

// CalendarEvents projects active bookings into one-hour display
// events. Bookings in any other status are excluded; active bookings
// whose schedule cannot be parsed are skipped and reported.
func CalendarEvents(bookings []entities.Booking) ([]CalendarEvent, []ScheduleIssue) {
	var events []CalendarEvent
	var issues []ScheduleIssue
	for _, b := range bookings {
		if b.EffectiveStatus() != entities.BookingStatusActive {
			continue
		}
		start, err := b.ScheduleAt()
		if err != nil {
			issues = append(issues, ScheduleIssue{BookingID: b.ID, Err: err})
			continue
		}
		events = append(events, CalendarEvent{
			BookingID:    b.ID,
			ServiceLabel: b.ServiceLabel,
			Start:        start,
			End:          start.Add(eventLength),
		})
	}
	return events, issues
}

// ILedgerUseCase exposes the weekly earnings chart and the calendar
// projection for one provider.

type ILedgerUseCase interface {
	WeeklyEarnings(ctx context.Context, providerID string, offset int) (WeekWindow, []DailyTotal, error)
	Events(ctx context.Context, providerID string) ([]CalendarEvent, []ScheduleIssue, error)
}

type LedgerUseCase struct {
	repo interfaces.IBookingRepository
	now  func() time.Time
}

var _ ILedgerUseCase = (*LedgerUseCase)(nil)

func NewLedgerUseCase(repo interfaces.IBookingRepository) *LedgerUseCase {
	return &LedgerUseCase{repo: repo, now: time.Now}
}

// WithClock overrides the time source. Tests use a fixed instant.
func (u *LedgerUseCase) WithClock(now func() time.Time) *LedgerUseCase {
	u.now = now
	return u
}

func (u *LedgerUseCase) WeeklyEarnings(ctx context.Context, providerID string, offset int) (WeekWindow, []DailyTotal, error) {
	providerID = strings.TrimSpace(providerID)
	if providerID == "" {
		return WeekWindow{}, nil, ErrInvalidProviderID
	}

	w := ComputeWeekWindow(u.now(), offset)
	completed, err := u.repo.ListByProviderAndStatus(ctx, providerID, entities.BookingStatusCompleted, &w.Start, &w.End)
	if err != nil {
		return WeekWindow{}, nil, err
	}
	return w, Aggregate(completed, w), nil
}

func (u *LedgerUseCase) Events(ctx context.Context, providerID string) ([]CalendarEvent, []ScheduleIssue, error) {
	providerID = strings.TrimSpace(providerID)
	if providerID == "" {
		return nil, nil, ErrInvalidProviderID
	}

	active, err := u.repo.ListByProviderAndStatus(ctx, providerID, entities.BookingStatusActive, nil, nil)
	if err != nil {
		return nil, nil, err
	}
	events, issues := CalendarEvents(active)
	return events, issues, nil
}
