package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"skilllink/internal/domain/entities"
	"skilllink/internal/usecase/interfaces"
	"skilllink/pkg/metrics"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound     = errors.New("booking not found")
	ErrInvalidBookingID    = errors.New("invalid booking id")
	ErrInvalidCustomerID   = errors.New("invalid customer id")
	ErrInvalidProviderID   = errors.New("invalid provider id")
	ErrInvalidServiceLabel = errors.New("invalid service label")
	ErrInvalidRate         = errors.New("invalid rate")
	ErrInvalidTransition   = errors.New("invalid booking transition")
	ErrForbidden           = errors.New("booking belongs to another provider")
)

// Decision is a provider action on a pending booking.
type Decision string

const (
	DecisionAccept Decision = "accept"
	DecisionReject Decision = "reject"
)

// ScheduleIssue reports a booking whose schedule could not be parsed
// during a sweep. The booking itself is left untouched.
type ScheduleIssue struct {
	BookingID string
	Err       error
}

// SweepExpirations re-evaluates expiry for every pending booking in
// the sequence against now. It returns the full sequence with expired
// copies substituted in place, the subset that changed (so callers can
// persist deltas only), and any schedule issues found. Each booking's
// expiry is independent of the others; re-running the sweep with the
// same now changes nothing further.
func SweepExpirations(bookings []entities.Booking, now time.Time) ([]entities.Booking, []entities.Booking, []ScheduleIssue) {
	out := make([]entities.Booking, len(bookings))
	copy(out, bookings)

	var expired []entities.Booking
	var issues []ScheduleIssue
	for i, b := range out {
		if b.EffectiveStatus() != entities.BookingStatusPending {
			continue
		}
		past, err := b.ExpiredAt(now)
		if err != nil {
			issues = append(issues, ScheduleIssue{BookingID: b.ID, Err: err})
			continue
		}
		if !past {
			continue
		}
		b.Status = entities.BookingStatusExpired
		out[i] = b
		expired = append(expired, b)
	}
	return out, expired, issues
}

// Decide applies a provider decision to a single booking. The booking
// must still be pending and must not have passed its end-instant;
// otherwise the call fails with ErrInvalidTransition and the input is
// returned unchanged. Only the status field differs in the result.
func Decide(b entities.Booking, now time.Time, d Decision) (entities.Booking, error) {
	if b.EffectiveStatus() != entities.BookingStatusPending {
		return b, ErrInvalidTransition
	}
	past, err := b.ExpiredAt(now)
	if err != nil {
		return b, err
	}
	if past {
		return b, ErrInvalidTransition
	}

	switch d {
	case DecisionAccept:
		b.Status = entities.BookingStatusActive
	case DecisionReject:
		b.Status = entities.BookingStatusRejected
	default:
		return b, ErrInvalidTransition
	}
	return b, nil
}

// CreateBookingInput carries the fields a customer supplies when
// requesting a service.
type CreateBookingInput struct {
	CustomerID    string
	ProviderID    string
	ServiceLabel  string
	ScheduledDate time.Time
	ScheduledTime string
	Rate          float64
}

// IBookingLifecycleUseCase exposes the booking state machine to the
// HTTP layer and the background sweeper.

type IBookingLifecycleUseCase interface {
	CreateBooking(ctx context.Context, in CreateBookingInput) (entities.Booking, error)
	ListCustomerBookings(ctx context.Context, customerID string) ([]entities.Booking, []ScheduleIssue, error)
	Accept(ctx context.Context, providerID, bookingID string) (entities.Booking, error)
	Reject(ctx context.Context, providerID, bookingID string) (entities.Booking, error)
	ExpirePendingBatch(ctx context.Context) (int, []ScheduleIssue, error)
}

type BookingLifecycleUseCase struct {
	repo interfaces.IBookingRepository
	now  func() time.Time
}

var _ IBookingLifecycleUseCase = (*BookingLifecycleUseCase)(nil)

func NewBookingLifecycleUseCase(repo interfaces.IBookingRepository) *BookingLifecycleUseCase {
	return &BookingLifecycleUseCase{repo: repo, now: time.Now}
}

// WithClock overrides the time source. Tests use a fixed instant.
func (u *BookingLifecycleUseCase) WithClock(now func() time.Time) *BookingLifecycleUseCase {
	u.now = now
	return u
}

func (u *BookingLifecycleUseCase) CreateBooking(ctx context.Context, in CreateBookingInput) (entities.Booking, error) {
	in.CustomerID = strings.TrimSpace(in.CustomerID)
	in.ProviderID = strings.TrimSpace(in.ProviderID)
	in.ServiceLabel = strings.TrimSpace(in.ServiceLabel)
	in.ScheduledTime = strings.TrimSpace(in.ScheduledTime)

	if in.CustomerID == "" {
		return entities.Booking{}, ErrInvalidCustomerID
	}
	if in.ProviderID == "" {
		return entities.Booking{}, ErrInvalidProviderID
	}
	if in.ServiceLabel == "" {
		return entities.Booking{}, ErrInvalidServiceLabel
	}
	if in.Rate <= 0 {
		return entities.Booking{}, ErrInvalidRate
	}

	now := u.now().UTC()
	b := entities.Booking{
		ID:            uuid.NewString(),
		CustomerID:    in.CustomerID,
		ProviderID:    in.ProviderID,
		ServiceLabel:  in.ServiceLabel,
		ScheduledDate: in.ScheduledDate,
		ScheduledTime: in.ScheduledTime,
		Rate:          in.Rate,
		Status:        entities.BookingStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if _, err := b.ScheduleAt(); err != nil {
		return entities.Booking{}, err
	}
	return u.repo.Create(ctx, b)
}

// ListCustomerBookings loads the customer's bookings, expires the
// stale pending ones and persists each expiry through the store's
// conditional update. A booking whose write fails keeps its stored
// status in the returned view; a booking that lost the conditional
// race is re-read so the view reflects whoever won.
func (u *BookingLifecycleUseCase) ListCustomerBookings(ctx context.Context, customerID string) ([]entities.Booking, []ScheduleIssue, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, nil, ErrInvalidCustomerID
	}

	bookings, err := u.repo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, nil, err
	}

	swept, expired, issues := SweepExpirations(bookings, u.now().UTC())
	if len(expired) == 0 {
		return swept, issues, nil
	}

	byID := make(map[string]int, len(swept))
	for i, b := range swept {
		byID[b.ID] = i
	}

	for _, b := range expired {
		updated, err := u.repo.UpdateStatus(ctx, b.ID, entities.BookingStatusPending, entities.BookingStatusExpired)
		i := byID[b.ID]
		if err != nil {
			// Write not acknowledged; do not present the transition.
			swept[i] = bookings[i]
			continue
		}
		if updated.ID == "" {
			fresh, ferr := u.repo.GetByID(ctx, b.ID)
			if ferr == nil && fresh.ID != "" {
				swept[i] = fresh
			}
			continue
		}
		metrics.ObserveTransition(string(entities.BookingStatusPending), string(entities.BookingStatusExpired))
		swept[i] = updated
	}
	return swept, issues, nil
}

func (u *BookingLifecycleUseCase) Accept(ctx context.Context, providerID, bookingID string) (entities.Booking, error) {
	return u.decide(ctx, providerID, bookingID, DecisionAccept)
}

func (u *BookingLifecycleUseCase) Reject(ctx context.Context, providerID, bookingID string) (entities.Booking, error) {
	return u.decide(ctx, providerID, bookingID, DecisionReject)
}

func (u *BookingLifecycleUseCase) decide(ctx context.Context, providerID, bookingID string, d Decision) (entities.Booking, error) {
	providerID = strings.TrimSpace(providerID)
	bookingID = strings.TrimSpace(bookingID)
	if providerID == "" {
		return entities.Booking{}, ErrInvalidProviderID
	}
	if bookingID == "" {
		return entities.Booking{}, ErrInvalidBookingID
	}

	b, err := u.repo.GetByID(ctx, bookingID)
	if err != nil {
		return entities.Booking{}, err
	}
	if b.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	if b.ProviderID != providerID {
		return entities.Booking{}, ErrForbidden
	}

	decided, err := Decide(b, u.now().UTC(), d)
	if err != nil {
		return entities.Booking{}, err
	}

	updated, err := u.repo.UpdateStatus(ctx, bookingID, entities.BookingStatusPending, decided.Status)
	if err != nil {
		return entities.Booking{}, err
	}
	if updated.ID == "" {
		// The stored status moved under us (expired or already decided).
		return entities.Booking{}, ErrInvalidTransition
	}
	metrics.ObserveTransition(string(entities.BookingStatusPending), string(decided.Status))
	return updated, nil
}

// ExpirePendingBatch sweeps every pending booking in the store and
// persists the expirations. It returns the number of bookings moved to
// expired, along with any bookings whose schedule could not be parsed.
// Conditional misses are not counted; another writer already
// transitioned those documents.
func (u *BookingLifecycleUseCase) ExpirePendingBatch(ctx context.Context) (int, []ScheduleIssue, error) {
	pending, err := u.repo.ListPending(ctx)
	if err != nil {
		return 0, nil, err
	}

	_, expired, issues := SweepExpirations(pending, u.now().UTC())
	count := 0
	for _, b := range expired {
		updated, err := u.repo.UpdateStatus(ctx, b.ID, entities.BookingStatusPending, entities.BookingStatusExpired)
		if err != nil {
			return count, issues, err
		}
		if updated.ID == "" {
			continue
		}
		metrics.ObserveTransition(string(entities.BookingStatusPending), string(entities.BookingStatusExpired))
		count++
	}
	return count, issues, nil
}
