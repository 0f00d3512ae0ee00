package interfaces

import (
	"context"
	"time"

	"skilllink/internal/domain/entities"
)

// IBookingRepository abstracts DynamoDB persistence for Booking.
//
// The booking-service must be able to:
//   - create a booking when a customer requests a service
//   - load a customer's bookings for the sweep-normalized list view
//   - load a provider's bookings filtered by status (ledger, calendar)
//   - apply a status transition as an atomic conditional update
//
// UpdateStatus is the concurrency primitive: it succeeds only when the
// stored status still equals expected, so concurrent sweep and decide
// calls are serialized by the store rather than by caller ordering.
// A conditional miss returns a zero-value Booking and a nil error.

type IBookingRepository interface {
	Create(ctx context.Context, b entities.Booking) (entities.Booking, error)
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	ListByCustomer(ctx context.Context, customerID string) ([]entities.Booking, error)
	ListByProviderAndStatus(ctx context.Context, providerID string, status entities.BookingStatus, from, to *time.Time) ([]entities.Booking, error)
	ListPending(ctx context.Context) ([]entities.Booking, error)
	UpdateStatus(ctx context.Context, id string, expected, next entities.BookingStatus) (entities.Booking, error)
}
