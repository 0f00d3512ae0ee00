package handlers

import (
	"context"
	"errors"
	"net/http"

	request "skilllink/internal/adapter/http/dto/request"
	response "skilllink/internal/adapter/http/dto/response"
	"skilllink/internal/adapter/http/middleware"
	"skilllink/internal/domain/entities"
	"skilllink/internal/usecase"
	"skilllink/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBookingPayload = pkg.NewDomainErrorSimple("INVALID_BOOKING_INPUT", "Invalid booking payload", http.StatusBadRequest)
)

// BookingHandler handles HTTP requests for the booking lifecycle:
// creation by customers, sweep-normalized listing, and provider
// accept/reject decisions.

type BookingHandler struct {
	usecase usecase.IBookingLifecycleUseCase
}

func NewBookingHandler(uc usecase.IBookingLifecycleUseCase) *BookingHandler {
	return &BookingHandler{usecase: uc}
}

// CreateBooking registers a pending booking for the authenticated
// customer.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var payload request.CreateBookingRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	date, tod, err := payload.ResolveSchedule()
	if err != nil {
		c.JSON(errInvalidBookingPayload.HTTPStatus, errInvalidBookingPayload.ToHTTPError())
		return
	}

	booking, err := h.usecase.CreateBooking(c.Request.Context(), usecase.CreateBookingInput{
		CustomerID:    middleware.SubjectID(c),
		ProviderID:    payload.ResolveProviderID(),
		ServiceLabel:  payload.ResolveServiceLabel(),
		ScheduledDate: date,
		ScheduledTime: tod,
		Rate:          payload.Rate,
	})
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBooking(booking))
}

// ListBookings returns the caller's bookings after an expiry sweep.
// Bookings the sweep could not evaluate are reported alongside.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, issues, err := h.usecase.ListCustomerBookings(c.Request.Context(), middleware.SubjectID(c))
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBookings(bookings, issues))
}

func (h *BookingHandler) AcceptBooking(c *gin.Context) {
	h.decideBooking(c, h.usecase.Accept)
}

func (h *BookingHandler) RejectBooking(c *gin.Context) {
	h.decideBooking(c, h.usecase.Reject)
}

func (h *BookingHandler) decideBooking(
	c *gin.Context,
	decide func(ctx context.Context, providerID, bookingID string) (entities.Booking, error),
) {
	booking, err := decide(c.Request.Context(), middleware.SubjectID(c), c.Param("booking_id"))
	if err != nil {
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBooking(booking))
}

func mapBookingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCustomerID),
		errors.Is(err, usecase.ErrInvalidProviderID),
		errors.Is(err, usecase.ErrInvalidBookingID),
		errors.Is(err, usecase.ErrInvalidServiceLabel),
		errors.Is(err, usecase.ErrInvalidRate):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, entities.ErrMalformedSchedule):
		return pkg.NewDomainErrorSimple("MALFORMED_SCHEDULE", "Booking schedule cannot be interpreted", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Booking belongs to another provider", http.StatusForbidden)
	case errors.Is(err, usecase.ErrInvalidTransition):
		return pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Booking is no longer pending", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
