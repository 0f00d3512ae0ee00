package handlers

import (
	"errors"
	"net/http"
	"strconv"

	response "skilllink/internal/adapter/http/dto/response"
	"skilllink/internal/adapter/http/middleware"
	"skilllink/internal/usecase"
	"skilllink/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidWeekOffset = pkg.NewDomainErrorSimple("INVALID_WEEK_OFFSET", "offset must be an integer number of weeks", http.StatusBadRequest)
)

// LedgerHandler serves the weekly earnings chart and the calendar
// projection for the authenticated provider.

type LedgerHandler struct {
	usecase usecase.ILedgerUseCase
}

func NewLedgerHandler(uc usecase.ILedgerUseCase) *LedgerHandler {
	return &LedgerHandler{usecase: uc}
}

// WeeklyLedger returns the 7 per-day earnings buckets for the week
// selected by ?offset=N (0 = current week, negative = past weeks).
func (h *LedgerHandler) WeeklyLedger(c *gin.Context) {
	offset := 0
	if raw := c.Query("offset"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(errInvalidWeekOffset.HTTPStatus, errInvalidWeekOffset.ToHTTPError())
			return
		}
		offset = parsed
	}

	window, totals, err := h.usecase.WeeklyEarnings(c.Request.Context(), middleware.SubjectID(c), offset)
	if err != nil {
		appErr := mapLedgerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromWeeklyEarnings(window, offset, totals))
}

// CalendarEvents returns the provider's accepted bookings as one-hour
// display events.
func (h *LedgerHandler) CalendarEvents(c *gin.Context) {
	events, issues, err := h.usecase.Events(c.Request.Context(), middleware.SubjectID(c))
	if err != nil {
		appErr := mapLedgerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCalendarEvents(events, issues))
}

func mapLedgerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProviderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
