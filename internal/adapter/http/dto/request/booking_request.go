package request

import (
	"errors"
	"strings"
	"time"

	"skilllink/internal/domain/entities"
)

var (
	ErrInvalidScheduledDate = errors.New("invalid scheduled date")
	ErrInvalidScheduledTime = errors.New("invalid scheduled time")
)

// CreateBookingRequest is the payload customers send when requesting a
// service slot from a provider.
type CreateBookingRequest struct {
	ProviderID    string  `json:"provider_id" binding:"required"`
	ServiceLabel  string  `json:"service_label" binding:"required"`
	ScheduledDate string  `json:"scheduled_date" binding:"required"`
	ScheduledTime string  `json:"scheduled_time" binding:"required"`
	Rate          float64 `json:"rate" binding:"required"`
}

func (r CreateBookingRequest) ResolveProviderID() string {
	return strings.TrimSpace(r.ProviderID)
}

func (r CreateBookingRequest) ResolveServiceLabel() string {
	return strings.TrimSpace(r.ServiceLabel)
}

// ResolveSchedule validates the date and time fields and returns the
// parsed calendar date plus the normalized HH:mm string.
func (r CreateBookingRequest) ResolveSchedule() (time.Time, string, error) {
	date, err := time.Parse(entities.DateLayout, strings.TrimSpace(r.ScheduledDate))
	if err != nil {
		return time.Time{}, "", ErrInvalidScheduledDate
	}
	tod := strings.TrimSpace(r.ScheduledTime)
	if _, err := time.Parse(entities.TimeLayout, tod); err != nil {
		return time.Time{}, "", ErrInvalidScheduledTime
	}
	return date, tod, nil
}
