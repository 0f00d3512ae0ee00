package response

import (
	"time"

	"skilllink/internal/domain/entities"
	"skilllink/internal/usecase"
)

type BookingResponse struct {
	ID            string    `json:"id"`
	CustomerID    string    `json:"customer_id"`
	ProviderID    string    `json:"provider_id"`
	ServiceLabel  string    `json:"service_label"`
	ScheduledDate string    `json:"scheduled_date"`
	ScheduledTime string    `json:"scheduled_time"`
	Rate          float64   `json:"rate"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromBooking(b entities.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		CustomerID:    b.CustomerID,
		ProviderID:    b.ProviderID,
		ServiceLabel:  b.ServiceLabel,
		ScheduledDate: b.ScheduledDate.UTC().Format(entities.DateLayout),
		ScheduledTime: b.ScheduledTime,
		Rate:          b.Rate,
		Status:        string(b.EffectiveStatus()),
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// ScheduleIssueResponse surfaces a booking the sweep could not
// evaluate, so operators can repair the document.
type ScheduleIssueResponse struct {
	BookingID string `json:"booking_id"`
	Reason    string `json:"reason"`
}

type BookingListResponse struct {
	Bookings []BookingResponse       `json:"bookings"`
	Issues   []ScheduleIssueResponse `json:"schedule_issues,omitempty"`
}

func FromBookings(bookings []entities.Booking, issues []usecase.ScheduleIssue) BookingListResponse {
	out := BookingListResponse{Bookings: make([]BookingResponse, 0, len(bookings))}
	for _, b := range bookings {
		out.Bookings = append(out.Bookings, FromBooking(b))
	}
	for _, issue := range issues {
		out.Issues = append(out.Issues, ScheduleIssueResponse{
			BookingID: issue.BookingID,
			Reason:    issue.Err.Error(),
		})
	}
	return out
}
