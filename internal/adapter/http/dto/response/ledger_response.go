package response

import (
	"time"

	"skilllink/internal/domain/entities"
	"skilllink/internal/usecase"
)

type DailyTotalResponse struct {
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

type WeeklyLedgerResponse struct {
	WeekStart string               `json:"week_start"`
	WeekEnd   string               `json:"week_end"`
	Offset    int                  `json:"offset"`
	Cap       float64              `json:"cap"`
	Days      []DailyTotalResponse `json:"days"`
}

func FromWeeklyEarnings(w usecase.WeekWindow, offset int, totals []usecase.DailyTotal) WeeklyLedgerResponse {
	days := make([]DailyTotalResponse, 0, len(totals))
	for _, t := range totals {
		days = append(days, DailyTotalResponse{
			Date:  t.Date.UTC().Format(entities.DateLayout),
			Total: t.Total,
		})
	}
	return WeeklyLedgerResponse{
		WeekStart: w.Start.UTC().Format(entities.DateLayout),
		WeekEnd:   w.End.UTC().Format(entities.DateLayout),
		Offset:    offset,
		Cap:       usecase.DailyEarningsCap,
		Days:      days,
	}
}

type CalendarEventResponse struct {
	BookingID    string    `json:"booking_id"`
	ServiceLabel string    `json:"service_label"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
}

type CalendarResponse struct {
	Events []CalendarEventResponse `json:"events"`
	Issues []ScheduleIssueResponse `json:"schedule_issues,omitempty"`
}

func FromCalendarEvents(events []usecase.CalendarEvent, issues []usecase.ScheduleIssue) CalendarResponse {
	out := CalendarResponse{Events: make([]CalendarEventResponse, 0, len(events))}
	for _, e := range events {
		out.Events = append(out.Events, CalendarEventResponse{
			BookingID:    e.BookingID,
			ServiceLabel: e.ServiceLabel,
			Start:        e.Start,
			End:          e.End,
		})
	}
	for _, issue := range issues {
		out.Issues = append(out.Issues, ScheduleIssueResponse{
			BookingID: issue.BookingID,
			Reason:    issue.Err.Error(),
		})
	}
	return out
}
