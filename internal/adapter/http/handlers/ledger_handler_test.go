package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"skilllink/internal/adapter/http/handlers/mocks"
	"skilllink/internal/adapter/http/middleware"
	"skilllink/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newLedgerRouter(h *LedgerHandler) *gin.Engine {
	r := gin.New()
	g := r.Group("/v1")
	g.Use(middleware.Identity(""))
	g.GET("/ledger/weekly", h.WeeklyLedger)
	g.GET("/calendar/events", h.CalendarEvents)
	return r
}

func TestLedgerHandler_WeeklyLedger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid offset", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILedgerUseCase(ctrl)
		r := newLedgerRouter(NewLedgerHandler(uc))

		req := httptest.NewRequest(http.MethodGet, "/v1/ledger/weekly?offset=abc", nil)
		req.Header.Set("X-User-ID", "prov-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("defaults to the current week", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILedgerUseCase(ctrl)
		r := newLedgerRouter(NewLedgerHandler(uc))

		window := usecase.ComputeWeekWindow(time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC), 0)
		totals := usecase.Aggregate(nil, window)
		uc.EXPECT().WeeklyEarnings(gomock.Any(), "prov-1", 0).Return(window, totals, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/ledger/weekly", nil)
		req.Header.Set("X-User-ID", "prov-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			WeekStart string `json:"week_start"`
			WeekEnd   string `json:"week_end"`
			Offset    int    `json:"offset"`
			Cap       float64 `json:"cap"`
			Days      []struct {
				Date  string  `json:"date"`
				Total float64 `json:"total"`
			} `json:"days"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if resp.WeekStart != "2026-03-08" || resp.WeekEnd != "2026-03-14" {
			t.Fatalf("unexpected window: %s .. %s", resp.WeekStart, resp.WeekEnd)
		}
		if len(resp.Days) != 7 {
			t.Fatalf("expected 7 days, got %d", len(resp.Days))
		}
	})

	t.Run("passes a negative offset through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILedgerUseCase(ctrl)
		r := newLedgerRouter(NewLedgerHandler(uc))

		window := usecase.ComputeWeekWindow(time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC), -2)
		uc.EXPECT().WeeklyEarnings(gomock.Any(), "prov-1", -2).Return(window, usecase.Aggregate(nil, window), nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/ledger/weekly?offset=-2", nil)
		req.Header.Set("X-User-ID", "prov-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("usecase error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILedgerUseCase(ctrl)
		r := newLedgerRouter(NewLedgerHandler(uc))

		uc.EXPECT().WeeklyEarnings(gomock.Any(), "prov-1", 0).Return(usecase.WeekWindow{}, nil, errors.New("db"))

		req := httptest.NewRequest(http.MethodGet, "/v1/ledger/weekly", nil)
		req.Header.Set("X-User-ID", "prov-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestLedgerHandler_CalendarEvents(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns events and issues", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILedgerUseCase(ctrl)
		r := newLedgerRouter(NewLedgerHandler(uc))

		start := time.Date(2026, time.March, 9, 14, 30, 0, 0, time.UTC)
		uc.EXPECT().Events(gomock.Any(), "prov-1").Return(
			[]usecase.CalendarEvent{{BookingID: "b-1", ServiceLabel: "Plumbing", Start: start, End: start.Add(time.Hour)}},
			[]usecase.ScheduleIssue{{BookingID: "b-2", Err: errors.New("malformed schedule")}},
			nil,
		)

		req := httptest.NewRequest(http.MethodGet, "/v1/calendar/events", nil)
		req.Header.Set("X-User-ID", "prov-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp struct {
			Events []struct {
				BookingID string    `json:"booking_id"`
				Start     time.Time `json:"start"`
				End       time.Time `json:"end"`
			} `json:"events"`
			Issues []struct {
				BookingID string `json:"booking_id"`
			} `json:"schedule_issues"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid json response: %v", err)
		}
		if len(resp.Events) != 1 || resp.Events[0].BookingID != "b-1" {
			t.Fatalf("unexpected events: %+v", resp.Events)
		}
		if resp.Events[0].End.Sub(resp.Events[0].Start) != time.Hour {
			t.Fatalf("expected one-hour event, got %v", resp.Events[0].End.Sub(resp.Events[0].Start))
		}
		if len(resp.Issues) != 1 || resp.Issues[0].BookingID != "b-2" {
			t.Fatalf("unexpected issues: %+v", resp.Issues)
		}
	})

	t.Run("usecase error maps to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockILedgerUseCase(ctrl)
		r := newLedgerRouter(NewLedgerHandler(uc))

		uc.EXPECT().Events(gomock.Any(), "prov-1").Return(nil, nil, errors.New("db"))

		req := httptest.NewRequest(http.MethodGet, "/v1/calendar/events", nil)
		req.Header.Set("X-User-ID", "prov-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}
