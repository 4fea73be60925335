package controllers

import (
	"bytes"
	"doccare-service/internal/app/contracts/mocks"
	"doccare-service/internal/app/models"
	"doccare-service/internal/pkg/constvars"
	"doccare-service/internal/pkg/dto/requests"
	"doccare-service/internal/pkg/dto/responses"
	"doccare-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestScheduleController_CreateSchedules(t *testing.T) {
	scheduleUsecase := new(mocks.ScheduleUsecase)
	expected := &requests.CreateSchedule{StartDate: "2025-01-01", EndDate: "2025-01-01", StartTime: "09:00", EndTime: "10:00"}
	start := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	scheduleUsecase.On("CreateSchedules", mock.Anything, expected).Return([]models.Schedule{
		{ID: "s-1", StartDateTime: start, EndDateTime: start.Add(30 * time.Minute)},
		{ID: "s-2", StartDateTime: start.Add(30 * time.Minute), EndDateTime: start.Add(time.Hour)},
	}, nil)
	ctrl := &ScheduleController{Log: zap.NewNop(), ScheduleUsecase: scheduleUsecase}

	body := []byte(`{"startDate":"2025-01-01","endDate":"2025-01-01","startTime":"09:00","endTime":"10:00"}`)
	rr := httptest.NewRecorder()
	ctrl.CreateSchedules(rr, httptest.NewRequest("POST", "/schedule", bytes.NewReader(body)))

	assert.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), `"s-2"`)
	scheduleUsecase.AssertExpectations(t)

	t.Run("Bad Time Format", func(t *testing.T) {
		body := []byte(`{"startDate":"2025-01-01","endDate":"2025-01-01","startTime":"9am","endTime":"10:00"}`)
		rr := httptest.NewRecorder()
		ctrl.CreateSchedules(rr, httptest.NewRequest("POST", "/schedule", bytes.NewReader(body)))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), `"startTime"`)
	})
}

func TestScheduleController_ListForDoctor(t *testing.T) {
	scheduleUsecase := new(mocks.ScheduleUsecase)
	filters := &requests.ScheduleFilters{StartDateTime: "2025-01-01T00:00:00Z", EndDateTime: "2025-01-02T00:00:00Z"}
	pagination := requests.Pagination{Page: 1, Limit: 10, SortBy: "startDateTime", SortOrder: "asc"}
	scheduleUsecase.On("ListForDoctor", mock.Anything, "doctor@doccare.test", filters, pagination).
		Return([]models.Schedule{{ID: "s-1"}}, &responses.Meta{Page: 1, Limit: 10, Total: 1}, nil)
	ctrl := &ScheduleController{Log: zap.NewNop(), ScheduleUsecase: scheduleUsecase}

	req := httptest.NewRequest("GET", "/schedule?startDateTime=2025-01-01T00:00:00Z&endDateTime=2025-01-02T00:00:00Z", nil)
	rr := httptest.NewRecorder()
	ctrl.ListForDoctor(rr, withAuthUser(req, "doctor@doccare.test", constvars.RoleDoctor))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"total":1`)
	scheduleUsecase.AssertExpectations(t)

	t.Run("Invalid Window", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/schedule?startDateTime=yesterday", nil)
		rr := httptest.NewRecorder()
		ctrl.ListForDoctor(rr, withAuthUser(req, "doctor@doccare.test", constvars.RoleDoctor))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestScheduleController_DeleteSchedule(t *testing.T) {
	scheduleUsecase := new(mocks.ScheduleUsecase)
	scheduleUsecase.On("DeleteSchedule", mock.Anything, "s-1").Return(nil, exceptions.ErrScheduleInUse(nil))
	scheduleUsecase.On("DeleteSchedule", mock.Anything, "s-2").Return(&models.Schedule{ID: "s-2"}, nil)
	ctrl := &ScheduleController{Log: zap.NewNop(), ScheduleUsecase: scheduleUsecase}

	router := chi.NewRouter()
	router.Delete("/schedule/{id}", ctrl.DeleteSchedule)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("DELETE", "/schedule/s-1", nil))
	assert.Equal(t, http.StatusConflict, rr.Code)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest("DELETE", "/schedule/s-2", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), constvars.DeleteScheduleSuccessMessage)
}
