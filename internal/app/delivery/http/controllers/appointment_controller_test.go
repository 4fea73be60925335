package controllers

import (
	"bytes"
	"context"
	"doccare-service/internal/app/contracts/mocks"
	"doccare-service/internal/app/models"
	"doccare-service/internal/pkg/constvars"
	"doccare-service/internal/pkg/dto/requests"
	"doccare-service/internal/pkg/exceptions"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

const (
	testDoctorID   = "6f1c1d36-8f39-4f6e-9a49-7a2d3c8d0b11"
	testScheduleID = "0b6f7e0c-3c2a-4d55-8b1f-2f7f5a9c7e21"
)

func withAuthUser(req *http.Request, email, role string) *http.Request {
	ctx := context.WithValue(req.Context(), constvars.CONTEXT_AUTH_USER_KEY, &models.AuthUser{Email: email, Role: role})
	return req.WithContext(ctx)
}

func TestAppointmentController_BookAppointment(t *testing.T) {
	body := []byte(`{"doctorId":"` + testDoctorID + `","scheduleId":"` + testScheduleID + `"}`)
	expectedRequest := &requests.CreateAppointment{DoctorID: testDoctorID, ScheduleID: testScheduleID}

	t.Run("Booked", func(t *testing.T) {
		appointmentUsecase := new(mocks.AppointmentUsecase)
		appointmentUsecase.On("BookAppointment", mock.Anything, "patient@doccare.test", expectedRequest).
			Return(&models.Appointment{ID: "a-1", DoctorID: testDoctorID, ScheduleID: testScheduleID, Status: constvars.AppointmentStatusPending}, nil)
		ctrl := &AppointmentController{Log: zap.NewNop(), AppointmentUsecase: appointmentUsecase}

		req := withAuthUser(httptest.NewRequest("POST", "/appointment", bytes.NewReader(body)), "patient@doccare.test", constvars.RolePatient)
		rr := httptest.NewRecorder()
		ctrl.BookAppointment(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Contains(t, rr.Body.String(), constvars.CreateAppointmentSuccessMessage)
		appointmentUsecase.AssertExpectations(t)
	})

	t.Run("Slot Taken", func(t *testing.T) {
		appointmentUsecase := new(mocks.AppointmentUsecase)
		appointmentUsecase.On("BookAppointment", mock.Anything, "patient@doccare.test", expectedRequest).
			Return(nil, exceptions.ErrScheduleAlreadyBooked(nil))
		ctrl := &AppointmentController{Log: zap.NewNop(), AppointmentUsecase: appointmentUsecase}

		req := withAuthUser(httptest.NewRequest("POST", "/appointment", bytes.NewReader(body)), "patient@doccare.test", constvars.RolePatient)
		rr := httptest.NewRecorder()
		ctrl.BookAppointment(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
		assert.Contains(t, rr.Body.String(), constvars.ErrClientScheduleAlreadyBooked)
	})

	t.Run("Deadline Exceeded", func(t *testing.T) {
		appointmentUsecase := new(mocks.AppointmentUsecase)
		appointmentUsecase.On("BookAppointment", mock.Anything, mock.Anything, mock.Anything).Return(nil, context.DeadlineExceeded)
		ctrl := &AppointmentController{Log: zap.NewNop(), AppointmentUsecase: appointmentUsecase}

		req := withAuthUser(httptest.NewRequest("POST", "/appointment", bytes.NewReader(body)), "patient@doccare.test", constvars.RolePatient)
		rr := httptest.NewRecorder()
		ctrl.BookAppointment(rr, req)

		assert.Equal(t, http.StatusGatewayTimeout, rr.Code)
	})

	t.Run("Missing Identity", func(t *testing.T) {
		appointmentUsecase := new(mocks.AppointmentUsecase)
		ctrl := &AppointmentController{Log: zap.NewNop(), AppointmentUsecase: appointmentUsecase}

		rr := httptest.NewRecorder()
		ctrl.BookAppointment(rr, httptest.NewRequest("POST", "/appointment", bytes.NewReader(body)))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		appointmentUsecase.AssertNotCalled(t, "BookAppointment", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Non UUID Schedule", func(t *testing.T) {
		appointmentUsecase := new(mocks.AppointmentUsecase)
		ctrl := &AppointmentController{Log: zap.NewNop(), AppointmentUsecase: appointmentUsecase}

		bad := []byte(`{"doctorId":"` + testDoctorID + `","scheduleId":"nope"}`)
		req := withAuthUser(httptest.NewRequest("POST", "/appointment", bytes.NewReader(bad)), "patient@doccare.test", constvars.RolePatient)
		rr := httptest.NewRecorder()
		ctrl.BookAppointment(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), `"scheduleId"`)
	})
}

func TestAppointmentController_UpdateStatus(t *testing.T) {
	appointmentUsecase := new(mocks.AppointmentUsecase)
	caller := &models.AuthUser{Email: "doctor@doccare.test", Role: constvars.RoleDoctor}
	appointmentUsecase.On("UpdateStatus", mock.Anything, caller, "a-1", &requests.UpdateAppointmentStatus{Status: constvars.AppointmentStatusCompleted}).
		Return(&models.Appointment{ID: "a-1", Status: constvars.AppointmentStatusCompleted}, nil)
	ctrl := &AppointmentController{Log: zap.NewNop(), AppointmentUsecase: appointmentUsecase}

	router := chi.NewRouter()
	router.Patch("/appointment/{id}/status", ctrl.UpdateStatus)

	req := httptest.NewRequest("PATCH", "/appointment/a-1/status", bytes.NewReader([]byte(`{"status":"COMPLETED"}`)))
	req = withAuthUser(req, caller.Email, caller.Role)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	appointmentUsecase.AssertExpectations(t)

	t.Run("Rejects Unknown Status", func(t *testing.T) {
		req := httptest.NewRequest("PATCH", "/appointment/a-1/status", bytes.NewReader([]byte(`{"status":"PENDING"}`)))
		req = withAuthUser(req, caller.Email, caller.Role)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
