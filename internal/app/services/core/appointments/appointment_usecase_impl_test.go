package appointments

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"doccare-service/internal/app/contracts/mocks"
	"doccare-service/internal/app/models"
	"doccare-service/internal/app/services/shared/metrics"
	"doccare-service/internal/pkg/constvars"
	"doccare-service/internal/pkg/dto/requests"
	"doccare-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testDoctorID   = "0b7c5d7a-5f53-4a43-8f0e-3a3e9b0d1c11"
	testScheduleID = "9d2e1f44-7a1b-4c0e-b3a5-2f6c1d0e8a22"
)

type appointmentFixture struct {
	usecase         *appointmentUsecase
	appointmentRepo *mocks.AppointmentRepository
	paymentRepo     *mocks.PaymentRepository
	patientRepo     *mocks.PatientRepository
	doctorRepo      *mocks.DoctorRepository
	slotRepo        *mocks.DoctorScheduleRepository
	transactor      *mocks.Transactor
	publisher       *mocks.AppointmentEventPublisher
	metrics         *mocks.DomainMetrics
}

func newAppointmentFixture() *appointmentFixture {
	f := &appointmentFixture{
		appointmentRepo: new(mocks.AppointmentRepository),
		paymentRepo:     new(mocks.PaymentRepository),
		patientRepo:     new(mocks.PatientRepository),
		doctorRepo:      new(mocks.DoctorRepository),
		slotRepo:        new(mocks.DoctorScheduleRepository),
		transactor:      new(mocks.Transactor),
		publisher:       new(mocks.AppointmentEventPublisher),
		metrics:         new(mocks.DomainMetrics),
	}
	f.usecase = &appointmentUsecase{
		AppointmentRepository:    f.appointmentRepo,
		PaymentRepository:        f.paymentRepo,
		PatientRepository:        f.patientRepo,
		DoctorRepository:         f.doctorRepo,
		DoctorScheduleRepository: f.slotRepo,
		Transactor:               f.transactor,
		Publisher:                f.publisher,
		Metrics:                  f.metrics,
		Log:                      zap.NewNop(),
	}
	return f
}

func (f *appointmentFixture) expectTargets(ctx context.Context) {
	f.patientRepo.On("FindByEmail", ctx, "pat@x.io").Return(&models.Patient{ID: "p-1", Email: "pat@x.io"}, nil)
	f.doctorRepo.On("FindByID", ctx, testDoctorID).Return(&models.Doctor{ID: testDoctorID, AppointmentFee: 500}, nil)
	f.slotRepo.On("FindUnbooked", ctx, testDoctorID, testScheduleID).
		Return(&models.DoctorSchedule{DoctorID: testDoctorID, ScheduleID: testScheduleID}, nil)
}

func statusCodeOf(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	require.ErrorAs(t, err, &customErr)
	return customErr.StatusCode
}

func TestAppointmentUsecase_BookAppointment(t *testing.T) {
	ctx := context.Background()
	request := &requests.CreateAppointment{DoctorID: testDoctorID, ScheduleID: testScheduleID}

	t.Run("books and publishes after commit", func(t *testing.T) {
		f := newAppointmentFixture()
		f.expectTargets(ctx)
		f.transactor.On("WithinTransaction", ctx).Return(nil)
		f.slotRepo.On("MarkBooked", ctx, testDoctorID, testScheduleID).Return(true, nil)
		f.appointmentRepo.On("Create", ctx, mock.MatchedBy(func(a *models.Appointment) bool {
			return a.PatientID == "p-1" && a.DoctorID == testDoctorID && a.VideoCallingID != ""
		})).Return(&models.Appointment{
			ID:            "a-1",
			PatientID:     "p-1",
			DoctorID:      testDoctorID,
			ScheduleID:    testScheduleID,
			Status:        constvars.AppointmentStatusPending,
			PaymentStatus: constvars.PaymentStatusPending,
		}, nil)
		f.paymentRepo.On("CreateFromDoctorFee", ctx, "a-1", mock.AnythingOfType("string"), testDoctorID).
			Return(&models.Payment{ID: "pay-1", AppointmentID: "a-1", Amount: 500, TransactionID: "tx-1"}, nil)
		f.publisher.On("PublishAppointmentBooked", ctx, mock.MatchedBy(func(e *models.AppointmentBookedEvent) bool {
			return e.Event == constvars.EventAppointmentBooked && e.AppointmentID == "a-1" && e.Amount == 500
		})).Return(nil)
		f.metrics.On("ObserveBooking", metrics.BookingResultBooked).Return()

		appointment, err := f.usecase.BookAppointment(ctx, "pat@x.io", request)

		require.NoError(t, err)
		assert.Equal(t, "a-1", appointment.ID)
		assert.Equal(t, constvars.AppointmentStatusPending, appointment.Status)
		f.publisher.AssertExpectations(t)
		f.metrics.AssertExpectations(t)
	})

	t.Run("losing the race is a conflict", func(t *testing.T) {
		f := newAppointmentFixture()
		f.expectTargets(ctx)
		f.transactor.On("WithinTransaction", ctx).Return(nil)
		f.slotRepo.On("MarkBooked", ctx, testDoctorID, testScheduleID).Return(false, nil)
		f.metrics.On("ObserveBooking", metrics.BookingResultConflict).Return()

		appointment, err := f.usecase.BookAppointment(ctx, "pat@x.io", request)

		assert.Nil(t, appointment)
		assert.Equal(t, http.StatusConflict, statusCodeOf(t, err))
		f.appointmentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		f.publisher.AssertNotCalled(t, "PublishAppointmentBooked", mock.Anything, mock.Anything)
	})

	t.Run("missing targets share one message", func(t *testing.T) {
		cases := map[string]func(f *appointmentFixture){
			"patient": func(f *appointmentFixture) {
				f.patientRepo.On("FindByEmail", ctx, "pat@x.io").Return(nil, nil)
			},
			"doctor": func(f *appointmentFixture) {
				f.patientRepo.On("FindByEmail", ctx, "pat@x.io").Return(&models.Patient{ID: "p-1"}, nil)
				f.doctorRepo.On("FindByID", ctx, testDoctorID).Return(nil, nil)
			},
			"slot": func(f *appointmentFixture) {
				f.patientRepo.On("FindByEmail", ctx, "pat@x.io").Return(&models.Patient{ID: "p-1"}, nil)
				f.doctorRepo.On("FindByID", ctx, testDoctorID).Return(&models.Doctor{ID: testDoctorID}, nil)
				f.slotRepo.On("FindUnbooked", ctx, testDoctorID, testScheduleID).Return(nil, nil)
			},
		}
		for name, setup := range cases {
			t.Run(name, func(t *testing.T) {
				f := newAppointmentFixture()
				setup(f)
				f.metrics.On("ObserveBooking", metrics.BookingResultNotFound).Return()

				_, err := f.usecase.BookAppointment(ctx, "pat@x.io", request)

				var customErr *exceptions.CustomError
				require.ErrorAs(t, err, &customErr)
				assert.Equal(t, http.StatusNotFound, customErr.StatusCode)
				assert.Equal(t, constvars.ErrClientBookingTargetNotFound, customErr.ClientMessage)
				f.transactor.AssertNotCalled(t, "WithinTransaction", mock.Anything)
			})
		}
	})

	t.Run("publish failure does not fail the booking", func(t *testing.T) {
		f := newAppointmentFixture()
		f.expectTargets(ctx)
		f.transactor.On("WithinTransaction", ctx).Return(nil)
		f.slotRepo.On("MarkBooked", ctx, testDoctorID, testScheduleID).Return(true, nil)
		f.appointmentRepo.On("Create", ctx, mock.Anything).Return(&models.Appointment{ID: "a-1"}, nil)
		f.paymentRepo.On("CreateFromDoctorFee", ctx, "a-1", mock.Anything, testDoctorID).
			Return(&models.Payment{ID: "pay-1"}, nil)
		f.publisher.On("PublishAppointmentBooked", ctx, mock.Anything).Return(errors.New("channel closed"))
		f.metrics.On("ObserveBooking", metrics.BookingResultBooked).Return()

		appointment, err := f.usecase.BookAppointment(ctx, "pat@x.io", request)

		require.NoError(t, err)
		assert.Equal(t, "a-1", appointment.ID)
	})

	t.Run("doctor removed before payment is not found", func(t *testing.T) {
		f := newAppointmentFixture()
		f.expectTargets(ctx)
		f.transactor.On("WithinTransaction", ctx).Return(nil)
		f.slotRepo.On("MarkBooked", ctx, testDoctorID, testScheduleID).Return(true, nil)
		f.appointmentRepo.On("Create", ctx, mock.Anything).Return(&models.Appointment{ID: "a-1"}, nil)
		f.paymentRepo.On("CreateFromDoctorFee", ctx, "a-1", mock.Anything, testDoctorID).Return(nil, nil)
		f.metrics.On("ObserveBooking", metrics.BookingResultNotFound).Return()

		appointment, err := f.usecase.BookAppointment(ctx, "pat@x.io", request)

		assert.Nil(t, appointment)
		assert.Equal(t, http.StatusNotFound, statusCodeOf(t, err))
		f.publisher.AssertNotCalled(t, "PublishAppointmentBooked", mock.Anything, mock.Anything)
	})

	t.Run("payment failure rolls back", func(t *testing.T) {
		f := newAppointmentFixture()
		f.expectTargets(ctx)
		f.transactor.On("WithinTransaction", ctx).Return(nil)
		f.slotRepo.On("MarkBooked", ctx, testDoctorID, testScheduleID).Return(true, nil)
		f.appointmentRepo.On("Create", ctx, mock.Anything).Return(&models.Appointment{ID: "a-1"}, nil)
		f.paymentRepo.On("CreateFromDoctorFee", ctx, "a-1", mock.Anything, testDoctorID).
			Return(nil, exceptions.ErrPostgresDBExecQuery(errors.New("boom")))
		f.metrics.On("ObserveBooking", metrics.BookingResultError).Return()

		appointment, err := f.usecase.BookAppointment(ctx, "pat@x.io", request)

		assert.Nil(t, appointment)
		assert.Equal(t, http.StatusInternalServerError, statusCodeOf(t, err))
		f.publisher.AssertNotCalled(t, "PublishAppointmentBooked", mock.Anything, mock.Anything)
	})
}

func TestAppointmentUsecase_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	pending := &models.AppointmentWithDoctor{
		Appointment: models.Appointment{ID: "a-1", Status: constvars.AppointmentStatusPending},
		DoctorEmail: "doc@x.io",
	}

	t.Run("owning doctor completes", func(t *testing.T) {
		f := newAppointmentFixture()
		f.appointmentRepo.On("FindWithDoctorByID", ctx, "a-1").Return(pending, nil)
		f.appointmentRepo.On("UpdateStatusFrom", ctx, "a-1", constvars.AppointmentStatusPending, constvars.AppointmentStatusCompleted).
			Return(&models.Appointment{ID: "a-1", Status: constvars.AppointmentStatusCompleted}, nil)

		appointment, err := f.usecase.UpdateStatus(ctx, &models.AuthUser{Email: "doc@x.io", Role: constvars.RoleDoctor}, "a-1",
			&requests.UpdateAppointmentStatus{Status: constvars.AppointmentStatusCompleted})

		require.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusCompleted, appointment.Status)
	})

	t.Run("other doctor is rejected", func(t *testing.T) {
		f := newAppointmentFixture()
		f.appointmentRepo.On("FindWithDoctorByID", ctx, "a-1").Return(pending, nil)

		_, err := f.usecase.UpdateStatus(ctx, &models.AuthUser{Email: "other@x.io", Role: constvars.RoleDoctor}, "a-1",
			&requests.UpdateAppointmentStatus{Status: constvars.AppointmentStatusCancelled})

		assert.Equal(t, http.StatusBadRequest, statusCodeOf(t, err))
	})

	t.Run("admin may cancel any appointment", func(t *testing.T) {
		f := newAppointmentFixture()
		f.appointmentRepo.On("FindWithDoctorByID", ctx, "a-1").Return(pending, nil)
		f.appointmentRepo.On("UpdateStatusFrom", ctx, "a-1", constvars.AppointmentStatusPending, constvars.AppointmentStatusCancelled).
			Return(&models.Appointment{ID: "a-1", Status: constvars.AppointmentStatusCancelled}, nil)

		appointment, err := f.usecase.UpdateStatus(ctx, &models.AuthUser{Email: "root@x.io", Role: constvars.RoleAdmin}, "a-1",
			&requests.UpdateAppointmentStatus{Status: constvars.AppointmentStatusCancelled})

		require.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusCancelled, appointment.Status)
	})

	t.Run("completed appointment cannot change", func(t *testing.T) {
		f := newAppointmentFixture()
		completed := &models.AppointmentWithDoctor{
			Appointment: models.Appointment{ID: "a-1", Status: constvars.AppointmentStatusCompleted},
			DoctorEmail: "doc@x.io",
		}
		f.appointmentRepo.On("FindWithDoctorByID", ctx, "a-1").Return(completed, nil)

		_, err := f.usecase.UpdateStatus(ctx, &models.AuthUser{Email: "doc@x.io", Role: constvars.RoleDoctor}, "a-1",
			&requests.UpdateAppointmentStatus{Status: constvars.AppointmentStatusCancelled})

		assert.Equal(t, http.StatusConflict, statusCodeOf(t, err))
		f.appointmentRepo.AssertNotCalled(t, "UpdateStatusFrom", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown appointment", func(t *testing.T) {
		f := newAppointmentFixture()
		f.appointmentRepo.On("FindWithDoctorByID", ctx, "a-404").Return(nil, nil)

		_, err := f.usecase.UpdateStatus(ctx, &models.AuthUser{Role: constvars.RoleAdmin}, "a-404",
			&requests.UpdateAppointmentStatus{Status: constvars.AppointmentStatusCompleted})

		assert.Equal(t, http.StatusNotFound, statusCodeOf(t, err))
	})
}
