package reviews

import (
	"context"
	"net/http"
	"testing"

	"doccare-service/internal/app/contracts/mocks"
	"doccare-service/internal/app/models"
	"doccare-service/internal/pkg/constvars"
	"doccare-service/internal/pkg/dto/requests"
	"doccare-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type reviewFixture struct {
	usecase         *reviewUsecase
	reviewRepo      *mocks.ReviewRepository
	appointmentRepo *mocks.AppointmentRepository
	patientRepo     *mocks.PatientRepository
	doctorRepo      *mocks.DoctorRepository
	transactor      *mocks.Transactor
}

func newReviewFixture() *reviewFixture {
	f := &reviewFixture{
		reviewRepo:      new(mocks.ReviewRepository),
		appointmentRepo: new(mocks.AppointmentRepository),
		patientRepo:     new(mocks.PatientRepository),
		doctorRepo:      new(mocks.DoctorRepository),
		transactor:      new(mocks.Transactor),
	}
	f.usecase = &reviewUsecase{
		ReviewRepository:      f.reviewRepo,
		AppointmentRepository: f.appointmentRepo,
		PatientRepository:     f.patientRepo,
		DoctorRepository:      f.doctorRepo,
		Transactor:            f.transactor,
		Log:                   zap.NewNop(),
	}
	return f
}

func TestReviewUsecase_CreateReview(t *testing.T) {
	ctx := context.Background()
	patient := &models.Patient{ID: "p-1", Email: "pat@x.io"}
	appointment := &models.AppointmentWithDoctor{Appointment: models.Appointment{ID: "a-1", PatientID: "p-1", DoctorID: "d-1"}}

	t.Run("stores review and recalculates rating", func(t *testing.T) {
		f := newReviewFixture()
		f.patientRepo.On("FindByEmail", ctx, "pat@x.io").Return(patient, nil)
		f.appointmentRepo.On("FindWithDoctorByID", ctx, "a-1").Return(appointment, nil)
		f.transactor.On("WithinTransaction", ctx).Return(nil)
		f.reviewRepo.On("Create", ctx, mock.MatchedBy(func(r *models.Review) bool {
			return r.DoctorID == "d-1" && r.Rating == 4
		})).Return(&models.Review{ID: "r-1", Rating: 4}, nil)
		f.doctorRepo.On("RecalculateAverageRating", ctx, "d-1").Return(4.0, nil)

		review, err := f.usecase.CreateReview(ctx, "pat@x.io", &requests.CreateReview{AppointmentID: "a-1", Rating: 4})

		require.NoError(t, err)
		assert.Equal(t, "r-1", review.ID)
		f.doctorRepo.AssertExpectations(t)
	})

	t.Run("someone else's appointment", func(t *testing.T) {
		f := newReviewFixture()
		f.patientRepo.On("FindByEmail", ctx, "eve@x.io").Return(&models.Patient{ID: "p-2"}, nil)
		f.appointmentRepo.On("FindWithDoctorByID", ctx, "a-1").Return(appointment, nil)

		_, err := f.usecase.CreateReview(ctx, "eve@x.io", &requests.CreateReview{AppointmentID: "a-1", Rating: 5})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, http.StatusBadRequest, customErr.StatusCode)
		f.transactor.AssertNotCalled(t, "WithinTransaction", mock.Anything)
	})

	t.Run("missing appointment", func(t *testing.T) {
		f := newReviewFixture()
		f.patientRepo.On("FindByEmail", ctx, "pat@x.io").Return(patient, nil)
		f.appointmentRepo.On("FindWithDoctorByID", ctx, "a-404").Return(nil, nil)

		_, err := f.usecase.CreateReview(ctx, "pat@x.io", &requests.CreateReview{AppointmentID: "a-404", Rating: 5})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, http.StatusNotFound, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientReviewTargetNotFound, customErr.ClientMessage)
	})

	t.Run("duplicate review skips recalculation", func(t *testing.T) {
		f := newReviewFixture()
		f.patientRepo.On("FindByEmail", ctx, "pat@x.io").Return(patient, nil)
		f.appointmentRepo.On("FindWithDoctorByID", ctx, "a-1").Return(appointment, nil)
		f.transactor.On("WithinTransaction", ctx).Return(nil)
		f.reviewRepo.On("Create", ctx, mock.Anything).
			Return(nil, exceptions.ErrResourceConflict(nil, constvars.ErrClientReviewAlreadyExists))

		_, err := f.usecase.CreateReview(ctx, "pat@x.io", &requests.CreateReview{AppointmentID: "a-1", Rating: 2})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, http.StatusConflict, customErr.StatusCode)
		f.doctorRepo.AssertNotCalled(t, "RecalculateAverageRating", mock.Anything, mock.Anything)
	})
}
