package doctors

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

func newTestDoctorUsecase() (*doctorUsecase, *mocks.DoctorRepository, *mocks.DoctorScheduleRepository, *mocks.UserRepository, *mocks.Transactor) {
	doctorRepo := new(mocks.DoctorRepository)
	doctorScheduleRepo := new(mocks.DoctorScheduleRepository)
	userRepo := new(mocks.UserRepository)
	transactor := new(mocks.Transactor)
	return &doctorUsecase{
		DoctorRepository:         doctorRepo,
		DoctorScheduleRepository: doctorScheduleRepo,
		UserRepository:           userRepo,
		Transactor:               transactor,
		Log:                      zap.NewNop(),
	}, doctorRepo, doctorScheduleRepo, userRepo, transactor
}

func TestDoctorUsecase_FindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("includes doctor schedules", func(t *testing.T) {
		uc, doctorRepo, doctorScheduleRepo, _, _ := newTestDoctorUsecase()
		doctorRepo.On("FindByID", ctx, "d-1").Return(&models.Doctor{ID: "d-1", Name: "Dr. Who"}, nil)
		doctorScheduleRepo.On("FindByDoctorID", ctx, "d-1").Return([]models.DoctorSchedule{
			{DoctorID: "d-1", ScheduleID: "s-1"},
			{DoctorID: "d-1", ScheduleID: "s-2", IsBooked: true},
		}, nil)

		detail, err := uc.FindByID(ctx, "d-1")

		require.NoError(t, err)
		assert.Equal(t, "Dr. Who", detail.Name)
		assert.Len(t, detail.DoctorSchedules, 2)
	})

	t.Run("soft deleted doctor is not found", func(t *testing.T) {
		uc, doctorRepo, doctorScheduleRepo, _, _ := newTestDoctorUsecase()
		doctorRepo.On("FindByID", ctx, "d-gone").Return(nil, nil)

		_, err := uc.FindByID(ctx, "d-gone")

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, http.StatusNotFound, customErr.StatusCode)
		doctorScheduleRepo.AssertNotCalled(t, "FindByDoctorID", mock.Anything, mock.Anything)
	})
}

func TestDoctorUsecase_Update(t *testing.T) {
	ctx := context.Background()
	uc, doctorRepo, _, _, _ := newTestDoctorUsecase()
	fee := int64(900)
	request := &requests.UpdateDoctor{AppointmentFee: &fee}
	doctorRepo.On("Update", ctx, "d-1", request).Return(&models.Doctor{ID: "d-1", AppointmentFee: 900}, nil)

	doctor, err := uc.Update(ctx, "d-1", request)

	require.NoError(t, err)
	assert.Equal(t, int64(900), doctor.AppointmentFee)
}

func TestDoctorUsecase_Delete(t *testing.T) {
	ctx := context.Background()
	uc, doctorRepo, _, userRepo, transactor := newTestDoctorUsecase()
	transactor.On("WithinTransaction", ctx).Return(nil)
	doctorRepo.On("SoftDelete", ctx, "d-1").Return(&models.Doctor{ID: "d-1", Email: "doc@x.io", IsDeleted: true}, nil)
	userRepo.On("UpdateStatusByEmail", ctx, "doc@x.io", constvars.UserStatusDeleted).Return(nil)

	doctor, err := uc.Delete(ctx, "d-1")

	require.NoError(t, err)
	assert.True(t, doctor.IsDeleted)
	userRepo.AssertExpectations(t)
}
