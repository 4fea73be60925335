package schedules

import (
	"context"
	"errors"
	"testing"
	"time"

	"doccare-service/internal/app/config"
	"doccare-service/internal/app/contracts/mocks"
	"doccare-service/internal/app/models"
	"doccare-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newTestWorker(locker *mocks.LockerService, usecase *mocks.ScheduleUsecase) *Worker {
	cfg := &config.InternalConfig{App: config.App{
		SlotWorkerCronSpec: "@daily",
		SlotWorkerDayStart: "09:00",
		SlotWorkerDayEnd:   "17:00",
		SlotWindowDays:     7,
	}}
	w := NewWorker(zap.NewNop(), cfg, locker, usecase, time.UTC)
	w.now = func() time.Time { return time.Date(2030, 1, 30, 23, 0, 0, 0, time.UTC) }
	return w
}

func TestWorker_RunOnceAsLeader(t *testing.T) {
	locker := new(mocks.LockerService)
	usecase := new(mocks.ScheduleUsecase)

	locker.On("TryLock", mock.Anything, leaderLockKey, leaderLockTTL).Return(true, "token", nil)
	locker.On("Unlock", mock.Anything, leaderLockKey, "token").Return(nil)
	usecase.On("CreateSchedules", mock.Anything, &requests.CreateSchedule{
		StartDate: "2030-01-30",
		EndDate:   "2030-02-05",
		StartTime: "09:00",
		EndTime:   "17:00",
	}).Return([]models.Schedule{{ID: "s-1"}}, nil)

	newTestWorker(locker, usecase).runOnce(context.Background())

	locker.AssertExpectations(t)
	usecase.AssertExpectations(t)
}

func TestWorker_RunOnceSkipsWithoutLeadership(t *testing.T) {
	locker := new(mocks.LockerService)
	usecase := new(mocks.ScheduleUsecase)

	locker.On("TryLock", mock.Anything, leaderLockKey, leaderLockTTL).Return(false, "", nil)

	newTestWorker(locker, usecase).runOnce(context.Background())

	usecase.AssertNotCalled(t, "CreateSchedules", mock.Anything, mock.Anything)
	locker.AssertNotCalled(t, "Unlock", mock.Anything, mock.Anything, mock.Anything)
}

func TestWorker_RunOnceLockError(t *testing.T) {
	locker := new(mocks.LockerService)
	usecase := new(mocks.ScheduleUsecase)

	locker.On("TryLock", mock.Anything, leaderLockKey, leaderLockTTL).Return(false, "", errors.New("redis down"))

	newTestWorker(locker, usecase).runOnce(context.Background())

	usecase.AssertNotCalled(t, "CreateSchedules", mock.Anything, mock.Anything)
}

func TestWorker_RollingRequestDefaultsToOneDay(t *testing.T) {
	w := newTestWorker(new(mocks.LockerService), new(mocks.ScheduleUsecase))
	w.cfg.App.SlotWindowDays = 0

	request := w.rollingRequest()

	assert.Equal(t, request.StartDate, request.EndDate)
}

func TestWorker_StartAndStopWithInvalidSpec(t *testing.T) {
	w := newTestWorker(new(mocks.LockerService), new(mocks.ScheduleUsecase))
	w.cfg.App.SlotWorkerCronSpec = "not a cron spec"

	w.Start(context.Background())
	assert.NotNil(t, w.cron)
	w.Stop()
}
