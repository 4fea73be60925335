package schedules

import (
	"context"
	"doccare-service/internal/app/config"
	"doccare-service/internal/app/contracts"
	"doccare-service/internal/pkg/constvars"
	"doccare-service/internal/pkg/dto/requests"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// leaderLockKey is the fixed key used to ensure a single generator leader.
const leaderLockKey = "slotgen:leader"

const leaderLockTTL = 2 * time.Minute

// Worker keeps a rolling window of future slots generated.
type Worker struct {
	log             *zap.Logger
	cfg             *config.InternalConfig
	locker          contracts.LockerService
	scheduleUsecase contracts.ScheduleUsecase
	location        *time.Location
	now             func() time.Time
	cron            *cron.Cron
	runCtx          context.Context
	cancel          context.CancelFunc
}

func NewWorker(log *zap.Logger, cfg *config.InternalConfig, lockerSvc contracts.LockerService, scheduleUsecase contracts.ScheduleUsecase, location *time.Location) *Worker {
	if location == nil {
		location = time.UTC
	}
	return &Worker{
		log:             log,
		cfg:             cfg,
		locker:          lockerSvc,
		scheduleUsecase: scheduleUsecase,
		location:        location,
		now:             time.Now,
	}
}

func (w *Worker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New(cron.WithLocation(w.location))
	_, err := c.AddFunc(w.cfg.App.SlotWorkerCronSpec, func() { w.runOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("schedules.worker: failed to schedule with provided cron spec; falling back to @daily", zap.Error(err))
		c = cron.New(cron.WithLocation(w.location))
		_, _ = c.AddFunc("@daily", func() { w.runOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
}

// Stop waits for an in-flight run to finish.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		<-w.cron.Stop().Done()
	}
}

func (w *Worker) runOnce(ctx context.Context) {
	ctx = context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, "slot-worker-"+w.now().UTC().Format(time.RFC3339))

	acquired, token, err := w.locker.TryLock(ctx, leaderLockKey, leaderLockTTL)
	if err != nil {
		w.log.Warn("schedules.worker: leader lock attempt failed", zap.Error(err))
		return
	}
	if !acquired {
		w.log.Info("schedules.worker: leader lock not acquired; another instance is running")
		return
	}
	defer func() {
		// the run context may already be cancelled at shutdown
		if err := w.locker.Unlock(context.WithoutCancel(ctx), leaderLockKey, token); err != nil {
			w.log.Warn("schedules.worker: failed to release leader lock", zap.Error(err))
		}
	}()

	refreshCtx, cancelRefresh := context.WithCancel(ctx)
	defer cancelRefresh()
	go func() {
		tick := time.NewTicker(leaderLockTTL / 2)
		defer tick.Stop()
		for {
			select {
			case <-refreshCtx.Done():
				return
			case <-tick.C:
				if err := w.locker.Refresh(refreshCtx, leaderLockKey, token, leaderLockTTL); err != nil {
					w.log.Warn("schedules.worker: failed to refresh leader lock TTL", zap.Error(err))
				}
			}
		}
	}()

	request := w.rollingRequest()
	created, err := w.scheduleUsecase.CreateSchedules(ctx, request)
	if err != nil {
		w.log.Warn("schedules.worker: slot generation failed", zap.Error(err))
		return
	}
	w.log.Info("schedules.worker: slot generation finished",
		zap.String("start_date", request.StartDate),
		zap.String("end_date", request.EndDate),
		zap.Int(constvars.LoggingCountKey, len(created)),
	)
}

// rollingRequest covers today and the following SlotWindowDays-1 days.
func (w *Worker) rollingRequest() *requests.CreateSchedule {
	days := w.cfg.App.SlotWindowDays
	if days <= 0 {
		days = 1
	}
	today := w.now().In(w.location)
	return &requests.CreateSchedule{
		StartDate: today.Format(constvars.DateLayoutYYYYMMDD),
		EndDate:   today.AddDate(0, 0, days-1).Format(constvars.DateLayoutYYYYMMDD),
		StartTime: w.cfg.App.SlotWorkerDayStart,
		EndTime:   w.cfg.App.SlotWorkerDayEnd,
	}
}
