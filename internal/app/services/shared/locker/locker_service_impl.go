package locker

import (
	"context"
	"doccare-service/internal/app/contracts"
	"doccare-service/internal/pkg/constvars"
	"doccare-service/internal/pkg/exceptions"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	lockerServiceInstance contracts.LockerService
	onceLockerService     sync.Once
)

var errLockLost = errors.New("lock expired or taken over by another holder")

// lockService hands out ownership tokens for redis keys. Only the token
// returned by TryLock can release or extend the key.
type lockService struct {
	store    contracts.RedisRepository
	Log      *zap.Logger
	newToken func() string
}

func NewLockService(store contracts.RedisRepository, logger *zap.Logger) contracts.LockerService {
	onceLockerService.Do(func() {
		lockerServiceInstance = &lockService{
			store:    store,
			Log:      logger,
			newToken: uuid.NewString,
		}
	})
	return lockerServiceInstance
}

func (s *lockService) TryLock(ctx context.Context, key string, ttl time.Duration) (bool, string, error) {
	token := s.newToken()
	acquired, err := s.store.SetIfAbsent(ctx, key, token, ttl)
	if err != nil {
		s.Log.Error("lockService.TryLock redis error",
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return false, "", err
	}
	if !acquired {
		s.Log.Debug("lockService.TryLock held elsewhere", zap.String(constvars.LoggingRedisKey, key))
		return false, "", nil
	}

	s.Log.Info("lockService.TryLock acquired",
		zap.String(constvars.LoggingRedisKey, key),
		zap.Duration(constvars.LoggingLockExpirationTimeKey, ttl),
	)
	return true, token, nil
}

// Unlock is a no-op when the key already expired or changed hands.
func (s *lockService) Unlock(ctx context.Context, key, token string) error {
	released, err := s.store.DeleteIfValue(ctx, key, token)
	if err != nil {
		s.Log.Error("lockService.Unlock redis error",
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return err
	}
	if !released {
		s.Log.Warn("lockService.Unlock lock no longer held", zap.String(constvars.LoggingRedisKey, key))
		return nil
	}

	s.Log.Info("lockService.Unlock released", zap.String(constvars.LoggingRedisKey, key))
	return nil
}

func (s *lockService) Refresh(ctx context.Context, key, token string, ttl time.Duration) error {
	extended, err := s.store.ExpireIfValue(ctx, key, token, ttl)
	if err != nil {
		s.Log.Error("lockService.Refresh redis error",
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return err
	}
	if !extended {
		return exceptions.ErrRedisRefresh(errLockLost)
	}
	return nil
}
