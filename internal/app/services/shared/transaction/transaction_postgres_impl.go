package transaction

import (
	"context"
	"database/sql"
	"doccare-service/internal/app/contracts"
	"doccare-service/internal/pkg/constvars"
	"doccare-service/internal/pkg/exceptions"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

type txKey struct{}

// DBTX is satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Executor returns the transaction bound to ctx, or db when there is none.
func Executor(ctx context.Context, db *sql.DB) DBTX {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return tx
	}
	return db
}

type postgresTransactor struct {
	DB      *sql.DB
	Log     *zap.Logger
	Timeout time.Duration
}

var (
	postgresTransactorInstance contracts.Transactor
	oncePostgresTransactor     sync.Once
)

func NewPostgresTransactor(db *sql.DB, logger *zap.Logger, timeout time.Duration) contracts.Transactor {
	oncePostgresTransactor.Do(func() {
		postgresTransactorInstance = newPostgresTransactor(db, logger, timeout)
	})
	return postgresTransactorInstance
}

func newPostgresTransactor(db *sql.DB, logger *zap.Logger, timeout time.Duration) *postgresTransactor {
	return &postgresTransactor{
		DB:      db,
		Log:     logger,
		Timeout: timeout,
	}
}

// WithinTransaction commits when fn returns nil and rolls back otherwise.
// A nested call joins the outer transaction.
func (t *postgresTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if _, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return fn(ctx)
	}

	if t.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.Timeout)
		defer cancel()
	}

	tx, err := t.DB.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		t.Log.Error("postgresTransactor.WithinTransaction error beginning transaction",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBBeginTx(err)
	}

	err = fn(context.WithValue(ctx, txKey{}, tx))
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			t.Log.Error("postgresTransactor.WithinTransaction error rolling back",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(rbErr),
			)
		}
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return exceptions.ErrServerDeadlineExceeded(err)
		}
		return err
	}

	err = tx.Commit()
	if err != nil {
		t.Log.Error("postgresTransactor.WithinTransaction error committing transaction",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return exceptions.ErrServerDeadlineExceeded(err)
		}
		return exceptions.ErrPostgresDBCommitTx(err)
	}
	return nil
}
