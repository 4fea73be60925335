package payments

import (
	"context"
	"database/sql"
	"doccare-service/internal/app/contracts"
	"doccare-service/internal/app/models"
	"doccare-service/internal/app/services/shared/transaction"
	"doccare-service/internal/pkg/constvars"
	"doccare-service/internal/pkg/exceptions"
	"doccare-service/internal/pkg/queries"
	"errors"
	"sync"

	"go.uber.org/zap"
)

type paymentPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	paymentPostgresRepositoryInstance contracts.PaymentRepository
	oncePaymentPostgresRepository     sync.Once
)

func NewPaymentPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.PaymentRepository {
	oncePaymentPostgresRepository.Do(func() {
		instance := &paymentPostgresRepository{
			DB:  db,
			Log: logger,
		}
		paymentPostgresRepositoryInstance = instance
	})
	return paymentPostgresRepositoryInstance
}

func scanPayment(row *sql.Row) (*models.Payment, error) {
	var payment models.Payment
	err := row.Scan(
		&payment.ID,
		&payment.AppointmentID,
		&payment.Amount,
		&payment.TransactionID,
		&payment.Status,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

// CreateFromDoctorFee returns nil, nil when the doctor row is gone.
func (repo *paymentPostgresRepository) CreateFromDoctorFee(ctx context.Context, appointmentID, transactionID, doctorID string) (*models.Payment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("paymentPostgresRepository.CreateFromDoctorFee called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentKey, appointmentID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	row := transaction.Executor(ctx, repo.DB).QueryRowContext(ctx, queries.InsertPaymentFromDoctorFee, appointmentID, transactionID, doctorID)
	payment, err := scanPayment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		repo.Log.Error("paymentPostgresRepository.CreateFromDoctorFee error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.FromPostgresError(err)
	}

	repo.Log.Info("paymentPostgresRepository.CreateFromDoctorFee succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64("amount", payment.Amount),
	)
	return payment, nil
}

func (repo *paymentPostgresRepository) MarkPaidByAppointmentID(ctx context.Context, appointmentID string) (*models.Payment, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("paymentPostgresRepository.MarkPaidByAppointmentID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentKey, appointmentID),
	)

	row := transaction.Executor(ctx, repo.DB).QueryRowContext(ctx, queries.MarkPaymentPaidByAppointmentID, appointmentID)
	payment, err := scanPayment(row)
	if errors.Is(err, sql.ErrNoRows) || exceptions.IsPostgresErrorCode(err, constvars.PostgresErrCodeInvalidTextRepr) {
		repo.Log.Warn("paymentPostgresRepository.MarkPaidByAppointmentID no pending payment",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, nil
	} else if err != nil {
		repo.Log.Error("paymentPostgresRepository.MarkPaidByAppointmentID error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBExecQuery(err)
	}
	return payment, nil
}
