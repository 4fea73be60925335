package payments

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var paymentRowColumns = []string{"id", "appointment_id", "amount", "transaction_id", "status", "created_at", "updated_at"}

func TestPaymentPostgresRepository_CreateFromDoctorFee(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := &paymentPostgresRepository{DB: db, Log: zap.NewNop()}
	now := time.Now()

	mock.ExpectQuery("INSERT INTO payments .* SELECT \\$1, d.appointment_fee, \\$2 FROM doctors d").
		WithArgs("a-1", "tx-1", "d-1").
		WillReturnRows(sqlmock.NewRows(paymentRowColumns).AddRow("pay-1", "a-1", int64(750), "tx-1", "PENDING", now, now))

	payment, err := repo.CreateFromDoctorFee(context.Background(), "a-1", "tx-1", "d-1")

	require.NoError(t, err)
	assert.Equal(t, int64(750), payment.Amount)
	assert.Equal(t, "PENDING", payment.Status)
}

func TestPaymentPostgresRepository_CreateFromDoctorFee_DeletedDoctor(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := &paymentPostgresRepository{DB: db, Log: zap.NewNop()}

	mock.ExpectQuery("INSERT INTO payments .* FROM doctors d WHERE d.id = \\$3 AND d.is_deleted = false").
		WithArgs("a-1", "tx-1", "d-1").
		WillReturnRows(sqlmock.NewRows(paymentRowColumns))

	payment, err := repo.CreateFromDoctorFee(context.Background(), "a-1", "tx-1", "d-1")

	require.NoError(t, err)
	assert.Nil(t, payment)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentPostgresRepository_MarkPaidByAppointmentID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := &paymentPostgresRepository{DB: db, Log: zap.NewNop()}

	mock.ExpectQuery("UPDATE payments SET status = 'PAID'.* AND status = 'PENDING'").
		WithArgs("a-1").
		WillReturnError(sql.ErrNoRows)

	payment, err := repo.MarkPaidByAppointmentID(context.Background(), "a-1")

	assert.NoError(t, err)
	assert.Nil(t, payment)
}
