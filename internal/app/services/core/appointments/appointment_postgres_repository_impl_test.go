package appointments

import (
	"context"
	"database/sql"
	"net/http"
	"testing"
	"time"

	"doccare-service/internal/app/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var appointmentRowColumns = []string{
	"id", "patient_id", "doctor_id", "schedule_id", "video_calling_id",
	"status", "payment_status", "created_at", "updated_at",
}

func setupAppointmentRepository(t *testing.T) (*appointmentPostgresRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return &appointmentPostgresRepository{DB: db, Log: zap.NewNop()}, mock, func() { db.Close() }
}

func TestAppointmentPostgresRepository_Create(t *testing.T) {
	now := time.Now()
	input := &models.Appointment{PatientID: "p-1", DoctorID: "d-1", ScheduleID: "s-1", VideoCallingID: "v-1"}

	t.Run("inserted as pending", func(t *testing.T) {
		repo, mock, cleanup := setupAppointmentRepository(t)
		defer cleanup()

		mock.ExpectQuery("INSERT INTO appointments").
			WithArgs("p-1", "d-1", "s-1", "v-1").
			WillReturnRows(sqlmock.NewRows(appointmentRowColumns).
				AddRow("a-1", "p-1", "d-1", "s-1", "v-1", "PENDING", "PENDING", now, now))

		appointment, err := repo.Create(context.Background(), input)

		require.NoError(t, err)
		assert.Equal(t, "a-1", appointment.ID)
		assert.Equal(t, "PENDING", appointment.PaymentStatus)
	})

	t.Run("second appointment for a slot conflicts", func(t *testing.T) {
		repo, mock, cleanup := setupAppointmentRepository(t)
		defer cleanup()

		mock.ExpectQuery("INSERT INTO appointments").WillReturnError(&pq.Error{Code: "23505"})

		_, err := repo.Create(context.Background(), input)

		assert.Equal(t, http.StatusConflict, statusCodeOf(t, err))
	})
}

func TestAppointmentPostgresRepository_FindWithDoctorByID(t *testing.T) {
	now := time.Now()

	t.Run("found", func(t *testing.T) {
		repo, mock, cleanup := setupAppointmentRepository(t)
		defer cleanup()

		mock.ExpectQuery("FROM appointments a JOIN doctors d").
			WithArgs("a-1").
			WillReturnRows(sqlmock.NewRows(append(appointmentRowColumns, "email")).
				AddRow("a-1", "p-1", "d-1", "s-1", "v-1", "PENDING", "PENDING", now, now, "doc@x.io"))

		appointment, err := repo.FindWithDoctorByID(context.Background(), "a-1")

		require.NoError(t, err)
		assert.Equal(t, "doc@x.io", appointment.DoctorEmail)
		assert.Equal(t, "d-1", appointment.DoctorID)
	})

	t.Run("missing", func(t *testing.T) {
		repo, mock, cleanup := setupAppointmentRepository(t)
		defer cleanup()

		mock.ExpectQuery("FROM appointments a").WillReturnError(sql.ErrNoRows)

		appointment, err := repo.FindWithDoctorByID(context.Background(), "a-404")

		assert.NoError(t, err)
		assert.Nil(t, appointment)
	})
}

func TestAppointmentPostgresRepository_UpdateStatusFrom(t *testing.T) {
	repo, mock, cleanup := setupAppointmentRepository(t)
	defer cleanup()

	mock.ExpectQuery("UPDATE appointments SET status = \\$3").
		WithArgs("a-1", "PENDING", "COMPLETED").
		WillReturnError(sql.ErrNoRows)

	appointment, err := repo.UpdateStatusFrom(context.Background(), "a-1", "PENDING", "COMPLETED")

	assert.NoError(t, err)
	assert.Nil(t, appointment)
	assert.NoError(t, mock.ExpectationsWereMet())
}
