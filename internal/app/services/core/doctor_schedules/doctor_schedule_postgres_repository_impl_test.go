package doctor_schedules

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"testing"
	"time"

	"doccare-service/internal/pkg/exceptions"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupDoctorScheduleRepository(t *testing.T) (*doctorSchedulePostgresRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return &doctorSchedulePostgresRepository{DB: db, Log: zap.NewNop()}, mock, func() { db.Close() }
}

func TestDoctorSchedulePostgresRepository_MarkBooked(t *testing.T) {
	t.Run("guarded update wins", func(t *testing.T) {
		repo, mock, cleanup := setupDoctorScheduleRepository(t)
		defer cleanup()

		mock.ExpectExec("UPDATE doctor_schedules SET is_booked = true.* AND is_booked = false").
			WithArgs("d-1", "s-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		booked, err := repo.MarkBooked(context.Background(), "d-1", "s-1")

		require.NoError(t, err)
		assert.True(t, booked)
	})

	t.Run("already booked affects zero rows", func(t *testing.T) {
		repo, mock, cleanup := setupDoctorScheduleRepository(t)
		defer cleanup()

		mock.ExpectExec("UPDATE doctor_schedules").
			WithArgs("d-1", "s-1").
			WillReturnResult(sqlmock.NewResult(0, 0))

		booked, err := repo.MarkBooked(context.Background(), "d-1", "s-1")

		require.NoError(t, err)
		assert.False(t, booked)
	})

	t.Run("storage failure", func(t *testing.T) {
		repo, mock, cleanup := setupDoctorScheduleRepository(t)
		defer cleanup()

		mock.ExpectExec("UPDATE doctor_schedules").WillReturnError(errors.New("broken pipe"))

		_, err := repo.MarkBooked(context.Background(), "d-1", "s-1")

		assert.Error(t, err)
	})
}

func TestDoctorSchedulePostgresRepository_CreateIfNotExists(t *testing.T) {
	now := time.Now()

	t.Run("inserted", func(t *testing.T) {
		repo, mock, cleanup := setupDoctorScheduleRepository(t)
		defer cleanup()

		mock.ExpectQuery("INSERT INTO doctor_schedules .* ON CONFLICT \\(doctor_id, schedule_id\\) DO NOTHING").
			WithArgs("d-1", "s-1").
			WillReturnRows(sqlmock.NewRows([]string{"doctor_id", "schedule_id", "is_booked", "created_at", "updated_at"}).
				AddRow("d-1", "s-1", false, now, now))

		doctorSchedule, err := repo.CreateIfNotExists(context.Background(), "d-1", "s-1")

		require.NoError(t, err)
		assert.False(t, doctorSchedule.IsBooked)
	})

	t.Run("existing pair is skipped", func(t *testing.T) {
		repo, mock, cleanup := setupDoctorScheduleRepository(t)
		defer cleanup()

		mock.ExpectQuery("INSERT INTO doctor_schedules").WillReturnError(sql.ErrNoRows)

		doctorSchedule, err := repo.CreateIfNotExists(context.Background(), "d-1", "s-1")

		assert.NoError(t, err)
		assert.Nil(t, doctorSchedule)
	})

	t.Run("unknown schedule is not found", func(t *testing.T) {
		repo, mock, cleanup := setupDoctorScheduleRepository(t)
		defer cleanup()

		mock.ExpectQuery("INSERT INTO doctor_schedules").WillReturnError(&pq.Error{Code: "23503"})

		_, err := repo.CreateIfNotExists(context.Background(), "d-1", "s-404")

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, http.StatusNotFound, customErr.StatusCode)
		assert.Equal(t, "Schedule not found", customErr.ClientMessage)
	})
}
