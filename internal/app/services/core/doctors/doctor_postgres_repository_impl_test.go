package doctors

import (
	"context"
	"testing"
	"time"

	"doccare-service/internal/pkg/dto/requests"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var doctorRowColumns = []string{
	"id", "name", "email", "contact_number", "address", "registration_number", "experience", "gender",
	"appointment_fee", "qualification", "current_working_place", "designation", "profile_photo",
	"average_rating", "is_deleted", "created_at", "updated_at",
}

func setupDoctorRepository(t *testing.T) (*doctorPostgresRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return &doctorPostgresRepository{DB: db, Log: zap.NewNop()}, mock, func() { db.Close() }
}

func TestDoctorPostgresRepository_UpdateOnlyProvidedFields(t *testing.T) {
	repo, mock, cleanup := setupDoctorRepository(t)
	defer cleanup()
	now := time.Now()
	fee := int64(900)

	mock.ExpectQuery("UPDATE doctors SET name = COALESCE\\(\\$2, name\\)").
		WithArgs("d-1", nil, nil, nil, nil, nil, nil, fee, nil, nil, nil, nil).
		WillReturnRows(sqlmock.NewRows(doctorRowColumns).AddRow(
			"d-1", "Dr. Who", "doc@x.io", "0800", "", "REG-1", 5, "MALE",
			fee, "MBBS", "General", "GP", "", 0.0, false, now, now,
		))

	doctor, err := repo.Update(context.Background(), "d-1", &requests.UpdateDoctor{AppointmentFee: &fee})

	require.NoError(t, err)
	assert.Equal(t, fee, doctor.AppointmentFee)
	assert.Equal(t, "Dr. Who", doctor.Name)
}

func TestDoctorPostgresRepository_RecalculateAverageRating(t *testing.T) {
	repo, mock, cleanup := setupDoctorRepository(t)
	defer cleanup()

	mock.ExpectQuery("UPDATE doctors SET average_rating = \\(SELECT COALESCE\\(AVG\\(rating\\), 0\\) FROM reviews").
		WithArgs("d-1").
		WillReturnRows(sqlmock.NewRows([]string{"average_rating"}).AddRow(3.0))

	averageRating, err := repo.RecalculateAverageRating(context.Background(), "d-1")

	require.NoError(t, err)
	assert.Equal(t, 3.0, averageRating)
}
