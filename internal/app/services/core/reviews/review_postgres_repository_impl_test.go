package reviews

import (
	"context"
	"testing"
	"time"

	"doccare-service/internal/app/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestReviewPostgresRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := &reviewPostgresRepository{DB: db, Log: zap.NewNop()}
	now := time.Now()
	comment := "kind and thorough"

	mock.ExpectQuery("INSERT INTO reviews").
		WithArgs("a-1", "d-1", "p-1", 5, comment).
		WillReturnRows(sqlmock.NewRows([]string{"id", "appointment_id", "doctor_id", "patient_id", "rating", "comment", "created_at", "updated_at"}).
			AddRow("r-1", "a-1", "d-1", "p-1", 5, comment, now, now))

	review, err := repo.Create(context.Background(), &models.Review{
		AppointmentID: "a-1",
		DoctorID:      "d-1",
		PatientID:     "p-1",
		Rating:        5,
		Comment:       &comment,
	})

	require.NoError(t, err)
	require.NotNil(t, review.Comment)
	assert.Equal(t, comment, *review.Comment)
}
