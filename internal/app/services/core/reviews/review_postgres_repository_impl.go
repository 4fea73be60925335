package reviews

import (
	"context"
	"database/sql"
	"doccare-service/internal/app/contracts"
	"doccare-service/internal/app/models"
	"doccare-service/internal/app/services/shared/transaction"
	"doccare-service/internal/pkg/constvars"
	"doccare-service/internal/pkg/exceptions"
	"doccare-service/internal/pkg/queries"
	"sync"

	"go.uber.org/zap"
)

type reviewPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	reviewPostgresRepositoryInstance contracts.ReviewRepository
	onceReviewPostgresRepository     sync.Once
)

func NewReviewPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.ReviewRepository {
	onceReviewPostgresRepository.Do(func() {
		instance := &reviewPostgresRepository{
			DB:  db,
			Log: logger,
		}
		reviewPostgresRepositoryInstance = instance
	})
	return reviewPostgresRepositoryInstance
}

func (repo *reviewPostgresRepository) Create(ctx context.Context, review *models.Review) (*models.Review, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("reviewPostgresRepository.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentKey, review.AppointmentID),
		zap.Int("rating", review.Rating),
	)

	var (
		created models.Review
		comment sql.NullString
	)
	err := transaction.Executor(ctx, repo.DB).QueryRowContext(ctx, queries.InsertReview,
		review.AppointmentID,
		review.DoctorID,
		review.PatientID,
		review.Rating,
		review.Comment,
	).Scan(
		&created.ID,
		&created.AppointmentID,
		&created.DoctorID,
		&created.PatientID,
		&created.Rating,
		&comment,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		repo.Log.Error("reviewPostgresRepository.Create error executing query",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if exceptions.IsPostgresErrorCode(err, constvars.PostgresErrCodeUniqueViolation) {
			return nil, exceptions.ErrResourceConflict(err, constvars.ErrClientReviewAlreadyExists)
		}
		return nil, exceptions.ErrPostgresDBExecQuery(err)
	}

	if comment.Valid {
		created.Comment = &comment.String
	}
	return &created, nil
}
