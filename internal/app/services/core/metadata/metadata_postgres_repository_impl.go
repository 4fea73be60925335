package metadata

import (
	"context"
	"database/sql"
	"doccare-service/internal/app/contracts"
	"doccare-service/internal/app/services/shared/transaction"
	"doccare-service/internal/pkg/constvars"
	"doccare-service/internal/pkg/dto/responses"
	"doccare-service/internal/pkg/exceptions"
	"doccare-service/internal/pkg/queries"
	"sync"

	"go.uber.org/zap"
)

type metadataPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	metadataPostgresRepositoryInstance contracts.MetadataRepository
	onceMetadataPostgresRepository     sync.Once
)

func NewMetadataPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.MetadataRepository {
	onceMetadataPostgresRepository.Do(func() {
		instance := &metadataPostgresRepository{
			DB:  db,
			Log: logger,
		}
		metadataPostgresRepositoryInstance = instance
	})
	return metadataPostgresRepositoryInstance
}

func (repo *metadataPostgresRepository) GetAdminMetadata(ctx context.Context) (*responses.AdminMetadata, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("metadataPostgresRepository.GetAdminMetadata called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var (
		metadata responses.AdminMetadata
		err      error
	)
	counts := []struct {
		query  string
		target *int
	}{
		{queries.CountAllPatients, &metadata.PatientCount},
		{queries.CountAllDoctors, &metadata.DoctorCount},
		{queries.CountAllAdmins, &metadata.AdminCount},
		{queries.CountAllAppointments, &metadata.AppointmentCount},
		{queries.CountAllPayments, &metadata.PaymentCount},
	}
	for _, c := range counts {
		if *c.target, err = repo.count(ctx, c.query); err != nil {
			return nil, err
		}
	}

	if metadata.TotalRevenue, err = repo.sum(ctx, queries.SumPaidRevenue); err != nil {
		return nil, err
	}
	if metadata.BarChartData, err = repo.monthlyCounts(ctx); err != nil {
		return nil, err
	}
	if metadata.PieChartData, err = repo.statusCounts(ctx, queries.CountAppointmentsByStatus); err != nil {
		return nil, err
	}
	return &metadata, nil
}

func (repo *metadataPostgresRepository) GetDoctorMetadata(ctx context.Context, doctorID string) (*responses.DoctorMetadata, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("metadataPostgresRepository.GetDoctorMetadata called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	var (
		metadata responses.DoctorMetadata
		err      error
	)
	if metadata.AppointmentCount, err = repo.count(ctx, queries.CountAppointmentsByDoctorID, doctorID); err != nil {
		return nil, err
	}
	if metadata.ReviewCount, err = repo.count(ctx, queries.CountReviewsByDoctorID, doctorID); err != nil {
		return nil, err
	}
	if metadata.PatientCount, err = repo.count(ctx, queries.CountDistinctPatientsByDoctorID, doctorID); err != nil {
		return nil, err
	}
	if metadata.TotalRevenue, err = repo.sum(ctx, queries.SumPaidRevenueByDoctorID, doctorID); err != nil {
		return nil, err
	}
	if metadata.FormattedAppointmentStatusDistribution, err = repo.statusCounts(ctx, queries.CountAppointmentsByStatusForDoctor, doctorID); err != nil {
		return nil, err
	}
	return &metadata, nil
}

func (repo *metadataPostgresRepository) GetPatientMetadata(ctx context.Context, patientID string) (*responses.PatientMetadata, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	repo.Log.Info("metadataPostgresRepository.GetPatientMetadata called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	var (
		metadata responses.PatientMetadata
		err      error
	)
	if metadata.AppointmentCount, err = repo.count(ctx, queries.CountAppointmentsByPatientID, patientID); err != nil {
		return nil, err
	}
	if metadata.PrescriptionCount, err = repo.count(ctx, queries.CountPrescriptionsByPatientID, patientID); err != nil {
		return nil, err
	}
	if metadata.ReviewCount, err = repo.count(ctx, queries.CountReviewsByPatientID, patientID); err != nil {
		return nil, err
	}
	if metadata.FormattedAppointmentStatusDistribution, err = repo.statusCounts(ctx, queries.CountAppointmentsByStatusForPatient, patientID); err != nil {
		return nil, err
	}
	return &metadata, nil
}

func (repo *metadataPostgresRepository) count(ctx context.Context, query string, args ...interface{}) (int, error) {
	var total int
	if err := transaction.Executor(ctx, repo.DB).QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		repo.Log.Error("metadataPostgresRepository.count error executing query",
			zap.String(constvars.LoggingQueryKey, query),
			zap.Error(err),
		)
		return 0, exceptions.ErrPostgresDBFindData(err)
	}
	return total, nil
}

func (repo *metadataPostgresRepository) sum(ctx context.Context, query string, args ...interface{}) (int64, error) {
	var total int64
	if err := transaction.Executor(ctx, repo.DB).QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		repo.Log.Error("metadataPostgresRepository.sum error executing query",
			zap.String(constvars.LoggingQueryKey, query),
			zap.Error(err),
		)
		return 0, exceptions.ErrPostgresDBFindData(err)
	}
	return total, nil
}

func (repo *metadataPostgresRepository) statusCounts(ctx context.Context, query string, args ...interface{}) ([]responses.StatusCount, error) {
	rows, err := transaction.Executor(ctx, repo.DB).QueryContext(ctx, query, args...)
	if err != nil {
		repo.Log.Error("metadataPostgresRepository.statusCounts error executing query",
			zap.String(constvars.LoggingQueryKey, query),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	result := make([]responses.StatusCount, 0)
	for rows.Next() {
		var item responses.StatusCount
		if err := rows.Scan(&item.Status, &item.Count); err != nil {
			return nil, exceptions.ErrPostgresDBScanRow(err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return result, nil
}

func (repo *metadataPostgresRepository) monthlyCounts(ctx context.Context) ([]responses.MonthlyCount, error) {
	rows, err := transaction.Executor(ctx, repo.DB).QueryContext(ctx, queries.CountAppointmentsPerMonth)
	if err != nil {
		repo.Log.Error("metadataPostgresRepository.monthlyCounts error executing query",
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	result := make([]responses.MonthlyCount, 0)
	for rows.Next() {
		var item responses.MonthlyCount
		if err := rows.Scan(&item.Month, &item.Count); err != nil {
			return nil, exceptions.ErrPostgresDBScanRow(err)
		}
		item.Month = item.Month.UTC()
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return result, nil
}
