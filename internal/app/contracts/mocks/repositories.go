package mocks

import (
	"context"
	"doccare-service/internal/app/contracts"
	"doccare-service/internal/app/models"
	"doccare-service/internal/pkg/dto/requests"
	"doccare-service/internal/pkg/dto/responses"
	"time"

	"github.com/stretchr/testify/mock"
)

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) CreateUser(ctx context.Context, account *requests.NewAccount) (*models.User, error) {
	args := m.Called(ctx, account)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *UserRepository) FindActiveByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *UserRepository) UpdateStatusByEmail(ctx context.Context, email, status string) error {
	return m.Called(ctx, email, status).Error(0)
}

type PatientRepository struct {
	mock.Mock
}

func (m *PatientRepository) Create(ctx context.Context, patient *models.Patient) (*models.Patient, error) {
	args := m.Called(ctx, patient)
	result, _ := args.Get(0).(*models.Patient)
	return result, args.Error(1)
}

func (m *PatientRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	args := m.Called(ctx, patientID)
	result, _ := args.Get(0).(*models.Patient)
	return result, args.Error(1)
}

func (m *PatientRepository) FindByEmail(ctx context.Context, email string) (*models.Patient, error) {
	args := m.Called(ctx, email)
	result, _ := args.Get(0).(*models.Patient)
	return result, args.Error(1)
}

func (m *PatientRepository) FindAll(ctx context.Context, filters *requests.PatientFilters, pagination requests.Pagination) ([]models.Patient, int, error) {
	args := m.Called(ctx, filters, pagination)
	result, _ := args.Get(0).([]models.Patient)
	return result, args.Int(1), args.Error(2)
}

func (m *PatientRepository) Update(ctx context.Context, patientID string, request *requests.UpdatePatient) (*models.Patient, error) {
	args := m.Called(ctx, patientID, request)
	result, _ := args.Get(0).(*models.Patient)
	return result, args.Error(1)
}

func (m *PatientRepository) SoftDelete(ctx context.Context, patientID string) (*models.Patient, error) {
	args := m.Called(ctx, patientID)
	result, _ := args.Get(0).(*models.Patient)
	return result, args.Error(1)
}

type AdminRepository struct {
	mock.Mock
}

func (m *AdminRepository) Create(ctx context.Context, admin *models.Admin) (*models.Admin, error) {
	args := m.Called(ctx, admin)
	result, _ := args.Get(0).(*models.Admin)
	return result, args.Error(1)
}

func (m *AdminRepository) FindByID(ctx context.Context, adminID string) (*models.Admin, error) {
	args := m.Called(ctx, adminID)
	result, _ := args.Get(0).(*models.Admin)
	return result, args.Error(1)
}

func (m *AdminRepository) FindAll(ctx context.Context, filters *requests.AdminFilters, pagination requests.Pagination) ([]models.Admin, int, error) {
	args := m.Called(ctx, filters, pagination)
	result, _ := args.Get(0).([]models.Admin)
	return result, args.Int(1), args.Error(2)
}

func (m *AdminRepository) Update(ctx context.Context, adminID string, request *requests.UpdateAdmin) (*models.Admin, error) {
	args := m.Called(ctx, adminID, request)
	result, _ := args.Get(0).(*models.Admin)
	return result, args.Error(1)
}

func (m *AdminRepository) SoftDelete(ctx context.Context, adminID string) (*models.Admin, error) {
	args := m.Called(ctx, adminID)
	result, _ := args.Get(0).(*models.Admin)
	return result, args.Error(1)
}

type DoctorRepository struct {
	mock.Mock
}

func (m *DoctorRepository) Create(ctx context.Context, doctor *models.Doctor) (*models.Doctor, error) {
	args := m.Called(ctx, doctor)
	result, _ := args.Get(0).(*models.Doctor)
	return result, args.Error(1)
}

func (m *DoctorRepository) FindByID(ctx context.Context, doctorID string) (*models.Doctor, error) {
	args := m.Called(ctx, doctorID)
	result, _ := args.Get(0).(*models.Doctor)
	return result, args.Error(1)
}

func (m *DoctorRepository) FindByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	args := m.Called(ctx, email)
	result, _ := args.Get(0).(*models.Doctor)
	return result, args.Error(1)
}

func (m *DoctorRepository) Update(ctx context.Context, doctorID string, request *requests.UpdateDoctor) (*models.Doctor, error) {
	args := m.Called(ctx, doctorID, request)
	result, _ := args.Get(0).(*models.Doctor)
	return result, args.Error(1)
}

func (m *DoctorRepository) SoftDelete(ctx context.Context, doctorID string) (*models.Doctor, error) {
	args := m.Called(ctx, doctorID)
	result, _ := args.Get(0).(*models.Doctor)
	return result, args.Error(1)
}

func (m *DoctorRepository) RecalculateAverageRating(ctx context.Context, doctorID string) (float64, error) {
	args := m.Called(ctx, doctorID)
	return args.Get(0).(float64), args.Error(1)
}

type ScheduleRepository struct {
	mock.Mock
}

func (m *ScheduleRepository) CreateIfNotExists(ctx context.Context, start, end time.Time) (*models.Schedule, error) {
	args := m.Called(ctx, start, end)
	result, _ := args.Get(0).(*models.Schedule)
	return result, args.Error(1)
}

func (m *ScheduleRepository) FindNotAssignedToDoctor(ctx context.Context, doctorID string, window *contracts.ScheduleWindow, pagination requests.Pagination) ([]models.Schedule, int, error) {
	args := m.Called(ctx, doctorID, window, pagination)
	result, _ := args.Get(0).([]models.Schedule)
	return result, args.Int(1), args.Error(2)
}

func (m *ScheduleRepository) DeleteByID(ctx context.Context, scheduleID string) (*models.Schedule, error) {
	args := m.Called(ctx, scheduleID)
	result, _ := args.Get(0).(*models.Schedule)
	return result, args.Error(1)
}

type DoctorScheduleRepository struct {
	mock.Mock
}

func (m *DoctorScheduleRepository) CreateIfNotExists(ctx context.Context, doctorID, scheduleID string) (*models.DoctorSchedule, error) {
	args := m.Called(ctx, doctorID, scheduleID)
	result, _ := args.Get(0).(*models.DoctorSchedule)
	return result, args.Error(1)
}

func (m *DoctorScheduleRepository) FindUnbooked(ctx context.Context, doctorID, scheduleID string) (*models.DoctorSchedule, error) {
	args := m.Called(ctx, doctorID, scheduleID)
	result, _ := args.Get(0).(*models.DoctorSchedule)
	return result, args.Error(1)
}

func (m *DoctorScheduleRepository) MarkBooked(ctx context.Context, doctorID, scheduleID string) (bool, error) {
	args := m.Called(ctx, doctorID, scheduleID)
	return args.Bool(0), args.Error(1)
}

func (m *DoctorScheduleRepository) FindByDoctorID(ctx context.Context, doctorID string) ([]models.DoctorSchedule, error) {
	args := m.Called(ctx, doctorID)
	result, _ := args.Get(0).([]models.DoctorSchedule)
	return result, args.Error(1)
}

type AppointmentRepository struct {
	mock.Mock
}

func (m *AppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	args := m.Called(ctx, appointment)
	result, _ := args.Get(0).(*models.Appointment)
	return result, args.Error(1)
}

func (m *AppointmentRepository) FindWithDoctorByID(ctx context.Context, appointmentID string) (*models.AppointmentWithDoctor, error) {
	args := m.Called(ctx, appointmentID)
	result, _ := args.Get(0).(*models.AppointmentWithDoctor)
	return result, args.Error(1)
}

func (m *AppointmentRepository) FindCompletedPaidWithDoctorByID(ctx context.Context, appointmentID string) (*models.AppointmentWithDoctor, error) {
	args := m.Called(ctx, appointmentID)
	result, _ := args.Get(0).(*models.AppointmentWithDoctor)
	return result, args.Error(1)
}

func (m *AppointmentRepository) UpdateStatusFrom(ctx context.Context, appointmentID, from, to string) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID, from, to)
	result, _ := args.Get(0).(*models.Appointment)
	return result, args.Error(1)
}

func (m *AppointmentRepository) MarkPaid(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID)
	result, _ := args.Get(0).(*models.Appointment)
	return result, args.Error(1)
}

type PaymentRepository struct {
	mock.Mock
}

func (m *PaymentRepository) CreateFromDoctorFee(ctx context.Context, appointmentID, transactionID, doctorID string) (*models.Payment, error) {
	args := m.Called(ctx, appointmentID, transactionID, doctorID)
	result, _ := args.Get(0).(*models.Payment)
	return result, args.Error(1)
}

func (m *PaymentRepository) MarkPaidByAppointmentID(ctx context.Context, appointmentID string) (*models.Payment, error) {
	args := m.Called(ctx, appointmentID)
	result, _ := args.Get(0).(*models.Payment)
	return result, args.Error(1)
}

type PrescriptionRepository struct {
	mock.Mock
}

func (m *PrescriptionRepository) Create(ctx context.Context, prescription *models.Prescription) (*models.Prescription, error) {
	args := m.Called(ctx, prescription)
	result, _ := args.Get(0).(*models.Prescription)
	return result, args.Error(1)
}

type ReviewRepository struct {
	mock.Mock
}

func (m *ReviewRepository) Create(ctx context.Context, review *models.Review) (*models.Review, error) {
	args := m.Called(ctx, review)
	result, _ := args.Get(0).(*models.Review)
	return result, args.Error(1)
}

type MetadataRepository struct {
	mock.Mock
}

func (m *MetadataRepository) GetAdminMetadata(ctx context.Context) (*responses.AdminMetadata, error) {
	args := m.Called(ctx)
	result, _ := args.Get(0).(*responses.AdminMetadata)
	return result, args.Error(1)
}

func (m *MetadataRepository) GetDoctorMetadata(ctx context.Context, doctorID string) (*responses.DoctorMetadata, error) {
	args := m.Called(ctx, doctorID)
	result, _ := args.Get(0).(*responses.DoctorMetadata)
	return result, args.Error(1)
}

func (m *MetadataRepository) GetPatientMetadata(ctx context.Context, patientID string) (*responses.PatientMetadata, error) {
	args := m.Called(ctx, patientID)
	result, _ := args.Get(0).(*responses.PatientMetadata)
	return result, args.Error(1)
}
