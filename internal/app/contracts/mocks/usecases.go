package mocks

import (
	"context"
	"doccare-service/internal/app/models"
	"doccare-service/internal/pkg/dto/requests"
	"doccare-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/mock"
)

type AuthUsecase struct {
	mock.Mock
}

func (m *AuthUsecase) Login(ctx context.Context, request *requests.Login) (*responses.LoginResult, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*responses.LoginResult)
	return result, args.Error(1)
}

type UserUsecase struct {
	mock.Mock
}

func (m *UserUsecase) CreatePatient(ctx context.Context, request *requests.CreatePatient) (*models.Patient, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*models.Patient)
	return result, args.Error(1)
}

func (m *UserUsecase) CreateDoctor(ctx context.Context, request *requests.CreateDoctor) (*models.Doctor, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*models.Doctor)
	return result, args.Error(1)
}

func (m *UserUsecase) CreateAdmin(ctx context.Context, request *requests.CreateAdmin) (*models.Admin, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).(*models.Admin)
	return result, args.Error(1)
}

type PatientUsecase struct {
	mock.Mock
}

func (m *PatientUsecase) FindAll(ctx context.Context, filters *requests.PatientFilters, pagination requests.Pagination) ([]models.Patient, *responses.Meta, error) {
	args := m.Called(ctx, filters, pagination)
	result, _ := args.Get(0).([]models.Patient)
	meta, _ := args.Get(1).(*responses.Meta)
	return result, meta, args.Error(2)
}

func (m *PatientUsecase) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	args := m.Called(ctx, patientID)
	result, _ := args.Get(0).(*models.Patient)
	return result, args.Error(1)
}

func (m *PatientUsecase) Update(ctx context.Context, patientID string, request *requests.UpdatePatient) (*models.Patient, error) {
	args := m.Called(ctx, patientID, request)
	result, _ := args.Get(0).(*models.Patient)
	return result, args.Error(1)
}

func (m *PatientUsecase) Delete(ctx context.Context, patientID string) (*models.Patient, error) {
	args := m.Called(ctx, patientID)
	result, _ := args.Get(0).(*models.Patient)
	return result, args.Error(1)
}

type AdminUsecase struct {
	mock.Mock
}

func (m *AdminUsecase) FindAll(ctx context.Context, filters *requests.AdminFilters, pagination requests.Pagination) ([]models.Admin, *responses.Meta, error) {
	args := m.Called(ctx, filters, pagination)
	result, _ := args.Get(0).([]models.Admin)
	meta, _ := args.Get(1).(*responses.Meta)
	return result, meta, args.Error(2)
}

func (m *AdminUsecase) FindByID(ctx context.Context, adminID string) (*models.Admin, error) {
	args := m.Called(ctx, adminID)
	result, _ := args.Get(0).(*models.Admin)
	return result, args.Error(1)
}

func (m *AdminUsecase) Update(ctx context.Context, adminID string, request *requests.UpdateAdmin) (*models.Admin, error) {
	args := m.Called(ctx, adminID, request)
	result, _ := args.Get(0).(*models.Admin)
	return result, args.Error(1)
}

func (m *AdminUsecase) Delete(ctx context.Context, adminID string) (*models.Admin, error) {
	args := m.Called(ctx, adminID)
	result, _ := args.Get(0).(*models.Admin)
	return result, args.Error(1)
}

type DoctorUsecase struct {
	mock.Mock
}

func (m *DoctorUsecase) FindByID(ctx context.Context, doctorID string) (*responses.DoctorDetail, error) {
	args := m.Called(ctx, doctorID)
	result, _ := args.Get(0).(*responses.DoctorDetail)
	return result, args.Error(1)
}

func (m *DoctorUsecase) Update(ctx context.Context, doctorID string, request *requests.UpdateDoctor) (*models.Doctor, error) {
	args := m.Called(ctx, doctorID, request)
	result, _ := args.Get(0).(*models.Doctor)
	return result, args.Error(1)
}

func (m *DoctorUsecase) Delete(ctx context.Context, doctorID string) (*models.Doctor, error) {
	args := m.Called(ctx, doctorID)
	result, _ := args.Get(0).(*models.Doctor)
	return result, args.Error(1)
}

type ScheduleUsecase struct {
	mock.Mock
}

func (m *ScheduleUsecase) CreateSchedules(ctx context.Context, request *requests.CreateSchedule) ([]models.Schedule, error) {
	args := m.Called(ctx, request)
	result, _ := args.Get(0).([]models.Schedule)
	return result, args.Error(1)
}

func (m *ScheduleUsecase) ListForDoctor(ctx context.Context, doctorEmail string, filters *requests.ScheduleFilters, pagination requests.Pagination) ([]models.Schedule, *responses.Meta, error) {
	args := m.Called(ctx, doctorEmail, filters, pagination)
	result, _ := args.Get(0).([]models.Schedule)
	meta, _ := args.Get(1).(*responses.Meta)
	return result, meta, args.Error(2)
}

func (m *ScheduleUsecase) DeleteSchedule(ctx context.Context, scheduleID string) (*models.Schedule, error) {
	args := m.Called(ctx, scheduleID)
	result, _ := args.Get(0).(*models.Schedule)
	return result, args.Error(1)
}

type DoctorScheduleUsecase struct {
	mock.Mock
}

func (m *DoctorScheduleUsecase) AssignSchedules(ctx context.Context, doctorEmail string, request *requests.AssignDoctorSchedules) (*responses.AssignDoctorSchedules, error) {
	args := m.Called(ctx, doctorEmail, request)
	result, _ := args.Get(0).(*responses.AssignDoctorSchedules)
	return result, args.Error(1)
}

type AppointmentUsecase struct {
	mock.Mock
}

func (m *AppointmentUsecase) BookAppointment(ctx context.Context, patientEmail string, request *requests.CreateAppointment) (*models.Appointment, error) {
	args := m.Called(ctx, patientEmail, request)
	result, _ := args.Get(0).(*models.Appointment)
	return result, args.Error(1)
}

func (m *AppointmentUsecase) UpdateStatus(ctx context.Context, caller *models.AuthUser, appointmentID string, request *requests.UpdateAppointmentStatus) (*models.Appointment, error) {
	args := m.Called(ctx, caller, appointmentID, request)
	result, _ := args.Get(0).(*models.Appointment)
	return result, args.Error(1)
}

type PaymentUsecase struct {
	mock.Mock
}

func (m *PaymentUsecase) ConfirmPayment(ctx context.Context, appointmentID string) (*models.Payment, error) {
	args := m.Called(ctx, appointmentID)
	result, _ := args.Get(0).(*models.Payment)
	return result, args.Error(1)
}

type PrescriptionUsecase struct {
	mock.Mock
}

func (m *PrescriptionUsecase) CreatePrescription(ctx context.Context, doctorEmail string, request *requests.CreatePrescription) (*responses.PrescriptionDetail, error) {
	args := m.Called(ctx, doctorEmail, request)
	result, _ := args.Get(0).(*responses.PrescriptionDetail)
	return result, args.Error(1)
}

type ReviewUsecase struct {
	mock.Mock
}

func (m *ReviewUsecase) CreateReview(ctx context.Context, patientEmail string, request *requests.CreateReview) (*models.Review, error) {
	args := m.Called(ctx, patientEmail, request)
	result, _ := args.Get(0).(*models.Review)
	return result, args.Error(1)
}

type MetadataUsecase struct {
	mock.Mock
}

func (m *MetadataUsecase) GetDashboardMetadata(ctx context.Context, caller *models.AuthUser) (interface{}, error) {
	args := m.Called(ctx, caller)
	return args.Get(0), args.Error(1)
}
