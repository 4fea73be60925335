package users

import (
	"context"
	"doccare-service/internal/app/contracts"
	"doccare-service/internal/app/models"
	"doccare-service/internal/pkg/constvars"
	"doccare-service/internal/pkg/dto/requests"
	"doccare-service/internal/pkg/exceptions"
	"doccare-service/internal/pkg/utils"
	"sync"

	"go.uber.org/zap"
)

type userUsecase struct {
	UserRepository    contracts.UserRepository
	PatientRepository contracts.PatientRepository
	DoctorRepository  contracts.DoctorRepository
	AdminRepository   contracts.AdminRepository
	Transactor        contracts.Transactor
	Log               *zap.Logger
}

var (
	userUsecaseInstance contracts.UserUsecase
	onceUserUsecase     sync.Once
)

func NewUserUsecase(
	userRepository contracts.UserRepository,
	patientRepository contracts.PatientRepository,
	doctorRepository contracts.DoctorRepository,
	adminRepository contracts.AdminRepository,
	transactor contracts.Transactor,
	logger *zap.Logger,
) contracts.UserUsecase {
	onceUserUsecase.Do(func() {
		instance := &userUsecase{
			UserRepository:    userRepository,
			PatientRepository: patientRepository,
			DoctorRepository:  doctorRepository,
			AdminRepository:   adminRepository,
			Transactor:        transactor,
			Log:               logger,
		}
		userUsecaseInstance = instance
	})
	return userUsecaseInstance
}

func (uc *userUsecase) CreatePatient(ctx context.Context, request *requests.CreatePatient) (*models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.CreatePatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
	)

	var patient *models.Patient
	err := uc.createAccount(ctx, request.Email, request.Password, constvars.RolePatient, false, func(ctx context.Context) error {
		var err error
		patient, err = uc.PatientRepository.Create(ctx, &models.Patient{
			Name:    request.Name,
			Email:   request.Email,
			Address: request.Address,
		})
		return err
	})
	if err != nil {
		uc.Log.Error("userUsecase.CreatePatient error creating patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return patient, nil
}

func (uc *userUsecase) CreateDoctor(ctx context.Context, request *requests.CreateDoctor) (*models.Doctor, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.CreateDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Doctor.Email),
	)

	profile := request.Doctor
	var doctor *models.Doctor
	err := uc.createAccount(ctx, profile.Email, request.Password, constvars.RoleDoctor, true, func(ctx context.Context) error {
		var err error
		doctor, err = uc.DoctorRepository.Create(ctx, &models.Doctor{
			Name:                profile.Name,
			Email:               profile.Email,
			ContactNumber:       profile.ContactNumber,
			Address:             profile.Address,
			RegistrationNumber:  profile.RegistrationNumber,
			Experience:          profile.Experience,
			Gender:              profile.Gender,
			AppointmentFee:      profile.AppointmentFee,
			Qualification:       profile.Qualification,
			CurrentWorkingPlace: profile.CurrentWorkingPlace,
			Designation:         profile.Designation,
			ProfilePhoto:        profile.ProfilePhoto,
		})
		return err
	})
	if err != nil {
		uc.Log.Error("userUsecase.CreateDoctor error creating doctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return doctor, nil
}

func (uc *userUsecase) CreateAdmin(ctx context.Context, request *requests.CreateAdmin) (*models.Admin, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("userUsecase.CreateAdmin called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Admin.Email),
	)

	profile := request.Admin
	var admin *models.Admin
	err := uc.createAccount(ctx, profile.Email, request.Password, constvars.RoleAdmin, true, func(ctx context.Context) error {
		var err error
		admin, err = uc.AdminRepository.Create(ctx, &models.Admin{
			Name:          profile.Name,
			Email:         profile.Email,
			ContactNumber: profile.ContactNumber,
			ProfilePhoto:  profile.ProfilePhoto,
		})
		return err
	})
	if err != nil {
		uc.Log.Error("userUsecase.CreateAdmin error creating admin",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return admin, nil
}

// createAccount hashes the password and inserts the login account and its
// profile in one transaction.
func (uc *userUsecase) createAccount(ctx context.Context, email, password, role string, needPasswordChange bool, createProfile func(ctx context.Context) error) error {
	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return exceptions.ErrHashPassword(err)
	}

	return uc.Transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		_, err := uc.UserRepository.CreateUser(ctx, &requests.NewAccount{
			Email:              email,
			HashedPassword:     hashedPassword,
			Role:               role,
			NeedPasswordChange: needPasswordChange,
		})
		if err != nil {
			return err
		}
		return createProfile(ctx)
	})
}
