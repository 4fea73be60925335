package responses

import "doccare-service/internal/app/models"

type DoctorDetail struct {
	models.Doctor
	DoctorSchedules []models.DoctorSchedule `json:"doctorSchedules"`
}
