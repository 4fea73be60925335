package responses

import "doccare-service/internal/app/models"

type AssignDoctorSchedules struct {
	Count           int                     `json:"count"`
	DoctorSchedules []models.DoctorSchedule `json:"doctorSchedules"`
}
