package responses

import "doccare-service/internal/app/models"

type PrescriptionDetail struct {
	models.Prescription
	Patient *models.Patient `json:"patient"`
}
