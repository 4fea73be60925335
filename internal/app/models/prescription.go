package models

import "time"

type Prescription struct {
	ID            string     `json:"id"`
	AppointmentID string     `json:"appointmentId"`
	DoctorID      string     `json:"doctorId"`
	PatientID     string     `json:"patientId"`
	Instructions  string     `json:"instructions"`
	FollowUpDate  *time.Time `json:"followUpDate"`
	TimeModel
}
