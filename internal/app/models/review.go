package models

type Review struct {
	ID            string  `json:"id"`
	AppointmentID string  `json:"appointmentId"`
	DoctorID      string  `json:"doctorId"`
	PatientID     string  `json:"patientId"`
	Rating        int     `json:"rating"`
	Comment       *string `json:"comment"`
	TimeModel
}
