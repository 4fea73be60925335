package models

type Appointment struct {
	ID             string `json:"id"`
	PatientID      string `json:"patientId"`
	DoctorID       string `json:"doctorId"`
	ScheduleID     string `json:"scheduleId"`
	VideoCallingID string `json:"videoCallingId"`
	Status         string `json:"status"`
	PaymentStatus  string `json:"paymentStatus"`
	TimeModel
}

// AppointmentWithDoctor carries the owning doctor's email for ownership checks.
type AppointmentWithDoctor struct {
	Appointment
	DoctorEmail string
}
