package models

import "time"

// AppointmentBookedEvent is published once a booking transaction commits.
type AppointmentBookedEvent struct {
	Event          string    `json:"event"`
	AppointmentID  string    `json:"appointmentId"`
	PatientID      string    `json:"patientId"`
	DoctorID       string    `json:"doctorId"`
	ScheduleID     string    `json:"scheduleId"`
	VideoCallingID string    `json:"videoCallingId"`
	PaymentID      string    `json:"paymentId"`
	TransactionID  string    `json:"transactionId"`
	Amount         int64     `json:"amount"`
	OccurredAt     time.Time `json:"occurredAt"`
}
