package models

type Payment struct {
	ID            string `json:"id"`
	AppointmentID string `json:"appointmentId"`
	Amount        int64  `json:"amount"`
	TransactionID string `json:"transactionId"`
	Status        string `json:"status"`
	TimeModel
}
