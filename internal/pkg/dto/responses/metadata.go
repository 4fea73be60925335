package responses

import "time"

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type MonthlyCount struct {
	Month time.Time `json:"month"`
	Count int       `json:"count"`
}

type AdminMetadata struct {
	PatientCount     int            `json:"patientCount"`
	DoctorCount      int            `json:"doctorCount"`
	AdminCount       int            `json:"adminCount"`
	AppointmentCount int            `json:"appointmentCount"`
	PaymentCount     int            `json:"paymentCount"`
	TotalRevenue     int64          `json:"totalRevenue"`
	BarChartData     []MonthlyCount `json:"barChartData"`
	PieChartData     []StatusCount  `json:"pieChartData"`
}

type DoctorMetadata struct {
	AppointmentCount                       int           `json:"appointmentCount"`
	ReviewCount                            int           `json:"reviewCount"`
	PatientCount                           int           `json:"patientCount"`
	TotalRevenue                           int64         `json:"totalRevenue"`
	FormattedAppointmentStatusDistribution []StatusCount `json:"formattedAppointmentStatusDistribution"`
}

type PatientMetadata struct {
	AppointmentCount                       int           `json:"appointmentCount"`
	PrescriptionCount                      int           `json:"prescriptionCount"`
	ReviewCount                            int           `json:"reviewCount"`
	FormattedAppointmentStatusDistribution []StatusCount `json:"formattedAppointmentStatusDistribution"`
}
