package models

type Doctor struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	Email               string  `json:"email"`
	ContactNumber       string  `json:"contactNumber"`
	Address             string  `json:"address"`
	RegistrationNumber  string  `json:"registrationNumber"`
	Experience          int     `json:"experience"`
	Gender              string  `json:"gender"`
	AppointmentFee      int64   `json:"appointmentFee"`
	Qualification       string  `json:"qualification"`
	CurrentWorkingPlace string  `json:"currentWorkingPlace"`
	Designation         string  `json:"designation"`
	ProfilePhoto        string  `json:"profilePhoto,omitempty"`
	AverageRating       float64 `json:"averageRating"`
	IsDeleted           bool    `json:"isDeleted"`
	TimeModel
}
