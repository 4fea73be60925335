package models

// User is the login account. Exactly one profile (Patient, Doctor or Admin)
// shares its email.
type User struct {
	ID                 string `json:"id"`
	Email              string `json:"email"`
	Password           string `json:"-"`
	Role               string `json:"role"`
	Status             string `json:"status"`
	NeedPasswordChange bool   `json:"needPasswordChange"`
	TimeModel
}
