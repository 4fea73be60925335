package models

type Admin struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	ContactNumber string `json:"contactNumber"`
	ProfilePhoto  string `json:"profilePhoto,omitempty"`
	IsDeleted     bool   `json:"isDeleted"`
	TimeModel
}
