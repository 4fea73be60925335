package models

type Patient struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	IsDeleted bool   `json:"isDeleted"`
	TimeModel
}
