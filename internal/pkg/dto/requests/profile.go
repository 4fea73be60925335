package requests

type UpdatePatient struct {
	Name    *string `json:"name" validate:"omitempty,min=1"`
	Address *string `json:"address"`
}

type UpdateAdmin struct {
	Name          *string `json:"name" validate:"omitempty,min=1"`
	ContactNumber *string `json:"contactNumber" validate:"omitempty,min=1"`
}

type UpdateDoctor struct {
	Name                *string `json:"name" validate:"omitempty,min=1"`
	ContactNumber       *string `json:"contactNumber" validate:"omitempty,min=1"`
	Address             *string `json:"address"`
	RegistrationNumber  *string `json:"registrationNumber" validate:"omitempty,min=1"`
	Experience          *int    `json:"experience" validate:"omitempty,gte=0"`
	Gender              *string `json:"gender" validate:"omitempty,oneof=MALE FEMALE"`
	AppointmentFee      *int64  `json:"appointmentFee" validate:"omitempty,gte=0"`
	Qualification       *string `json:"qualification" validate:"omitempty,min=1"`
	CurrentWorkingPlace *string `json:"currentWorkingPlace" validate:"omitempty,min=1"`
	Designation         *string `json:"designation" validate:"omitempty,min=1"`
	ProfilePhoto        *string `json:"profilePhoto" validate:"omitempty,url"`
}
