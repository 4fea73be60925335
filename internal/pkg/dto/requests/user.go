package requests

type CreatePatient struct {
	Name     string `json:"name" validate:"required,min=1"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
	Address  string `json:"address"`
}

type CreateDoctor struct {
	Password string               `json:"password" validate:"required,min=1"`
	Doctor   *CreateDoctorProfile `json:"doctor" validate:"required"`
}

type CreateDoctorProfile struct {
	Name                string `json:"name" validate:"required"`
	Email               string `json:"email" validate:"required,email"`
	ContactNumber       string `json:"contactNumber" validate:"required"`
	Address             string `json:"address"`
	RegistrationNumber  string `json:"registrationNumber" validate:"required"`
	Experience          int    `json:"experience" validate:"gte=0"`
	Gender              string `json:"gender" validate:"required,oneof=MALE FEMALE"`
	AppointmentFee      int64  `json:"appointmentFee" validate:"gte=0"`
	Qualification       string `json:"qualification" validate:"required"`
	CurrentWorkingPlace string `json:"currentWorkingPlace" validate:"required"`
	Designation         string `json:"designation" validate:"required"`
	ProfilePhoto        string `json:"profilePhoto" validate:"omitempty,url"`
}

type CreateAdmin struct {
	Password string              `json:"password" validate:"required,min=1"`
	Admin    *CreateAdminProfile `json:"admin" validate:"required"`
}

type CreateAdminProfile struct {
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	ContactNumber string `json:"contactNumber" validate:"required"`
	ProfilePhoto  string `json:"profilePhoto" validate:"omitempty,url"`
}

// NewAccount is the usecase-level input shared by the three create flows.
type NewAccount struct {
	Email              string
	HashedPassword     string
	Role               string
	NeedPasswordChange bool
}
