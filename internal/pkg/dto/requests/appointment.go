package requests

type CreateAppointment struct {
	DoctorID   string `json:"doctorId" validate:"required,uuid"`
	ScheduleID string `json:"scheduleId" validate:"required,uuid"`
}

type UpdateAppointmentStatus struct {
	Status string `json:"status" validate:"required,oneof=COMPLETED CANCELLED"`
}

type CreatePrescription struct {
	AppointmentID string  `json:"appointmentId" validate:"required,uuid"`
	Instructions  string  `json:"instructions" validate:"required,min=1"`
	FollowUpDate  *string `json:"followUpDate" validate:"omitempty,rfc3339"`
}

type CreateReview struct {
	AppointmentID string  `json:"appointmentId" validate:"required,uuid"`
	Rating        int     `json:"rating" validate:"required,min=1,max=5"`
	Comment       *string `json:"comment"`
}
