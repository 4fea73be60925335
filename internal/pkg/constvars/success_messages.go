package constvars

const (
	ResponseUnknown = "unknown"

	ServerRunningSuccessMessage = "Server is running.."
	LoginSuccessMessage         = "User logged in successfully!"

	CreatePatientSuccessMessage = "Patient created successfully!"
	CreateDoctorSuccessMessage  = "Doctor created successfully!"
	CreateAdminSuccessMessage   = "Admin created successfully!"

	GetPatientsSuccessMessage   = "Patients fetched successfully"
	GetPatientSuccessMessage    = "Patient fetched successfully"
	UpdatePatientSuccessMessage = "Patient updated successfully"
	DeletePatientSuccessMessage = "Patient deleted successfully"

	GetAdminsSuccessMessage   = "Admins fetched successfully"
	GetAdminSuccessMessage    = "Admin fetched successfully"
	UpdateAdminSuccessMessage = "Admin updated successfully"
	DeleteAdminSuccessMessage = "Admin deleted successfully"

	GetDoctorSuccessMessage    = "Doctor fetched successfully"
	UpdateDoctorSuccessMessage = "Doctor updated successfully"
	DeleteDoctorSuccessMessage = "Doctor deleted successfully"

	CreateSchedulesSuccessMessage       = "Schedules created"
	GetSchedulesSuccessMessage          = "Schedules fetched"
	DeleteScheduleSuccessMessage        = "Schedule deleted"
	AssignDoctorSchedulesSuccessMessage = "Doctor schedules assigned"

	CreateAppointmentSuccessMessage       = "Appointment created successfully!"
	UpdateAppointmentStatusSuccessMessage = "Appointment status updated successfully"
	ConfirmPaymentSuccessMessage          = "Payment confirmed successfully"

	CreatePrescriptionSuccessMessage = "Prescription created successfully!"
	CreateReviewSuccessMessage       = "Review created successfully"
	GetMetadataSuccessMessage        = "Meta data retrieval successfully!"
)
