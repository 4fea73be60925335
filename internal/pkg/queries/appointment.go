package queries

const (
	appointmentColumns = `id, patient_id, doctor_id, schedule_id, video_calling_id, status, payment_status, created_at, updated_at`

	InsertAppointment = `
		INSERT INTO appointments (patient_id, doctor_id, schedule_id, video_calling_id)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + appointmentColumns

	GetAppointmentWithDoctorEmailByID = `
		SELECT a.id, a.patient_id, a.doctor_id, a.schedule_id, a.video_calling_id, a.status,
			a.payment_status, a.created_at, a.updated_at, d.email
		FROM appointments a
		JOIN doctors d ON d.id = a.doctor_id
		WHERE a.id = $1
	`

	GetCompletedPaidAppointmentWithDoctorEmailByID = `
		SELECT a.id, a.patient_id, a.doctor_id, a.schedule_id, a.video_calling_id, a.status,
			a.payment_status, a.created_at, a.updated_at, d.email
		FROM appointments a
		JOIN doctors d ON d.id = a.doctor_id
		WHERE a.id = $1 AND a.status = 'COMPLETED' AND a.payment_status = 'PAID'
	`

	UpdateAppointmentStatusFrom = `
		UPDATE appointments
		SET status = $3, updated_at = now()
		WHERE id = $1 AND status = $2
		RETURNING ` + appointmentColumns

	MarkAppointmentPaid = `
		UPDATE appointments
		SET payment_status = 'PAID', updated_at = now()
		WHERE id = $1
		RETURNING ` + appointmentColumns
)
