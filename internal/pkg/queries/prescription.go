package queries

const (
	InsertPrescription = `
		INSERT INTO prescriptions (appointment_id, doctor_id, patient_id, instructions, follow_up_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, appointment_id, doctor_id, patient_id, instructions, follow_up_date, created_at, updated_at
	`
)
