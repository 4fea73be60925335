package queries

const (
	InsertReview = `
		INSERT INTO reviews (appointment_id, doctor_id, patient_id, rating, comment)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, appointment_id, doctor_id, patient_id, rating, comment, created_at, updated_at
	`
)
