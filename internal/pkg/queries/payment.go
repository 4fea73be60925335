package queries

const (
	paymentColumns = `id, appointment_id, amount, transaction_id, status, created_at, updated_at`

	// The fee is copied from the doctor row at insert time.
	InsertPaymentFromDoctorFee = `
		INSERT INTO payments (appointment_id, amount, transaction_id)
		SELECT $1, d.appointment_fee, $2
		FROM doctors d
		WHERE d.id = $3 AND d.is_deleted = false
		RETURNING ` + paymentColumns

	MarkPaymentPaidByAppointmentID = `
		UPDATE payments
		SET status = 'PAID', updated_at = now()
		WHERE appointment_id = $1 AND status = 'PENDING'
		RETURNING ` + paymentColumns
)
