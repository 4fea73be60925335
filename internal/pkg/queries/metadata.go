package queries

const (
	CountAllPatients     = `SELECT COUNT(*) FROM patients`
	CountAllDoctors      = `SELECT COUNT(*) FROM doctors`
	CountAllAdmins       = `SELECT COUNT(*) FROM admins`
	CountAllAppointments = `SELECT COUNT(*) FROM appointments`
	CountAllPayments     = `SELECT COUNT(*) FROM payments`

	SumPaidRevenue = `SELECT COALESCE(SUM(amount), 0) FROM payments WHERE status = 'PAID'`

	CountAppointmentsPerMonth = `
		SELECT date_trunc('month', created_at) AS month, COUNT(*)
		FROM appointments
		GROUP BY month
		ORDER BY month ASC
	`

	CountAppointmentsByStatus = `
		SELECT status, COUNT(*)
		FROM appointments
		GROUP BY status
		ORDER BY status ASC
	`

	CountAppointmentsByDoctorID        = `SELECT COUNT(*) FROM appointments WHERE doctor_id = $1`
	CountDistinctPatientsByDoctorID    = `SELECT COUNT(DISTINCT patient_id) FROM appointments WHERE doctor_id = $1`
	CountReviewsByDoctorID             = `SELECT COUNT(*) FROM reviews WHERE doctor_id = $1`
	CountAppointmentsByStatusForDoctor = `
		SELECT status, COUNT(*)
		FROM appointments
		WHERE doctor_id = $1
		GROUP BY status
		ORDER BY status ASC
	`
	SumPaidRevenueByDoctorID = `
		SELECT COALESCE(SUM(p.amount), 0)
		FROM payments p
		JOIN appointments a ON a.id = p.appointment_id
		WHERE a.doctor_id = $1 AND p.status = 'PAID'
	`

	CountAppointmentsByPatientID        = `SELECT COUNT(*) FROM appointments WHERE patient_id = $1`
	CountPrescriptionsByPatientID       = `SELECT COUNT(*) FROM prescriptions WHERE patient_id = $1`
	CountReviewsByPatientID             = `SELECT COUNT(*) FROM reviews WHERE patient_id = $1`
	CountAppointmentsByStatusForPatient = `
		SELECT status, COUNT(*)
		FROM appointments
		WHERE patient_id = $1
		GROUP BY status
		ORDER BY status ASC
	`
)
