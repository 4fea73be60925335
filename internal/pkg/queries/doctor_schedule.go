package queries

const (
	doctorScheduleColumns = `doctor_id, schedule_id, is_booked, created_at, updated_at`

	InsertDoctorScheduleIfNotExists = `
		INSERT INTO doctor_schedules (doctor_id, schedule_id)
		VALUES ($1, $2)
		ON CONFLICT (doctor_id, schedule_id) DO NOTHING
		RETURNING ` + doctorScheduleColumns

	GetUnbookedDoctorSchedule = `
		SELECT ` + doctorScheduleColumns + `
		FROM doctor_schedules
		WHERE doctor_id = $1 AND schedule_id = $2 AND is_booked = false
	`

	// Zero affected rows means another transaction booked the slot first.
	MarkDoctorScheduleBooked = `
		UPDATE doctor_schedules
		SET is_booked = true, updated_at = now()
		WHERE doctor_id = $1 AND schedule_id = $2 AND is_booked = false
	`

	GetDoctorSchedulesByDoctorID = `
		SELECT ` + doctorScheduleColumns + `
		FROM doctor_schedules
		WHERE doctor_id = $1
		ORDER BY created_at ASC
	`
)
