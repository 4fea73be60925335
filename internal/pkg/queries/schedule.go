package queries

const (
	scheduleColumns = `id, start_date_time, end_date_time, created_at, updated_at`

	// A row that already exists yields no RETURNING row.
	InsertScheduleIfNotExists = `
		INSERT INTO schedules (start_date_time, end_date_time)
		VALUES ($1, $2)
		ON CONFLICT (start_date_time, end_date_time) DO NOTHING
		RETURNING ` + scheduleColumns

	DeleteScheduleByID = `
		DELETE FROM schedules
		WHERE id = $1
		RETURNING ` + scheduleColumns

	SelectSchedulesNotAssignedToDoctor = `
		SELECT ` + scheduleColumns + `
		FROM schedules s
		WHERE NOT EXISTS (
			SELECT 1 FROM doctor_schedules ds
			WHERE ds.schedule_id = s.id AND ds.doctor_id = $1
		)`

	CountSchedulesNotAssignedToDoctor = `
		SELECT COUNT(*)
		FROM schedules s
		WHERE NOT EXISTS (
			SELECT 1 FROM doctor_schedules ds
			WHERE ds.schedule_id = s.id AND ds.doctor_id = $1
		)`
)
