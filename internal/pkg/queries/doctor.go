package queries

const (
	doctorColumns = `id, name, email, contact_number, address, registration_number, experience, gender,
		appointment_fee, qualification, current_working_place, designation, profile_photo,
		average_rating, is_deleted, created_at, updated_at`

	InsertDoctor = `
		INSERT INTO doctors (name, email, contact_number, address, registration_number, experience, gender,
			appointment_fee, qualification, current_working_place, designation, profile_photo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + doctorColumns

	GetDoctorByID = `
		SELECT ` + doctorColumns + `
		FROM doctors
		WHERE id = $1 AND is_deleted = false
	`

	GetDoctorByEmail = `
		SELECT ` + doctorColumns + `
		FROM doctors
		WHERE email = $1 AND is_deleted = false
	`

	UpdateDoctorByID = `
		UPDATE doctors
		SET name = COALESCE($2, name),
			contact_number = COALESCE($3, contact_number),
			address = COALESCE($4, address),
			registration_number = COALESCE($5, registration_number),
			experience = COALESCE($6, experience),
			gender = COALESCE($7, gender),
			appointment_fee = COALESCE($8, appointment_fee),
			qualification = COALESCE($9, qualification),
			current_working_place = COALESCE($10, current_working_place),
			designation = COALESCE($11, designation),
			profile_photo = COALESCE($12, profile_photo),
			updated_at = now()
		WHERE id = $1 AND is_deleted = false
		RETURNING ` + doctorColumns

	SoftDeleteDoctorByID = `
		UPDATE doctors
		SET is_deleted = true, updated_at = now()
		WHERE id = $1 AND is_deleted = false
		RETURNING ` + doctorColumns

	RecalculateDoctorAverageRating = `
		UPDATE doctors
		SET average_rating = (SELECT COALESCE(AVG(rating), 0) FROM reviews WHERE doctor_id = $1),
			updated_at = now()
		WHERE id = $1
		RETURNING average_rating
	`
)
