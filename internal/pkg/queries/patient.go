package queries

const (
	patientColumns = `id, name, email, address, is_deleted, created_at, updated_at`

	InsertPatient = `
		INSERT INTO patients (name, email, address)
		VALUES ($1, $2, $3)
		RETURNING ` + patientColumns

	GetPatientByID = `
		SELECT ` + patientColumns + `
		FROM patients
		WHERE id = $1 AND is_deleted = false
	`

	GetPatientByEmail = `
		SELECT ` + patientColumns + `
		FROM patients
		WHERE email = $1 AND is_deleted = false
	`

	UpdatePatientByID = `
		UPDATE patients
		SET name = COALESCE($2, name),
			address = COALESCE($3, address),
			updated_at = now()
		WHERE id = $1 AND is_deleted = false
		RETURNING ` + patientColumns

	SoftDeletePatientByID = `
		UPDATE patients
		SET is_deleted = true, updated_at = now()
		WHERE id = $1 AND is_deleted = false
		RETURNING ` + patientColumns

	SelectPatients = `SELECT ` + patientColumns + ` FROM patients`
	CountPatients  = `SELECT COUNT(*) FROM patients`
)
