package queries

const (
	adminColumns = `id, name, email, contact_number, profile_photo, is_deleted, created_at, updated_at`

	InsertAdmin = `
		INSERT INTO admins (name, email, contact_number, profile_photo)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + adminColumns

	GetAdminByID = `
		SELECT ` + adminColumns + `
		FROM admins
		WHERE id = $1 AND is_deleted = false
	`

	UpdateAdminByID = `
		UPDATE admins
		SET name = COALESCE($2, name),
			contact_number = COALESCE($3, contact_number),
			updated_at = now()
		WHERE id = $1 AND is_deleted = false
		RETURNING ` + adminColumns

	SoftDeleteAdminByID = `
		UPDATE admins
		SET is_deleted = true, updated_at = now()
		WHERE id = $1 AND is_deleted = false
		RETURNING ` + adminColumns

	SelectAdmins = `SELECT ` + adminColumns + ` FROM admins`
	CountAdmins  = `SELECT COUNT(*) FROM admins`
)
