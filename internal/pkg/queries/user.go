package queries

const (
	InsertUser = `
		INSERT INTO users (email, password, role, need_password_change)
		VALUES ($1, $2, $3, $4)
		RETURNING id, email, role, status, need_password_change, created_at, updated_at
	`

	GetActiveUserByEmail = `
		SELECT id, email, password, role, status, need_password_change, created_at, updated_at
		FROM users
		WHERE email = $1 AND status = 'ACTIVE'
	`

	UpdateUserStatusByEmail = `
		UPDATE users
		SET status = $1, updated_at = now()
		WHERE email = $2
	`
)
