package admins

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"doccare-service/internal/pkg/dto/requests"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var adminRowColumns = []string{"id", "name", "email", "contact_number", "profile_photo", "is_deleted", "created_at", "updated_at"}

func TestAdminPostgresRepository_FindAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := &adminPostgresRepository{DB: db, Log: zap.NewNop()}
	now := time.Now()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM admins WHERE is_deleted = false AND email = \\$1 AND contact_number = \\$2").
		WithArgs("root@x.io", "0800").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("FROM admins WHERE .* ORDER BY created_at DESC LIMIT \\$3 OFFSET \\$4").
		WithArgs("root@x.io", "0800", 10, 0).
		WillReturnRows(sqlmock.NewRows(adminRowColumns).AddRow("ad-1", "Root", "root@x.io", "0800", "", false, now, now))

	admins, total, err := repo.FindAll(context.Background(),
		&requests.AdminFilters{Email: "root@x.io", ContactNumber: "0800"},
		requests.Pagination{Page: 1, Limit: 10, SortBy: "createdAt", SortOrder: "desc"},
	)

	require.NoError(t, err)
	assert.Equal(t, 1, total)
	assert.Equal(t, "0800", admins[0].ContactNumber)
}

func TestAdminPostgresRepository_SoftDeleteMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	repo := &adminPostgresRepository{DB: db, Log: zap.NewNop()}

	mock.ExpectQuery("UPDATE admins SET is_deleted = true").WithArgs("ad-404").WillReturnError(sql.ErrNoRows)

	admin, err := repo.SoftDelete(context.Background(), "ad-404")

	assert.NoError(t, err)
	assert.Nil(t, admin)
}
