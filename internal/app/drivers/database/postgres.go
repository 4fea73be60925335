package database

import (
	"database/sql"
	"doccare-service/internal/app/config"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq"
)

// NewPostgresDB opens the process-wide connection pool. The caller owns it
// and passes it to repositories explicitly.
func NewPostgresDB(driverConfig *config.DriverConfig) *sql.DB {
	connectionString := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		driverConfig.Postgres.Host,
		driverConfig.Postgres.Port,
		driverConfig.Postgres.Username,
		driverConfig.Postgres.Password,
		driverConfig.Postgres.DBName,
		driverConfig.Postgres.SSLMode,
	)

	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		log.Fatalf("Failed to open postgres database connection: %s", err.Error())
	}

	db.SetMaxOpenConns(driverConfig.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(driverConfig.Postgres.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(driverConfig.Postgres.ConnMaxLifetimeInMinutes) * time.Minute)

	err = db.Ping()
	if err != nil {
		log.Fatalf("Failed to connect to postgres database: %s", err.Error())
	}

	log.Println("Successfully connected to postgres database")

	return db
}
