package migration

import (
	"database/sql"
	"log"
	"os"
	"path/filepath"

	migrate "github.com/rubenv/sql-migrate"
)

// Run applies every pending migration found in dir, resolved against the
// working directory when relative.
func Run(db *sql.DB, dir string) {
	if !filepath.IsAbs(dir) {
		wd, err := os.Getwd()
		if err != nil {
			log.Fatalf("Error getting working directory: %v", err)
		}
		dir = filepath.Join(wd, dir)
	}

	migrations := &migrate.FileMigrationSource{
		Dir: dir,
	}

	n, err := migrate.Exec(db, "postgres", migrations, migrate.Up)
	if err != nil {
		log.Fatalf("Error executing migration: %v", err)
	}

	log.Printf("Applied %d migrations!\n", n)
}
