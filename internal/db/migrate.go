package db

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"persianas-backend/internal/models"

	migrate "github.com/golang-migrate/migrate/v4"
	// Blank imports register the postgres driver and file source for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the database behind the DSN (postgres URL/key-value, or a
// sqlite file DSN for development and tests) and brings the schema up to date.
// Postgres gets a retry loop to ride out container start-up; sqlite opens
// immediately. With MIGRATIONS=1 and a postgres target, the SQL migrations in
// ./migrations run via golang-migrate; otherwise gorm AutoMigrate keeps the
// schema current.
func Connect(rawDSN string) (*gorm.DB, error) {
	dsn := NormalizeDSN(rawDSN)
	if dsn == "" {
		return nil, fmt.Errorf("database DSN is empty, check the environment configuration")
	}

	logLevel := logger.Silent
	if os.Getenv("DB_DEBUG") == "1" {
		logLevel = logger.Info
	}
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logLevel)}

	var conn *gorm.DB
	var err error
	if IsPostgres(dsn) {
		for i := 0; i < 10; i++ {
			conn, err = gorm.Open(postgres.Open(dsn), cfg)
			if err == nil {
				break
			}
			fmt.Println("Retrying DB connection...", err)
			time.Sleep(2 * time.Second)
		}
	} else {
		conn, err = gorm.Open(sqlite.Open(dsn), cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	if pingErr := conn.Exec("SELECT 1").Error; pingErr != nil {
		return nil, fmt.Errorf("db ping failed: %w", pingErr)
	}
	fmt.Println("[DB] Using DSN:", maskDSN(dsn))

	if useSQLMigrations() && IsPostgres(dsn) {
		if err := runSQLMigrations(dsn); err != nil {
			return nil, fmt.Errorf("sql migrations failed: %w", err)
		}
	} else {
		if err := AutoMigrate(conn); err != nil {
			return nil, err
		}
	}
	return conn, nil
}

// AutoMigrate creates or updates the tables for every persisted model.
func AutoMigrate(conn *gorm.DB) error {
	for _, m := range []interface{}{
		&models.Product{},
		&models.BusinessConfig{},
		&models.Quote{},
		&models.QuoteItem{},
	} {
		if err := conn.AutoMigrate(m); err != nil {
			return fmt.Errorf("automigrate %T: %w", m, err)
		}
	}
	return nil
}

func useSQLMigrations() bool {
	v := strings.ToLower(os.Getenv("MIGRATIONS"))
	return v == "1" || v == "true" || v == "yes"
}

var passwordRegex = regexp.MustCompile(`(password=)([^\s]+)`)

func maskDSN(dsn string) string {
	masked := dsn
	if strings.Contains(masked, "password=") {
		masked = passwordRegex.ReplaceAllString(masked, `${1}***`)
	}
	return masked
}

// runSQLMigrations executes the migrations in ./migrations using the
// golang-migrate file source.
func runSQLMigrations(dsn string) error {
	m, err := migrate.New("file://migrations", dsn)
	if err != nil {
		return err
	}
	if err = m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}
