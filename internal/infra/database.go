package infra

import (
	"fmt"
	"strings"

	"kiosco/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase opens the store named by dsn and creates any missing table.
// postgres:// and postgresql:// URLs open Postgres; anything else is handed to
// the SQLite driver as a file path or file: URI.
func NewDatabase(dsn string) (*gorm.DB, error) {
	dialector, embedded := dialectorFor(dsn)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if embedded {
		// SQLite serializes writers anyway; a single connection keeps
		// in-memory databases alive and avoids SQLITE_BUSY between requests.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(5)
	}

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}
	return db, nil
}

func dialectorFor(dsn string) (gorm.Dialector, bool) {
	lower := strings.ToLower(strings.TrimSpace(dsn))
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return postgres.Open(dsn), false
	}
	return sqlite.Open(dsn), true
}

// RunMigrations creates every table the application uses when absent.
// Existing tables from the original database file are left in place; only
// missing columns are added.
func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Usuario{},
		&model.Cliente{},
		&model.Proveedor{},
		&model.Producto{},
		&model.Factura{},
		&model.DetalleFactura{},
		&model.Caja{},
	)
}
