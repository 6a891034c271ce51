package infra

import (
	"fmt"

	"github.com/msambrenil/OjitosSinUsuarios/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and migrates the
// schema. The schema is small enough that AutoMigrate covers it entirely.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	return db, nil
}

// RunMigrations applies the schema.
func RunMigrations(db *gorm.DB) error {
	// gen_random_uuid() requires pgcrypto on PostgreSQL < 13
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		return err
	}
	return db.AutoMigrate(
		&model.Categoria{},
		&model.Etiqueta{},
		&model.Producto{},
		&model.Cliente{},
		&model.Venta{},
		&model.VentaItem{},
		&model.MovimientoStock{},
		&model.Configuracion{},
	)
}
