package migrations

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// Up applies every pending migration. A schema that is already current is
// not an error.
func Up(driver database.Driver, databaseName string) error {
	m, err := newMigrate(driver, databaseName)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}

	return nil
}

// Down rolls back the given number of migrations.
func Down(driver database.Driver, databaseName string, steps int) error {
	m, err := newMigrate(driver, databaseName)
	if err != nil {
		return err
	}

	if steps <= 0 {
		return fmt.Errorf("steps should be greater than zero, got %d", steps)
	}

	if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("roll back migrations: %w", err)
	}

	return nil
}

// Version reports the current schema version and whether the last migration
// left it dirty.
func Version(driver database.Driver, databaseName string) (uint, bool, error) {
	m, err := newMigrate(driver, databaseName)
	if err != nil {
		return 0, false, err
	}

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}

	return version, dirty, err
}

func newMigrate(driver database.Driver, databaseName string) (*migrate.Migrate, error) {
	source, err := iofs.New(FS, ".")
	if err != nil {
		return nil, fmt.Errorf("open embedded migrations: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, databaseName, driver)
	if err != nil {
		return nil, fmt.Errorf("create migrator: %w", err)
	}

	return m, nil
}
