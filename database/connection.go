package database

import (
	"database/sql"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/AngeelRdz/resume-angeel-dev/metal/env"
)

// Connection owns the process-wide gorm handle. It is created once at boot,
// shared read-only afterwards, and survives container resets.
type Connection struct {
	driverName string
	driver     *gorm.DB
	env        *env.Environment
}

func MakeConnection(env *env.Environment) (*Connection, error) {
	dbEnv := env.DB

	driver, err := gorm.Open(postgres.Open(dbEnv.GetDSN()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open %s connection: %w", dbEnv.DriverName, err)
	}

	return &Connection{
		driver:     driver,
		driverName: dbEnv.DriverName,
		env:        env,
	}, nil
}

// MakeConnectionFrom wraps an already-open gorm handle. Tests use it to back
// the connection with sqlite or sqlmock.
func MakeConnectionFrom(driver *gorm.DB, env *env.Environment) *Connection {
	return &Connection{
		driver:     driver,
		driverName: DriverName,
		env:        env,
	}
}

func (c *Connection) Close() bool {
	sqlDB, err := c.driver.DB()
	if err != nil {
		fmt.Printf("[db:close] could not resolve the sql driver: %v\n", err)

		return false
	}

	if err = sqlDB.Close(); err != nil {
		fmt.Printf("[db:close] error closing the db: %v\n", err)

		return false
	}

	return true
}

func (c *Connection) Ping() error {
	var driver *sql.DB

	driver, err := c.driver.DB()
	if err != nil {
		return fmt.Errorf("resolve sql driver: %w", err)
	}

	if err = driver.Ping(); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	return nil
}

func (c *Connection) Sql() *gorm.DB {
	return c.driver
}

func (c *Connection) Transaction(callback func(db *gorm.DB) error) error {
	return c.driver.Transaction(callback)
}
