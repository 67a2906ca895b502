package database

import (
	"fmt"

	"wealthcoach_backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens a GORM connection with the given Postgres DSN.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// AutoMigrate migrates every model. Roles come first because users
// reference them.
func AutoMigrate(db *gorm.DB) error {
	// uuid_generate_v4 backs the primary key defaults.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return fmt.Errorf("failed to enable uuid-ossp extension: %w", err)
	}

	return db.AutoMigrate(
		&models.Role{},
		&models.User{},
		&models.PersonalDetails{},
		&models.EmploymentDetails{},
		&models.IncomeDetails{},
		&models.ExpensesDetails{},
		&models.Asset{},
		&models.Liability{},
		&models.GoalsAndWishes{},
		&models.RiskAppetite{},
		&models.Consent{},
		&models.Document{},
		&models.KfzForm{},
		&models.LoanForm{},
		&models.ImmobilienForm{},
		&models.PrivateHealthInsuranceForm{},
		&models.StateHealthInsuranceForm{},
		&models.FormConfiguration{},
	)
}
