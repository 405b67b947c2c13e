package database

import (
	"fmt"

	"github.com/fgillet-lagoon/hour-track/internal/config"
	"github.com/fgillet-lagoon/hour-track/internal/log"
	"github.com/fgillet-lagoon/hour-track/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seed creates the initial admin account and a pair of sample projects
// when the users table is empty. It is a no-op on an already-provisioned
// database.
func Seed(cfg *config.Config, logger *log.Logger) error {
	var count int64
	if err := DB.Model(&models.User{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	if cfg.AdminPassword == "" {
		logger.Warn("empty users table but ADMIN_PASSWORD is not set, skipping seed")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &models.User{
		Username:     cfg.AdminUsername,
		PasswordHash: string(hash),
		IsAdmin:      true,
	}

	return DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(admin).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}

		projects := []models.Project{
			{
				Name:        "Website Development",
				Description: "Frontend and backend development for the company website",
				Color:       models.DefaultProjectColor,
				CreatedByID: admin.ID,
			},
			{
				Name:        "Mobile App",
				Description: "iOS and Android mobile application development",
				Color:       "#16A34A",
				CreatedByID: admin.ID,
			},
		}
		if err := tx.Create(&projects).Error; err != nil {
			return fmt.Errorf("failed to create sample projects: %w", err)
		}

		logger.Info("seeded database with default admin and sample projects",
			log.FieldUsername, admin.Username)
		return nil
	})
}
