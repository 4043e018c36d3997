package seeders

import (
	"github.com/launchbase/launchbase/app/models"
	"github.com/launchbase/launchbase/config"
	"github.com/launchbase/launchbase/pkg/auth"
	"gorm.io/gorm"
)

func init() {
	Register("admin", SeedAdmin)
}

// SeedAdmin creates the bootstrap admin account when none exists, so a
// fresh install has someone who can approve registrations.
func SeedAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(config.Get("ADMIN_PASSWORD", "changeme123"))
	if err != nil {
		return err
	}

	admin := models.User{
		FirstName:  "System",
		LastName:   "Admin",
		Email:      config.Get("ADMIN_EMAIL", "admin@launchbase.local"),
		Password:   hash,
		Role:       models.RoleAdmin,
		IsApproved: models.ApprovalApproved,
	}
	return db.Create(&admin).Error
}
