// server/internal/database/seeder.go
package database

import (
	"zk-salon-api-server/config"
	"zk-salon-api-server/internal/auth"
	"zk-salon-api-server/internal/models"
	"zk-salon-api-server/internal/store"

	"go.uber.org/zap"
)

// SeedAdmin provisions the singleton admin account when the document carries
// none. The password is stored hashed; an admin already present is left
// untouched (including a legacy plain-text one, which migrates on login).
func SeedAdmin(st *store.Store, cfg config.Config) error {
	doc, err := st.Load()
	if err != nil {
		return err
	}

	if doc.Admin.Email != "" {
		zap.S().Info("Admin account already exists. Seeding skipped.")
		return nil
	}

	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		zap.S().Warn("No admin account in storage and ADMIN_EMAIL/ADMIN_PASSWORD not set; admin login is disabled")
		return nil
	}

	zap.S().Info("Admin account not found. Seeding...")
	hashedPassword, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return err
	}

	doc.Admin = models.Admin{
		Email:    cfg.Admin.Email,
		Password: hashedPassword,
	}
	return st.Save(doc)
}
