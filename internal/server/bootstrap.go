package server

import (
	"context"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"gantt/internal/config"
	"gantt/internal/model"
	"gantt/internal/repository"
)

// EnsureSuperAdmin creates the configured super admin account if it does not
// exist yet. Idempotent: a second start with the same ADMIN_EMAIL is a no-op,
// backed by the unique email constraint.
func EnsureSuperAdmin(ctx context.Context, userRepo repository.UserRepositoryInterface, cfg *config.Config) error {
	existing, err := userRepo.FindByEmail(ctx, cfg.AdminEmail)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &model.User{
		ID:             uuid.New(),
		Email:          cfg.AdminEmail,
		FullName:       cfg.AdminName,
		Position:       cfg.AdminName,
		IsSuperAdmin:   true,
		HashedPassword: string(hash),
	}

	if err := userRepo.Create(ctx, admin); err != nil {
		return err
	}

	log.Printf("✅ Super admin account created: %s", cfg.AdminEmail)
	return nil
}
