package policy

import (
	"errors"

	"github.com/google/uuid"

	"gantt/internal/model"
)

// Actor is the authenticated caller as established by the auth middleware.
type Actor struct {
	ID           uuid.UUID
	IsSuperAdmin bool
}

var (
	// ErrDeleteSelf is returned when a user tries to delete their own account.
	ErrDeleteSelf = errors.New("cannot delete yourself")

	// ErrDeleteSuperAdmin is returned when the target of a deletion is a super admin.
	ErrDeleteSuperAdmin = errors.New("cannot delete super admin")

	// ErrNotSuperAdmin is returned for user management operations by regular users.
	ErrNotSuperAdmin = errors.New("not enough permissions")
)

// CanAccessTask reports whether the actor may view, mutate or delete a task
// owned by ownerID. Tasks are visible to their owner and to the super admin.
func CanAccessTask(actor Actor, ownerID uuid.UUID) bool {
	return actor.IsSuperAdmin || actor.ID == ownerID
}

// TaskListOwner resolves the owner filter for a task listing. A regular user
// always sees only their own tasks, whatever filter they asked for. The super
// admin sees everything unless they requested a specific user.
func TaskListOwner(actor Actor, requested *uuid.UUID) *uuid.UUID {
	if !actor.IsSuperAdmin {
		id := actor.ID
		return &id
	}
	return requested
}

// CanManageUsers reports whether the actor may use the user management API.
func CanManageUsers(actor Actor) bool {
	return actor.IsSuperAdmin
}

// CanModifyUser reports whether the actor may change the target account.
// Super admin accounts other than the actor's own are off limits.
func CanModifyUser(actor Actor, target *model.User) bool {
	if !actor.IsSuperAdmin {
		return false
	}
	return !target.IsSuperAdmin || target.ID == actor.ID
}

// CanDeleteUser decides whether the actor may delete the target account.
// Self-deletion is rejected for everyone, super admins cannot be deleted at
// all, and only a super admin may delete anyone.
func CanDeleteUser(actor Actor, target *model.User) error {
	if target.ID == actor.ID {
		return ErrDeleteSelf
	}
	if !actor.IsSuperAdmin {
		return ErrNotSuperAdmin
	}
	if target.IsSuperAdmin {
		return ErrDeleteSuperAdmin
	}
	return nil
}
