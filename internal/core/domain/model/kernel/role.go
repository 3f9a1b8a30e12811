package kernel

import (
	"errors"
	"fmt"
	"strings"

	"vendorflow/internal/pkg/errs"
)

// Role is the kind of party acting on a purchase order.
// The set is closed: every switch over Role lists all three values.
type Role int

const (
	roleUnknown Role = iota
	RoleVendor
	RolePurchaser
	RoleAdmin
)

var ErrRoleIsNotConstructed = errs.NewValueIsRequiredError("role")

// RoleFromString parses the textual form used at the transport boundary.
// Matching is case-insensitive.
func RoleFromString(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vendor":
		return RoleVendor, nil
	case "purchaser":
		return RolePurchaser, nil
	case "admin":
		return RoleAdmin, nil
	default:
		return roleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("unknown role %q", s))
	}
}

func (r Role) String() string {
	switch r {
	case RoleVendor:
		return "vendor"
	case RolePurchaser:
		return "purchaser"
	case RoleAdmin:
		return "admin"
	case roleUnknown:
		return "unknown"
	}
	return "unknown"
}

func (r Role) Validate() error {
	switch r {
	case RoleVendor, RolePurchaser, RoleAdmin:
		return nil
	case roleUnknown:
		return ErrRoleIsNotConstructed
	}
	return errs.NewValueIsInvalidError("role")
}

// Actor is the identity resolved by the caller for the current request.
// The core never derives it; it only checks the role and compares ID against
// the vendor or purchaser reference of the order.
type Actor struct {
	role Role
	id   UUID
}

// NewActor validates both parts of the identity.
func NewActor(role Role, id UUID) (Actor, error) {
	if err := errors.Join(role.Validate(), id.Validate()); err != nil {
		return Actor{}, err
	}
	return Actor{role: role, id: id}, nil
}

func (a Actor) Role() Role {
	return a.role
}

func (a Actor) ID() UUID {
	return a.id
}

func (a Actor) Validate() error {
	return errors.Join(a.role.Validate(), a.id.Validate())
}

// Is reports whether the actor plays the given role.
func (a Actor) Is(role Role) bool {
	return a.role == role
}

// Require returns an *errs.AccessDeniedError when the actor does not play role.
func (a Actor) Require(role Role, action string) error {
	if a.role != role {
		return errs.NewAccessDeniedError(a.role.String(), action)
	}
	return nil
}

func (a Actor) String() string {
	return a.role.String() + ":" + a.id.String()
}
