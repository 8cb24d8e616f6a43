package user

import (
	"fmt"

	"orderdesk/internal/pkg/errs"
)

// Role is the closed set of actor kinds.
type Role int

const (
	// UnknownRole is the zero value and never valid.
	UnknownRole Role = iota
	Admin
	Seller
	Driver
)

var roleNames = map[Role]string{
	Admin:  "admin",
	Seller: "seller",
	Driver: "driver",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "unknown"
}

func (r Role) Validate() error {
	if _, ok := roleNames[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// ParseRole converts "admin", "seller" or "driver" into a Role.
func ParseRole(name string) (Role, error) {
	for r, n := range roleNames {
		if n == name {
			return r, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", name))
}
