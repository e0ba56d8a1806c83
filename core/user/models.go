package user

import (
	"github.com/trezcool/masomo-desk/core"
)

// Roles
const (
	RoleTeacher = "teacher"
	RoleStudent = "student"

	DefaultRole = RoleStudent
)

var AllRoles = []string{RoleTeacher, RoleStudent}

// User is an identity. Passwords are kept and compared as entered.
type User struct {
	ID       int    `json:"id" db:"id"`
	Username string `json:"username" db:"username"`
	Password string `json:"-" db:"password"`
	Name     string `json:"name" db:"name"`
	Email    string `json:"email" db:"email"`
	Role     string `json:"role" db:"role"`
}

func (u User) IsTeacher() bool {
	return u.Role == RoleTeacher
}

func (u User) IsStudent() bool {
	return u.Role == RoleStudent
}

// NewUser contains information needed to create a new User.
type NewUser struct {
	Username string `json:"username" validate:"notblank"`
	Password string `json:"password" validate:"notblank"`
	Name     string `json:"name" validate:"notblank"`
	Email    string `json:"email" validate:"notblank"`
	Role     string `json:"role" validate:"oneof=teacher student"`
}

func (nu *NewUser) Validate() error {
	nu.Username = core.CleanString(nu.Username)
	nu.Name = core.CleanString(nu.Name)
	nu.Email = core.CleanString(nu.Email)
	nu.Role = core.CleanString(nu.Role, true /* lower */)
	if nu.Role == "" {
		nu.Role = DefaultRole
	}

	return core.Validation(core.Validate.Struct(nu))
}
