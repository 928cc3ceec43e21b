package constants

import "fmt"

// Role ids as stored on staff rows.
const (
	RoleAdmin    = 1
	RoleEmployee = 2
	RoleManager  = 3
)

var RoleNames = map[int]string{
	RoleAdmin:    "Admin",
	RoleEmployee: "Employee",
	RoleManager:  "Manager",
}

// Error message templates for role checks.
const (
	ErrOnlyManagersCanAccess = "Only managers may access %s."
	ErrOnlyAdminsCanAccess   = "Only admins may access %s."
)

func RoleErrorManager(feature string) string {
	return fmt.Sprintf(ErrOnlyManagersCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}
