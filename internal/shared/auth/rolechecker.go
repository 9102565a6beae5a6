package auth

import "zelo/internal/shared/constants"

// IsAdmin checks if the user has the admin role
func IsAdmin(role string) bool {
	return role == constants.RoleAdmin
}

// IsManager checks if the user has the building manager role
func IsManager(role string) bool {
	return role == constants.RoleManager
}

// IsAdminOrManager checks if the user can operate the back office
func IsAdminOrManager(role string) bool {
	return IsAdmin(role) || IsManager(role)
}
