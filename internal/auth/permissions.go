package auth

import "errors"

// Platform roles. Seeded at deployment, rarely mutated.
const (
	RoleAdmin  = "ADMIN"
	RoleCoach  = "COACH"
	RoleClient = "CLIENT"
	RoleGuest  = "GUEST"
)

// Permissions lists the permission strings granted to each role.
var Permissions = map[string][]string{
	RoleAdmin: {
		"MANAGE_USERS",
		"MANAGE_ROLES",
		"MANAGE_CLIENTS",
		"MANAGE_COACHES",
		"MANAGE_CONTENT",
		"VIEW_REPORTS",
	},
	RoleCoach: {
		"MANAGE_OWN_CLIENTS",
		"VIEW_CLIENT_DATA",
		"CREATE_REPORTS",
	},
	RoleClient: {
		"VIEW_OWN_DATA",
		"UPDATE_PROFILE",
		"REQUEST_SERVICES",
	},
	RoleGuest: {
		"VIEW_PUBLIC_CONTENT",
	},
}

// RoleDescriptions carries the seed descriptions per role.
var RoleDescriptions = map[string]string{
	RoleAdmin:  "Administrator with full access",
	RoleCoach:  "Financial coach who manages clients",
	RoleClient: "End user of the platform",
	RoleGuest:  "Unregistered or limited access user",
}

// HasPermission reports whether the role carries the permission.
func HasPermission(role, permission string) bool {
	permissions, exists := Permissions[role]
	if !exists {
		return false
	}
	for _, p := range permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// ValidateRole checks the role name against the fixed set.
func ValidateRole(role string) error {
	switch role {
	case RoleAdmin, RoleCoach, RoleClient, RoleGuest:
		return nil
	default:
		return errors.New("invalid role")
	}
}
