package auth

// Principal is the authenticated identity making a request. It is resolved
// from the live user record on every request, not from token claims alone, so
// role changes and deletions take effect without waiting for token expiry.
type Principal struct {
	ID    string
	Email string
	Role  string
}

// ResourceOwnership carries the ownership fields of a target record.
type ResourceOwnership struct {
	// OwnerID is the user the record belongs to.
	OwnerID string
	// CoachID is the coach assigned to the owner, empty when none.
	CoachID string
}

// Authorize is the single access decision for personal-data records. It runs
// before any read or mutation and is independent of the transport layer.
//
//	ADMIN        -> allow
//	COACH        -> allow iff resource.CoachID == principal.ID
//	CLIENT/other -> allow iff resource.OwnerID == principal.ID
//
// An unauthenticated caller never reaches this point; the middleware rejects
// it with 401, which callers must keep distinct from the 403 produced here.
func Authorize(principal Principal, resource ResourceOwnership) bool {
	switch principal.Role {
	case RoleAdmin:
		return true
	case RoleCoach:
		return resource.CoachID != "" && resource.CoachID == principal.ID
	default:
		return resource.OwnerID != "" && resource.OwnerID == principal.ID
	}
}

// IsAdmin reports whether the principal carries the admin role.
func IsAdmin(p Principal) bool {
	return p.Role == RoleAdmin
}

// IsCoachOrAdmin reports whether the principal may operate on other users' data
// at all (subject to Authorize for the specific record).
func IsCoachOrAdmin(p Principal) bool {
	return p.Role == RoleCoach || p.Role == RoleAdmin
}
