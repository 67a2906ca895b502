package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthorize(t *testing.T) {
	resource := ResourceOwnership{OwnerID: "owner-1", CoachID: "coach-1"}

	cases := []struct {
		name      string
		principal Principal
		resource  ResourceOwnership
		want      bool
	}{
		{"admin always", Principal{ID: "any", Role: RoleAdmin}, resource, true},
		{"owner reads own", Principal{ID: "owner-1", Role: RoleClient}, resource, true},
		{"other client denied", Principal{ID: "owner-2", Role: RoleClient}, resource, false},
		{"assigned coach", Principal{ID: "coach-1", Role: RoleCoach}, resource, true},
		{"unassigned coach", Principal{ID: "coach-2", Role: RoleCoach}, resource, false},
		{"coach is not owner fallback", Principal{ID: "owner-1", Role: RoleCoach}, resource, false},
		{"no coach assigned", Principal{ID: "coach-1", Role: RoleCoach}, ResourceOwnership{OwnerID: "owner-1"}, false},
		{"guest denied", Principal{ID: "guest-1", Role: RoleGuest}, resource, false},
		{"empty owner never matches", Principal{ID: "", Role: RoleClient}, ResourceOwnership{}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Authorize(tc.principal, tc.resource))
		})
	}
}

func TestRoleHelpers(t *testing.T) {
	assert.True(t, IsAdmin(Principal{Role: RoleAdmin}))
	assert.False(t, IsAdmin(Principal{Role: RoleCoach}))

	assert.True(t, IsCoachOrAdmin(Principal{Role: RoleCoach}))
	assert.True(t, IsCoachOrAdmin(Principal{Role: RoleAdmin}))
	assert.False(t, IsCoachOrAdmin(Principal{Role: RoleClient}))
}

func TestHasPermission(t *testing.T) {
	assert.True(t, HasPermission(RoleAdmin, "MANAGE_USERS"))
	assert.True(t, HasPermission(RoleCoach, "VIEW_CLIENT_DATA"))
	assert.False(t, HasPermission(RoleClient, "MANAGE_USERS"))
	assert.False(t, HasPermission("UNKNOWN", "ANYTHING"))
}

func TestValidateRole(t *testing.T) {
	for _, role := range []string{RoleAdmin, RoleCoach, RoleClient, RoleGuest} {
		assert.NoError(t, ValidateRole(role))
	}
	assert.Error(t, ValidateRole("SUPERUSER"))
	assert.Error(t, ValidateRole("client"))
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret-password")
	assert.NoError(t, err)
	assert.NotEqual(t, "secret-password", hash)

	assert.True(t, CheckPasswordHash("secret-password", hash))
	assert.False(t, CheckPasswordHash("wrong-password", hash))
}

func TestValidatePassword(t *testing.T) {
	assert.Error(t, ValidatePassword("short"))
	assert.NoError(t, ValidatePassword("long enough password"))
}
