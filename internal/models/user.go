package models

import (
	"time"

	"gorm.io/datatypes"
)

// Role is seeded at deployment. Name is one of the fixed set in internal/auth.
type Role struct {
	BaseModel
	Name        string         `gorm:"uniqueIndex;not null" json:"name"`
	Description string         `json:"description"`
	Permissions datatypes.JSON `gorm:"type:jsonb" json:"permissions"`

	Users []User `gorm:"foreignKey:RoleID" json:"-"`
}

type User struct {
	BaseModel
	Email         string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash  string `gorm:"not null" json:"-"`
	DisplayName   string `json:"display_name"`
	PhoneNumber   string `json:"phone_number"`
	EmailVerified bool   `gorm:"default:false" json:"email_verified"`
	RoleID        string `gorm:"type:uuid;not null;index" json:"role_id"`

	// ResetToken doubles as email-verification and password-reset token,
	// whichever was requested last.
	ResetToken       string     `json:"-"`
	ResetTokenExpiry *time.Time `json:"-"`

	// Relations
	Role            *Role            `gorm:"foreignKey:RoleID" json:"role,omitempty"`
	PersonalDetails *PersonalDetails `gorm:"foreignKey:UserID" json:"personal_details,omitempty"`
}

// RoleName returns the resolved role name, empty when the role is not loaded.
func (u *User) RoleName() string {
	if u.Role == nil {
		return ""
	}
	return u.Role.Name
}
