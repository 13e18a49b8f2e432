package models

import (
	"strings"
	"time"

	"trailhead/tools"
)

/************************************************
/**** MARK: USER ROLES ****/
/************************************************/
const ROLE_USER = "user"
const ROLE_GUIDE = "guide"
const ROLE_LEAD = "lead"
const ROLE_ADMIN = "admin"

// User representa um usuário do sistema.
// Password guarda apenas o hash bcrypt; PasswordResetToken guarda apenas o
// hash SHA-256 do token de recuperação (nunca o token em texto puro).
type User struct {
	ID                   int64      `gorm:"primary_key;AUTO_INCREMENT" json:"id"`
	Name                 string     `gorm:"not null" json:"name" form:"name"`
	Email                string     `gorm:"not null;unique" json:"email" form:"email"`
	Photo                string     `gorm:"default:''" json:"photo" form:"photo"`
	Role                 string     `gorm:"not null;default:'user'" json:"role" form:"role"`
	Password             string     `gorm:"not null" json:"-"`
	PasswordChangedAt    *time.Time `json:"-"`
	PasswordResetToken   string     `gorm:"index;default:''" json:"-"`
	PasswordResetExpires *time.Time `json:"-"`
	CreatedAt            *time.Time `json:"created_at"`
	UpdatedAt            *time.Time `json:"updated_at"`
}

// ValidRole reports whether role is one of the known roles.
func ValidRole(role string) bool {
	switch role {
	case ROLE_USER, ROLE_GUIDE, ROLE_LEAD, ROLE_ADMIN:
		return true
	}
	return false
}

// NormalizeEmail lowercases and trims an email for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// MissingFields returns the first invalid signup field, or "" when all
// required fields are present and well formed.
func (user User) MissingFields(password string) string {
	if len(user.Name) < 5 || len(user.Name) > 40 {
		return "name"
	} else if user.Email == "" || !tools.ValidateEmail(user.Email) {
		return "email"
	} else if tools.CheckPasswordLength(password) != "" {
		return tools.CheckPasswordLength(password)
	}
	return ""
}

// ChangedPasswordAfter reports whether the password was changed after the
// given token issue time. Tokens issued before a password change are stale
// and must be rejected even with a valid signature.
func (user User) ChangedPasswordAfter(issuedAt time.Time) bool {
	if user.PasswordChangedAt == nil {
		return false
	}
	return issuedAt.Before(*user.PasswordChangedAt)
}

// HasLiveResetToken reports whether a reset token is stored and not yet
// expired at the given instant.
func (user User) HasLiveResetToken(now time.Time) bool {
	if user.PasswordResetToken == "" || user.PasswordResetExpires == nil {
		return false
	}
	return now.Before(*user.PasswordResetExpires)
}
