package models

import "time"

// User roles. Every role except RoleAdmin is self-assignable at registration.
const (
	RoleLearner         = "learner"
	RoleFounder         = "founder"
	RoleExistingFounder = "existing_founder"
	RoleOther           = "other"
	RoleAdmin           = "admin"
)

// Approval workflow states for newly registered users.
const (
	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
	ApprovalRejected = "rejected"
)

// Roles lists every valid role value.
var Roles = []string{RoleLearner, RoleFounder, RoleExistingFounder, RoleOther, RoleAdmin}

// ValidRole reports whether role is one of the closed enumeration.
func ValidRole(role string) bool {
	for _, r := range Roles {
		if r == role {
			return true
		}
	}
	return false
}

// User is a platform account. Deletion is physical; rows are never
// soft-deleted or versioned.
type User struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FirstName  string    `gorm:"size:255;not null" json:"first_name"`
	LastName   string    `gorm:"size:255;not null" json:"last_name"`
	Email      string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	Password   string    `gorm:"size:255;not null" json:"-"` // bcrypt hash, never serialised
	Phone      *string   `gorm:"size:20" json:"phone,omitempty"`
	Address    string    `gorm:"type:text;not null" json:"address"`
	ZipCode    *string   `gorm:"size:10" json:"zip_code,omitempty"`
	Role       string    `gorm:"size:50;not null;default:learner" json:"role"`
	IsApproved string    `gorm:"size:20;not null;default:pending" json:"is_approved"`
	ProfilePic *string   `gorm:"size:512" json:"profile_pic,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// SortColumns is the whitelist of user columns a caller may sort by.
// Password is deliberately absent.
func (User) SortColumns() []string {
	return []string{"created_at", "updated_at", "first_name", "last_name", "email", "role"}
}
