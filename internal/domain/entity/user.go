package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a user in the system
type User struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	FirstName       string         `gorm:"size:255;not null" json:"first_name"`
	LastName        string         `gorm:"size:255;not null" json:"last_name"`
	Username        string         `gorm:"size:255;unique" json:"username"`
	Email           string         `gorm:"size:255;unique;not null" json:"email"`
	Password        string         `gorm:"size:255" json:"-"`
	Provider        string         `gorm:"size:50;default:'local'" json:"provider"`
	ProviderID      *string        `gorm:"size:255" json:"-"`
	Photo           *string        `gorm:"size:255" json:"photo,omitempty"`
	IsActive        bool           `gorm:"default:true" json:"is_active"`
	EmailVerifiedAt *time.Time     `json:"email_verified_at,omitempty"`
	LastLoginAt     *time.Time     `json:"last_login_at,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	RoleAssignment *UserRole     `gorm:"foreignKey:UserID" json:"role_assignment,omitempty"`
	Customers      []Customer    `gorm:"foreignKey:CreatedBy" json:"-"`
	Transactions   []Transaction `gorm:"foreignKey:CreatedBy" json:"-"`
	Sales          []Sale        `gorm:"foreignKey:CreatedBy" json:"-"`
}

// BeforeCreate generates a UUID before creating a new user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}

// FullName returns the user's first and last names joined.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// Role represents a role in the RBAC system
type Role struct {
	ID          uint         `gorm:"primary_key" json:"id"`
	Name        string       `gorm:"size:255;unique;not null" json:"name"`
	Description string       `gorm:"size:255" json:"description"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	Permissions []Permission `gorm:"many2many:role_has_permissions;foreignKey:ID;joinForeignKey:role_id;References:ID;joinReferences:permission_id" json:"permissions,omitempty"`
}

// TableName returns the table name for the Role model
func (Role) TableName() string {
	return "roles"
}

// Permission represents a permission in the RBAC system
type Permission struct {
	ID        uint      `gorm:"primary_key" json:"id"`
	Name      string    `gorm:"size:255;unique;not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for the Permission model
func (Permission) TableName() string {
	return "permissions"
}

// UserRole assigns exactly one role to a user. The unique constraint on
// user_id enforces the one-role-per-user rule at the database level.
type UserRole struct {
	ID         uint      `gorm:"primary_key" json:"id"`
	UserID     uuid.UUID `gorm:"type:uuid;unique;not null" json:"user_id"`
	RoleID     uint      `gorm:"not null" json:"role_id"`
	AssignedBy uuid.UUID `gorm:"type:uuid" json:"assigned_by"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	// Relationships
	Role Role `gorm:"foreignKey:RoleID" json:"role,omitempty"`
}

// TableName returns the table name for the UserRole model
func (UserRole) TableName() string {
	return "user_roles"
}

// HasPermission checks if the user has a specific permission
func (u *User) HasPermission(permissionName string) bool {
	if u.RoleAssignment == nil {
		return false
	}
	for _, permission := range u.RoleAssignment.Role.Permissions {
		if permission.Name == permissionName {
			return true
		}
	}
	return false
}

// HasRole checks if the user has a specific role
func (u *User) HasRole(roleName string) bool {
	return u.RoleAssignment != nil && u.RoleAssignment.Role.Name == roleName
}

// GetPermissions returns all permission names for the user
func (u *User) GetPermissions() []string {
	if u.RoleAssignment == nil {
		return []string{}
	}
	result := make([]string, 0, len(u.RoleAssignment.Role.Permissions))
	for _, permission := range u.RoleAssignment.Role.Permissions {
		result = append(result, permission.Name)
	}
	return result
}
