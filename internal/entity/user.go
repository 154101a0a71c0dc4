package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleAdmin         Role = "admin"
	RoleSalesEngineer Role = "sales_engineer"
	RoleManager       Role = "manager"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleSalesEngineer, RoleManager:
		return true
	}
	return false
}

// Assignable reports whether leads and proposals may be assigned to a user
// with this role.
func (r Role) Assignable() bool {
	return r == RoleSalesEngineer || r == RoleManager
}

type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
)

func (s UserStatus) Valid() bool {
	return s == UserActive || s == UserInactive
}

type User struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      Role       `json:"role"`
	Status    UserStatus `json:"status"`
	LastLogin string     `json:"last_login"` // YYYY-MM-DD
}

type UserInput struct {
	Name   string     `json:"name"`
	Email  string     `json:"email"`
	Role   Role       `json:"role"`
	Status UserStatus `json:"status"`
}

func NewUser(in UserInput, now time.Time) (*User, error) {
	user := &User{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Role:      in.Role,
		Status:    in.Status,
		LastLogin: now.Format("2006-01-02"),
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

func (u *User) Validate() error {
	if strings.TrimSpace(u.Name) == "" {
		return &ValidationError{"name", "is required"}
	}
	if strings.TrimSpace(u.Email) == "" {
		return &ValidationError{"email", "is required"}
	}
	if !u.Role.Valid() {
		return &ValidationError{"role", "is not a known role"}
	}
	if !u.Status.Valid() {
		return &ValidationError{"status", "must be active or inactive"}
	}
	return nil
}

type UserPatch struct {
	Name      *string     `json:"name,omitempty"`
	Email     *string     `json:"email,omitempty"`
	Role      *Role       `json:"role,omitempty"`
	Status    *UserStatus `json:"status,omitempty"`
	LastLogin *string     `json:"last_login,omitempty"`
}

func (p UserPatch) Apply(user *User) {
	if p.Name != nil {
		user.Name = *p.Name
	}
	if p.Email != nil {
		user.Email = *p.Email
	}
	if p.Role != nil {
		user.Role = *p.Role
	}
	if p.Status != nil {
		user.Status = *p.Status
	}
	if p.LastLogin != nil {
		user.LastLogin = *p.LastLogin
	}
}
