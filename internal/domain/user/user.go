package user

import (
	"fmt"
	"strings"
	"time"

	"github.com/civicdesk/civicdesk/internal/domain/department"
	vo "github.com/civicdesk/civicdesk/internal/domain/user/valueobjects"
	"github.com/civicdesk/civicdesk/internal/shared/biztime"
	"github.com/civicdesk/civicdesk/internal/shared/nullable"
)

const maxNameLength = 100

// User is a municipal staff account. Authentication is handled elsewhere;
// this aggregate only carries profile, role and department membership.
type User struct {
	id           uint
	name         string
	email        vo.Email
	phone        *string
	role         vo.Role
	status       vo.UserStatus
	departmentID *uint
	permissions  []string
	lastLogin    *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

// Draft carries the writable fields of a new user.
type Draft struct {
	Name         string
	Email        string
	Phone        *string
	Role         vo.Role
	Status       vo.UserStatus
	DepartmentID *uint
	Permissions  []string
}

func NewUser(d Draft) (*User, error) {
	u := &User{
		phone:        d.Phone,
		departmentID: d.DepartmentID,
		permissions:  copyStrings(d.Permissions),
	}
	if err := u.setName(d.Name); err != nil {
		return nil, err
	}
	if err := u.setEmail(d.Email); err != nil {
		return nil, err
	}
	if !d.Role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", d.Role)
	}
	u.role = d.Role

	u.status = vo.StatusActive
	if d.Status != "" {
		if !d.Status.IsValid() {
			return nil, fmt.Errorf("invalid user status: %s", d.Status)
		}
		u.status = d.Status
	}

	now := biztime.StampUTC()
	u.createdAt = now
	u.updatedAt = now
	return u, nil
}

func ReconstructUser(
	id uint,
	d Draft,
	lastLogin *time.Time,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	email, err := vo.NewEmail(d.Email)
	if err != nil {
		return nil, fmt.Errorf("user %d: %w", id, err)
	}
	if !d.Role.IsValid() {
		return nil, fmt.Errorf("user %d: invalid role %q", id, d.Role)
	}
	if !d.Status.IsValid() {
		return nil, fmt.Errorf("user %d: invalid status %q", id, d.Status)
	}
	return &User{
		id:           id,
		name:         d.Name,
		email:        email,
		phone:        d.Phone,
		role:         d.Role,
		status:       d.Status,
		departmentID: d.DepartmentID,
		permissions:  copyStrings(d.Permissions),
		lastLogin:    lastLogin,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Email() vo.Email {
	return u.email
}

func (u *User) Phone() *string {
	return u.phone
}

func (u *User) Role() vo.Role {
	return u.role
}

func (u *User) Status() vo.UserStatus {
	return u.status
}

func (u *User) DepartmentID() *uint {
	return u.departmentID
}

func (u *User) Permissions() []string {
	return copyStrings(u.permissions)
}

func (u *User) LastLogin() *time.Time {
	return u.lastLogin
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// Patch holds a partial update. Pointer fields are unchanged when nil;
// nullable fields may be cleared with an explicit null.
type Patch struct {
	Name         *string
	Email        *string
	Phone        nullable.Field[string]
	Role         *vo.Role
	Status       *vo.UserStatus
	DepartmentID nullable.Field[uint]
	Permissions  *[]string
}

func (u *User) Apply(p Patch) error {
	if p.Name != nil {
		if err := u.setName(*p.Name); err != nil {
			return err
		}
	}
	if p.Email != nil {
		if err := u.setEmail(*p.Email); err != nil {
			return err
		}
	}
	if p.Phone.Set {
		u.phone = p.Phone.Ptr()
	}
	if p.Role != nil {
		if !p.Role.IsValid() {
			return fmt.Errorf("invalid role: %s", *p.Role)
		}
		u.role = *p.Role
	}
	if p.Status != nil {
		if !p.Status.IsValid() {
			return fmt.Errorf("invalid user status: %s", *p.Status)
		}
		u.status = *p.Status
	}
	if p.DepartmentID.Set {
		u.departmentID = p.DepartmentID.Ptr()
	}
	if p.Permissions != nil {
		u.permissions = copyStrings(*p.Permissions)
	}
	u.updatedAt = biztime.StampUTC()
	return nil
}

func (u *User) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("name exceeds maximum length of %d characters", maxNameLength)
	}
	u.name = name
	return nil
}

func (u *User) setEmail(email string) error {
	e, err := vo.NewEmail(email)
	if err != nil {
		return err
	}
	u.email = e
	return nil
}

// Detail is a user joined with its department, nil when unassigned.
type Detail struct {
	User       *User
	Department *department.Department
}

func copyStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
