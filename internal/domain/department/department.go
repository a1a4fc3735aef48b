package department

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/civicdesk/civicdesk/internal/shared/biztime"
)

const (
	maxNameLength = 100
	maxStaff      = 10000

	// workloadPerIssue is the percentage one open issue adds per staff member.
	workloadPerIssue = 20
	maxWorkload      = 100
)

type Department struct {
	id          uint
	name        string
	head        string
	staff       int
	specialties []string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewDepartment(name, head string, staff int, specialties []string) (*Department, error) {
	d := &Department{}
	if err := d.setName(name); err != nil {
		return nil, err
	}
	if err := d.setHead(head); err != nil {
		return nil, err
	}
	if err := d.setStaff(staff); err != nil {
		return nil, err
	}
	d.specialties = copyStrings(specialties)

	now := biztime.StampUTC()
	d.createdAt = now
	d.updatedAt = now
	return d, nil
}

func ReconstructDepartment(
	id uint,
	name, head string,
	staff int,
	specialties []string,
	createdAt, updatedAt time.Time,
) (*Department, error) {
	if id == 0 {
		return nil, fmt.Errorf("department ID cannot be zero")
	}
	// staff is the workload divisor; refuse rows that would break it.
	if staff < 1 {
		return nil, fmt.Errorf("department %d has invalid staff count %d", id, staff)
	}
	return &Department{
		id:          id,
		name:        name,
		head:        head,
		staff:       staff,
		specialties: copyStrings(specialties),
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (d *Department) ID() uint {
	return d.id
}

func (d *Department) Name() string {
	return d.name
}

func (d *Department) Head() string {
	return d.head
}

func (d *Department) Staff() int {
	return d.staff
}

func (d *Department) Specialties() []string {
	return copyStrings(d.specialties)
}

func (d *Department) CreatedAt() time.Time {
	return d.createdAt
}

func (d *Department) UpdatedAt() time.Time {
	return d.updatedAt
}

func (d *Department) SetID(id uint) error {
	if d.id != 0 {
		return fmt.Errorf("department ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("department ID cannot be zero")
	}
	d.id = id
	return nil
}

// Patch holds the fields of a partial update; nil means unchanged.
type Patch struct {
	Name        *string
	Head        *string
	Staff       *int
	Specialties *[]string
}

func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Head == nil && p.Staff == nil && p.Specialties == nil
}

// Apply merges p into the department and refreshes updatedAt.
func (d *Department) Apply(p Patch) error {
	if p.Name != nil {
		if err := d.setName(*p.Name); err != nil {
			return err
		}
	}
	if p.Head != nil {
		if err := d.setHead(*p.Head); err != nil {
			return err
		}
	}
	if p.Staff != nil {
		if err := d.setStaff(*p.Staff); err != nil {
			return err
		}
	}
	if p.Specialties != nil {
		d.specialties = copyStrings(*p.Specialties)
	}
	d.updatedAt = biztime.StampUTC()
	return nil
}

// Workload converts a count of open issues into a saturating percentage:
// every open issue adds 20 points per staff member, capped at 100.
func (d *Department) Workload(activeIssues int64) float64 {
	if activeIssues <= 0 || d.staff < 1 {
		return 0
	}
	return math.Min(float64(activeIssues)*workloadPerIssue/float64(d.staff), maxWorkload)
}

func (d *Department) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("department name is required")
	}
	if len(name) > maxNameLength {
		return fmt.Errorf("department name exceeds maximum length of %d characters", maxNameLength)
	}
	d.name = name
	return nil
}

func (d *Department) setHead(head string) error {
	head = strings.TrimSpace(head)
	if head == "" {
		return fmt.Errorf("department head is required")
	}
	if len(head) > maxNameLength {
		return fmt.Errorf("department head exceeds maximum length of %d characters", maxNameLength)
	}
	d.head = head
	return nil
}

func (d *Department) setStaff(staff int) error {
	if staff < 1 || staff > maxStaff {
		return fmt.Errorf("staff must be between 1 and %d", maxStaff)
	}
	d.staff = staff
	return nil
}

func copyStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
