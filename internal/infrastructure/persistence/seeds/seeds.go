// Package seeds loads the embedded demo data set into an empty database.
package seeds

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/civicdesk/civicdesk/internal/domain/department"
	"github.com/civicdesk/civicdesk/internal/domain/issue"
	issuevo "github.com/civicdesk/civicdesk/internal/domain/issue/valueobjects"
	"github.com/civicdesk/civicdesk/internal/domain/user"
	uservo "github.com/civicdesk/civicdesk/internal/domain/user/valueobjects"
	"github.com/civicdesk/civicdesk/internal/shared/db"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
)

//go:embed demo.yaml
var demoYAML []byte

// ErrAlreadySeeded is returned when the database already holds departments.
var ErrAlreadySeeded = errors.New("database already contains data")

type Fixture struct {
	Departments []DepartmentSeed `yaml:"departments"`
	Users       []UserSeed       `yaml:"users"`
	Issues      []IssueSeed      `yaml:"issues"`
}

type DepartmentSeed struct {
	Name        string   `yaml:"name"`
	Head        string   `yaml:"head"`
	Staff       int      `yaml:"staff"`
	Specialties []string `yaml:"specialties"`
}

type UserSeed struct {
	Name        string   `yaml:"name"`
	Email       string   `yaml:"email"`
	Phone       *string  `yaml:"phone"`
	Role        string   `yaml:"role"`
	Department  string   `yaml:"department"`
	Permissions []string `yaml:"permissions"`
}

type IssueSeed struct {
	Title         string  `yaml:"title"`
	Description   *string `yaml:"description"`
	Status        string  `yaml:"status"`
	Priority      string  `yaml:"priority"`
	Location      string  `yaml:"location"`
	ReporterName  string  `yaml:"reporter_name"`
	ReporterEmail *string `yaml:"reporter_email"`
	ReporterPhone *string `yaml:"reporter_phone"`
	Department    string  `yaml:"department"`
	Assignee      string  `yaml:"assignee"`
}

// Result counts the rows written.
type Result struct {
	Departments int
	Users       int
	Issues      int
}

// Demo parses the embedded demo fixture.
func Demo() (*Fixture, error) {
	return Parse(demoYAML)
}

func Parse(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed fixture: %w", err)
	}
	return &f, nil
}

type Seeder struct {
	departments department.Repository
	users       user.Repository
	issues      issue.Repository
	tx          db.Transactor
	logger      logger.Interface
}

func NewSeeder(
	departments department.Repository,
	users user.Repository,
	issues issue.Repository,
	tx db.Transactor,
	log logger.Interface,
) *Seeder {
	return &Seeder{
		departments: departments,
		users:       users,
		issues:      issues,
		tx:          tx,
		logger:      log,
	}
}

// Seed writes the fixture in one transaction. It refuses to run against a
// database that already has departments.
func (s *Seeder) Seed(ctx context.Context, f *Fixture) (*Result, error) {
	result := &Result{}

	err := s.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		existing, err := s.departments.List(ctx)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			return ErrAlreadySeeded
		}

		deptIDs := make(map[string]uint, len(f.Departments))
		for _, seed := range f.Departments {
			d, err := department.NewDepartment(seed.Name, seed.Head, seed.Staff, seed.Specialties)
			if err != nil {
				return fmt.Errorf("department %q: %w", seed.Name, err)
			}
			if err := s.departments.Create(ctx, d); err != nil {
				return err
			}
			deptIDs[d.Name()] = d.ID()
			result.Departments++
		}

		userIDs := make(map[string]uint, len(f.Users))
		for _, seed := range f.Users {
			deptID, err := lookup(deptIDs, seed.Department, "department")
			if err != nil {
				return fmt.Errorf("user %q: %w", seed.Email, err)
			}
			u, err := user.NewUser(user.Draft{
				Name:         seed.Name,
				Email:        seed.Email,
				Phone:        seed.Phone,
				Role:         uservo.Role(seed.Role),
				DepartmentID: deptID,
				Permissions:  seed.Permissions,
			})
			if err != nil {
				return fmt.Errorf("user %q: %w", seed.Email, err)
			}
			if err := s.users.Create(ctx, u); err != nil {
				return err
			}
			userIDs[u.Email().String()] = u.ID()
			result.Users++
		}

		for _, seed := range f.Issues {
			deptID, err := lookup(deptIDs, seed.Department, "department")
			if err != nil {
				return fmt.Errorf("issue %q: %w", seed.Title, err)
			}
			assigneeID, err := lookup(userIDs, seed.Assignee, "assignee")
			if err != nil {
				return fmt.Errorf("issue %q: %w", seed.Title, err)
			}
			i, err := issue.NewIssue(issue.Draft{
				Title:         seed.Title,
				Description:   seed.Description,
				Status:        issuevo.IssueStatus(seed.Status),
				Priority:      issuevo.Priority(seed.Priority),
				Location:      seed.Location,
				ReporterName:  seed.ReporterName,
				ReporterEmail: seed.ReporterEmail,
				ReporterPhone: seed.ReporterPhone,
				AssignedToID:  assigneeID,
				DepartmentID:  deptID,
				Attachments:   []string{},
			})
			if err != nil {
				return fmt.Errorf("issue %q: %w", seed.Title, err)
			}
			if err := s.issues.Create(ctx, i); err != nil {
				return err
			}
			result.Issues++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Infow("seed data created",
		"departments", result.Departments,
		"users", result.Users,
		"issues", result.Issues)
	return result, nil
}

// lookup resolves an optional reference; an empty key means no reference.
func lookup(ids map[string]uint, key, kind string) (*uint, error) {
	if key == "" {
		return nil, nil
	}
	id, ok := ids[key]
	if !ok {
		return nil, fmt.Errorf("unknown %s %q", kind, key)
	}
	return &id, nil
}
