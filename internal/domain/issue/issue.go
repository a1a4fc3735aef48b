package issue

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/civicdesk/civicdesk/internal/domain/issue/valueobjects"
	"github.com/civicdesk/civicdesk/internal/shared/biztime"
	"github.com/civicdesk/civicdesk/internal/shared/nullable"
)

const (
	maxTitleLength        = 200
	maxDescriptionLength  = 5000
	maxLocationLength     = 255
	maxReporterNameLength = 100
)

// Issue is a problem reported by a resident.
type Issue struct {
	id                  uint
	title               string
	description         *string
	status              vo.IssueStatus
	priority            vo.Priority
	location            string
	reporterName        string
	reporterEmail       *string
	reporterPhone       *string
	assignedToID        *uint
	departmentID        *uint
	estimatedResolution *time.Time
	resolvedAt          *time.Time
	notes               *string
	attachments         []string
	createdAt           time.Time
	updatedAt           time.Time
}

// Draft carries the writable fields of an issue. Empty Status and Priority
// select the defaults.
type Draft struct {
	Title               string
	Description         *string
	Status              vo.IssueStatus
	Priority            vo.Priority
	Location            string
	ReporterName        string
	ReporterEmail       *string
	ReporterPhone       *string
	AssignedToID        *uint
	DepartmentID        *uint
	EstimatedResolution *time.Time
	Notes               *string
	Attachments         []string
}

// NewIssue opens an issue, pending and medium priority unless the draft
// says otherwise. An issue created already resolved is stamped as such.
func NewIssue(d Draft) (*Issue, error) {
	if d.Status == "" {
		d.Status = vo.StatusPending
	}
	if d.Priority == "" {
		d.Priority = vo.PriorityMedium
	}
	if err := validateDraft(d); err != nil {
		return nil, err
	}

	now := biztime.StampUTC()
	i := fromDraft(d)
	i.createdAt = now
	i.updatedAt = now
	if i.status.IsResolved() {
		i.resolvedAt = &now
	}
	return i, nil
}

func ReconstructIssue(
	id uint,
	d Draft,
	resolvedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Issue, error) {
	if id == 0 {
		return nil, fmt.Errorf("issue ID cannot be zero")
	}
	if !d.Status.IsValid() {
		return nil, fmt.Errorf("issue %d: invalid status %q", id, d.Status)
	}
	if !d.Priority.IsValid() {
		return nil, fmt.Errorf("issue %d: invalid priority %q", id, d.Priority)
	}
	i := fromDraft(d)
	i.id = id
	i.resolvedAt = resolvedAt
	i.createdAt = createdAt
	i.updatedAt = updatedAt
	return i, nil
}

func fromDraft(d Draft) *Issue {
	return &Issue{
		title:               strings.TrimSpace(d.Title),
		description:         d.Description,
		status:              d.Status,
		priority:            d.Priority,
		location:            strings.TrimSpace(d.Location),
		reporterName:        strings.TrimSpace(d.ReporterName),
		reporterEmail:       d.ReporterEmail,
		reporterPhone:       d.ReporterPhone,
		assignedToID:        d.AssignedToID,
		departmentID:        d.DepartmentID,
		estimatedResolution: d.EstimatedResolution,
		notes:               d.Notes,
		attachments:         copyStrings(d.Attachments),
	}
}

func validateDraft(d Draft) error {
	if err := validateTitle(d.Title); err != nil {
		return err
	}
	if err := validateLocation(d.Location); err != nil {
		return err
	}
	if err := validateReporterName(d.ReporterName); err != nil {
		return err
	}
	if d.Description != nil && len(*d.Description) > maxDescriptionLength {
		return fmt.Errorf("description exceeds maximum length of %d characters", maxDescriptionLength)
	}
	if !d.Status.IsValid() {
		return fmt.Errorf("invalid status: %s", d.Status)
	}
	if !d.Priority.IsValid() {
		return fmt.Errorf("invalid priority: %s", d.Priority)
	}
	return nil
}

func validateTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("title is required")
	}
	if len(title) > maxTitleLength {
		return fmt.Errorf("title exceeds maximum length of %d characters", maxTitleLength)
	}
	return nil
}

func validateLocation(location string) error {
	location = strings.TrimSpace(location)
	if location == "" {
		return fmt.Errorf("location is required")
	}
	if len(location) > maxLocationLength {
		return fmt.Errorf("location exceeds maximum length of %d characters", maxLocationLength)
	}
	return nil
}

func validateReporterName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("reporter name is required")
	}
	if len(name) > maxReporterNameLength {
		return fmt.Errorf("reporter name exceeds maximum length of %d characters", maxReporterNameLength)
	}
	return nil
}

func (i *Issue) ID() uint {
	return i.id
}

func (i *Issue) Title() string {
	return i.title
}

func (i *Issue) Description() *string {
	return i.description
}

func (i *Issue) Status() vo.IssueStatus {
	return i.status
}

func (i *Issue) Priority() vo.Priority {
	return i.priority
}

func (i *Issue) Location() string {
	return i.location
}

func (i *Issue) ReporterName() string {
	return i.reporterName
}

func (i *Issue) ReporterEmail() *string {
	return i.reporterEmail
}

func (i *Issue) ReporterPhone() *string {
	return i.reporterPhone
}

func (i *Issue) AssignedToID() *uint {
	return i.assignedToID
}

func (i *Issue) DepartmentID() *uint {
	return i.departmentID
}

func (i *Issue) EstimatedResolution() *time.Time {
	return i.estimatedResolution
}

func (i *Issue) ResolvedAt() *time.Time {
	return i.resolvedAt
}

func (i *Issue) Notes() *string {
	return i.notes
}

func (i *Issue) Attachments() []string {
	return copyStrings(i.attachments)
}

func (i *Issue) CreatedAt() time.Time {
	return i.createdAt
}

func (i *Issue) UpdatedAt() time.Time {
	return i.updatedAt
}

func (i *Issue) SetID(id uint) error {
	if i.id != 0 {
		return fmt.Errorf("issue ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("issue ID cannot be zero")
	}
	i.id = id
	return nil
}

// Patch is a partial update. Pointer fields are unchanged when nil;
// nullable fields may also be cleared with an explicit null.
type Patch struct {
	Title               *string
	Description         nullable.Field[string]
	Status              *vo.IssueStatus
	Priority            *vo.Priority
	Location            *string
	ReporterName        *string
	ReporterEmail       nullable.Field[string]
	ReporterPhone       nullable.Field[string]
	AssignedToID        nullable.Field[uint]
	DepartmentID        nullable.Field[uint]
	EstimatedResolution nullable.Field[time.Time]
	Notes               nullable.Field[string]
	Attachments         *[]string
}

// Apply validates the whole patch before touching the issue, so a
// rejected patch leaves it unchanged. With strict set, status changes
// must follow the transition graph.
func (i *Issue) Apply(p Patch, strict bool) error {
	if err := i.validatePatch(p, strict); err != nil {
		return err
	}

	if p.Title != nil {
		i.title = strings.TrimSpace(*p.Title)
	}
	if p.Description.Set {
		i.description = p.Description.Ptr()
	}
	if p.Priority != nil {
		i.priority = *p.Priority
	}
	if p.Location != nil {
		i.location = strings.TrimSpace(*p.Location)
	}
	if p.ReporterName != nil {
		i.reporterName = strings.TrimSpace(*p.ReporterName)
	}
	if p.ReporterEmail.Set {
		i.reporterEmail = p.ReporterEmail.Ptr()
	}
	if p.ReporterPhone.Set {
		i.reporterPhone = p.ReporterPhone.Ptr()
	}
	if p.AssignedToID.Set {
		i.assignedToID = p.AssignedToID.Ptr()
	}
	if p.DepartmentID.Set {
		i.departmentID = p.DepartmentID.Ptr()
	}
	if p.EstimatedResolution.Set {
		i.estimatedResolution = p.EstimatedResolution.Ptr()
	}
	if p.Notes.Set {
		i.notes = p.Notes.Ptr()
	}
	if p.Attachments != nil {
		i.attachments = copyStrings(*p.Attachments)
	}

	now := biztime.StampUTC()
	if p.Status != nil {
		i.setStatus(*p.Status, now)
	}
	i.updatedAt = now
	return nil
}

func (i *Issue) validatePatch(p Patch, strict bool) error {
	if p.Title != nil {
		if err := validateTitle(*p.Title); err != nil {
			return err
		}
	}
	if p.Location != nil {
		if err := validateLocation(*p.Location); err != nil {
			return err
		}
	}
	if p.ReporterName != nil {
		if err := validateReporterName(*p.ReporterName); err != nil {
			return err
		}
	}
	if p.Description.HasValue() && len(p.Description.Value) > maxDescriptionLength {
		return fmt.Errorf("description exceeds maximum length of %d characters", maxDescriptionLength)
	}
	if p.Priority != nil && !p.Priority.IsValid() {
		return fmt.Errorf("invalid priority: %s", *p.Priority)
	}
	if p.Status != nil {
		if !p.Status.IsValid() {
			return fmt.Errorf("invalid status: %s", *p.Status)
		}
		if strict && !i.status.CanTransitionTo(*p.Status) {
			return &TransitionError{From: i.status, To: *p.Status}
		}
	}
	return nil
}

// setStatus stamps resolvedAt on entering resolved and clears it on leaving.
func (i *Issue) setStatus(next vo.IssueStatus, now time.Time) {
	switch {
	case next.IsResolved() && !i.status.IsResolved():
		i.resolvedAt = &now
	case !next.IsResolved():
		i.resolvedAt = nil
	}
	i.status = next
}

// TransitionError reports a status change outside the transition graph.
type TransitionError struct {
	From vo.IssueStatus
	To   vo.IssueStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot transition from %s to %s", e.From, e.To)
}

func copyStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
