package valueobjects

import "fmt"

type IssueStatus string

const (
	StatusPending    IssueStatus = "pending"
	StatusInProgress IssueStatus = "in-progress"
	StatusResolved   IssueStatus = "resolved"
	StatusUrgent     IssueStatus = "urgent"
)

var validIssueStatuses = map[IssueStatus]bool{
	StatusPending:    true,
	StatusInProgress: true,
	StatusResolved:   true,
	StatusUrgent:     true,
}

// issueStatusTransitions is only enforced when strict transitions are enabled.
var issueStatusTransitions = map[IssueStatus][]IssueStatus{
	StatusPending: {
		StatusInProgress,
		StatusUrgent,
		StatusResolved,
	},
	StatusUrgent: {
		StatusInProgress,
		StatusResolved,
		StatusPending,
	},
	StatusInProgress: {
		StatusResolved,
		StatusPending,
		StatusUrgent,
	},
	StatusResolved: {
		StatusPending,
	},
}

// AllStatuses lists the statuses in their display order.
func AllStatuses() []IssueStatus {
	return []IssueStatus{StatusPending, StatusInProgress, StatusResolved, StatusUrgent}
}

func (s IssueStatus) String() string {
	return string(s)
}

func (s IssueStatus) IsValid() bool {
	return validIssueStatuses[s]
}

func (s IssueStatus) IsResolved() bool {
	return s == StatusResolved
}

// IsActive reports whether the issue counts toward a department's workload.
func (s IssueStatus) IsActive() bool {
	return s == StatusPending || s == StatusInProgress
}

// CountsAsPending reports whether the issue is awaiting work in dashboard totals.
func (s IssueStatus) CountsAsPending() bool {
	return s == StatusPending || s == StatusUrgent
}

func (s IssueStatus) CanTransitionTo(next IssueStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range issueStatusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func NewIssueStatus(s string) (IssueStatus, error) {
	status := IssueStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid issue status: %s", s)
	}
	return status, nil
}

// ActiveStatuses are the statuses counted by IsActive.
func ActiveStatuses() []IssueStatus {
	return []IssueStatus{StatusPending, StatusInProgress}
}

// PendingStatuses are the statuses counted by CountsAsPending.
func PendingStatuses() []IssueStatus {
	return []IssueStatus{StatusPending, StatusUrgent}
}
