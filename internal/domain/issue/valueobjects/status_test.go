package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIssueStatus(t *testing.T) {
	for _, s := range []string{"pending", "in-progress", "resolved", "urgent"} {
		status, err := NewIssueStatus(s)
		require.NoError(t, err)
		assert.Equal(t, s, status.String())
	}

	_, err := NewIssueStatus("in_progress")
	assert.Error(t, err)
	_, err = NewIssueStatus("")
	assert.Error(t, err)
}

func TestIssueStatus_Buckets(t *testing.T) {
	tests := []struct {
		status          IssueStatus
		active          bool
		countsAsPending bool
	}{
		{StatusPending, true, true},
		{StatusInProgress, true, false},
		{StatusUrgent, false, true},
		{StatusResolved, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			assert.Equal(t, tt.active, tt.status.IsActive())
			assert.Equal(t, tt.countsAsPending, tt.status.CountsAsPending())
		})
	}
}

func TestIssueStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from IssueStatus
		to   IssueStatus
		want bool
	}{
		{StatusPending, StatusInProgress, true},
		{StatusPending, StatusResolved, true},
		{StatusUrgent, StatusPending, true},
		{StatusInProgress, StatusUrgent, true},
		{StatusResolved, StatusPending, true},
		{StatusResolved, StatusInProgress, false},
		{StatusResolved, StatusUrgent, false},
		{StatusResolved, StatusResolved, true},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.to.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestNewPriority(t *testing.T) {
	p, err := NewPriority("critical")
	require.NoError(t, err)
	assert.Equal(t, PriorityCritical, p)

	_, err = NewPriority("urgent")
	assert.Error(t, err)
}
