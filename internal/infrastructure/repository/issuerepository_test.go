package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicdesk/civicdesk/internal/domain/issue"
	issuevo "github.com/civicdesk/civicdesk/internal/domain/issue/valueobjects"
	"github.com/civicdesk/civicdesk/internal/shared/mapper"
	"github.com/civicdesk/civicdesk/internal/shared/nullable"
)

func titles(details []*issue.Detail) []string {
	return mapper.MapSlice(details, func(d *issue.Detail) string { return d.Issue.Title() })
}

func TestIssueRepository_CreateAndGetDetail(t *testing.T) {
	f := newFixture(t)
	ctx := t.Context()
	d := f.department(t, "Public Works", 4)
	u := f.user(t, "John", "john@city.gov", nil)

	created := f.issue(t, "Pothole on Main", withDepartment(d.ID()), withAssignee(u.ID()), withDescription("Deep hole"))
	assert.NotZero(t, created.ID())

	detail, err := f.issues.GetDetail(ctx, created.ID())
	require.NoError(t, err)
	require.NotNil(t, detail)
	assert.Equal(t, "Pothole on Main", detail.Issue.Title())
	assert.Equal(t, issuevo.StatusPending, detail.Issue.Status())
	assert.Equal(t, issuevo.PriorityMedium, detail.Issue.Priority())
	require.NotNil(t, detail.Issue.Description())
	assert.Equal(t, "Deep hole", *detail.Issue.Description())
	require.NotNil(t, detail.Assignee)
	assert.Equal(t, "John", detail.Assignee.Name())
	require.NotNil(t, detail.Department)
	assert.Equal(t, "Public Works", detail.Department.Name())

	missing, err := f.issues.GetDetail(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestIssueRepository_SearchNonASCII(t *testing.T) {
	f := newFixture(t)
	ctx := t.Context()

	f.issue(t, "Fountain leak", withLocation("Élysée Plaza"))
	f.issue(t, "Loose paving", withDescription("Right in front of the café"))

	cases := []struct {
		name   string
		filter issue.Filter
		want   []string
	}{
		{"exact spelling", issue.Filter{Search: "Élysée", SearchFolded: "élysée"}, []string{"Fountain leak"}},
		{"ascii part in other case", issue.Filter{Search: "LYSÉE PL", SearchFolded: "lysée pl"}, []string{"Fountain leak"}},
		{"upper case against lower case text", issue.Filter{Search: "CAFÉ", SearchFolded: "café"}, []string{"Loose paving"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			list, err := f.issues.List(ctx, tc.filter)
			require.NoError(t, err)
			assert.Equal(t, tc.want, titles(list))
		})
	}
}

func TestIssueRepository_ListFilters(t *testing.T) {
	f := newFixture(t)
	ctx := t.Context()
	works := f.department(t, "Public Works", 4)
	parks := f.department(t, "Parks", 2)
	u := f.user(t, "John", "john@city.gov", nil)

	f.issue(t, "Pothole on Main", withDepartment(works.ID()), withPriority(issuevo.PriorityHigh))
	f.issue(t, "Broken swing", withDepartment(parks.ID()), withStatus(issuevo.StatusUrgent))
	f.issue(t, "Street light out", withLocation("Elm & 5th"), withAssignee(u.ID()))
	f.issue(t, "Graffiti", withDescription("Paint near the POTHOLE repair"), withStatus(issuevo.StatusResolved))

	t.Run("no filter returns all newest first", func(t *testing.T) {
		list, err := f.issues.List(ctx, issue.Filter{})
		require.NoError(t, err)
		assert.Equal(t, []string{"Graffiti", "Street light out", "Broken swing", "Pothole on Main"}, titles(list))
	})

	t.Run("status", func(t *testing.T) {
		status := issuevo.StatusUrgent
		list, err := f.issues.List(ctx, issue.Filter{Status: &status})
		require.NoError(t, err)
		assert.Equal(t, []string{"Broken swing"}, titles(list))
	})

	t.Run("priority and department combine with AND", func(t *testing.T) {
		priority := issuevo.PriorityHigh
		deptID := parks.ID()
		list, err := f.issues.List(ctx, issue.Filter{Priority: &priority, DepartmentID: &deptID})
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("assignee", func(t *testing.T) {
		userID := u.ID()
		list, err := f.issues.List(ctx, issue.Filter{AssignedToID: &userID})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "Street light out", list[0].Issue.Title())
		require.NotNil(t, list[0].Assignee)
		assert.Nil(t, list[0].Department)
	})

	t.Run("search matches title or description case-insensitively", func(t *testing.T) {
		list, err := f.issues.List(ctx, issue.Filter{Search: "pothole"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Graffiti", "Pothole on Main"}, titles(list))
	})

	t.Run("search matches location", func(t *testing.T) {
		list, err := f.issues.List(ctx, issue.Filter{Search: "elm & 5th"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Street light out"}, titles(list))
	})

	t.Run("search is case-insensitive for any case", func(t *testing.T) {
		list, err := f.issues.List(ctx, issue.Filter{Search: "GRAFFITI", SearchFolded: "graffiti"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Graffiti"}, titles(list))
	})

	t.Run("wildcards are literal", func(t *testing.T) {
		list, err := f.issues.List(ctx, issue.Filter{Search: "%"})
		require.NoError(t, err)
		assert.Empty(t, list)

		list, err = f.issues.List(ctx, issue.Filter{Search: "pot_ole"})
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("limit and offset", func(t *testing.T) {
		list, err := f.issues.List(ctx, issue.Filter{Limit: 2, Offset: 1})
		require.NoError(t, err)
		assert.Equal(t, []string{"Street light out", "Broken swing"}, titles(list))

		list, err = f.issues.List(ctx, issue.Filter{Limit: 10, Offset: 10})
		require.NoError(t, err)
		assert.NotNil(t, list)
		assert.Empty(t, list)
	})
}

func TestIssueRepository_ListUnassigned(t *testing.T) {
	f := newFixture(t)
	ctx := t.Context()
	d := f.department(t, "Water", 2)
	u := f.user(t, "John", "john@city.gov", nil)

	f.issue(t, "Leak", withDepartment(d.ID()))
	f.issue(t, "Assigned", withAssignee(u.ID()))
	f.issue(t, "Flooding")

	list, err := f.issues.ListUnassigned(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Flooding", "Leak"}, titles(list))
	require.NotNil(t, list[1].Department)
	assert.Equal(t, "Water", list[1].Department.Name())
}

func TestIssueRepository_Assign(t *testing.T) {
	f := newFixture(t)
	ctx := t.Context()
	d := f.department(t, "Public Works", 4)
	u := f.user(t, "John", "john@city.gov", nil)
	created := f.issue(t, "Fixed already", withStatus(issuevo.StatusResolved))
	require.NotNil(t, created.ResolvedAt())

	assignment, err := issue.NewAssignment(u.ID(), d.ID())
	require.NoError(t, err)

	ok, err := f.issues.Assign(ctx, created.ID(), assignment)
	require.NoError(t, err)
	assert.True(t, ok)

	found, err := f.issues.GetByID(ctx, created.ID())
	require.NoError(t, err)
	assert.Equal(t, issuevo.StatusInProgress, found.Status())
	assert.Equal(t, u.ID(), *found.AssignedToID())
	assert.Equal(t, d.ID(), *found.DepartmentID())
	assert.Nil(t, found.ResolvedAt())

	t.Run("same assignment twice still matches", func(t *testing.T) {
		ok, err := f.issues.Assign(ctx, created.ID(), assignment)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("missing issue writes nothing", func(t *testing.T) {
		ok, err := f.issues.Assign(ctx, 9999, assignment)
		require.NoError(t, err)
		assert.False(t, ok)

		exists, err := f.issues.Exists(ctx, 9999)
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestIssueRepository_UpdateClearsFields(t *testing.T) {
	f := newFixture(t)
	ctx := t.Context()
	d := f.department(t, "Parks", 2)
	created := f.issue(t, "Fallen tree", withDepartment(d.ID()), withDescription("Across the path"))

	resolved := issuevo.StatusResolved
	require.NoError(t, created.Apply(issue.Patch{
		Description:  nullable.Null[string](),
		DepartmentID: nullable.Null[uint](),
		Status:       &resolved,
	}, false))
	require.NoError(t, f.issues.Update(ctx, created))

	found, err := f.issues.GetByID(ctx, created.ID())
	require.NoError(t, err)
	assert.Nil(t, found.Description())
	assert.Nil(t, found.DepartmentID())
	assert.Equal(t, issuevo.StatusResolved, found.Status())
	assert.NotNil(t, found.ResolvedAt())
	assert.Equal(t, created.CreatedAt().UnixMilli(), found.CreatedAt().UnixMilli())
}

func TestCommentRepository(t *testing.T) {
	f := newFixture(t)
	ctx := t.Context()
	u := f.user(t, "John", "john@city.gov", nil)
	target := f.issue(t, "Noise complaint")
	other := f.issue(t, "Other")

	for _, text := range []string{"first", "second"} {
		c, err := issue.NewComment(target.ID(), u.ID(), text, text == "second")
		require.NoError(t, err)
		require.NoError(t, f.comments.Create(ctx, c))
		assert.NotZero(t, c.ID())
	}
	c, err := issue.NewComment(other.ID(), u.ID(), "elsewhere", false)
	require.NoError(t, err)
	require.NoError(t, f.comments.Create(ctx, c))

	list, err := f.comments.ListByIssueID(ctx, target.ID())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "first", list[0].Comment())
	assert.False(t, list[0].IsInternal())
	assert.Equal(t, "second", list[1].Comment())
	assert.True(t, list[1].IsInternal())

	none, err := f.comments.ListByIssueID(ctx, 9999)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
