package analytics

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicdesk/civicdesk/internal/application/analytics/dto"
	"github.com/civicdesk/civicdesk/internal/application/analytics/usecases"
	"github.com/civicdesk/civicdesk/internal/interfaces/http/handlers/testutil"
)

type mockGetStatsUC struct {
	result *dto.StatsDTO
}

func (m *mockGetStatsUC) Execute(ctx context.Context) (*dto.StatsDTO, error) {
	return m.result, nil
}

type mockGetTrendUC struct {
	calls []usecases.GetIssuesTrendQuery
}

func (m *mockGetTrendUC) Execute(ctx context.Context, query usecases.GetIssuesTrendQuery) ([]dto.TrendPointDTO, error) {
	m.calls = append(m.calls, query)
	return []dto.TrendPointDTO{}, nil
}

func TestHandler_GetStats(t *testing.T) {
	stats := &mockGetStatsUC{result: &dto.StatsDTO{TotalIssues: 5, PendingIssues: 2, ResolvedIssues: 1, AvgResolutionTime: 2.3}}
	h := NewHandler(stats, nil, nil, 30, 365, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/analytics/stats", nil)
	h.GetStats(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"totalIssues":5,"pendingIssues":2,"resolvedIssues":1,"avgResolutionTime":2.3}`, w.Body.String())
}

func TestHandler_GetIssuesTrend(t *testing.T) {
	trend := &mockGetTrendUC{}
	h := NewHandler(nil, nil, trend, 30, 365, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/analytics/issues-trend", nil)
	h.GetIssuesTrend(c)
	require.Equal(t, http.StatusOK, w.Code)

	c, w = testutil.NewTestContext(http.MethodGet, "/api/analytics/issues-trend", nil)
	testutil.SetQueryParams(c, map[string]string{"days": "7"})
	h.GetIssuesTrend(c)
	require.Equal(t, http.StatusOK, w.Code)

	require.Len(t, trend.calls, 2)
	assert.Equal(t, 30, trend.calls[0].Days)
	assert.Equal(t, 7, trend.calls[1].Days)

	for _, days := range []string{"0", "366", "week"} {
		c, w = testutil.NewTestContext(http.MethodGet, "/api/analytics/issues-trend", nil)
		testutil.SetQueryParams(c, map[string]string{"days": days})
		h.GetIssuesTrend(c)

		require.Equal(t, http.StatusBadRequest, w.Code, "days=%s", days)
		var body testutil.ErrorBody
		require.NoError(t, testutil.ParseResponse(w, &body))
		assert.Equal(t, []string{"days"}, body.Paths())
	}
	assert.Len(t, trend.calls, 2)
}
