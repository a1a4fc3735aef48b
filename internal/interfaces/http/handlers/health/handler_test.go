package health

import (
	"context"
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicdesk/civicdesk/internal/interfaces/http/handlers/testutil"
)

type fakePinger struct {
	err error
}

func (p fakePinger) PingContext(ctx context.Context) error {
	return p.err
}

func TestHandler_HealthCheck(t *testing.T) {
	c, w := testutil.NewTestContext(http.MethodGet, "/health", nil)
	NewHandler(fakePinger{}, "civicdesk", testutil.NewMockLogger()).HealthCheck(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy","service":"civicdesk"}`, w.Body.String())

	c, w = testutil.NewTestContext(http.MethodGet, "/health", nil)
	NewHandler(fakePinger{err: stderrors.New("connection refused")}, "civicdesk", testutil.NewMockLogger()).HealthCheck(c)

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	var body testutil.ErrorBody
	require.NoError(t, testutil.ParseResponse(w, &body))
	assert.Equal(t, "database unavailable", body.Error)
}
