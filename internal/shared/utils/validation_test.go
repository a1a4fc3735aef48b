package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicdesk/civicdesk/internal/shared/errors"
	"github.com/civicdesk/civicdesk/internal/shared/nullable"
)

type sampleRequest struct {
	Name  string                 `json:"name" binding:"required,notblank,max=10"`
	Staff int                    `json:"staff" binding:"required,min=1"`
	Email nullable.Field[string] `json:"email" binding:"omitempty,email"`
	Tags  []string               `json:"tags" binding:"omitempty,dive,max=3"`
}

func bindBody(t *testing.T, body string) error {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var req sampleRequest
	return BindJSON(c, &req, "Invalid sample data")
}

func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
	assert.Equal(t, "Invalid sample data", appErr.Message)

	out := make(map[string]string, len(appErr.Fields))
	for _, f := range appErr.Fields {
		out[f.Path] = f.Message
	}
	return out
}

func TestBindJSON_Valid(t *testing.T) {
	assert.NoError(t, bindBody(t, `{"name":"Parks","staff":3,"email":null}`))
	assert.NoError(t, bindBody(t, `{"name":"Parks","staff":3,"email":"a@b.org","tags":["a"]}`))
}

func TestBindJSON_CollectsEveryViolation(t *testing.T) {
	fields := fieldsOf(t, bindBody(t, `{"name":"   ","staff":0,"email":"nope","tags":["long"]}`))

	assert.Contains(t, fields, "name")
	assert.Contains(t, fields, "staff")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "tags[0]")
}

func TestBindJSON_TypeErrorReportsFieldPath(t *testing.T) {
	fields := fieldsOf(t, bindBody(t, `{"name":"Parks","staff":"four"}`))

	require.Contains(t, fields, "staff")
	assert.Contains(t, fields["staff"], "expected integer")
}

func TestBindJSON_MalformedBody(t *testing.T) {
	fields := fieldsOf(t, bindBody(t, `{"name":`))
	assert.Contains(t, fields, BodyPath)

	fields = fieldsOf(t, bindBody(t, ``))
	assert.Equal(t, "request body is required", fields[BodyPath])
}
