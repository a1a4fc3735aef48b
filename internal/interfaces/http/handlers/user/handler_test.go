package user

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civicdesk/civicdesk/internal/application/user/dto"
	"github.com/civicdesk/civicdesk/internal/application/user/usecases"
	vo "github.com/civicdesk/civicdesk/internal/domain/user/valueobjects"
	"github.com/civicdesk/civicdesk/internal/interfaces/http/handlers/testutil"
	"github.com/civicdesk/civicdesk/internal/shared/errors"
)

type mockCreateUserUC struct {
	fn func(ctx context.Context, cmd usecases.CreateUserCommand) (*dto.UserDTO, error)
}

func (m *mockCreateUserUC) Execute(ctx context.Context, cmd usecases.CreateUserCommand) (*dto.UserDTO, error) {
	return m.fn(ctx, cmd)
}

type mockUpdateUserUC struct {
	fn func(ctx context.Context, cmd usecases.UpdateUserCommand) (*dto.UserDTO, error)
}

func (m *mockUpdateUserUC) Execute(ctx context.Context, cmd usecases.UpdateUserCommand) (*dto.UserDTO, error) {
	return m.fn(ctx, cmd)
}

type mockListUsersUC struct {
	fn func(ctx context.Context) ([]*dto.UserWithDepartmentDTO, error)
}

func (m *mockListUsersUC) Execute(ctx context.Context) ([]*dto.UserWithDepartmentDTO, error) {
	return m.fn(ctx)
}

func validCreateBody() map[string]any {
	return map[string]any{
		"name":  "Maria Santos",
		"email": "maria.santos@city.gov",
		"role":  "staff-member",
	}
}

func TestHandler_CreateUser(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		var got usecases.CreateUserCommand
		create := &mockCreateUserUC{fn: func(ctx context.Context, cmd usecases.CreateUserCommand) (*dto.UserDTO, error) {
			got = cmd
			return &dto.UserDTO{ID: 3, Name: cmd.Name, Email: cmd.Email, Role: cmd.Role, Status: "active"}, nil
		}}
		h := NewHandler(create, nil, nil, nil, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/api/users", validCreateBody())
		h.CreateUser(c)

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "staff-member", got.Role)
		assert.Nil(t, got.DepartmentID)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		create := &mockCreateUserUC{fn: func(ctx context.Context, cmd usecases.CreateUserCommand) (*dto.UserDTO, error) {
			return nil, errors.NewConflictError("A user with this email already exists")
		}}
		h := NewHandler(create, nil, nil, nil, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/api/users", validCreateBody())
		h.CreateUser(c)

		require.Equal(t, http.StatusConflict, w.Code)
		var body testutil.ErrorBody
		require.NoError(t, testutil.ParseResponse(w, &body))
		assert.Equal(t, "A user with this email already exists", body.Error)
		assert.Empty(t, body.Details)
	})

	t.Run("invalid role and email", func(t *testing.T) {
		h := NewHandler(nil, nil, nil, nil, testutil.NewMockLogger())
		body := validCreateBody()
		body["role"] = "mayor"
		body["email"] = "maria"

		c, w := testutil.NewTestContext(http.MethodPost, "/api/users", body)
		h.CreateUser(c)

		require.Equal(t, http.StatusBadRequest, w.Code)
		var resp testutil.ErrorBody
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.Equal(t, invalidUserMsg, resp.Error)
		assert.ElementsMatch(t, []string{"role", "email"}, resp.Paths())
	})
}

func TestHandler_UpdateUser(t *testing.T) {
	var got usecases.UpdateUserCommand
	update := &mockUpdateUserUC{fn: func(ctx context.Context, cmd usecases.UpdateUserCommand) (*dto.UserDTO, error) {
		got = cmd
		return &dto.UserDTO{ID: cmd.ID}, nil
	}}
	h := NewHandler(nil, update, nil, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPut, "/api/users/4", `{"role":"viewer","departmentId":null,"phone":"555-0101"}`)
	testutil.SetURLParam(c, "id", "4")
	h.UpdateUser(c)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, got.Patch.Role)
	assert.Equal(t, vo.RoleViewer, *got.Patch.Role)
	assert.True(t, got.Patch.DepartmentID.Set)
	assert.True(t, got.Patch.DepartmentID.Null)
	assert.Equal(t, "555-0101", got.Patch.Phone.Value)
	assert.Nil(t, got.Patch.Email)
}

func TestHandler_ListUsers(t *testing.T) {
	list := &mockListUsersUC{fn: func(ctx context.Context) ([]*dto.UserWithDepartmentDTO, error) {
		return nil, errors.NewInternalError("failed to list users")
	}}
	h := NewHandler(nil, nil, nil, list, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/users", nil)
	h.ListUsers(c)

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var body testutil.ErrorBody
	require.NoError(t, testutil.ParseResponse(w, &body))
	assert.Equal(t, "Internal server error occurred", body.Error)
}
