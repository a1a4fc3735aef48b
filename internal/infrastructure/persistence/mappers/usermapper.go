package mappers

import (
	"fmt"

	"github.com/civicdesk/civicdesk/internal/domain/user"
	vo "github.com/civicdesk/civicdesk/internal/domain/user/valueobjects"
	"github.com/civicdesk/civicdesk/internal/infrastructure/persistence/models"
	"github.com/civicdesk/civicdesk/internal/shared/biztime"
	"github.com/civicdesk/civicdesk/internal/shared/utils/jsonutil"
)

// UserMapper converts between user entities and persistence models.
type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
}

type userMapper struct{}

func NewUserMapper() UserMapper {
	return &userMapper{}
}

func (m *userMapper) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Name:         u.Name(),
		Email:        u.Email().String(),
		Phone:        u.Phone(),
		Role:         u.Role().String(),
		Status:       u.Status().String(),
		DepartmentID: u.DepartmentID(),
		Permissions:  jsonutil.StringsToJSON(u.Permissions()),
		LastLogin:    millisPtr(u.LastLogin()),
		CreatedAt:    u.CreatedAt().UnixMilli(),
		UpdatedAt:    u.UpdatedAt().UnixMilli(),
	}
}

func (m *userMapper) ToDomain(model *models.UserModel) (*user.User, error) {
	permissions, err := jsonutil.JSONToStrings(model.Permissions)
	if err != nil {
		return nil, fmt.Errorf("user %d permissions: %w", model.ID, err)
	}
	return user.ReconstructUser(
		model.ID,
		user.Draft{
			Name:         model.Name,
			Email:        model.Email,
			Phone:        model.Phone,
			Role:         vo.Role(model.Role),
			Status:       vo.UserStatus(model.Status),
			DepartmentID: model.DepartmentID,
			Permissions:  permissions,
		},
		timePtr(model.LastLogin),
		biztime.FromMillis(model.CreatedAt),
		biztime.FromMillis(model.UpdatedAt),
	)
}
