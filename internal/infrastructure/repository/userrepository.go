package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/civicdesk/civicdesk/internal/domain/user"
	"github.com/civicdesk/civicdesk/internal/infrastructure/persistence/mappers"
	"github.com/civicdesk/civicdesk/internal/infrastructure/persistence/models"
	"github.com/civicdesk/civicdesk/internal/shared/db"
	"github.com/civicdesk/civicdesk/internal/shared/utils/setutil"
)

type UserRepository struct {
	db               *gorm.DB
	mapper           mappers.UserMapper
	departmentMapper mappers.DepartmentMapper
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{
		db:               db,
		mapper:           mappers.NewUserMapper(),
		departmentMapper: mappers.NewDepartmentMapper(),
	}
}

// Create inserts the user. A duplicate email surfaces as the driver's unique
// constraint error; callers detect it with errors.IsDuplicateError.
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return u.SetID(model.ID)
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	model := r.mapper.ToModel(u)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.UserModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update user: %w", result.Error)
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// GetByEmail expects an already normalized (trimmed, lower case) address.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Where("email = ?", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *UserRepository) GetDetail(ctx context.Context, id uint) (*user.Detail, error) {
	u, err := r.GetByID(ctx, id)
	if err != nil || u == nil {
		return nil, err
	}

	details, err := r.attachDepartments(ctx, []*user.User{u})
	if err != nil {
		return nil, err
	}
	return details[0], nil
}

func (r *UserRepository) GetByIDs(ctx context.Context, ids []uint) (map[uint]*user.User, error) {
	return loadUsers(db.GetTxFromContext(ctx, r.db), r.mapper, ids)
}

func (r *UserRepository) ListDetails(ctx context.Context) ([]*user.Detail, error) {
	var rows []models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("name ASC").Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]*user.User, 0, len(rows))
	for i := range rows {
		u, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return r.attachDepartments(ctx, users)
}

func (r *UserRepository) Exists(ctx context.Context, id uint) (bool, error) {
	ok, err := exists(db.GetTxFromContext(ctx, r.db), &models.UserModel{}, id)
	if err != nil {
		return false, fmt.Errorf("failed to check user: %w", err)
	}
	return ok, nil
}

func (r *UserRepository) attachDepartments(ctx context.Context, users []*user.User) ([]*user.Detail, error) {
	ids := setutil.New[uint]()
	for _, u := range users {
		if id := u.DepartmentID(); id != nil {
			ids.Add(*id)
		}
	}

	departments, err := loadDepartments(db.GetTxFromContext(ctx, r.db), r.departmentMapper, ids.Sorted())
	if err != nil {
		return nil, err
	}

	details := make([]*user.Detail, 0, len(users))
	for _, u := range users {
		detail := &user.Detail{User: u}
		if id := u.DepartmentID(); id != nil {
			detail.Department = departments[*id]
		}
		details = append(details, detail)
	}
	return details, nil
}
