package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/civicdesk/civicdesk/internal/domain/department"
	"github.com/civicdesk/civicdesk/internal/domain/user"
	"github.com/civicdesk/civicdesk/internal/infrastructure/persistence/mappers"
	"github.com/civicdesk/civicdesk/internal/infrastructure/persistence/models"
)

// loadDepartments batch loads departments by id. Unknown ids are absent from the map.
func loadDepartments(tx *gorm.DB, mapper mappers.DepartmentMapper, ids []uint) (map[uint]*department.Department, error) {
	result := make(map[uint]*department.Department, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var rows []models.DepartmentModel
	if err := tx.Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load departments: %w", err)
	}
	for i := range rows {
		d, err := mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		result[d.ID()] = d
	}
	return result, nil
}

// loadUsers batch loads users by id. Unknown ids are absent from the map.
func loadUsers(tx *gorm.DB, mapper mappers.UserMapper, ids []uint) (map[uint]*user.User, error) {
	result := make(map[uint]*user.User, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var rows []models.UserModel
	if err := tx.Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	for i := range rows {
		u, err := mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		result[u.ID()] = u
	}
	return result, nil
}

func exists(tx *gorm.DB, model any, id uint) (bool, error) {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
