package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/civicdesk/civicdesk/internal/domain/department"
	"github.com/civicdesk/civicdesk/internal/infrastructure/persistence/mappers"
	"github.com/civicdesk/civicdesk/internal/infrastructure/persistence/models"
	"github.com/civicdesk/civicdesk/internal/shared/db"
)

type DepartmentRepository struct {
	db     *gorm.DB
	mapper mappers.DepartmentMapper
}

func NewDepartmentRepository(db *gorm.DB) *DepartmentRepository {
	return &DepartmentRepository{
		db:     db,
		mapper: mappers.NewDepartmentMapper(),
	}
}

func (r *DepartmentRepository) Create(ctx context.Context, d *department.Department) error {
	model := r.mapper.ToModel(d)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create department: %w", err)
	}

	return d.SetID(model.ID)
}

func (r *DepartmentRepository) Update(ctx context.Context, d *department.Department) error {
	model := r.mapper.ToModel(d)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.DepartmentModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update department: %w", result.Error)
	}

	return nil
}

func (r *DepartmentRepository) GetByID(ctx context.Context, id uint) (*department.Department, error) {
	var model models.DepartmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get department: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *DepartmentRepository) GetByIDs(ctx context.Context, ids []uint) (map[uint]*department.Department, error) {
	return loadDepartments(db.GetTxFromContext(ctx, r.db), r.mapper, ids)
}

func (r *DepartmentRepository) List(ctx context.Context) ([]*department.Department, error) {
	var rows []models.DepartmentModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Order("name ASC").Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}

	result := make([]*department.Department, 0, len(rows))
	for i := range rows {
		d, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	return result, nil
}

func (r *DepartmentRepository) Exists(ctx context.Context, id uint) (bool, error) {
	ok, err := exists(db.GetTxFromContext(ctx, r.db), &models.DepartmentModel{}, id)
	if err != nil {
		return false, fmt.Errorf("failed to check department: %w", err)
	}
	return ok, nil
}
