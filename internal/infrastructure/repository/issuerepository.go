package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/civicdesk/civicdesk/internal/domain/issue"
	"github.com/civicdesk/civicdesk/internal/infrastructure/persistence/mappers"
	"github.com/civicdesk/civicdesk/internal/infrastructure/persistence/models"
	"github.com/civicdesk/civicdesk/internal/shared/biztime"
	"github.com/civicdesk/civicdesk/internal/shared/db"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
	"github.com/civicdesk/civicdesk/internal/shared/utils/setutil"
)

// searchColumns are matched by Filter.Search.
var searchColumns = []string{"title", "description", "location"}

type IssueRepository struct {
	db               *gorm.DB
	mapper           mappers.IssueMapper
	userMapper       mappers.UserMapper
	departmentMapper mappers.DepartmentMapper
	logger           logger.Interface
}

func NewIssueRepository(db *gorm.DB, log logger.Interface) *IssueRepository {
	return &IssueRepository{
		db:               db,
		mapper:           mappers.NewIssueMapper(),
		userMapper:       mappers.NewUserMapper(),
		departmentMapper: mappers.NewDepartmentMapper(),
		logger:           log,
	}
}

func (r *IssueRepository) Create(ctx context.Context, i *issue.Issue) error {
	model := r.mapper.ToModel(i)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to create issue: %w", err)
	}

	return i.SetID(model.ID)
}

// Update writes every column, so cleared optional fields become NULL.
func (r *IssueRepository) Update(ctx context.Context, i *issue.Issue) error {
	model := r.mapper.ToModel(i)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.IssueModel{}).
		Where("id = ?", model.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update issue: %w", result.Error)
	}

	return nil
}

func (r *IssueRepository) GetByID(ctx context.Context, id uint) (*issue.Issue, error) {
	var model models.IssueModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get issue: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *IssueRepository) GetDetail(ctx context.Context, id uint) (*issue.Detail, error) {
	var model models.IssueModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get issue: %w", err)
	}

	details, err := r.hydrate(tx, []models.IssueModel{model})
	if err != nil {
		return nil, err
	}
	return details[0], nil
}

func (r *IssueRepository) List(ctx context.Context, filter issue.Filter) ([]*issue.Detail, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.IssueModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	if filter.DepartmentID != nil {
		query = query.Where("department_id = ?", *filter.DepartmentID)
	}
	if filter.AssignedToID != nil {
		query = query.Where("assigned_to_id = ?", *filter.AssignedToID)
	}

	var rows []models.IssueModel
	err := query.
		Scopes(
			db.ContainsAny(searchColumns, filter.Search, filter.SearchFolded),
			db.Paginate(filter.Limit, filter.Offset),
		).
		Order("created_at DESC").
		Order("id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list issues: %w", err)
	}

	return r.hydrate(tx, rows)
}

func (r *IssueRepository) ListUnassigned(ctx context.Context) ([]*issue.Detail, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []models.IssueModel
	err := tx.
		Where("assigned_to_id IS NULL").
		Order("created_at DESC").
		Order("id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list unassigned issues: %w", err)
	}

	return r.hydrate(tx, rows)
}

// Assign is a single UPDATE so a concurrent reader never observes a partially
// assigned issue. The MySQL DSN sets clientFoundRows, so RowsAffected counts
// matched rows on every driver.
func (r *IssueRepository) Assign(ctx context.Context, id uint, assignment issue.Assignment) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.IssueModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"assigned_to_id": assignment.AssigneeID(),
			"department_id":  assignment.DepartmentID(),
			"status":         assignment.Status().String(),
			"resolved_at":    nil,
			"updated_at":     biztime.NowUTC().UnixMilli(),
		})
	if result.Error != nil {
		return false, fmt.Errorf("failed to assign issue: %w", result.Error)
	}

	return result.RowsAffected > 0, nil
}

func (r *IssueRepository) Exists(ctx context.Context, id uint) (bool, error) {
	ok, err := exists(db.GetTxFromContext(ctx, r.db), &models.IssueModel{}, id)
	if err != nil {
		return false, fmt.Errorf("failed to check issue: %w", err)
	}
	return ok, nil
}

// hydrate converts rows and attaches assignees and departments with one
// query each.
func (r *IssueRepository) hydrate(tx *gorm.DB, rows []models.IssueModel) ([]*issue.Detail, error) {
	userIDs := setutil.New[uint]()
	departmentIDs := setutil.New[uint]()
	for i := range rows {
		if rows[i].AssignedToID != nil {
			userIDs.Add(*rows[i].AssignedToID)
		}
		if rows[i].DepartmentID != nil {
			departmentIDs.Add(*rows[i].DepartmentID)
		}
	}

	users, err := loadUsers(tx, r.userMapper, userIDs.Sorted())
	if err != nil {
		return nil, err
	}
	departments, err := loadDepartments(tx, r.departmentMapper, departmentIDs.Sorted())
	if err != nil {
		return nil, err
	}

	details := make([]*issue.Detail, 0, len(rows))
	for i := range rows {
		entity, err := r.mapper.ToDomain(&rows[i])
		if err != nil {
			return nil, err
		}

		detail := &issue.Detail{Issue: entity}
		if id := entity.AssignedToID(); id != nil {
			detail.Assignee = users[*id]
			if detail.Assignee == nil {
				r.logger.Warnw("issue references missing assignee", "issue_id", entity.ID(), "user_id", *id)
			}
		}
		if id := entity.DepartmentID(); id != nil {
			detail.Department = departments[*id]
			if detail.Department == nil {
				r.logger.Warnw("issue references missing department", "issue_id", entity.ID(), "department_id", *id)
			}
		}
		details = append(details, detail)
	}
	return details, nil
}
