package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/civicdesk/civicdesk/internal/domain/analytics"
	vo "github.com/civicdesk/civicdesk/internal/domain/issue/valueobjects"
	"github.com/civicdesk/civicdesk/internal/infrastructure/persistence/models"
	"github.com/civicdesk/civicdesk/internal/shared/biztime"
	"github.com/civicdesk/civicdesk/internal/shared/constants"
	"github.com/civicdesk/civicdesk/internal/shared/db"
	"github.com/civicdesk/civicdesk/internal/shared/mapper"
)

// avgResolutionExpr averages resolvedAt - createdAt (ms) over resolved issues.
const avgResolutionExpr = "AVG(CASE WHEN status = ? AND resolved_at IS NOT NULL THEN resolved_at - created_at END)"

// AnalyticsRepository serves the aggregate dashboard queries straight from SQL.
type AnalyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

type issueCountsRow struct {
	Total         int64
	Pending       int64
	Resolved      int64
	AvgResolution *float64
}

func (r *AnalyticsRepository) IssueCounts(ctx context.Context) (*analytics.IssueCounts, error) {
	var row issueCountsRow
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Model(&models.IssueModel{}).
		Select(
			"COUNT(*) AS total, "+
				"COALESCE(SUM(CASE WHEN status IN ? THEN 1 ELSE 0 END), 0) AS pending, "+
				"COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0) AS resolved, "+
				avgResolutionExpr+" AS avg_resolution",
			statusStrings(vo.PendingStatuses()),
			vo.StatusResolved.String(),
			vo.StatusResolved.String(),
		).
		Scan(&row).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count issues: %w", err)
	}

	return &analytics.IssueCounts{
		Total:               row.Total,
		Pending:             row.Pending,
		Resolved:            row.Resolved,
		AvgResolutionMillis: row.AvgResolution,
	}, nil
}

type departmentCountRow struct {
	DepartmentName string
	IssueCount     int64
}

func (r *AnalyticsRepository) IssuesByDepartment(ctx context.Context) ([]analytics.DepartmentIssueCount, error) {
	var rows []departmentCountRow
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Table(constants.TableDepartments+" AS d").
		Select("d.name AS department_name, COUNT(i.id) AS issue_count").
		Joins("LEFT JOIN "+constants.TableIssues+" AS i ON i.department_id = d.id").
		Group("d.id, d.name").
		Order("issue_count DESC").
		Order("d.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count issues by department: %w", err)
	}

	return mapper.MapSlice(rows, func(row departmentCountRow) analytics.DepartmentIssueCount {
		return analytics.DepartmentIssueCount{
			DepartmentName: row.DepartmentName,
			IssueCount:     row.IssueCount,
		}
	}), nil
}

type departmentLoadRow struct {
	DepartmentID  uint
	ActiveIssues  int64
	AvgResolution *float64
}

func (r *AnalyticsRepository) DepartmentLoads(ctx context.Context) (map[uint]analytics.DepartmentLoad, error) {
	var rows []departmentLoadRow
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Model(&models.IssueModel{}).
		Select(
			"department_id, "+
				"COALESCE(SUM(CASE WHEN status IN ? THEN 1 ELSE 0 END), 0) AS active_issues, "+
				avgResolutionExpr+" AS avg_resolution",
			statusStrings(vo.ActiveStatuses()),
			vo.StatusResolved.String(),
		).
		Where("department_id IS NOT NULL").
		Group("department_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate department load: %w", err)
	}

	loads := make(map[uint]analytics.DepartmentLoad, len(rows))
	for _, row := range rows {
		loads[row.DepartmentID] = analytics.DepartmentLoad{
			DepartmentID:        row.DepartmentID,
			ActiveIssues:        row.ActiveIssues,
			AvgResolutionMillis: row.AvgResolution,
		}
	}
	return loads, nil
}

type issueCreationRow struct {
	CreatedAt int64
	Status    string
}

func (r *AnalyticsRepository) IssuesCreatedSince(ctx context.Context, since time.Time) ([]analytics.IssueCreation, error) {
	var rows []issueCreationRow
	tx := db.GetTxFromContext(ctx, r.db)

	err := tx.
		Model(&models.IssueModel{}).
		Select("created_at, status").
		Where("created_at >= ?", since.UnixMilli()).
		Order("created_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load issue creations: %w", err)
	}

	return mapper.MapSlice(rows, func(row issueCreationRow) analytics.IssueCreation {
		return analytics.IssueCreation{
			CreatedAt: biztime.FromMillis(row.CreatedAt),
			Status:    vo.IssueStatus(row.Status),
		}
	}), nil
}

func statusStrings(statuses []vo.IssueStatus) []string {
	return mapper.MapSlice(statuses, vo.IssueStatus.String)
}
