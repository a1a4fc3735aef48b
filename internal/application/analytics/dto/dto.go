package dto

import (
	"github.com/civicdesk/civicdesk/internal/domain/analytics"
	"github.com/civicdesk/civicdesk/internal/shared/mapper"
)

// StatsDTO are the dashboard totals. AvgResolutionTime is in days.
type StatsDTO struct {
	TotalIssues       int64   `json:"totalIssues"`
	PendingIssues     int64   `json:"pendingIssues"`
	ResolvedIssues    int64   `json:"resolvedIssues"`
	AvgResolutionTime float64 `json:"avgResolutionTime"`
}

type DepartmentCountDTO struct {
	DepartmentName string `json:"departmentName"`
	IssueCount     int64  `json:"issueCount"`
}

type TrendPointDTO struct {
	Date     string `json:"date"`
	Reported int64  `json:"reported"`
	Resolved int64  `json:"resolved"`
}

func ToDepartmentCountDTOList(counts []analytics.DepartmentIssueCount) []DepartmentCountDTO {
	return mapper.MapSlice(counts, func(c analytics.DepartmentIssueCount) DepartmentCountDTO {
		return DepartmentCountDTO{DepartmentName: c.DepartmentName, IssueCount: c.IssueCount}
	})
}

func ToTrendPointDTOList(buckets []analytics.TrendBucket) []TrendPointDTO {
	return mapper.MapSlice(buckets, func(b analytics.TrendBucket) TrendPointDTO {
		return TrendPointDTO{Date: b.Date, Reported: b.Reported, Resolved: b.Resolved}
	})
}
