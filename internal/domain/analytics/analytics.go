// Package analytics holds the read models behind the dashboard reports.
package analytics

import (
	"context"
	"math"
	"slices"
	"strings"
	"time"

	vo "github.com/civicdesk/civicdesk/internal/domain/issue/valueobjects"
	"github.com/civicdesk/civicdesk/internal/shared/biztime"
)

const millisPerDay = float64(24 * time.Hour / time.Millisecond)

// IssueCounts are the global dashboard totals.
type IssueCounts struct {
	Total    int64
	Pending  int64
	Resolved int64
	// AvgResolutionMillis is nil when no resolved issue carries a resolution stamp.
	AvgResolutionMillis *float64
}

// DepartmentIssueCount is the number of issues routed to a department.
type DepartmentIssueCount struct {
	DepartmentName string
	IssueCount     int64
}

// DepartmentLoad aggregates a department's issues.
type DepartmentLoad struct {
	DepartmentID        uint
	ActiveIssues        int64
	AvgResolutionMillis *float64
}

// IssueCreation is the minimal projection needed to build the trend.
type IssueCreation struct {
	CreatedAt time.Time
	Status    vo.IssueStatus
}

// TrendBucket counts issues reported on one business date and how many of
// those are resolved now.
type TrendBucket struct {
	Date     string
	Reported int64
	Resolved int64
}

type Repository interface {
	IssueCounts(ctx context.Context) (*IssueCounts, error)
	// IssuesByDepartment includes departments without issues and orders by
	// count descending, then name.
	IssuesByDepartment(ctx context.Context) ([]DepartmentIssueCount, error)
	// DepartmentLoads is keyed by department id; departments without issues are absent.
	DepartmentLoads(ctx context.Context) (map[uint]DepartmentLoad, error)
	IssuesCreatedSince(ctx context.Context, since time.Time) ([]IssueCreation, error)
}

// BuildTrend buckets creations by business date, oldest first. Dates with
// no issues are omitted, so at most days buckets are returned.
func BuildTrend(creations []IssueCreation, now time.Time, days int) []TrendBucket {
	start := biztime.WindowStartUTC(now, days)
	buckets := make([]TrendBucket, 0, days)
	index := make(map[string]int, days)

	for _, c := range creations {
		if c.CreatedAt.Before(start) || c.CreatedAt.After(now) {
			continue
		}
		key := biztime.DateKey(c.CreatedAt)
		pos, ok := index[key]
		if !ok {
			pos = len(buckets)
			index[key] = pos
			buckets = append(buckets, TrendBucket{Date: key})
		}
		buckets[pos].Reported++
		if c.Status.IsResolved() {
			buckets[pos].Resolved++
		}
	}

	// YYYY-MM-DD keys sort chronologically.
	slices.SortFunc(buckets, func(a, b TrendBucket) int {
		return strings.Compare(a.Date, b.Date)
	})
	return buckets
}

// MillisToDays converts an average duration to days rounded to one decimal.
func MillisToDays(ms float64) float64 {
	return math.Round(ms/millisPerDay*10) / 10
}
