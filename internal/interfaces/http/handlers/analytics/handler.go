package analytics

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/civicdesk/civicdesk/internal/application/analytics/usecases"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
	"github.com/civicdesk/civicdesk/internal/shared/utils"
)

type Handler struct {
	getStatsUC        usecases.GetStatsExecutor
	getByDepartmentUC usecases.GetIssuesByDepartmentExecutor
	getTrendUC        usecases.GetIssuesTrendExecutor
	defaultTrendDays  int
	maxTrendDays      int
	logger            logger.Interface
}

func NewHandler(
	getStatsUC usecases.GetStatsExecutor,
	getByDepartmentUC usecases.GetIssuesByDepartmentExecutor,
	getTrendUC usecases.GetIssuesTrendExecutor,
	defaultTrendDays, maxTrendDays int,
	logger logger.Interface,
) *Handler {
	return &Handler{
		getStatsUC:        getStatsUC,
		getByDepartmentUC: getByDepartmentUC,
		getTrendUC:        getTrendUC,
		defaultTrendDays:  defaultTrendDays,
		maxTrendDays:      maxTrendDays,
		logger:            logger,
	}
}

// GetStats handles GET /analytics/stats
// @Summary Dashboard totals
// @Description pendingIssues counts pending and urgent issues. avgResolutionTime is in days.
// @Tags Analytics
// @Produce json
// @Success 200 {object} dto.StatsDTO
// @Failure 500 {object} utils.ErrorBody
// @Router /analytics/stats [get]
func (h *Handler) GetStats(c *gin.Context) {
	result, err := h.getStatsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// GetIssuesByDepartment handles GET /analytics/issues-by-department
// @Summary Issue count per department
// @Tags Analytics
// @Produce json
// @Success 200 {array} dto.DepartmentCountDTO
// @Failure 500 {object} utils.ErrorBody
// @Router /analytics/issues-by-department [get]
func (h *Handler) GetIssuesByDepartment(c *gin.Context) {
	result, err := h.getByDepartmentUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// GetIssuesTrend handles GET /analytics/issues-trend
// @Summary Reported and resolved issues per day
// @Description Days without reports are omitted. Buckets use the configured business timezone.
// @Tags Analytics
// @Produce json
// @Param days query int false "Window size in days (default 30, max 365)"
// @Success 200 {array} dto.TrendPointDTO
// @Failure 400 {object} utils.ErrorBody
// @Failure 500 {object} utils.ErrorBody
// @Router /analytics/issues-trend [get]
func (h *Handler) GetIssuesTrend(c *gin.Context) {
	days, err := utils.QueryIntInRange(c, "days", h.defaultTrendDays, 1, h.maxTrendDays)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getTrendUC.Execute(c.Request.Context(), usecases.GetIssuesTrendQuery{Days: days})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}
