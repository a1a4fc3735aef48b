package department

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/civicdesk/civicdesk/internal/application/department/usecases"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
	"github.com/civicdesk/civicdesk/internal/shared/utils"
)

const invalidDepartmentMsg = "Invalid department data"

type Handler struct {
	createDepartmentUC usecases.CreateDepartmentExecutor
	updateDepartmentUC usecases.UpdateDepartmentExecutor
	getDepartmentUC    usecases.GetDepartmentExecutor
	listDepartmentsUC  usecases.ListDepartmentsExecutor
	listStatsUC        usecases.ListDepartmentStatsExecutor
	logger             logger.Interface
}

func NewHandler(
	createDepartmentUC usecases.CreateDepartmentExecutor,
	updateDepartmentUC usecases.UpdateDepartmentExecutor,
	getDepartmentUC usecases.GetDepartmentExecutor,
	listDepartmentsUC usecases.ListDepartmentsExecutor,
	listStatsUC usecases.ListDepartmentStatsExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		createDepartmentUC: createDepartmentUC,
		updateDepartmentUC: updateDepartmentUC,
		getDepartmentUC:    getDepartmentUC,
		listDepartmentsUC:  listDepartmentsUC,
		listStatsUC:        listStatsUC,
		logger:             logger,
	}
}

// ListDepartments handles GET /departments
// @Summary List departments
// @Tags Departments
// @Produce json
// @Success 200 {array} dto.DepartmentDTO
// @Failure 500 {object} utils.ErrorBody
// @Router /departments [get]
func (h *Handler) ListDepartments(c *gin.Context) {
	result, err := h.listDepartmentsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// ListDepartmentStats handles GET /departments/stats
// @Summary List departments with workload
// @Description activeIssues counts pending and in-progress issues; workload is min(activeIssues/staff*20, 100)
// @Tags Departments
// @Produce json
// @Success 200 {array} dto.DepartmentStatsDTO
// @Failure 500 {object} utils.ErrorBody
// @Router /departments/stats [get]
func (h *Handler) ListDepartmentStats(c *gin.Context) {
	result, err := h.listStatsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// GetDepartment handles GET /departments/:id
// @Summary Get department
// @Tags Departments
// @Produce json
// @Param id path int true "Department ID"
// @Success 200 {object} dto.DepartmentDTO
// @Failure 400 {object} utils.ErrorBody
// @Failure 404 {object} utils.ErrorBody
// @Router /departments/{id} [get]
func (h *Handler) GetDepartment(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getDepartmentUC.Execute(c.Request.Context(), usecases.GetDepartmentQuery{ID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// CreateDepartment handles POST /departments
// @Summary Create department
// @Tags Departments
// @Accept json
// @Produce json
// @Param request body CreateDepartmentRequest true "Department"
// @Success 201 {object} dto.DepartmentDTO
// @Failure 400 {object} utils.ErrorBody
// @Router /departments [post]
func (h *Handler) CreateDepartment(c *gin.Context) {
	var req CreateDepartmentRequest
	if err := utils.BindJSON(c, &req, invalidDepartmentMsg); err != nil {
		h.logger.Warnw("invalid request body for create department", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createDepartmentUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// UpdateDepartment handles PUT /departments/:id
// @Summary Update department
// @Tags Departments
// @Accept json
// @Produce json
// @Param id path int true "Department ID"
// @Param request body UpdateDepartmentRequest true "Fields to change"
// @Success 200 {object} dto.DepartmentDTO
// @Failure 400 {object} utils.ErrorBody
// @Failure 404 {object} utils.ErrorBody
// @Router /departments/{id} [put]
func (h *Handler) UpdateDepartment(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateDepartmentRequest
	if err := utils.BindJSON(c, &req, invalidDepartmentMsg); err != nil {
		h.logger.Warnw("invalid request body for update department", "department_id", id, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateDepartmentUC.Execute(c.Request.Context(), req.ToCommand(id))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}
