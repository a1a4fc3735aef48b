package issue

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/civicdesk/civicdesk/internal/application/issue/usecases"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
	"github.com/civicdesk/civicdesk/internal/shared/utils"
)

const (
	invalidIssueMsg   = "Invalid issue data"
	invalidCommentMsg = "Invalid comment data"
)

type Handler struct {
	createIssueUC    usecases.CreateIssueExecutor
	updateIssueUC    usecases.UpdateIssueExecutor
	assignIssueUC    usecases.AssignIssueExecutor
	getIssueUC       usecases.GetIssueExecutor
	listIssuesUC     usecases.ListIssuesExecutor
	listUnassignedUC usecases.ListUnassignedIssuesExecutor
	createCommentUC  usecases.CreateCommentExecutor
	listCommentsUC   usecases.ListCommentsExecutor
	logger           logger.Interface
}

func NewHandler(
	createIssueUC usecases.CreateIssueExecutor,
	updateIssueUC usecases.UpdateIssueExecutor,
	assignIssueUC usecases.AssignIssueExecutor,
	getIssueUC usecases.GetIssueExecutor,
	listIssuesUC usecases.ListIssuesExecutor,
	listUnassignedUC usecases.ListUnassignedIssuesExecutor,
	createCommentUC usecases.CreateCommentExecutor,
	listCommentsUC usecases.ListCommentsExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		createIssueUC:    createIssueUC,
		updateIssueUC:    updateIssueUC,
		assignIssueUC:    assignIssueUC,
		getIssueUC:       getIssueUC,
		listIssuesUC:     listIssuesUC,
		listUnassignedUC: listUnassignedUC,
		createCommentUC:  createCommentUC,
		listCommentsUC:   listCommentsUC,
		logger:           logger,
	}
}

// ListIssues handles GET /issues
// @Summary List issues
// @Description Filter issues by exact status, priority, department and assignee, plus a case-insensitive search over title, description and location. Newest first.
// @Tags Issues
// @Produce json
// @Param status query string false "Status" Enums(pending, in-progress, resolved, urgent)
// @Param priority query string false "Priority" Enums(low, medium, high, critical)
// @Param departmentId query int false "Department ID"
// @Param assignedToId query int false "Assignee user ID"
// @Param search query string false "Free-text search"
// @Param limit query int false "Page size (default 50, capped at 500)"
// @Param offset query int false "Rows to skip"
// @Success 200 {array} dto.IssueWithRelationsDTO
// @Failure 400 {object} utils.ErrorBody
// @Failure 500 {object} utils.ErrorBody
// @Router /issues [get]
func (h *Handler) ListIssues(c *gin.Context) {
	query, err := parseListQuery(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listIssuesUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// ListUnassignedIssues handles GET /issues/unassigned
// @Summary List unassigned issues
// @Description Issues without an assignee, newest first
// @Tags Issues
// @Produce json
// @Success 200 {array} dto.IssueWithRelationsDTO
// @Failure 500 {object} utils.ErrorBody
// @Router /issues/unassigned [get]
func (h *Handler) ListUnassignedIssues(c *gin.Context) {
	result, err := h.listUnassignedUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// GetIssue handles GET /issues/:id
// @Summary Get issue
// @Description Get an issue with its assignee and department
// @Tags Issues
// @Produce json
// @Param id path int true "Issue ID"
// @Success 200 {object} dto.IssueWithRelationsDTO
// @Failure 400 {object} utils.ErrorBody
// @Failure 404 {object} utils.ErrorBody
// @Router /issues/{id} [get]
func (h *Handler) GetIssue(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getIssueUC.Execute(c.Request.Context(), usecases.GetIssueQuery{ID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// CreateIssue handles POST /issues
// @Summary Report an issue
// @Description Status defaults to pending and priority to medium. Free text is sanitized.
// @Tags Issues
// @Accept json
// @Produce json
// @Param request body CreateIssueRequest true "Issue"
// @Success 201 {object} dto.IssueDTO
// @Failure 400 {object} utils.ErrorBody
// @Failure 500 {object} utils.ErrorBody
// @Router /issues [post]
func (h *Handler) CreateIssue(c *gin.Context) {
	var req CreateIssueRequest
	if err := utils.BindJSON(c, &req, invalidIssueMsg); err != nil {
		h.logger.Warnw("invalid request body for create issue", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createIssueUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// UpdateIssue handles PUT /issues/:id
// @Summary Update issue
// @Description Partial update. Absent fields are kept, null clears optional fields.
// @Tags Issues
// @Accept json
// @Produce json
// @Param id path int true "Issue ID"
// @Param request body UpdateIssueRequest true "Fields to change"
// @Success 200 {object} dto.IssueDTO
// @Failure 400 {object} utils.ErrorBody
// @Failure 404 {object} utils.ErrorBody
// @Router /issues/{id} [put]
func (h *Handler) UpdateIssue(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateIssueRequest
	if err := utils.BindJSON(c, &req, invalidIssueMsg); err != nil {
		h.logger.Warnw("invalid request body for update issue", "issue_id", id, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateIssueUC.Execute(c.Request.Context(), req.ToCommand(id))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// AssignIssue handles POST /issues/:id/assign
// @Summary Assign issue
// @Description Sets assignee and department and moves the issue to in-progress in one write. Both ids are required.
// @Tags Issues
// @Accept json
// @Produce json
// @Param id path int true "Issue ID"
// @Param request body AssignIssueRequest true "Assignment"
// @Success 200 {object} dto.IssueDTO
// @Failure 400 {object} utils.ErrorBody
// @Failure 404 {object} utils.ErrorBody
// @Router /issues/{id}/assign [post]
func (h *Handler) AssignIssue(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignIssueRequest
	if err := utils.BindJSON(c, &req, invalidIssueMsg); err != nil {
		h.logger.Warnw("invalid request body for assign issue", "issue_id", id, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.assignIssueUC.Execute(c.Request.Context(), req.ToCommand(id))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// ListComments handles GET /issues/:id/comments
// @Summary List comments
// @Description Comments of an issue, oldest first, with rendered HTML
// @Tags Comments
// @Produce json
// @Param id path int true "Issue ID"
// @Success 200 {array} dto.CommentDTO
// @Failure 400 {object} utils.ErrorBody
// @Failure 500 {object} utils.ErrorBody
// @Router /issues/{id}/comments [get]
func (h *Handler) ListComments(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listCommentsUC.Execute(c.Request.Context(), usecases.ListCommentsQuery{IssueID: id})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, result)
}

// CreateComment handles POST /issues/:id/comments
// @Summary Add comment
// @Description Comment text is markdown; it is sanitized and returned rendered as commentHtml
// @Tags Comments
// @Accept json
// @Produce json
// @Param id path int true "Issue ID"
// @Param request body CreateCommentRequest true "Comment"
// @Success 201 {object} dto.CommentDTO
// @Failure 400 {object} utils.ErrorBody
// @Failure 404 {object} utils.ErrorBody
// @Router /issues/{id}/comments [post]
func (h *Handler) CreateComment(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateCommentRequest
	if err := utils.BindJSON(c, &req, invalidCommentMsg); err != nil {
		h.logger.Warnw("invalid request body for create comment", "issue_id", id, "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createCommentUC.Execute(c.Request.Context(), req.ToCommand(id))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// parseListQuery reads the list filters. Enum values are checked by the use case.
func parseListQuery(c *gin.Context) (usecases.ListIssuesQuery, error) {
	query := usecases.ListIssuesQuery{
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Search:   c.Query("search"),
	}

	var err error
	if query.DepartmentID, err = utils.QueryUint(c, "departmentId"); err != nil {
		return query, err
	}
	if query.AssignedToID, err = utils.QueryUint(c, "assignedToId"); err != nil {
		return query, err
	}
	// Zero selects the configured default page size.
	if query.Limit, err = utils.QueryIntInRange(c, "limit", 0, 1, math.MaxInt32); err != nil {
		return query, err
	}
	if query.Offset, err = utils.QueryIntInRange(c, "offset", 0, 0, math.MaxInt32); err != nil {
		return query, err
	}
	return query, nil
}
