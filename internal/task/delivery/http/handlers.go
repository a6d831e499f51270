package http

import (
	"github.com/gin-gonic/gin"

	"daycraft/internal/model"
	"daycraft/pkg/response"
)

// Parse godoc
// @Summary     Preview a task from free text
// @Description Extracts title, dates, estimate, priority, tags, project, recurrence and reminder without storing anything.
// @Tags        Tasks
// @Accept      json
// @Produce     json,text/markdown,application/yaml
// @Param       body   body  parseReq true  "Free text and optional reference instant"
// @Param       format query string   false "json (default), markdown or yaml"
// @Success     200 {object} parseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/parse [POST]
func (h *handler) Parse(c *gin.Context) {
	ctx := c.Request.Context()

	input, format, err := h.processParseReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Parse(ctx, scopeOf(c), input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Parse: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	h.write(c, format, newParseResp(output.Task), output.Task, func() string {
		return renderParsed(output.Task)
	})
}

// Create godoc
// @Summary     Create a task from explicit fields
// @Description Dates accept RFC3339, YYYY-MM-DD, YYYY-MM-DDTHH:MM or a relative phrase (today, in 3 days, next friday). Attachments are "type,url[,title]".
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task fields"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Create(ctx, scopeOf(c), input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newCreateResp(output))
}

// QuickCreate godoc
// @Summary     Create a task from free text
// @Description Parses the text, stores the task and books a calendar event when a time range was given.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body quickReq true "Free text"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/quick [POST]
func (h *handler) QuickCreate(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processQuickReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.CreateFromText(ctx, scopeOf(c), input)
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateFromText: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newCreateResp(output))
}

// List godoc
// @Summary     List tasks
// @Description Filters by status, tags, project and a filter expression such as "+today #work !overdue".
// @Tags        Tasks
// @Produce     json,text/markdown,application/yaml
// @Param       status  query string   false "todo, inProgress, done, icebox or dropped"
// @Param       tag     query []string false "Tag; repeat for several"
// @Param       project query string   false "Project name or id"
// @Param       filter  query string   false "Filter expression"
// @Param       format  query string   false "json (default), markdown or yaml"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	input, format, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, scopeOf(c), input)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	h.writeTasks(c, format, output.Tasks)
}

// Detail godoc
// @Summary     Get task detail
// @Tags        Tasks
// @Produce     json,text/markdown,application/yaml
// @Param       id     path  string true  "Task ID"
// @Param       format query string false "json (default), markdown or yaml"
// @Success     200 {object} detailResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	format, err := parseFormat(c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Detail(ctx, scopeOf(c), c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	h.write(c, format, detailResp{Task: newTaskResp(output.Task)}, map[string]model.TaskItem{"task": output.Task}, func() string {
		return renderTaskList([]model.TaskItem{output.Task})
	})
}

// Defer godoc
// @Summary     Defer a task
// @Description Increments the defer counter of an open task.
// @Tags        Tasks
// @Produce     json
// @Param       id path string true "Task ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Task is not open"
// @Router      /api/v1/tasks/{id}/defer [POST]
func (h *handler) Defer(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Defer(ctx, scopeOf(c), c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Defer: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, detailResp{Task: newTaskResp(output.Task)})
}

// Export godoc
// @Summary     Export tasks
// @Description Exports every task matching a filter expression.
// @Tags        Tasks
// @Produce     json,text/markdown,application/yaml
// @Param       filter query string false "Filter expression"
// @Param       format query string false "json (default), markdown or yaml"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks/export [GET]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	input, format, err := h.processExportReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Export(ctx, scopeOf(c), input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Export: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	h.writeTasks(c, format, output.Tasks)
}

// Prioritized godoc
// @Summary     Ranked open tasks
// @Description Orders open tasks by priority, due urgency, focus and an optional time window.
// @Tags        Planning
// @Produce     json,text/markdown,application/yaml
// @Param       filter       query string false "Filter expression"
// @Param       window_start query string false "Window start"
// @Param       window_end   query string false "Window end"
// @Param       format       query string false "json (default), markdown or yaml"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks/prioritized [GET]
func (h *handler) Prioritized(c *gin.Context) {
	ctx := c.Request.Context()

	input, format, err := h.processPrioritizedReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Prioritize(ctx, scopeOf(c), input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Prioritize: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	h.writeTasks(c, format, output.Tasks)
}

// Stale godoc
// @Summary     Stale tasks
// @Description Todo tasks deferred too often and left untouched for too long.
// @Tags        Planning
// @Produce     json,text/markdown,application/yaml
// @Param       format query string false "json (default), markdown or yaml"
// @Success     200 {object} listResp
// @Router      /api/v1/tasks/stale [GET]
func (h *handler) Stale(c *gin.Context) {
	ctx := c.Request.Context()

	format, err := parseFormat(c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Stale(ctx, scopeOf(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.Stale: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	h.writeTasks(c, format, output.Tasks)
}

// RealityCheck godoc
// @Summary     Workload versus capacity
// @Tags        Planning
// @Produce     json
// @Param       capacity_minutes query int false "Daily capacity in minutes"
// @Success     200 {object} realityCheckResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/reality-check [GET]
func (h *handler) RealityCheck(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processRealityCheckReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.uc.RealityCheck(ctx, scopeOf(c), input)
	if err != nil {
		h.l.Errorf(ctx, "uc.RealityCheck: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newRealityCheckResp(result))
}

// Insights godoc
// @Summary     Completion insights
// @Tags        Planning
// @Produce     json
// @Success     200 {object} insightsResp
// @Router      /api/v1/insights [GET]
func (h *handler) Insights(c *gin.Context) {
	ctx := c.Request.Context()

	summary, err := h.uc.Insights(ctx, scopeOf(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.Insights: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newInsightsResp(summary))
}

func (h *handler) writeTasks(c *gin.Context, format string, tasks []model.TaskItem) {
	h.write(c, format, newListResp(tasks), map[string][]model.TaskItem{"items": tasks}, func() string {
		return renderTaskList(tasks)
	})
}
