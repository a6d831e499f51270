package http

import (
	"github.com/gin-gonic/gin"

	"daycraft/internal/model"
	"daycraft/internal/task"
)

const (
	headerUserID   = "X-User-ID"
	headerUsername = "X-User-Name"
	anonymousUser  = "anonymous"
)

// scopeOf identifies the caller from request headers.
func scopeOf(c *gin.Context) model.Scope {
	sc := model.Scope{
		UserID:   c.GetHeader(headerUserID),
		Username: c.GetHeader(headerUsername),
	}
	if sc.UserID == "" {
		sc.UserID = anonymousUser
	}
	return sc
}

func (h *handler) processParseReq(c *gin.Context) (task.ParseInput, string, error) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return task.ParseInput{}, "", err
	}
	format, err := parseFormat(c.Query("format"))
	if err != nil {
		return task.ParseInput{}, "", err
	}
	input, err := req.toInput(h.cal)
	return input, format, err
}

func (h *handler) processQuickReq(c *gin.Context) (task.CreateFromTextInput, error) {
	var req quickReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return task.CreateFromTextInput{}, err
	}
	return req.toInput(h.cal)
}

func (h *handler) processCreateReq(c *gin.Context) (task.CreateInput, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return task.CreateInput{}, err
	}
	return req.toInput(h.cal)
}

func (h *handler) processListReq(c *gin.Context) (task.ListInput, string, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return task.ListInput{}, "", err
	}
	format, err := parseFormat(req.Format)
	return req.toInput(), format, err
}

func (h *handler) processExportReq(c *gin.Context) (task.ExportInput, string, error) {
	var req exportReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return task.ExportInput{}, "", err
	}
	format, err := parseFormat(req.Format)
	return task.ExportInput{Filter: req.Filter}, format, err
}

func (h *handler) processPrioritizedReq(c *gin.Context) (task.PrioritizeInput, string, error) {
	var req prioritizedReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return task.PrioritizeInput{}, "", err
	}
	format, err := parseFormat(req.Format)
	if err != nil {
		return task.PrioritizeInput{}, "", err
	}
	input, err := req.toInput(h.cal)
	return input, format, err
}

func (h *handler) processRealityCheckReq(c *gin.Context) (task.RealityCheckInput, error) {
	var req realityCheckReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return task.RealityCheckInput{}, err
	}
	return task.RealityCheckInput{CapacityMinutes: req.CapacityMinutes}, nil
}
