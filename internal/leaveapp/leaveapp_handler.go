package leaveapp

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"leavedesk/internal/middleware"
	"leavedesk/internal/shared/apperror"
	"leavedesk/internal/shared/response"
)

type Handler struct {
	service Service
	rdb     *redis.Client
	logger  *zap.Logger
}

func NewHandler(service Service, rdb *redis.Client, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("leaveapp.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leaveapp.handler")
	}
	return &Handler{service: service, rdb: rdb, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("leave request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.HTTPError(c, httpErr)
}

func (h *Handler) Create(c *gin.Context) {
	var form CreateLeaveForm
	if err := c.ShouldBindJSON(&form); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), form)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if h.rdb != nil {
		middleware.StoreIdempotentResult(c, h.rdb, http.StatusCreated, resp)
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) History(c *gin.Context) {
	var query HistoryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}
	if query.Size <= 0 {
		query.Size = 10
	}

	resp, meta, err := h.service.History(c.Request.Context(), query)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, &meta)
}

func (h *Handler) ByStatus(c *gin.Context) {
	resp, err := h.service.ByStatus(c.Request.Context(), c.Param("status"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Decide(c *gin.Context) {
	var form DecideForm
	if err := c.ShouldBindJSON(&form); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Decide(c.Request.Context(), c.Param("id"), form)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Cancel(c *gin.Context) {
	resp, err := h.service.Cancel(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) OnDate(c *gin.Context) {
	resp, err := h.service.OnDate(c.Request.Context(), c.Query("date"), c.Query("department"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

// Export streams the listing for a status as a file download. The format
// query switches between the HR core's CSV and a locally built workbook.
func (h *Handler) Export(c *gin.Context) {
	status := c.Param("status")
	var query HistoryQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	stamp := time.Now().Format("2006-01-02")
	if c.Query("format") == "xlsx" {
		data, err := h.service.ExportXLSX(c.Request.Context(), status, query)
		if err != nil {
			h.writeServiceError(c, err)
			return
		}
		name := fmt.Sprintf("leave-applications-%s-%s.xlsx", status, stamp)
		c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
		return
	}

	data, contentType, err := h.service.ExportCSV(c.Request.Context(), status, query)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	if contentType == "" {
		contentType = "text/csv"
	}
	name := fmt.Sprintf("leave-applications-%s-%s.csv", status, stamp)
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, contentType, data)
}
