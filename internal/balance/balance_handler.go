package balance

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"leavedesk/internal/leavedate"
	"leavedesk/internal/shared/apperror"
	"leavedesk/internal/shared/response"
)

type EligibilityForm struct {
	LeaveType   string `json:"leaveType" binding:"required"`
	StartDate   string `json:"startDate" binding:"required"`
	EndDate     string `json:"endDate" binding:"required"`
	IsHalfDay   bool   `json:"isHalfDay"`
	Reason      string `json:"reason"`
	HasDocument bool   `json:"hasDocument"`
}

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("balance.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("balance.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("balance request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.HTTPError(c, httpErr)
}

func (h *Handler) List(c *gin.Context) {
	resp, err := h.service.Balances(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) CheckEligibility(c *gin.Context) {
	var form EligibilityForm
	if err := c.ShouldBindJSON(&form); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	start, err := leavedate.ParseAPIDate(form.StartDate)
	if err != nil {
		h.writeServiceError(c, apperror.InvalidField("Start Date"))
		return
	}
	end, err := leavedate.ParseAPIDate(form.EndDate)
	if err != nil {
		h.writeServiceError(c, apperror.InvalidField("End Date"))
		return
	}

	result, err := h.service.CheckEligibility(c.Request.Context(), EligibilityInput{
		LeaveType:   form.LeaveType,
		StartDate:   start,
		EndDate:     end,
		HalfDay:     form.IsHalfDay,
		Reason:      form.Reason,
		HasDocument: form.HasDocument,
	})
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, result, nil)
}
