package leaveapp

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"leavedesk/internal/balance"
	"leavedesk/internal/leavedate"
	leaveapperrors "leavedesk/internal/leaveapp/errors"
	"leavedesk/internal/shared/apperror"
	"leavedesk/internal/shared/cache"
	"leavedesk/internal/shared/contextutil"
	"leavedesk/internal/shared/response"
	"leavedesk/internal/upstream"
)

type Service interface {
	Create(ctx context.Context, form CreateLeaveForm) (LeaveResponse, error)
	History(ctx context.Context, query HistoryQuery) ([]LeaveResponse, response.PaginationMeta, error)
	ByStatus(ctx context.Context, status string) ([]LeaveResponse, error)
	Decide(ctx context.Context, id string, form DecideForm) (LeaveResponse, error)
	Cancel(ctx context.Context, id string) (LeaveResponse, error)
	OnDate(ctx context.Context, selectedDate, department string) ([]LeaveResponse, error)
	ExportCSV(ctx context.Context, status string, query HistoryQuery) ([]byte, string, error)
	ExportXLSX(ctx context.Context, status string, query HistoryQuery) ([]byte, error)
}

type service struct {
	api         upstream.LeaveAPI
	eligibility balance.Service
	cache       *cache.TagCache
	logger      *zap.Logger
}

func NewService(api upstream.LeaveAPI, eligibility balance.Service, tagCache *cache.TagCache, logger ...*zap.Logger) Service {
	l := zap.L().Named("leaveapp.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leaveapp.service")
	}
	return &service{
		api:         api,
		eligibility: eligibility,
		cache:       tagCache,
		logger:      l,
	}
}

// Create runs the advisory eligibility gate and, when it passes, submits
// the request to the HR core. The HR core's verdict overrides the gate:
// its rejections come back as-is, field errors included.
func (s *service) Create(ctx context.Context, form CreateLeaveForm) (LeaveResponse, error) {
	if !leavedate.KnownType(form.LeaveType) {
		return LeaveResponse{}, leaveapperrors.ErrUnknownLeaveType
	}
	start, err := leavedate.ParseAPIDate(form.StartDate)
	if err != nil {
		return LeaveResponse{}, leaveapperrors.ErrInvalidDateFormat
	}
	end, err := leavedate.ParseAPIDate(form.EndDate)
	if err != nil {
		return LeaveResponse{}, leaveapperrors.ErrInvalidDateFormat
	}
	start, end = leavedate.NormalizeHalfDay(start, end, form.IsHalfDay)
	if start.After(end) {
		return LeaveResponse{}, leaveapperrors.ErrInvalidDateRange
	}

	check, err := s.eligibility.CheckEligibility(ctx, balance.EligibilityInput{
		LeaveType:   form.LeaveType,
		StartDate:   start,
		EndDate:     end,
		HalfDay:     form.IsHalfDay,
		Reason:      form.Reason,
		HasDocument: len(form.SupportingDocuments) > 0,
	})
	if err != nil {
		return LeaveResponse{}, err
	}
	if !check.Eligible {
		s.logger.Info("leave request failed eligibility",
			zap.String("leave_type", form.LeaveType),
			zap.Strings("failures", check.Failures),
		)
		return LeaveResponse{}, leaveapperrors.ErrNotEligible.WithFields(failureFields(check.Failures))
	}

	created, err := s.api.CreateLeave(ctx, upstream.CreateLeaveRequest{
		LeaveType:           form.LeaveType,
		StartDate:           leavedate.FormatAPIDate(start),
		EndDate:             leavedate.FormatAPIDate(end),
		IsHalfDay:           form.IsHalfDay,
		IsMorning:           form.IsHalfDay && form.IsMorning,
		Reason:              form.Reason,
		SupportingDocuments: form.SupportingDocuments,
	})
	if err != nil {
		return LeaveResponse{}, err
	}

	s.cache.Invalidate(ctx, cache.TagLeaveApplications, cache.TagBalances, cache.TagDashboard)
	s.logger.Info("leave request submitted",
		zap.String("leave_id", created.ID),
		zap.String("leave_type", created.LeaveType),
		zap.Float64("days", check.Days),
	)
	return mapToResponse(created), nil
}

func (s *service) History(ctx context.Context, query HistoryQuery) ([]LeaveResponse, response.PaginationMeta, error) {
	filter := upstream.LeaveFilter{
		Status:    query.Status,
		LeaveType: query.LeaveType,
		StartDate: query.StartDate,
		EndDate:   query.EndDate,
		Search:    query.Search,
		PageQuery: upstream.PageQuery{Page: query.Page, Size: query.Size, Sort: query.Sort},
	}

	key := cache.Key("leave-applications/employee",
		"employee="+contextutil.GetEmployeeID(ctx),
		"status="+query.Status,
		"type="+query.LeaveType,
		"range="+query.StartDate+".."+query.EndDate,
		"search="+query.Search,
		"page="+strconv.Itoa(query.Page),
		"size="+strconv.Itoa(query.Size),
		"sort="+query.Sort,
	)
	page, err := cache.Through(s.cache, ctx, key, []string{cache.TagLeaveApplications},
		func(ctx context.Context) (upstream.Page[upstream.LeaveApplication], error) {
			return s.api.EmployeeLeaves(ctx, filter)
		},
	)
	if err != nil {
		return nil, response.PaginationMeta{}, err
	}

	meta := response.NewPaginationMeta(page.TotalElements, page.Page, page.Size)
	return mapToListResponse(page.Content), meta, nil
}

// ByStatus answers with what the caller's token can see upstream, so the
// cache entry is scoped per caller like History.
func (s *service) ByStatus(ctx context.Context, status string) ([]LeaveResponse, error) {
	leaves, err := cache.Through(s.cache, ctx,
		cache.Key("leave-applications/status",
			"employee="+contextutil.GetEmployeeID(ctx),
			"status="+status,
		),
		[]string{cache.TagLeaveApplications},
		func(ctx context.Context) ([]upstream.LeaveApplication, error) {
			return s.api.LeavesByStatus(ctx, status)
		},
	)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

// Decide approves or rejects a pending request on behalf of a manager or
// admin. Only the two decision states are accepted here; cancellation has
// its own path.
func (s *service) Decide(ctx context.Context, id string, form DecideForm) (LeaveResponse, error) {
	if !leavedate.ValidTransition(leavedate.StatusPending, form.Status) ||
		form.Status == leavedate.StatusCanceled {
		return LeaveResponse{}, leaveapperrors.ErrInvalidStatus
	}

	updated, err := s.api.UpdateLeaveStatus(ctx, id, form.Status, form.Comment)
	if err != nil {
		return LeaveResponse{}, err
	}

	s.cache.Invalidate(ctx, cache.TagLeaveApplications, cache.TagBalances, cache.TagDashboard, cache.TagNotifications)
	s.logger.Info("leave request decided",
		zap.String("leave_id", id),
		zap.String("status", form.Status),
	)
	return mapToResponse(updated), nil
}

func (s *service) Cancel(ctx context.Context, id string) (LeaveResponse, error) {
	updated, err := s.api.CancelLeave(ctx, id)
	if err != nil {
		return LeaveResponse{}, err
	}

	s.cache.Invalidate(ctx, cache.TagLeaveApplications, cache.TagBalances, cache.TagDashboard)
	s.logger.Info("leave request cancelled", zap.String("leave_id", id))
	return mapToResponse(updated), nil
}

func (s *service) OnDate(ctx context.Context, selectedDate, department string) ([]LeaveResponse, error) {
	if _, err := leavedate.ParseAPIDate(selectedDate); err != nil {
		return nil, leaveapperrors.ErrInvalidDateFormat
	}

	leaves, err := cache.Through(s.cache, ctx,
		cache.Key("leave-applications/date", "date="+selectedDate, "department="+department),
		[]string{cache.TagLeaveApplications},
		func(ctx context.Context) ([]upstream.LeaveApplication, error) {
			return s.api.LeavesOnDate(ctx, selectedDate, department)
		},
	)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

// ExportCSV passes the HR core's CSV export through untouched.
func (s *service) ExportCSV(ctx context.Context, status string, query HistoryQuery) ([]byte, string, error) {
	return s.api.ExportLeavesCSV(ctx, status, upstream.LeaveFilter{
		LeaveType: query.LeaveType,
		StartDate: query.StartDate,
		EndDate:   query.EndDate,
		PageQuery: upstream.PageQuery{Page: query.Page, Size: query.Size, Sort: query.Sort},
	})
}

func failureFields(failures []string) []apperror.FieldError {
	fields := make([]apperror.FieldError, 0, len(failures))
	for _, f := range failures {
		field := "reason"
		switch {
		case strings.Contains(f, "balance"):
			field = "endDate"
		case strings.Contains(f, "notice"):
			field = "startDate"
		case strings.Contains(f, "document"):
			field = "supportingDocuments"
		case strings.Contains(f, "type"):
			field = "leaveType"
		}
		fields = append(fields, apperror.FieldError{Field: field, Message: f})
	}
	return fields
}

func mapToResponse(l upstream.LeaveApplication) LeaveResponse {
	resp := LeaveResponse{
		LeaveApplication: l,
		TypeName:         leavedate.DisplayName(l.LeaveType),
		CanCancel:        leavedate.CanCancel(l.Status),
	}
	if start, err := leavedate.ParseAPIDate(l.StartDate); err == nil {
		if end, err := leavedate.ParseAPIDate(l.EndDate); err == nil {
			resp.Days = leavedate.ChargeableDays(start, end, l.IsHalfDay)
		}
	}
	return resp
}

func mapToListResponse(leaves []upstream.LeaveApplication) []LeaveResponse {
	resp := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		resp[i] = mapToResponse(l)
	}
	return resp
}
