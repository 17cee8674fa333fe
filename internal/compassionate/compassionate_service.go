package compassionate

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	compassionateerrors "leavedesk/internal/compassionate/errors"
	"leavedesk/internal/leavedate"
	"leavedesk/internal/shared/apperror"
	"leavedesk/internal/shared/cache"
	"leavedesk/internal/shared/contextutil"
	"leavedesk/internal/shared/response"
	"leavedesk/internal/upstream"
)

type Service interface {
	CheckDate(ctx context.Context, workDate string) (CheckResponse, error)
	Create(ctx context.Context, form CreateCompassionateForm) (CompassionateResponse, error)
	List(ctx context.Context, query ListQuery) ([]CompassionateResponse, response.PaginationMeta, error)
	Decide(ctx context.Context, id string, form DecideForm) (CompassionateResponse, error)
}

type service struct {
	api      upstream.CompassionateAPI
	holidays upstream.HolidayAPI
	cache    *cache.TagCache
	logger   *zap.Logger
}

func NewService(api upstream.CompassionateAPI, holidays upstream.HolidayAPI, tagCache *cache.TagCache, logger ...*zap.Logger) Service {
	l := zap.L().Named("compassionate.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("compassionate.service")
	}
	return &service{
		api:      api,
		holidays: holidays,
		cache:    tagCache,
		logger:   l,
	}
}

// holidayRefs loads the holiday calendar through the cache and narrows it
// to what the date gate reads. Unparseable dates are skipped rather than
// failing the whole check.
func (s *service) holidayRefs(ctx context.Context) ([]leavedate.HolidayRef, error) {
	holidays, err := cache.Through(s.cache, ctx,
		cache.Key("holidays"),
		[]string{cache.TagHolidays},
		func(ctx context.Context) ([]upstream.Holiday, error) {
			return s.holidays.Holidays(ctx)
		},
	)
	if err != nil {
		return nil, err
	}

	refs := make([]leavedate.HolidayRef, 0, len(holidays))
	for _, h := range holidays {
		date, err := leavedate.ParseAPIDate(h.Date)
		if err != nil {
			s.logger.Warn("skipping holiday with malformed date",
				zap.String("holiday_id", h.ID),
				zap.String("date", h.Date),
			)
			continue
		}
		refs = append(refs, leavedate.HolidayRef{Date: date, Recurring: h.Recurring})
	}
	return refs, nil
}

func (s *service) CheckDate(ctx context.Context, workDate string) (CheckResponse, error) {
	date, err := leavedate.ParseAPIDate(workDate)
	if err != nil {
		return CheckResponse{}, compassionateerrors.ErrInvalidDateFormat
	}

	refs, err := s.holidayRefs(ctx)
	if err != nil {
		return CheckResponse{}, err
	}

	check := leavedate.CheckCompassionateDate(date, refs)
	return CheckResponse{
		WorkDate:  workDate,
		Eligible:  check.Eligible,
		IsWeekend: check.IsWeekend,
		IsHoliday: check.IsHoliday,
	}, nil
}

// Create gates the work date locally, then submits with the weekend and
// holiday grounds attached so the HR core records why the date qualified.
func (s *service) Create(ctx context.Context, form CreateCompassionateForm) (CompassionateResponse, error) {
	date, err := leavedate.ParseAPIDate(form.WorkDate)
	if err != nil {
		return CompassionateResponse{}, compassionateerrors.ErrInvalidDateFormat
	}

	refs, err := s.holidayRefs(ctx)
	if err != nil {
		return CompassionateResponse{}, err
	}

	check := leavedate.CheckCompassionateDate(date, refs)
	if !check.Eligible {
		s.logger.Info("compassionate request rejected by date gate",
			zap.String("work_date", form.WorkDate),
			zap.Bool("is_holiday", check.IsHoliday),
		)
		return CompassionateResponse{}, compassionateerrors.ErrNotEligibleDate.WithFields([]apperror.FieldError{
			{Field: "workDate", Message: "the selected date is a regular working day"},
		})
	}

	created, err := s.api.CreateCompassionate(ctx, upstream.CreateCompassionateRequest{
		WorkDate:  form.WorkDate,
		Reason:    form.Reason,
		IsHoliday: check.IsHoliday,
		IsWeekend: check.IsWeekend,
	})
	if err != nil {
		return CompassionateResponse{}, err
	}

	s.cache.Invalidate(ctx, cache.TagCompassionate, cache.TagBalances, cache.TagDashboard)
	s.logger.Info("compassionate request submitted",
		zap.String("leave_id", created.ID),
		zap.String("work_date", created.WorkDate),
	)
	return CompassionateResponse{CompassionateLeave: created}, nil
}

// List is cached per caller: the upstream scopes the listing to the
// bearer token, so the cache key has to as well.
func (s *service) List(ctx context.Context, query ListQuery) ([]CompassionateResponse, response.PaginationMeta, error) {
	key := cache.Key("compassionate-leaves",
		"employee="+contextutil.GetEmployeeID(ctx),
		"status="+query.Status,
		"page="+strconv.Itoa(query.Page),
		"size="+strconv.Itoa(query.Size),
		"sort="+query.Sort,
	)
	page, err := cache.Through(s.cache, ctx, key, []string{cache.TagCompassionate},
		func(ctx context.Context) (upstream.Page[upstream.CompassionateLeave], error) {
			return s.api.CompassionateLeaves(ctx, query.Status, upstream.PageQuery{
				Page: query.Page,
				Size: query.Size,
				Sort: query.Sort,
			})
		},
	)
	if err != nil {
		return nil, response.PaginationMeta{}, err
	}

	out := make([]CompassionateResponse, len(page.Content))
	for i, leave := range page.Content {
		out[i] = CompassionateResponse{CompassionateLeave: leave}
	}
	meta := response.NewPaginationMeta(page.TotalElements, page.Page, page.Size)
	return out, meta, nil
}

func (s *service) Decide(ctx context.Context, id string, form DecideForm) (CompassionateResponse, error) {
	if !leavedate.ValidTransition(leavedate.StatusPending, form.Status) ||
		form.Status == leavedate.StatusCanceled {
		return CompassionateResponse{}, compassionateerrors.ErrInvalidStatus
	}

	updated, err := s.api.UpdateCompassionateStatus(ctx, id, form.Status, form.Comment)
	if err != nil {
		return CompassionateResponse{}, err
	}

	s.cache.Invalidate(ctx, cache.TagCompassionate, cache.TagBalances, cache.TagDashboard, cache.TagNotifications)
	s.logger.Info("compassionate request decided",
		zap.String("leave_id", id),
		zap.String("status", form.Status),
	)
	return CompassionateResponse{CompassionateLeave: updated}, nil
}
