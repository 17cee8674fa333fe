package holiday

import (
	"context"

	"go.uber.org/zap"

	holidayerrors "leavedesk/internal/holiday/errors"
	"leavedesk/internal/leavedate"
	"leavedesk/internal/shared/cache"
	"leavedesk/internal/upstream"
)

type Service interface {
	List(ctx context.Context) ([]HolidayResponse, error)
	Create(ctx context.Context, form SaveHolidayForm) (HolidayResponse, error)
	Update(ctx context.Context, id string, form SaveHolidayForm) (HolidayResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	api    upstream.HolidayAPI
	cache  *cache.TagCache
	logger *zap.Logger
}

func NewService(api upstream.HolidayAPI, tagCache *cache.TagCache, logger ...*zap.Logger) Service {
	l := zap.L().Named("holiday.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("holiday.service")
	}
	return &service{api: api, cache: tagCache, logger: l}
}

func (s *service) List(ctx context.Context) ([]HolidayResponse, error) {
	holidays, err := cache.Through(s.cache, ctx,
		cache.Key("holidays"),
		[]string{cache.TagHolidays},
		func(ctx context.Context) ([]upstream.Holiday, error) {
			return s.api.Holidays(ctx)
		},
	)
	if err != nil {
		return nil, err
	}

	out := make([]HolidayResponse, len(holidays))
	for i, h := range holidays {
		out[i] = mapToResponse(h)
	}
	return out, nil
}

func (s *service) Create(ctx context.Context, form SaveHolidayForm) (HolidayResponse, error) {
	if err := validateForm(form); err != nil {
		return HolidayResponse{}, err
	}

	created, err := s.api.CreateHoliday(ctx, toSaveRequest(form))
	if err != nil {
		return HolidayResponse{}, err
	}

	s.invalidate(ctx)
	s.logger.Info("holiday created",
		zap.String("holiday_id", created.ID),
		zap.String("date", created.Date),
		zap.Bool("recurring", created.Recurring),
	)
	return mapToResponse(created), nil
}

func (s *service) Update(ctx context.Context, id string, form SaveHolidayForm) (HolidayResponse, error) {
	if err := validateForm(form); err != nil {
		return HolidayResponse{}, err
	}

	updated, err := s.api.UpdateHoliday(ctx, id, toSaveRequest(form))
	if err != nil {
		return HolidayResponse{}, err
	}

	s.invalidate(ctx)
	s.logger.Info("holiday updated", zap.String("holiday_id", id))
	return mapToResponse(updated), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.api.DeleteHoliday(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx)
	s.logger.Info("holiday deleted", zap.String("holiday_id", id))
	return nil
}

// invalidate drops the calendar and everything derived from it: the
// compassionate date gate reads holidays, and dashboards count them.
func (s *service) invalidate(ctx context.Context) {
	s.cache.Invalidate(ctx, cache.TagHolidays, cache.TagCompassionate, cache.TagDashboard)
}

func validateForm(form SaveHolidayForm) error {
	if _, err := leavedate.ParseAPIDate(form.Date); err != nil {
		return holidayerrors.ErrInvalidDateFormat
	}
	if form.Restricted && form.RestrictedReason == "" {
		return holidayerrors.ErrRestrictedWithoutReason
	}
	return nil
}

func toSaveRequest(form SaveHolidayForm) upstream.SaveHolidayRequest {
	return upstream.SaveHolidayRequest{
		Name:             form.Name,
		Date:             form.Date,
		Recurring:        form.Recurring,
		Restricted:       form.Restricted,
		RestrictedReason: form.RestrictedReason,
	}
}

func mapToResponse(h upstream.Holiday) HolidayResponse {
	resp := HolidayResponse{Holiday: h}
	if date, err := leavedate.ParseAPIDate(h.Date); err == nil {
		resp.Weekday = date.Weekday().String()
	}
	return resp
}
