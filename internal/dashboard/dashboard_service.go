package dashboard

import (
	"context"

	"go.uber.org/zap"

	"leavedesk/internal/shared/cache"
	"leavedesk/internal/shared/contextutil"
	"leavedesk/internal/upstream"
)

type Service interface {
	Employee(ctx context.Context) (upstream.EmployeeDashboard, error)
	Manager(ctx context.Context) (upstream.ManagerDashboard, error)
}

type service struct {
	api    upstream.DashboardAPI
	cache  *cache.TagCache
	logger *zap.Logger
}

func NewService(api upstream.DashboardAPI, tagCache *cache.TagCache, logger ...*zap.Logger) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{api: api, cache: tagCache, logger: l}
}

// Both views are cached per caller: the upstream aggregates over the
// bearer token's own records.
func (s *service) Employee(ctx context.Context) (upstream.EmployeeDashboard, error) {
	return cache.Through(s.cache, ctx,
		cache.Key("dashboard/employee", "employee="+contextutil.GetEmployeeID(ctx)),
		[]string{cache.TagDashboard},
		func(ctx context.Context) (upstream.EmployeeDashboard, error) {
			return s.api.EmployeeDashboard(ctx)
		},
	)
}

func (s *service) Manager(ctx context.Context) (upstream.ManagerDashboard, error) {
	return cache.Through(s.cache, ctx,
		cache.Key("dashboard/manager", "employee="+contextutil.GetEmployeeID(ctx)),
		[]string{cache.TagDashboard},
		func(ctx context.Context) (upstream.ManagerDashboard, error) {
			return s.api.ManagerDashboard(ctx)
		},
	)
}
