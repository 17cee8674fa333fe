package department

import (
	"context"

	"go.uber.org/zap"

	"leavedesk/internal/shared/cache"
	"leavedesk/internal/upstream"
)

type Service interface {
	List(ctx context.Context) ([]DepartmentResponse, error)
	Create(ctx context.Context, form SaveDepartmentForm) (DepartmentResponse, error)
	Update(ctx context.Context, id string, form SaveDepartmentForm) (DepartmentResponse, error)
	SetStatus(ctx context.Context, id string, published bool) (DepartmentResponse, error)
}

type service struct {
	api    upstream.DepartmentAPI
	cache  *cache.TagCache
	logger *zap.Logger
}

func NewService(api upstream.DepartmentAPI, tagCache *cache.TagCache, logger ...*zap.Logger) Service {
	l := zap.L().Named("department.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("department.service")
	}
	return &service{api: api, cache: tagCache, logger: l}
}

func (s *service) List(ctx context.Context) ([]DepartmentResponse, error) {
	departments, err := cache.Through(s.cache, ctx,
		cache.Key("departments"),
		[]string{cache.TagDepartments},
		func(ctx context.Context) ([]upstream.Department, error) {
			return s.api.Departments(ctx)
		},
	)
	if err != nil {
		return nil, err
	}

	out := make([]DepartmentResponse, len(departments))
	for i, d := range departments {
		out[i] = DepartmentResponse{Department: d}
	}
	return out, nil
}

func (s *service) Create(ctx context.Context, form SaveDepartmentForm) (DepartmentResponse, error) {
	created, err := s.api.CreateDepartment(ctx, upstream.SaveDepartmentRequest{
		Name:        form.Name,
		Description: form.Description,
		ManagerID:   form.ManagerID,
	})
	if err != nil {
		return DepartmentResponse{}, err
	}

	s.cache.Invalidate(ctx, cache.TagDepartments)
	s.logger.Info("department created",
		zap.String("department_id", created.ID),
		zap.String("name", created.Name),
	)
	return DepartmentResponse{Department: created}, nil
}

func (s *service) Update(ctx context.Context, id string, form SaveDepartmentForm) (DepartmentResponse, error) {
	updated, err := s.api.UpdateDepartment(ctx, id, upstream.SaveDepartmentRequest{
		Name:        form.Name,
		Description: form.Description,
		ManagerID:   form.ManagerID,
	})
	if err != nil {
		return DepartmentResponse{}, err
	}

	s.cache.Invalidate(ctx, cache.TagDepartments, cache.TagEmployees)
	s.logger.Info("department updated", zap.String("department_id", id))
	return DepartmentResponse{Department: updated}, nil
}

// SetStatus flips the publish flag. Unpublished departments stay out of
// the pickers, so the employee directory caches go too.
func (s *service) SetStatus(ctx context.Context, id string, published bool) (DepartmentResponse, error) {
	updated, err := s.api.SetDepartmentStatus(ctx, id, published)
	if err != nil {
		return DepartmentResponse{}, err
	}

	s.cache.Invalidate(ctx, cache.TagDepartments, cache.TagEmployees)
	s.logger.Info("department status changed",
		zap.String("department_id", id),
		zap.Bool("published", published),
	)
	return DepartmentResponse{Department: updated}, nil
}
