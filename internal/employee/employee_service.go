package employee

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"leavedesk/internal/shared/cache"
	"leavedesk/internal/shared/response"
	"leavedesk/internal/upstream"
)

type Service interface {
	List(ctx context.Context, query ListQuery) ([]EmployeeResponse, response.PaginationMeta, error)
	ByID(ctx context.Context, id string) (EmployeeResponse, error)
	Create(ctx context.Context, form CreateEmployeeForm) (EmployeeResponse, error)
	Update(ctx context.Context, id string, form UpdateEmployeeForm) (EmployeeResponse, error)
}

type service struct {
	api    upstream.EmployeeAPI
	cache  *cache.TagCache
	logger *zap.Logger
}

func NewService(api upstream.EmployeeAPI, tagCache *cache.TagCache, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{api: api, cache: tagCache, logger: l}
}

func (s *service) List(ctx context.Context, query ListQuery) ([]EmployeeResponse, response.PaginationMeta, error) {
	key := cache.Key("employees",
		"search="+query.Search,
		"page="+strconv.Itoa(query.Page),
		"size="+strconv.Itoa(query.Size),
		"sort="+query.Sort,
	)
	page, err := cache.Through(s.cache, ctx, key, []string{cache.TagEmployees},
		func(ctx context.Context) (upstream.Page[upstream.Employee], error) {
			return s.api.Employees(ctx, query.Search, upstream.PageQuery{
				Page: query.Page,
				Size: query.Size,
				Sort: query.Sort,
			})
		},
	)
	if err != nil {
		return nil, response.PaginationMeta{}, err
	}

	out := make([]EmployeeResponse, len(page.Content))
	for i, e := range page.Content {
		out[i] = mapToResponse(e)
	}
	meta := response.NewPaginationMeta(page.TotalElements, page.Page, page.Size)
	return out, meta, nil
}

func (s *service) ByID(ctx context.Context, id string) (EmployeeResponse, error) {
	emp, err := cache.Through(s.cache, ctx,
		cache.Key("employees/"+id),
		[]string{cache.TagEmployees},
		func(ctx context.Context) (upstream.Employee, error) {
			return s.api.EmployeeByID(ctx, id)
		},
	)
	if err != nil {
		return EmployeeResponse{}, err
	}
	return mapToResponse(emp), nil
}

func (s *service) Create(ctx context.Context, form CreateEmployeeForm) (EmployeeResponse, error) {
	created, err := s.api.CreateEmployee(ctx, upstream.CreateEmployeeRequest{
		FirstName:    form.FirstName,
		LastName:     form.LastName,
		Email:        form.Email,
		PhoneNumber:  form.PhoneNumber,
		Role:         form.Role,
		DepartmentID: form.DepartmentID,
	})
	if err != nil {
		return EmployeeResponse{}, err
	}

	s.cache.Invalidate(ctx, cache.TagEmployees, cache.TagDashboard)
	s.logger.Info("employee created",
		zap.String("employee_id", created.ID),
		zap.String("role", created.Role),
	)
	return mapToResponse(created), nil
}

func (s *service) Update(ctx context.Context, id string, form UpdateEmployeeForm) (EmployeeResponse, error) {
	updated, err := s.api.UpdateEmployee(ctx, id, upstream.UpdateEmployeeRequest{
		FirstName:    form.FirstName,
		LastName:     form.LastName,
		PhoneNumber:  form.PhoneNumber,
		Role:         form.Role,
		DepartmentID: form.DepartmentID,
		Active:       form.Active,
	})
	if err != nil {
		return EmployeeResponse{}, err
	}

	s.cache.Invalidate(ctx, cache.TagEmployees, cache.TagDashboard)
	s.logger.Info("employee updated", zap.String("employee_id", id))
	return mapToResponse(updated), nil
}

func mapToResponse(e upstream.Employee) EmployeeResponse {
	return EmployeeResponse{
		Employee: e,
		FullName: strings.TrimSpace(e.FirstName + " " + e.LastName),
	}
}
