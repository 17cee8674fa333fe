package policy

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"leavedesk/internal/leavedate"
	"leavedesk/internal/shared/apperror"
	"leavedesk/internal/shared/cache"
	"leavedesk/internal/upstream"
)

var errUnknownLeaveType = apperror.New(
	apperror.CodeInvalidInput,
	"Unknown leave type",
	http.StatusBadRequest,
)

type Service interface {
	List(ctx context.Context) ([]PolicyResponse, error)
	ByID(ctx context.Context, id string) (PolicyResponse, error)
	Create(ctx context.Context, form SavePolicyForm) (PolicyResponse, error)
	Patch(ctx context.Context, id string, form PatchPolicyForm) (PolicyResponse, error)
	Replace(ctx context.Context, id string, form SavePolicyForm) (PolicyResponse, error)
}

type service struct {
	api    upstream.PolicyAPI
	cache  *cache.TagCache
	logger *zap.Logger
}

func NewService(api upstream.PolicyAPI, tagCache *cache.TagCache, logger ...*zap.Logger) Service {
	l := zap.L().Named("policy.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("policy.service")
	}
	return &service{api: api, cache: tagCache, logger: l}
}

func (s *service) List(ctx context.Context) ([]PolicyResponse, error) {
	policies, err := cache.Through(s.cache, ctx,
		cache.Key("leave-policies"),
		[]string{cache.TagPolicies},
		func(ctx context.Context) ([]upstream.LeavePolicy, error) {
			return s.api.Policies(ctx)
		},
	)
	if err != nil {
		return nil, err
	}

	out := make([]PolicyResponse, len(policies))
	for i, p := range policies {
		out[i] = mapToResponse(p)
	}
	return out, nil
}

func (s *service) ByID(ctx context.Context, id string) (PolicyResponse, error) {
	p, err := cache.Through(s.cache, ctx,
		cache.Key("leave-policies/"+id),
		[]string{cache.TagPolicies},
		func(ctx context.Context) (upstream.LeavePolicy, error) {
			return s.api.PolicyByID(ctx, id)
		},
	)
	if err != nil {
		return PolicyResponse{}, err
	}
	return mapToResponse(p), nil
}

func (s *service) Create(ctx context.Context, form SavePolicyForm) (PolicyResponse, error) {
	if !leavedate.KnownType(form.LeaveType) {
		return PolicyResponse{}, errUnknownLeaveType
	}

	created, err := s.api.CreatePolicy(ctx, toSaveRequest(form))
	if err != nil {
		return PolicyResponse{}, err
	}

	s.invalidate(ctx)
	s.logger.Info("policy created",
		zap.String("policy_id", created.ID),
		zap.String("leave_type", created.LeaveType),
	)
	return mapToResponse(created), nil
}

func (s *service) Patch(ctx context.Context, id string, form PatchPolicyForm) (PolicyResponse, error) {
	updated, err := s.api.PatchPolicy(ctx, id, upstream.PatchPolicyRequest{
		Allowance:             form.Allowance,
		CarryForwardLimit:     form.CarryForwardLimit,
		MinDaysBeforeRequest:  form.MinDaysBeforeRequest,
		RequiresDocumentation: form.RequiresDocumentation,
		RequiresApproval:      form.RequiresApproval,
		Description:           form.Description,
		Active:                form.Active,
	})
	if err != nil {
		return PolicyResponse{}, err
	}

	s.invalidate(ctx)
	s.logger.Info("policy patched", zap.String("policy_id", id))
	return mapToResponse(updated), nil
}

func (s *service) Replace(ctx context.Context, id string, form SavePolicyForm) (PolicyResponse, error) {
	if !leavedate.KnownType(form.LeaveType) {
		return PolicyResponse{}, errUnknownLeaveType
	}

	updated, err := s.api.UpdatePolicy(ctx, id, toSaveRequest(form))
	if err != nil {
		return PolicyResponse{}, err
	}

	s.invalidate(ctx)
	s.logger.Info("policy replaced", zap.String("policy_id", id))
	return mapToResponse(updated), nil
}

// invalidate drops the policies and everything computed from them. The
// eligibility gate reads allowance and notice rules, so balances go too.
func (s *service) invalidate(ctx context.Context) {
	s.cache.Invalidate(ctx, cache.TagPolicies, cache.TagBalances)
}

func toSaveRequest(form SavePolicyForm) upstream.SavePolicyRequest {
	return upstream.SavePolicyRequest{
		LeaveType:             form.LeaveType,
		Allowance:             form.Allowance,
		CarryForwardLimit:     form.CarryForwardLimit,
		MinDaysBeforeRequest:  form.MinDaysBeforeRequest,
		RequiresDocumentation: form.RequiresDocumentation,
		RequiresApproval:      form.RequiresApproval,
		Description:           form.Description,
	}
}

func mapToResponse(p upstream.LeavePolicy) PolicyResponse {
	return PolicyResponse{
		LeavePolicy: p,
		TypeName:    leavedate.DisplayName(p.LeaveType),
	}
}
