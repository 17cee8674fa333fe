package balance

import (
	"context"
	"time"

	"go.uber.org/zap"

	"leavedesk/internal/leavedate"
	"leavedesk/internal/shared/cache"
	"leavedesk/internal/shared/contextutil"
	"leavedesk/internal/upstream"
)

type Service interface {
	Balances(ctx context.Context) ([]BalanceResponse, error)
	CheckEligibility(ctx context.Context, in EligibilityInput) (EligibilityResult, error)
}

type service struct {
	api      upstream.BalanceAPI
	policies upstream.PolicyAPI
	cache    *cache.TagCache
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(api upstream.BalanceAPI, policies upstream.PolicyAPI, tagCache *cache.TagCache, logger ...*zap.Logger) Service {
	l := zap.L().Named("balance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("balance.service")
	}
	return &service{
		api:      api,
		policies: policies,
		cache:    tagCache,
		now:      time.Now,
		logger:   l,
	}
}

// Balances joins the caller's remaining allowances with the policy
// allowances so the view can show "used" amounts. The subtraction happens
// here, not in the HR core.
func (s *service) Balances(ctx context.Context) ([]BalanceResponse, error) {
	balances, err := cache.Through(s.cache, ctx,
		cache.Key("leave-balances", "employee="+contextutil.GetEmployeeID(ctx)),
		[]string{cache.TagBalances},
		s.api.Balances,
	)
	if err != nil {
		return nil, err
	}

	policies, err := s.cachedPolicies(ctx)
	if err != nil {
		return nil, err
	}

	allowanceByType := make(map[string]float64, len(policies))
	for _, p := range policies {
		allowanceByType[p.LeaveType] = p.Allowance
	}

	resp := make([]BalanceResponse, 0, len(balances))
	for _, b := range balances {
		allowance := allowanceByType[b.LeaveType]
		used := allowance - b.Allowance
		if used < 0 {
			used = 0
		}
		resp = append(resp, BalanceResponse{
			LeaveType:   b.LeaveType,
			DisplayName: leavedate.DisplayName(b.LeaveType),
			Allowance:   allowance,
			Remaining:   b.Allowance,
			Used:        used,
			Year:        b.Year,
		})
	}
	return resp, nil
}

// CheckEligibility runs the pre-submission gate: the HR core's type and
// days checks plus the local reason, notice-period and document rules.
// Half-day requests skip the days-balance check; that bypass is the
// established behavior (see DESIGN.md).
func (s *service) CheckEligibility(ctx context.Context, in EligibilityInput) (EligibilityResult, error) {
	start, end := leavedate.NormalizeHalfDay(in.StartDate, in.EndDate, in.HalfDay)
	days := leavedate.ChargeableDays(start, end, in.HalfDay)
	result := EligibilityResult{Days: days}

	if !leavedate.KnownType(in.LeaveType) {
		result.Failures = append(result.Failures, "unknown leave type")
		return result, nil
	}
	if days <= 0 {
		result.Failures = append(result.Failures, "the selected range contains no working days")
	}

	typeOK, err := s.api.ValidateLeaveType(ctx, in.LeaveType)
	if err != nil {
		return result, err
	}
	if !typeOK {
		result.Failures = append(result.Failures,
			leavedate.DisplayName(in.LeaveType)+" is not available for you")
	}

	if days > 1 && !in.HalfDay {
		daysOK, err := s.api.ValidateLeaveDays(ctx, in.LeaveType, days)
		if err != nil {
			return result, err
		}
		if !daysOK {
			result.Failures = append(result.Failures, "insufficient balance for the requested days")
		}
	}

	if in.Reason == "" {
		result.Failures = append(result.Failures, "a reason is required")
	}

	policy, found, err := s.policyFor(ctx, in.LeaveType)
	if err != nil {
		return result, err
	}
	if found {
		if !leavedate.MeetsNotice(start, s.now(), policy.MinDaysBeforeRequest) {
			result.Failures = append(result.Failures, "the notice period for this leave type is not met")
		}
		if leavedate.RequiresDocument(in.LeaveType, days, policy.RequiresDocumentation) && !in.HasDocument {
			result.Failures = append(result.Failures, "a supporting document is required")
		}
	} else if leavedate.RequiresDocument(in.LeaveType, days, false) && !in.HasDocument {
		result.Failures = append(result.Failures, "a supporting document is required")
	}

	result.Eligible = len(result.Failures) == 0
	s.logger.Debug("eligibility checked",
		zap.String("leave_type", in.LeaveType),
		zap.Float64("days", days),
		zap.Bool("eligible", result.Eligible),
		zap.Strings("failures", result.Failures),
	)
	return result, nil
}

func (s *service) cachedPolicies(ctx context.Context) ([]upstream.LeavePolicy, error) {
	return cache.Through(s.cache, ctx,
		cache.Key("leave-policies"),
		[]string{cache.TagPolicies},
		s.policies.Policies,
	)
}

func (s *service) policyFor(ctx context.Context, leaveType string) (upstream.LeavePolicy, bool, error) {
	policies, err := s.cachedPolicies(ctx)
	if err != nil {
		return upstream.LeavePolicy{}, false, err
	}
	for _, p := range policies {
		if p.LeaveType == leaveType {
			return p, true, nil
		}
	}
	return upstream.LeavePolicy{}, false, nil
}
