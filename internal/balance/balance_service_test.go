package balance_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"leavedesk/internal/balance"
	"leavedesk/internal/leavedate"
	"leavedesk/internal/shared/cache"
	"leavedesk/internal/upstream"
)

type fakeBalanceAPI struct {
	balancesFn         func(ctx context.Context) ([]upstream.LeaveBalance, error)
	validateTypeFn     func(ctx context.Context, leaveType string) (bool, error)
	validateDaysFn     func(ctx context.Context, leaveType string, days float64) (bool, error)
	validateDaysCalled int
}

func (f *fakeBalanceAPI) Balances(ctx context.Context) ([]upstream.LeaveBalance, error) {
	if f.balancesFn != nil {
		return f.balancesFn(ctx)
	}
	return nil, nil
}

func (f *fakeBalanceAPI) ValidateLeaveType(ctx context.Context, leaveType string) (bool, error) {
	if f.validateTypeFn != nil {
		return f.validateTypeFn(ctx, leaveType)
	}
	return true, nil
}

func (f *fakeBalanceAPI) ValidateLeaveDays(ctx context.Context, leaveType string, days float64) (bool, error) {
	f.validateDaysCalled++
	if f.validateDaysFn != nil {
		return f.validateDaysFn(ctx, leaveType, days)
	}
	return true, nil
}

type fakePolicyAPI struct {
	policiesFn func(ctx context.Context) ([]upstream.LeavePolicy, error)
}

func (f *fakePolicyAPI) Policies(ctx context.Context) ([]upstream.LeavePolicy, error) {
	if f.policiesFn != nil {
		return f.policiesFn(ctx)
	}
	return nil, nil
}

func (f *fakePolicyAPI) PolicyByID(ctx context.Context, id string) (upstream.LeavePolicy, error) {
	return upstream.LeavePolicy{}, nil
}

func (f *fakePolicyAPI) CreatePolicy(ctx context.Context, req upstream.SavePolicyRequest) (upstream.LeavePolicy, error) {
	return upstream.LeavePolicy{}, nil
}

func (f *fakePolicyAPI) PatchPolicy(ctx context.Context, id string, req upstream.PatchPolicyRequest) (upstream.LeavePolicy, error) {
	return upstream.LeavePolicy{}, nil
}

func (f *fakePolicyAPI) UpdatePolicy(ctx context.Context, id string, req upstream.SavePolicyRequest) (upstream.LeavePolicy, error) {
	return upstream.LeavePolicy{}, nil
}

// nextMonday keeps fixtures clear of the notice-period window.
func nextMonday() time.Time {
	d := time.Now().UTC().AddDate(0, 0, 14)
	for d.Weekday() != time.Monday {
		d = d.AddDate(0, 0, 1)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

func TestBalanceService_Balances(t *testing.T) {
	ctx := context.Background()

	api := &fakeBalanceAPI{
		balancesFn: func(ctx context.Context) ([]upstream.LeaveBalance, error) {
			return []upstream.LeaveBalance{
				{LeaveType: leavedate.TypeAnnual, Allowance: 12, Year: 2026},
				{LeaveType: leavedate.TypeSick, Allowance: 10, Year: 2026},
			}, nil
		},
	}
	policies := &fakePolicyAPI{
		policiesFn: func(ctx context.Context) ([]upstream.LeavePolicy, error) {
			return []upstream.LeavePolicy{
				{LeaveType: leavedate.TypeAnnual, Allowance: 20},
				{LeaveType: leavedate.TypeSick, Allowance: 10},
			}, nil
		},
	}

	svc := balance.NewService(api, policies, cache.New(nil))
	resp, err := svc.Balances(ctx)

	assert.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, 8.0, resp[0].Used) // 20 allowed, 12 remaining
	assert.Equal(t, 12.0, resp[0].Remaining)
	assert.Equal(t, "Annual Leave", resp[0].DisplayName)
	assert.Equal(t, 0.0, resp[1].Used)
}

func TestBalanceService_CheckEligibility(t *testing.T) {
	ctx := context.Background()
	monday := nextMonday()

	t.Run("all checks pass", func(t *testing.T) {
		api := &fakeBalanceAPI{}
		svc := balance.NewService(api, &fakePolicyAPI{}, cache.New(nil))

		result, err := svc.CheckEligibility(ctx, balance.EligibilityInput{
			LeaveType: leavedate.TypeAnnual,
			StartDate: monday,
			EndDate:   monday.AddDate(0, 0, 2),
			Reason:    "family trip",
		})

		assert.NoError(t, err)
		assert.True(t, result.Eligible)
		assert.Equal(t, 3.0, result.Days)
		assert.Empty(t, result.Failures)
		assert.Equal(t, 1, api.validateDaysCalled)
	})

	t.Run("half day bypasses the days-balance check", func(t *testing.T) {
		api := &fakeBalanceAPI{
			validateDaysFn: func(ctx context.Context, leaveType string, days float64) (bool, error) {
				return false, nil
			},
		}
		svc := balance.NewService(api, &fakePolicyAPI{}, cache.New(nil))

		result, err := svc.CheckEligibility(ctx, balance.EligibilityInput{
			LeaveType: leavedate.TypeAnnual,
			StartDate: monday,
			EndDate:   monday,
			HalfDay:   true,
			Reason:    "appointment",
		})

		assert.NoError(t, err)
		assert.True(t, result.Eligible)
		assert.Equal(t, 0.5, result.Days)
		assert.Equal(t, 0, api.validateDaysCalled)
	})

	t.Run("leave type not allowed", func(t *testing.T) {
		api := &fakeBalanceAPI{
			validateTypeFn: func(ctx context.Context, leaveType string) (bool, error) {
				return false, nil
			},
		}
		svc := balance.NewService(api, &fakePolicyAPI{}, cache.New(nil))

		result, err := svc.CheckEligibility(ctx, balance.EligibilityInput{
			LeaveType: leavedate.TypeMaternity,
			StartDate: monday,
			EndDate:   monday,
			Reason:    "leave",
		})

		assert.NoError(t, err)
		assert.False(t, result.Eligible)
		assert.Contains(t, result.Failures, "Maternity Leave is not available for you")
	})

	t.Run("insufficient balance", func(t *testing.T) {
		api := &fakeBalanceAPI{
			validateDaysFn: func(ctx context.Context, leaveType string, days float64) (bool, error) {
				assert.Equal(t, 5.0, days)
				return false, nil
			},
		}
		svc := balance.NewService(api, &fakePolicyAPI{}, cache.New(nil))

		result, err := svc.CheckEligibility(ctx, balance.EligibilityInput{
			LeaveType: leavedate.TypeAnnual,
			StartDate: monday,
			EndDate:   monday.AddDate(0, 0, 4),
			Reason:    "trip",
		})

		assert.NoError(t, err)
		assert.False(t, result.Eligible)
		assert.Contains(t, result.Failures, "insufficient balance for the requested days")
	})

	t.Run("sick leave beyond two days needs a document", func(t *testing.T) {
		svc := balance.NewService(&fakeBalanceAPI{}, &fakePolicyAPI{}, cache.New(nil))

		result, err := svc.CheckEligibility(ctx, balance.EligibilityInput{
			LeaveType: leavedate.TypeSick,
			StartDate: monday,
			EndDate:   monday.AddDate(0, 0, 2),
			Reason:    "flu",
		})

		assert.NoError(t, err)
		assert.False(t, result.Eligible)
		assert.Contains(t, result.Failures, "a supporting document is required")

		result, err = svc.CheckEligibility(ctx, balance.EligibilityInput{
			LeaveType:   leavedate.TypeSick,
			StartDate:   monday,
			EndDate:     monday.AddDate(0, 0, 2),
			Reason:      "flu",
			HasDocument: true,
		})
		assert.NoError(t, err)
		assert.True(t, result.Eligible)
	})

	t.Run("missing reason fails", func(t *testing.T) {
		svc := balance.NewService(&fakeBalanceAPI{}, &fakePolicyAPI{}, cache.New(nil))

		result, err := svc.CheckEligibility(ctx, balance.EligibilityInput{
			LeaveType: leavedate.TypeAnnual,
			StartDate: monday,
			EndDate:   monday,
		})

		assert.NoError(t, err)
		assert.False(t, result.Eligible)
		assert.Contains(t, result.Failures, "a reason is required")
	})

	t.Run("notice period from policy", func(t *testing.T) {
		policies := &fakePolicyAPI{
			policiesFn: func(ctx context.Context) ([]upstream.LeavePolicy, error) {
				return []upstream.LeavePolicy{
					{LeaveType: leavedate.TypeAnnual, Allowance: 20, MinDaysBeforeRequest: 30},
				}, nil
			},
		}
		svc := balance.NewService(&fakeBalanceAPI{}, policies, cache.New(nil))

		result, err := svc.CheckEligibility(ctx, balance.EligibilityInput{
			LeaveType: leavedate.TypeAnnual,
			StartDate: monday, // 14-20 days out, under the 30-day notice
			EndDate:   monday,
			Reason:    "trip",
		})

		assert.NoError(t, err)
		assert.False(t, result.Eligible)
		assert.Contains(t, result.Failures, "the notice period for this leave type is not met")
	})

	t.Run("unknown type short-circuits", func(t *testing.T) {
		api := &fakeBalanceAPI{
			validateTypeFn: func(ctx context.Context, leaveType string) (bool, error) {
				t.Fatal("remote checks must not run for unknown types")
				return false, nil
			},
		}
		svc := balance.NewService(api, &fakePolicyAPI{}, cache.New(nil))

		result, err := svc.CheckEligibility(ctx, balance.EligibilityInput{
			LeaveType: "SABBATICAL",
			StartDate: monday,
			EndDate:   monday,
			Reason:    "rest",
		})

		assert.NoError(t, err)
		assert.False(t, result.Eligible)
		assert.Contains(t, result.Failures, "unknown leave type")
	})
}
