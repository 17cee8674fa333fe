package leaveapp_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"

	"leavedesk/internal/balance"
	"leavedesk/internal/leaveapp"
	"leavedesk/internal/leavedate"
	"leavedesk/internal/shared/apperror"
	"leavedesk/internal/shared/cache"
	"leavedesk/internal/shared/contextutil"
	"leavedesk/internal/upstream"
)

type fakeLeaveAPI struct {
	createFn         func(ctx context.Context, req upstream.CreateLeaveRequest) (upstream.LeaveApplication, error)
	employeeLeavesFn func(ctx context.Context, filter upstream.LeaveFilter) (upstream.Page[upstream.LeaveApplication], error)
	byStatusFn       func(ctx context.Context, status string) ([]upstream.LeaveApplication, error)
	updateStatusFn   func(ctx context.Context, id, status, comment string) (upstream.LeaveApplication, error)
	cancelFn         func(ctx context.Context, id string) (upstream.LeaveApplication, error)
	onDateFn         func(ctx context.Context, selectedDate, department string) ([]upstream.LeaveApplication, error)
	exportCSVFn      func(ctx context.Context, status string, filter upstream.LeaveFilter) ([]byte, string, error)
	createCalled     int
}

func (f *fakeLeaveAPI) CreateLeave(ctx context.Context, req upstream.CreateLeaveRequest) (upstream.LeaveApplication, error) {
	f.createCalled++
	if f.createFn != nil {
		return f.createFn(ctx, req)
	}
	return upstream.LeaveApplication{}, nil
}

func (f *fakeLeaveAPI) EmployeeLeaves(ctx context.Context, filter upstream.LeaveFilter) (upstream.Page[upstream.LeaveApplication], error) {
	if f.employeeLeavesFn != nil {
		return f.employeeLeavesFn(ctx, filter)
	}
	return upstream.Page[upstream.LeaveApplication]{}, nil
}

func (f *fakeLeaveAPI) LeavesByStatus(ctx context.Context, status string) ([]upstream.LeaveApplication, error) {
	if f.byStatusFn != nil {
		return f.byStatusFn(ctx, status)
	}
	return nil, nil
}

func (f *fakeLeaveAPI) UpdateLeaveStatus(ctx context.Context, id, status, comment string) (upstream.LeaveApplication, error) {
	if f.updateStatusFn != nil {
		return f.updateStatusFn(ctx, id, status, comment)
	}
	return upstream.LeaveApplication{}, nil
}

func (f *fakeLeaveAPI) CancelLeave(ctx context.Context, id string) (upstream.LeaveApplication, error) {
	if f.cancelFn != nil {
		return f.cancelFn(ctx, id)
	}
	return upstream.LeaveApplication{}, nil
}

func (f *fakeLeaveAPI) LeavesOnDate(ctx context.Context, selectedDate, department string) ([]upstream.LeaveApplication, error) {
	if f.onDateFn != nil {
		return f.onDateFn(ctx, selectedDate, department)
	}
	return nil, nil
}

func (f *fakeLeaveAPI) ExportLeavesCSV(ctx context.Context, status string, filter upstream.LeaveFilter) ([]byte, string, error) {
	if f.exportCSVFn != nil {
		return f.exportCSVFn(ctx, status, filter)
	}
	return nil, "", nil
}

type fakeEligibility struct {
	checkFn func(ctx context.Context, in balance.EligibilityInput) (balance.EligibilityResult, error)
}

func (f *fakeEligibility) Balances(ctx context.Context) ([]balance.BalanceResponse, error) {
	return nil, nil
}

func (f *fakeEligibility) CheckEligibility(ctx context.Context, in balance.EligibilityInput) (balance.EligibilityResult, error) {
	if f.checkFn != nil {
		return f.checkFn(ctx, in)
	}
	return balance.EligibilityResult{Eligible: true, Days: 1}, nil
}

func futureWeekday(daysOut int) string {
	d := time.Now().UTC().AddDate(0, 0, daysOut)
	for d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
		d = d.AddDate(0, 0, 1)
	}
	return d.Format(leavedate.APIDateLayout)
}

func TestLeaveService_Create(t *testing.T) {
	day := futureWeekday(30)

	t.Run("submits and maps the created record", func(t *testing.T) {
		api := &fakeLeaveAPI{
			createFn: func(ctx context.Context, req upstream.CreateLeaveRequest) (upstream.LeaveApplication, error) {
				assert.Equal(t, leavedate.TypeAnnual, req.LeaveType)
				assert.Equal(t, day, req.StartDate)
				return upstream.LeaveApplication{
					ID:        "lv-1",
					LeaveType: req.LeaveType,
					StartDate: req.StartDate,
					EndDate:   req.EndDate,
					Status:    leavedate.StatusPending,
				}, nil
			},
		}
		svc := leaveapp.NewService(api, &fakeEligibility{}, cache.New(nil))

		resp, err := svc.Create(context.Background(), leaveapp.CreateLeaveForm{
			LeaveType: leavedate.TypeAnnual,
			StartDate: day,
			EndDate:   day,
			Reason:    "family trip",
		})

		assert.NoError(t, err)
		assert.Equal(t, "lv-1", resp.ID)
		assert.Equal(t, 1.0, resp.Days)
		assert.True(t, resp.CanCancel)
	})

	t.Run("half day submits half a chargeable day", func(t *testing.T) {
		api := &fakeLeaveAPI{
			createFn: func(ctx context.Context, req upstream.CreateLeaveRequest) (upstream.LeaveApplication, error) {
				assert.Equal(t, req.StartDate, req.EndDate)
				return upstream.LeaveApplication{
					ID:        "lv-2",
					LeaveType: req.LeaveType,
					StartDate: req.StartDate,
					EndDate:   req.EndDate,
					IsHalfDay: true,
					Status:    leavedate.StatusPending,
				}, nil
			},
		}
		svc := leaveapp.NewService(api, &fakeEligibility{}, cache.New(nil))

		resp, err := svc.Create(context.Background(), leaveapp.CreateLeaveForm{
			LeaveType: leavedate.TypeAnnual,
			StartDate: day,
			EndDate:   futureWeekday(35),
			IsHalfDay: true,
			Reason:    "appointment",
		})

		assert.NoError(t, err)
		assert.Equal(t, 0.5, resp.Days)
	})

	t.Run("ineligible request never reaches the upstream", func(t *testing.T) {
		api := &fakeLeaveAPI{}
		eligibility := &fakeEligibility{
			checkFn: func(ctx context.Context, in balance.EligibilityInput) (balance.EligibilityResult, error) {
				return balance.EligibilityResult{
					Eligible: false,
					Failures: []string{"insufficient balance for the requested days"},
				}, nil
			},
		}
		svc := leaveapp.NewService(api, eligibility, cache.New(nil))

		_, err := svc.Create(context.Background(), leaveapp.CreateLeaveForm{
			LeaveType: leavedate.TypeAnnual,
			StartDate: day,
			EndDate:   day,
			Reason:    "trip",
		})

		assert.Error(t, err)
		assert.Equal(t, 0, api.createCalled)

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusUnprocessableEntity, appErr.HTTPStatus)
		if assert.Len(t, appErr.FieldErrors, 1) {
			assert.Equal(t, "endDate", appErr.FieldErrors[0].Field)
		}
	})

	t.Run("upstream field errors pass through untouched", func(t *testing.T) {
		upstreamErr := apperror.New(apperror.CodeInvalidInput, "Validation failed", http.StatusBadRequest).
			WithFields([]apperror.FieldError{
				{Field: "startDate", Message: "must be in the future"},
			})
		api := &fakeLeaveAPI{
			createFn: func(ctx context.Context, req upstream.CreateLeaveRequest) (upstream.LeaveApplication, error) {
				return upstream.LeaveApplication{}, upstreamErr
			},
		}
		svc := leaveapp.NewService(api, &fakeEligibility{}, cache.New(nil))

		_, err := svc.Create(context.Background(), leaveapp.CreateLeaveForm{
			LeaveType: leavedate.TypeAnnual,
			StartDate: day,
			EndDate:   day,
			Reason:    "trip",
		})

		var appErr *apperror.AppError
		assert.True(t, errors.As(err, &appErr))
		if assert.Len(t, appErr.FieldErrors, 1) {
			assert.Equal(t, "startDate", appErr.FieldErrors[0].Field)
			assert.Equal(t, "must be in the future", appErr.FieldErrors[0].Message)
		}
	})

	t.Run("rejects unknown type and malformed dates", func(t *testing.T) {
		svc := leaveapp.NewService(&fakeLeaveAPI{}, &fakeEligibility{}, cache.New(nil))

		_, err := svc.Create(context.Background(), leaveapp.CreateLeaveForm{
			LeaveType: "SABBATICAL", StartDate: day, EndDate: day, Reason: "x",
		})
		assert.Error(t, err)

		_, err = svc.Create(context.Background(), leaveapp.CreateLeaveForm{
			LeaveType: leavedate.TypeAnnual, StartDate: "30/01/2026", EndDate: day, Reason: "x",
		})
		assert.Error(t, err)
	})
}

func TestLeaveService_History(t *testing.T) {
	api := &fakeLeaveAPI{
		employeeLeavesFn: func(ctx context.Context, filter upstream.LeaveFilter) (upstream.Page[upstream.LeaveApplication], error) {
			assert.Equal(t, 2, filter.Page)
			assert.Equal(t, 10, filter.Size)
			return upstream.Page[upstream.LeaveApplication]{
				Content: []upstream.LeaveApplication{
					{ID: "lv-1", LeaveType: leavedate.TypeSick, StartDate: "2026-03-02", EndDate: "2026-03-03", Status: leavedate.StatusApproved},
				},
				Page:          2,
				Size:          10,
				TotalPages:    3,
				TotalElements: 25,
			}, nil
		},
	}
	svc := leaveapp.NewService(api, &fakeEligibility{}, cache.New(nil))

	resp, meta, err := svc.History(context.Background(), leaveapp.HistoryQuery{Page: 2, Size: 10})

	assert.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, int64(25), meta.TotalElements)
	assert.Equal(t, 2.0, resp[0].Days)
	assert.False(t, resp[0].CanCancel)
}

func TestLeaveService_Decide(t *testing.T) {
	t.Run("approves a pending request", func(t *testing.T) {
		api := &fakeLeaveAPI{
			updateStatusFn: func(ctx context.Context, id, status, comment string) (upstream.LeaveApplication, error) {
				assert.Equal(t, "lv-1", id)
				assert.Equal(t, leavedate.StatusApproved, status)
				return upstream.LeaveApplication{ID: id, Status: status, StartDate: "2026-03-02", EndDate: "2026-03-02"}, nil
			},
		}
		svc := leaveapp.NewService(api, &fakeEligibility{}, cache.New(nil))

		resp, err := svc.Decide(context.Background(), "lv-1", leaveapp.DecideForm{Status: leavedate.StatusApproved})

		assert.NoError(t, err)
		assert.Equal(t, leavedate.StatusApproved, resp.Status)
		assert.False(t, resp.CanCancel)
	})

	t.Run("cancellation is not a decision", func(t *testing.T) {
		svc := leaveapp.NewService(&fakeLeaveAPI{}, &fakeEligibility{}, cache.New(nil))

		_, err := svc.Decide(context.Background(), "lv-1", leaveapp.DecideForm{Status: leavedate.StatusCanceled})
		assert.Error(t, err)
	})

	t.Run("rejects unknown status values", func(t *testing.T) {
		svc := leaveapp.NewService(&fakeLeaveAPI{}, &fakeEligibility{}, cache.New(nil))

		_, err := svc.Decide(context.Background(), "lv-1", leaveapp.DecideForm{Status: "ESCALATED"})
		assert.Error(t, err)
	})
}

func TestLeaveService_Cancel(t *testing.T) {
	api := &fakeLeaveAPI{
		cancelFn: func(ctx context.Context, id string) (upstream.LeaveApplication, error) {
			return upstream.LeaveApplication{ID: id, Status: leavedate.StatusCanceled, StartDate: "2026-03-02", EndDate: "2026-03-02"}, nil
		},
	}
	svc := leaveapp.NewService(api, &fakeEligibility{}, cache.New(nil))

	resp, err := svc.Cancel(context.Background(), "lv-1")

	assert.NoError(t, err)
	assert.Equal(t, leavedate.StatusCanceled, resp.Status)
	assert.False(t, resp.CanCancel)
}

func TestLeaveService_OnDate(t *testing.T) {
	t.Run("rejects malformed dates before calling upstream", func(t *testing.T) {
		called := false
		api := &fakeLeaveAPI{
			onDateFn: func(ctx context.Context, selectedDate, department string) ([]upstream.LeaveApplication, error) {
				called = true
				return nil, nil
			},
		}
		svc := leaveapp.NewService(api, &fakeEligibility{}, cache.New(nil))

		_, err := svc.OnDate(context.Background(), "not-a-date", "")
		assert.Error(t, err)
		assert.False(t, called)
	})

	t.Run("forwards date and department", func(t *testing.T) {
		api := &fakeLeaveAPI{
			onDateFn: func(ctx context.Context, selectedDate, department string) ([]upstream.LeaveApplication, error) {
				assert.Equal(t, "2026-03-02", selectedDate)
				assert.Equal(t, "dep-1", department)
				return []upstream.LeaveApplication{{ID: "lv-1", StartDate: "2026-03-02", EndDate: "2026-03-02", Status: leavedate.StatusApproved}}, nil
			},
		}
		svc := leaveapp.NewService(api, &fakeEligibility{}, cache.New(nil))

		resp, err := svc.OnDate(context.Background(), "2026-03-02", "dep-1")
		assert.NoError(t, err)
		assert.Len(t, resp, 1)
	})
}

func TestLeaveService_ExportXLSX(t *testing.T) {
	t.Run("builds a workbook from the listing", func(t *testing.T) {
		api := &fakeLeaveAPI{
			byStatusFn: func(ctx context.Context, status string) ([]upstream.LeaveApplication, error) {
				assert.Equal(t, leavedate.StatusApproved, status)
				return []upstream.LeaveApplication{
					{ID: "lv-1", EmployeeName: "Ana Widodo", LeaveType: leavedate.TypeAnnual, StartDate: "2026-03-02", EndDate: "2026-03-04", Status: leavedate.StatusApproved},
				}, nil
			},
		}
		svc := leaveapp.NewService(api, &fakeEligibility{}, cache.New(nil))

		data, err := svc.ExportXLSX(context.Background(), leavedate.StatusApproved, leaveapp.HistoryQuery{})

		assert.NoError(t, err)
		assert.NotEmpty(t, data)
		// xlsx files are zip archives
		assert.Equal(t, []byte{'P', 'K'}, data[:2])
	})

	t.Run("empty listing is an error, not an empty file", func(t *testing.T) {
		api := &fakeLeaveAPI{
			byStatusFn: func(ctx context.Context, status string) ([]upstream.LeaveApplication, error) {
				return nil, nil
			},
		}
		svc := leaveapp.NewService(api, &fakeEligibility{}, cache.New(nil))

		_, err := svc.ExportXLSX(context.Background(), leavedate.StatusRejected, leaveapp.HistoryQuery{})
		assert.Error(t, err)
	})
}

func TestLeaveService_ByStatusCachedPerCaller(t *testing.T) {
	rdb, mock := redismock.NewClientMock()

	fetched := 0
	api := &fakeLeaveAPI{
		byStatusFn: func(ctx context.Context, status string) ([]upstream.LeaveApplication, error) {
			fetched++
			return []upstream.LeaveApplication{{
				ID:     "lv-" + contextutil.GetEmployeeID(ctx),
				Status: status,
			}}, nil
		},
	}
	svc := leaveapp.NewService(api, &fakeEligibility{}, cache.New(rdb))

	for _, emp := range []string{"emp-1", "emp-2"} {
		key := cache.Key("leave-applications/status",
			"employee="+emp, "status="+leavedate.StatusPending,
		)
		mock.ExpectGet(key).RedisNil()
		mock.Regexp().ExpectSet(`ldq:leave-applications/status\?employee=`+emp+`&.+`, `.+`, 5*time.Minute).SetVal("OK")
		mock.ExpectSAdd("ldtag:"+cache.TagLeaveApplications, key).SetVal(1)
		mock.ExpectExpire("ldtag:"+cache.TagLeaveApplications, 10*time.Minute).SetVal(true)
	}

	ctxA := contextutil.WithEmployeeID(context.Background(), "emp-1")
	respA, err := svc.ByStatus(ctxA, leavedate.StatusPending)
	assert.NoError(t, err)

	ctxB := contextutil.WithEmployeeID(context.Background(), "emp-2")
	respB, err := svc.ByStatus(ctxB, leavedate.StatusPending)
	assert.NoError(t, err)

	// Each manager's token sees a different team upstream; the cache must
	// not hand one caller's list to the next.
	assert.Equal(t, 2, fetched)
	if assert.Len(t, respA, 1) {
		assert.Equal(t, "lv-emp-1", respA[0].ID)
	}
	if assert.Len(t, respB, 1) {
		assert.Equal(t, "lv-emp-2", respB[0].ID)
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}
