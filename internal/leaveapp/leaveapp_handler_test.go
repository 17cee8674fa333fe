package leaveapp_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"leavedesk/internal/leaveapp"
	leaveapperrors "leavedesk/internal/leaveapp/errors"
	"leavedesk/internal/leavedate"
	"leavedesk/internal/shared/apperror"
	"leavedesk/internal/shared/response"
	"leavedesk/internal/upstream"
)

type fakeLeaveService struct {
	createFn     func(ctx context.Context, form leaveapp.CreateLeaveForm) (leaveapp.LeaveResponse, error)
	historyFn    func(ctx context.Context, query leaveapp.HistoryQuery) ([]leaveapp.LeaveResponse, response.PaginationMeta, error)
	byStatusFn   func(ctx context.Context, status string) ([]leaveapp.LeaveResponse, error)
	decideFn     func(ctx context.Context, id string, form leaveapp.DecideForm) (leaveapp.LeaveResponse, error)
	cancelFn     func(ctx context.Context, id string) (leaveapp.LeaveResponse, error)
	onDateFn     func(ctx context.Context, selectedDate, department string) ([]leaveapp.LeaveResponse, error)
	exportCSVFn  func(ctx context.Context, status string, query leaveapp.HistoryQuery) ([]byte, string, error)
	exportXLSXFn func(ctx context.Context, status string, query leaveapp.HistoryQuery) ([]byte, error)
}

func (f *fakeLeaveService) Create(ctx context.Context, form leaveapp.CreateLeaveForm) (leaveapp.LeaveResponse, error) {
	if f.createFn != nil {
		return f.createFn(ctx, form)
	}
	return leaveapp.LeaveResponse{}, nil
}

func (f *fakeLeaveService) History(ctx context.Context, query leaveapp.HistoryQuery) ([]leaveapp.LeaveResponse, response.PaginationMeta, error) {
	if f.historyFn != nil {
		return f.historyFn(ctx, query)
	}
	return nil, response.PaginationMeta{}, nil
}

func (f *fakeLeaveService) ByStatus(ctx context.Context, status string) ([]leaveapp.LeaveResponse, error) {
	if f.byStatusFn != nil {
		return f.byStatusFn(ctx, status)
	}
	return nil, nil
}

func (f *fakeLeaveService) Decide(ctx context.Context, id string, form leaveapp.DecideForm) (leaveapp.LeaveResponse, error) {
	if f.decideFn != nil {
		return f.decideFn(ctx, id, form)
	}
	return leaveapp.LeaveResponse{}, nil
}

func (f *fakeLeaveService) Cancel(ctx context.Context, id string) (leaveapp.LeaveResponse, error) {
	if f.cancelFn != nil {
		return f.cancelFn(ctx, id)
	}
	return leaveapp.LeaveResponse{}, nil
}

func (f *fakeLeaveService) OnDate(ctx context.Context, selectedDate, department string) ([]leaveapp.LeaveResponse, error) {
	if f.onDateFn != nil {
		return f.onDateFn(ctx, selectedDate, department)
	}
	return nil, nil
}

func (f *fakeLeaveService) ExportCSV(ctx context.Context, status string, query leaveapp.HistoryQuery) ([]byte, string, error) {
	if f.exportCSVFn != nil {
		return f.exportCSVFn(ctx, status, query)
	}
	return nil, "", nil
}

func (f *fakeLeaveService) ExportXLSX(ctx context.Context, status string, query leaveapp.HistoryQuery) ([]byte, error) {
	if f.exportXLSXFn != nil {
		return f.exportXLSXFn(ctx, status, query)
	}
	return nil, nil
}

func newLeaveRouter(svc leaveapp.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := leaveapp.NewHandler(svc, nil)
	router := gin.New()
	router.POST("/leave-applications", handler.Create)
	router.GET("/leave-applications/employee", handler.History)
	router.PATCH("/leave-applications/:id/status", handler.Decide)
	router.PATCH("/leave-applications/:id/cancel", handler.Cancel)
	router.GET("/leave-applications/export/:status", handler.Export)
	return router
}

func TestLeaveHandler_Create(t *testing.T) {
	t.Run("created request returns 201 with the mapped record", func(t *testing.T) {
		svc := &fakeLeaveService{
			createFn: func(ctx context.Context, form leaveapp.CreateLeaveForm) (leaveapp.LeaveResponse, error) {
				return leaveapp.LeaveResponse{
					LeaveApplication: upstream.LeaveApplication{ID: "lv-1", Status: leavedate.StatusPending},
					Days:             1,
					CanCancel:        true,
				}, nil
			},
		}
		router := newLeaveRouter(svc)

		body, _ := json.Marshal(gin.H{
			"leaveType": "ANNUAL", "startDate": "2026-03-02", "endDate": "2026-03-02", "reason": "trip",
		})
		req := httptest.NewRequest(http.MethodPost, "/leave-applications", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)

		var envelope struct {
			Ok   bool `json:"ok"`
			Data struct {
				ID        string `json:"id"`
				CanCancel bool   `json:"canCancel"`
			} `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		assert.True(t, envelope.Ok)
		assert.Equal(t, "lv-1", envelope.Data.ID)
		assert.True(t, envelope.Data.CanCancel)
	})

	t.Run("missing fields fail binding with field errors", func(t *testing.T) {
		router := newLeaveRouter(&fakeLeaveService{})

		req := httptest.NewRequest(http.MethodPost, "/leave-applications", bytes.NewReader([]byte(`{"leaveType":"ANNUAL"}`)))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "required")
	})

	t.Run("eligibility failures surface as field errors", func(t *testing.T) {
		svc := &fakeLeaveService{
			createFn: func(ctx context.Context, form leaveapp.CreateLeaveForm) (leaveapp.LeaveResponse, error) {
				return leaveapp.LeaveResponse{}, leaveapperrors.ErrNotEligible.WithFields([]apperror.FieldError{
					{Field: "endDate", Message: "insufficient balance for the requested days"},
				})
			},
		}
		router := newLeaveRouter(svc)

		body, _ := json.Marshal(gin.H{
			"leaveType": "ANNUAL", "startDate": "2026-03-02", "endDate": "2026-03-20", "reason": "trip",
		})
		req := httptest.NewRequest(http.MethodPost, "/leave-applications", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var envelope struct {
			Ok    bool `json:"ok"`
			Error struct {
				FieldErrors []struct {
					Field   string `json:"field"`
					Message string `json:"defaultMessage"`
				} `json:"fieldErrors"`
			} `json:"error"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
		assert.False(t, envelope.Ok)
		if assert.Len(t, envelope.Error.FieldErrors, 1) {
			assert.Equal(t, "endDate", envelope.Error.FieldErrors[0].Field)
		}
	})
}

func TestLeaveHandler_History(t *testing.T) {
	svc := &fakeLeaveService{
		historyFn: func(ctx context.Context, query leaveapp.HistoryQuery) ([]leaveapp.LeaveResponse, response.PaginationMeta, error) {
			assert.Equal(t, 1, query.Page)
			assert.Equal(t, 10, query.Size)
			assert.Equal(t, leavedate.StatusApproved, query.Status)
			return []leaveapp.LeaveResponse{}, response.PaginationMeta{Page: 1, Size: 10, TotalPages: 2, TotalElements: 12}, nil
		},
	}
	router := newLeaveRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/leave-applications/employee?page=1&size=10&status=APPROVED", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Meta response.PaginationMeta `json:"meta"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, 1, envelope.Meta.Page)
	assert.Equal(t, 2, envelope.Meta.TotalPages)
	assert.Equal(t, int64(12), envelope.Meta.TotalElements)
}

func TestLeaveHandler_Decide(t *testing.T) {
	t.Run("rejects statuses outside the decision pair at binding", func(t *testing.T) {
		router := newLeaveRouter(&fakeLeaveService{})

		req := httptest.NewRequest(http.MethodPatch, "/leave-applications/lv-1/status", bytes.NewReader([]byte(`{"status":"CANCELLED"}`)))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("forwards the decision to the service", func(t *testing.T) {
		svc := &fakeLeaveService{
			decideFn: func(ctx context.Context, id string, form leaveapp.DecideForm) (leaveapp.LeaveResponse, error) {
				assert.Equal(t, "lv-1", id)
				assert.Equal(t, leavedate.StatusRejected, form.Status)
				assert.Equal(t, "dates clash with the release", form.Comment)
				return leaveapp.LeaveResponse{
					LeaveApplication: upstream.LeaveApplication{ID: id, Status: form.Status},
				}, nil
			},
		}
		router := newLeaveRouter(svc)

		body, _ := json.Marshal(gin.H{"status": "REJECTED", "comment": "dates clash with the release"})
		req := httptest.NewRequest(http.MethodPatch, "/leave-applications/lv-1/status", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestLeaveHandler_Export(t *testing.T) {
	t.Run("defaults to the upstream csv", func(t *testing.T) {
		svc := &fakeLeaveService{
			exportCSVFn: func(ctx context.Context, status string, query leaveapp.HistoryQuery) ([]byte, string, error) {
				assert.Equal(t, leavedate.StatusApproved, status)
				return []byte("id,employee\nlv-1,Ana"), "text/csv", nil
			},
		}
		router := newLeaveRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/leave-applications/export/APPROVED", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Disposition"), ".csv")
		assert.Contains(t, rec.Body.String(), "lv-1")
	})

	t.Run("format=xlsx switches to the workbook", func(t *testing.T) {
		svc := &fakeLeaveService{
			exportXLSXFn: func(ctx context.Context, status string, query leaveapp.HistoryQuery) ([]byte, error) {
				return []byte{'P', 'K', 3, 4}, nil
			},
		}
		router := newLeaveRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/leave-applications/export/APPROVED?format=xlsx", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Disposition"), ".xlsx")
	})
}
