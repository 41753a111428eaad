package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shamil-erp/hr-backend-go/internal/domain/payroll"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePayrollService struct {
	result payroll.PayrollRunResponse
	err    error

	gotRefMonth time.Time
}

func (f *fakePayrollService) ComputePayroll(ctx context.Context, refMonth time.Time) (payroll.PayrollRunResponse, error) {
	f.gotRefMonth = refMonth
	return f.result, f.err
}

func TestComputePayrollHandler_Success(t *testing.T) {
	t.Parallel()

	svc := &fakePayrollService{result: payroll.PayrollRunResponse{
		PeriodStart: "2025-04-01",
		PeriodEnd:   "2025-04-30",
	}}
	handler := NewPayrollHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/payroll?month=2025-04", nil)
	rec := httptest.NewRecorder()

	handler.ComputePayroll(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2025, svc.gotRefMonth.Year())
	assert.Equal(t, time.April, svc.gotRefMonth.Month())

	var body struct {
		Success bool `json:"success"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
}

func TestComputePayrollHandler_InvalidMonth(t *testing.T) {
	t.Parallel()

	svc := &fakePayrollService{}
	handler := NewPayrollHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/payroll?month=04-2025", nil)
	rec := httptest.NewRecorder()

	handler.ComputePayroll(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestComputePayrollHandler_SourceFailure(t *testing.T) {
	t.Parallel()

	svc := &fakePayrollService{err: errors.New("failed to get employees: connection refused")}
	handler := NewPayrollHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/payroll?month=2025-04", nil)
	rec := httptest.NewRecorder()

	handler.ComputePayroll(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "payroll data unavailable")
}

func TestComputePayrollHandler_DefaultsToCurrentMonth(t *testing.T) {
	t.Parallel()

	svc := &fakePayrollService{}
	handler := NewPayrollHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/payroll", nil)
	rec := httptest.NewRecorder()

	handler.ComputePayroll(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	now := time.Now().UTC()
	assert.Equal(t, now.Year(), svc.gotRefMonth.Year())
	assert.Equal(t, now.Month(), svc.gotRefMonth.Month())
}
