package http

import (
	"net/http"
	"time"

	"github.com/shamil-erp/hr-backend-go/internal/domain/payroll"
	"github.com/shamil-erp/hr-backend-go/internal/handler/http/response"
)

type PayrollHandler interface {
	ComputePayroll(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
}

func NewPayrollHandler(payrollService payroll.PayrollService) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

// ComputePayroll handles GET /api/v1/payroll?month=YYYY-MM. The dashboard's
// "select month" and "refresh" controls both land here; nothing is cached or
// persisted, every call recomputes from source data.
func (h *payrollHandlerImpl) ComputePayroll(w http.ResponseWriter, r *http.Request) {
	req := payroll.ComputePayrollRequest{
		Month: r.URL.Query().Get("month"),
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.payrollService.ComputePayroll(r.Context(), req.ReferenceMonth(time.Now().UTC()))
	if err != nil {
		// Fatal collaborator failures: the caller keeps its previous table
		// and shows that payroll data is unavailable.
		response.ServiceUnavailable(w, "payroll data unavailable")
		return
	}

	response.Success(w, result)
}
