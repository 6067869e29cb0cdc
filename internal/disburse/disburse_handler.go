package disburse

import (
	"net/http"

	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/period"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/shared/apperror"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	orchestrator Orchestrator
}

func NewHandler(orchestrator Orchestrator) *Handler {
	return &Handler{orchestrator: orchestrator}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Pay(c *gin.Context) {
	companyID := c.GetString("company_id")

	var req PayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	p, err := period.ParseMonth(req.Month)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	receipt, err := h.orchestrator.Pay(c.Request.Context(), companyID, req.EmployeeID, p)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, receipt, nil)
}

func (h *Handler) BulkAction(c *gin.Context) {
	companyID := c.GetString("company_id")

	var req BulkActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	p, err := period.ParseMonth(req.Month)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	results, err := h.orchestrator.BulkAction(c.Request.Context(), companyID, req.Action, req.EmployeeIDs, p)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, results, nil)
}

func (h *Handler) ProcessAwardPayments(c *gin.Context) {
	companyID := c.GetString("company_id")

	var req ProcessAwardPaymentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	p, err := period.ParseMonth(req.Month)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	results, err := h.orchestrator.ProcessAwardPayments(c.Request.Context(), companyID, p)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, results, nil)
}
