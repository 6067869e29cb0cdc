package salary

import (
	"net/http"

	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/period"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/shared/apperror"
	"github.com/Tanvir-Hossain-Khondaker-Nabil/global-pos-sub000/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Calculate(c *gin.Context) {
	companyID := c.GetString("company_id")

	var req CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	p, err := period.ParseMonth(req.Month)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	resp, err := h.service.Calculate(c.Request.Context(), companyID, req.EmployeeID, p)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Cancel(c *gin.Context) {
	companyID := c.GetString("company_id")

	var req CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	p, err := period.ParseMonth(req.Month)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	resp, err := h.service.Cancel(c.Request.Context(), companyID, req.EmployeeID, p)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	companyID := c.GetString("company_id")

	p, err := period.ParseMonth(c.Query("month"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	resp, err := h.service.GetAllByPeriod(c.Request.Context(), companyID, p)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetOne(c *gin.Context) {
	companyID := c.GetString("company_id")
	employeeID := c.Param("employeeId")

	p, err := period.ParseMonth(c.Query("month"))
	if err != nil {
		writeServiceError(c, err)
		return
	}

	resp, err := h.service.GetByEmployeeAndPeriod(c.Request.Context(), companyID, employeeID, p)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
