package bonus

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

func (h *Handler) CreateSetting(c *gin.Context) {
	companyID := c.GetString("company_id")

	var req CreateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	resp, err := h.service.CreateSetting(c.Request.Context(), companyID, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetSettings(c *gin.Context) {
	companyID := c.GetString("company_id")

	resp, err := h.service.GetSettings(c.Request.Context(), companyID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ApplyEid(c *gin.Context) {
	h.apply(c, TriggerEid)
}

func (h *Handler) ApplyFestival(c *gin.Context) {
	h.apply(c, TriggerFestival)
}

func (h *Handler) ApplyManual(c *gin.Context) {
	h.apply(c, TriggerManual)
}

func (h *Handler) apply(c *gin.Context, trigger string) {
	companyID := c.GetString("company_id")

	var req ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	p, err := period.ParseMonth(req.Month)
	if err != nil {
		writeServiceError(c, err)
		return
	}

	results, err := h.service.ApplyTrigger(c.Request.Context(), companyID, trigger, p, req.EmployeeIDs)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, results, nil)
}
