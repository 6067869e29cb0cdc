package allowance

import (
	"net/http"

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

func (h *Handler) Create(c *gin.Context) {
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

func (h *Handler) GetAll(c *gin.Context) {
	companyID := c.GetString("company_id")

	resp, err := h.service.GetAll(c.Request.Context(), companyID)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	companyID := c.GetString("company_id")

	if err := h.service.DeleteSetting(c.Request.Context(), companyID, c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

func (h *Handler) Assign(c *gin.Context) {
	companyID := c.GetString("company_id")

	var req AssignEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", err.Error())
		return
	}

	if err := h.service.AssignEmployee(c.Request.Context(), companyID, req); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"assigned": true}, nil)
}

func (h *Handler) Unassign(c *gin.Context) {
	companyID := c.GetString("company_id")

	if err := h.service.UnassignEmployee(
		c.Request.Context(),
		companyID,
		c.Param("employeeId"),
		c.Param("settingName"),
	); err != nil {
		writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"unassigned": true}, nil)
}
