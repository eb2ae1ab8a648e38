package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clinic-backend/internal/middleware"
	"clinic-backend/internal/models"
	"clinic-backend/pkg/utils"
)

func (h *Handler) AdminDashboard(c *gin.Context) {
	utils.APIResponse(c, http.StatusOK, true, "Admin dashboard", nil)
}

func (h *Handler) ListDoctors(c *gin.Context) {
	doctors, err := h.directory.ListAllDoctors(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "All doctors", doctors)
}

func (h *Handler) ListPatients(c *gin.Context) {
	patients, err := h.directory.ListAllPatients(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "All patients", patients)
}

func (h *Handler) ListAppointments(c *gin.Context) {
	rows, err := h.ledger.ListAll(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "All appointments", rows)
}

// AddDoctor registers a doctor account. The admin stays logged in as admin.
func (h *Handler) AddDoctor(c *gin.Context) {
	var input models.RegisterDoctorInput
	if !bind(c, &input) {
		return
	}

	doctor, err := h.registration.RegisterDoctor(c.Request.Context(), middleware.CurrentSession(c), input)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.RedirectResponse(c, http.StatusCreated, "Registered!", models.ClassAdmin.DashboardPath(), doctor)
}
