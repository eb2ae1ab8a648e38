package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clinic-backend/internal/middleware"
	"clinic-backend/internal/models"
	"clinic-backend/pkg/utils"
)

func (h *Handler) DoctorDashboard(c *gin.Context) {
	session := middleware.CurrentSession(c)

	name, err := h.directory.DisplayName(c.Request.Context(), models.ClassDoctor, session.AccountID)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Doctor dashboard", gin.H{"user": name})
}

// DoctorAppointments lists bookings made under the doctor's display name.
func (h *Handler) DoctorAppointments(c *gin.Context) {
	session := middleware.CurrentSession(c)
	ctx := c.Request.Context()

	name, err := h.directory.DisplayName(ctx, models.ClassDoctor, session.AccountID)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	rows, err := h.ledger.ListForDoctor(ctx, name)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "My patients", rows)
}
