package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clinic-backend/internal/middleware"
	"clinic-backend/internal/models"
	"clinic-backend/pkg/utils"
)

// PatientDashboard greets the logged-in patient by name.
func (h *Handler) PatientDashboard(c *gin.Context) {
	session := middleware.CurrentSession(c)

	name, err := h.directory.DisplayName(c.Request.Context(), models.ClassPatient, session.AccountID)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Patient dashboard", gin.H{"user": name})
}

// DoctorChoices lists the doctor names a patient can book with.
func (h *Handler) DoctorChoices(c *gin.Context) {
	names, err := h.directory.ListDoctorNames(c.Request.Context())
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Doctors", names)
}

// BookAppointment books for the patient holding the session.
func (h *Handler) BookAppointment(c *gin.Context) {
	session := middleware.CurrentSession(c)

	var input models.BookAppointmentInput
	if !bind(c, &input) {
		return
	}

	id, err := h.ledger.Book(c.Request.Context(), session.AccountID, input)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.RedirectResponse(c, http.StatusCreated, "Booked!", models.ClassPatient.DashboardPath(), gin.H{"appointment_id": id})
}

func (h *Handler) MyAppointments(c *gin.Context) {
	session := middleware.CurrentSession(c)

	rows, err := h.ledger.ListForPatient(c.Request.Context(), session.AccountID)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "My appointments", rows)
}
