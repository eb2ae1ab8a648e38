package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clinic-backend/internal/middleware"
	"clinic-backend/internal/models"
	"clinic-backend/pkg/utils"
)

// LoginLanding is the login entry point of class. Reaching it ends whatever
// session the caller still holds.
func (h *Handler) LoginLanding(class models.AccountClass) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := h.sessions.Clear(c.Request.Context(), middleware.BearerToken(c)); err != nil {
			utils.ErrorResponse(c, err)
			return
		}

		field := "email"
		if class == models.ClassAdmin {
			field = "username"
		}
		utils.APIResponse(c, http.StatusOK, true, "Please log in", gin.H{
			"class":  class,
			"fields": []string{field, "password"},
		})
	}
}

// Login checks the credentials of class and opens a session.
func (h *Handler) Login(class models.AccountClass) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input models.LoginInput
		if !bind(c, &input) {
			return
		}

		token, session, err := h.login.Login(c.Request.Context(), middleware.BearerToken(c), class, input)
		if err != nil {
			utils.ErrorResponse(c, err)
			return
		}

		utils.RedirectResponse(c, http.StatusOK, "Logged In!", class.DashboardPath(), gin.H{
			"token":      token,
			"account_id": session.AccountID,
			"class":      session.AccountClass,
			"expires_at": session.ExpiresAt,
		})
	}
}

// RegisterPatient creates a patient account and logs it in.
func (h *Handler) RegisterPatient(c *gin.Context) {
	var input models.RegisterPatientInput
	if !bind(c, &input) {
		return
	}

	patient, token, err := h.registration.RegisterPatient(c.Request.Context(), middleware.BearerToken(c), input)
	if err != nil {
		utils.ErrorResponse(c, err)
		return
	}

	utils.RedirectResponse(c, http.StatusCreated, "Registered!", models.ClassPatient.DashboardPath(), gin.H{
		"token":   token,
		"patient": patient,
	})
}

func (h *Handler) Logout(c *gin.Context) {
	if err := h.sessions.Clear(c.Request.Context(), middleware.BearerToken(c)); err != nil {
		utils.ErrorResponse(c, err)
		return
	}
	utils.RedirectResponse(c, http.StatusOK, "Logged Out!", "/", nil)
}
