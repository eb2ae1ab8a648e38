package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clinic-backend/internal/handlers"
	"clinic-backend/internal/middleware"
	"clinic-backend/internal/models"
	"clinic-backend/internal/services"
	"clinic-backend/pkg/utils"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handler, sessions *services.SessionAuthority, limiter *middleware.IPRateLimiter) {
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.NoCache())

	r.GET("/ping", func(c *gin.Context) {
		utils.APIResponse(c, http.StatusOK, true, "Server OK!", nil)
	})

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			for _, class := range models.AccountClasses {
				auth.GET("/"+string(class)+"/login", h.LoginLanding(class))
				auth.POST("/"+string(class)+"/login", middleware.RateLimitMiddleware(limiter), h.Login(class))
			}
			auth.POST("/patient/register", middleware.RateLimitMiddleware(limiter), h.RegisterPatient)
			auth.POST("/logout", h.Logout)
		}

		patient := api.Group("/patient")
		patient.Use(middleware.RequireSession(sessions, models.ClassPatient))
		{
			patient.GET("/dashboard", h.PatientDashboard)
			patient.GET("/doctors", h.DoctorChoices)
			patient.POST("/appointments", h.BookAppointment)
			patient.GET("/appointments", h.MyAppointments)
		}

		doctor := api.Group("/doctor")
		doctor.Use(middleware.RequireSession(sessions, models.ClassDoctor))
		{
			doctor.GET("/dashboard", h.DoctorDashboard)
			doctor.GET("/appointments", h.DoctorAppointments)
		}

		admin := api.Group("/admin")
		admin.Use(middleware.RequireSession(sessions, models.ClassAdmin))
		{
			admin.GET("/dashboard", h.AdminDashboard)
			admin.GET("/doctors", h.ListDoctors)
			admin.POST("/doctors", h.AddDoctor)
			admin.GET("/patients", h.ListPatients)
			admin.GET("/appointments", h.ListAppointments)
		}
	}
}
