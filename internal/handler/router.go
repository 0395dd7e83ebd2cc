package handler

import (
	"datavault360/internal/middleware"
	"datavault360/internal/models"
	"datavault360/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Handlers groups everything RegisterRoutes mounts
type Handlers struct {
	Auth       *AuthHandler
	Accounts   *AccountHandler
	Rooms      *RoomHandler
	Invitation *InvitationHandler
	Records    *RecordHandler
}

const (
	admin   = models.RoleAdmin
	doctor  = models.RoleDoctor
	patient = models.RolePatient
	lab     = models.RoleLab
)

// RegisterRoutes mounts the REST API under /api plus the health check
func RegisterRoutes(r *gin.Engine, h Handlers) {
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "datavault360",
		})
	})

	api := r.Group("/api")

	// Public routes
	auth := api.Group("/auth")
	{
		auth.POST("/login/", h.Auth.Login)
		auth.POST("/refresh/", h.Auth.Refresh)
		auth.POST("/logout/", h.Auth.Logout)
	}
	api.GET("/invitations/check/:token/", h.Invitation.CheckInvitation)
	api.POST("/invitations/complete/", h.Invitation.CompleteInvitation)

	// Authenticated routes
	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware())
	{
		authed.POST("/invitations/", middleware.RequireRole(admin), h.Invitation.CreateInvitation)

		authed.GET("/doctors/", h.Accounts.ListDoctors)
		authed.POST("/doctors/", middleware.RequireRole(admin), h.Accounts.CreateDoctor)
		authed.DELETE("/doctors/:id/", middleware.RequireRole(admin), h.Accounts.DeleteDoctor)

		authed.GET("/patients/", middleware.RequireRole(admin, doctor, patient), h.Accounts.ListPatients)
		authed.POST("/patients/", middleware.RequireRole(admin, doctor), h.Accounts.CreatePatient)
		authed.PATCH("/patients/:id/", middleware.RequireRole(admin), h.Accounts.UpdatePatient)
		authed.DELETE("/patients/:id/", middleware.RequireRole(admin), h.Accounts.DeletePatient)

		authed.GET("/labs/", middleware.RequireRole(admin, doctor), h.Accounts.ListLabs)
		authed.POST("/labs/", middleware.RequireRole(admin), h.Accounts.CreateLab)
		authed.DELETE("/labs/:id/", middleware.RequireRole(admin), h.Accounts.DeleteLab)

		rooms := authed.Group("/rooms")
		rooms.Use(middleware.RequireRole(admin, doctor))
		{
			rooms.GET("/", h.Rooms.GetAllRooms)
			rooms.GET("/:id/", h.Rooms.GetRoom)
			rooms.POST("/", middleware.RequireRole(admin), h.Rooms.CreateRoom)
			rooms.POST("/:id/admit/", middleware.RequireRole(admin), h.Rooms.AdmitPatient)
			rooms.POST("/:id/discharge/", middleware.RequireRole(admin), h.Rooms.ScheduleDischarge)
			rooms.DELETE("/:id/", middleware.RequireRole(admin), h.Rooms.DeleteRoom)
		}

		authed.GET("/visits/", middleware.RequireRole(admin, doctor, patient), h.Records.ListVisits)
		authed.POST("/visits/", middleware.RequireRole(doctor), h.Records.CreateVisit)

		authed.GET("/lab-tests/", h.Records.ListLabTests)
		authed.POST("/lab-tests/", middleware.RequireRole(doctor), h.Records.CreateLabTest)
		authed.PATCH("/lab-tests/:id/", middleware.RequireRole(admin, lab), h.Records.CompleteLabTest)
		authed.GET("/lab-tests/:id/report/", h.Records.DownloadReport)

		authed.GET("/analytics/", middleware.RequireRole(admin), h.Records.Analytics)
	}
}
