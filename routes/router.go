// file: routes/router.go
package routes

import (
	"codefest/controllers"
	"codefest/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	apiV1 := r.Group("/api/v1")
	{
		// --- public pages ---
		apiV1.GET("/contests", controllers.ListActiveContests)
		apiV1.GET("/contests/syllabus", controllers.GetSyllabus)
		apiV1.GET("/results", controllers.GetPublicResults)
		apiV1.POST("/contests/:id/register", controllers.RegisterStudent)

		// --- student session ---
		studentRoutes := apiV1.Group("/students")
		{
			studentRoutes.POST("/login", controllers.StudentLogin)
			studentRoutes.GET("/dashboard", middlewares.StudentAuthMiddleware(), controllers.StudentDashboard)
		}

		// --- admin panel ---
		apiV1.POST("/admin/login", controllers.AdminLogin)

		adminRoutes := apiV1.Group("/admin")
		adminRoutes.Use(middlewares.AdminAuthMiddleware())
		{
			adminRoutes.POST("/admins", controllers.CreateAdmin)
			adminRoutes.GET("/dashboard", controllers.AdminDashboard)

			adminRoutes.POST("/contests", controllers.CreateContest)
			adminRoutes.GET("/contests", controllers.ListUpcomingContests)
			adminRoutes.GET("/contests/past", controllers.ListPastContests)
			adminRoutes.PUT("/contests/:id", controllers.UpdateContest)
			adminRoutes.GET("/contests/:id/results", controllers.GetContestResults)
			adminRoutes.PUT("/contests/:id/toggle", controllers.ToggleContestActive)
			adminRoutes.PUT("/contests/:id/publish", controllers.ToggleContestPublish)
			adminRoutes.DELETE("/contests/:id", controllers.DeleteContest)

			adminRoutes.POST("/students", controllers.ManualRegistration)
			adminRoutes.GET("/students/:id", controllers.GetStudentDetail)
			adminRoutes.PUT("/students/:id", controllers.UpdateStudent)
			adminRoutes.PUT("/students/:id/status", controllers.UpdateStudentStatus)
			adminRoutes.PUT("/students/:id/test-info", controllers.UpdateTestInfo)
			adminRoutes.DELETE("/students/:id", controllers.DeleteStudent)

			adminRoutes.POST("/notify/assign", controllers.AssignAndEmailAll)

			adminRoutes.GET("/export/csv", controllers.ExportCSV)
			adminRoutes.GET("/export/pdf", controllers.ExportPDF)

			adminRoutes.GET("/settings", controllers.GetGlobalSettings)
			adminRoutes.PUT("/settings", controllers.UpdateGlobalSettings)
			adminRoutes.GET("/settings/email", controllers.GetEmailSettings)
			adminRoutes.PUT("/settings/email", controllers.UpdateEmailSettings)
		}
	}

	return r
}
