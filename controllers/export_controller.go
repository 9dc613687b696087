// file: controllers/export_controller.go
package controllers

import (
	"codefest/database"
	"codefest/models"
	"codefest/services"
	"codefest/utils"

	"github.com/gin-gonic/gin"
)

// ExportCSV downloads every registration across all contests.
func ExportCSV(c *gin.Context) {
	var students []models.Student
	database.DB.Preload("Contest").Order("id asc").Find(&students)
	if len(students) == 0 {
		utils.Error(c, 2007, "No students found to export")
		return
	}

	data, err := services.StudentsCSV(students)
	if err != nil {
		utils.Error(c, 5000, "Failed to generate CSV: "+err.Error())
		return
	}
	c.Header("Content-Disposition", `attachment; filename="all_students.csv"`)
	c.Data(200, "text/csv", data)
}

// ExportPDF downloads the score leaderboard across all contests.
func ExportPDF(c *gin.Context) {
	var students []models.Student
	database.DB.Where("score IS NOT NULL").Order("score desc").Find(&students)
	if len(students) == 0 {
		utils.Error(c, 2007, "No students with scores found to export")
		return
	}

	data, err := services.ScoreReportPDF(students)
	if err != nil {
		utils.Error(c, 5000, "Failed to generate PDF: "+err.Error())
		return
	}
	c.Header("Content-Disposition", `attachment; filename="student_scores.pdf"`)
	c.Data(200, "application/pdf", data)
}
