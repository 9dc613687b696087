// file: controllers/student_controller.go
package controllers

import (
	"strconv"

	"codefest/database"
	"codefest/dto"
	"codefest/mappers"
	"codefest/models"
	"codefest/utils"

	"github.com/gin-gonic/gin"
)

// --- public endpoints ---

// RegisterStudent handles a student signing up for one contest.
func RegisterStudent(c *gin.Context) {
	contestID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "Invalid contest ID")
		return
	}

	var contest models.Contest
	if err := database.DB.First(&contest, contestID).Error; err != nil {
		utils.Error(c, 4004, "Contest not found")
		return
	}
	if !contest.IsActive {
		utils.Error(c, 2004, "Registration for this contest is closed")
		return
	}

	var req dto.RegisterStudentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid parameters: "+err.Error())
		return
	}

	var existing models.Student
	if err := database.DB.Where("email = ? AND contest_id = ?", req.Email, contest.ID).First(&existing).Error; err == nil {
		utils.Error(c, 2001, "You have already registered for this contest with this email address")
		return
	}

	student := mappers.MapRegisterReqToModel(req, contest.ID)
	if err := database.DB.Create(&student).Error; err != nil {
		utils.Error(c, 5000, "Database error: "+err.Error())
		return
	}

	utils.Success(c, "You have successfully registered for "+contest.Name, gin.H{
		"id":             student.ID,
		"reference_code": student.ReferenceCode,
		"contest_name":   contest.Name,
		"status":         student.Status,
	})
}

// StudentLogin is an email-only login: any registration record grants access.
func StudentLogin(c *gin.Context) {
	var req dto.StudentLoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid parameters: "+err.Error())
		return
	}

	var count int64
	database.DB.Model(&models.Student{}).Where("email = ?", req.Email).Count(&count)
	if count == 0 {
		utils.Error(c, 2002, "No application found with that email address")
		return
	}

	token, err := utils.GenerateStudentToken(req.Email)
	if err != nil {
		utils.Error(c, 5002, "Failed to generate token")
		return
	}
	utils.Success(c, "Login success", gin.H{"token": token, "email": req.Email})
}

// --- endpoints requiring a student session ---

// StudentDashboard lists the student's registrations, newest first, split into
// current applications and past (scored) performance.
func StudentDashboard(c *gin.Context) {
	email := c.GetString("student_email")

	var registrations []models.Student
	database.DB.Preload("Contest").Where("email = ?", email).Order("id desc").Find(&registrations)
	if len(registrations) == 0 {
		utils.Error(c, 4004, "No applications found for your email")
		return
	}

	var current, past []models.Student
	for _, r := range registrations {
		if r.Score == nil {
			current = append(current, r)
		} else {
			past = append(past, r)
		}
	}

	utils.Success(c, "success", gin.H{
		"email":            email,
		"name":             registrations[0].Name,
		"registrations":    mappers.MapStudentsToItemResps(current),
		"past_performance": mappers.MapStudentsToItemResps(past),
	})
}
