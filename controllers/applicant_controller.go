// file: controllers/applicant_controller.go
package controllers

import (
	"strconv"
	"strings"

	"codefest/database"
	"codefest/dto"
	"codefest/mappers"
	"codefest/models"
	"codefest/services"
	"codefest/utils"

	"github.com/gin-gonic/gin"
)

func findStudent(c *gin.Context) (*models.Student, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "Invalid student ID")
		return nil, false
	}
	var student models.Student
	if err := database.DB.Preload("Contest").First(&student, id).Error; err != nil {
		utils.Error(c, 4004, "Student not found")
		return nil, false
	}
	return &student, true
}

// ManualRegistration lets an admin register a student directly.
func ManualRegistration(c *gin.Context) {
	var req dto.ManualRegistrationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid parameters: "+err.Error())
		return
	}

	var contest models.Contest
	if err := database.DB.First(&contest, req.ContestID).Error; err != nil {
		utils.Error(c, 4004, "Contest not found")
		return
	}

	var existing models.Student
	if err := database.DB.Where("email = ? AND contest_id = ?", req.Email, req.ContestID).First(&existing).Error; err == nil {
		utils.Error(c, 2001, "Student with email "+req.Email+" is already registered for this contest")
		return
	}

	student := mappers.MapRegisterReqToModel(req.RegisterStudentReq, req.ContestID)
	if err := database.DB.Create(&student).Error; err != nil {
		utils.Error(c, 5000, "Database error: "+err.Error())
		return
	}
	utils.Success(c, "Student "+student.Name+" registered successfully", mappers.MapStudentToItemResp(student))
}

// GetStudentDetail returns one registration plus the applicant's scored
// registrations in other contests, for review context.
func GetStudentDetail(c *gin.Context) {
	student, ok := findStudent(c)
	if !ok {
		return
	}

	var pastPerformance []models.Student
	database.DB.Preload("Contest").
		Where("email = ? AND id <> ? AND score IS NOT NULL", student.Email, student.ID).
		Find(&pastPerformance)

	utils.Success(c, "success", gin.H{
		"student":          mappers.MapStudentToItemResp(*student),
		"past_performance": mappers.MapStudentsToItemResps(pastPerformance),
		"branches":         models.Branches,
	})
}

// UpdateStudent edits the registration record.
func UpdateStudent(c *gin.Context) {
	student, ok := findStudent(c)
	if !ok {
		return
	}
	var req dto.UpdateStudentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid parameters: "+err.Error())
		return
	}

	student.Name = req.Name
	student.Email = req.Email
	student.College = req.College
	student.Branch = req.Branch
	student.GraduationYear = req.GraduationYear
	student.Status = models.StudentStatus(req.Status)
	if err := database.DB.Save(student).Error; err != nil {
		utils.Error(c, 5000, "Database error: "+err.Error())
		return
	}
	utils.Success(c, "Details for "+student.Name+" have been updated", mappers.MapStudentToItemResp(*student))
}

// UpdateStudentStatus accepts or denies an application.
func UpdateStudentStatus(c *gin.Context) {
	student, ok := findStudent(c)
	if !ok {
		return
	}
	var req dto.UpdateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Status must be Accepted or Denied")
		return
	}
	database.DB.Model(student).Update("status", req.Status)
	utils.Success(c, "Student "+student.Name+"'s application has been "+strings.ToLower(req.Status), gin.H{
		"id":     student.ID,
		"status": req.Status,
	})
}

// UpdateTestInfo records the test link and score. An absent score clears it.
func UpdateTestInfo(c *gin.Context) {
	student, ok := findStudent(c)
	if !ok {
		return
	}
	var req dto.TestInfoReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid parameters: "+err.Error())
		return
	}

	if req.TestLink == "" {
		student.TestLink = nil
	} else {
		student.TestLink = &req.TestLink
	}
	student.Score = req.Score
	if err := database.DB.Model(student).Select("test_link", "score").Updates(map[string]interface{}{
		"test_link": student.TestLink,
		"score":     student.Score,
	}).Error; err != nil {
		utils.Error(c, 5000, "Database error: "+err.Error())
		return
	}
	utils.Success(c, "Information for "+student.Name+" has been updated", mappers.MapStudentToItemResp(*student))
}

// DeleteStudent removes a registration.
func DeleteStudent(c *gin.Context) {
	student, ok := findStudent(c)
	if !ok {
		return
	}
	database.DB.Delete(student)
	utils.Success(c, "Registration for "+student.Name+" has been deleted", nil)
}

// AssignAndEmailAll gives every accepted student without a link the global
// test link and emails them. Students keep the link even if their email
// bounces; the response reports how many notifications went out.
func AssignAndEmailAll(c *gin.Context) {
	mailUsername := getSettingValue(models.SettingMailUsername)
	mailPassword := getSettingValue(models.SettingMailAppPassword)
	if mailUsername == "" || mailPassword == "" {
		utils.Error(c, 2008, "Email settings are not configured. Please configure them first")
		return
	}

	testLink := getSettingValue(models.SettingGlobalTestLink)
	if testLink == "" {
		utils.Error(c, 2009, "Please set a global test link in Global Settings first")
		return
	}

	var students []models.Student
	database.DB.Preload("Contest").
		Where("status = ? AND test_link IS NULL", models.StatusAccepted).
		Find(&students)
	if len(students) == 0 {
		utils.Success(c, "No new accepted students to notify", gin.H{"sent": 0})
		return
	}

	sent := 0
	for i := range students {
		student := &students[i]
		database.DB.Model(student).Update("test_link", testLink)

		contestName := ""
		if student.Contest != nil {
			contestName = student.Contest.Name
		}
		if err := services.SendTestLinkEmail(mailUsername, mailPassword, student.Email, contestName, student.Name, testLink); err == nil {
			sent++
		}
	}

	utils.Success(c, "Assigned test link and sent notifications to "+strconv.Itoa(sent)+" students", gin.H{
		"assigned": len(students),
		"sent":     sent,
	})
}
