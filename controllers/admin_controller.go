// file: controllers/admin_controller.go
package controllers

import (
	"codefest/database"
	"codefest/dto"
	"codefest/mappers"
	"codefest/models"
	"codefest/services"
	"codefest/utils"

	"github.com/gin-gonic/gin"
)

// AdminLogin authenticates an administrator. Failed attempts are counted in
// Redis and the account locks for the window after too many failures.
func AdminLogin(c *gin.Context) {
	var req dto.AdminLoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid parameters: "+err.Error())
		return
	}

	if services.IsLoginLocked(req.Username) {
		utils.Error(c, 2006, "Too many failed login attempts. Try again later")
		return
	}

	var admin models.Admin
	err := database.DB.Where("username = ?", req.Username).First(&admin).Error
	if err != nil || !admin.CheckPassword(req.Password) {
		services.RecordLoginFailure(req.Username)
		utils.Error(c, 2002, "Invalid username or password")
		return
	}

	services.ResetLoginFailures(req.Username)

	token, err := utils.GenerateAdminToken(admin)
	if err != nil {
		utils.Error(c, 5002, "Failed to generate token")
		return
	}
	utils.Success(c, "Login success", gin.H{
		"token": token,
		"admin": gin.H{"id": admin.ID, "username": admin.Username},
	})
}

// CreateAdmin registers another admin account.
func CreateAdmin(c *gin.Context) {
	var req dto.CreateAdminReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid parameters: "+err.Error())
		return
	}

	var existing models.Admin
	if err := database.DB.Where("username = ?", req.Username).First(&existing).Error; err == nil {
		utils.Error(c, 2001, "Username already exists")
		return
	}

	admin := models.Admin{Username: req.Username, Password: req.Password}
	if err := database.DB.Create(&admin).Error; err != nil {
		utils.Error(c, 5000, "Database error: "+err.Error())
		return
	}
	utils.Success(c, "Admin created successfully", gin.H{"id": admin.ID, "username": admin.Username})
}

// AdminDashboard returns status counts plus the applicant list filtered by
// contest, free-text search, branch and status.
func AdminDashboard(c *gin.Context) {
	db := database.DB.Model(&models.Student{}).Preload("Contest")

	if contestID := c.Query("contest_id"); contestID != "" {
		db = db.Where("contest_id = ?", contestID)
	}
	if search := c.Query("search"); search != "" {
		db = db.Where("name LIKE ? OR email LIKE ?", "%"+search+"%", "%"+search+"%")
	}
	if branch := c.Query("branch"); branch != "" {
		db = db.Where("branch = ?", branch)
	}
	if status := c.Query("status"); status != "" {
		db = db.Where("status = ?", status)
	}

	var students []models.Student
	db.Order("id desc").Find(&students)

	var total, accepted, pending, denied int64
	database.DB.Model(&models.Student{}).Count(&total)
	database.DB.Model(&models.Student{}).Where("status = ?", models.StatusAccepted).Count(&accepted)
	database.DB.Model(&models.Student{}).Where("status = ?", models.StatusPending).Count(&pending)
	database.DB.Model(&models.Student{}).Where("status = ?", models.StatusDenied).Count(&denied)

	var branches []string
	database.DB.Model(&models.Student{}).Distinct().Pluck("branch", &branches)

	var contests []models.Contest
	database.DB.Order("date desc").Find(&contests)

	utils.Success(c, "success", gin.H{
		"stats": gin.H{
			"total":    total,
			"accepted": accepted,
			"pending":  pending,
			"denied":   denied,
		},
		"students": mappers.MapStudentsToItemResps(students),
		"branches": branches,
		"contests": mappers.MapContestsToItemResps(contests),
	})
}
