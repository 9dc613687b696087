// file: controllers/setting_controller.go
package controllers

import (
	"codefest/database"
	"codefest/dto"
	"codefest/models"
	"codefest/utils"

	"github.com/gin-gonic/gin"
)

func getSettingValue(key string) string {
	var setting models.ContestSetting
	if err := database.DB.Where("`key` = ?", key).First(&setting).Error; err != nil {
		return ""
	}
	return setting.Value
}

func putSettingValue(key, value string) error {
	var setting models.ContestSetting
	if err := database.DB.Where("`key` = ?", key).First(&setting).Error; err != nil {
		return database.DB.Create(&models.ContestSetting{Key: key, Value: value}).Error
	}
	return database.DB.Model(&setting).Update("value", value).Error
}

// GetGlobalSettings returns the shared test link.
func GetGlobalSettings(c *gin.Context) {
	utils.Success(c, "success", gin.H{
		"global_test_link": getSettingValue(models.SettingGlobalTestLink),
	})
}

// UpdateGlobalSettings stores the shared test link.
func UpdateGlobalSettings(c *gin.Context) {
	var req dto.GlobalSettingsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid parameters: "+err.Error())
		return
	}
	if err := putSettingValue(models.SettingGlobalTestLink, req.GlobalTestLink); err != nil {
		utils.Error(c, 5000, "Database error: "+err.Error())
		return
	}
	utils.Success(c, "Global settings saved successfully", nil)
}

// GetEmailSettings returns the stored SMTP account. The app password is not
// echoed back, only whether one is set.
func GetEmailSettings(c *gin.Context) {
	utils.Success(c, "success", gin.H{
		"mail_username":     getSettingValue(models.SettingMailUsername),
		"mail_password_set": getSettingValue(models.SettingMailAppPassword) != "",
	})
}

// UpdateEmailSettings stores the SMTP credentials used for notifications.
func UpdateEmailSettings(c *gin.Context) {
	var req dto.EmailSettingsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid parameters: "+err.Error())
		return
	}
	if err := putSettingValue(models.SettingMailUsername, req.MailUsername); err != nil {
		utils.Error(c, 5000, "Database error: "+err.Error())
		return
	}
	if err := putSettingValue(models.SettingMailAppPassword, req.MailAppPassword); err != nil {
		utils.Error(c, 5000, "Database error: "+err.Error())
		return
	}
	utils.Success(c, "Email settings saved successfully", nil)
}
