// file: controllers/public_controller.go
package controllers

import (
	"codefest/database"
	"codefest/mappers"
	"codefest/models"
	"codefest/services"
	"codefest/utils"

	"github.com/gin-gonic/gin"
)

// ListActiveContests returns the contests currently open for registration.
func ListActiveContests(c *gin.Context) {
	var contests []models.Contest
	database.DB.Where("is_active = ?", true).Order("date asc").Find(&contests)
	utils.Success(c, "success", mappers.MapContestsToItemResps(contests))
}

// GetSyllabus returns active contests that have a syllabus to show.
func GetSyllabus(c *gin.Context) {
	var contests []models.Contest
	database.DB.Where("is_active = ? AND syllabus <> ''", true).Order("date asc").Find(&contests)
	utils.Success(c, "success", mappers.MapContestsToItemResps(contests))
}

// GetPublicResults returns the leaderboard of every published contest.
func GetPublicResults(c *gin.Context) {
	utils.Success(c, "success", services.PublishedResults())
}
