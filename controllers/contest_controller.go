// file: controllers/contest_controller.go
package controllers

import (
	"strconv"
	"time"

	"codefest/database"
	"codefest/dto"
	"codefest/mappers"
	"codefest/models"
	"codefest/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func findContest(c *gin.Context) (*models.Contest, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "Invalid contest ID")
		return nil, false
	}
	var contest models.Contest
	if err := database.DB.First(&contest, id).Error; err != nil {
		utils.Error(c, 4004, "Contest not found")
		return nil, false
	}
	return &contest, true
}

// CreateContest adds a new contest; it opens for registration immediately.
func CreateContest(c *gin.Context) {
	var req dto.ContestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid parameters: "+err.Error())
		return
	}

	contest := models.Contest{IsActive: true}
	if err := mappers.ApplyContestReq(req, &contest); err != nil {
		utils.Error(c, 1001, err.Error())
		return
	}
	if err := database.DB.Create(&contest).Error; err != nil {
		utils.Error(c, 5000, "Database error: "+err.Error())
		return
	}
	utils.Success(c, "Contest '"+contest.Name+"' created successfully", mappers.MapContestToItemResp(contest))
}

// ListUpcomingContests returns contests whose date is today or later.
func ListUpcomingContests(c *gin.Context) {
	today := time.Now().Format("2006-01-02")
	var contests []models.Contest
	database.DB.Where("date >= ?", today).Order("date asc").Find(&contests)
	utils.Success(c, "success", mappers.MapContestsToItemResps(contests))
}

// ListPastContests returns contests whose date has passed.
func ListPastContests(c *gin.Context) {
	today := time.Now().Format("2006-01-02")
	var contests []models.Contest
	database.DB.Where("date < ?", today).Order("date desc").Find(&contests)
	utils.Success(c, "success", mappers.MapContestsToItemResps(contests))
}

// UpdateContest edits name, date, test time and syllabus.
func UpdateContest(c *gin.Context) {
	contest, ok := findContest(c)
	if !ok {
		return
	}
	var req dto.ContestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid parameters: "+err.Error())
		return
	}
	if err := mappers.ApplyContestReq(req, contest); err != nil {
		utils.Error(c, 1001, err.Error())
		return
	}
	if err := database.DB.Save(contest).Error; err != nil {
		utils.Error(c, 5000, "Database error: "+err.Error())
		return
	}
	utils.Success(c, "Contest '"+contest.Name+"' updated successfully", mappers.MapContestToItemResp(*contest))
}

// GetContestResults lists every registration of one contest, by name.
func GetContestResults(c *gin.Context) {
	contest, ok := findContest(c)
	if !ok {
		return
	}
	var students []models.Student
	database.DB.Where("contest_id = ?", contest.ID).Order("name asc").Find(&students)
	utils.Success(c, "success", gin.H{
		"contest":  mappers.MapContestToItemResp(*contest),
		"students": mappers.MapStudentsToItemResps(students),
	})
}

// ToggleContestActive flips whether the contest accepts registrations.
func ToggleContestActive(c *gin.Context) {
	contest, ok := findContest(c)
	if !ok {
		return
	}
	contest.IsActive = !contest.IsActive
	database.DB.Model(contest).Update("is_active", contest.IsActive)
	utils.Success(c, "Contest '"+contest.Name+"' status updated", gin.H{
		"id":        contest.ID,
		"is_active": contest.IsActive,
	})
}

// ToggleContestPublish flips whether the contest results are public.
func ToggleContestPublish(c *gin.Context) {
	contest, ok := findContest(c)
	if !ok {
		return
	}
	contest.PublishResults = !contest.PublishResults
	database.DB.Model(contest).Update("publish_results", contest.PublishResults)

	state := "hidden"
	if contest.PublishResults {
		state = "published"
	}
	utils.Success(c, "Results for '"+contest.Name+"' are now "+state, gin.H{
		"id":              contest.ID,
		"publish_results": contest.PublishResults,
	})
}

// DeleteContest removes the contest together with all of its registrations.
func DeleteContest(c *gin.Context) {
	contest, ok := findContest(c)
	if !ok {
		return
	}
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("contest_id = ?", contest.ID).Delete(&models.Student{}).Error; err != nil {
			return err
		}
		return tx.Delete(contest).Error
	})
	if err != nil {
		utils.Error(c, 5000, "Database error: "+err.Error())
		return
	}
	utils.Success(c, "Contest '"+contest.Name+"' and all its registrations have been deleted", nil)
}
