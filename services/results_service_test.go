// file: services/results_service_test.go
package services_test

import (
	"fmt"
	"testing"
	"time"

	"codefest/database"
	"codefest/models"
	"codefest/services"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupDB(t *testing.T) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.Contest{}, &models.Student{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	database.DB = db
}

func seedContest(t *testing.T, name string, daysAgo int, published bool) models.Contest {
	t.Helper()
	contest := models.Contest{
		Name:           name,
		Date:           time.Now().AddDate(0, 0, -daysAgo),
		PublishResults: published,
	}
	assert.NoError(t, database.DB.Create(&contest).Error)
	return contest
}

func seedScored(t *testing.T, contestID uint32, name string, score *int) {
	t.Helper()
	student := models.Student{
		Name: name, Email: name + "@example.com", College: "NIT Nagaland",
		Branch: "CSE", Status: models.StatusAccepted, Score: score,
		ReferenceCode: "CF-" + name, ContestID: contestID,
	}
	assert.NoError(t, database.DB.Create(&student).Error)
}

func TestPublishedResultsRanking(t *testing.T) {
	setupDB(t)
	contest := seedContest(t, "Finished Round", 30, true)
	seedContest(t, "Hidden Round", 10, false)

	low, mid, high := 40, 70, 99
	seedScored(t, contest.ID, "low", &low)
	seedScored(t, contest.ID, "high", &high)
	seedScored(t, contest.ID, "mid", &mid)
	seedScored(t, contest.ID, "unscored", nil)

	results := services.PublishedResults()
	assert.Len(t, results, 1)
	assert.Equal(t, "Finished Round", results[0].ContestName)

	entries := results[0].Entries
	if assert.Len(t, entries, 3) {
		assert.Equal(t, []int{99, 70, 40}, []int{entries[0].Score, entries[1].Score, entries[2].Score})
		assert.Equal(t, uint(1), entries[0].Rank)
		assert.Equal(t, uint(3), entries[2].Rank)
	}
}

func TestPublishedResultsOrderAndEmpty(t *testing.T) {
	setupDB(t)
	older := seedContest(t, "Older Round", 90, true)
	newer := seedContest(t, "Newer Round", 5, true)
	score := 55
	seedScored(t, older.ID, "solo", &score)
	_ = newer

	results := services.PublishedResults()
	if assert.Len(t, results, 2) {
		// newest contest first, even with no scored entries
		assert.Equal(t, "Newer Round", results[0].ContestName)
		assert.Empty(t, results[0].Entries)
		assert.Len(t, results[1].Entries, 1)
	}
}
