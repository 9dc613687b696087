// file: services/results_service.go
package services

import (
	"codefest/database"
	"codefest/models"
)

type RankedEntry struct {
	Rank    uint   `json:"rank"`
	Name    string `json:"name"`
	College string `json:"college"`
	Branch  string `json:"branch"`
	Score   int    `json:"score"`
}

type ContestResults struct {
	ContestID   uint32        `json:"contest_id"`
	ContestName string        `json:"contest_name"`
	Date        string        `json:"date"`
	Entries     []RankedEntry `json:"entries"`
}

// PublishedResults builds the public leaderboard: every contest whose results
// are published, newest first, with its scored registrations ranked by score.
// Unscored registrations never appear.
func PublishedResults() []ContestResults {
	var contests []models.Contest
	database.DB.Where("publish_results = ?", true).Order("date desc").Find(&contests)

	results := make([]ContestResults, 0, len(contests))
	for _, contest := range contests {
		var students []models.Student
		database.DB.Where("contest_id = ? AND score IS NOT NULL", contest.ID).
			Order("score desc").Find(&students)

		entries := make([]RankedEntry, 0, len(students))
		var rank uint = 0
		for _, s := range students {
			rank++
			entries = append(entries, RankedEntry{
				Rank:    rank,
				Name:    s.Name,
				College: s.College,
				Branch:  s.Branch,
				Score:   *s.Score,
			})
		}

		results = append(results, ContestResults{
			ContestID:   contest.ID,
			ContestName: contest.Name,
			Date:        contest.Date.Format("2006-01-02"),
			Entries:     entries,
		})
	}
	return results
}
