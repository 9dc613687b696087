// file: mappers/contest_mapper.go
package mappers

import (
	"errors"
	"time"

	"codefest/dto"
	"codefest/models"
)

// ApplyContestReq validates the request and copies it onto the model.
func ApplyContestReq(req dto.ContestReq, contest *models.Contest) error {
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return errors.New("date must be in YYYY-MM-DD format")
	}
	var testTime *string
	if req.TestTime != "" {
		if _, err := time.Parse("15:04", req.TestTime); err != nil {
			return errors.New("test_time must be in HH:MM format")
		}
		t := req.TestTime
		testTime = &t
	}
	contest.Name = req.Name
	contest.Date = date
	contest.TestTime = testTime
	contest.Syllabus = req.Syllabus
	return nil
}

func MapContestToItemResp(contest models.Contest) dto.ContestItemResp {
	return dto.ContestItemResp{
		ID:             contest.ID,
		Name:           contest.Name,
		Date:           contest.Date.Format("2006-01-02"),
		TestTime:       contest.TestTime,
		Syllabus:       contest.Syllabus,
		IsActive:       contest.IsActive,
		PublishResults: contest.PublishResults,
	}
}

func MapContestsToItemResps(contests []models.Contest) []dto.ContestItemResp {
	resps := make([]dto.ContestItemResp, 0, len(contests))
	for _, contest := range contests {
		resps = append(resps, MapContestToItemResp(contest))
	}
	return resps
}
