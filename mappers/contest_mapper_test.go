// file: mappers/contest_mapper_test.go
package mappers

import (
	"testing"

	"codefest/dto"
	"codefest/models"

	"github.com/stretchr/testify/assert"
)

func TestApplyContestReq(t *testing.T) {
	var contest models.Contest
	err := ApplyContestReq(dto.ContestReq{
		Name: "CodeFest 2026", Date: "2026-11-02", TestTime: "14:30", Syllabus: "DP",
	}, &contest)
	assert.NoError(t, err)
	assert.Equal(t, "CodeFest 2026", contest.Name)
	assert.Equal(t, "2026-11-02", contest.Date.Format("2006-01-02"))
	if assert.NotNil(t, contest.TestTime) {
		assert.Equal(t, "14:30", *contest.TestTime)
	}

	err = ApplyContestReq(dto.ContestReq{Name: "Bad", Date: "02/11/2026"}, &contest)
	assert.Error(t, err)

	err = ApplyContestReq(dto.ContestReq{Name: "Bad", Date: "2026-11-02", TestTime: "2pm"}, &contest)
	assert.Error(t, err)

	// empty time means TBD
	err = ApplyContestReq(dto.ContestReq{Name: "OK", Date: "2026-11-02"}, &contest)
	assert.NoError(t, err)
	assert.Nil(t, contest.TestTime)
}
