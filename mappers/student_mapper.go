// file: mappers/student_mapper.go
package mappers

import (
	"codefest/dto"
	"codefest/models"
	"codefest/utils"
)

func MapRegisterReqToModel(req dto.RegisterStudentReq, contestID uint32) models.Student {
	college := req.College
	if college == "" {
		college = "NIT Nagaland"
	}
	return models.Student{
		Name:           req.Name,
		Email:          req.Email,
		College:        college,
		Branch:         req.Branch,
		GraduationYear: req.GraduationYear,
		Status:         models.StatusPending,
		ReferenceCode:  utils.GenerateReferenceCode(),
		ContestID:      contestID,
	}
}

func MapStudentToItemResp(s models.Student) dto.StudentItemResp {
	resp := dto.StudentItemResp{
		ID:             s.ID,
		Name:           s.Name,
		Email:          s.Email,
		College:        s.College,
		Branch:         s.Branch,
		GraduationYear: s.GraduationYear,
		Status:         string(s.Status),
		TestLink:       s.TestLink,
		Score:          s.Score,
		ReferenceCode:  s.ReferenceCode,
		ContestID:      s.ContestID,
	}
	if s.Contest != nil {
		resp.ContestName = s.Contest.Name
	}
	return resp
}

func MapStudentsToItemResps(students []models.Student) []dto.StudentItemResp {
	resps := make([]dto.StudentItemResp, 0, len(students))
	for _, s := range students {
		resps = append(resps, MapStudentToItemResp(s))
	}
	return resps
}
