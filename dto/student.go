// file: dto/student.go
package dto

type RegisterStudentReq struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	College        string `json:"college"`
	Branch         string `json:"branch" binding:"required"`
	GraduationYear *int   `json:"graduation_year"`
}

type ManualRegistrationReq struct {
	RegisterStudentReq
	ContestID uint32 `json:"contest_id" binding:"required"`
}

type StudentLoginReq struct {
	Email string `json:"email" binding:"required,email"`
}

type UpdateStudentReq struct {
	Name           string `json:"name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	College        string `json:"college" binding:"required"`
	Branch         string `json:"branch" binding:"required"`
	GraduationYear *int   `json:"graduation_year"`
	Status         string `json:"status" binding:"required,oneof=Pending Accepted Denied"`
}

type UpdateStatusReq struct {
	Status string `json:"status" binding:"required,oneof=Accepted Denied"`
}

type TestInfoReq struct {
	TestLink string `json:"test_link"`
	Score    *int   `json:"score"`
}

type StudentItemResp struct {
	ID             uint32  `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	College        string  `json:"college"`
	Branch         string  `json:"branch"`
	GraduationYear *int    `json:"graduation_year,omitempty"`
	Status         string  `json:"status"`
	TestLink       *string `json:"test_link,omitempty"`
	Score          *int    `json:"score,omitempty"`
	ReferenceCode  string  `json:"reference_code"`
	ContestID      uint32  `json:"contest_id"`
	ContestName    string  `json:"contest_name,omitempty"`
}
