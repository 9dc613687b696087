// file: dto/contest.go
package dto

type ContestReq struct {
	Name     string `json:"name" binding:"required"`
	Date     string `json:"date" binding:"required"`      // 2006-01-02
	TestTime string `json:"test_time"`                    // 15:04, empty means TBD
	Syllabus string `json:"syllabus"`
}

type ContestItemResp struct {
	ID             uint32  `json:"id"`
	Name           string  `json:"name"`
	Date           string  `json:"date"`
	TestTime       *string `json:"test_time,omitempty"`
	Syllabus       string  `json:"syllabus,omitempty"`
	IsActive       bool    `json:"is_active"`
	PublishResults bool    `json:"publish_results"`
}
