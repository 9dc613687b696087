// file: models/student.go
package models

import (
	"time"
)

type StudentStatus string

const (
	StatusPending  StudentStatus = "Pending"
	StatusAccepted StudentStatus = "Accepted"
	StatusDenied   StudentStatus = "Denied"
)

// Branches offered on the registration form.
var Branches = []string{"CSE", "ECE", "EIE", "ME", "EEE", "Civil"}

// Student is one registration, scoped to a single contest. The same email may
// register for several contests, but only once per contest.
type Student struct {
	ID             uint32        `gorm:"primarykey" json:"id"`
	Name           string        `gorm:"size:100;not null" json:"name"`
	Email          string        `gorm:"size:120;not null;uniqueIndex:idx_email_contest" json:"email"`
	College        string        `gorm:"size:150;not null;default:'NIT Nagaland'" json:"college"`
	Branch         string        `gorm:"size:50;not null" json:"branch"`
	GraduationYear *int          `json:"graduation_year,omitempty"`
	Status         StudentStatus `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	TestLink       *string       `gorm:"size:200" json:"test_link,omitempty"`
	Score          *int          `json:"score,omitempty"`
	ReferenceCode  string        `gorm:"size:20;unique;not null" json:"reference_code"`
	ContestID      uint32        `gorm:"not null;uniqueIndex:idx_email_contest" json:"contest_id"`
	Contest        *Contest      `gorm:"foreignKey:ContestID" json:"contest,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

func (Student) TableName() string {
	return "codefest_student"
}
