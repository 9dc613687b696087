// file: models/contest.go
package models

import (
	"time"
)

type Contest struct {
	ID             uint32    `gorm:"primarykey" json:"id"`
	Name           string    `gorm:"size:150;not null" json:"name"`
	Date           time.Time `gorm:"type:date;not null" json:"date"`
	TestTime       *string   `gorm:"size:5" json:"test_time,omitempty"` // "15:04", nil when TBD
	Syllabus       string    `gorm:"type:text" json:"syllabus,omitempty"`
	IsActive       bool      `gorm:"not null;default:true" json:"is_active"`
	PublishResults bool      `gorm:"not null;default:false" json:"publish_results"`
	Students       []Student `gorm:"foreignKey:ContestID;constraint:OnDelete:CASCADE" json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (Contest) TableName() string {
	return "codefest_contest"
}
