package model

import (
	"time"
)

type Question struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	Subject    string    `json:"subject" gorm:"size:200"`
	Content    string    `json:"content" gorm:"type:text"`
	CreateDate time.Time `json:"create_date" gorm:"not null"`
	// Owned by Answer; deleting a question removes its answers.
	Answers []Answer `json:"answers,omitempty" gorm:"foreignKey:QuestionID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
