package model

import (
	"time"
)

type Answer struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	Content    string    `json:"content" gorm:"type:text;not null"`
	CreateDate time.Time `json:"create_date" gorm:"not null"`
	QuestionID uint      `json:"question_id" gorm:"not null;index"`
	// Not fetched with the answer; preload explicitly when the question is needed.
	Question Question `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
}
