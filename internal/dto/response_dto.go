package dto

import "time"

type QuestionResponse struct {
	ID         uint             `json:"id"`
	Subject    string           `json:"subject"`
	Content    string           `json:"content"`
	CreateDate time.Time        `json:"create_date"`
	Answers    []AnswerResponse `json:"answers,omitempty"`
}

type AnswerResponse struct {
	ID         uint      `json:"id"`
	Content    string    `json:"content"`
	CreateDate time.Time `json:"create_date"`
	QuestionID uint      `json:"question_id"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
