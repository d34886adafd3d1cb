package dto

// CreateQuestionRequest is shared by question creation and update.
type CreateQuestionRequest struct {
	Subject string `json:"subject" binding:"required,max=200"`
	Content string `json:"content" binding:"required"`
}
