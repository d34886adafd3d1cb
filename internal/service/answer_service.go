package service

import (
	"errors"
	"time"

	"github.com/jinzhu/copier"
	"github.com/mysite/sbb/internal/dto"
	"github.com/mysite/sbb/internal/model"
	"github.com/mysite/sbb/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type AnswerService interface {
	Create(questionID uint, content string) (*dto.AnswerResponse, error)
}

type answerService struct {
	answerRepo   repository.AnswerRepository
	questionRepo repository.QuestionRepository
}

func NewAnswerService(answerRepo repository.AnswerRepository, questionRepo repository.QuestionRepository) AnswerService {
	return &answerService{answerRepo: answerRepo, questionRepo: questionRepo}
}

// Create stores a new answer for the question, stamped with the current time.
// An answer never exists without a question, so the question is resolved first.
func (s *answerService) Create(questionID uint, content string) (*dto.AnswerResponse, error) {
	question, err := s.questionRepo.FindByID(questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}

	answer := model.Answer{
		Content:    content,
		CreateDate: time.Now(),
		QuestionID: question.ID,
	}
	if err := s.answerRepo.Save(&answer); err != nil {
		log.Error().Err(err).Uint("questionID", questionID).Msg("Failed to create answer")
		return nil, err
	}

	var resp dto.AnswerResponse
	copier.Copy(&resp, &answer)
	return &resp, nil
}
