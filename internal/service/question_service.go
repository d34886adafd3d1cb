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

type QuestionService interface {
	GetList() ([]dto.QuestionResponse, error)
	GetQuestion(id uint) (*dto.QuestionResponse, error)
	CreateQuestion(req dto.CreateQuestionRequest) (*dto.QuestionResponse, error)
	UpdateQuestion(id uint, req dto.CreateQuestionRequest) (*dto.QuestionResponse, error)
	DeleteQuestion(id uint) error
}

type questionService struct {
	repo       repository.QuestionRepository
	answerRepo repository.AnswerRepository
}

func NewQuestionService(repo repository.QuestionRepository, answerRepo repository.AnswerRepository) QuestionService {
	return &questionService{repo: repo, answerRepo: answerRepo}
}

func (s *questionService) GetList() ([]dto.QuestionResponse, error) {
	questions, err := s.repo.FindAll()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load question list")
		return nil, err
	}
	var resp []dto.QuestionResponse
	copier.Copy(&resp, &questions)
	return resp, nil
}

// GetQuestion returns the question with its answers, or ErrQuestionNotFound.
func (s *questionService) GetQuestion(id uint) (*dto.QuestionResponse, error) {
	question, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}

	answers, err := s.answerRepo.FindByQuestionID(question.ID)
	if err != nil {
		return nil, err
	}

	var resp dto.QuestionResponse
	copier.Copy(&resp, question)
	copier.Copy(&resp.Answers, &answers)
	return &resp, nil
}

func (s *questionService) CreateQuestion(req dto.CreateQuestionRequest) (*dto.QuestionResponse, error) {
	question := model.Question{
		Subject:    req.Subject,
		Content:    req.Content,
		CreateDate: time.Now(),
	}
	if err := s.repo.Save(&question); err != nil {
		log.Error().Err(err).Msg("Failed to create question")
		return nil, err
	}

	var resp dto.QuestionResponse
	copier.Copy(&resp, &question)
	return &resp, nil
}

func (s *questionService) UpdateQuestion(id uint, req dto.CreateQuestionRequest) (*dto.QuestionResponse, error) {
	question, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuestionNotFound
		}
		return nil, err
	}

	question.Subject = req.Subject
	question.Content = req.Content
	if err := s.repo.Save(question); err != nil {
		log.Error().Err(err).Uint("id", id).Msg("Failed to update question")
		return nil, err
	}

	var resp dto.QuestionResponse
	copier.Copy(&resp, question)
	return &resp, nil
}

func (s *questionService) DeleteQuestion(id uint) error {
	question, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrQuestionNotFound
		}
		return err
	}
	return s.repo.Delete(question)
}
