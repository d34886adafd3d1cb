package repository

import (
	"errors"

	"github.com/mysite/sbb/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrAmbiguousSubject is returned by the single-row subject lookups when the
// subject matches more than one question. The schema declares no uniqueness on
// subject, so the lookups refuse to pick a row silently.
var ErrAmbiguousSubject = errors.New("subject matches more than one question")

type QuestionRepository interface {
	FindAll() ([]model.Question, error)
	FindByID(id uint) (*model.Question, error)
	Count() (int64, error)
	Save(question *model.Question) error
	Delete(question *model.Question) error
	FindBySubject(subject string) (*model.Question, error)
	FindBySubjectAndContent(subject, content string) (*model.Question, error)
	FindBySubjectLike(pattern string) ([]model.Question, error)
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) FindAll() ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.Order("id asc").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *questionRepository) FindByID(id uint) (*model.Question, error) {
	var question model.Question
	if err := r.db.First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&model.Question{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save inserts when the id is unset and updates the existing row otherwise.
// The generated id is populated on the entity after insert.
func (r *questionRepository) Save(question *model.Question) error {
	return r.db.Save(question).Error
}

// Delete removes the question together with its answers. The association
// delete keeps the cascade dialect-independent; the FK constraint on answers
// backs it at the schema level.
func (r *questionRepository) Delete(question *model.Question) error {
	return r.db.Select(clause.Associations).Delete(question).Error
}

func (r *questionRepository) FindBySubject(subject string) (*model.Question, error) {
	var questions []model.Question
	if err := r.db.Where("subject = ?", subject).Find(&questions).Error; err != nil {
		return nil, err
	}
	return singleMatch(questions)
}

func (r *questionRepository) FindBySubjectAndContent(subject, content string) (*model.Question, error) {
	var questions []model.Question
	if err := r.db.Where("subject = ? AND content = ?", subject, content).Find(&questions).Error; err != nil {
		return nil, err
	}
	return singleMatch(questions)
}

func (r *questionRepository) FindBySubjectLike(pattern string) ([]model.Question, error) {
	var questions []model.Question
	if err := r.db.Where("subject LIKE ?", pattern).Order("id asc").Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func singleMatch(questions []model.Question) (*model.Question, error) {
	switch len(questions) {
	case 0:
		return nil, gorm.ErrRecordNotFound
	case 1:
		return &questions[0], nil
	default:
		return nil, ErrAmbiguousSubject
	}
}
