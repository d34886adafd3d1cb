package repository

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/mysite/sbb/internal/model"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	// One shared in-memory database per test; unique name keeps tests isolated.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}
	if err := db.AutoMigrate(&model.Question{}, &model.Answer{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedQuestions(t *testing.T, repo QuestionRepository) (*model.Question, *model.Question) {
	t.Helper()

	q1 := &model.Question{
		Subject:    "sbb가 무엇인가요?",
		Content:    "sbb에 대하여 알고 싶다.",
		CreateDate: time.Now(),
	}
	if err := repo.Save(q1); err != nil {
		t.Fatalf("save q1: %v", err)
	}

	q2 := &model.Question{
		Subject:    "스프링 부트 모델 질문",
		Content:    "id는 자동으로 생성되는가?",
		CreateDate: time.Now(),
	}
	if err := repo.Save(q2); err != nil {
		t.Fatalf("save q2: %v", err)
	}
	return q1, q2
}

func TestQuestionSaveGeneratesID(t *testing.T) {
	repo := NewQuestionRepository(setupDB(t))

	q1, q2 := seedQuestions(t, repo)
	if q1.ID == 0 || q2.ID == 0 {
		t.Fatalf("expected generated ids, got %d and %d", q1.ID, q2.ID)
	}
	if q1.ID == q2.ID {
		t.Fatalf("ids must be unique, both are %d", q1.ID)
	}

	count, err := repo.Count()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 questions, got %d", count)
	}
}

func TestQuestionFindAll(t *testing.T) {
	repo := NewQuestionRepository(setupDB(t))
	seedQuestions(t, repo)

	all, err := repo.FindAll()
	if err != nil {
		t.Fatalf("findAll: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 questions, got %d", len(all))
	}
	if all[0].Subject != "sbb가 무엇인가요?" {
		t.Errorf("expected insertion order, first subject = %q", all[0].Subject)
	}
}

func TestQuestionFindByID(t *testing.T) {
	repo := NewQuestionRepository(setupDB(t))
	q1, _ := seedQuestions(t, repo)

	found, err := repo.FindByID(q1.ID)
	if err != nil {
		t.Fatalf("findByID: %v", err)
	}
	if found.Subject != q1.Subject || found.Content != q1.Content {
		t.Errorf("found %+v, want subject %q content %q", found, q1.Subject, q1.Content)
	}

	if _, err := repo.FindByID(9999); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound for missing id, got %v", err)
	}
}

func TestQuestionSaveUpdatesExistingRow(t *testing.T) {
	repo := NewQuestionRepository(setupDB(t))
	q1, _ := seedQuestions(t, repo)

	q1.Subject = "수정된 제목"
	if err := repo.Save(q1); err != nil {
		t.Fatalf("update: %v", err)
	}
	// Saving again with unchanged fields must not create another row.
	if err := repo.Save(q1); err != nil {
		t.Fatalf("idempotent save: %v", err)
	}

	count, err := repo.Count()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 questions after update, got %d", count)
	}

	found, err := repo.FindByID(q1.ID)
	if err != nil {
		t.Fatalf("findByID: %v", err)
	}
	if found.Subject != "수정된 제목" {
		t.Errorf("subject = %q, want updated value", found.Subject)
	}
}

func TestQuestionDelete(t *testing.T) {
	db := setupDB(t)
	repo := NewQuestionRepository(db)
	q1, _ := seedQuestions(t, repo)

	if err := repo.Delete(q1); err != nil {
		t.Fatalf("delete: %v", err)
	}

	count, err := repo.Count()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 question after delete, got %d", count)
	}
	if _, err := repo.FindByID(q1.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("deleted question still found, err = %v", err)
	}
}

func TestQuestionDeleteCascadesToAnswers(t *testing.T) {
	db := setupDB(t)
	repo := NewQuestionRepository(db)
	answerRepo := NewAnswerRepository(db)
	q1, q2 := seedQuestions(t, repo)

	a1 := &model.Answer{Content: "네 자동으로 생성됩니다.", CreateDate: time.Now(), QuestionID: q1.ID}
	a2 := &model.Answer{Content: "두 번째 답변", CreateDate: time.Now(), QuestionID: q1.ID}
	other := &model.Answer{Content: "다른 질문의 답변", CreateDate: time.Now(), QuestionID: q2.ID}
	for _, a := range []*model.Answer{a1, a2, other} {
		if err := answerRepo.Save(a); err != nil {
			t.Fatalf("save answer: %v", err)
		}
	}

	if err := repo.Delete(q1); err != nil {
		t.Fatalf("delete: %v", err)
	}

	for _, a := range []*model.Answer{a1, a2} {
		if _, err := answerRepo.FindByID(a.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
			t.Errorf("answer %d survived cascade delete, err = %v", a.ID, err)
		}
	}
	if _, err := answerRepo.FindByID(other.ID); err != nil {
		t.Errorf("answer of another question must survive, err = %v", err)
	}
}

func TestQuestionFindBySubject(t *testing.T) {
	repo := NewQuestionRepository(setupDB(t))
	q1, _ := seedQuestions(t, repo)

	found, err := repo.FindBySubject("sbb가 무엇인가요?")
	if err != nil {
		t.Fatalf("findBySubject: %v", err)
	}
	if found.ID != q1.ID {
		t.Errorf("id = %d, want %d", found.ID, q1.ID)
	}

	if _, err := repo.FindBySubject("없는 제목"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound for unknown subject, got %v", err)
	}
}

func TestQuestionFindBySubjectAmbiguous(t *testing.T) {
	repo := NewQuestionRepository(setupDB(t))
	q1, _ := seedQuestions(t, repo)

	dup := &model.Question{Subject: q1.Subject, Content: "중복 제목", CreateDate: time.Now()}
	if err := repo.Save(dup); err != nil {
		t.Fatalf("save dup: %v", err)
	}

	if _, err := repo.FindBySubject(q1.Subject); !errors.Is(err, ErrAmbiguousSubject) {
		t.Errorf("expected ErrAmbiguousSubject, got %v", err)
	}
}

func TestQuestionFindBySubjectAndContent(t *testing.T) {
	repo := NewQuestionRepository(setupDB(t))
	q1, _ := seedQuestions(t, repo)

	found, err := repo.FindBySubjectAndContent("sbb가 무엇인가요?", "sbb에 대하여 알고 싶다.")
	if err != nil {
		t.Fatalf("findBySubjectAndContent: %v", err)
	}
	if found.ID != q1.ID {
		t.Errorf("id = %d, want %d", found.ID, q1.ID)
	}

	_, err = repo.FindBySubjectAndContent("sbb가 무엇인가요?", "다른 내용")
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound on content mismatch, got %v", err)
	}
}

func TestQuestionFindBySubjectLike(t *testing.T) {
	repo := NewQuestionRepository(setupDB(t))
	q1, _ := seedQuestions(t, repo)

	matches, err := repo.FindBySubjectLike("sbb%")
	if err != nil {
		t.Fatalf("findBySubjectLike: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected 1 match for sbb%%, got %d", len(matches))
	}
	if matches[0].ID != q1.ID {
		t.Errorf("id = %d, want %d", matches[0].ID, q1.ID)
	}
}
