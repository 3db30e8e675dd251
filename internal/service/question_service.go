package service

import (
	"fmt"

	"github.com/jinzhu/copier"
	"github.com/lshigami/sciencegrader/config"
	"github.com/lshigami/sciencegrader/internal/dto"
	"github.com/lshigami/sciencegrader/internal/grading"
)

type QuestionService interface {
	GetQuestionSet() (*dto.QuestionSetResponse, error)
	Questions() []grading.Question
}

type questionService struct {
	classTitle string
	questions  []grading.Question
}

func NewQuestionService(cfg *config.Config) QuestionService {
	return &questionService{classTitle: cfg.ClassTitle, questions: cfg.Questions}
}

// GetQuestionSet returns what the student form shows. Rubrics stay server side.
func (s *questionService) GetQuestionSet() (*dto.QuestionSetResponse, error) {
	resp := dto.QuestionSetResponse{ClassTitle: s.classTitle}
	if err := copier.Copy(&resp.Questions, &s.questions); err != nil {
		return nil, fmt.Errorf("error preparing question set: %w", err)
	}
	return &resp, nil
}

// Questions returns a copy of the configured question set, rubrics included.
func (s *questionService) Questions() []grading.Question {
	out := make([]grading.Question, len(s.questions))
	copy(out, s.questions)
	return out
}
