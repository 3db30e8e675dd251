package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/lshigami/sciencegrader/config"
	"github.com/lshigami/sciencegrader/internal/dto"
	"github.com/lshigami/sciencegrader/internal/grading"
	"github.com/lshigami/sciencegrader/internal/model"
	"github.com/lshigami/sciencegrader/internal/monitoring"
	"github.com/lshigami/sciencegrader/internal/repository"
	"github.com/rs/zerolog/log"
)

const (
	noticeSaved      = "데이터베이스 저장 완료"
	noticeSaveFailed = "저장 오류: 데이터베이스 설정을 확인하세요"
)

// GradingResult is the outcome of one submission. Saved is false when grading
// succeeded but the row could not be stored.
type GradingResult struct {
	Submission grading.Submission
	Saved      bool
	Notice     string
}

type GradingService interface {
	Grade(ctx context.Context, req dto.SubmissionRequest) (GradingResult, error)
}

type gradingService struct {
	questions []grading.Question
	timeout   time.Duration
	llm       GeminiLLMService
	repo      repository.SubmissionRepository
	now       func() time.Time
}

func NewGradingService(cfg *config.Config, questions QuestionService, llm GeminiLLMService, repo repository.SubmissionRepository) GradingService {
	return &gradingService{
		questions: questions.Questions(),
		timeout:   cfg.Gemini.GradingTimeout,
		llm:       llm,
		repo:      repo,
		now:       time.Now,
	}
}

// gradedResult carries one goroutine's result back to its position in the submission.
type gradedResult struct {
	position int
	feedback grading.FeedbackRecord
}

func (s *gradingService) Grade(ctx context.Context, req dto.SubmissionRequest) (GradingResult, error) {
	studentID := strings.TrimSpace(req.StudentID)
	answers, err := s.validate(studentID, req.Answers)
	if err != nil {
		return GradingResult{}, err
	}

	var wg sync.WaitGroup
	resultsChan := make(chan gradedResult, len(s.questions))

	for i, q := range s.questions {
		wg.Add(1)
		go func(position int, question grading.Question, answer string) {
			defer wg.Done()
			resultsChan <- gradedResult{position: position, feedback: s.gradeOne(ctx, studentID, question, answer)}
		}(i, q, answers[q.Index])
	}

	wg.Wait()
	close(resultsChan)

	graded := make([]grading.GradedAnswer, len(s.questions))
	for result := range resultsChan {
		q := s.questions[result.position]
		graded[result.position] = grading.GradedAnswer{
			QuestionIndex: q.Index,
			Answer:        answers[q.Index],
			Guideline:     q.Rubric,
			Feedback:      result.feedback,
		}
	}

	submission := grading.Submission{
		StudentID: studentID,
		Answers:   graded,
		Model:     s.llm.ModelName(),
		CreatedAt: s.now().UTC(),
	}

	result := GradingResult{Submission: submission, Saved: true, Notice: noticeSaved}
	// The student already waited for grading; a disconnect must not drop the row.
	if err := s.persist(context.WithoutCancel(ctx), submission); err != nil {
		log.Error().Err(err).Str("studentID", studentID).Msg("Grade: failed to store graded submission")
		result.Saved = false
		result.Notice = noticeSaveFailed
	}
	monitoring.SubmissionsStored.WithLabelValues(fmt.Sprint(result.Saved)).Inc()

	log.Info().
		Str("studentID", studentID).
		Bool("saved", result.Saved).
		Int("answers", len(graded)).
		Msg("Submission graded")
	return result, nil
}

// validate returns the answers keyed by question index.
func (s *gradingService) validate(studentID string, answers []dto.AnswerRequest) (map[int]string, error) {
	if studentID == "" {
		return nil, ErrBlankStudentID
	}
	if len(answers) != len(s.questions) {
		return nil, fmt.Errorf("%w: got %d answers for %d questions", ErrAnswerCountMismatch, len(answers), len(s.questions))
	}
	known := make(map[int]bool, len(s.questions))
	for _, q := range s.questions {
		known[q.Index] = true
	}
	byIndex := make(map[int]string, len(answers))
	for _, a := range answers {
		if !known[a.QuestionIndex] {
			return nil, fmt.Errorf("%w: unknown question %d", ErrAnswerCountMismatch, a.QuestionIndex)
		}
		if _, dup := byIndex[a.QuestionIndex]; dup {
			return nil, fmt.Errorf("%w: question %d answered twice", ErrAnswerCountMismatch, a.QuestionIndex)
		}
		if strings.TrimSpace(a.Answer) == "" {
			return nil, fmt.Errorf("%w: question %d", ErrBlankAnswer, a.QuestionIndex)
		}
		byIndex[a.QuestionIndex] = a.Answer
	}
	return byIndex, nil
}

func (s *gradingService) gradeOne(ctx context.Context, studentID string, question grading.Question, answer string) grading.FeedbackRecord {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	raw, err := s.llm.GradeAnswer(callCtx, question, answer)
	monitoring.GradingDuration.Observe(time.Since(start).Seconds())

	source := "model"
	if err != nil {
		log.Warn().Err(err).Str("studentID", studentID).Int("questionIndex", question.Index).Msg("LLM grading failed, recording error text")
		raw = "API 오류: " + err.Error()
		source = "api_error"
	}

	feedback := grading.Normalize(raw)
	monitoring.AnswersGraded.WithLabelValues(string(feedback.Verdict), source).Inc()
	return feedback
}

func (s *gradingService) persist(ctx context.Context, submission grading.Submission) error {
	row, err := model.NewStudentSubmission(submission)
	if err != nil {
		return err
	}
	if err := s.repo.Create(ctx, row); err != nil {
		return fmt.Errorf("failed to insert submission: %w", err)
	}
	return nil
}
