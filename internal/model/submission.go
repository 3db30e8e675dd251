package model

import (
	"fmt"
	"time"

	"github.com/lshigami/sciencegrader/internal/grading"
)

// StudentSubmission is one graded attempt flattened into the fixed-column row layout.
type StudentSubmission struct {
	ID         uint      `gorm:"primarykey" json:"id"`
	StudentID  string    `json:"student_id" gorm:"not null;index"`
	Answer1    string    `json:"answer_1" gorm:"column:answer_1;type:text"`
	Answer2    string    `json:"answer_2" gorm:"column:answer_2;type:text"`
	Answer3    string    `json:"answer_3" gorm:"column:answer_3;type:text"`
	Feedback1  string    `json:"feedback_1" gorm:"column:feedback_1;type:text"`
	Feedback2  string    `json:"feedback_2" gorm:"column:feedback_2;type:text"`
	Feedback3  string    `json:"feedback_3" gorm:"column:feedback_3;type:text"`
	Guideline1 string    `json:"guideline_1" gorm:"column:guideline_1;type:text"`
	Guideline2 string    `json:"guideline_2" gorm:"column:guideline_2;type:text"`
	Guideline3 string    `json:"guideline_3" gorm:"column:guideline_3;type:text"`
	Model      string    `json:"model"`
	CreatedAt  time.Time `json:"created_at" gorm:"index"`
}

func (StudentSubmission) TableName() string {
	return "student_submissions"
}

// slots returns pointers to the answer, feedback and guideline columns of question i (1-based).
func (s *StudentSubmission) slots(i int) (answer, feedback, guideline *string, ok bool) {
	switch i {
	case 1:
		return &s.Answer1, &s.Feedback1, &s.Guideline1, true
	case 2:
		return &s.Answer2, &s.Feedback2, &s.Guideline2, true
	case 3:
		return &s.Answer3, &s.Feedback3, &s.Guideline3, true
	}
	return nil, nil, nil, false
}

// NewStudentSubmission flattens a graded submission into a row.
func NewStudentSubmission(sub grading.Submission) (*StudentSubmission, error) {
	row := &StudentSubmission{
		StudentID: sub.StudentID,
		Model:     sub.Model,
		CreatedAt: sub.CreatedAt,
	}
	for _, a := range sub.Answers {
		answer, feedback, guideline, ok := row.slots(a.QuestionIndex)
		if !ok {
			return nil, fmt.Errorf("question index %d has no column in %s", a.QuestionIndex, row.TableName())
		}
		*answer = a.Answer
		*feedback = a.Feedback.Rationale
		*guideline = a.Guideline
	}
	return row, nil
}

// ToSubmission rebuilds the domain view of a stored row for the first n questions.
// Stored feedback is classified by its "O:" prefix.
func (s StudentSubmission) ToSubmission(n int) grading.Submission {
	sub := grading.Submission{
		StudentID: s.StudentID,
		Model:     s.Model,
		CreatedAt: s.CreatedAt,
	}
	for i := 1; i <= n; i++ {
		answer, feedback, guideline, ok := s.slots(i)
		if !ok {
			break
		}
		sub.Answers = append(sub.Answers, grading.GradedAnswer{
			QuestionIndex: i,
			Answer:        *answer,
			Guideline:     *guideline,
			Feedback:      grading.ParseStored(*feedback),
		})
	}
	return sub
}
