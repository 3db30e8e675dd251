package model

import (
	"testing"
	"time"

	"github.com/lshigami/sciencegrader/internal/grading"
)

func gradedSubmission() grading.Submission {
	return grading.Submission{
		StudentID: "10130",
		Model:     "gemini-1.5-flash",
		CreatedAt: time.Date(2025, 4, 1, 3, 0, 0, 0, time.UTC),
		Answers: []grading.GradedAnswer{
			{QuestionIndex: 1, Answer: "a1", Guideline: "g1", Feedback: grading.Normalize("O: 좋아요")},
			{QuestionIndex: 2, Answer: "a2", Guideline: "g2", Feedback: grading.Normalize("API 오류: timeout")},
			{QuestionIndex: 3, Answer: "a3", Guideline: "g3", Feedback: grading.Normalize("X: 부족해요")},
		},
	}
}

func TestNewStudentSubmissionFlattens(t *testing.T) {
	row, err := NewStudentSubmission(gradedSubmission())
	if err != nil {
		t.Fatalf("NewStudentSubmission: %v", err)
	}
	if row.StudentID != "10130" || row.Model != "gemini-1.5-flash" {
		t.Fatalf("unexpected identity fields: %+v", row)
	}
	if row.Answer2 != "a2" || row.Guideline3 != "g3" {
		t.Fatalf("columns not mapped by question index: %+v", row)
	}
	if row.Feedback1 != "O: 좋아요" || row.Feedback2 != "X: API 오류: timeout" || row.Feedback3 != "X: 부족해요" {
		t.Fatalf("unexpected feedback columns: %q %q %q", row.Feedback1, row.Feedback2, row.Feedback3)
	}
}

func TestNewStudentSubmissionRejectsUnknownIndex(t *testing.T) {
	sub := gradedSubmission()
	sub.Answers = append(sub.Answers, grading.GradedAnswer{QuestionIndex: 4})
	if _, err := NewStudentSubmission(sub); err == nil {
		t.Fatal("want error for a question without a column")
	}
}

func TestToSubmissionRoundTrip(t *testing.T) {
	row, err := NewStudentSubmission(gradedSubmission())
	if err != nil {
		t.Fatal(err)
	}
	sub := row.ToSubmission(3)
	if len(sub.Answers) != 3 {
		t.Fatalf("want 3 answers, got %d", len(sub.Answers))
	}
	if fb, _ := sub.Feedback(1); !fb.IsCorrect() {
		t.Fatalf("q1 should be classified Correct: %+v", fb)
	}
	if fb, _ := sub.Feedback(2); fb.IsCorrect() {
		t.Fatalf("q2 should be classified Incorrect: %+v", fb)
	}
	if !sub.CreatedAt.Equal(row.CreatedAt) {
		t.Fatalf("created_at changed")
	}
}

func TestToSubmissionEmptyFeedbackIsIncorrect(t *testing.T) {
	sub := StudentSubmission{StudentID: "x"}.ToSubmission(2)
	if len(sub.Answers) != 2 {
		t.Fatalf("want 2 answers, got %d", len(sub.Answers))
	}
	for _, a := range sub.Answers {
		if a.Feedback.IsCorrect() {
			t.Fatalf("empty stored feedback must count as Incorrect")
		}
	}
}
