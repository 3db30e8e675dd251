package grading

import "time"

// Question is one entry of the fixed question set together with its rubric.
type Question struct {
	Index  int    `mapstructure:"index" json:"index"`
	Title  string `mapstructure:"title" json:"title"`
	Prompt string `mapstructure:"prompt" json:"prompt"`
	Rubric string `mapstructure:"rubric" json:"rubric"`
}

// GradedAnswer pairs a student's answer with the rubric it was graded against and the result.
type GradedAnswer struct {
	QuestionIndex int
	Answer        string
	Guideline     string
	Feedback      FeedbackRecord
}

// Submission is one student's complete graded attempt.
type Submission struct {
	StudentID string
	Answers   []GradedAnswer
	Model     string
	CreatedAt time.Time
}

// Feedback returns the record graded for the given question index.
func (s Submission) Feedback(questionIndex int) (FeedbackRecord, bool) {
	for _, a := range s.Answers {
		if a.QuestionIndex == questionIndex {
			return a.Feedback, true
		}
	}
	return FeedbackRecord{}, false
}
