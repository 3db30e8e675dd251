package dto

import "time"

type AnswerRequest struct {
	QuestionIndex int    `json:"question_index" binding:"required,min=1"`
	Answer        string `json:"answer"`
}

// SubmissionRequest is what the student form posts. Blank values are rejected by the grading service.
type SubmissionRequest struct {
	StudentID string          `json:"student_id"`
	Answers   []AnswerRequest `json:"answers" binding:"required,dive"`
}

type AnswerResultDTO struct {
	QuestionIndex int    `json:"question_index"`
	Answer        string `json:"answer"`
	Verdict       string `json:"verdict" example:"correct"`
	Feedback      string `json:"feedback" example:"O: 온도와 입자 운동의 관계를 잘 설명했어요."`
}

type SubmissionResponse struct {
	StudentID string            `json:"student_id"`
	Model     string            `json:"model"`
	CreatedAt time.Time         `json:"created_at"`
	Saved     bool              `json:"saved"`
	Notice    string            `json:"notice"`
	Results   []AnswerResultDTO `json:"results"`
}

type QuestionDTO struct {
	Index  int    `json:"index"`
	Title  string `json:"title"`
	Prompt string `json:"prompt"`
}

type QuestionSetResponse struct {
	ClassTitle string        `json:"class_title"`
	Questions  []QuestionDTO `json:"questions"`
}
