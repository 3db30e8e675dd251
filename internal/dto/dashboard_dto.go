package dto

import "time"

// SubmissionRowDTO mirrors one stored row as the dashboard table shows it.
type SubmissionRowDTO struct {
	ID         uint      `json:"id"`
	StudentID  string    `json:"student_id"`
	Answer1    string    `json:"answer_1"`
	Answer2    string    `json:"answer_2"`
	Answer3    string    `json:"answer_3"`
	Feedback1  string    `json:"feedback_1"`
	Feedback2  string    `json:"feedback_2"`
	Feedback3  string    `json:"feedback_3"`
	Guideline1 string    `json:"guideline_1"`
	Guideline2 string    `json:"guideline_2"`
	Guideline3 string    `json:"guideline_3"`
	Model      string    `json:"model"`
	CreatedAt  time.Time `json:"created_at"`
}

type DashboardQuery struct {
	StudentID string `form:"student_id"`
	Days      int    `form:"days,default=30"`
}

type HistoryQuery struct {
	Limit int `form:"limit,default=200"`
}

type StudentListResponse struct {
	StudentIDs []string `json:"student_ids"`
}
