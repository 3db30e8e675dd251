package grading

import (
	"sort"
	"time"
)

// QuestionRate is the share of Correct verdicts for one question, in percent.
type QuestionRate struct {
	QuestionIndex int     `json:"question_index"`
	CorrectRate   float64 `json:"correct_rate"`
	Graded        int     `json:"graded"`
}

// AggregateStats summarizes a set of submissions for the dashboard. It is never stored.
type AggregateStats struct {
	TotalSubmissions  int            `json:"total_submissions"`
	DistinctStudents  int            `json:"distinct_students"`
	LatestSubmittedAt *time.Time     `json:"latest_submitted_at,omitempty"`
	QuestionRates     []QuestionRate `json:"question_rates"`
}

// CorrectnessRate returns 100 * correct / total, or 0 for an empty slice.
func CorrectnessRate(records []FeedbackRecord) float64 {
	if len(records) == 0 {
		return 0.0
	}
	correct := 0
	for _, r := range records {
		if r.IsCorrect() {
			correct++
		}
	}
	return float64(correct) / float64(len(records)) * 100.0
}

// Summarize computes totals and per-question correctness rates.
// Every index in questionIndices gets a rate, 0 when nothing was graded for it;
// indices seen only in the data are reported too.
// The result does not depend on the order of submissions.
func Summarize(questionIndices []int, submissions []Submission) AggregateStats {
	stats := AggregateStats{
		TotalSubmissions: len(submissions),
		QuestionRates:    []QuestionRate{},
	}

	students := make(map[string]struct{})
	byQuestion := make(map[int][]FeedbackRecord, len(questionIndices))
	for _, idx := range questionIndices {
		byQuestion[idx] = nil
	}
	var latest time.Time

	for _, s := range submissions {
		students[s.StudentID] = struct{}{}
		if s.CreatedAt.After(latest) {
			latest = s.CreatedAt
		}
		for _, a := range s.Answers {
			byQuestion[a.QuestionIndex] = append(byQuestion[a.QuestionIndex], a.Feedback)
		}
	}
	stats.DistinctStudents = len(students)
	if !latest.IsZero() {
		stats.LatestSubmittedAt = &latest
	}

	indices := make([]int, 0, len(byQuestion))
	for idx := range byQuestion {
		indices = append(indices, idx)
	}
	sort.Ints(indices)
	for _, idx := range indices {
		records := byQuestion[idx]
		stats.QuestionRates = append(stats.QuestionRates, QuestionRate{
			QuestionIndex: idx,
			CorrectRate:   CorrectnessRate(records),
			Graded:        len(records),
		})
	}
	return stats
}
