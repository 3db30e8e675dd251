package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/jinzhu/copier"
	"github.com/lshigami/sciencegrader/internal/dto"
	"github.com/lshigami/sciencegrader/internal/grading"
	"github.com/lshigami/sciencegrader/internal/model"
	"github.com/lshigami/sciencegrader/internal/repository"
)

const (
	MaxWindowDays   = 365
	MaxHistoryLimit = 200

	utf8BOM = "\ufeff"
)

var csvHeader = []string{
	"student_id", "created_at",
	"answer_1", "answer_2", "answer_3",
	"feedback_1", "feedback_2", "feedback_3",
	"model",
}

// DashboardService is the read side used by the teacher dashboard.
type DashboardService interface {
	ListSubmissions(ctx context.Context, q dto.DashboardQuery) ([]dto.SubmissionRowDTO, error)
	Stats(ctx context.Context, q dto.DashboardQuery) (grading.AggregateStats, error)
	Students(ctx context.Context, q dto.DashboardQuery) ([]string, error)
	History(ctx context.Context, studentID string, limit int) ([]dto.SubmissionRowDTO, error)
	ExportCSV(ctx context.Context, q dto.DashboardQuery, w io.Writer) error
}

type dashboardService struct {
	repo            repository.SubmissionRepository
	questionIndices []int
	now             func() time.Time
}

func NewDashboardService(questions QuestionService, repo repository.SubmissionRepository) DashboardService {
	qs := questions.Questions()
	indices := make([]int, len(qs))
	for i, q := range qs {
		indices[i] = q.Index
	}
	return &dashboardService{repo: repo, questionIndices: indices, now: time.Now}
}

func (s *dashboardService) filter(q dto.DashboardQuery) (repository.SubmissionFilter, error) {
	if q.Days < 0 || q.Days > MaxWindowDays {
		return repository.SubmissionFilter{}, fmt.Errorf("%w: got %d", ErrInvalidWindow, q.Days)
	}
	f := repository.SubmissionFilter{StudentIDContains: strings.TrimSpace(q.StudentID)}
	if q.Days > 0 {
		f.CreatedSince = s.now().UTC().AddDate(0, 0, -q.Days)
	}
	return f, nil
}

func (s *dashboardService) rows(ctx context.Context, q dto.DashboardQuery) ([]model.StudentSubmission, error) {
	f, err := s.filter(q)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.FindFiltered(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("failed to query submissions: %w", err)
	}
	return rows, nil
}

func (s *dashboardService) ListSubmissions(ctx context.Context, q dto.DashboardQuery) ([]dto.SubmissionRowDTO, error) {
	rows, err := s.rows(ctx, q)
	if err != nil {
		return nil, err
	}
	return toRowDTOs(rows)
}

func (s *dashboardService) Stats(ctx context.Context, q dto.DashboardQuery) (grading.AggregateStats, error) {
	rows, err := s.rows(ctx, q)
	if err != nil {
		return grading.AggregateStats{}, err
	}
	submissions := make([]grading.Submission, len(rows))
	for i, row := range rows {
		submissions[i] = row.ToSubmission(len(s.questionIndices))
	}
	return grading.Summarize(s.questionIndices, submissions), nil
}

func (s *dashboardService) Students(ctx context.Context, q dto.DashboardQuery) ([]string, error) {
	rows, err := s.rows(ctx, q)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	ids := []string{}
	for _, row := range rows {
		if !seen[row.StudentID] {
			seen[row.StudentID] = true
			ids = append(ids, row.StudentID)
		}
	}
	sort.Strings(ids)
	return ids, nil
}

func (s *dashboardService) History(ctx context.Context, studentID string, limit int) ([]dto.SubmissionRowDTO, error) {
	studentID = strings.TrimSpace(studentID)
	if studentID == "" {
		return nil, ErrBlankStudentID
	}
	if limit < 1 || limit > MaxHistoryLimit {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLimit, limit)
	}
	rows, err := s.repo.FindByStudentID(ctx, studentID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history for %s: %w", studentID, err)
	}
	return toRowDTOs(rows)
}

// ExportCSV writes the filtered rows with a UTF-8 BOM so spreadsheet tools detect the encoding.
func (s *dashboardService) ExportCSV(ctx context.Context, q dto.DashboardQuery, w io.Writer) error {
	rows, err := s.rows(ctx, q)
	if err != nil {
		return err
	}
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return err
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			row.StudentID,
			row.CreatedAt.UTC().Format(time.RFC3339),
			row.Answer1, row.Answer2, row.Answer3,
			row.Feedback1, row.Feedback2, row.Feedback3,
			row.Model,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func toRowDTOs(rows []model.StudentSubmission) ([]dto.SubmissionRowDTO, error) {
	out := make([]dto.SubmissionRowDTO, 0, len(rows))
	if len(rows) == 0 {
		return out, nil
	}
	if err := copier.Copy(&out, &rows); err != nil {
		return nil, fmt.Errorf("error mapping submissions: %w", err)
	}
	return out, nil
}
