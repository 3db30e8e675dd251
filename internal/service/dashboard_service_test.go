package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/lshigami/sciencegrader/internal/dto"
	"github.com/lshigami/sciencegrader/internal/model"
)

var dashboardNow = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

func newTestDashboard(rows ...model.StudentSubmission) (*dashboardService, *fakeSubmissionRepo) {
	repo := &fakeSubmissionRepo{rows: rows}
	svc := NewDashboardService(NewQuestionService(testConfig()), repo).(*dashboardService)
	svc.now = func() time.Time { return dashboardNow }
	return svc, repo
}

func dashboardRows() []model.StudentSubmission {
	return []model.StudentSubmission{
		{ID: 1, StudentID: "10131", Answer1: "a, with comma", Feedback1: "O: a", Feedback2: "X: b", Feedback3: "O: c", Model: "m", CreatedAt: dashboardNow.AddDate(0, 0, -1)},
		{ID: 2, StudentID: "10130", Feedback1: "O: a", Feedback2: "O: b", Feedback3: "X: c", Model: "m", CreatedAt: dashboardNow.AddDate(0, 0, -3)},
		{ID: 3, StudentID: "10131", Feedback1: "X: a", Feedback2: "", Feedback3: "O: c", Model: "m", CreatedAt: dashboardNow.AddDate(0, 0, -50)},
	}
}

func TestDashboardWindow(t *testing.T) {
	svc, repo := newTestDashboard(dashboardRows()...)
	ctx := context.Background()

	rows, err := svc.ListSubmissions(ctx, dto.DashboardQuery{Days: 30})
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("want 2 rows in 30 days, got %d", len(rows))
	}
	if want := dashboardNow.AddDate(0, 0, -30); !repo.lastFilter.CreatedSince.Equal(want) {
		t.Fatalf("since = %v, want %v", repo.lastFilter.CreatedSince, want)
	}
	if rows[0].Answer1 != "a, with comma" || rows[0].StudentID != "10131" {
		t.Fatalf("row not mapped: %+v", rows[0])
	}

	rows, err = svc.ListSubmissions(ctx, dto.DashboardQuery{Days: 0})
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 || !repo.lastFilter.CreatedSince.IsZero() {
		t.Fatalf("days=0 should be unbounded, got %d rows since %v", len(rows), repo.lastFilter.CreatedSince)
	}

	for _, days := range []int{-1, 366} {
		if _, err := svc.ListSubmissions(ctx, dto.DashboardQuery{Days: days}); !errors.Is(err, ErrInvalidWindow) {
			t.Fatalf("days=%d: got %v, want ErrInvalidWindow", days, err)
		}
	}
}

func TestDashboardStats(t *testing.T) {
	svc, _ := newTestDashboard(dashboardRows()...)
	stats, err := svc.Stats(context.Background(), dto.DashboardQuery{})
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalSubmissions != 3 || stats.DistinctStudents != 2 {
		t.Fatalf("unexpected totals: %+v", stats)
	}
	if stats.LatestSubmittedAt == nil || !stats.LatestSubmittedAt.Equal(dashboardNow.AddDate(0, 0, -1)) {
		t.Fatalf("unexpected latest: %v", stats.LatestSubmittedAt)
	}
	wantRates := []float64{200.0 / 3, 100.0 / 3, 200.0 / 3}
	if len(stats.QuestionRates) != 3 {
		t.Fatalf("want 3 question rates, got %+v", stats.QuestionRates)
	}
	for i, r := range stats.QuestionRates {
		if r.QuestionIndex != i+1 || r.Graded != 3 {
			t.Fatalf("rate %d: %+v", i, r)
		}
		if diff := r.CorrectRate - wantRates[i]; diff > 1e-9 || diff < -1e-9 {
			t.Fatalf("question %d rate = %v, want %v", i+1, r.CorrectRate, wantRates[i])
		}
	}
}

func TestDashboardStatsEmpty(t *testing.T) {
	svc, _ := newTestDashboard()
	stats, err := svc.Stats(context.Background(), dto.DashboardQuery{StudentID: "nobody"})
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalSubmissions != 0 || stats.LatestSubmittedAt != nil {
		t.Fatalf("want empty stats, got %+v", stats)
	}
	if len(stats.QuestionRates) != 3 {
		t.Fatalf("want a rate for each configured question, got %+v", stats.QuestionRates)
	}
	for i, r := range stats.QuestionRates {
		if r.QuestionIndex != i+1 || r.CorrectRate != 0 || r.Graded != 0 {
			t.Fatalf("rate %d: want zero entry, got %+v", i, r)
		}
	}
}

func TestDashboardStudents(t *testing.T) {
	svc, _ := newTestDashboard(dashboardRows()...)
	ids, err := svc.Students(context.Background(), dto.DashboardQuery{})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Join(ids, ",") != "10130,10131" {
		t.Fatalf("got %v", ids)
	}
}

func TestDashboardHistory(t *testing.T) {
	svc, repo := newTestDashboard(dashboardRows()...)
	ctx := context.Background()

	rows, err := svc.History(ctx, "10131", 200)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 || repo.lastLimit != 200 {
		t.Fatalf("got %d rows with limit %d", len(rows), repo.lastLimit)
	}

	if _, err := svc.History(ctx, " ", 10); !errors.Is(err, ErrBlankStudentID) {
		t.Fatalf("got %v, want ErrBlankStudentID", err)
	}
	for _, limit := range []int{0, 201} {
		if _, err := svc.History(ctx, "10131", limit); !errors.Is(err, ErrInvalidLimit) {
			t.Fatalf("limit=%d: got %v, want ErrInvalidLimit", limit, err)
		}
	}
}

func TestDashboardExportCSV(t *testing.T) {
	svc, _ := newTestDashboard(dashboardRows()...)
	var buf bytes.Buffer
	if err := svc.ExportCSV(context.Background(), dto.DashboardQuery{StudentID: "10131"}, &buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "\ufeff") {
		t.Fatal("export must start with a UTF-8 BOM")
	}
	records, err := csv.NewReader(strings.NewReader(strings.TrimPrefix(out, "\ufeff"))).ReadAll()
	if err != nil {
		t.Fatalf("export is not valid CSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("want header + 2 rows, got %d records", len(records))
	}
	if strings.Join(records[0], ",") != "student_id,created_at,answer_1,answer_2,answer_3,feedback_1,feedback_2,feedback_3,model" {
		t.Fatalf("unexpected header: %v", records[0])
	}
	if records[1][0] != "10131" || records[1][2] != "a, with comma" || records[1][1] != "2025-05-31T00:00:00Z" {
		t.Fatalf("unexpected first row: %v", records[1])
	}
}
