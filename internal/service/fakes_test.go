package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/lshigami/sciencegrader/config"
	"github.com/lshigami/sciencegrader/internal/grading"
	"github.com/lshigami/sciencegrader/internal/model"
	"github.com/lshigami/sciencegrader/internal/repository"
)

type llmReply struct {
	text string
	err  error
}

type fakeLLM struct {
	mu      sync.Mutex
	replies map[int]llmReply
	block   bool
	calls   []int
}

func (f *fakeLLM) GradeAnswer(ctx context.Context, q grading.Question, answer string) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, q.Index)
	reply := f.replies[q.Index]
	f.mu.Unlock()
	if f.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return reply.text, reply.err
}

func (f *fakeLLM) ModelName() string { return "test-model" }

func (f *fakeLLM) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

type fakeSubmissionRepo struct {
	mu         sync.Mutex
	rows       []model.StudentSubmission
	createErr  error
	lastFilter repository.SubmissionFilter
	lastLimit  int
}

func (r *fakeSubmissionRepo) Create(_ context.Context, s *model.StudentSubmission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	s.ID = uint(len(r.rows) + 1)
	r.rows = append(r.rows, *s)
	return nil
}

func (r *fakeSubmissionRepo) FindFiltered(_ context.Context, f repository.SubmissionFilter) ([]model.StudentSubmission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastFilter = f
	var out []model.StudentSubmission
	for _, row := range r.rows {
		if f.StudentIDContains != "" && !strings.Contains(strings.ToLower(row.StudentID), strings.ToLower(f.StudentIDContains)) {
			continue
		}
		if !f.CreatedSince.IsZero() && row.CreatedAt.Before(f.CreatedSince) {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}

func (r *fakeSubmissionRepo) FindByStudentID(_ context.Context, id string, limit int) ([]model.StudentSubmission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastLimit = limit
	var out []model.StudentSubmission
	for _, row := range r.rows {
		if row.StudentID == id && len(out) < limit {
			out = append(out, row)
		}
	}
	return out, nil
}

func testConfig() *config.Config {
	return &config.Config{
		ClassTitle: "2학년 과학",
		Gemini:     config.Gemini{Model: "test-model", GradingTimeout: time.Second},
		Questions:  config.DefaultQuestions(),
	}
}
