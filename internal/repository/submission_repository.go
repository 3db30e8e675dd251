package repository

import (
	"context"
	"strings"
	"time"

	"github.com/lshigami/sciencegrader/internal/model"
	"gorm.io/gorm"
)

// SubmissionFilter narrows a dashboard query. Zero values mean "no restriction".
type SubmissionFilter struct {
	StudentIDContains string
	CreatedSince      time.Time
}

type SubmissionRepository interface {
	Create(ctx context.Context, submission *model.StudentSubmission) error
	FindFiltered(ctx context.Context, filter SubmissionFilter) ([]model.StudentSubmission, error)
	FindByStudentID(ctx context.Context, studentID string, limit int) ([]model.StudentSubmission, error)
}

type submissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) SubmissionRepository {
	return &submissionRepository{db: db}
}

func (r *submissionRepository) Create(ctx context.Context, submission *model.StudentSubmission) error {
	return r.db.WithContext(ctx).Create(submission).Error
}

// FindFiltered matches the student id substring case-insensitively and returns newest first.
func (r *submissionRepository) FindFiltered(ctx context.Context, filter SubmissionFilter) ([]model.StudentSubmission, error) {
	var submissions []model.StudentSubmission
	query := r.db.WithContext(ctx).Model(&model.StudentSubmission{})
	if filter.StudentIDContains != "" {
		query = query.Where("LOWER(student_id) LIKE ? ESCAPE '\\'", "%"+escapeLike(strings.ToLower(filter.StudentIDContains))+"%")
	}
	if !filter.CreatedSince.IsZero() {
		query = query.Where("created_at >= ?", filter.CreatedSince)
	}
	err := query.Order("created_at DESC").Order("id DESC").Find(&submissions).Error
	return submissions, err
}

func (r *submissionRepository) FindByStudentID(ctx context.Context, studentID string, limit int) ([]model.StudentSubmission, error) {
	var submissions []model.StudentSubmission
	err := r.db.WithContext(ctx).
		Where("student_id = ?", studentID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&submissions).Error
	return submissions, err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
