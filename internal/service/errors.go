package service

import "errors"

var (
	ErrBlankStudentID      = errors.New("학번을 입력하세요")
	ErrBlankAnswer         = errors.New("모든 답안을 작성하세요")
	ErrAnswerCountMismatch = errors.New("답안이 문항 구성과 일치하지 않습니다")
	ErrInvalidWindow       = errors.New("days must be between 0 and 365")
	ErrInvalidLimit        = errors.New("limit must be between 1 and 200")
)

// IsValidationError reports whether err was caused by bad caller input.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrBlankStudentID) ||
		errors.Is(err, ErrBlankAnswer) ||
		errors.Is(err, ErrAnswerCountMismatch) ||
		errors.Is(err, ErrInvalidWindow) ||
		errors.Is(err, ErrInvalidLimit)
}
