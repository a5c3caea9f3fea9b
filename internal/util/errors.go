package util

import (
	"errors"
	"fmt"
)

// 错误按类别区分，边界层据此选择HTTP状态码：
// validation -> 400, not found -> 404, conflict -> 409，其余按存储错误走500
var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = errors.New("resource not found")
	ErrConflict   = errors.New("conflict")

	ErrUserNotFound       = fmt.Errorf("%w: user not found", ErrNotFound)
	ErrCourseNotFound     = fmt.Errorf("%w: course not found", ErrNotFound)
	ErrAssignmentNotFound = fmt.Errorf("%w: assignment not found", ErrNotFound)
	ErrProgressNotFound   = fmt.Errorf("%w: progress not found", ErrNotFound)
	ErrAlreadyEnrolled    = fmt.Errorf("%w: student is already enrolled in this course", ErrConflict)
)

// RequiredField 必填字段缺失
func RequiredField(name string) error {
	return fmt.Errorf("%w: %s is required", ErrValidation, name)
}
