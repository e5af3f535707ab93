package util

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailRegistered   = errors.New("email already registered")
	ErrPermissionDenied  = errors.New("permission denied")
	ErrLearnerNotFound   = errors.New("learner not found")
	ErrContentNotFound   = errors.New("content not found")
	ErrInvalidAgeMonths  = errors.New("age must be a non-negative number of months")
	ErrInvalidSkillLevel = errors.New("skill levels must be between 0 and 100")
)
